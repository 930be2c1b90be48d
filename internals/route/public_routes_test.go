package routes

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	courseModel "darulfatheh_backend/internals/features/academics/courses/model"
	registrationModel "darulfatheh_backend/internals/features/academics/registrations/model"
	contactModel "darulfatheh_backend/internals/features/inbox/contacts/model"
	alumniModel "darulfatheh_backend/internals/features/profiles/alumni/model"
	teamModel "darulfatheh_backend/internals/features/profiles/team/model"
	testimonialModel "darulfatheh_backend/internals/features/profiles/testimonials/model"
	newsModel "darulfatheh_backend/internals/features/publications/news/model"
)

func seedCourse(t *testing.T, env *testEnv, title, slug string, active bool) courseModel.CourseModel {
	t.Helper()
	c := courseModel.CourseModel{
		CourseTitle: title, CourseSlug: slug, CourseDescription: "About " + title,
		CourseDuration: "6 weeks", CourseIsActive: active,
	}
	require.NoError(t, env.db.Create(&c).Error)
	return c
}

func TestPublicPages_Render(t *testing.T) {
	env := newTestEnv(t)
	seedCourse(t, env, "Quran Reading", "quran-reading", true)

	for _, p := range []string{
		"/", "/about/", "/our-team/", "/courses/", "/blog/", "/gallery/",
		"/alumni/", "/register/", "/contact/", "/donate/", "/not-found/",
	} {
		resp := env.get(t, p)
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
	}

	resp := env.get(t, "/")
	assert.Contains(t, readBody(t, resp), "/course_detail/quran-reading/")
}

func TestPublic_UnknownPathIs404(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/definitely/not/here/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Page Not Found")

	resp = env.get(t, "/course_detail/missing/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.get(t, "/news/missing/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCourses_OnlyActiveArePublic(t *testing.T) {
	env := newTestEnv(t)
	seedCourse(t, env, "Arabic Grammar", "arabic-grammar", true)
	seedCourse(t, env, "Hidden Course", "hidden-course", false)

	resp := env.get(t, "/courses/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Arabic Grammar")
	assert.NotContains(t, body, "Hidden Course")

	resp = env.get(t, "/course_detail/arabic-grammar/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBlog_SearchAndPagination(t *testing.T) {
	env := newTestEnv(t)
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		n := newsModel.NewsModel{
			NewsTitle:       "Arabic Update " + string(rune('A'+i)),
			NewsSlug:        "arabic-update-" + string(rune('a'+i)),
			NewsContent:     "content",
			NewsIsPublished: true,
			NewsPublishedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, env.db.Create(&n).Error)
	}
	require.NoError(t, env.db.Create(&newsModel.NewsModel{
		NewsTitle: "Fiqh Notes", NewsSlug: "fiqh-notes", NewsContent: "about arabic too",
		NewsIsPublished: true, NewsPublishedAt: base,
	}).Error)

	resp := env.get(t, "/blog/?search-field=ARABIC&page=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	// 9 hasil, 6 per halaman → halaman 2 berisi 3 item tertua
	assert.Contains(t, body, "Fiqh Notes")
	assert.NotContains(t, body, "Arabic Update H")
	assert.Contains(t, body, "search-field=ARABIC")

	// token di luar jangkauan → halaman terakhir
	resp = env.get(t, "/blog/?page=99")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Page 2 of 2")

	resp = env.get(t, "/news/fiqh-notes/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegister_NotifierFailureStillSucceeds(t *testing.T) {
	env := newTestEnv(t)
	course := seedCourse(t, env, "Tajweed", "tajweed", true)
	env.notifier.accept = false

	resp := env.postForm(t, "/register/", url.Values{
		"first_name": {"Amina"},
		"last_name":  {"Yusuf"},
		"dob":        {"2010-05-01"},
		"email":      {"amina@example.com"},
		"mobile":     {"0800111222"},
		"course":     {course.CourseID.String()},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/register/", resp.Header.Get("Location"))

	var reg registrationModel.StudentRegistrationModel
	require.NoError(t, env.db.First(&reg).Error)
	require.NotNil(t, reg.RegistrationCourseID)
	assert.Equal(t, course.CourseID, *reg.RegistrationCourseID)

	require.Len(t, env.notifier.calls, 1)
	msg := env.notifier.calls[0]
	assert.Equal(t, "New Student Registration: Amina Yusuf", msg.Subject)
	assert.Equal(t, []string{"office@example.com"}, msg.To)
	assert.Contains(t, msg.Body, "COURSE:     Tajweed")
}

func TestRegister_InvalidInput(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postForm(t, "/register/", url.Values{
		"first_name": {"Amina"},
		"last_name":  {"Yusuf"},
		"dob":        {"01/05/2010"},
		"email":      {"not-an-email"},
		"mobile":     {"0800"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var n int64
	env.db.Model(&registrationModel.StudentRegistrationModel{}).Count(&n)
	assert.Zero(t, n)
	assert.Empty(t, env.notifier.calls)
}

func TestContact_SubmitStoresMessage(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postForm(t, "/contact/", url.Values{
		"name":    {"Hasan"},
		"email":   {"hasan@example.com"},
		"subject": {"Admission"},
		"message": {"When does the term start?"},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/contact/", resp.Header.Get("Location"))

	var msg contactModel.ContactMessageModel
	require.NoError(t, env.db.First(&msg).Error)
	assert.Equal(t, "Admission", msg.MessageSubject)
	assert.False(t, msg.MessageIsRead)

	// flash tampil sekali setelah redirect
	var flash string
	for _, ck := range resp.Cookies() {
		if ck.Name == "flash" {
			flash = ck.Value
		}
	}
	require.NotEmpty(t, flash)
	req, _ := http.NewRequest(http.MethodGet, "/contact/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: flash})
	resp = env.do(t, req)
	assert.True(t, strings.Contains(readBody(t, resp), "Your message has been sent"))
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "OK", out["status"])
	assert.Equal(t, "Connected", out["database"])
}

// posisi a harus sebelum b di body
func assertBefore(t *testing.T, body, a, b string) {
	t.Helper()
	ia, ib := strings.Index(body, a), strings.Index(body, b)
	require.NotEqual(t, -1, ia, a)
	require.NotEqual(t, -1, ib, b)
	assert.Less(t, ia, ib, "%q should come before %q", a, b)
}

func TestTeam_OrderedByName(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&teamModel.ManagementTeamModel{
		TeamName: "Zaid Zubair", TeamPosition: "Principal", TeamOrder: 0,
	}).Error)
	require.NoError(t, env.db.Create(&teamModel.ManagementTeamModel{
		TeamName: "Ahmad Ali", TeamPosition: "Teacher", TeamOrder: 5,
	}).Error)

	for _, p := range []string{"/our-team/", "/about/"} {
		resp := env.get(t, p)
		require.Equal(t, http.StatusOK, resp.StatusCode, p)
		assertBefore(t, readBody(t, resp), "Ahmad Ali", "Zaid Zubair")
	}

	env.login(t)
	resp := env.get(t, "/dashboard/team/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assertBefore(t, readBody(t, resp), "Ahmad Ali", "Zaid Zubair")
}

func TestTestimonials_OnlyApprovedArePublic(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&testimonialModel.TestimonialModel{
		TestimonialName: "Approved Parent", TestimonialDesignation: "Parent",
		TestimonialContent: "Great teachers", TestimonialRating: 5, TestimonialIsApproved: true,
	}).Error)
	require.NoError(t, env.db.Create(&testimonialModel.TestimonialModel{
		TestimonialName: "Pending Parent", TestimonialDesignation: "Parent",
		TestimonialContent: "Awaiting review", TestimonialRating: 4, TestimonialIsApproved: false,
	}).Error)

	for _, p := range []string{"/", "/about/"} {
		resp := env.get(t, p)
		require.Equal(t, http.StatusOK, resp.StatusCode, p)
		body := readBody(t, resp)
		assert.Contains(t, body, "Approved Parent", p)
		assert.NotContains(t, body, "Pending Parent", p)
	}

	// admin tetap melihat semuanya
	env.login(t)
	resp := env.get(t, "/dashboard/testimonials/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Approved Parent")
	assert.Contains(t, body, "Pending Parent")
}

func TestAlumni_OnlyVisibleEventsArePublic(t *testing.T) {
	env := newTestEnv(t)
	day := datatypes.Date(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, env.db.Create(&alumniModel.AlumniEventModel{
		EventName: "Annual Reunion", EventImage: "alumni/events/a.png", EventDate: day,
		EventDescription: "All welcome", EventIsVisible: true,
	}).Error)
	require.NoError(t, env.db.Create(&alumniModel.AlumniEventModel{
		EventName: "Draft Gathering", EventImage: "alumni/events/b.png", EventDate: day,
		EventDescription: "Not announced", EventIsVisible: false,
	}).Error)

	resp := env.get(t, "/alumni/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Annual Reunion")
	assert.NotContains(t, body, "Draft Gathering")
}
