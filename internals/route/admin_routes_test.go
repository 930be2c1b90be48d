package routes

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	courseModel "darulfatheh_backend/internals/features/academics/courses/model"
	registrationModel "darulfatheh_backend/internals/features/academics/registrations/model"
	contactModel "darulfatheh_backend/internals/features/inbox/contacts/model"
	alumniModel "darulfatheh_backend/internals/features/profiles/alumni/model"
	teamModel "darulfatheh_backend/internals/features/profiles/team/model"
	galleryModel "darulfatheh_backend/internals/features/publications/gallery/model"
	newsModel "darulfatheh_backend/internals/features/publications/news/model"
)

func TestDashboard_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/dashboard/courses/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard/login/?next="+url.QueryEscape("/dashboard/courses/"), resp.Header.Get("Location"))

	env.session = "garbage"
	resp = env.get(t, "/dashboard/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/dashboard/login/"))

	// halaman login sendiri tidak ikut dijaga
	env.session = ""
	resp = env.get(t, "/dashboard/login/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	env.session = ""

	resp := env.postForm(t, "/dashboard/login/", url.Values{"username": {"admin"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Invalid username or password")

	resp = env.postForm(t, "/dashboard/login/", url.Values{
		"username": {"admin"},
		"password": {"s3cret-pass"},
		"next":     {"/dashboard/news/"},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard/news/", resp.Header.Get("Location"))

	var session string
	for _, ck := range resp.Cookies() {
		if ck.Name == "session_token" {
			session = ck.Value
		}
	}
	require.NotEmpty(t, session)

	env.session = session
	resp = env.get(t, "/dashboard/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminPages_Render(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	for _, p := range []string{
		"/dashboard/",
		"/dashboard/team/", "/dashboard/team/create/",
		"/dashboard/courses/", "/dashboard/courses/create/",
		"/dashboard/news/", "/dashboard/news/create/",
		"/dashboard/categories/", "/dashboard/categories/create/",
		"/dashboard/gallery/", "/dashboard/gallery/create/",
		"/dashboard/donations/", "/dashboard/donations/create/",
		"/dashboard/messages/",
		"/dashboard/testimonials/", "/dashboard/testimonials/create/",
		"/dashboard/students/",
		"/dashboard/alumni/", "/dashboard/alumni/create/",
		"/dashboard/alumni-events/", "/dashboard/alumni-events/create/",
	} {
		resp := env.get(t, p)
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
	}
}

func TestAdmin_MalformedIDIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.get(t, "/dashboard/team/not-a-uuid/edit/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.get(t, "/dashboard/courses/"+uuid.NewString()+"/edit/")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCourse_SlugAssignment(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	form := url.Values{
		"title":       {"Intro to Arabic"},
		"description": {"Basics"},
		"duration":    {"8 weeks"},
		"is_active":   {"on"},
	}
	resp := env.postForm(t, "/dashboard/courses/create/", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	form.Set("title", "Intro to Arabic!")
	resp = env.postForm(t, "/dashboard/courses/create/", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var courses []courseModel.CourseModel
	require.NoError(t, env.db.Order("course_slug ASC").Find(&courses).Error)
	require.Len(t, courses, 2)
	assert.Equal(t, "intro-to-arabic", courses[0].CourseSlug)
	assert.Equal(t, "intro-to-arabic-1", courses[1].CourseSlug)
	assert.True(t, courses[0].CourseIsActive)

	// slug eksplisit yang bentrok → error form, tidak ada record baru
	form.Set("title", "Another")
	form.Set("slug", "Intro to Arabic")
	resp = env.postForm(t, "/dashboard/courses/create/", form)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "course with this slug already exists")

	var total int64
	env.db.Model(&courseModel.CourseModel{}).Count(&total)
	assert.Equal(t, int64(2), total)

	// edit tidak pernah mengubah slug
	form.Del("slug")
	form.Set("title", "Renamed Course")
	resp = env.postForm(t, "/dashboard/courses/"+courses[0].CourseID.String()+"/edit/", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	var edited courseModel.CourseModel
	require.NoError(t, env.db.First(&edited, "course_id = ?", courses[0].CourseID).Error)
	assert.Equal(t, "Renamed Course", edited.CourseTitle)
	assert.Equal(t, "intro-to-arabic", edited.CourseSlug)
}

func TestNews_SlugFollowsTitle(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	form := url.Values{"title": {"Open Day"}, "content": {"Welcome"}, "is_published": {"on"}}
	resp := env.postForm(t, "/dashboard/news/create/", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var item newsModel.NewsModel
	require.NoError(t, env.db.First(&item).Error)
	assert.Equal(t, "open-day", item.NewsSlug)
	editPath := "/dashboard/news/" + item.NewsID.String() + "/edit/"

	// title sama → slug stabil (tidak jadi open-day-1)
	form.Set("content", "Updated content")
	resp = env.postForm(t, editPath, form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.NoError(t, env.db.First(&item, "news_id = ?", item.NewsID).Error)
	assert.Equal(t, "open-day", item.NewsSlug)
	assert.Equal(t, "Updated content", item.NewsContent)

	form.Set("title", "Open Day 2025")
	resp = env.postForm(t, editPath, form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.NoError(t, env.db.First(&item, "news_id = ?", item.NewsID).Error)
	assert.Equal(t, "open-day-2025", item.NewsSlug)
}

func TestCategoryDelete_CascadesImages(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	cat := galleryModel.CategoryModel{CategoryName: "Events"}
	require.NoError(t, env.db.Create(&cat).Error)
	other := galleryModel.CategoryModel{CategoryName: "Campus"}
	require.NoError(t, env.db.Create(&other).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, env.db.Create(&galleryModel.GalleryImageModel{
			ImageCategoryID: cat.CategoryID, ImagePath: "gallery/x.png",
		}).Error)
	}
	require.NoError(t, env.db.Create(&galleryModel.GalleryImageModel{
		ImageCategoryID: other.CategoryID, ImagePath: "gallery/y.png",
	}).Error)

	// GET tidak menghapus
	resp := env.get(t, "/dashboard/categories/"+cat.CategoryID.String()+"/delete/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	var n int64
	env.db.Model(&galleryModel.GalleryImageModel{}).Count(&n)
	assert.Equal(t, int64(4), n)

	resp = env.postForm(t, "/dashboard/categories/"+cat.CategoryID.String()+"/delete/", url.Values{})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	env.db.Model(&galleryModel.GalleryImageModel{}).Where("image_category_id = ?", cat.CategoryID).Count(&n)
	assert.Zero(t, n)
	env.db.Model(&galleryModel.GalleryImageModel{}).Count(&n)
	assert.Equal(t, int64(1), n)
	env.db.Model(&galleryModel.CategoryModel{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestCategory_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.postForm(t, "/dashboard/categories/create/", url.Values{"name": {"Events"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp = env.postForm(t, "/dashboard/categories/create/", url.Values{"name": {"Events"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "category with this name already exists")
}

func TestGalleryUpload_SkipsNonImages(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	cat := galleryModel.CategoryModel{CategoryName: "Events"}
	require.NoError(t, env.db.Create(&cat).Error)

	resp := env.postMultipart(t, "/dashboard/gallery/create/",
		url.Values{"category": {cat.CategoryID.String()}},
		upload{"images", "a.png", pngBytes(t)},
		upload{"images", "notes.txt", []byte("not an image")},
		upload{"images", "b.png", pngBytes(t)},
	)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var imgs []galleryModel.GalleryImageModel
	require.NoError(t, env.db.Order("image_title ASC").Find(&imgs).Error)
	require.Len(t, imgs, 2)
	assert.Equal(t, "a.png", imgs[0].ImageTitle)
	assert.Equal(t, "b.png", imgs[1].ImageTitle)
	assert.True(t, strings.HasPrefix(imgs[0].ImagePath, "gallery/"))

	resp = env.postMultipart(t, "/dashboard/gallery/create/",
		url.Values{"category": {cat.CategoryID.String()}},
		upload{"images", "notes.txt", []byte("still not an image")},
	)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "upload a valid image")
}

func TestCourseDelete_NullifiesRegistrations(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	course := courseModel.CourseModel{
		CourseTitle: "Tajweed", CourseSlug: "tajweed", CourseDescription: "d",
		CourseDuration: "4 weeks", CourseIsActive: true,
	}
	require.NoError(t, env.db.Create(&course).Error)
	reg := registrationModel.StudentRegistrationModel{
		RegistrationFirstName: "Amina", RegistrationLastName: "Yusuf",
		RegistrationDOB:       datatypes.Date(time.Date(2010, 5, 1, 0, 0, 0, 0, time.UTC)),
		RegistrationEmail:     "amina@example.com", RegistrationMobile: "0800",
		RegistrationCourseID: &course.CourseID,
	}
	require.NoError(t, env.db.Create(&reg).Error)

	resp := env.postForm(t, "/dashboard/courses/"+course.CourseID.String()+"/delete/", url.Values{})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var got registrationModel.StudentRegistrationModel
	require.NoError(t, env.db.First(&got, "registration_id = ?", reg.RegistrationID).Error)
	assert.Nil(t, got.RegistrationCourseID)

	resp = env.get(t, "/dashboard/students/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Not Selected")
}

func TestMessages_ViewMarksRead(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	msg := contactModel.ContactMessageModel{
		MessageName: "Hasan", MessageEmail: "hasan@example.com",
		MessageSubject: "Question", MessageBody: "Line one\nLine two",
	}
	require.NoError(t, env.db.Create(&msg).Error)

	resp := env.get(t, "/dashboard/messages/"+msg.MessageID.String()+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Line one<br>Line two")

	var got contactModel.ContactMessageModel
	require.NoError(t, env.db.First(&got, "message_id = ?", msg.MessageID).Error)
	assert.True(t, got.MessageIsRead)
}

func TestTeamEdit_KeepsPhotoWithoutNewFile(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	form := url.Values{"name": {"Ahmad Ali"}, "position": {"Teacher"}, "order": {"1"}}
	resp := env.postMultipart(t, "/dashboard/team/create/", form, upload{"photo", "ahmad.png", pngBytes(t)})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var member teamModel.ManagementTeamModel
	require.NoError(t, env.db.First(&member).Error)
	require.NotEmpty(t, member.TeamPhoto)
	photo := member.TeamPhoto

	// multipart tanpa field photo
	form.Set("position", "Head Teacher")
	resp = env.postMultipart(t, "/dashboard/team/"+member.TeamID.String()+"/edit/", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	require.NoError(t, env.db.First(&member, "team_id = ?", member.TeamID).Error)
	assert.Equal(t, "Head Teacher", member.TeamPosition)
	assert.Equal(t, photo, member.TeamPhoto)
	_, err := os.Stat(filepath.Join(env.deps.Media.Root, photo))
	assert.NoError(t, err)

	// form urlencoded juga tidak menghapus foto
	form.Set("position", "Deputy")
	resp = env.postForm(t, "/dashboard/team/"+member.TeamID.String()+"/edit/", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.NoError(t, env.db.First(&member, "team_id = ?", member.TeamID).Error)
	assert.Equal(t, photo, member.TeamPhoto)
}

func TestAlumniEdit_ReplacesPhotoOnlyWhenUploaded(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	form := url.Values{"name": {"Fatima Noor"}, "description": {"Class of 2019"}}
	resp := env.postMultipart(t, "/dashboard/alumni/create/", form, upload{"photo", "fatima.png", pngBytes(t)})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var profile alumniModel.AlumniProfileModel
	require.NoError(t, env.db.First(&profile).Error)
	original := profile.AlumniPhoto
	editPath := "/dashboard/alumni/" + profile.AlumniID.String() + "/edit/"

	form.Set("description", "Class of 2019, now teaching")
	resp = env.postMultipart(t, editPath, form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.NoError(t, env.db.First(&profile, "alumni_id = ?", profile.AlumniID).Error)
	assert.Equal(t, original, profile.AlumniPhoto)
	assert.Equal(t, "Class of 2019, now teaching", profile.AlumniDescription)

	resp = env.postMultipart(t, editPath, form, upload{"photo", "fatima-new.png", pngBytes(t)})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.NoError(t, env.db.First(&profile, "alumni_id = ?", profile.AlumniID).Error)
	assert.NotEqual(t, original, profile.AlumniPhoto)
	assert.True(t, strings.HasPrefix(profile.AlumniPhoto, "alumni/photos/"))
}

func TestNews_BlankTitleRejected(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.postForm(t, "/dashboard/news/create/", url.Values{"title": {"   "}, "content": {"Body"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "title is required")

	var n int64
	env.db.Model(&newsModel.NewsModel{}).Count(&n)
	assert.Zero(t, n)

	resp = env.postForm(t, "/dashboard/news/create/", url.Values{"title": {"  Eid Bazaar  "}, "content": {"Body"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	var item newsModel.NewsModel
	require.NoError(t, env.db.First(&item).Error)
	assert.Equal(t, "Eid Bazaar", item.NewsTitle)
	assert.Equal(t, "eid-bazaar", item.NewsSlug)
}

func TestGalleryUpload_LongFilenameTruncated(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	cat := galleryModel.CategoryModel{CategoryName: "Campus"}
	require.NoError(t, env.db.Create(&cat).Error)

	name := strings.Repeat("a", 200) + ".png"
	resp := env.postMultipart(t, "/dashboard/gallery/create/",
		url.Values{"category": {cat.CategoryID.String()}},
		upload{"images", name, pngBytes(t)},
	)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var img galleryModel.GalleryImageModel
	require.NoError(t, env.db.First(&img).Error)
	assert.Len(t, []rune(img.ImageTitle), galleryModel.MaxImageTitle)
	assert.Equal(t, strings.Repeat("a", galleryModel.MaxImageTitle), img.ImageTitle)
	assert.LessOrEqual(t, len(img.ImagePath), 255)
}
