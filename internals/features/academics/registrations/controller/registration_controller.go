package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	courseModel "darulfatheh_backend/internals/features/academics/courses/model"
	"darulfatheh_backend/internals/features/academics/registrations/dto"
	"darulfatheh_backend/internals/features/academics/registrations/model"
	"darulfatheh_backend/internals/features/academics/registrations/service"
	helper "darulfatheh_backend/internals/helpers"
)

const (
	studentListPath = "/dashboard/students/"
	registerPath    = "/register/"

	MsgRegistered     = "Registration successful! We have received your details."
	msgInvalidCourse  = "course: select a valid choice"
	msgCorrectTheForm = "Please correct the errors below."
)

var RegistrationOrder = []helper.SortKey{helper.Desc("registration_created_at")}

type RegistrationController struct {
	DB       *gorm.DB
	Notifier helper.Notifier
	MailFrom string
	NotifyTo string
}

func NewRegistrationController(deps *helper.Deps) *RegistrationController {
	return &RegistrationController{
		DB:       deps.DB,
		Notifier: deps.Notifier,
		MailFrom: deps.MailFrom,
		NotifyTo: deps.NotifyTo,
	}
}

// =============================
// 🌐 Public: /register/
// =============================
func (rc *RegistrationController) RegisterPage(c *fiber.Ctx) error {
	return rc.renderRegister(c, "")
}

func (rc *RegistrationController) Register(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return rc.renderRegister(c, msgCorrectTheForm+" "+msg)
	}
	reg := req.ToModel()
	ctx := c.UserContext()

	var courseTitle string
	if req.Course != "" {
		id, _ := uuid.Parse(req.Course)
		var course courseModel.CourseModel
		err := rc.DB.WithContext(ctx).Where("course_id = ?", id).First(&course).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return rc.renderRegister(c, msgCorrectTheForm+" "+msgInvalidCourse)
		case err != nil:
			return helper.FromDBError(err, "load course")
		}
		reg.RegistrationCourseID = &course.CourseID
		courseTitle = course.CourseTitle
	}

	if err := rc.DB.WithContext(ctx).Create(reg).Error; err != nil {
		return helper.FromDBError(err, "create registration")
	}

	// tidak ditunggu: kegagalan kirim hanya di-log oleh dispatcher
	msg := service.RegistrationMessage(reg, courseTitle, rc.MailFrom, rc.NotifyTo)
	if rc.Notifier == nil || !rc.Notifier.Enqueue(msg) {
		log.WithField("registration_id", reg.RegistrationID).Warn("registration notification not queued")
	}

	return helper.RedirectSuccess(c, registerPath, MsgRegistered)
}

// =============================
// 📋 Admin: /dashboard/students/
// =============================
func (rc *RegistrationController) List(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.StudentRegistrationModel](
		c.UserContext(),
		rc.DB.Model(&model.StudentRegistrationModel{}),
		RegistrationOrder, helper.PerPageAdminLarge, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list registrations")
	}
	if err := rc.attachCourses(c, page.Items); err != nil {
		return helper.FromDBError(err, "load registration courses")
	}
	return helper.RenderAdmin(c, "admin/students/list", fiber.Map{
		"Title":  "Student Registrations",
		"Active": "students",
		"Page":   page,
	})
}

func (rc *RegistrationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	item, err := helper.FindOr404[model.StudentRegistrationModel](c, rc.DB, "registration_id", id)
	if err != nil {
		return err
	}
	if err := rc.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return helper.FromDBError(err, "delete registration")
	}
	return helper.RedirectSuccess(c, studentListPath, "Student registration removed successfully.")
}

// attachCourses mengisi relasi Course untuk satu halaman registrasi.
func (rc *RegistrationController) attachCourses(c *fiber.Ctx, items []model.StudentRegistrationModel) error {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.RegistrationCourseID != nil {
			ids = append(ids, *it.RegistrationCourseID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	var courses []courseModel.CourseModel
	if err := rc.DB.WithContext(c.UserContext()).Where("course_id IN ?", ids).Find(&courses).Error; err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*courseModel.CourseModel, len(courses))
	for i := range courses {
		byID[courses[i].CourseID] = &courses[i]
	}
	for i := range items {
		if id := items[i].RegistrationCourseID; id != nil {
			items[i].Course = byID[*id]
		}
	}
	return nil
}

func (rc *RegistrationController) renderRegister(c *fiber.Ctx, errMsg string) error {
	var courses []courseModel.CourseModel
	if err := rc.DB.WithContext(c.UserContext()).
		Where("course_is_active = ?", true).
		Order("course_title ASC").
		Find(&courses).Error; err != nil {
		return helper.FromDBError(err, "list courses")
	}
	return helper.RenderPublic(c, "public/register", fiber.Map{
		"Title":   "Register",
		"Courses": courses,
		"Error":   errMsg,
	})
}
