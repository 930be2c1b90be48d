package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/academics/courses/dto"
	"darulfatheh_backend/internals/features/academics/courses/model"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
)

const (
	courseListPath  = "/dashboard/courses/"
	msgSlugConflict = "slug: course with this slug already exists"
)

var (
	CourseOrder    = []helper.SortKey{helper.Desc("course_created_at")}
	courseSlugOpts = helper.SlugOptions{Table: "courses", SlugColumn: "course_slug", IDColumn: "course_id"}
)

type CourseController struct {
	DB     *gorm.DB
	Media  *helper.MediaStore
	Images *imageopt.Processor
}

func NewCourseController(deps *helper.Deps) *CourseController {
	return &CourseController{DB: deps.DB, Media: deps.Media, Images: deps.Images}
}

// =============================
// 📋 Admin list
// =============================
func (cc *CourseController) List(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.CourseModel](
		c.UserContext(), cc.DB.Model(&model.CourseModel{}),
		CourseOrder, helper.PerPageAdmin, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list courses")
	}
	return helper.RenderAdmin(c, "admin/courses/list", fiber.Map{
		"Title":  "Courses",
		"Active": "courses",
		"Page":   page,
	})
}

// =============================
// ➕ Create
// slug kosong → dibuat dari title (unik, -1, -2, ...);
// slug diisi → di-slugify, bentrok = error validasi.
// =============================
func (cc *CourseController) CreatePage(c *fiber.Ctx) error {
	return cc.renderForm(c, &model.CourseModel{CourseIsActive: true, CourseLevel: model.LevelBeginner}, false, "")
}

func (cc *CourseController) Create(c *fiber.Ctx) error {
	item := &model.CourseModel{}
	var req dto.CourseRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return cc.renderForm(c, item, false, msg)
	}
	req.IsActive = helper.Checkbox(c, "is_active")
	req.ApplyTo(item)

	thumb, err := cc.Media.ReplaceImage(c, "thumbnail", helper.FolderCourses, "")
	if err != nil {
		if helper.IsUploadError(err) {
			return cc.renderForm(c, item, false, err.Error())
		}
		return err
	}
	item.CourseThumbnail = thumb

	ctx := c.UserContext()
	db := cc.DB.WithContext(ctx)

	if supplied := helper.Slugify(req.Slug); supplied != "" {
		item.CourseSlug = supplied
		err = db.Create(item).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return cc.renderForm(c, item, false, msgSlugConflict)
		}
	} else {
		err = helper.RetryOnDuplicate(helper.SlugRetryAttempts, func() error {
			slug, err := helper.GenerateUniqueSlug(ctx, cc.DB, courseSlugOpts, item.CourseTitle, nil)
			if err != nil {
				return err
			}
			item.CourseSlug = slug
			return db.Create(item).Error
		})
	}
	if err != nil {
		return helper.FromDBError(err, "create course")
	}
	cc.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, courseListPath, "Course added successfully!")
}

// =============================
// ✏️ Edit (slug tidak pernah berubah)
// =============================
func (cc *CourseController) EditPage(c *fiber.Ctx) error {
	item, err := cc.load(c)
	if err != nil {
		return err
	}
	return cc.renderForm(c, item, true, "")
}

func (cc *CourseController) Update(c *fiber.Ctx) error {
	item, err := cc.load(c)
	if err != nil {
		return err
	}
	var req dto.CourseRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return cc.renderForm(c, item, true, msg)
	}
	req.IsActive = helper.Checkbox(c, "is_active")
	req.ApplyTo(item)

	if item.CourseThumbnail, err = cc.Media.ReplaceImage(c, "thumbnail", helper.FolderCourses, item.CourseThumbnail); err != nil {
		if helper.IsUploadError(err) {
			return cc.renderForm(c, item, true, err.Error())
		}
		return err
	}
	if err := cc.DB.WithContext(c.UserContext()).Save(item).Error; err != nil {
		return helper.FromDBError(err, "update course")
	}
	cc.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, courseListPath, "Course updated successfully!")
}

// =============================
// 🗑️ Delete: registrasi yang menunjuk course ini di-null-kan dulu
// =============================
func (cc *CourseController) Delete(c *fiber.Ctx) error {
	item, err := cc.load(c)
	if err != nil {
		return err
	}
	err = cc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("student_registrations").
			Where("registration_course_id = ?", item.CourseID).
			Update("registration_course_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(item).Error
	})
	if err != nil {
		return helper.FromDBError(err, "delete course")
	}
	return helper.RedirectSuccess(c, courseListPath, "Course deleted successfully!")
}

func (cc *CourseController) load(c *fiber.Ctx) (*model.CourseModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.CourseModel](c, cc.DB, "course_id", id)
}

func (cc *CourseController) renderForm(c *fiber.Ctx, item *model.CourseModel, isEdit bool, errMsg string) error {
	title := "Add Course"
	if isEdit {
		title = "Edit Course"
	}
	return helper.RenderAdmin(c, "admin/courses/form", fiber.Map{
		"Title":  title,
		"Active": "courses",
		"Item":   item,
		"IsEdit": isEdit,
		"Error":  errMsg,
		"Levels": model.CourseLevels,
	})
}

// ActiveCourses course aktif terbaru; limit <= 0 berarti semua.
func ActiveCourses(ctx context.Context, db *gorm.DB, limit int, excludeID *uuid.UUID) ([]model.CourseModel, error) {
	q := db.WithContext(ctx).
		Where("course_is_active = ?", true).
		Order("course_created_at DESC")
	if excludeID != nil {
		q = q.Where("course_id <> ?", *excludeID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []model.CourseModel
	return out, q.Find(&out).Error
}
