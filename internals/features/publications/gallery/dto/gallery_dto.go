package dto

type CategoryRequest struct {
	Name string `form:"name" validate:"required,max=100"`
}

type GalleryUploadRequest struct {
	Category string `form:"category" validate:"required,uuid"`
}
