package request

type CreateGalleryImageRequest struct {
	Title        string `json:"title" binding:"required,min=2,max=200"`
	ImageURL     string `json:"image_url" binding:"required,url"`
	Caption      string `json:"caption,omitempty" binding:"omitempty,max=500"`
	DisplayOrder int32  `json:"display_order,omitempty"`
}

type UpdateGalleryImageRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,min=2,max=200"`
	ImageURL     *string `json:"image_url,omitempty" binding:"omitempty,url"`
	Caption      *string `json:"caption,omitempty" binding:"omitempty,max=500"`
	DisplayOrder *int32  `json:"display_order,omitempty"`
}
