package dto

// CreateBlogRequest accepts a status field but new posts always start as
// draft; publication happens through the status endpoint.
type CreateBlogRequest struct {
	Title     string `json:"title" binding:"required"`
	Thumbnail string `json:"thumbnail"`
	Content   string `json:"content" binding:"required"`
	Status    string `json:"status"`
}

type UpdateBlogStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft published"`
}
