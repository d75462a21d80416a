package dto

type CreateAlbumRequest struct {
	SchoolYearID string `json:"schoolYearId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CoverURL     string `json:"coverUrl"`
}

type UpdateAlbumRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverURL    *string `json:"coverUrl"`
}

type LikeResponse struct {
	Success   bool `json:"success"`
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
