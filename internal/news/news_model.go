package news

import (
	"time"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
)

const DateLayout = "02 Jan 2006"

const (
	SortLatest    = "latest"
	SortViewsAsc  = "views_asc"
	SortViewsDesc = "views_desc"
)

// NewsRequest is used for both create and full update.
type NewsRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content" binding:"required"`
	Category   string `json:"category" binding:"required,oneof=transfer match rumor analysis general"`
	Thumbnail  string `json:"thumbnail" binding:"omitempty,max=500"`
	IsFeatured bool   `json:"is_featured"`
}

type NewsResponse struct {
	ID            uint                `json:"id"`
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	Category      models.NewsCategory `json:"category"`
	CategoryLabel string              `json:"category_label"`
	Thumbnail     string              `json:"thumbnail"`
	IsFeatured    bool                `json:"is_featured"`
	IsHot         bool                `json:"is_hot"`
	Views         int                 `json:"views"`
	AuthorID      uint                `json:"author_id"`
	Author        string              `json:"author"`
	Date          string              `json:"date"`
	CreatedAt     time.Time           `json:"created_at"`
}

func ToNewsResponse(n models.News) NewsResponse {
	return NewsResponse{
		ID:            n.ID,
		Title:         n.Title,
		Content:       n.Content,
		Category:      n.Category,
		CategoryLabel: n.Category.Label(),
		Thumbnail:     n.Thumbnail,
		IsFeatured:    n.IsFeatured,
		IsHot:         n.IsHot(),
		Views:         n.Views,
		AuthorID:      n.AuthorID,
		Author:        n.Author.Username,
		Date:          n.CreatedAt.Format(DateLayout),
		CreatedAt:     n.CreatedAt,
	}
}
