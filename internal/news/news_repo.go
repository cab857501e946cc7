package news

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/apperr"
)

type NewsRepository interface {
	List(ctx context.Context, category, sortBy string) ([]models.News, error)
	Latest(ctx context.Context, limit int) ([]models.News, error)
	View(ctx context.Context, id uint) (*models.News, error)
	Create(ctx context.Context, n *models.News) error
	Update(ctx context.Context, id, userID uint, req NewsRequest) (*models.News, error)
	Delete(ctx context.Context, id, userID uint) error
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) List(ctx context.Context, category, sortBy string) ([]models.News, error) {
	q := r.db.WithContext(ctx).Preload("Author")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	switch sortBy {
	case SortViewsAsc:
		q = q.Order("views ASC").Order("id DESC")
	case SortViewsDesc:
		q = q.Order("views DESC").Order("id DESC")
	default:
		q = q.Order("created_at DESC").Order("id DESC")
	}

	var items []models.News
	err := q.Find(&items).Error
	return items, err
}

func (r *newsRepository) Latest(ctx context.Context, limit int) ([]models.News, error) {
	var items []models.News
	err := r.db.WithContext(ctx).Preload("Author").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// View increments the view counter in the database and returns the article
// with the new count.
func (r *newsRepository) View(ctx context.Context, id uint) (*models.News, error) {
	var n models.News
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.News{}).Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return tx.Preload("Author").First(&n, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *newsRepository) Create(ctx context.Context, n *models.News) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Author").First(n, n.ID).Error
}

func ownedNews(tx *gorm.DB, id, userID uint) (*models.News, error) {
	var n models.News
	err := tx.Preload("Author").First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := apperr.CheckOwner(n.AuthorID, userID); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *newsRepository) Update(ctx context.Context, id, userID uint, req NewsRequest) (*models.News, error) {
	var updated *models.News
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := ownedNews(tx, id, userID)
		if err != nil {
			return err
		}
		err = tx.Model(&models.News{}).Where("id = ?", n.ID).Updates(map[string]interface{}{
			"title":       req.Title,
			"content":     req.Content,
			"category":    models.NewsCategory(req.Category),
			"thumbnail":   req.Thumbnail,
			"is_featured": req.IsFeatured,
		}).Error
		if err != nil {
			return err
		}
		n.Title = req.Title
		n.Content = req.Content
		n.Category = models.NewsCategory(req.Category)
		n.Thumbnail = req.Thumbnail
		n.IsFeatured = req.IsFeatured
		updated = n
		return nil
	})
	return updated, err
}

func (r *newsRepository) Delete(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := ownedNews(tx, id, userID)
		if err != nil {
			return err
		}
		return tx.Delete(n).Error
	})
}
