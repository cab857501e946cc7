package stats

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/apperr"
)

type StatsRepository interface {
	ClubsByWins(ctx context.Context) ([]models.Club, error)
	Players(ctx context.Context, orderBy string, page, size int) ([]models.Player, int64, error)

	Favorites(ctx context.Context, userID uint) ([]models.FavoritePlayer, error)
	CreateFavorite(ctx context.Context, fav *models.FavoritePlayer) error
	UpdateFavorite(ctx context.Context, id, userID uint, reason string) (*models.FavoritePlayer, error)
	DeleteFavorite(ctx context.Context, id, userID uint) error
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) ClubsByWins(ctx context.Context) ([]models.Club, error) {
	var clubs []models.Club
	err := r.db.WithContext(ctx).Order("wins DESC").Order("name ASC").Find(&clubs).Error
	return clubs, err
}

func (r *statsRepository) Players(ctx context.Context, orderBy string, page, size int) ([]models.Player, int64, error) {
	column, ok := orderColumns[orderBy]
	if !ok {
		column = orderColumns[OrderGoals]
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var players []models.Player
	err := r.db.WithContext(ctx).
		Joins("Club").
		Order(column + " DESC").Order("players.name ASC").
		Offset((page - 1) * size).Limit(size).
		Find(&players).Error
	return players, total, err
}

func (r *statsRepository) Favorites(ctx context.Context, userID uint) ([]models.FavoritePlayer, error) {
	var favs []models.FavoritePlayer
	err := r.db.WithContext(ctx).
		Preload("Player.Club").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&favs).Error
	return favs, err
}

func (r *statsRepository) CreateFavorite(ctx context.Context, fav *models.FavoritePlayer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, fav.PlayerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.FavoritePlayer{}).
			Where("user_id = ? AND player_id = ?", fav.UserID, fav.PlayerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.ErrConflict
		}

		if err := tx.Create(fav).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.ErrConflict
			}
			return err
		}
		return tx.Preload("Player.Club").First(fav, fav.ID).Error
	})
}

func ownedFavorite(tx *gorm.DB, id, userID uint) (*models.FavoritePlayer, error) {
	var fav models.FavoritePlayer
	err := tx.Preload("Player.Club").First(&fav, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := apperr.CheckOwner(fav.UserID, userID); err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *statsRepository) UpdateFavorite(ctx context.Context, id, userID uint, reason string) (*models.FavoritePlayer, error) {
	var updated *models.FavoritePlayer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fav, err := ownedFavorite(tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.FavoritePlayer{}).Where("id = ?", fav.ID).Update("reason", reason).Error; err != nil {
			return err
		}
		fav.Reason = reason
		updated = fav
		return nil
	})
	return updated, err
}

func (r *statsRepository) DeleteFavorite(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fav, err := ownedFavorite(tx, id, userID)
		if err != nil {
			return err
		}
		return tx.Delete(&models.FavoritePlayer{}, fav.ID).Error
	})
}
