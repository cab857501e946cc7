package club

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/standings"
	"github.com/DhavalSuthar-24/eplradar/pkg/apperr"
)

const (
	SortByName   = "name"
	SortByPoints = "points"
	SortByWins   = "wins"
)

type ClubRepository interface {
	List(ctx context.Context, sortBy string) ([]models.Club, error)
	GetByName(ctx context.Context, name string) (*models.Club, error)
	Players(ctx context.Context, clubID uint) ([]models.Player, error)
	Fixtures(ctx context.Context, clubID uint) ([]models.Match, error)

	Comments(ctx context.Context, clubID uint) ([]models.ClubComment, error)
	CreateComment(ctx context.Context, cm *models.ClubComment) error
	UpdateComment(ctx context.Context, id, userID uint, content string) (*models.ClubComment, error)
	DeleteComment(ctx context.Context, id, userID uint) error

	RecomputeRecords(ctx context.Context) (int, error)
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) List(ctx context.Context, sortBy string) ([]models.Club, error) {
	q := r.db.WithContext(ctx)
	switch sortBy {
	case SortByWins:
		q = q.Order("wins DESC").Order("name ASC")
	default:
		q = q.Order("name ASC")
	}

	var clubs []models.Club
	if err := q.Find(&clubs).Error; err != nil {
		return nil, err
	}
	if sortBy == SortByPoints {
		clubs = standings.Rank(clubs)
	}
	return clubs, nil
}

func (r *clubRepository) GetByName(ctx context.Context, name string) (*models.Club, error) {
	var c models.Club
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clubRepository) Players(ctx context.Context, clubID uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("position ASC").Order("name ASC").
		Find(&players).Error
	return players, err
}

func (r *clubRepository) Fixtures(ctx context.Context, clubID uint) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.WithContext(ctx).
		Preload("HomeClub").Preload("AwayClub").
		Where("home_club_id = ? OR away_club_id = ?", clubID, clubID).
		Order("date ASC").
		Find(&matches).Error
	return matches, err
}

func (r *clubRepository) Comments(ctx context.Context, clubID uint) ([]models.ClubComment, error) {
	var comments []models.ClubComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("club_id = ?", clubID).
		Order("created_at DESC").Order("id DESC").
		Find(&comments).Error
	return comments, err
}

func (r *clubRepository) CreateComment(ctx context.Context, cm *models.ClubComment) error {
	if err := r.db.WithContext(ctx).Create(cm).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("User").First(cm, cm.ID).Error
}

// ownedComment distinguishes a missing comment from someone else's.
func (r *clubRepository) ownedComment(tx *gorm.DB, id, userID uint) (*models.ClubComment, error) {
	var cm models.ClubComment
	err := tx.Preload("User").First(&cm, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := apperr.CheckOwner(cm.UserID, userID); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *clubRepository) UpdateComment(ctx context.Context, id, userID uint, content string) (*models.ClubComment, error) {
	var updated *models.ClubComment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cm, err := r.ownedComment(tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Model(cm).Update("content", content).Error; err != nil {
			return err
		}
		updated = cm
		return nil
	})
	return updated, err
}

func (r *clubRepository) DeleteComment(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cm, err := r.ownedComment(tx, id, userID)
		if err != nil {
			return err
		}
		return tx.Delete(cm).Error
	})
}

// RecomputeRecords rebuilds every club's counters from finished matches.
// Clubs without a finished match are reset to zero.
func (r *clubRepository) RecomputeRecords(ctx context.Context) (int, error) {
	updated := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var matches []models.Match
		if err := tx.Preload("HomeClub").Preload("AwayClub").
			Where("status = ?", models.MatchFinished).
			Find(&matches).Error; err != nil {
			return err
		}

		results := make([]standings.Result, len(matches))
		for i, m := range matches {
			results[i] = standings.Result{
				Home:      m.HomeClub.Name,
				Away:      m.AwayClub.Name,
				HomeScore: m.HomeScore,
				AwayScore: m.AwayScore,
			}
		}
		records := standings.Tally(results)

		var clubs []models.Club
		if err := tx.Find(&clubs).Error; err != nil {
			return err
		}
		for _, c := range clubs {
			rec := standings.Record{}
			if got, ok := records[c.Name]; ok {
				rec = *got
			}
			err := tx.Model(&models.Club{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
				"wins":   rec.Wins,
				"draws":  rec.Draws,
				"losses": rec.Losses,
			}).Error
			if err != nil {
				return fmt.Errorf("updating %s: %w", c.Name, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
