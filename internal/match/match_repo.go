package match

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/apperr"
)

// MatchRepository defines methods to interact with match and prediction data
type MatchRepository interface {
	WeekBounds(ctx context.Context) (minWeek, maxWeek int, err error)
	ByWeek(ctx context.Context, week int) ([]models.Match, error)
	All(ctx context.Context) ([]models.Match, error)
	ByStatus(ctx context.Context, status models.MatchStatus) ([]models.Match, error)
	GetByID(ctx context.Context, id uint) (*models.Match, error)
	UpdateResult(ctx context.Context, id uint, fields map[string]interface{}) (*models.Match, error)

	// StartDue flips upcoming matches whose kickoff is at or before now to
	// live. FinishDue flips live matches that kicked off at or before cutoff
	// to finished. Both return the changed matches.
	StartDue(ctx context.Context, now time.Time) ([]models.Match, error)
	FinishDue(ctx context.Context, cutoff time.Time) ([]models.Match, error)

	CreatePrediction(ctx context.Context, p *models.Prediction) error
	UserPredictions(ctx context.Context, userID uint) ([]models.Prediction, error)
	UpdatePrediction(ctx context.Context, id, userID uint, home, away int) (*models.Prediction, error)
	DeletePrediction(ctx context.Context, id, userID uint) error
	ScoredPredictions(ctx context.Context) ([]models.Prediction, error)
}

type gormMatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &gormMatchRepository{db: db}
}

func withClubs(db *gorm.DB) *gorm.DB {
	return db.Preload("HomeClub").Preload("AwayClub")
}

func (r *gormMatchRepository) WeekBounds(ctx context.Context) (int, int, error) {
	var bounds struct {
		MinWeek *int
		MaxWeek *int
	}
	err := r.db.WithContext(ctx).Model(&models.Match{}).
		Select("MIN(week) AS min_week, MAX(week) AS max_week").
		Scan(&bounds).Error
	if err != nil {
		return 0, 0, err
	}

	minWeek, maxWeek := 1, 1
	if bounds.MinWeek != nil && *bounds.MinWeek > 0 {
		minWeek = *bounds.MinWeek
	}
	if bounds.MaxWeek != nil && *bounds.MaxWeek > 0 {
		maxWeek = *bounds.MaxWeek
	}
	return minWeek, maxWeek, nil
}

func (r *gormMatchRepository) ByWeek(ctx context.Context, week int) ([]models.Match, error) {
	var matches []models.Match
	err := withClubs(r.db.WithContext(ctx)).
		Where("week = ?", week).
		Order("date ASC").Order("id ASC").
		Find(&matches).Error
	return matches, err
}

func (r *gormMatchRepository) All(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	err := withClubs(r.db.WithContext(ctx)).Order("date ASC").Order("id ASC").Find(&matches).Error
	return matches, err
}

func (r *gormMatchRepository) ByStatus(ctx context.Context, status models.MatchStatus) ([]models.Match, error) {
	var matches []models.Match
	err := withClubs(r.db.WithContext(ctx)).
		Where("status = ?", status).
		Order("date ASC").
		Find(&matches).Error
	return matches, err
}

func (r *gormMatchRepository) GetByID(ctx context.Context, id uint) (*models.Match, error) {
	var m models.Match
	err := withClubs(r.db.WithContext(ctx)).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormMatchRepository) UpdateResult(ctx context.Context, id uint, fields map[string]interface{}) (*models.Match, error) {
	var m models.Match
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&m).Updates(fields).Error; err != nil {
				return err
			}
		}
		return withClubs(tx).First(&m, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormMatchRepository) transition(ctx context.Context, from, to models.MatchStatus, before time.Time) ([]models.Match, error) {
	var changed []models.Match
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := withClubs(tx).
			Where("status = ? AND date <= ?", from, before.UTC()).
			Order("date ASC").
			Find(&changed).Error; err != nil {
			return err
		}
		if len(changed) == 0 {
			return nil
		}

		ids := make([]uint, len(changed))
		for i := range changed {
			ids[i] = changed[i].ID
			changed[i].Status = to
		}
		return tx.Model(&models.Match{}).
			Where("id IN ? AND status = ?", ids, from).
			Update("status", to).Error
	})
	return changed, err
}

func (r *gormMatchRepository) StartDue(ctx context.Context, now time.Time) ([]models.Match, error) {
	return r.transition(ctx, models.MatchUpcoming, models.MatchLive, now)
}

func (r *gormMatchRepository) FinishDue(ctx context.Context, cutoff time.Time) ([]models.Match, error) {
	return r.transition(ctx, models.MatchLive, models.MatchFinished, cutoff)
}

func (r *gormMatchRepository) CreatePrediction(ctx context.Context, p *models.Prediction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Match
		if err := tx.First(&m, p.MatchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}
		if m.Status != models.MatchUpcoming {
			return apperr.ErrClosed
		}

		var count int64
		if err := tx.Model(&models.Prediction{}).
			Where("user_id = ? AND match_id = ?", p.UserID, p.MatchID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.ErrConflict
		}

		if err := tx.Create(p).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.ErrConflict
			}
			return err
		}
		return tx.Preload("Match.HomeClub").Preload("Match.AwayClub").First(p, p.ID).Error
	})
}

func (r *gormMatchRepository) UserPredictions(ctx context.Context, userID uint) ([]models.Prediction, error) {
	var preds []models.Prediction
	err := r.db.WithContext(ctx).
		Preload("Match.HomeClub").Preload("Match.AwayClub").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&preds).Error
	return preds, err
}

// ownedOpenPrediction loads a prediction the caller may still change.
func ownedOpenPrediction(tx *gorm.DB, id, userID uint) (*models.Prediction, error) {
	var p models.Prediction
	err := tx.Preload("Match.HomeClub").Preload("Match.AwayClub").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := apperr.CheckOwner(p.UserID, userID); err != nil {
		return nil, err
	}
	if p.Match.Status != models.MatchUpcoming {
		return nil, apperr.ErrClosed
	}
	return &p, nil
}

func (r *gormMatchRepository) UpdatePrediction(ctx context.Context, id, userID uint, home, away int) (*models.Prediction, error) {
	var out *models.Prediction
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := ownedOpenPrediction(tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Prediction{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"home_score": home,
			"away_score": away,
		}).Error; err != nil {
			return err
		}
		p.HomeScore, p.AwayScore = home, away
		out = p
		return nil
	})
	return out, err
}

func (r *gormMatchRepository) DeletePrediction(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := ownedOpenPrediction(tx, id, userID)
		if err != nil {
			return err
		}
		return tx.Delete(&models.Prediction{}, p.ID).Error
	})
}

// ScoredPredictions returns every prediction on a finished match with its
// user and match loaded.
func (r *gormMatchRepository) ScoredPredictions(ctx context.Context) ([]models.Prediction, error) {
	var preds []models.Prediction
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Match").
		Where("match_id IN (?)", r.db.Model(&models.Match{}).Select("id").Where("status = ?", models.MatchFinished)).
		Find(&preds).Error
	return preds, err
}
