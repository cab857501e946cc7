package player

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/apperr"
)

// likeEscaper makes the name search match %, _ and \ literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type PlayerRepository interface {
	List(ctx context.Context, filter PlayerFilter) ([]models.Player, error)
	GetByID(ctx context.Context, id uint) (*models.Player, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) List(ctx context.Context, filter PlayerFilter) ([]models.Player, error) {
	q := r.db.WithContext(ctx).
		Joins("Club").
		Order("players.name ASC")

	if filter.Club != "" {
		q = q.Where("players.club_id IN (?)",
			r.db.Model(&models.Club{}).Select("id").Where("LOWER(name) = ?", strings.ToLower(filter.Club)))
	}
	if filter.Position != "" {
		q = q.Where("LOWER(players.position) = ?", strings.ToLower(filter.Position))
	}
	if filter.Query != "" {
		q = q.Where(`LOWER(players.name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(filter.Query))+"%")
	}

	var players []models.Player
	err := q.Find(&players).Error
	return players, err
}

func (r *playerRepository) GetByID(ctx context.Context, id uint) (*models.Player, error) {
	var p models.Player
	err := r.db.WithContext(ctx).Joins("Club").First(&p, "players.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
