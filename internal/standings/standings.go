// Package standings ranks clubs by league points and rebuilds win/draw/loss
// records from match results.
package standings

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/internal/models"
)

// Row is one line of the league table.
type Row struct {
	Position     int    `json:"position"`
	ClubID       uint   `json:"club_id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	Points       int    `json:"points"`
	TotalMatches int    `json:"total_matches"`
}

// Rank sorts clubs by points, highest first. Ties keep their input order.
func Rank(clubs []models.Club) []models.Club {
	ranked := append([]models.Club(nil), clubs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points() > ranked[j].Points()
	})
	return ranked
}

// Table ranks clubs and numbers the positions from 1.
func Table(clubs []models.Club) []Row {
	ranked := Rank(clubs)
	rows := make([]Row, len(ranked))
	for i, c := range ranked {
		rows[i] = Row{
			Position:     i + 1,
			ClubID:       c.ID,
			Name:         c.Name,
			Logo:         c.Logo,
			Wins:         c.Wins,
			Draws:        c.Draws,
			Losses:       c.Losses,
			Points:       c.Points(),
			TotalMatches: c.TotalMatches(),
		}
	}
	return rows
}

// Result is a finished match keyed by club names.
type Result struct {
	Home      string
	Away      string
	HomeScore int
	AwayScore int
}

type Record struct {
	Wins   int
	Draws  int
	Losses int
}

func (r Record) Points() int {
	return r.Wins*3 + r.Draws
}

// Tally folds results into per-club records. Every club that appears in a
// result gets an entry, even with no wins.
func Tally(results []Result) map[string]*Record {
	records := make(map[string]*Record)
	get := func(name string) *Record {
		r, ok := records[name]
		if !ok {
			r = &Record{}
			records[name] = r
		}
		return r
	}

	for _, res := range results {
		home, away := get(res.Home), get(res.Away)
		switch {
		case res.HomeScore > res.AwayScore:
			home.Wins++
			away.Losses++
		case res.HomeScore < res.AwayScore:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}
	return records
}

type Repository interface {
	// Clubs returns every club ordered by name so ties rank alphabetically.
	Clubs(ctx context.Context) ([]models.Club, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Clubs(ctx context.Context) ([]models.Club, error) {
	var clubs []models.Club
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clubs).Error
	return clubs, err
}

// Load reads all clubs and returns the ranked table.
func Load(ctx context.Context, repo Repository) ([]Row, error) {
	clubs, err := repo.Clubs(ctx)
	if err != nil {
		return nil, err
	}
	return Table(clubs), nil
}
