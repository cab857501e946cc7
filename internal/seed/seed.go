// Package seed loads the fixture CSV files into the database. Imports are
// one-shot batch runs: a bad row is logged and skipped, earlier rows stay.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/internal/metrics"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/internal/standings"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
)

const (
	ClubsFile   = "clubs.csv"
	PlayersFile = "players.csv"
	MatchesFile = "matches.csv"
	NewsFile    = "news.csv"

	// LogoDir and PictureDir live under the media directory.
	LogoDir    = "clubs"
	PictureDir = "players"

	MatchDateLayout = "02-01-2006"
	PremierLeague   = "Premier League"
)

var (
	clubColumns   = []string{"Club_name", "Win_count", "Draw_count", "Lose_count"}
	playerColumns = []string{"name", "position", "team", "citizenship", "age", "curr_goals", "curr_assists", "match_played", "curr_cleansheet"}
	matchColumns  = []string{"Home_Team", "Away_Team", "Home_Team_Score", "Away_Team_Score", "Week", "Date"}
	newsColumns   = []string{"title", "content"}
)

const (
	resultCreated = "created"
	resultUpdated = "updated"
	resultSkipped = "skipped"
	resultFailed  = "failed"
)

// Report counts what one import did with each row.
type Report struct {
	File    string `json:"file"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

func (r *Report) add(result string) {
	switch result {
	case resultCreated:
		r.Created++
	case resultUpdated:
		r.Updated++
	case resultSkipped:
		r.Skipped++
	case resultFailed:
		r.Failed++
	}
	metrics.SeedRowsTotal.WithLabelValues(r.File, result).Inc()
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d created, %d updated, %d skipped, %d failed", r.File, r.Created, r.Updated, r.Skipped, r.Failed)
}

type Importer struct {
	db       *gorm.DB
	mediaDir string
	hash     func(string) (string, error)
	// adminCreated receives the generated credentials of a news author
	// created on an empty user table. They never reach the log.
	adminCreated func(username, password string)
}

func NewImporter(db *gorm.DB, mediaDir string) *Importer {
	return &Importer{db: db, mediaDir: mediaDir, hash: utils.HashPassword}
}

// OnAdminCreated registers fn to receive the generated admin password.
func (im *Importer) OnAdminCreated(fn func(username, password string)) {
	im.adminCreated = fn
}

// media resolves name's image under the sub directory and returns the path
// relative to the media root.
func (im *Importer) media(sub, name string) string {
	file := utils.FindMedia(filepath.Join(im.mediaDir, sub), name)
	if file == "" {
		return ""
	}
	return sub + "/" + file
}

// Clubs upserts clubs by name.
func (im *Importer) Clubs(ctx context.Context, path string) (Report, error) {
	report := Report{File: ClubsFile}
	records, err := readCSV(path, clubColumns...)
	if err != nil {
		return report, err
	}

	db := im.db.WithContext(ctx)
	for _, rec := range records {
		name := rec.get("Club_name")
		if name == "" {
			report.add(resultSkipped)
			continue
		}
		counts, err := rec.ints("Win_count", "Draw_count", "Lose_count")
		if err != nil {
			log.Warn().Err(err).Str("club", name).Msg("seed: bad club row")
			report.add(resultFailed)
			continue
		}

		logo := im.media(LogoDir, name)
		if logo == "" {
			log.Warn().Str("club", name).Msg("seed: logo not found")
		}

		var club models.Club
		err = db.Where("name = ?", name).First(&club).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			club = models.Club{Name: name, Wins: counts[0], Draws: counts[1], Losses: counts[2], Logo: logo}
			err = db.Create(&club).Error
			if err == nil {
				report.add(resultCreated)
			}
		case err == nil:
			fields := map[string]interface{}{"wins": counts[0], "draws": counts[1], "losses": counts[2]}
			if logo != "" {
				fields["logo"] = logo
			}
			err = db.Model(&club).Updates(fields).Error
			if err == nil {
				report.add(resultUpdated)
			}
		}
		if err != nil {
			log.Warn().Err(err).Str("club", name).Msg("seed: saving club failed")
			report.add(resultFailed)
		}
	}
	return report, nil
}

func (im *Importer) clubIDs(ctx context.Context) (map[string]uint, error) {
	var clubs []models.Club
	if err := im.db.WithContext(ctx).Select("id", "name").Find(&clubs).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(clubs))
	for _, c := range clubs {
		ids[c.Name] = c.ID
	}
	return ids, nil
}

// Players upserts players by name and club. Rows naming an unknown club are
// skipped.
func (im *Importer) Players(ctx context.Context, path string) (Report, error) {
	report := Report{File: PlayersFile}
	records, err := readCSV(path, playerColumns...)
	if err != nil {
		return report, err
	}
	clubs, err := im.clubIDs(ctx)
	if err != nil {
		return report, err
	}

	db := im.db.WithContext(ctx)
	for _, rec := range records {
		name, team := rec.get("name"), rec.get("team")
		clubID, ok := clubs[team]
		if !ok {
			log.Warn().Str("player", name).Str("club", team).Msg("seed: club not in database, skipping player")
			report.add(resultSkipped)
			continue
		}
		n, err := rec.ints("age", "curr_goals", "curr_assists", "match_played", "curr_cleansheet")
		if err != nil {
			log.Warn().Err(err).Str("player", name).Msg("seed: bad player row")
			report.add(resultFailed)
			continue
		}

		picture := im.media(PictureDir, name)
		if picture == "" {
			log.Warn().Str("player", name).Msg("seed: picture not found")
		}

		fields := map[string]interface{}{
			"position":       rec.get("position"),
			"citizenship":    rec.get("citizenship"),
			"age":            n[0],
			"goals":          n[1],
			"assists":        n[2],
			"matches_played": n[3],
			"clean_sheets":   n[4],
		}
		if picture != "" {
			fields["profile_picture"] = picture
		}

		var p models.Player
		err = db.Where("name = ? AND club_id = ?", name, clubID).First(&p).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			p = models.Player{
				Name:           name,
				ClubID:         clubID,
				Position:       rec.get("position"),
				Citizenship:    rec.get("citizenship"),
				Age:            n[0],
				Goals:          n[1],
				Assists:        n[2],
				MatchesPlayed:  n[3],
				CleanSheets:    n[4],
				ProfilePicture: picture,
			}
			err = db.Create(&p).Error
			if err == nil {
				report.add(resultCreated)
			}
		case err == nil:
			err = db.Model(&p).Updates(fields).Error
			if err == nil {
				report.add(resultUpdated)
			}
		}
		if err != nil {
			log.Warn().Err(err).Str("player", name).Msg("seed: saving player failed")
			report.add(resultFailed)
		}
	}
	return report, nil
}

// premierLeague filters by the League column when the file has one.
func premierLeague(records []record) []record {
	if !hasColumn(records, "League") {
		return records
	}
	out := records[:0:0]
	for _, rec := range records {
		if rec.get("League") == PremierLeague {
			out = append(out, rec)
		}
	}
	return out
}

// Matches imports finished league matches. A match is identified by its
// home club, away club and week, so re-running updates scores in place.
func (im *Importer) Matches(ctx context.Context, path string) (Report, error) {
	report := Report{File: MatchesFile}
	records, err := readCSV(path, matchColumns...)
	if err != nil {
		return report, err
	}
	clubs, err := im.clubIDs(ctx)
	if err != nil {
		return report, err
	}

	db := im.db.WithContext(ctx)
	for _, rec := range premierLeague(records) {
		home, away := rec.get("Home_Team"), rec.get("Away_Team")
		homeID, okHome := clubs[home]
		awayID, okAway := clubs[away]
		if !okHome || !okAway {
			log.Warn().Str("home", home).Str("away", away).Int("line", rec.line).Msg("seed: club not in database, skipping match")
			report.add(resultSkipped)
			continue
		}
		n, err := rec.ints("Home_Team_Score", "Away_Team_Score", "Week")
		if err != nil {
			log.Warn().Err(err).Msg("seed: bad match row")
			report.add(resultFailed)
			continue
		}
		date, err := time.ParseInLocation(MatchDateLayout, rec.get("Date"), time.UTC)
		if err != nil {
			log.Warn().Err(err).Int("line", rec.line).Msg("seed: bad match date")
			report.add(resultFailed)
			continue
		}

		var m models.Match
		err = db.Where("home_club_id = ? AND away_club_id = ? AND week = ?", homeID, awayID, n[2]).First(&m).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			m = models.Match{
				HomeClubID: homeID,
				AwayClubID: awayID,
				HomeScore:  n[0],
				AwayScore:  n[1],
				Week:       n[2],
				Date:       date,
				Status:     models.MatchFinished,
			}
			err = db.Create(&m).Error
			if err == nil {
				report.add(resultCreated)
			}
		case err == nil:
			err = db.Model(&m).Updates(map[string]interface{}{
				"home_score": n[0],
				"away_score": n[1],
				"date":       date,
				"status":     models.MatchFinished,
			}).Error
			if err == nil {
				report.add(resultUpdated)
			}
		}
		if err != nil {
			log.Warn().Err(err).Int("line", rec.line).Msg("seed: saving match failed")
			report.add(resultFailed)
		}
	}
	return report, nil
}

// author returns the first user, creating an admin when the table is empty.
func (im *Importer) author(ctx context.Context) (*models.User, error) {
	db := im.db.WithContext(ctx)

	var u models.User
	err := db.Order("id ASC").First(&u).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	password := uuid.NewString()
	hashed, err := im.hash(password)
	if err != nil {
		return nil, err
	}
	u = models.User{Username: "admin", Password: hashed, IsActive: true, IsAdmin: true}
	if err := db.Create(&u).Error; err != nil {
		return nil, err
	}
	log.Warn().Str("username", u.Username).Msg("seed: created admin user as news author, change its password")
	if im.adminCreated != nil {
		im.adminCreated(u.Username, password)
	}
	return &u, nil
}

// News imports articles, upserting by title. Fully blank rows are skipped.
func (im *Importer) News(ctx context.Context, path string) (Report, error) {
	report := Report{File: NewsFile}
	records, err := readCSV(path, newsColumns...)
	if err != nil {
		return report, err
	}
	author, err := im.author(ctx)
	if err != nil {
		return report, err
	}

	db := im.db.WithContext(ctx)
	for _, rec := range records {
		title, content := rec.get("title"), rec.get("content")
		if rec.blank() || (title == "" && content == "") {
			report.add(resultSkipped)
			continue
		}

		category := models.NewsCategory(rec.get("category"))
		if !category.Valid() {
			log.Warn().Str("title", title).Str("category", string(category)).Msg("seed: unknown category, using general")
			category = models.CategoryGeneral
		}

		fields := map[string]interface{}{
			"content":     content,
			"category":    category,
			"thumbnail":   rec.get("thumbnail"),
			"is_featured": utils.ParseBool(rec.get("is_featured")),
		}

		var n models.News
		err = db.Where("title = ?", title).First(&n).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			n = models.News{
				AuthorID:   author.ID,
				Title:      title,
				Content:    content,
				Category:   category,
				Thumbnail:  rec.get("thumbnail"),
				IsFeatured: utils.ParseBool(rec.get("is_featured")),
			}
			err = db.Create(&n).Error
			if err == nil {
				report.add(resultCreated)
			}
		case err == nil:
			err = db.Model(&n).Updates(fields).Error
			if err == nil {
				report.add(resultUpdated)
			}
		}
		if err != nil {
			log.Warn().Err(err).Str("title", title).Msg("seed: saving news failed")
			report.add(resultFailed)
		}
	}
	return report, nil
}

// All imports every fixture file found in dataDir in dependency order.
// Missing files are skipped with a warning.
func (im *Importer) All(ctx context.Context, dataDir string) ([]Report, error) {
	steps := []struct {
		file string
		run  func(context.Context, string) (Report, error)
	}{
		{ClubsFile, im.Clubs},
		{PlayersFile, im.Players},
		{MatchesFile, im.Matches},
		{NewsFile, im.News},
	}

	var reports []Report
	for _, step := range steps {
		path := filepath.Join(dataDir, step.file)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("file", path).Msg("seed: fixture file missing, skipping")
			continue
		}
		report, err := step.run(ctx, path)
		if err != nil {
			return reports, fmt.Errorf("importing %s: %w", step.file, err)
		}
		log.Info().Msg(report.String())
		reports = append(reports, report)
	}
	return reports, nil
}

type clubRecord struct {
	name string
	standings.Record
}

// DeriveClubs rebuilds clubs.csv from the league rows of matches.csv and
// returns how many clubs were written. Clubs are sorted by points, then
// name.
func DeriveClubs(matchesPath, clubsPath string) (int, error) {
	records, err := readCSV(matchesPath, "Home_Team", "Away_Team", "Home_Team_Score", "Away_Team_Score")
	if err != nil {
		return 0, err
	}

	var results []standings.Result
	for _, rec := range premierLeague(records) {
		scores, err := rec.ints("Home_Team_Score", "Away_Team_Score")
		if err != nil {
			log.Warn().Err(err).Msg("seed: bad match row, ignored")
			continue
		}
		results = append(results, standings.Result{
			Home:      rec.get("Home_Team"),
			Away:      rec.get("Away_Team"),
			HomeScore: scores[0],
			AwayScore: scores[1],
		})
	}

	tally := standings.Tally(results)
	rows := make([]clubRecord, 0, len(tally))
	for name, rec := range tally {
		rows = append(rows, clubRecord{name: name, Record: *rec})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points() != rows[j].Points() {
			return rows[i].Points() > rows[j].Points()
		}
		return rows[i].name < rows[j].name
	})

	f, err := os.Create(clubsPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(clubColumns); err != nil {
		return 0, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.name, strconv.Itoa(r.Wins), strconv.Itoa(r.Draws), strconv.Itoa(r.Losses)}); err != nil {
			return 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}
	return len(rows), nil
}
