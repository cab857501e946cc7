package models

type NewsCategory string

const (
	CategoryTransfer NewsCategory = "transfer"
	CategoryMatch    NewsCategory = "match"
	CategoryRumor    NewsCategory = "rumor"
	CategoryAnalysis NewsCategory = "analysis"
	CategoryGeneral  NewsCategory = "general"
)

var categoryLabels = map[NewsCategory]string{
	CategoryTransfer: "Transfer News",
	CategoryMatch:    "Match Report",
	CategoryRumor:    "Rumor",
	CategoryAnalysis: "Analysis",
	CategoryGeneral:  "General",
}

func (c NewsCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the human readable name shown next to an article.
func (c NewsCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// HotViews is the view count from which an article is flagged as hot.
const HotViews = 100

type News struct {
	BaseModel
	AuthorID   uint         `gorm:"not null;index" json:"author_id"`
	Author     User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Title      string       `gorm:"size:200;not null" json:"title"`
	Content    string       `gorm:"type:text;not null" json:"content"`
	Category   NewsCategory `gorm:"size:20;not null;index" json:"category"`
	Thumbnail  string       `gorm:"size:500" json:"thumbnail"`
	IsFeatured bool         `gorm:"not null" json:"is_featured"`
	Views      int          `gorm:"not null" json:"views"`
}

func (n News) IsHot() bool {
	return n.Views >= HotViews
}
