// Package home serves the landing page summary: the top of the table and the
// latest headlines.
package home

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/news"
	"github.com/DhavalSuthar-24/eplradar/internal/standings"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
)

const (
	Title           = "EPLRadar"
	DefaultTopClubs = 5
	LatestNews      = 3
)

type HomeResponse struct {
	Title      string              `json:"title"`
	TopClubs   []standings.Row     `json:"top_clubs"`
	LatestNews []news.NewsResponse `json:"latest_news"`
}

type HomeController struct {
	table     standings.Repository
	news      news.NewsRepository
	appConfig *config.Config
}

func NewHomeController(table standings.Repository, newsRepo news.NewsRepository, appConfig *config.Config) *HomeController {
	return &HomeController{table: table, news: newsRepo, appConfig: appConfig}
}

// @Summary      Landing page
// @Tags         Home
// @Produce      json
// @Param        limit  query  int  false  "Number of clubs, default 5"
// @Success      200  {object}  responses.SuccessResponse{data=HomeResponse}
// @Router       /home [get]
func (hc *HomeController) Home(c *gin.Context) {
	ctx := c.Request.Context()

	limit := utils.QueryInt(c, "limit", DefaultTopClubs)
	if limit < 1 {
		limit = DefaultTopClubs
	}

	table, err := standings.Load(ctx, hc.table)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	if len(table) > limit {
		table = table[:limit]
	}
	for i := range table {
		table[i].Logo = utils.MediaURL(hc.appConfig.App.MediaURL, table[i].Logo)
	}

	latest, err := hc.news.Latest(ctx, LatestNews)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	items := make([]news.NewsResponse, len(latest))
	for i, n := range latest {
		items[i] = news.ToNewsResponse(n)
	}

	responses.SendSuccess(c, http.StatusOK, "Home retrieved", HomeResponse{
		Title:      Title,
		TopClubs:   table,
		LatestNews: items,
	})
}

func HomeRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	homeController := NewHomeController(standings.NewRepository(db), news.NewNewsRepository(db), appConfig)
	router.GET("/home", homeController.Home)
}
