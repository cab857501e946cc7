package news

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/events"
	"github.com/DhavalSuthar-24/eplradar/internal/metrics"
	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
	"github.com/DhavalSuthar-24/eplradar/pkg/validator"
)

type NewsController struct {
	repo      NewsRepository
	appConfig *config.Config
	publisher events.Publisher
}

func NewNewsController(repo NewsRepository, appConfig *config.Config, publisher events.Publisher) *NewsController {
	return &NewsController{repo: repo, appConfig: appConfig, publisher: publisher}
}

// @Summary      List news
// @Tags         News
// @Produce      json
// @Param        category  query  string  false  "transfer | match | rumor | analysis | general | all"
// @Param        sort      query  string  false  "latest | views_asc | views_desc"
// @Success      200  {object}  responses.SuccessResponse{data=[]NewsResponse}
// @Router       /news [get]
func (nc *NewsController) ListNews(c *gin.Context) {
	items, err := nc.repo.List(c.Request.Context(), c.Query("category"), c.DefaultQuery("sort", SortLatest))
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	out := make([]NewsResponse, len(items))
	for i, n := range items {
		out[i] = ToNewsResponse(n)
	}
	responses.SendSuccess(c, http.StatusOK, "News retrieved", out)
}

// @Summary      News detail
// @Description  Every read counts as one view.
// @Tags         News
// @Produce      json
// @Param        id  path  int  true  "News ID"
// @Success      200  {object}  responses.SuccessResponse{data=NewsResponse}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /news/{id} [get]
func (nc *NewsController) GetNews(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	n, err := nc.repo.View(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "News", err)
		return
	}
	metrics.NewsViewsTotal.Inc()
	responses.SendSuccess(c, http.StatusOK, "News retrieved", ToNewsResponse(*n))
}

func bindNews(c *gin.Context) (NewsRequest, bool) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid news", validator.ParseError(err))
		return req, false
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	fields := map[string]string{}
	if req.Title == "" {
		fields["title"] = "title is required"
	}
	if req.Content == "" {
		fields["content"] = "content is required"
	}
	if len(fields) > 0 {
		responses.ValidationError(c, "Invalid news", fields)
		return req, false
	}
	return req, true
}

// @Summary      Publish news
// @Tags         News
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        news  body  NewsRequest  true  "Article"
// @Success      201  {object}  responses.SuccessResponse{data=NewsResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /news [post]
func (nc *NewsController) CreateNews(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	req, ok := bindNews(c)
	if !ok {
		return
	}

	n := &models.News{
		AuthorID:   userID,
		Title:      req.Title,
		Content:    req.Content,
		Category:   models.NewsCategory(req.Category),
		Thumbnail:  req.Thumbnail,
		IsFeatured: req.IsFeatured,
	}
	if err := nc.repo.Create(c.Request.Context(), n); err != nil {
		responses.InternalServerError(c, err)
		return
	}

	resp := ToNewsResponse(*n)
	events.Emit(c.Request.Context(), nc.publisher, events.NewsCreated, strconv.FormatUint(uint64(n.ID), 10), resp)
	responses.SendSuccess(c, http.StatusCreated, "News created", resp)
}

// @Summary      Edit own news
// @Tags         News
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "News ID"
// @Param        news  body  NewsRequest  true  "Article"
// @Success      200  {object}  responses.SuccessResponse{data=NewsResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /news/{id} [put]
func (nc *NewsController) UpdateNews(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}
	req, ok := bindNews(c)
	if !ok {
		return
	}

	n, err := nc.repo.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		responses.FromError(c, "News", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "News updated", ToNewsResponse(*n))
}

// @Summary      Delete own news
// @Tags         News
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "News ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /news/{id} [delete]
func (nc *NewsController) DeleteNews(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	if err := nc.repo.Delete(c.Request.Context(), id, userID); err != nil {
		responses.FromError(c, "News", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "News deleted", nil)
}
