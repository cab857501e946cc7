package club

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
	"github.com/DhavalSuthar-24/eplradar/pkg/validator"
)

type ClubController struct {
	repo      ClubRepository
	appConfig *config.Config
}

func NewClubController(repo ClubRepository, appConfig *config.Config) *ClubController {
	return &ClubController{repo: repo, appConfig: appConfig}
}

// @Summary      List clubs
// @Description  All clubs with derived points. sort is one of name (default), points or wins.
// @Tags         Clubs
// @Produce      json
// @Param        sort  query  string  false  "name | points | wins"
// @Success      200  {object}  responses.SuccessResponse{data=[]ClubResponse}
// @Router       /clubs [get]
func (cc *ClubController) ListClubs(c *gin.Context) {
	clubs, err := cc.repo.List(c.Request.Context(), c.DefaultQuery("sort", SortByName))
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	out := make([]ClubResponse, len(clubs))
	for i, cl := range clubs {
		out[i] = toClubResponse(cl, cc.appConfig.App.MediaURL)
	}
	responses.SendSuccess(c, http.StatusOK, "Clubs retrieved", out)
}

// @Summary      Club detail
// @Description  Club record, roster and fixtures ordered by kickoff.
// @Tags         Clubs
// @Produce      json
// @Param        name  path  string  true  "Club name"
// @Success      200  {object}  responses.SuccessResponse{data=ClubDetailResponse}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /clubs/{name} [get]
func (cc *ClubController) GetClub(c *gin.Context) {
	ctx := c.Request.Context()
	cl, err := cc.repo.GetByName(ctx, c.Param("name"))
	if err != nil {
		responses.FromError(c, "Club", err)
		return
	}

	players, err := cc.repo.Players(ctx, cl.ID)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	matches, err := cc.repo.Fixtures(ctx, cl.ID)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	media := cc.appConfig.App.MediaURL
	detail := ClubDetailResponse{
		Club:     toClubResponse(*cl, media),
		Players:  make([]PlayerSummary, len(players)),
		Fixtures: make([]FixtureResponse, len(matches)),
	}
	for i, p := range players {
		detail.Players[i] = PlayerSummary{
			ID:             p.ID,
			Name:           p.Name,
			Position:       p.Position,
			Age:            p.Age,
			Citizenship:    p.Citizenship,
			Goals:          p.Goals,
			Assists:        p.Assists,
			ProfilePicture: utils.MediaURL(media, p.ProfilePicture),
		}
	}
	for i, m := range matches {
		isHome := m.HomeClubID == cl.ID
		if isHome {
			detail.HomeMatches++
		} else {
			detail.AwayMatches++
		}
		detail.Fixtures[i] = FixtureResponse{
			ID:        m.ID,
			Week:      m.Week,
			Date:      m.Date,
			Status:    m.Status,
			HomeClub:  m.HomeClub.Name,
			AwayClub:  m.AwayClub.Name,
			HomeScore: m.HomeScore,
			AwayScore: m.AwayScore,
			IsHome:    isHome,
		}
	}

	responses.SendSuccess(c, http.StatusOK, "Club retrieved", detail)
}

// @Summary      List club comments
// @Tags         Comments
// @Produce      json
// @Param        name  path  string  true  "Club name"
// @Success      200  {object}  responses.SuccessResponse{data=[]CommentResponse}
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /clubs/{name}/comments [get]
func (cc *ClubController) ListComments(c *gin.Context) {
	ctx := c.Request.Context()
	cl, err := cc.repo.GetByName(ctx, c.Param("name"))
	if err != nil {
		responses.FromError(c, "Club", err)
		return
	}

	comments, err := cc.repo.Comments(ctx, cl.ID)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	viewer, _ := middleware.GetUserIDFromContext(c)
	out := make([]CommentResponse, len(comments))
	for i, cm := range comments {
		out[i] = toCommentResponse(cm, viewer)
	}
	responses.SendSuccess(c, http.StatusOK, "Comments retrieved", out)
}

func bindComment(c *gin.Context) (string, bool) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid comment", validator.ParseError(err))
		return "", false
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		responses.ValidationError(c, "Invalid comment", map[string]string{"content": "content is required"})
		return "", false
	}
	return content, true
}

// @Summary      Comment on a club
// @Tags         Comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        name     path  string          true  "Club name"
// @Param        comment  body  CommentRequest  true  "Comment"
// @Success      201  {object}  responses.SuccessResponse{data=CommentResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /clubs/{name}/comments [post]
func (cc *ClubController) AddComment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	content, ok := bindComment(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	cl, err := cc.repo.GetByName(ctx, c.Param("name"))
	if err != nil {
		responses.FromError(c, "Club", err)
		return
	}

	cm := &models.ClubComment{UserID: userID, ClubID: cl.ID, Content: content}
	if err := cc.repo.CreateComment(ctx, cm); err != nil {
		responses.InternalServerError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Comment added", toCommentResponse(*cm, userID))
}

// @Summary      Edit own comment
// @Tags         Comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  int             true  "Comment ID"
// @Param        comment  body  CommentRequest  true  "Comment"
// @Success      200  {object}  responses.SuccessResponse{data=CommentResponse}
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /comments/{id} [put]
func (cc *ClubController) UpdateComment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}
	content, ok := bindComment(c)
	if !ok {
		return
	}

	cm, err := cc.repo.UpdateComment(c.Request.Context(), id, userID, content)
	if err != nil {
		responses.FromError(c, "comment", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Comment updated", toCommentResponse(*cm, userID))
}

// @Summary      Delete own comment
// @Tags         Comments
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Comment ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /comments/{id} [delete]
func (cc *ClubController) DeleteComment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	if err := cc.repo.DeleteComment(c.Request.Context(), id, userID); err != nil {
		responses.FromError(c, "comment", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Comment deleted", nil)
}

// @Summary      Recompute club records
// @Description  Rebuild every club's win/draw/loss counters from finished matches.
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=RecomputeResponse}
// @Failure      403  {object}  responses.ErrorResponse
// @Router       /admin/clubs/recompute [post]
func (cc *ClubController) RecomputeRecords(c *gin.Context) {
	n, err := cc.repo.RecomputeRecords(c.Request.Context())
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club records recomputed", RecomputeResponse{ClubsUpdated: n})
}
