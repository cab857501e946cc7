package match

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/eplradar/internal/events"
	"github.com/DhavalSuthar-24/eplradar/internal/metrics"
	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
	"github.com/DhavalSuthar-24/eplradar/pkg/validator"
)

// @Summary      My predictions
// @Tags         Predictions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]PredictionResponse}
// @Router       /predictions [get]
func (mc *MatchController) ListPredictions(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	preds, err := mc.repo.UserPredictions(c.Request.Context(), userID)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	out := make([]PredictionResponse, len(preds))
	for i, p := range preds {
		out[i] = toPredictionResponse(p, mc.appConfig.App.MediaURL)
	}
	responses.SendSuccess(c, http.StatusOK, "Predictions retrieved", out)
}

// @Summary      Predict a score
// @Description  One prediction per user and match, accepted only while the match is upcoming.
// @Tags         Predictions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        prediction  body  PredictionRequest  true  "Prediction"
// @Success      201  {object}  responses.SuccessResponse{data=PredictionResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse "Duplicate or match already started"
// @Router       /predictions [post]
func (mc *MatchController) CreatePrediction(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid prediction", validator.ParseError(err))
		return
	}

	p := &models.Prediction{
		UserID:    userID,
		MatchID:   req.MatchID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
	}
	if err := mc.repo.CreatePrediction(c.Request.Context(), p); err != nil {
		responses.FromError(c, "prediction", err)
		return
	}

	metrics.PredictionsTotal.WithLabelValues("create").Inc()
	resp := toPredictionResponse(*p, mc.appConfig.App.MediaURL)
	events.Emit(c.Request.Context(), mc.notify.publisher, events.PredictionCreated, strconv.FormatUint(uint64(p.ID), 10), resp)
	responses.SendSuccess(c, http.StatusCreated, "Prediction saved", resp)
}

// @Summary      Change a prediction
// @Tags         Predictions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id          path  int                      true  "Prediction ID"
// @Param        prediction  body  UpdatePredictionRequest  true  "New score"
// @Success      200  {object}  responses.SuccessResponse{data=PredictionResponse}
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /predictions/{id} [put]
func (mc *MatchController) UpdatePrediction(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	var req UpdatePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid prediction", validator.ParseError(err))
		return
	}

	p, err := mc.repo.UpdatePrediction(c.Request.Context(), id, userID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		responses.FromError(c, "prediction", err)
		return
	}
	metrics.PredictionsTotal.WithLabelValues("update").Inc()
	responses.SendSuccess(c, http.StatusOK, "Prediction updated", toPredictionResponse(*p, mc.appConfig.App.MediaURL))
}

// @Summary      Withdraw a prediction
// @Tags         Predictions
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Prediction ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse
// @Router       /predictions/{id} [delete]
func (mc *MatchController) DeletePrediction(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	if err := mc.repo.DeletePrediction(c.Request.Context(), id, userID); err != nil {
		responses.FromError(c, "prediction", err)
		return
	}
	metrics.PredictionsTotal.WithLabelValues("delete").Inc()
	responses.SendSuccess(c, http.StatusOK, "Prediction deleted", nil)
}

// BuildLeaderboard totals points per user. Ties break on exact hits, then
// username.
func BuildLeaderboard(preds []models.Prediction) []LeaderboardEntry {
	byUser := map[uint]*LeaderboardEntry{}
	for _, p := range preds {
		e, ok := byUser[p.UserID]
		if !ok {
			e = &LeaderboardEntry{UserID: p.UserID, Username: p.User.Username}
			byUser[p.UserID] = e
		}
		outcome, points := Score(p, p.Match)
		if outcome == OutcomePending {
			continue
		}
		e.Predictions++
		e.Points += points
		switch outcome {
		case OutcomeExact:
			e.Exact++
		case OutcomeResult:
			e.Outcomes++
		}
	}

	board := make([]LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		board = append(board, *e)
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].Points != board[j].Points {
			return board[i].Points > board[j].Points
		}
		if board[i].Exact != board[j].Exact {
			return board[i].Exact > board[j].Exact
		}
		return board[i].Username < board[j].Username
	})
	for i := range board {
		board[i].Rank = i + 1
	}
	return board
}

// @Summary      Prediction leaderboard
// @Tags         Predictions
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=[]LeaderboardEntry}
// @Router       /predictions/leaderboard [get]
func (mc *MatchController) Leaderboard(c *gin.Context) {
	preds, err := mc.repo.ScoredPredictions(c.Request.Context())
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Leaderboard retrieved", BuildLeaderboard(preds))
}
