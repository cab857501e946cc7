package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/middleware"
	"github.com/DhavalSuthar-24/eplradar/internal/models"
	"github.com/DhavalSuthar-24/eplradar/pkg/apperr"
	"github.com/DhavalSuthar-24/eplradar/pkg/responses"
	"github.com/DhavalSuthar-24/eplradar/pkg/token"
	"github.com/DhavalSuthar-24/eplradar/pkg/utils"
	"github.com/DhavalSuthar-24/eplradar/pkg/validator"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
	hash   func(string) (string, error)
	now    func() time.Time
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
		hash:   utils.HashPassword,
		now:    time.Now,
	}
}

// setSession writes cookies with net/http directly. gin's SetCookie
// query-escapes values, which would mangle the RFC3339 last_login stamp.
func (ac *AuthController) setSession(c *gin.Context, value string, maxAge int, lastLogin string) {
	for _, ck := range []*http.Cookie{
		{Name: ac.config.Cookie.Name, Value: value, HttpOnly: true},
		{Name: LastLoginCookie, Value: lastLogin},
	} {
		ck.Path = "/"
		ck.MaxAge = maxAge
		ck.Secure = ac.config.Cookie.Secure
		ck.SameSite = http.SameSiteLaxMode
		http.SetCookie(c.Writer, ck)
	}
}

func (ac *AuthController) clearSession(c *gin.Context) {
	ac.setSession(c, "", -1, "")
}

// @Summary      Register a new user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Username and password"
// @Success      201  {object}  responses.SuccessResponse{data=UserResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      409  {object}  responses.ErrorResponse "Username taken"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid registration", validator.ParseError(err))
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	ctx := c.Request.Context()
	if _, err := ac.repo.GetUserByUsername(ctx, req.Username); err == nil {
		responses.Conflict(c, "Username is already taken")
		return
	} else if !errors.Is(err, apperr.ErrNotFound) {
		responses.InternalServerError(c, err)
		return
	}

	hashed, err := ac.hash(req.Password)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	u := &models.User{Username: req.Username, Password: hashed, IsActive: true}
	if err := ac.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			responses.Conflict(c, "Username is already taken")
			return
		}
		responses.InternalServerError(c, err)
		return
	}

	log.Info().Uint("user_id", u.ID).Str("username", u.Username).Msg("user registered")
	responses.SendSuccess(c, http.StatusCreated, "Registration successful", toUserResponse(u))
}

// @Summary      Login
// @Description  Sets an HttpOnly session cookie and a last_login cookie. The token is also returned for Bearer use.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  responses.SuccessResponse{data=LoginResponse}
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      429  {object}  responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Username and password are required", validator.ParseError(err))
		return
	}

	ctx := c.Request.Context()
	u, err := ac.repo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		responses.InternalServerError(c, err)
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid username or password")
		return
	}
	if !u.IsActive {
		responses.Unauthorized(c, "Login failed, account is disabled.")
		return
	}

	signed, err := token.GenerateJWT(u.ID, ac.config.JWT.Secret, ac.config.JWT.TTL)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}

	now := ac.now().UTC()
	if err := ac.repo.TouchLastLogin(ctx, u.ID, now); err != nil {
		log.Warn().Err(err).Uint("user_id", u.ID).Msg("could not record last login")
	}

	ac.setSession(c, signed, int(ac.config.JWT.TTL.Seconds()), now.Format(time.RFC3339))
	responses.SendSuccess(c, http.StatusOK, "Login successful", LoginResponse{
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
		Token:    signed,
	})
}

// @Summary      Logout
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	ac.clearSession(c)
	responses.SendSuccess(c, http.StatusOK, "Logged out", nil)
}

// @Summary      Current user
// @Tags         Profile
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse{data=UserResponse}
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := ac.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		responses.FromError(c, "User", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved", toUserResponse(u))
}

// @Summary      Change password
// @Tags         Profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        passwords  body  ChangePasswordRequest  true  "Current and new password"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, "Invalid password change", validator.ParseError(err))
		return
	}

	ctx := c.Request.Context()
	u, err := ac.repo.GetUserByID(ctx, userID)
	if err != nil {
		responses.FromError(c, "User", err)
		return
	}
	if !utils.CheckPassword(u.Password, req.CurrentPassword) {
		responses.Unauthorized(c, "Incorrect current password")
		return
	}
	if req.CurrentPassword == req.NewPassword {
		responses.BadRequest(c, "New password cannot be the same as the current password")
		return
	}

	hashed, err := ac.hash(req.NewPassword)
	if err != nil {
		responses.InternalServerError(c, err)
		return
	}
	if err := ac.repo.UpdatePassword(ctx, userID, hashed); err != nil {
		responses.InternalServerError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Password changed", nil)
}

// @Summary      Delete own account
// @Description  Removes the account together with its comments, favourites, predictions and news.
// @Tags         Profile
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /auth/me [delete]
func (ac *AuthController) DeleteAccount(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	if err := ac.repo.DeleteUser(c.Request.Context(), userID); err != nil {
		responses.FromError(c, "User", err)
		return
	}
	ac.clearSession(c)
	log.Info().Uint("user_id", userID).Msg("account deleted")
	responses.SendSuccess(c, http.StatusOK, "Account deleted", nil)
}

// @Summary      Delete a user
// @Tags         Admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  responses.SuccessResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /admin/users/{id} [delete]
func (ac *AuthController) AdminDeleteUser(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		return
	}

	if err := ac.repo.DeleteUser(c.Request.Context(), id); err != nil {
		responses.FromError(c, "User", err)
		return
	}
	adminID, _ := middleware.GetUserIDFromContext(c)
	log.Info().Uint("user_id", id).Uint("admin_id", adminID).Msg("user deleted by admin")
	responses.SendSuccess(c, http.StatusOK, "User deleted", nil)
}
