package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seelv/dancebook/internal/api/handler/v1/request"
	"github.com/seelv/dancebook/internal/api/handler/v1/response"
	"github.com/seelv/dancebook/internal/api/middleware"
	"github.com/seelv/dancebook/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password string) (domain.User, error)
	SignupWithDetails(ctx context.Context, email, password string, details domain.UserDetails) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	IssueToken(user domain.User, userAgent string) (string, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

// HandleCreateUser godoc
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateUserRequest  true  "request body"
// @Success      201      {object}  response.UserResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/create [post]
func (h *AuthHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleCreateUser -> h.svc.Signup", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewUserResponse(user))
}

// HandleCreateUserWithDetails godoc
// @Summary      Create a new user together with its details
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateUserWithDetailsRequest  true  "request body"
// @Success      201      {object}  response.UserDetailsResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/create_details [post]
func (h *AuthHandler) HandleCreateUserWithDetails(ctx *gin.Context) {
	var req request.CreateUserWithDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.SignupWithDetails(ctx.Request.Context(), req.Email, req.Password, req.UserDetails.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleCreateUserWithDetails -> h.svc.SignupWithDetails", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewUserDetailsResponse(user))
}

// HandleToken godoc
// @Summary      Issue an authentication token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.TokenRequest  true  "request body"
// @Success      200      {object}  response.TokenResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/token [post]
func (h *AuthHandler) HandleToken(ctx *gin.Context) {
	req := request.TokenRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleToken -> h.svc.Login", err))

		return
	}

	token, err := h.svc.IssueToken(user, ctx.Request.UserAgent())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleToken -> h.svc.IssueToken", err))

		return
	}

	ctx.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

// HandleLogout godoc
// @Summary      Revoke the presented token
// @Tags         users
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	if err := h.svc.Logout(ctx.Request.Context(), middleware.TokenFromContext(ctx)); err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleLogout -> h.svc.Logout", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
