package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seelv/dancebook/internal/api/handler/v1/request"
	"github.com/seelv/dancebook/internal/api/handler/v1/response"
	"github.com/seelv/dancebook/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	AttachDetails(ctx context.Context, userID uint, details domain.UserDetails) (domain.UserDetails, error)
	UpdateMe(ctx context.Context, userID uint, email, password *string) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetMe godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.UserResponse
// @Failure      401  {object}  response.Err
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, response.NewUserResponse(user))
}

// HandleUpdateMe godoc
// @Summary      Update the email or password of the authenticated user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateMeRequest  true  "request body"
// @Success      200      {object}  response.UserResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) HandleUpdateMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateMeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateMe(ctx.Request.Context(), user.ID, req.Email, req.Password)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleUpdateMe -> h.svc.UpdateMe", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewUserResponse(updated))
}

// HandleGetDetails godoc
// @Summary      Get the authenticated user with its details
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.UserDetailsResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/details [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetDetails(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	found, err := h.svc.GetUser(ctx.Request.Context(), user.ID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleGetDetails -> h.svc.GetUser", err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewUserDetailsResponse(found))
}

// HandleAttachDetails godoc
// @Summary      Attach details to the authenticated user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.UserDetailsRequest  true  "request body"
// @Success      201      {object}  domain.UserDetails
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /users/details [post]
// @Security     BearerAuth
func (h *UserHandler) HandleAttachDetails(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UserDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	details, err := h.svc.AttachDetails(ctx.Request.Context(), user.ID, req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleAttachDetails -> h.svc.AttachDetails", err))
		return
	}

	ctx.JSON(http.StatusCreated, details)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Param        userID  path  int  true  "User ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /users/{userID} [delete]
// @Security     BearerAuth
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	userID, respErr := parseIDParam(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteUser(ctx.Request.Context(), userID); err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleDeleteUser -> h.svc.DeleteUser", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
