package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seelv/dancebook/internal/api/handler/v1/request"
	"github.com/seelv/dancebook/internal/api/handler/v1/response"
	"github.com/seelv/dancebook/internal/domain"
)

type PackService interface {
	CreatePack(ctx context.Context, pack domain.Pack, eventIDs, discountIDs []uint) (domain.Pack, error)
	ListPacks(ctx context.Context) ([]domain.PackView, error)
	GetPack(ctx context.Context, id uint) (domain.PackView, error)
	DeletePack(ctx context.Context, id uint) error
	AddEventToPack(ctx context.Context, packID, eventID uint) (domain.Pack, error)
	RemoveEventFromPack(ctx context.Context, packID, eventID uint) (domain.Pack, error)
	AddDiscountToPack(ctx context.Context, packID, discountID uint) (domain.Pack, error)
	RemoveDiscountFromPack(ctx context.Context, packID, discountID uint) (domain.Pack, error)
}

type PackHandler struct {
	svc PackService
}

func NewPackHandler(svc PackService) *PackHandler {
	return &PackHandler{
		svc: svc,
	}
}

// HandleListPacks godoc
// @Summary      List bookable packs
// @Description  Every pack with its events (ordered by date and time), their artists and location, its discounts and its starting date.
// @Tags         packs
// @Produce      json
// @Success      200  {array}   domain.PackView
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /packs [get]
// @Router       /booking [get]
// @Security     BearerAuth
func (h *PackHandler) HandleListPacks(ctx *gin.Context) {
	packs, err := h.svc.ListPacks(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleListPacks -> h.svc.ListPacks", err))
		return
	}

	ctx.JSON(http.StatusOK, packs)
}

// HandleGetPack godoc
// @Summary      Get a pack
// @Tags         packs
// @Produce      json
// @Param        packID  path      int  true  "Pack ID"
// @Success      200     {object}  domain.PackView
// @Failure      404     {object}  response.Err
// @Failure      422     {object}  response.Err
// @Router       /packs/{packID} [get]
// @Security     BearerAuth
func (h *PackHandler) HandleGetPack(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "packID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	pack, err := h.svc.GetPack(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleGetPack -> h.svc.GetPack", err))
		return
	}

	ctx.JSON(http.StatusOK, pack)
}

// HandleCreatePack godoc
// @Summary      Create a pack
// @Tags         packs
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePackRequest  true  "request body"
// @Success      201      {object}  response.PackResponse
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /packs [post]
// @Security     BearerAuth
func (h *PackHandler) HandleCreatePack(ctx *gin.Context) {
	var req request.CreatePackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	pack, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreatePack(ctx.Request.Context(), pack, req.EventIDs, req.DiscountIDs)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleCreatePack -> h.svc.CreatePack", err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPackResponse(created))
}

// HandleDeletePack godoc
// @Summary      Delete a pack
// @Tags         packs
// @Param        packID  path  int  true  "Pack ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /packs/{packID} [delete]
// @Security     BearerAuth
func (h *PackHandler) HandleDeletePack(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "packID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeletePack(ctx.Request.Context(), id); err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleDeletePack -> h.svc.DeletePack", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

type packRelationFunc func(ctx context.Context, packID, otherID uint) (domain.Pack, error)

// handlePackRelation serves the add/remove endpoints of a pack's events and discounts.
func (h *PackHandler) handlePackRelation(ctx *gin.Context, param, op string, fn packRelationFunc) {
	packID, respErr := parseIDParam(ctx, "packID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	otherID, respErr := parseIDParam(ctx, param)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	pack, err := fn(ctx.Request.Context(), packID, otherID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain(op, err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPackResponse(pack))
}

// HandleAddPackEvent godoc
// @Summary      Add an event to a pack
// @Tags         packs
// @Produce      json
// @Param        packID   path      int  true  "Pack ID"
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {object}  response.PackResponse
// @Failure      404      {object}  response.Err
// @Router       /packs/{packID}/events/{eventID} [post]
// @Security     BearerAuth
func (h *PackHandler) HandleAddPackEvent(ctx *gin.Context) {
	h.handlePackRelation(ctx, "eventID", "v1.HandleAddPackEvent -> h.svc.AddEventToPack", h.svc.AddEventToPack)
}

// HandleRemovePackEvent godoc
// @Summary      Remove an event from a pack
// @Tags         packs
// @Produce      json
// @Param        packID   path      int  true  "Pack ID"
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {object}  response.PackResponse
// @Failure      404      {object}  response.Err
// @Router       /packs/{packID}/events/{eventID} [delete]
// @Security     BearerAuth
func (h *PackHandler) HandleRemovePackEvent(ctx *gin.Context) {
	h.handlePackRelation(ctx, "eventID", "v1.HandleRemovePackEvent -> h.svc.RemoveEventFromPack", h.svc.RemoveEventFromPack)
}

// HandleAddPackDiscount godoc
// @Summary      Add a discount to a pack
// @Tags         packs
// @Produce      json
// @Param        packID      path      int  true  "Pack ID"
// @Param        discountID  path      int  true  "Discount ID"
// @Success      200         {object}  response.PackResponse
// @Failure      404         {object}  response.Err
// @Router       /packs/{packID}/discounts/{discountID} [post]
// @Security     BearerAuth
func (h *PackHandler) HandleAddPackDiscount(ctx *gin.Context) {
	h.handlePackRelation(ctx, "discountID", "v1.HandleAddPackDiscount -> h.svc.AddDiscountToPack", h.svc.AddDiscountToPack)
}

// HandleRemovePackDiscount godoc
// @Summary      Remove a discount from a pack
// @Tags         packs
// @Produce      json
// @Param        packID      path      int  true  "Pack ID"
// @Param        discountID  path      int  true  "Discount ID"
// @Success      200         {object}  response.PackResponse
// @Failure      404         {object}  response.Err
// @Router       /packs/{packID}/discounts/{discountID} [delete]
// @Security     BearerAuth
func (h *PackHandler) HandleRemovePackDiscount(ctx *gin.Context) {
	h.handlePackRelation(ctx, "discountID", "v1.HandleRemovePackDiscount -> h.svc.RemoveDiscountFromPack", h.svc.RemoveDiscountFromPack)
}
