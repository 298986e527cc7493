package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seelv/dancebook/internal/api/handler/v1/request"
	"github.com/seelv/dancebook/internal/api/handler/v1/response"
	"github.com/seelv/dancebook/internal/domain"
)

type CatalogService interface {
	CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error)
	GetLocation(ctx context.Context, id uint) (domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	GetArtist(ctx context.Context, id uint) (domain.Artist, error)
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	CreateEvent(ctx context.Context, event domain.Event, artistIDs []uint) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	AddArtistToEvent(ctx context.Context, eventID, artistID uint) (domain.Event, error)
	RemoveArtistFromEvent(ctx context.Context, eventID, artistID uint) (domain.Event, error)
	CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	ListDiscounts(ctx context.Context) ([]domain.Discount, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListLocations godoc
// @Summary      List locations
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Location
// @Failure      401  {object}  response.Err
// @Router       /locations [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleListLocations(ctx *gin.Context) {
	locations, err := h.svc.ListLocations(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleListLocations -> h.svc.ListLocations", err))
		return
	}

	ctx.JSON(http.StatusOK, locations)
}

// HandleGetLocation godoc
// @Summary      Get a location
// @Tags         catalog
// @Produce      json
// @Param        locationID  path      int  true  "Location ID"
// @Success      200         {object}  domain.Location
// @Failure      404         {object}  response.Err
// @Router       /locations/{locationID} [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleGetLocation(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "locationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	location, err := h.svc.GetLocation(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleGetLocation -> h.svc.GetLocation", err))
		return
	}

	ctx.JSON(http.StatusOK, location)
}

// HandleCreateLocation godoc
// @Summary      Create a location
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateLocationRequest  true  "request body"
// @Success      201      {object}  domain.Location
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /locations [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateLocation(ctx *gin.Context) {
	var req request.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	location, err := h.svc.CreateLocation(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleCreateLocation -> h.svc.CreateLocation", err))
		return
	}

	ctx.JSON(http.StatusCreated, location)
}

// HandleListArtists godoc
// @Summary      List artists
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Artist
// @Failure      401  {object}  response.Err
// @Router       /artists [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleListArtists(ctx *gin.Context) {
	artists, err := h.svc.ListArtists(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleListArtists -> h.svc.ListArtists", err))
		return
	}

	ctx.JSON(http.StatusOK, artists)
}

// HandleGetArtist godoc
// @Summary      Get an artist
// @Tags         catalog
// @Produce      json
// @Param        artistID  path      int  true  "Artist ID"
// @Success      200       {object}  domain.Artist
// @Failure      404       {object}  response.Err
// @Router       /artists/{artistID} [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleGetArtist(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "artistID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	artist, err := h.svc.GetArtist(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleGetArtist -> h.svc.GetArtist", err))
		return
	}

	ctx.JSON(http.StatusOK, artist)
}

// HandleCreateArtist godoc
// @Summary      Create an artist
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateArtistRequest  true  "request body"
// @Success      201      {object}  domain.Artist
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /artists [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateArtist(ctx *gin.Context) {
	var req request.CreateArtistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	artist, err := h.svc.CreateArtist(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleCreateArtist -> h.svc.CreateArtist", err))
		return
	}

	ctx.JSON(http.StatusCreated, artist)
}

// HandleListEvents godoc
// @Summary      List events with their location and artists
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  response.Err
// @Router       /events [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleListEvents -> h.svc.ListEvents", err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         catalog
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleGetEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleGetEvent -> h.svc.GetEvent", err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event, req.ArtistIDs)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleCreateEvent -> h.svc.CreateEvent", err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleAddEventArtist godoc
// @Summary      Add an artist to an event
// @Tags         catalog
// @Produce      json
// @Param        eventID   path      int  true  "Event ID"
// @Param        artistID  path      int  true  "Artist ID"
// @Success      200       {object}  domain.Event
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /events/{eventID}/artists/{artistID} [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleAddEventArtist(ctx *gin.Context) {
	eventID, artistID, respErr := parseEventArtistParams(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.AddArtistToEvent(ctx.Request.Context(), eventID, artistID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleAddEventArtist -> h.svc.AddArtistToEvent", err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleRemoveEventArtist godoc
// @Summary      Remove an artist from an event
// @Tags         catalog
// @Produce      json
// @Param        eventID   path      int  true  "Event ID"
// @Param        artistID  path      int  true  "Artist ID"
// @Success      200       {object}  domain.Event
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /events/{eventID}/artists/{artistID} [delete]
// @Security     BearerAuth
func (h *CatalogHandler) HandleRemoveEventArtist(ctx *gin.Context) {
	eventID, artistID, respErr := parseEventArtistParams(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.RemoveArtistFromEvent(ctx.Request.Context(), eventID, artistID)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleRemoveEventArtist -> h.svc.RemoveArtistFromEvent", err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

func parseEventArtistParams(ctx *gin.Context) (uint, uint, *response.Err) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		return 0, 0, respErr
	}
	artistID, respErr := parseIDParam(ctx, "artistID")
	if respErr != nil {
		return 0, 0, respErr
	}

	return eventID, artistID, nil
}

// HandleListDiscounts godoc
// @Summary      List discounts
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Discount
// @Failure      401  {object}  response.Err
// @Router       /discounts [get]
// @Security     BearerAuth
func (h *CatalogHandler) HandleListDiscounts(ctx *gin.Context) {
	discounts, err := h.svc.ListDiscounts(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleListDiscounts -> h.svc.ListDiscounts", err))
		return
	}

	ctx.JSON(http.StatusOK, discounts)
}

// HandleCreateDiscount godoc
// @Summary      Create a discount
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateDiscountRequest  true  "request body"
// @Success      201      {object}  domain.Discount
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Router       /discounts [post]
// @Security     BearerAuth
func (h *CatalogHandler) HandleCreateDiscount(ctx *gin.Context) {
	var req request.CreateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	discount, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateDiscount(ctx.Request.Context(), discount)
	if err != nil {
		response.RenderErr(ctx, response.FromDomain("v1.HandleCreateDiscount -> h.svc.CreateDiscount", err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
