package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/wt-exchange/internal/api/middleware"
	"github.com/feral-file/wt-exchange/internal/api/shared/dto"
	"github.com/feral-file/wt-exchange/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetCatalog lists the building types
	// GET /api/v1/catalog
	GetCatalog(c *gin.Context)

	// ListParcels retrieves parcels with optional filters
	// GET /api/v1/parcels?owner=<id>&street=<id>
	ListParcels(c *gin.Context)

	// GetParcel retrieves a single parcel
	// GET /api/v1/parcels/:id
	GetParcel(c *gin.Context)

	// CreateParcel creates an unowned parcel (admin)
	// POST /api/v1/parcels
	CreateParcel(c *gin.Context)

	// DeleteParcel removes a parcel (admin)
	// DELETE /api/v1/parcels/:id
	DeleteParcel(c *gin.Context)

	// ResetParcel clears owner, type and level (admin)
	// POST /api/v1/parcels/:id/reset
	ResetParcel(c *gin.Context)

	// BuyParcel buys an unowned parcel
	// POST /api/v1/parcels/:id/buy
	BuyParcel(c *gin.Context)

	// UpgradeParcel upgrades an owned parcel
	// POST /api/v1/parcels/:id/upgrade
	UpgradeParcel(c *gin.Context)

	// ListStreets lists every street
	// GET /api/v1/streets
	ListStreets(c *gin.Context)

	// GetStreet retrieves a single street
	// GET /api/v1/streets/:id
	GetStreet(c *gin.Context)

	// ClaimStreet claims a street
	// POST /api/v1/streets/:id/claim
	ClaimStreet(c *gin.Context)

	// ListOffers lists offers newest first
	// GET /api/v1/offers?owner=<id>&status=<status>
	ListOffers(c *gin.Context)

	// GetOffer retrieves a single offer
	// GET /api/v1/offers/:id
	GetOffer(c *gin.Context)

	// ProposeOffer proposes an offer on a parcel
	// POST /api/v1/offers
	ProposeOffer(c *gin.Context)

	// AcceptOffer accepts an offer as its counterparty
	// POST /api/v1/offers/:id/accept
	AcceptOffer(c *gin.Context)

	// RejectOffer rejects an offer as its counterparty
	// POST /api/v1/offers/:id/reject
	RejectOffer(c *gin.Context)

	// CancelOffer cancels an offer as its proposer
	// POST /api/v1/offers/:id/cancel
	CancelOffer(c *gin.Context)

	// ExpireOffers expires every past-due offer (admin)
	// POST /api/v1/offers/gc
	ExpireOffers(c *gin.Context)

	// GetSummary returns the economy summary
	// GET /api/v1/economy/summary
	GetSummary(c *gin.Context)

	// GetEconomyHealth returns the tick cadence
	// GET /api/v1/economy/health
	GetEconomyHealth(c *gin.Context)

	// RunTick runs an income tick (admin)
	// POST /api/v1/economy/tick
	RunTick(c *gin.Context)

	// GetBalance returns the balance of an owner
	// GET /api/v1/balances/:owner
	GetBalance(c *gin.Context)

	// AdjustBalance applies a balance delta (admin)
	// POST /api/v1/balances/:owner/adjust
	AdjustBalance(c *gin.Context)

	// TransferBalance moves funds between two owners (admin)
	// POST /api/v1/economy/transfer
	TransferBalance(c *gin.Context)

	// GetSeason returns the season window
	// GET /api/v1/season
	GetSeason(c *gin.Context)

	// GetSettings returns the current settings version (admin)
	// GET /api/v1/settings
	GetSettings(c *gin.Context)

	// UpdateSettings commits a new settings version (admin)
	// PUT /api/v1/settings
	UpdateSettings(c *gin.Context)

	// ListSettingsVersions lists every settings version (admin)
	// GET /api/v1/settings/versions
	ListSettingsVersions(c *gin.Context)

	// RollbackSettings restores an earlier settings version (admin)
	// POST /api/v1/settings/versions/:version/rollback
	RollbackSettings(c *gin.Context)

	// ListEvents returns a page of the events feed
	// GET /api/v1/events?offset=<offset>&limit=<limit>
	ListEvents(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// actingID returns the authenticated identity or responds 401
func actingID(c *gin.Context) (string, bool) {
	id := middleware.ActingID(c)
	if id == "" {
		respondUnauthorized(c, "Missing acting identity")
		return "", false
	}
	return id, true
}

func (h *handler) GetCatalog(c *gin.Context) {
	response, err := h.executor.GetCatalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListParcels(c *gin.Context) {
	queryParams, err := ParseListParcelsQuery(c)
	if err != nil {
		respondValidationError(c, err)
		return
	}

	response, err := h.executor.GetParcels(c.Request.Context(), queryParams.Owner, queryParams.Street)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetParcel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Parcel ID is required")
		return
	}

	parcel, err := h.executor.GetParcel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parcel)
}

func (h *handler) CreateParcel(c *gin.Context) {
	var req dto.CreateParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	parcel, err := h.executor.CreateParcel(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, parcel)
}

func (h *handler) DeleteParcel(c *gin.Context) {
	if err := h.executor.DeleteParcel(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) ResetParcel(c *gin.Context) {
	parcel, err := h.executor.ResetParcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parcel)
}

func (h *handler) BuyParcel(c *gin.Context) {
	buyer, ok := actingID(c)
	if !ok {
		return
	}

	var req dto.BuyParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	parcel, err := h.executor.BuyParcel(c.Request.Context(), c.Param("id"), buyer, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parcel)
}

func (h *handler) UpgradeParcel(c *gin.Context) {
	owner, ok := actingID(c)
	if !ok {
		return
	}

	parcel, err := h.executor.UpgradeParcel(c.Request.Context(), c.Param("id"), owner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parcel)
}

func (h *handler) ListStreets(c *gin.Context) {
	response, err := h.executor.GetStreets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetStreet(c *gin.Context) {
	street, err := h.executor.GetStreet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, street)
}

func (h *handler) ClaimStreet(c *gin.Context) {
	buyer, ok := actingID(c)
	if !ok {
		return
	}

	response, err := h.executor.ClaimStreet(c.Request.Context(), c.Param("id"), buyer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListOffers(c *gin.Context) {
	queryParams, err := ParseListOffersQuery(c)
	if err != nil {
		respondValidationError(c, err)
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	response, err := h.executor.GetOffers(c.Request.Context(), queryParams.Owner, queryParams.OfferStatus())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetOffer(c *gin.Context) {
	offer, err := h.executor.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (h *handler) ProposeOffer(c *gin.Context) {
	from, ok := actingID(c)
	if !ok {
		return
	}

	var req dto.ProposeOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	offer, err := h.executor.ProposeOffer(c.Request.Context(), from, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, offer)
}

func (h *handler) AcceptOffer(c *gin.Context) {
	id, ok := actingID(c)
	if !ok {
		return
	}

	offer, err := h.executor.AcceptOffer(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (h *handler) RejectOffer(c *gin.Context) {
	id, ok := actingID(c)
	if !ok {
		return
	}

	offer, err := h.executor.RejectOffer(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (h *handler) CancelOffer(c *gin.Context) {
	id, ok := actingID(c)
	if !ok {
		return
	}

	offer, err := h.executor.CancelOffer(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (h *handler) ExpireOffers(c *gin.Context) {
	response, err := h.executor.ExpireOffers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetSummary(c *gin.Context) {
	summary, err := h.executor.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *handler) GetEconomyHealth(c *gin.Context) {
	health, err := h.executor.GetHealth(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, health)
}

func (h *handler) RunTick(c *gin.Context) {
	summary, err := h.executor.RunTick(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *handler) GetBalance(c *gin.Context) {
	response, err := h.executor.GetBalance(c.Request.Context(), c.Param("owner"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) AdjustBalance(c *gin.Context) {
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	response, err := h.executor.AdjustBalance(c.Request.Context(), c.Param("owner"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) TransferBalance(c *gin.Context) {
	var req dto.TransferBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	response, err := h.executor.TransferBalance(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetSeason(c *gin.Context) {
	season, err := h.executor.GetSeason(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, season)
}

func (h *handler) GetSettings(c *gin.Context) {
	settings, err := h.executor.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *handler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	settings, err := h.executor.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *handler) ListSettingsVersions(c *gin.Context) {
	response, err := h.executor.GetSettingsVersions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RollbackSettings(c *gin.Context) {
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		respondValidationError(c, fmt.Errorf("invalid settings version %q", c.Param("version")))
		return
	}

	settings, err := h.executor.RollbackSettings(c.Request.Context(), version)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *handler) ListEvents(c *gin.Context) {
	queryParams, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err)
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	response, err := h.executor.GetEvents(c.Request.Context(), queryParams.Offset, queryParams.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "wt-exchange-api",
	})
}
