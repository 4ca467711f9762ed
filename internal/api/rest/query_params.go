package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/wt-exchange/internal/api/shared/constants"
	"github.com/feral-file/wt-exchange/internal/domain"
)

// ListParcelsQueryParams holds query parameters for GET /parcels
type ListParcelsQueryParams struct {
	Owner  string `form:"owner"`
	Street string `form:"street"`
}

// ListOffersQueryParams holds query parameters for GET /offers
type ListOffersQueryParams struct {
	Owner  string `form:"owner"`
	Status string `form:"status"`
}

// ListEventsQueryParams holds query parameters for GET /events
type ListEventsQueryParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ParseListParcelsQuery parses query parameters for GET /parcels
func ParseListParcelsQuery(c *gin.Context) (*ListParcelsQueryParams, error) {
	var params ListParcelsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Owner = strings.TrimSpace(params.Owner)
	params.Street = strings.TrimSpace(params.Street)

	return &params, nil
}

// ParseListOffersQuery parses query parameters for GET /offers
func ParseListOffersQuery(c *gin.Context) (*ListOffersQueryParams, error) {
	var params ListOffersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Owner = strings.TrimSpace(params.Owner)
	params.Status = strings.ToUpper(strings.TrimSpace(params.Status))

	return &params, nil
}

// Validate validates the query parameters
func (p *ListOffersQueryParams) Validate() error {
	if p.Status != "" && !domain.OfferStatus(p.Status).Valid() {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	return nil
}

// OfferStatus returns the status filter
func (p *ListOffersQueryParams) OfferStatus() domain.OfferStatus {
	return domain.OfferStatus(p.Status)
}

// ParseListEventsQuery parses query parameters for GET /events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > constants.MAX_EVENTS_LIMIT {
		params.Limit = constants.MAX_EVENTS_LIMIT
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *ListEventsQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}
