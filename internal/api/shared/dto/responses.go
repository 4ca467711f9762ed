package dto

import (
	"github.com/feral-file/wt-exchange/internal/domain"
)

// CatalogResponse lists the building types
type CatalogResponse struct {
	BuildingTypes []domain.BuildingType `json:"buildingTypes"`
}

// ParcelListResponse represents a list of parcels
type ParcelListResponse struct {
	Parcels []domain.Parcel `json:"parcels"`
	Total   int             `json:"total"`
}

// StreetListResponse represents a list of streets
type StreetListResponse struct {
	Streets []domain.Street `json:"streets"`
	Total   int             `json:"total"`
}

// ClaimStreetResponse represents the result of a street claim
type ClaimStreetResponse struct {
	Street  domain.Street   `json:"street"`
	Parcels []domain.Parcel `json:"parcels"`
}

// OfferListResponse represents a list of offers, newest first
type OfferListResponse struct {
	Offers []domain.Offer `json:"offers"`
	Total  int            `json:"total"`
}

// ExpireOffersResponse represents the result of an offer GC run
type ExpireOffersResponse struct {
	Expired int            `json:"expired"`
	Offers  []domain.Offer `json:"offers"`
}

// BalanceResponse represents the balance of an owner
type BalanceResponse struct {
	Owner   string `json:"owner"`
	Balance int64  `json:"balance"`
}

// EventListResponse represents a page of the events feed
type EventListResponse struct {
	Events []domain.Event `json:"events"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
	Total  int            `json:"total"`
}

// TransferResponse represents the result of a balance transfer
type TransferResponse struct {
	From   BalanceResponse `json:"from"`
	To     BalanceResponse `json:"to"`
	Amount int64           `json:"amount"`
}

// SettingsVersionListResponse lists the settings versions oldest first
type SettingsVersionListResponse struct {
	Versions []domain.SettingsVersion `json:"versions"`
	Current  int                      `json:"current"`
	Total    int                      `json:"total"`
}
