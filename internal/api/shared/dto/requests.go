package dto

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/feral-file/wt-exchange/internal/api/shared/constants"
	apierrors "github.com/feral-file/wt-exchange/internal/api/shared/errors"
	"github.com/feral-file/wt-exchange/internal/domain"
)

// CreateParcelRequest represents the request body for creating a parcel
type CreateParcelRequest struct {
	ID       string        `json:"id,omitempty"`
	Location domain.LatLng `json:"location"`
	Color    string        `json:"color,omitempty"`
	StreetID *string       `json:"streetId,omitempty"`
}

// Validate validates the request body
func (r *CreateParcelRequest) Validate() error {
	if len(r.ID) > constants.MAX_PARCEL_ID_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("id must be at most %d characters", constants.MAX_PARCEL_ID_LENGTH))
	}

	if !r.Location.Valid() {
		return apierrors.NewValidationError("location is out of range")
	}

	if r.StreetID != nil && strings.TrimSpace(*r.StreetID) == "" {
		return apierrors.NewValidationError("streetId must not be empty")
	}

	return nil
}

// BuyParcelRequest represents the request body for buying a parcel
type BuyParcelRequest struct {
	Type string `json:"type"`
}

// Validate validates the request body
func (r *BuyParcelRequest) Validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return apierrors.NewValidationError("type is required")
	}
	return nil
}

// ProposeOfferRequest represents the request body for proposing an offer
type ProposeOfferRequest struct {
	ParcelID string `json:"parcelId"`
	Amount   int64  `json:"amount"`
	Note     string `json:"note,omitempty"`
}

// Validate validates the request body
func (r *ProposeOfferRequest) Validate() error {
	if strings.TrimSpace(r.ParcelID) == "" {
		return apierrors.NewValidationError("parcelId is required")
	}

	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}

	if utf8.RuneCountInString(r.Note) > constants.MAX_OFFER_NOTE_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("note must be at most %d characters", constants.MAX_OFFER_NOTE_LENGTH))
	}

	return nil
}

// AdjustBalanceRequest represents the request body for an administrative balance adjustment
type AdjustBalanceRequest struct {
	Delta int64 `json:"delta"`
}

// Validate validates the request body
func (r *AdjustBalanceRequest) Validate() error {
	if r.Delta == 0 {
		return apierrors.NewValidationError("delta must not be zero")
	}
	return nil
}

// TransferBalanceRequest represents the request body for a transfer between two owners
type TransferBalanceRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Validate validates the request body
func (r *TransferBalanceRequest) Validate() error {
	if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
		return apierrors.NewValidationError("from and to are required")
	}
	if r.Amount <= 0 {
		return apierrors.NewValidationError("amount must be positive")
	}
	return nil
}

// UpdateSettingsRequest represents a partial update of the settings.
// Omitted fields keep their current value.
type UpdateSettingsRequest struct {
	SeasonStart *time.Time `json:"seasonStart,omitempty"`
	SeasonEnd   *time.Time `json:"seasonEnd,omitempty"`
	AutoTickMin *int       `json:"autoTickMin,omitempty"`
}

// Validate validates the request body
func (r *UpdateSettingsRequest) Validate() error {
	if r.SeasonStart == nil && r.SeasonEnd == nil && r.AutoTickMin == nil {
		return apierrors.NewValidationError("no settings to update")
	}
	if r.AutoTickMin != nil && (*r.AutoTickMin < domain.MIN_AUTO_TICK_MIN || *r.AutoTickMin > domain.MAX_AUTO_TICK_MIN) {
		return apierrors.NewValidationError(fmt.Sprintf("autoTickMin must be between %d and %d", domain.MIN_AUTO_TICK_MIN, domain.MAX_AUTO_TICK_MIN))
	}
	return nil
}

// Apply returns current with the fields of the request applied
func (r *UpdateSettingsRequest) Apply(current domain.Settings) domain.Settings {
	if r.SeasonStart != nil {
		current.SeasonStart = *r.SeasonStart
	}
	if r.SeasonEnd != nil {
		current.SeasonEnd = *r.SeasonEnd
	}
	if r.AutoTickMin != nil {
		current.AutoTickMin = *r.AutoTickMin
	}
	return current
}
