package executor

import (
	"context"
	"errors"

	"github.com/feral-file/wt-exchange/internal/api/shared/constants"
	"github.com/feral-file/wt-exchange/internal/api/shared/dto"
	apierrors "github.com/feral-file/wt-exchange/internal/api/shared/errors"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/gateway"
	"github.com/feral-file/wt-exchange/internal/offer"
	"github.com/feral-file/wt-exchange/internal/parcel"
	"github.com/feral-file/wt-exchange/internal/tick"
	"github.com/feral-file/wt-exchange/internal/types"
)

// Executor is the interface for the API executor.
// Every error it returns is an *apierrors.APIError.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetCatalog lists the building types
	GetCatalog(ctx context.Context) (*dto.CatalogResponse, error)

	// GetParcel retrieves a single parcel by id
	GetParcel(ctx context.Context, id string) (*domain.Parcel, error)

	// GetParcels retrieves parcels with optional owner and street filters
	GetParcels(ctx context.Context, owner, streetID string) (*dto.ParcelListResponse, error)

	// CreateParcel creates an unowned parcel
	CreateParcel(ctx context.Context, req dto.CreateParcelRequest) (*domain.Parcel, error)

	// DeleteParcel removes a parcel
	DeleteParcel(ctx context.Context, id string) error

	// ResetParcel clears the owner, type and level of a parcel
	ResetParcel(ctx context.Context, id string) (*domain.Parcel, error)

	// BuyParcel buys an unowned parcel for the acting identity
	BuyParcel(ctx context.Context, id, actingID, typeKey string) (*domain.Parcel, error)

	// UpgradeParcel upgrades a parcel owned by the acting identity
	UpgradeParcel(ctx context.Context, id, actingID string) (*domain.Parcel, error)

	// GetStreets lists every street
	GetStreets(ctx context.Context) (*dto.StreetListResponse, error)

	// GetStreet retrieves a single street by id
	GetStreet(ctx context.Context, id string) (*domain.Street, error)

	// ClaimStreet claims a street for the acting identity
	ClaimStreet(ctx context.Context, id, actingID string) (*dto.ClaimStreetResponse, error)

	// GetOffers lists offers with optional owner and status filters
	GetOffers(ctx context.Context, owner string, status domain.OfferStatus) (*dto.OfferListResponse, error)

	// GetOffer retrieves a single offer by id
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)

	// ProposeOffer creates an offer from the acting identity
	ProposeOffer(ctx context.Context, actingID string, req dto.ProposeOfferRequest) (*domain.Offer, error)

	// AcceptOffer accepts an offer as the acting identity
	AcceptOffer(ctx context.Context, id, actingID string) (*domain.Offer, error)

	// RejectOffer rejects an offer as the acting identity
	RejectOffer(ctx context.Context, id, actingID string) (*domain.Offer, error)

	// CancelOffer cancels an offer as the acting identity
	CancelOffer(ctx context.Context, id, actingID string) (*domain.Offer, error)

	// ExpireOffers expires every past-due offer
	ExpireOffers(ctx context.Context) (*dto.ExpireOffersResponse, error)

	// GetSummary returns the economy summary
	GetSummary(ctx context.Context) (*tick.Summary, error)

	// GetHealth returns the tick health
	GetHealth(ctx context.Context) (*tick.Health, error)

	// RunTick runs an income tick
	RunTick(ctx context.Context) (*domain.TickSummary, error)

	// GetBalance returns the balance of an owner
	GetBalance(ctx context.Context, owner string) (*dto.BalanceResponse, error)

	// AdjustBalance applies an administrative balance delta
	AdjustBalance(ctx context.Context, owner string, delta int64) (*dto.BalanceResponse, error)

	// TransferBalance moves funds from one owner to another
	TransferBalance(ctx context.Context, req dto.TransferBalanceRequest) (*dto.TransferResponse, error)

	// GetEvents returns a page of the events feed
	GetEvents(ctx context.Context, offset, limit int) (*dto.EventListResponse, error)

	// GetSeason returns the current season window
	GetSeason(ctx context.Context) (*gateway.Season, error)

	// GetSettings returns the current settings version
	GetSettings(ctx context.Context) (*domain.SettingsVersion, error)

	// GetSettingsVersions lists every settings version
	GetSettingsVersions(ctx context.Context) (*dto.SettingsVersionListResponse, error)

	// UpdateSettings applies a partial settings update as a new version
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.SettingsVersion, error)

	// RollbackSettings restores an earlier settings version as a new version
	RollbackSettings(ctx context.Context, version int) (*domain.SettingsVersion, error)
}

type executor struct {
	gateway gateway.Gateway
}

func NewExecutor(gw gateway.Gateway) Executor {
	return &executor{gateway: gw}
}

func (e *executor) GetCatalog(ctx context.Context) (*dto.CatalogResponse, error) {
	return &dto.CatalogResponse{BuildingTypes: e.gateway.Catalog()}, nil
}

func (e *executor) GetParcel(ctx context.Context, id string) (*domain.Parcel, error) {
	p, err := e.gateway.GetParcel(id)
	if err != nil {
		return nil, mapError(err, "Failed to get parcel")
	}
	return &p, nil
}

func (e *executor) GetParcels(ctx context.Context, owner, streetID string) (*dto.ParcelListResponse, error) {
	parcels := e.gateway.ListParcels(parcel.Filter{Owner: owner, StreetID: streetID})
	return &dto.ParcelListResponse{Parcels: parcels, Total: len(parcels)}, nil
}

func (e *executor) CreateParcel(ctx context.Context, req dto.CreateParcelRequest) (*domain.Parcel, error) {
	p, err := e.gateway.CreateParcel(ctx, parcel.CreateInput{
		ID:       req.ID,
		Location: req.Location,
		Color:    req.Color,
		StreetID: req.StreetID,
	})
	if err != nil {
		return nil, mapError(err, "Failed to create parcel")
	}
	return &p, nil
}

func (e *executor) DeleteParcel(ctx context.Context, id string) error {
	if err := e.gateway.DeleteParcel(ctx, id); err != nil {
		return mapError(err, "Failed to delete parcel")
	}
	return nil
}

func (e *executor) ResetParcel(ctx context.Context, id string) (*domain.Parcel, error) {
	p, err := e.gateway.ResetParcel(ctx, id)
	if err != nil {
		return nil, mapError(err, "Failed to reset parcel")
	}
	return &p, nil
}

func (e *executor) BuyParcel(ctx context.Context, id, actingID, typeKey string) (*domain.Parcel, error) {
	p, err := e.gateway.BuyParcel(ctx, id, actingID, typeKey)
	if err != nil {
		return nil, mapError(err, "Failed to buy parcel")
	}
	return &p, nil
}

func (e *executor) UpgradeParcel(ctx context.Context, id, actingID string) (*domain.Parcel, error) {
	p, err := e.gateway.UpgradeParcel(ctx, id, actingID)
	if err != nil {
		return nil, mapError(err, "Failed to upgrade parcel")
	}
	return &p, nil
}

func (e *executor) GetStreets(ctx context.Context) (*dto.StreetListResponse, error) {
	streets := e.gateway.ListStreets()
	return &dto.StreetListResponse{Streets: streets, Total: len(streets)}, nil
}

func (e *executor) GetStreet(ctx context.Context, id string) (*domain.Street, error) {
	s, err := e.gateway.GetStreet(id)
	if err != nil {
		return nil, mapError(err, "Failed to get street")
	}
	return &s, nil
}

func (e *executor) ClaimStreet(ctx context.Context, id, actingID string) (*dto.ClaimStreetResponse, error) {
	s, parcels, err := e.gateway.ClaimStreet(ctx, id, actingID)
	if err != nil {
		return nil, mapError(err, "Failed to claim street")
	}
	return &dto.ClaimStreetResponse{Street: s, Parcels: parcels}, nil
}

func (e *executor) GetOffers(ctx context.Context, owner string, status domain.OfferStatus) (*dto.OfferListResponse, error) {
	offers, err := e.gateway.ListOffers(ctx, offer.Filter{Owner: owner, Status: status})
	if err != nil {
		return nil, mapError(err, "Failed to list offers")
	}
	return &dto.OfferListResponse{Offers: offers, Total: len(offers)}, nil
}

func (e *executor) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	o, err := e.gateway.GetOffer(ctx, id)
	if err != nil {
		return nil, mapError(err, "Failed to get offer")
	}
	return &o, nil
}

func (e *executor) ProposeOffer(ctx context.Context, actingID string, req dto.ProposeOfferRequest) (*domain.Offer, error) {
	o, err := e.gateway.ProposeOffer(ctx, req.ParcelID, actingID, req.Amount, req.Note)
	if err != nil {
		return nil, mapError(err, "Failed to propose offer")
	}
	return &o, nil
}

func (e *executor) AcceptOffer(ctx context.Context, id, actingID string) (*domain.Offer, error) {
	o, err := e.gateway.AcceptOffer(ctx, id, actingID)
	if err != nil {
		return nil, mapError(err, "Failed to accept offer")
	}
	return &o, nil
}

func (e *executor) RejectOffer(ctx context.Context, id, actingID string) (*domain.Offer, error) {
	o, err := e.gateway.RejectOffer(ctx, id, actingID)
	if err != nil {
		return nil, mapError(err, "Failed to reject offer")
	}
	return &o, nil
}

func (e *executor) CancelOffer(ctx context.Context, id, actingID string) (*domain.Offer, error) {
	o, err := e.gateway.CancelOffer(ctx, id, actingID)
	if err != nil {
		return nil, mapError(err, "Failed to cancel offer")
	}
	return &o, nil
}

func (e *executor) ExpireOffers(ctx context.Context) (*dto.ExpireOffersResponse, error) {
	expired, err := e.gateway.ExpireDue(ctx)
	if err != nil {
		return nil, mapError(err, "Failed to expire offers")
	}
	if expired == nil {
		expired = []domain.Offer{}
	}
	return &dto.ExpireOffersResponse{Expired: len(expired), Offers: expired}, nil
}

func (e *executor) GetSummary(ctx context.Context) (*tick.Summary, error) {
	summary := e.gateway.Summary()
	return &summary, nil
}

func (e *executor) GetHealth(ctx context.Context) (*tick.Health, error) {
	health := e.gateway.Health()
	return &health, nil
}

func (e *executor) RunTick(ctx context.Context) (*domain.TickSummary, error) {
	summary, err := e.gateway.RunTick(ctx)
	if err != nil {
		return nil, mapError(err, "Failed to run tick")
	}
	return &summary, nil
}

func (e *executor) GetBalance(ctx context.Context, owner string) (*dto.BalanceResponse, error) {
	return &dto.BalanceResponse{Owner: owner, Balance: e.gateway.Balance(owner)}, nil
}

func (e *executor) AdjustBalance(ctx context.Context, owner string, delta int64) (*dto.BalanceResponse, error) {
	balance, err := e.gateway.AdjustBalance(ctx, owner, delta)
	if err != nil {
		return nil, mapError(err, "Failed to adjust balance")
	}
	return &dto.BalanceResponse{Owner: owner, Balance: balance}, nil
}

func (e *executor) TransferBalance(ctx context.Context, req dto.TransferBalanceRequest) (*dto.TransferResponse, error) {
	from, to, err := e.gateway.TransferBalance(ctx, req.From, req.To, req.Amount)
	if err != nil {
		return nil, mapError(err, "Failed to transfer balance")
	}
	return &dto.TransferResponse{
		From:   dto.BalanceResponse{Owner: types.NormalizeIdentity(req.From), Balance: from},
		To:     dto.BalanceResponse{Owner: types.NormalizeIdentity(req.To), Balance: to},
		Amount: req.Amount,
	}, nil
}

func (e *executor) GetSeason(ctx context.Context) (*gateway.Season, error) {
	season := e.gateway.Season()
	return &season, nil
}

func (e *executor) GetSettings(ctx context.Context) (*domain.SettingsVersion, error) {
	v := e.gateway.Settings()
	return &v, nil
}

func (e *executor) GetSettingsVersions(ctx context.Context) (*dto.SettingsVersionListResponse, error) {
	versions := e.gateway.SettingsVersions()
	if versions == nil {
		versions = []domain.SettingsVersion{}
	}
	return &dto.SettingsVersionListResponse{
		Versions: versions,
		Current:  e.gateway.Settings().Version,
		Total:    len(versions),
	}, nil
}

func (e *executor) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.SettingsVersion, error) {
	next := req.Apply(e.gateway.Settings().Settings)
	v, err := e.gateway.UpdateSettings(ctx, next)
	if err != nil {
		return nil, mapError(err, "Failed to update settings")
	}
	return &v, nil
}

func (e *executor) RollbackSettings(ctx context.Context, version int) (*domain.SettingsVersion, error) {
	v, err := e.gateway.RollbackSettings(ctx, version)
	if err != nil {
		return nil, mapError(err, "Failed to roll back settings")
	}
	return &v, nil
}

func (e *executor) GetEvents(ctx context.Context, offset, limit int) (*dto.EventListResponse, error) {
	if offset < 0 {
		offset = constants.DEFAULT_OFFSET
	}
	if limit <= 0 {
		limit = constants.DEFAULT_EVENTS_LIMIT
	}
	if limit > constants.MAX_EVENTS_LIMIT {
		limit = constants.MAX_EVENTS_LIMIT
	}

	events, total, err := e.gateway.Events(ctx, offset, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get events", err.Error())
	}
	if events == nil {
		events = []domain.Event{}
	}
	return &dto.EventListResponse{Events: events, Offset: offset, Limit: limit, Total: total}, nil
}

// mapError converts a domain error into an API error. Errors without a domain
// kind come from storage.
func mapError(err error, message string) *apierrors.APIError {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch domain.Kind(err) {
	case domain.ErrNotFound:
		return apierrors.NewNotFoundError(err.Error())
	case domain.ErrConflict:
		return apierrors.NewConflictError(err.Error())
	case domain.ErrInsufficientFunds:
		return apierrors.NewInsufficientFundsError(err.Error())
	case domain.ErrInvalidInput:
		return apierrors.NewValidationError(err.Error())
	case domain.ErrExpired:
		return apierrors.NewExpiredError(err.Error())
	case domain.ErrForbidden:
		return apierrors.NewForbiddenError(err.Error())
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, domain.ErrSettingsSignature) {
		return apierrors.NewInternalError(message, err.Error())
	}

	return apierrors.NewDatabaseError(message, err.Error())
}
