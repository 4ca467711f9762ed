package domain

import "errors"

// Error kinds. Every condition below unwraps to exactly one of these.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidInput      = errors.New("invalid input")
	ErrExpired           = errors.New("expired")
	ErrForbidden         = errors.New("forbidden")
)

var (
	ErrParcelNotFound = newError(ErrNotFound, "parcel not found")
	ErrStreetNotFound = newError(ErrNotFound, "street not found")
	ErrOfferNotFound  = newError(ErrNotFound, "offer not found")

	ErrSettingsVersionNotFound = newError(ErrNotFound, "settings version not found")

	ErrAlreadyOwned     = newError(ErrConflict, "already owned")
	ErrOwnershipChanged = newError(ErrConflict, "ownership changed")
	ErrStreetLocked     = newError(ErrConflict, "street is claimed by another owner")
	ErrMaxLevel         = newError(ErrConflict, "parcel is at max level")
	ErrOfferNotPending  = newError(ErrConflict, "offer is not pending")
	ErrPendingOffer     = newError(ErrConflict, "parcel has a pending offer")
	ErrParcelUnowned    = newError(ErrConflict, "parcel has no owner")
	ErrParcelExists     = newError(ErrConflict, "parcel already exists")
	ErrStreetExists     = newError(ErrConflict, "street already exists")
	ErrStreetClaimed    = newError(ErrConflict, "street already claimed")

	ErrUnknownType        = newError(ErrInvalidInput, "unknown building type")
	ErrInvalidAmount      = newError(ErrInvalidInput, "amount must be positive")
	ErrBalanceOverflow    = newError(ErrInvalidInput, "balance out of range")
	ErrAmountBelowMinimum = newError(ErrInvalidInput, "amount below minimum")
	ErrInvalidLevel       = newError(ErrInvalidInput, "malformed level")
	ErrInvalidLocation    = newError(ErrInvalidInput, "invalid location")
	ErrNoBuilding         = newError(ErrInvalidInput, "parcel has no building")
	ErrNoOwner            = newError(ErrInvalidInput, "building set without owner")
	ErrMissingIdentity    = newError(ErrInvalidInput, "missing identity")
	ErrSelfTransfer       = newError(ErrInvalidInput, "cannot transfer to the same owner")
	ErrInvalidSeason      = newError(ErrInvalidInput, "seasonEnd must be after seasonStart")
	ErrSeasonTooLong      = newError(ErrInvalidInput, "season length too long")
	ErrInvalidAutoTick    = newError(ErrInvalidInput, "autoTickMin must be 1..60")

	ErrOfferExpired = newError(ErrExpired, "offer expired")

	ErrNotOwner        = newError(ErrForbidden, "not the parcel owner")
	ErrNotCounterparty = newError(ErrForbidden, "only the counterparty can resolve this offer")
	ErrNotProposer     = newError(ErrForbidden, "only the proposer can cancel this offer")
	ErrSelfOffer       = newError(ErrForbidden, "cannot make an offer on your own parcel")
	ErrSettingsLocked  = newError(ErrForbidden, "settings signing secret not configured")
)

// ErrSettingsSignature means a stored settings version no longer matches its
// signature. It has no kind: callers treat it as an internal failure.
var ErrSettingsSignature = errors.New("settings signature mismatch")

// Error is a domain condition that belongs to one error kind
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the error kind err belongs to, or nil for errors outside the taxonomy
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrInsufficientFunds, ErrInvalidInput, ErrExpired, ErrForbidden} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
