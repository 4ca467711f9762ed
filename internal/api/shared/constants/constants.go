package constants

const (
	DEFAULT_EVENTS_LIMIT = 20
	MAX_EVENTS_LIMIT     = 100
	DEFAULT_OFFSET       = 0

	MAX_OFFER_NOTE_LENGTH = 280
	MAX_PARCEL_ID_LENGTH  = 64
)
