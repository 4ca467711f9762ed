package domain

import "time"

const (
	// Parcel constants
	MIN_PARCEL_LEVEL     = 1
	MAX_PARCEL_LEVEL     = 5
	DEFAULT_PARCEL_COLOR = "#22c55e"

	// Street constants
	DEFAULT_STREET_PRICE int64 = 1000
	DEFAULT_STREET_SLOTS       = 10

	// Economy constants
	DEFAULT_STARTING_BALANCE int64 = 5000
	DEFAULT_OFFER_TTL              = 24 * time.Hour
	DEFAULT_MIN_OFFER_AMOUNT int64 = 10
	DEFAULT_TICK_INTERVAL          = 5 * time.Minute

	// Settings constants
	MIN_AUTO_TICK_MIN     = 1
	MAX_AUTO_TICK_MIN     = 60
	DEFAULT_SEASON_LENGTH = 30 * 24 * time.Hour
	MAX_SEASON_LENGTH     = 120 * 24 * time.Hour

	// Events feed keeps only the newest entries
	MAX_FEED_EVENTS = 100
)
