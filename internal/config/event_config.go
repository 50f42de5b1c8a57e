package config

import "time"

const (
	// Mint defaults: коли тіло запиту не задає вікно свайпів,
	// подія відкривається "трохи в минулому" і триває дві години.
	DefaultSwipeLeadTime = 5 * time.Minute
	DefaultSwipeDuration = 2 * time.Hour
	DefaultEventName     = "Test Event"
	DefaultTimezone      = "UTC"

	// Test mode
	DefaultAttendeeCap = 20

	// Match lifecycle
	DefaultMatchExpiresDays = 30

	// Auth
	TokenTTL    = 72 * time.Hour
	TokenIssuer = "swipenight-service"
)
