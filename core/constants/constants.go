package constants

const (
	// Database pool settings
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"

	// Request handling
	DefaultRequestTimeout = 30 // seconds

	// Date and time formats used in slot keys and room settings
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"

	// OptimalTimesCacheTTL is how long a computed ranking may be served
	// from cache before being recomputed (seconds). Submissions and
	// activations invalidate eagerly, so this only bounds staleness for
	// writes that bypass the API.
	OptimalTimesCacheTTL = 60

	// RoomRetentionDays is the default window after which a room is
	// soft-deactivated by the background worker.
	RoomRetentionDays = 90

	// ShareSlugIDLength is the nanoid suffix length on room share slugs.
	ShareSlugIDLength = 7
)
