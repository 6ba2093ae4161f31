package util

// Log message constants
const (
	LogStart   = "=== %s START ==="
	LogEnd     = "=== %s END ==="
	LogSection = "--- %s ---"
)

// Service constants
const (
	// MaxPlaces caps how many nearby places are returned or put into a prompt.
	MaxPlaces = 6
	// HospitalCategory is the amenity looked up for location-aware questions.
	HospitalCategory = "hospital"
	// RatingUnavailable fills Place.Rating; OpenStreetMap carries no ratings.
	RatingUnavailable = "N/A"
	// AddressUnavailable fills Place.Address when no address tags are present.
	AddressUnavailable = "पता उपलब्ध नहीं"
)

// API messages
const (
	WelcomeMessage       = "Welcome to the Rural Healthcare Assistant API!"
	EmptyQueryMessage    = "Query text cannot be empty."
	EmptyAnswerMessage   = "AI model failed to generate a complete response."
	InternalErrorMessage = "An unexpected internal server error occurred."
)
