package utils

import "time"

// Application Constants
const (
	AppName    = "CycleRoute"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	PasswordMinLength      = 8
	VerificationCodeLength = 6
	VerificationCodeExpiry = 5 * time.Minute

	// Ratings
	MinRating = 1
	MaxRating = 5

	// Votes
	VoteUp   = 1
	VoteDown = -1

	// POI discovery
	DefaultPOIRadius = 500  // meters
	MaxPOIRadius     = 5000 // meters
	MaxPOISamples    = 5
	POICacheTTL      = 24 * time.Hour

	// File Upload
	MaxImageSize   = 5 * 1024 * 1024 // 5MB
	ThumbnailWidth = 480

	// Rate Limiting
	DefaultRateLimit = 100
	AuthRateLimit    = 10
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrUserExists         = "username already exists"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
)

// Cache Keys
const (
	CacheVerificationPrefix = "verify:"
	CachePOIPrefix          = "poi:"
)

// Collections
const (
	CollectionUsers        = "users"
	CollectionRoutes       = "routes"
	CollectionCustomPoints = "custom_points"
	CollectionReviews      = "reviews"
	CollectionComments     = "comments"
	CollectionVotes        = "votes"
)

// File Types
var AllowedImageTypes = []string{"jpg", "jpeg", "png", "gif", "webp"}
