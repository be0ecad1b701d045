package utils

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cycleroute/internal/models"
)

// The coordinates rule is registered on gin's binding engine so request
// structs can tag Location fields (or slice elements via dive) with it.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("coordinates", validateCoordinates)
	}
}

func validateCoordinates(fl validator.FieldLevel) bool {
	location, ok := fl.Field().Interface().(models.Location)
	if !ok {
		return false
	}
	return IsValidLatLng(location.Lat, location.Lng)
}

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidUsername(username string) bool {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 32 {
		return false
	}
	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)
	return usernameRegex.MatchString(username)
}

func IsValidLatLng(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ClampRating constrains a submitted rating to the 1-5 star range.
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}
