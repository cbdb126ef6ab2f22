// Package views renders the HTML of the web front-end with templ.
package views

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
)

//go:generate templ generate

// ProfileDetailsPath is the fragment endpoint of the profile view
const ProfileDetailsPath = "/user/profile/details"

// HeaderData drives the header shown on every page
type HeaderData struct {
	AppName       string
	Authenticated bool
	LoginPath     string
}

// PageData is everything the page layout needs besides the body
type PageData struct {
	Title         string
	HTMXScriptURL string
	Header        HeaderData
	Toast         *entities.Toast
}

// MessView is the ready or error panel of the mess detail view. Each form
// carries its own idempotency key.
type MessView struct {
	Detail       *entities.MessDetail
	ImageURL     string
	SubscribeKey string
	ReviewKey    string
	Choice       SubscriptionChoice
}

// SubscriptionChoice is what the subscription form shows as selected
type SubscriptionChoice struct {
	MealType string
	Duration string
}

// ParseSubscriptionChoice reads mealType and duration from form or query
// values. Values the form does not offer are dropped.
func ParseSubscriptionChoice(values url.Values) SubscriptionChoice {
	var choice SubscriptionChoice
	if meal := entities.MealType(values.Get("mealType")); meal.Valid() {
		choice.MealType = string(meal)
	}
	if duration := values.Get("duration"); slices.Contains(entities.Durations, duration) {
		choice.Duration = duration
	}
	return choice
}

// Query encodes the choice as a query string, empty when nothing is chosen
func (c SubscriptionChoice) Query() string {
	values := url.Values{}
	if c.MealType != "" {
		values.Set("mealType", c.MealType)
	}
	if c.Duration != "" {
		values.Set("duration", c.Duration)
	}
	return values.Encode()
}

func withQuery(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}

// MessURL is the mess page keeping the given subscription choice
func MessURL(messID string, choice SubscriptionChoice) string {
	return withQuery(MessPath(messID), choice.Query())
}

// MessDetailsURL is the details fragment keeping the given subscription choice
func MessDetailsURL(messID string, choice SubscriptionChoice) string {
	return withQuery(MessDetailsPath(messID), choice.Query())
}

// MessPath is the full page of a mess
func MessPath(messID string) string {
	return "/mess/" + url.PathEscape(messID)
}

// MessDetailsPath is the fragment that loads a mess
func MessDetailsPath(messID string) string {
	return MessPath(messID) + "/details"
}

// SubscribePath receives the subscription form
func SubscribePath(messID string) string {
	return MessPath(messID) + "/subscribe"
}

// ReviewPath receives the review form
func ReviewPath(messID string) string {
	return MessPath(messID) + "/review"
}

// StarPath receives star clicks
func StarPath(messID string) string {
	return ReviewPath(messID) + "/star"
}

// StarValues lists the selectable star counts
func StarValues() []int {
	values := make([]int, 0, entities.MaxStars-entities.MinStars+1)
	for v := entities.MinStars; v <= entities.MaxStars; v++ {
		values = append(values, v)
	}
	return values
}

// StarParam encodes a star click as "dimension:value"
func StarParam(dim entities.RatingDimension, value int) string {
	return fmt.Sprintf("%s:%d", dim, value)
}

// ParseStarParam decodes a StarParam value
func ParseStarParam(raw string) (string, int, bool) {
	dim, value, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || dim == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return "", 0, false
	}
	return dim, n, true
}

func starActive(current, value int) string {
	return strconv.FormatBool(current >= value)
}

func starLabel(dim entities.RatingDimension, value int) string {
	if value == 1 {
		return fmt.Sprintf("%s: 1 star", dim.Label())
	}
	return fmt.Sprintf("%s: %d stars", dim.Label(), value)
}
