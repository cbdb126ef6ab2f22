package entities

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MessRatingSummary holds the backend-computed averages for a mess, each on a 0-5 scale
type MessRatingSummary struct {
	AvgCleanliness         float64 `json:"avgCleanliness"`
	AvgFoodQuality         float64 `json:"avgFoodQuality"`
	AvgOwnerBehaviour      float64 `json:"avgOwnerBehaviour"`
	AvgDeliveryPunctuality float64 `json:"avgDeliveryPunctuality"`
	AvgVariety             float64 `json:"avgVariety"`
	OverallAverage         float64 `json:"overallAverage"`
}

// RatingLine is one displayed row of a rating summary
type RatingLine struct {
	Label string
	Score string
}

// Lines returns the display rows in presentation order, overall last
func (s *MessRatingSummary) Lines() []RatingLine {
	return []RatingLine{
		{Label: "Cleanliness", Score: FormatScore(s.AvgCleanliness)},
		{Label: "Food Quality", Score: FormatScore(s.AvgFoodQuality)},
		{Label: "Owner Behaviour", Score: FormatScore(s.AvgOwnerBehaviour)},
		{Label: "Delivery Punctuality", Score: FormatScore(s.AvgDeliveryPunctuality)},
		{Label: "Variety", Score: FormatScore(s.AvgVariety)},
		{Label: "Overall Rating", Score: FormatScore(s.OverallAverage)},
	}
}

// FormatScore renders a score with one decimal out of five, e.g. "4.1 / 5"
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + " / 5"
}

// RatingDimension names one reviewable aspect of a mess
type RatingDimension string

const (
	DimensionCleanliness         RatingDimension = "cleanliness"
	DimensionFoodQuality         RatingDimension = "foodQuality"
	DimensionOwnerBehaviour      RatingDimension = "ownerBehaviour"
	DimensionDeliveryPunctuality RatingDimension = "deliveryPunctuality"
	DimensionVariety             RatingDimension = "variety"
)

// MinStars and MaxStars bound a star click
const (
	MinStars = 1
	MaxStars = 5
)

// RatingDimensions lists the dimensions in form order
var RatingDimensions = []RatingDimension{
	DimensionCleanliness,
	DimensionFoodQuality,
	DimensionOwnerBehaviour,
	DimensionDeliveryPunctuality,
	DimensionVariety,
}

// ParseRatingDimension returns the dimension named by s
func ParseRatingDimension(s string) (RatingDimension, bool) {
	for _, d := range RatingDimensions {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Label splits the camel-cased key into title-cased words: "foodQuality" -> "Food Quality"
func (d RatingDimension) Label() string {
	var b strings.Builder
	for _, r := range string(d) {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.English).String(b.String())
}
