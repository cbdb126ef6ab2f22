package entities

import "strings"

// MealType is the meal a subscription covers
type MealType string

const (
	MealTypeLunch  MealType = "Lunch"
	MealTypeDinner MealType = "Dinner"
)

// MealTypes lists the selectable meal types in form order
var MealTypes = []MealType{MealTypeLunch, MealTypeDinner}

// Valid reports whether m is a known meal type
func (m MealType) Valid() bool {
	return m == MealTypeLunch || m == MealTypeDinner
}

// Subscription plan lengths in milliseconds: 30, 90 and 365 days.
const (
	MonthlyMilliseconds   int64 = 2_592_000_000
	QuarterlyMilliseconds int64 = 7_776_000_000
	YearlyMilliseconds    int64 = 31_536_000_000
)

// Durations lists the selectable plan labels in form order
var Durations = []string{"Monthly", "Quarterly", "Yearly"}

// DurationInMilliseconds maps a plan label, case-insensitively, to its
// length. Unknown labels map to 0.
func DurationInMilliseconds(label string) int64 {
	switch strings.ToLower(label) {
	case "monthly":
		return MonthlyMilliseconds
	case "quarterly":
		return QuarterlyMilliseconds
	case "yearly":
		return YearlyMilliseconds
	default:
		return 0
	}
}

// SubscriptionRequest is the body of a create-subscription call
type SubscriptionRequest struct {
	MessID                 string   `json:"messId"`
	MealType               MealType `json:"mealType"`
	DurationInMilliseconds int64    `json:"durationInMilliseconds"`
}
