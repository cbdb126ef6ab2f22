package entities

import "fmt"

// ReviewDraft is the in-progress review a visitor builds by clicking stars.
// The zero value is the reset state: every dimension 0 and no text.
type ReviewDraft struct {
	Cleanliness         int    `json:"cleanliness"`
	FoodQuality         int    `json:"foodQuality"`
	OwnerBehaviour      int    `json:"ownerBehaviour"`
	DeliveryPunctuality int    `json:"deliveryPunctuality"`
	Variety             int    `json:"variety"`
	Review              string `json:"review"`
}

// SetStars sets exactly one dimension and leaves the others untouched
func (d *ReviewDraft) SetStars(dim RatingDimension, value int) error {
	if value < MinStars || value > MaxStars {
		return fmt.Errorf("rating %d out of range %d-%d", value, MinStars, MaxStars)
	}
	field := d.field(dim)
	if field == nil {
		return fmt.Errorf("unknown rating dimension %q", dim)
	}
	*field = value
	return nil
}

// Stars returns the value of one dimension, 0 for unknown dimensions
func (d ReviewDraft) Stars(dim RatingDimension) int {
	if field := d.field(dim); field != nil {
		return *field
	}
	return 0
}

func (d *ReviewDraft) field(dim RatingDimension) *int {
	switch dim {
	case DimensionCleanliness:
		return &d.Cleanliness
	case DimensionFoodQuality:
		return &d.FoodQuality
	case DimensionOwnerBehaviour:
		return &d.OwnerBehaviour
	case DimensionDeliveryPunctuality:
		return &d.DeliveryPunctuality
	case DimensionVariety:
		return &d.Variety
	default:
		return nil
	}
}

// ReviewSubmission is the body of a review-mess call
type ReviewSubmission struct {
	MessID string `json:"messId"`
	ReviewDraft
}

// NewReviewSubmission attaches a mess id to a draft
func NewReviewSubmission(messID string, draft ReviewDraft) ReviewSubmission {
	return ReviewSubmission{MessID: messID, ReviewDraft: draft}
}
