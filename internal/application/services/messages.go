package services

import (
	"errors"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

// User-facing texts.
const (
	msgProfileLoadFailed  = "Failed to load user data."
	msgRatingsLoadFailed  = "Failed to load mess ratings."
	msgLoadFailedPrefix   = "Failed to load data. Error: "
	msgProfileFailedError = "Failed to load user data. Error: "

	titleIncomplete      = "Incomplete Information"
	descIncomplete       = "Please select both meal type and duration."
	titleSubscribed      = "Subscription Successful"
	descSubscribed       = "You have successfully subscribed to the meal plan."
	titleAlreadySub      = "Already Subscribed"
	descAlreadySub       = "You are already subscribed to this meal plan."
	titleSubscribeFailed = "Subscription Failed"
	descSubscribeFailed  = "An error occurred during subscription."
	descInvalidDuration  = "Invalid duration selected."
	descInvalidMealType  = "Invalid meal type selected."
	titleReviewSubmitted = "Review Submitted"
	descReviewSubmitted  = "Thank you for your feedback!"
	titleReviewFailed    = "Review Failed"
	descReviewFailed     = "An error occurred."
	msgEmptySearch       = "Please enter a search term."
	msgNoMessFound       = "No mess found with the provided name."
	msgSearchErrorPrefix = "Error: "
	msgSearchUnavailable = "Search failed. Please try again."
)

// isCanceled reports whether the caller went away; such results are dropped
func isCanceled(err error) bool {
	return apperrors.Is(err, apperrors.ErrorTypeCanceled)
}

func isUnavailable(err error) bool {
	return errors.Is(err, providers.ErrUnavailable)
}

// messageOr returns the backend explanation carried by err, or fallback
func messageOr(err error, fallback string) string {
	if msg := apperrors.MessageOf(err); msg != "" {
		return msg
	}
	return fallback
}

func toast(kind entities.ToastKind, title, description string) entities.Toast {
	return entities.Toast{Kind: kind, Title: title, Description: description}
}
