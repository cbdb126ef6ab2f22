package entities

import "errors"

// LoadStatus is the lifecycle of one data load behind a view
type LoadStatus string

const (
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusError   LoadStatus = "error"
	LoadStatusReady   LoadStatus = "ready"
)

// ErrLoadFinished is returned when a finished load is asked to change state
var ErrLoadFinished = errors.New("load already finished")

// LoadState tracks one load from loading to either error or ready. A load
// never returns to loading; a retry starts a new LoadState.
type LoadState struct {
	Status LoadStatus
	Error  string
}

// NewLoadState starts a load
func NewLoadState() LoadState {
	return LoadState{Status: LoadStatusLoading}
}

// Fail moves a loading view to error with the message to show
func (s *LoadState) Fail(message string) error {
	if s.Status != LoadStatusLoading {
		return ErrLoadFinished
	}
	s.Status = LoadStatusError
	s.Error = message
	return nil
}

// Complete moves a loading view to ready
func (s *LoadState) Complete() error {
	if s.Status != LoadStatusLoading {
		return ErrLoadFinished
	}
	s.Status = LoadStatusReady
	return nil
}

// MessDetail is the data behind the mess detail view
type MessDetail struct {
	LoadState
	MessID  string
	Profile *UserProfile
	// Ratings is nil when the mess has no ratings yet.
	Ratings *MessRatingSummary
	Draft   ReviewDraft
}

// ProfileDetail is the data behind the profile view
type ProfileDetail struct {
	LoadState
	Profile *UserProfile
}
