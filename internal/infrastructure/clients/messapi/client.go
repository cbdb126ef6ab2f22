package messapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/entities"
	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
	"github.com/zatekoja/tastebuddies/frontend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/tastebuddies/frontend/pkg/errors"
)

const (
	userDetailsPath        = "/api/user/fetching-user-details"
	fetchRatingsPath       = "/api/ratings/fetch-ratings"
	reviewMessPath         = "/api/ratings/review-mess"
	createSubscriptionPath = "/api/subscriptions/create-subscription"
	searchMessesPath       = "/api/mess/fetching-messes-locations"
	logoutPath             = "/api/auth/logout"

	// alreadySubscribedMessage is the only backend message with its own meaning.
	alreadySubscribedMessage = "already subscribed"

	idempotencyHeader = "Idempotency-Key"
)

var _ providers.MessAPI = (*HTTPClient)(nil)

// HTTPClient talks to the backend REST API
type HTTPClient struct {
	baseURL    string
	cookieName string
	httpClient *http.Client
	metrics    *observability.Metrics
}

// envelope is the status part shared by every backend response
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e *envelope) status() *envelope { return e }

type statusCarrier interface {
	status() *envelope
}

type profileResponse struct {
	envelope
	Response *entities.UserProfile `json:"response"`
}

type ratingsResponse struct {
	envelope
	MessRatings []entities.MessRatingSummary `json:"messRatings"`
}

type searchResponse struct {
	envelope
	Messes []entities.MessSearchResult `json:"messes"`
}

type searchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// NewClient creates a backend client. cookieName is the name of the backend
// session cookie the session token is sent as.
func NewClient(baseURL, cookieName string, timeout time.Duration, metrics *observability.Metrics) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookieName: cookieName,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
	}
}

func (c *HTTPClient) FetchMessProfile(ctx context.Context, sess entities.Session, messID string) (*entities.UserProfile, error) {
	if strings.TrimSpace(messID) == "" {
		return nil, apperrors.NewValidationError("mess id is required")
	}
	out := &profileResponse{}
	if err := c.doJSON(ctx, "fetch_mess_profile", http.MethodGet, c.endpoint(userDetailsPath, "messid", messID), sess, "", nil, out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

func (c *HTTPClient) FetchOwnProfile(ctx context.Context, sess entities.Session) (*entities.UserProfile, error) {
	out := &profileResponse{}
	if err := c.doJSON(ctx, "fetch_own_profile", http.MethodGet, c.endpoint(userDetailsPath, "", ""), sess, "", nil, out); err != nil {
		return nil, err
	}
	return out.Response, nil
}

func (c *HTTPClient) FetchRatings(ctx context.Context, sess entities.Session, messID string) (*entities.MessRatingSummary, error) {
	if strings.TrimSpace(messID) == "" {
		return nil, apperrors.NewValidationError("mess id is required")
	}
	out := &ratingsResponse{}
	if err := c.doJSON(ctx, "fetch_ratings", http.MethodGet, c.endpoint(fetchRatingsPath, "messId", messID), sess, "", nil, out); err != nil {
		return nil, err
	}
	if len(out.MessRatings) == 0 {
		return nil, nil
	}
	summary := out.MessRatings[0]
	return &summary, nil
}

func (c *HTTPClient) CreateSubscription(ctx context.Context, sess entities.Session, req entities.SubscriptionRequest, idempotencyKey string) (string, error) {
	out := &envelope{}
	if err := c.doJSON(ctx, "create_subscription", http.MethodPost, c.endpoint(createSubscriptionPath, "", ""), sess, idempotencyKey, req, out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) SubmitReview(ctx context.Context, sess entities.Session, review entities.ReviewSubmission, idempotencyKey string) (string, error) {
	out := &envelope{}
	if err := c.doJSON(ctx, "submit_review", http.MethodPost, c.endpoint(reviewMessPath, "messId", review.MessID), sess, idempotencyKey, review, out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) SearchMesses(ctx context.Context, sess entities.Session, term string) ([]entities.MessSearchResult, error) {
	out := &searchResponse{}
	if err := c.doJSON(ctx, "search_messes", http.MethodPost, c.endpoint(searchMessesPath, "", ""), sess, "", searchRequest{SearchTerm: term}, out); err != nil {
		return nil, err
	}
	return out.Messes, nil
}

// Logout does not inspect the response body; only transport and status
// failures are reported.
func (c *HTTPClient) Logout(ctx context.Context, sess entities.Session) error {
	return c.doJSON(ctx, "logout", http.MethodPost, c.endpoint(logoutPath, "", ""), sess, "", struct{}{}, nil)
}

func (c *HTTPClient) endpoint(path, key, value string) string {
	endpoint := c.baseURL + path
	if key != "" {
		endpoint = fmt.Sprintf("%s?%s=%s", endpoint, key, url.QueryEscape(value))
	}
	return endpoint
}

// doJSON performs one call. out may be nil when the body is not needed;
// otherwise its envelope decides success.
func (c *HTTPClient) doJSON(ctx context.Context, op, method, endpoint string, sess entities.Session, idempotencyKey string, body interface{}, out statusCarrier) (err error) {
	ctx, span := observability.StartSpan(ctx, "backend."+op)
	defer span.End()
	start := time.Now()
	defer func() {
		observability.SetSpanAttributes(span, attribute.String("backend.endpoint", endpoint))
		observability.RecordError(span, err)
		observability.RecordBackendMetric(ctx, c.metrics, op, err != nil, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError("encode request", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperrors.NewInternalError("build request", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if sess.Authenticated() {
		httpReq.AddCookie(&http.Cookie{Name: c.cookieName, Value: sess.Token})
	}
	if idempotencyKey != "" {
		httpReq.Header.Set(idempotencyHeader, idempotencyKey)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.NewCanceledError(ctx.Err())
		}
		return unavailable(err.Error(), err)
	}
	defer resp.Body.Close()
	observability.SetSpanAttributes(span, attribute.Int("http.status_code", resp.StatusCode))

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if out == nil {
		if !ok {
			return statusError(resp.StatusCode, "")
		}
		return nil
	}

	decodeErr := json.NewDecoder(resp.Body).Decode(out)
	if ctx.Err() != nil {
		return apperrors.NewCanceledError(ctx.Err())
	}
	status := out.status()
	if !ok {
		bodyMessage := ""
		if decodeErr == nil {
			bodyMessage = status.Message
		}
		return statusError(resp.StatusCode, bodyMessage)
	}
	if decodeErr != nil {
		return unavailable("invalid backend response", decodeErr)
	}
	if !status.Success {
		return rejected(status.Message)
	}
	return nil
}

func unavailable(message string, cause error) error {
	return apperrors.NewExternalError(message, fmt.Errorf("%w: %v", providers.ErrUnavailable, cause))
}

func rejected(message string) error {
	if isAlreadySubscribed(message) {
		return &apperrors.AppError{Type: apperrors.ErrorTypeConflict, Message: message, Err: providers.ErrRejected}
	}
	return apperrors.NewExternalError(message, providers.ErrRejected)
}

// statusError maps a non-2xx reply. Only an already-subscribed answer is a
// rejection; every other status is a failed request reported by its code,
// whatever the body says.
func statusError(statusCode int, bodyMessage string) error {
	if statusCode == http.StatusConflict || isAlreadySubscribed(bodyMessage) {
		message := bodyMessage
		if message == "" {
			message = failedStatusMessage(statusCode)
		}
		return &apperrors.AppError{Type: apperrors.ErrorTypeConflict, Message: message, Err: fmt.Errorf("%w: status %d", providers.ErrRejected, statusCode)}
	}

	errType := apperrors.ErrorTypeExternal
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		errType = apperrors.ErrorTypeUnauthorized
	case http.StatusNotFound:
		errType = apperrors.ErrorTypeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		errType = apperrors.ErrorTypeValidation
	}
	return &apperrors.AppError{
		Type:    errType,
		Message: failedStatusMessage(statusCode),
		Err:     fmt.Errorf("%w: status %d", providers.ErrUnavailable, statusCode),
	}
}

func failedStatusMessage(statusCode int) string {
	return fmt.Sprintf("Request failed with status code %d", statusCode)
}

func isAlreadySubscribed(message string) bool {
	return strings.EqualFold(strings.TrimSpace(message), alreadySubscribedMessage)
}
