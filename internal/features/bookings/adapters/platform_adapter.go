package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tourism-tracker/internal/core/config"
	"tourism-tracker/internal/core/httpclient"
	"tourism-tracker/internal/core/money"
	"tourism-tracker/internal/features/bookings/domain"
	tracking "tourism-tracker/internal/features/tracking/domain"
)

// PlatformAdapter implements the BookingProvider interface against the
// tourism platform REST API.
type PlatformAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the platform API connection details.
	config config.UpstreamConfig
}

// NewPlatformAdapter creates a new instance of PlatformAdapter.
func NewPlatformAdapter(cfg config.UpstreamConfig) *PlatformAdapter {
	return &PlatformAdapter{
		client: httpclient.NewClient(time.Duration(cfg.TimeoutSeconds) * time.Second),
		config: cfg,
	}
}

// platformBooking represents the booking document returned by the platform API.
type platformBooking struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId"`
	BookingType string `json:"bookingType"`
	Item        struct {
		ID         string  `json:"_id"`
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		TotalPrice float64 `json:"totalPrice"`
	} `json:"itemId"`
	BookingDate time.Time `json:"bookingDate"`
	Status      string    `json:"status"`
	Rating      *int      `json:"rating,omitempty"`
	Review      *string   `json:"review,omitempty"`
	GuideID     *string   `json:"guideId,omitempty"`
	GuideRating *int      `json:"guideRating,omitempty"`
	GuideReview *string   `json:"guideReview,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// dataEnvelope is the platform's standard list/detail response wrapper.
type dataEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// GetUserBookings fetches all bookings of a user from the platform API.
func (a *PlatformAdapter) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	var env dataEnvelope[[]platformBooking]
	if err := a.get(ctx, fmt.Sprintf("/api/bookings/user/%s", userID), &env); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(env.Data))
	for _, pb := range env.Data {
		bookings = append(bookings, mapBooking(pb))
	}
	return bookings, nil
}

// GetAllBookings fetches every booking on the platform.
func (a *PlatformAdapter) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	var env dataEnvelope[[]platformBooking]
	if err := a.get(ctx, "/api/bookings/all", &env); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(env.Data))
	for _, pb := range env.Data {
		bookings = append(bookings, mapBooking(pb))
	}
	return bookings, nil
}

// GetBooking fetches a single booking by id.
func (a *PlatformAdapter) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var env dataEnvelope[platformBooking]
	if err := a.get(ctx, fmt.Sprintf("/api/bookings/%s", id), &env); err != nil {
		return nil, err
	}

	booking := mapBooking(env.Data)
	return &booking, nil
}

// UpdateStatus PATCHes a status transition and returns the updated booking.
func (a *PlatformAdapter) UpdateStatus(ctx context.Context, id string, status tracking.Status) (*domain.Booking, error) {
	body := map[string]string{"status": string(status)}

	var pb platformBooking
	if err := a.send(ctx, http.MethodPatch, fmt.Sprintf("/api/bookings/status/%s", id), body, &pb); err != nil {
		return nil, err
	}

	booking := mapBooking(pb)
	return &booking, nil
}

// Cancel PATCHes the cancellation endpoint and returns the updated booking.
func (a *PlatformAdapter) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	var env dataEnvelope[platformBooking]
	if err := a.send(ctx, http.MethodPatch, fmt.Sprintf("/api/bookings/cancel/%s", id), nil, &env); err != nil {
		return nil, err
	}

	booking := mapBooking(env.Data)
	return &booking, nil
}

// SubmitRating POSTs a one-shot rating for a booking.
func (a *PlatformAdapter) SubmitRating(ctx context.Context, id string, input domain.RatingInput) error {
	var env dataEnvelope[json.RawMessage]
	return a.send(ctx, http.MethodPost, fmt.Sprintf("/api/bookings/%s/rating", id), input, &env)
}

// get issues an authenticated GET and decodes the response into out.
func (a *PlatformAdapter) get(ctx context.Context, path string, out interface{}) error {
	return a.send(ctx, http.MethodGet, path, nil, out)
}

// send issues an authenticated request with an optional JSON body.
func (a *PlatformAdapter) send(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.config.URL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.ServiceToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("platform API call failed: %w", httpclient.ErrorFromResponse(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mapBooking converts a raw platform booking into the domain entity.
func mapBooking(pb platformBooking) domain.Booking {
	price := pb.Item.Price
	if price == 0 {
		price = pb.Item.TotalPrice
	}

	return domain.Booking{
		ID:          pb.ID,
		UserID:      pb.UserID,
		Type:        domain.Type(pb.BookingType),
		ItemID:      pb.Item.ID,
		ItemName:    pb.Item.Name,
		Price:       money.FromFloat(price),
		BookingDate: pb.BookingDate,
		Status:      tracking.Status(pb.Status),
		Rating:      pb.Rating,
		Review:      pb.Review,
		GuideID:     pb.GuideID,
		GuideRating: pb.GuideRating,
		GuideReview: pb.GuideReview,
		CreatedAt:   pb.CreatedAt,
		UpdatedAt:   pb.UpdatedAt,
	}
}
