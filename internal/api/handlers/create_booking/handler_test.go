package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geargik/GearGik-BookingService/internal/api/middleware"
	"github.com/geargik/GearGik-BookingService/internal/resolver"
	createBooking "github.com/geargik/GearGik-BookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		req.Header.Set(middleware.HeaderUserID, "2")
	}
	rec := httptest.NewRecorder()

	// Auth middleware кладет userID в контекст, как и в боевом роутере
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

const validBody = `{"vehicleId":10,"quantity":4,"phone":"03001234567","regNo":"2021-CS-042","paymentMethod":"jazzcash"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:        555,
		ListingID: 10,
		RenterID:  2,
		TotalCost: 2000,
		Status:    "pending",
	}}

	rec := doRequest(t, uc, validBody, true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(555), resp.ID)
	assert.Equal(t, int64(10), resp.VehicleID)
	assert.Equal(t, "pending", resp.Status)

	// RenterID берется из заголовка, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(2), uc.gotReq.RenterID)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, validBody, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"vehicleId":`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unavailable listing", err: resolver.ErrListingUnavailable, wantStatus: http.StatusConflict},
		{name: "missing contact", err: resolver.ErrMissingContactInfo, wantStatus: http.StatusBadRequest},
		{name: "duration over limit", err: resolver.ErrDurationExceedsLimit, wantStatus: http.StatusBadRequest},
		{name: "not enough seats", err: resolver.ErrInsufficientSeats, wantStatus: http.StatusBadRequest},
		{name: "invalid payment method", err: resolver.ErrInvalidPaymentMethod, wantStatus: http.StatusBadRequest},
		{name: "listing not found", err: createBooking.ErrListingNotFound, wantStatus: http.StatusNotFound},
		{name: "own listing", err: createBooking.ErrOwnListing, wantStatus: http.StatusForbidden},
		{name: "user not found", err: createBooking.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "email not verified", err: createBooking.ErrEmailNotVerified, wantStatus: http.StatusForbidden},
		{name: "identity outage", err: createBooking.ErrIdentityUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal error", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
