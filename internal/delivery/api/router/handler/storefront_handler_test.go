package handler_test

import (
	"net/http"
	"testing"
	"time"

	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/schedule"
	"foodtruck/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStorefrontHandler_GetStatus(t *testing.T) {
	checkedAt := time.Date(2025, time.March, 10, 16, 2, 0, 0, time.UTC)

	t.Run("subdomain is normalized", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().GetStatus(mock.Anything, "tacos").Return(&usecase.StoreStatus{
			BusinessName: "Taco Truck",
			IsOpen:       true,
			TodayHours:   "11:00 AM - 2:00 PM",
			Week:         []schedule.DayGroup{},
			CheckedAt:    checkedAt,
		}, nil).Once()

		rec := a.do(http.MethodGet, "/api/v1/tenants/TACOS/status", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		status := decodeData[usecase.StoreStatus](t, rec)
		assert.True(t, status.IsOpen)
		assert.Equal(t, "Taco Truck", status.BusinessName)
		assert.Equal(t, "11:00 AM - 2:00 PM", status.TodayHours)
		assert.True(t, checkedAt.Equal(status.CheckedAt))
	})

	t.Run("unknown tenant", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().GetStatus(mock.Anything, "nope").
			Return(nil, errors.Wrap(domainerrors.ErrTenantNotFound, "find tenant")).Once()

		rec := a.do(http.MethodGet, "/api/v1/tenants/nope/status", "", "")

		requireErrorCode(t, rec, http.StatusNotFound, "TENANT_NOT_FOUND")
	})
}

func TestStorefrontHandler_GetPickupOptions(t *testing.T) {
	first := time.Date(2025, time.March, 10, 16, 20, 0, 0, time.UTC)

	t.Run("open", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().GetPickupOptions(mock.Anything, "tacos").Return(&schedule.PickupOptions{
			Slots: []time.Time{first, first.Add(5 * time.Minute)},
			Close: first.Add(100 * time.Minute),
		}, nil).Once()

		rec := a.do(http.MethodGet, "/api/v1/tenants/tacos/pickup-options", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		options := decodeData[schedule.PickupOptions](t, rec)
		assert.Len(t, options.Slots, 2)
		assert.False(t, options.ASAPOnly)
	})

	t.Run("closed", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().GetPickupOptions(mock.Anything, "tacos").
			Return(nil, domainerrors.ErrTruckClosed).Once()

		rec := a.do(http.MethodGet, "/api/v1/tenants/tacos/pickup-options", "", "")

		requireErrorCode(t, rec, http.StatusConflict, "TRUCK_CLOSED")
	})
}

func TestStorefrontHandler_ValidatePickup(t *testing.T) {
	pickup := time.Date(2025, time.March, 10, 16, 20, 0, 0, time.UTC)

	t.Run("scheduled pickup accepted", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().ValidatePickup(mock.Anything, "tacos", mock.MatchedBy(func(req *usecase.PickupRequest) bool {
			return !req.ASAP && req.PickupTime != nil && req.PickupTime.Equal(pickup)
		})).Return(&usecase.PickupDecision{PickupTime: pickup}, nil).Once()

		rec := a.do(http.MethodPost, "/api/v1/tenants/tacos/orders/validate",
			`{"asap":false,"pickup_time":"2025-03-10T12:20:00-04:00"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		decision := decodeData[usecase.PickupDecision](t, rec)
		assert.False(t, decision.ASAP)
		assert.True(t, pickup.Equal(decision.PickupTime))
	})

	t.Run("asap only near closing", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().ValidatePickup(mock.Anything, "tacos", mock.Anything).
			Return(nil, domainerrors.ErrASAPOnly).Once()

		rec := a.do(http.MethodPost, "/api/v1/tenants/tacos/orders/validate",
			`{"pickup_time":"2025-03-10T13:50:00-04:00"}`, "")

		requireErrorCode(t, rec, http.StatusUnprocessableEntity, "ASAP_ONLY")
	})

	t.Run("malformed body", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(http.MethodPost, "/api/v1/tenants/tacos/orders/validate", `{"asap":"soon"}`, "")

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestStorefrontHandler_GetStorefrontLink(t *testing.T) {
	a := newTestAPI(t)
	a.storefrontUC.EXPECT().StorefrontURL(mock.Anything, "tacos").Return("https://tacos.trucks.example", nil).Once()

	rec := a.do(http.MethodGet, "/api/v1/tenants/tacos/link", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://tacos.trucks.example"}`, string(decode(t, rec).Data))
}

func TestStorefrontHandler_GetQRCode(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		a := newTestAPI(t)
		png := []byte("\x89PNG\r\n\x1a\nfake")
		a.storefrontUC.EXPECT().GenerateQRCode(mock.Anything, "tacos").Return(png, nil).Once()

		rec := a.do(http.MethodGet, "/api/v1/tenants/tacos/qr", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("encoder failure", func(t *testing.T) {
		a := newTestAPI(t)
		a.storefrontUC.EXPECT().GenerateQRCode(mock.Anything, "tacos").
			Return(nil, errors.Wrap(domainerrors.ErrQRCodeGenerationFailed, "encode")).Once()

		rec := a.do(http.MethodGet, "/api/v1/tenants/tacos/qr", "", "")

		requireErrorCode(t, rec, http.StatusInternalServerError, "QRCODE_GENERATION_FAILED")
	})
}
