package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodtruck/internal/delivery/api/response"
	"foodtruck/internal/delivery/api/validator"
	"foodtruck/internal/domain/entity"
	domainerrors "foodtruck/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	validationErr := validator.New().Validate(&entity.WeeklySchedule{
		Days: []entity.ScheduleDay{{Day: entity.Monday, CloseTime: "9pm"}},
	})
	require.Error(t, validationErr)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
		wantLogged  bool
		wantOrigin  string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrTenantNotFound, "find tenant"),
			wantStatus: http.StatusNotFound,
			wantCode:   "TENANT_NOT_FOUND",
		},
		{
			name:        "app error details are kept for 4xx",
			err:         domainerrors.ErrScheduleInvalid.WithDetails("days must not be empty"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "SCHEDULE_INVALID",
			wantDetails: "days must not be empty",
		},
		{
			name:       "5xx app error is logged without details",
			err:        domainerrors.ErrTenantUpdateFailed.WithDetails("deadlock"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TENANT_UPDATE_FAILED",
			wantLogged: true,
		},
		{
			name:        "validation errors list fields",
			err:         validationErr,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: map[string]any{"days[0].closeTime": "hhmm"},
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantLogged: true,
			wantOrigin: "origin=error_test.go:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPut, "/api/v1/merchant/schedule", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)

			if tt.wantLogged {
				assert.Contains(t, buf.String(), "Unhandled error")
				assert.Contains(t, buf.String(), tt.wantOrigin)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
