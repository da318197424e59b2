package handler_test

import (
	"context"
	"net/http"
	"testing"

	"foodtruck/internal/domain/entity"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func lunchSchedule() *entity.WeeklySchedule {
	return &entity.WeeklySchedule{
		PrimaryTimezone: "America/New_York",
		Days: []entity.ScheduleDay{
			{Day: entity.Monday, OpenTime: "11:00", CloseTime: "14:00", Location: "Main St"},
		},
	}
}

func TestMerchantScheduleHandler_Auth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		rec := newTestAPI(t).do(http.MethodGet, "/api/v1/merchant/schedule", "", "")

		requireErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	t.Run("unknown token", func(t *testing.T) {
		a := newTestAPI(t)
		a.tokenSvc.EXPECT().ValidateToken("forged").Return(nil, assert.AnError).Once()

		rec := a.do(http.MethodGet, "/api/v1/merchant/schedule", "", "forged")

		requireErrorCode(t, rec, http.StatusUnauthorized, "TOKEN_INVALID")
	})

	t.Run("admin is not a merchant", func(t *testing.T) {
		rec := newTestAPI(t).do(http.MethodGet, "/api/v1/merchant/schedule", "", adminToken)

		requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func TestMerchantScheduleHandler_GetSchedule(t *testing.T) {
	a := newTestAPI(t)
	a.scheduleUC.EXPECT().GetSchedule(mock.Anything, a.tenantID).Return(lunchSchedule(), nil).Once()

	rec := a.do(http.MethodGet, "/api/v1/merchant/schedule", "", merchantToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	weekly := decodeData[entity.WeeklySchedule](t, rec)
	require.Len(t, weekly.Days, 1)
	assert.Equal(t, "11:00", weekly.Days[0].OpenTime)
}

func TestMerchantScheduleHandler_UpdateSchedule(t *testing.T) {
	t.Run("stored with warnings", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().UpdateSchedule(mock.Anything, a.tenantID, mock.MatchedBy(func(weekly entity.WeeklySchedule) bool {
			return len(weekly.Days) == 2 && weekly.Days[1].CloseTime == "02:00"
		})).RunAndReturn(func(_ context.Context, _ uuid.UUID, weekly entity.WeeklySchedule) (*usecase.ScheduleUpdateResult, error) {
			return &usecase.ScheduleUpdateResult{
				Schedule: weekly,
				Warnings: []string{"Friday has 2 entries; only the first is used"},
			}, nil
		}).Once()

		rec := a.do(http.MethodPut, "/api/v1/merchant/schedule", `{
			"primaryTimezone": "America/New_York",
			"days": [
				{"day": "Friday", "openTime": "11:00", "closeTime": "14:00"},
				{"day": "Friday", "openTime": "22:00", "closeTime": "02:00"}
			]
		}`, merchantToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		result := decodeData[usecase.ScheduleUpdateResult](t, rec)
		assert.Len(t, result.Schedule.Days, 2)
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("invalid document never reaches the usecase", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(http.MethodPut, "/api/v1/merchant/schedule",
			`{"days":[{"day":"Caturday","openTime":"7pm"}]}`, merchantToken)

		info := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, map[string]any{
			"days[0].day":      "weekday",
			"days[0].openTime": "hhmm",
		}, info.Details)
	})

	t.Run("save failure", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().UpdateSchedule(mock.Anything, a.tenantID, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrTenantUpdateFailed, "save")).Once()

		rec := a.do(http.MethodPut, "/api/v1/merchant/schedule", `{"days":[]}`, merchantToken)

		info := requireErrorCode(t, rec, http.StatusInternalServerError, "TENANT_UPDATE_FAILED")
		assert.Nil(t, info.Details)
	})
}

func TestMerchantScheduleHandler_SetTodayClosed(t *testing.T) {
	t.Run("close today", func(t *testing.T) {
		a := newTestAPI(t)
		closed := lunchSchedule()
		closed.Days[0].IsClosed = true
		a.scheduleUC.EXPECT().SetTodayClosed(mock.Anything, a.tenantID, true).Return(closed, nil).Once()

		rec := a.do(http.MethodPost, "/api/v1/merchant/schedule/closure", `{"is_closed":true}`, merchantToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		weekly := decodeData[entity.WeeklySchedule](t, rec)
		assert.True(t, weekly.Days[0].IsClosed)
	})

	t.Run("reopen is an explicit false", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().SetTodayClosed(mock.Anything, a.tenantID, false).Return(lunchSchedule(), nil).Once()

		rec := a.do(http.MethodPost, "/api/v1/merchant/schedule/closure", `{"is_closed":false}`, merchantToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("flag is required", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(http.MethodPost, "/api/v1/merchant/schedule/closure", `{}`, merchantToken)

		info := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, map[string]any{"is_closed": "required"}, info.Details)
	})

	t.Run("no entry today", func(t *testing.T) {
		a := newTestAPI(t)
		a.scheduleUC.EXPECT().SetTodayClosed(mock.Anything, a.tenantID, true).
			Return(nil, domainerrors.ErrNoScheduleToday).Once()

		rec := a.do(http.MethodPost, "/api/v1/merchant/schedule/closure", `{"is_closed":true}`, merchantToken)

		requireErrorCode(t, rec, http.StatusConflict, "NO_SCHEDULE_TODAY")
	})
}
