package handler_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	_ "time/tzdata"

	"foodtruck/config"
	"foodtruck/internal/delivery/api"
	"foodtruck/internal/delivery/api/middleware"
	"foodtruck/internal/delivery/api/response"
	"foodtruck/internal/delivery/api/router"
	"foodtruck/internal/delivery/api/router/handler"
	"foodtruck/internal/domain/service"
	mockService "foodtruck/internal/mocks/service"
	mockUsecase "foodtruck/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const (
	merchantToken = "merchant-token"
	adminToken    = "admin-token"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                   { return s.name }
func (s stubChecker) Ping(ctx context.Context) error { return s.err }

type testAPI struct {
	e            *echo.Echo
	tenantID     uuid.UUID
	scheduleUC   *mockUsecase.MockScheduleUsecase
	storefrontUC *mockUsecase.MockStorefrontUsecase
	sweepUC      *mockUsecase.MockSweepUsecase
	tokenSvc     *mockService.MockTokenService
}

func newTestAPI(t *testing.T, checkers ...handler.ReadinessChecker) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.TestRoutes = &config.TestRoutesConfig{Enabled: true}
	logger := slog.New(slog.DiscardHandler)

	a := &testAPI{
		e:            api.NewEcho(cfg, logger),
		tenantID:     uuid.New(),
		scheduleUC:   mockUsecase.NewMockScheduleUsecase(t),
		storefrontUC: mockUsecase.NewMockStorefrontUsecase(t),
		sweepUC:      mockUsecase.NewMockSweepUsecase(t),
		tokenSvc:     mockService.NewMockTokenService(t),
	}

	tokenSvc := a.tokenSvc
	tokenSvc.EXPECT().ValidateToken(merchantToken).
		Return(&service.Claims{TenantID: a.tenantID, Roles: []string{"merchant"}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{TenantID: uuid.New(), Roles: []string{"admin"}}, nil).Maybe()

	r := router.NewRouter(router.RouterParams{
		HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{
			Checkers: checkers,
			Logger:   logger,
		}),
		StorefrontHandler: handler.NewStorefrontHandler(handler.StorefrontHandlerParams{
			ScheduleUC:   a.scheduleUC,
			StorefrontUC: a.storefrontUC,
		}),
		MerchantScheduleHandler: handler.NewMerchantScheduleHandler(handler.MerchantScheduleHandlerParams{
			ScheduleUC: a.scheduleUC,
		}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{SweepUC: a.sweepUC}),
		TestHandler:    handler.NewTestHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc, logger),
		Config:         cfg,
	})
	r.RegisterRoutes(a.e)
	r.RegisterTestRoutes(a.e)

	return a
}

func (a *testAPI) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.NotNil(t, env.Meta)
	require.NotEmpty(t, env.Meta.RequestID)

	return env
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))

	return out
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) *response.ErrorInfo {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)

	return env.Error
}
