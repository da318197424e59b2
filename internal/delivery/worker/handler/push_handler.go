package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"foodtruck/config"
	deliverycontext "foodtruck/internal/delivery/context"
	"foodtruck/internal/domain/constants"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/service"
	"foodtruck/internal/infra/pubsub"
	"foodtruck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenValidator checks a Google-signed OIDC token for audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages for the sweep worker
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	sweepUC        usecase.SweepUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	SweepUC usecase.SweepUsecase

	// Defaults to idtoken.Validate
	TokenValidator TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config.PubSub

	// Google push is always authenticated outside local development.
	verifyPushAuth := cfg != nil && (cfg.VerifyPushAuth ||
		(cfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop))

	var audience string
	if cfg != nil {
		audience = cfg.PushAudience
	}

	validateToken := params.TokenValidator
	if validateToken == nil {
		validateToken = idtoken.Validate
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  validateToken,
		logger:         params.Logger,
		sweepUC:        params.SweepUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Non-2xx responses make
// Pub/Sub redeliver, so only retryable failures answer 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	eventType := pushMsg.Message.Attributes[pubsub.AttrEventType]

	var dispatch func(context.Context, []byte) error
	switch eventType {
	case pubsub.EventTypeClosureSweep:
		dispatch = h.handleSweepRequest
	case pubsub.EventTypeScheduleChanged:
		dispatch = h.handleScheduleChanged
	default:
		h.logger.Warn("[Worker] Dropping message with unknown event type",
			slog.String("event_type", eventType),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, data)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_type", eventType),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := dispatch(ctx, data); err != nil {
		reqLogger.Error("[Worker] Failed to process message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) handleSweepRequest(ctx context.Context, data []byte) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var req service.SweepRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			return errors.Wrap(err, "failed to parse sweep request")
		}
	}

	changed, err := h.sweepUC.SweepStaleClosures(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSweepInProgress) {
			logger.Info("[Worker] Sweep already running, acknowledging trigger")

			return nil
		}

		return newRetryableError(err)
	}

	logger.Info("[Worker] Sweep trigger processed",
		slog.Time("requested_at", req.RequestedAt),
		slog.Int("tenants_reset", len(changed)),
	)

	return nil
}

func (h *PushHandler) handleScheduleChanged(ctx context.Context, data []byte) error {
	var event service.ScheduleChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "failed to parse schedule changed event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Schedule changed",
		slog.String("event_id", event.EventID),
		slog.String("tenant_id", event.TenantID),
		slog.String("reason", string(event.Reason)),
		slog.Bool("is_closed", event.IsClosed),
	)

	return nil
}

// extractRequestID prefers message attributes, then the payload, then the
// X-Request-Id header, then a fresh ID.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, data []byte) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	var payload struct {
		RequestID string `json:"request_id"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.RequestID != "" {
		return payload.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
