package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/constants"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

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

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives identity deletion retry events from Pub/Sub push
// and scheduled sweeps of unsettled deletions.
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	deletionUC     usecase.IdentityDeletionUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DeletionUC usecase.IdentityDeletionUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google deliveries outside development carry a token worth checking
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		deletionUC:     params.DeletionUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
//
// 2xx acknowledges the message. Only failures that a later attempt may fix
// answer 503 so that Pub/Sub redelivers; malformed or settled messages are acked.
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
		h.logger.Error("[Worker] Dropping unparseable push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := decodeEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Dropping invalid identity deletion event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing identity deletion event",
		slog.String("event_id", event.EventID),
		slog.String("deletion_id", event.DeletionID),
		slog.String("user_id", event.UserID),
	)

	deletion, err := h.deletionUC.Retry(ctx, event.DeletionID)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Identity deletion retry failed",
			slog.String("deletion_id", event.DeletionID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Identity deletion settled",
		slog.String("deletion_id", deletion.ID),
		slog.String("status", string(deletion.Status)),
		slog.Int("attempts", deletion.Attempts),
	)

	return c.NoContent(http.StatusOK)
}

// HandleSweep resumes identity deletions that no push delivery is driving,
// such as those recorded while no provider was configured. It is meant to be
// called by a scheduler and answers the number of intents resumed.
func (h *PushHandler) HandleSweep(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid sweep token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	ctx := c.Request().Context()
	resumed, err := h.deletionUC.RecoverStale(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("[Worker] Identity deletion sweep failed", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Identity deletion sweep finished", slog.Int("resumed", resumed))

	return c.JSON(http.StatusOK, map[string]int{"resumed": resumed})
}

func decodeEvent(pushMsg *PubSubMessage) (*service.IdentityDeletionEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.IdentityDeletionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse identity deletion event")
	}

	if event.DeletionID == "" {
		return nil, errors.New("event has no deletion_id")
	}

	return &event, nil
}

// isRetryable reports whether redelivery could change the result.
// Exhausted retries and client errors such as an unknown or malformed id are final.
func isRetryable(err error) bool {
	if errors.Is(err, usecase.ErrRetryLimitReached) {
		return false
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.IdentityDeletionEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil && req.Header.Get(echo.HeaderXForwardedProto) != "https" {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

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
