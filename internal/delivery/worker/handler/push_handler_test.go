package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/constants"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/service"
	mockUsecase "coffeeshop/internal/mocks/usecase"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testDeletionID = "65f1c2a9e4b0a1b2c3d4e5ff"

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockIdentityDeletionUsecase) {
	deletionUC := mockUsecase.NewMockIdentityDeletionUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DeletionUC: deletionUC,
	})

	return h, deletionUC
}

func pushBody(t *testing.T, event *service.IdentityDeletionEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/local/subscriptions/identity-deletion-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.HandlePush(c)

	return rec
}

func testEvent() *service.IdentityDeletionEvent {
	return &service.IdentityDeletionEvent{
		RequestID:  "req-42",
		EventID:    "evt-1",
		DeletionID: testDeletionID,
		UserID:     "65f1c2a9e4b0a1b2c3d4e5f6",
		UID:        "fb123",
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		retryErr   error
		wantStatus int
	}{
		{
			name:       "settled deletion acks",
			wantStatus: http.StatusOK,
		},
		{
			name:       "provider failure asks for redelivery",
			retryErr:   errors.Wrap(errors.New("firebase unavailable"), "identity provider deletion failed"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unconfigured provider asks for redelivery",
			retryErr:   domainerrors.ErrIdentityProviderUnavailable.WrapMessage("identity provider is not configured"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "exhausted retries ack",
			retryErr:   errors.Wrap(usecase.ErrRetryLimitReached, "firebase unavailable"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown deletion acks",
			retryErr:   domainerrors.ErrIdentityDeletionNotFound.WrapMessage("failed to find identity deletion"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deletionUC := newTestPushHandler(t, nil)

			var seenRequestID string
			call := deletionUC.EXPECT().Retry(mock.Anything, testDeletionID).
				Run(func(ctx context.Context, _ string) {
					seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)
				})
			if tt.retryErr != nil {
				call.Return(&entity.IdentityDeletion{ID: testDeletionID, Status: entity.IdentityDeletionFailed}, tt.retryErr)
			} else {
				call.Return(&entity.IdentityDeletion{ID: testDeletionID, Status: entity.IdentityDeletionCompleted, Attempts: 2}, nil)
			}

			rec := push(h, pushBody(t, testEvent(), nil), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "req-42", seenRequestID)
		})
	}
}

func TestPushHandler_RequestIDPrefersAttributes(t *testing.T) {
	h, deletionUC := newTestPushHandler(t, nil)

	var seenRequestID string
	deletionUC.EXPECT().Retry(mock.Anything, testDeletionID).
		Run(func(ctx context.Context, _ string) {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(&entity.IdentityDeletion{ID: testDeletionID, Status: entity.IdentityDeletionCompleted}, nil)

	rec := push(h, pushBody(t, testEvent(), map[string]string{"request_id": "attr-7"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attr-7", seenRequestID)
}

func TestPushHandler_MalformedMessagesAreAcked(t *testing.T) {
	noDeletionID := testEvent()
	noDeletionID.DeletionID = ""

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data is not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data is not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
		{name: "event without deletion id", body: pushBody(t, noDeletionID, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The mock fails the test if Retry is reached
			h, _ := newTestPushHandler(t, nil)

			rec := push(h, tt.body, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)

		rec := push(h, pushBody(t, testEvent(), nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := push(h, pushBody(t, testEvent(), nil), http.Header{echo.HeaderAuthorization: {"Bearer tok"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, deletionUC := newTestPushHandler(t, cfg)
		var audience string
		h.validateToken = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud
			if token != "tok" {
				return nil, errors.New("bad token")
			}

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		deletionUC.EXPECT().Retry(mock.Anything, testDeletionID).
			Return(&entity.IdentityDeletion{ID: testDeletionID, Status: entity.IdentityDeletionCompleted}, nil)

		rec := push(h, pushBody(t, testEvent(), nil), http.Header{echo.HeaderAuthorization: {"Bearer tok"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", audience)
	})
}

func sweep(h *PushHandler, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()

	_ = h.HandleSweep(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandleSweep(t *testing.T) {
	t.Run("reports resumed intents", func(t *testing.T) {
		h, deletionUC := newTestPushHandler(t, nil)
		deletionUC.EXPECT().RecoverStale(mock.Anything).Return(3, nil)

		rec := sweep(h, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"resumed":3}`, rec.Body.String())
	})

	t.Run("listing failure asks to be called again", func(t *testing.T) {
		h, deletionUC := newTestPushHandler(t, nil)
		deletionUC.EXPECT().RecoverStale(mock.Anything).Return(0, errors.New("server selection timeout"))

		rec := sweep(h, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("requires a token in production", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Env.Env = constants.EnvProduction
		cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}
		h, _ := newTestPushHandler(t, cfg)

		rec := sweep(h, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestNewPushHandler_SkipsVerificationInDevelopment(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
