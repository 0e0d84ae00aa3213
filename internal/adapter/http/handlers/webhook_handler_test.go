package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cietz/laranjinhao/internal/adapter/http/handlers/mocks"
	"github.com/cietz/laranjinhao/internal/domain/entities"
	"github.com/cietz/laranjinhao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/pix/webhook", h.Receive)
	return r
}

func TestWebhookHandler_Receive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/pix/webhook", bytes.NewBufferString("  "))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/pix/webhook", bytes.NewBufferString("{nope"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).
			Return(usecase.WebhookOutcome{}, usecase.ErrUnknownWebhookFormat)

		req := httptest.NewRequest(http.MethodPost, "/pix/webhook", bytes.NewBufferString(`{"event":"ping"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("processed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		payload := `{"type":"transaction","data":{"id":555,"amount":1990,"status":"paid"}}`
		uc.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, raw json.RawMessage) (usecase.WebhookOutcome, error) {
				if string(raw) != payload {
					t.Errorf("payload altered: %s", raw)
				}
				return usecase.WebhookOutcome{
					Provider:      "marcha",
					TransactionID: "555",
					Status:        entities.ChargeStatusPaid,
					StoredUpdated: true,
					Forwarded:     true,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/pix/webhook", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["received"] != true || body["provider"] != "marcha" || body["forwarded"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).
			Return(usecase.WebhookOutcome{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/pix/webhook", bytes.NewBufferString(`{"type":"transaction","data":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
