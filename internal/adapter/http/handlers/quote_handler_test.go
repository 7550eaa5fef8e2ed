package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mechfinder/internal/adapter/http/handlers/mocks"
	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_Request(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing mechanic id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/quotes", h.Request)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"service_type":"Brake service"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/quotes", h.Request)

		uc.EXPECT().RequestQuote(gomock.Any(), "user-1", gomock.Any()).
			Return(entities.Quote{}, usecase.ErrMechanicNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"mechanic_id":"mech-1","service_type":"Brake service"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/quotes", h.Request)

		uc.EXPECT().RequestQuote(gomock.Any(), "user-1", usecase.RequestQuoteInput{MechanicID: "mech-1", ServiceType: "Brake service"}).
			Return(entities.Quote{ID: "q-1", UserID: "user-1", MechanicID: "mech-1", Status: entities.QuoteStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"mechanic_id":"mech-1","service_type":"Brake service"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("expected success envelope, got %s", w.Body.String())
		}
		data, _ := body["data"].(map[string]any)
		if data["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("mech-user")
		r.PATCH("/v1/quotes/:id/respond", h.Respond)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/respond", bytes.NewBufferString(`{"notes":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad valid_until timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("mech-user")
		r.PATCH("/v1/quotes/:id/respond", h.Respond)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/respond", bytes.NewBufferString(`{"amount":150,"valid_until":"tomorrow"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already responded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("mech-user")
		r.PATCH("/v1/quotes/:id/respond", h.Respond)

		uc.EXPECT().RespondToQuote(gomock.Any(), "mech-user", "q-1", gomock.Any()).
			Return(entities.Quote{}, usecase.ErrQuoteNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/respond", bytes.NewBufferString(`{"amount":150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("quote without a response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/quotes/:id/accept", h.Accept)

		uc.EXPECT().AcceptQuote(gomock.Any(), "user-1", "q-1", gomock.Any()).
			Return(entities.Booking{}, entities.Quote{}, usecase.ErrQuoteNotAcceptable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns quote and booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/quotes/:id/accept", h.Accept)

		uc.EXPECT().AcceptQuote(gomock.Any(), "user-1", "q-1", usecase.AcceptQuoteInput{Date: "2026-09-15", Time: "10:30"}).
			Return(
				entities.Booking{ID: "b-1", Status: entities.BookingStatusConfirmed},
				entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted},
				nil,
			)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString(`{"date":"2026-09-15","time":"10:30"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("expected success envelope, got %s", w.Body.String())
		}
		data, _ := body["data"].(map[string]any)
		booking, _ := data["booking"].(map[string]any)
		if booking["id"] != "b-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidQuoteInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrQuoteForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotPending); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotAcceptable); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteTerminal); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
