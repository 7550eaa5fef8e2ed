package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mechfinder/internal/adapter/http/handlers/mocks"
	"mechfinder/internal/adapter/http/middleware"
	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authedRouter(userID string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	})
	return r
}

func TestVehicleHandler_Add(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/vehicles", h.Add)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing make", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/vehicles", h.Add)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"model":"Corolla"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/vehicles", h.Add)

		uc.EXPECT().Add(gomock.Any(), "user-1", usecase.VehicleInput{Make: "Toyota", Model: "Corolla", Registration: "ABC123"}).
			Return(entities.Vehicle{}, usecase.ErrVehicleExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"make":"Toyota","model":"Corolla","registration":"ABC123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := authedRouter("user-1")
		r.POST("/v1/vehicles", h.Add)

		uc.EXPECT().Add(gomock.Any(), "user-1", gomock.Any()).
			Return(entities.Vehicle{ID: "v-1", UserID: "user-1", Make: "Toyota", Model: "Corolla"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"make":"Toyota","model":"Corolla"}`))
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
		if data["id"] != "v-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVehicleHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := authedRouter("other-user")
		r.DELETE("/v1/vehicles/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "other-user", "v-1").Return(usecase.ErrVehicleForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/v-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := authedRouter("user-1")
		r.DELETE("/v1/vehicles/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "user-1", "v-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/v-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapVehicleError(t *testing.T) {
	if got := mapVehicleError(usecase.ErrInvalidVehicleInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapVehicleError(usecase.ErrVehicleExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapVehicleError(usecase.ErrVehicleNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapVehicleError(usecase.ErrVehicleForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapVehicleError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
