package handlers

import (
	"errors"
	"net/http"
	"testing"

	"mechfinder/internal/usecase"
)

func TestMapBookingError(t *testing.T) {
	if got := mapBookingError(usecase.ErrInvalidBookingInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBookingError(usecase.ErrBookingNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBookingError(usecase.ErrBookingForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapBookingError(usecase.ErrBookingInvalidTransition); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBookingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
