package handlers

import (
	"errors"
	"net/http"
	"testing"

	"mechfinder/internal/usecase"
)

func TestMapReviewError(t *testing.T) {
	if got := mapReviewError(usecase.ErrInvalidReviewInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapReviewError(usecase.ErrReviewNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapReviewError(usecase.ErrReviewForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapReviewError(usecase.ErrReviewBookingNotCompleted); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	got := mapReviewError(usecase.ErrReviewExists)
	if got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got.Message != "Review already exists for this booking" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
	if got := mapReviewError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
