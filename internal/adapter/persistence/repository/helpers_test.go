package repository

import (
	"errors"
	"testing"

	"mechfinder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestTranslateConditionErr(t *testing.T) {
	if got := translateConditionErr(&types.ConditionalCheckFailedException{}); !errors.Is(got, interfaces.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", got)
	}
	plain := errors.New("boom")
	if got := translateConditionErr(plain); got != plain {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func TestTranslateTransactCancel(t *testing.T) {
	cancelled := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
	if got := translateTransactCancel(cancelled); !errors.Is(got, interfaces.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", got)
	}

	throttled := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ThrottlingError")},
		},
	}
	if got := translateTransactCancel(throttled); errors.Is(got, interfaces.ErrConditionFailed) {
		t.Fatalf("expected passthrough for non-conditional cancellation, got %v", got)
	}

	plain := errors.New("boom")
	if got := translateTransactCancel(plain); got != plain {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
