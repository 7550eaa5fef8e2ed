package repository

import (
	"errors"
	"os"
	"strconv"

	"mechfinder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intToString(v int) string {
	return strconv.Itoa(v)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// translateConditionErr maps DynamoDB's conditional-check failure onto the
// sentinel the use cases branch on. Other errors pass through unchanged.
func translateConditionErr(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrConditionFailed
	}
	return err
}

// translateTransactCancel is the TransactWriteItems counterpart: a transaction
// cancelled because one of its conditions failed maps onto the same sentinel.
func translateTransactCancel(err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return interfaces.ErrConditionFailed
			}
		}
	}
	return err
}
