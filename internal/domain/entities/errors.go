package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrPaymentCodeNotFound means the gateway call succeeded but no copy-paste
// payload or image could be extracted; the charge is not actionable.
var ErrPaymentCodeNotFound = errors.New("payment code not found in provider response")

// GatewayRejectionError is a business-level refusal: the provider answered
// with a success HTTP status but refused the transaction.
type GatewayRejectionError struct {
	Reason       string
	AcquirerCode string
	Raw          json.RawMessage
}

func (e *GatewayRejectionError) Error() string {
	return fmt.Sprintf("gateway refused transaction: %s", e.Reason)
}

// GatewayTransportError is a network failure or a non-success HTTP status
// from the provider. StatusCode is zero when the call never completed.
// Remote keeps the untouched response body for diagnostics.
type GatewayTransportError struct {
	StatusCode int
	Message    string
	Remote     []byte
}

func (e *GatewayTransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gateway unreachable: %s", e.Message)
	}
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Message)
}
