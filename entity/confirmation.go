package entity

import (
	"net/url"
	"time"
)

// Transaction outcome reported by the gateway in x_cod_response.
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
	StatusPending  = "pending"
	StatusFailed   = "failed"
	StatusUnknown  = "unknown"
)

// ConfirmationPayload is the body of the gateway's confirmation webhook,
// delivered as form or query parameters. Every field is attacker-reachable
// until the signature has been verified.
type ConfirmationPayload struct {
	Reference     string `json:"x_ref_payco" bson:"x_ref_payco"`
	TransactionId string `json:"x_transaction_id" bson:"x_transaction_id"`
	Amount        string `json:"x_amount" bson:"x_amount"`
	CurrencyCode  string `json:"x_currency_code" bson:"x_currency_code"`
	ResponseCode  string `json:"x_cod_response" bson:"x_cod_response"`
	Signature     string `json:"x_signature" bson:"x_signature"`
	// Extras carries the x_extra1..x_extra10 correlation slots, only those present.
	Extras map[string]string `json:"extras,omitempty" bson:"extras,omitempty"`
}

// ParseConfirmation reads a webhook parameter set into a ConfirmationPayload.
// A key absent from params yields an empty string, so downstream presence
// checks reduce to emptiness checks.
func ParseConfirmation(params url.Values) *ConfirmationPayload {
	payload := ConfirmationPayload{
		Reference:     params.Get("x_ref_payco"),
		TransactionId: params.Get("x_transaction_id"),
		Amount:        params.Get("x_amount"),
		CurrencyCode:  params.Get("x_currency_code"),
		ResponseCode:  params.Get("x_cod_response"),
		Signature:     params.Get("x_signature"),
	}
	extras := map[string]string{}
	for _, key := range []string{
		"x_extra1", "x_extra2", "x_extra3", "x_extra4", "x_extra5",
		"x_extra6", "x_extra7", "x_extra8", "x_extra9", "x_extra10",
	} {
		if value := params.Get(key); value != "" {
			extras[key] = value
		}
	}
	if len(extras) > 0 {
		payload.Extras = extras
	}
	return &payload
}

// Status maps the numeric gateway response code to a stable status word.
func (p *ConfirmationPayload) Status() string {
	switch p.ResponseCode {
	case "1":
		return StatusAccepted
	case "2":
		return StatusRejected
	case "3":
		return StatusPending
	case "4":
		return StatusFailed
	default:
		return StatusUnknown
	}
}

// Confirmation is the persisted outcome of a verified webhook call.
// Stored keyed by the transaction reference, so repeated deliveries of the
// same confirmation collapse into one record.
type Confirmation struct {
	Reference     string            `json:"reference" bson:"reference"`
	TransactionId string            `json:"transaction_id" bson:"transaction_id"`
	Amount        string            `json:"amount" bson:"amount"`
	CurrencyCode  string            `json:"currency_code" bson:"currency_code"`
	ResponseCode  string            `json:"response_code" bson:"response_code"`
	Status        string            `json:"status" bson:"status"`
	Extras        map[string]string `json:"extras,omitempty" bson:"extras,omitempty"`
	TimeReceived  time.Time         `json:"time_received" bson:"time_received"`
}

// SignatureMaterial is the ordered six-tuple hashed to reconstruct a webhook
// signature. CustomerID and SigningKey are merchant secrets; the remaining
// fields come from the unverified payload. Never log field values.
type SignatureMaterial struct {
	CustomerID    string
	SigningKey    string
	Reference     string
	TransactionId string
	Amount        string
	CurrencyCode  string
}
