package entity

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfirmation(t *testing.T) {
	params := url.Values{}
	params.Set("x_ref_payco", "999")
	params.Set("x_transaction_id", "12345")
	params.Set("x_amount", "5000")
	params.Set("x_currency_code", "COP")
	params.Set("x_cod_response", "1")
	params.Set("x_signature", "deadbeef")
	params.Set("x_extra2", "order-17")

	payload := ParseConfirmation(params)
	assert.Equal(t, "999", payload.Reference)
	assert.Equal(t, "12345", payload.TransactionId)
	assert.Equal(t, "5000", payload.Amount)
	assert.Equal(t, "COP", payload.CurrencyCode)
	assert.Equal(t, "1", payload.ResponseCode)
	assert.Equal(t, "deadbeef", payload.Signature)
	assert.Equal(t, map[string]string{"x_extra2": "order-17"}, payload.Extras)
}

func TestParseConfirmationAbsentKeys(t *testing.T) {
	payload := ParseConfirmation(url.Values{})
	assert.Empty(t, payload.Reference)
	assert.Empty(t, payload.Signature)
	assert.Nil(t, payload.Extras)
}

func TestConfirmationStatus(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"1", StatusAccepted},
		{"2", StatusRejected},
		{"3", StatusPending},
		{"4", StatusFailed},
		{"", StatusUnknown},
		{"11", StatusUnknown},
	}
	for _, tt := range tests {
		payload := ConfirmationPayload{ResponseCode: tt.code}
		assert.Equal(t, tt.want, payload.Status(), "code %q", tt.code)
	}
}
