// Package entity defines data models for the payco checkout service.
package entity

import (
	"github.com/shopspring/decimal"
)

// PaymentDetails describes a single checkout attempt as submitted by the
// merchant backend. Monetary fields use decimal values so they can be
// rendered as strings for the gateway without precision loss.
type PaymentDetails struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Country     string          `json:"country"`
	Lang        string          `json:"lang"`
	// IP of the paying customer, required by the gateway for risk scoring
	IP string `json:"ip"`
	// ResponseUrl is where the checkout redirects the customer afterwards;
	// ConfirmationUrl is where the gateway posts the signed outcome.
	ResponseUrl     string         `json:"urlResponse"`
	ConfirmationUrl string         `json:"urlConfirmation"`
	Billing         BillingDetails `json:"billing"`

	Invoice        string           `json:"invoice,omitempty"`
	TaxBase        *decimal.Decimal `json:"taxBase,omitempty"`
	Tax            *decimal.Decimal `json:"tax,omitempty"`
	TaxIco         *decimal.Decimal `json:"taxIco,omitempty"`
	MethodsDisable []string         `json:"methodsDisable,omitempty"`
	Split          *SplitPayment    `json:"splitPayment,omitempty"`

	// Extra1..Extra10 are free-form correlation slots for the merchant,
	// echoed back by the gateway in the confirmation webhook.
	Extra1  *string `json:"extra1,omitempty"`
	Extra2  *string `json:"extra2,omitempty"`
	Extra3  *string `json:"extra3,omitempty"`
	Extra4  *string `json:"extra4,omitempty"`
	Extra5  *string `json:"extra5,omitempty"`
	Extra6  *string `json:"extra6,omitempty"`
	Extra7  *string `json:"extra7,omitempty"`
	Extra8  *string `json:"extra8,omitempty"`
	Extra9  *string `json:"extra9,omitempty"`
	Extra10 *string `json:"extra10,omitempty"`
}

// Extras returns the ten extension slots in ascending slot order.
// Absent slots are nil pointers.
func (d *PaymentDetails) Extras() []*string {
	return []*string{
		d.Extra1, d.Extra2, d.Extra3, d.Extra4, d.Extra5,
		d.Extra6, d.Extra7, d.Extra8, d.Extra9, d.Extra10,
	}
}

// BillingDetails identifies the paying customer. The checkout UI only
// auto-populates from the flattened copies of these fields, so the
// canonical request carries them twice.
type BillingDetails struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	TypeDoc     string `json:"typeDoc"`
	NumberDoc   string `json:"numberDoc"`
	MobilePhone string `json:"mobilephone"`
	CallingCode string `json:"callingCode,omitempty"`
}

// SplitPayment distributes a single payment between several receivers.
type SplitPayment struct {
	Type      string          `json:"type"`
	Receivers []SplitReceiver `json:"receivers"`
}

// SplitReceiver is one party of a split payment. Tax and Fee are optional.
type SplitReceiver struct {
	Id     string           `json:"id"`
	Amount decimal.Decimal  `json:"amount"`
	Tax    *decimal.Decimal `json:"tax,omitempty"`
	Fee    *decimal.Decimal `json:"fee,omitempty"`
}
