package internal

import (
	"payco/entity"
	"strconv"
	"strings"
)

// The mapping targets version 2 of the session-create endpoint.
const checkoutVersion = "2"

// CanonicalRequest converts payment details into the flat, all-string body
// the gateway requires. Every leaf of the result is a string or a
// collection of strings; the gateway silently rejects native numbers and
// booleans. Optional fields are omitted when absent, an empty string is not
// an accepted "not provided" marker.
func CanonicalRequest(details *entity.PaymentDetails, testMode bool) map[string]any {
	body := map[string]any{
		"name":             details.Name,
		"description":      details.Description,
		"currency":         strings.ToUpper(details.Currency),
		"amount":           details.Amount.String(),
		"country":          strings.ToUpper(details.Country),
		"lang":             strings.ToUpper(details.Lang),
		"ip":               details.IP,
		"test":             strconv.FormatBool(testMode),
		"urlResponse":      details.ResponseUrl,
		"urlConfirmation":  details.ConfirmationUrl,
		"checkout_version": checkoutVersion,
	}

	billing := details.Billing
	nested := map[string]string{
		"email":       billing.Email,
		"name":        billing.Name,
		"address":     billing.Address,
		"typeDoc":     billing.TypeDoc,
		"numberDoc":   billing.NumberDoc,
		"mobilephone": billing.MobilePhone,
	}
	if billing.CallingCode != "" {
		nested["callingCode"] = billing.CallingCode
	}
	body["billing"] = nested
	// The hosted checkout UI only auto-populates from the flattened copies,
	// despite the documented schema showing the nested object alone.
	body["nameBilling"] = billing.Name
	body["emailBilling"] = billing.Email
	body["addressBilling"] = billing.Address
	body["typeDocBilling"] = billing.TypeDoc
	body["numberDocBilling"] = billing.NumberDoc
	body["mobilephoneBilling"] = billing.MobilePhone

	if details.Invoice != "" {
		body["invoice"] = details.Invoice
	}
	if details.TaxBase != nil {
		body["taxBase"] = details.TaxBase.String()
	}
	if details.Tax != nil {
		body["tax"] = details.Tax.String()
	}
	if details.TaxIco != nil {
		body["taxIco"] = details.TaxIco.String()
	}
	if len(details.MethodsDisable) > 0 {
		body["methodsDisable"] = append([]string{}, details.MethodsDisable...)
	}
	if details.Split != nil {
		body["splitPayment"] = canonicalSplit(details.Split)
	}

	for i, value := range details.Extras() {
		if value == nil {
			continue
		}
		body["extra"+strconv.Itoa(i+1)] = *value
	}

	return body
}

func canonicalSplit(split *entity.SplitPayment) map[string]any {
	receivers := make([]map[string]string, 0, len(split.Receivers))
	for _, r := range split.Receivers {
		receiver := map[string]string{
			"id":     r.Id,
			"amount": r.Amount.String(),
		}
		if r.Tax != nil {
			receiver["tax"] = r.Tax.String()
		}
		if r.Fee != nil {
			receiver["fee"] = r.Fee.String()
		}
		receivers = append(receivers, receiver)
	}
	return map[string]any{
		"type":      split.Type,
		"receivers": receivers,
	}
}
