package internal

import (
	"fmt"
	"gitee.com/golang-module/dongle"
	"payco/entity"
	"payco/services"
	"strings"
)

// Field order and separator are dictated by the gateway protocol and must
// match byte-for-byte. The digest is SHA-256 in lowercase hex.
const signatureSeparator = "^"

// SignatureString reconstructs the canonical signing string from the
// six-tuple of merchant secrets and payload fields.
func SignatureString(m *entity.SignatureMaterial) string {
	return strings.Join([]string{
		m.CustomerID,
		m.SigningKey,
		m.Reference,
		m.TransactionId,
		m.Amount,
		m.CurrencyCode,
	}, signatureSeparator)
}

// SignatureDigest hashes the canonical signing string.
func SignatureDigest(m *entity.SignatureMaterial) string {
	return dongle.Encrypt.FromString(SignatureString(m)).BySha256().ToHexString()
}

// VerifySignature reports whether the received signature matches the digest
// reconstructed from the material. A missing input, including the received
// signature itself, yields false; the function never panics. The amount
// "0" is a present value. Only the name of a missing field is logged,
// never its value.
func VerifySignature(received string, material *entity.SignatureMaterial, logger services.LogHandler) bool {
	if missing := missingSignatureField(received, material); missing != "" {
		if logger != nil {
			logger.Warn(fmt.Sprintf("signature check rejected: missing %s", missing))
		}
		return false
	}
	return SignatureDigest(material) == received
}

// missingSignatureField names the first absent input, or returns "".
// The webhook decoder maps an absent form key to the empty string, so
// emptiness is exactly absence here.
func missingSignatureField(received string, m *entity.SignatureMaterial) string {
	switch {
	case m == nil:
		return "material"
	case m.CustomerID == "":
		return "customer id"
	case m.SigningKey == "":
		return "signing key"
	case m.Reference == "":
		return "transaction reference"
	case m.TransactionId == "":
		return "transaction id"
	case m.Amount == "":
		return "amount"
	case m.CurrencyCode == "":
		return "currency code"
	case received == "":
		return "signature"
	}
	return ""
}
