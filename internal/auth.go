package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"gitee.com/golang-module/dongle"
	"io"
	"net/http"
	"payco/entity"
)

const loginPath = "/login"

const loginFallbackMessage = "login failed, gateway response carries no error detail"

// loginErrorProbes are applied in order to a failed login response; the
// first non-empty result becomes the diagnostic message. The gateway emits
// different error shapes depending on which layer rejected the call.
var loginErrorProbes = []func(*entity.LoginResponse) string{
	func(r *entity.LoginResponse) string { return r.Error },
	func(r *entity.LoginResponse) string { return r.TextResponse },
	func(r *entity.LoginResponse) string { return r.TitleResponse },
	func(r *entity.LoginResponse) string { return r.Message },
}

func loginFailureMessage(r *entity.LoginResponse) string {
	for _, probe := range loginErrorProbes {
		if message := probe(r); message != "" {
			return message
		}
	}
	return loginFallbackMessage
}

// authenticate exchanges the merchant key pair for a short-lived bearer
// token. One round trip, no retry, no caching; success means exactly that
// the response body carries a non-empty token, HTTP status aside.
func (c *Checkout) authenticate(ctx context.Context) (string, error) {
	credential := dongle.Encode.
		FromString(c.conf.Merchant.PublicKey + ":" + c.conf.Merchant.PrivateKey).
		ByBase64().
		ToString()

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiUrl+loginPath, bytes.NewBufferString("{}"))
	if err != nil {
		return "", authenticationError("create login request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+credential)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return "", authenticationError("login request: %v", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error("close login response body", err)
		}
	}(response.Body)

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", authenticationError("read login response: %v", err)
	}

	var login entity.LoginResponse
	if err = json.Unmarshal(body, &login); err != nil {
		return "", authenticationError("parse login response: %v", err)
	}
	if login.Token == "" {
		return "", authenticationError("%s", loginFailureMessage(&login))
	}
	return login.Token, nil
}
