package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"payco/config"
	"payco/entity"
	"payco/services"
	"strings"
	"time"
)

const (
	sessionCreatePath = "/payment/session/create"
	validationPath    = "/validation/v1/reference/"
)

const sessionFallbackMessage = "session create failed, gateway response carries no error detail"

// Checkout mediates between the merchant backend and the payment gateway.
// It holds no state across calls; concurrent sessions each perform their
// own login round trip.
type Checkout struct {
	conf          *config.Config
	database      services.Database
	logger        services.LogHandler
	apiUrl        string
	validationUrl string
	httpClient    *http.Client
}

// NewCheckout creates the checkout service with a configured HTTP client.
// The client includes timeouts and connection pooling for reliable external
// API calls; cancellation beyond that is the caller's context.
func NewCheckout(conf *config.Config) *Checkout {
	return &Checkout{
		conf:          conf,
		apiUrl:        conf.Merchant.ApiUrl,
		validationUrl: conf.Merchant.ValidationUrl,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				DisableKeepAlives:   false,
			},
		},
	}
}

func (c *Checkout) SetDatabase(database services.Database) {
	c.database = database
}

func (c *Checkout) SetLogger(logger services.LogHandler) {
	c.logger = logger
}

// CreateSession obtains a bearer token, canonicalizes the payment details
// and asks the gateway for a checkout session. The returned session id is
// valid for a single checkout attempt; ownership transfers to the caller.
func (c *Checkout) CreateSession(ctx context.Context, details *entity.PaymentDetails) (string, error) {
	if c.conf.Merchant.PublicKey == "" || c.conf.Merchant.PrivateKey == "" {
		return "", configurationError("merchant credentials not configured")
	}
	if details == nil {
		return "", configurationError("payment details are required")
	}

	token, err := c.authenticate(ctx)
	if err != nil {
		// already tagged with its failure kind and diagnostic message
		return "", err
	}

	requestData, err := json.Marshal(CanonicalRequest(details, c.conf.Merchant.TestMode))
	if err != nil {
		return "", sessionCreationError("encode session request: %v", err)
	}
	c.logger.Debug(fmt.Sprintf("session request: %s", string(requestData)))

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiUrl+sessionCreatePath, bytes.NewBuffer(requestData))
	if err != nil {
		return "", sessionCreationError("create session request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return "", sessionCreationError("session request: %v", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error("close session response body", err)
		}
	}(response.Body)

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", sessionCreationError("read session response: %v", err)
	}

	var session entity.SessionResponse
	if err = json.Unmarshal(body, &session); err != nil {
		return "", sessionCreationError("parse session response: %v", err)
	}
	if !session.Success || session.Data.SessionId == "" {
		return "", sessionCreationError("%s", sessionFailureMessage(&session))
	}

	c.logger.Info(fmt.Sprintf("session created for invoice %s", details.Invoice))
	return session.Data.SessionId, nil
}

// sessionFailureMessage assembles a diagnostic from the richest fields the
// gateway returned. Field errors are appended in gateway order, no
// reordering or deduplication.
func sessionFailureMessage(r *entity.SessionResponse) string {
	message := r.TextResponse
	if message == "" {
		message = r.TitleResponse
	}
	if message == "" {
		message = sessionFallbackMessage
	}
	if len(r.Data.Errors) > 0 {
		parts := make([]string, 0, len(r.Data.Errors))
		for _, fieldError := range r.Data.Errors {
			parts = append(parts, fmt.Sprintf("%d: %s", fieldError.CodError, fieldError.ErrorMessage))
		}
		message = fmt.Sprintf("%s; %s", message, strings.Join(parts, ", "))
	}
	return message
}

// ProcessConfirmation authenticates an inbound confirmation webhook by its
// signature and persists the verified outcome keyed by the transaction
// reference. An unverified payload is rejected and persisted nowhere.
func (c *Checkout) ProcessConfirmation(ctx context.Context, params url.Values) (*entity.Confirmation, error) {
	payload := entity.ParseConfirmation(params)

	material := entity.SignatureMaterial{
		CustomerID:    c.conf.Merchant.CustomerID,
		SigningKey:    c.conf.Merchant.SigningKey,
		Reference:     payload.Reference,
		TransactionId: payload.TransactionId,
		Amount:        payload.Amount,
		CurrencyCode:  payload.CurrencyCode,
	}
	if !VerifySignature(payload.Signature, &material, c.logger) {
		c.logger.Warn(fmt.Sprintf("confirmation rejected: signature mismatch, reference %s", payload.Reference))
		return nil, fmt.Errorf("invalid confirmation signature")
	}

	confirmation := &entity.Confirmation{
		Reference:     payload.Reference,
		TransactionId: payload.TransactionId,
		Amount:        payload.Amount,
		CurrencyCode:  payload.CurrencyCode,
		ResponseCode:  payload.ResponseCode,
		Status:        payload.Status(),
		Extras:        payload.Extras,
		TimeReceived:  time.Now(),
	}
	if c.database != nil {
		if err := c.database.SaveConfirmation(ctx, confirmation); err != nil {
			c.logger.Error("save confirmation", err)
			return nil, err
		}
	}

	c.logger.Info(fmt.Sprintf("confirmation %s: %s, amount %s %s",
		confirmation.Reference, confirmation.Status, confirmation.Amount, confirmation.CurrencyCode))
	return confirmation, nil
}

// TransactionDetail queries the gateway's validation endpoint for the
// current state of a transaction. The result feeds user-facing feedback
// only; the signed confirmation webhook remains the authoritative outcome.
func (c *Checkout) TransactionDetail(ctx context.Context, reference string) ([]byte, error) {
	if reference == "" {
		return nil, configurationError("empty transaction reference")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.validationUrl+validationPath+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("create validation request: %v", err)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("validation request: %v", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error("close validation response body", err)
		}
	}(response.Body)

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read validation response: %v", err)
	}
	return body, nil
}
