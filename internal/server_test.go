package internal

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(checkout *Checkout) *Server {
	server := NewServer(testConfig("http://gateway.invalid"))
	server.SetLogger(NewLogger("test", false, nil))
	server.SetCheckoutService(checkout)
	return server
}

func TestConfirmationEndpoint(t *testing.T) {

	t.Run("verified webhook is accepted", func(t *testing.T) {
		checkout := testCheckout("http://gateway.invalid")
		database := newFakeDatabase()
		checkout.SetDatabase(database)
		server := testServer(checkout)

		material := fixtureMaterial()
		form := confirmationParams(SignatureDigest(&material))

		request := httptest.NewRequest("POST", confirmPayment, strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		recorder := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"accepted":true,"reference":"999","status":"accepted"}`, recorder.Body.String())
		assert.Equal(t, 1, database.saveCalls)
	})

	t.Run("forged webhook answers 200 but is not accepted", func(t *testing.T) {
		checkout := testCheckout("http://gateway.invalid")
		database := newFakeDatabase()
		checkout.SetDatabase(database)
		server := testServer(checkout)

		form := confirmationParams(strings.Repeat("0", 64))

		request := httptest.NewRequest("POST", confirmPayment, strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		recorder := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"accepted":false}`, recorder.Body.String())
		assert.Zero(t, database.saveCalls)
	})

	t.Run("query parameters are read as well", func(t *testing.T) {
		checkout := testCheckout("http://gateway.invalid")
		server := testServer(checkout)

		material := fixtureMaterial()
		form := confirmationParams(SignatureDigest(&material))

		request := httptest.NewRequest("POST", confirmPayment+"?"+form.Encode(), nil)
		recorder := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"accepted":true`)
	})
}

func TestSessionEndpoint(t *testing.T) {

	t.Run("invalid body is a bad request", func(t *testing.T) {
		server := testServer(testCheckout("http://gateway.invalid"))

		request := httptest.NewRequest("POST", createSession, strings.NewReader("not json"))
		recorder := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("configuration failure maps to bad request", func(t *testing.T) {
		conf := testConfig("http://gateway.invalid")
		conf.Merchant.PublicKey = ""
		checkout := NewCheckout(conf)
		checkout.SetLogger(NewLogger("test", false, nil))
		server := testServer(checkout)

		request := httptest.NewRequest("POST", createSession, strings.NewReader(`{"name":"x"}`))
		recorder := httptest.NewRecorder()
		server.httpServer.Handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "merchant credentials not configured")
	})
}
