package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/julienschmidt/httprouter"
	"net"
	"net/http"
	"payco/config"
	"payco/entity"
	"payco/services"
)

const (
	createSession     = "/session"
	confirmPayment    = "/confirmation"
	transactionDetail = "/transaction/:reference"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	checkout   services.Checkout
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(createSession, s.createSession)
	router.POST(confirmPayment, s.confirmPayment)
	router.GET(transactionDetail, s.transactionDetail)
}

func (s *Server) SetCheckoutService(checkout services.Checkout) {
	s.checkout = checkout
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

// createSession accepts payment details from the merchant backend and
// returns the gateway session id for the hosted checkout.
func (s *Server) createSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var details entity.PaymentDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create session: decode request body", reqID), err)
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionId, err := s.checkout.CreateSession(ctx, &details)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] create session", reqID), err)
		s.writeError(w, errorStatus(err), err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"sessionId": sessionId,
	})
}

// confirmPayment handles the gateway's confirmation webhook. The response
// is always 200 so the gateway does not re-deliver blindly; the body states
// whether the confirmation was accepted.
func (s *Server) confirmPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	if err := r.ParseForm(); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] confirmation: parse form", reqID), err)
		s.writeJSON(w, http.StatusOK, map[string]any{"accepted": false})
		return
	}

	confirmation, err := s.checkout.ProcessConfirmation(ctx, r.Form)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] confirmation not accepted: %v", reqID, err))
		s.writeJSON(w, http.StatusOK, map[string]any{"accepted": false})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"accepted":  true,
		"reference": confirmation.Reference,
		"status":    confirmation.Status,
	})
}

// transactionDetail proxies the gateway's validation endpoint for
// user-facing status pages.
func (s *Server) transactionDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	reference := ps.ByName("reference")
	if reference == "" {
		s.logger.Warn(fmt.Sprintf("[%s] empty transaction reference", reqID))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	detail, err := s.checkout.TransactionDetail(ctx, reference)
	if err != nil {
		s.logger.Error(fmt.Sprintf("[%s] transaction detail %s", reqID, reference), err)
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(detail); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] write transaction detail", reqID), err)
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusBadGateway
	case errors.Is(err, ErrSessionCreation):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("write response", err)
	}
}
