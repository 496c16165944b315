package signer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
)

type signerInfo struct {
	Address string `json:"address"`
	PubKey  []byte `json:"pubkey"`
	Denom   string `json:"denom,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.logger.Error().Err(err).Msg("failed to write health response")
	}
}

func (s *Service) handleSignerInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, signerInfo{
		Address: s.signer.Address(),
		PubKey:  s.signer.PubKey(),
		Denom:   s.cfg.Denom,
	})
}

// maxVoucherRequestBytes bounds the body of a voucher request.
const maxVoucherRequestBytes = 16 << 10

func (s *Service) handleIssueVoucher(w http.ResponseWriter, r *http.Request) {
	var req Request
	body := http.MaxBytesReader(w, r.Body, maxVoucherRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	v, err := s.signer.Issue(req)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, v)
	case errors.Is(err, ErrInvalidRequest):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrNonceIssued):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		s.logger.Error().Err(err).Str("nonce", req.Nonce).Msg("failed to issue voucher")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Service) registerRoutes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/signer", s.handleSignerInfo).Methods(http.MethodGet)
	r.HandleFunc("/vouchers", s.handleIssueVoucher).Methods(http.MethodPost)
	s.metrics.RegisterHandlers(r)
	return r
}
