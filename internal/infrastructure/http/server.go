package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"dolarito-rates/internal/application"
	"dolarito-rates/internal/domain"
	"dolarito-rates/internal/infrastructure/logx"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Server struct {
	svc *application.RatesService
}

func NewServer(svc *application.RatesService) *Server { return &Server{svc: svc} }

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ListRates answers with every quote in display order.
func (s *Server) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := s.svc.GetRates(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rates.Ordered())
}

func (s *Server) GetRate(w http.ResponseWriter, r *http.Request) {
	q, err := s.svc.GetRate(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedType):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrFetch):
		writeError(w, http.StatusBadGateway, "quote source unavailable")
	default:
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// writeJSON encodes before writing the header so an unencodable value
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logx.L().Error("http.encode_failed", zap.Error(err))
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Code: status, Message: http.StatusText(status)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Code: status, Message: msg})
}
