package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/entity/keypress"
	"max.ks1230/khqr-bot/internal/logger"
)

const (
	sendKeyPath = "/send-key"
	metricsPath = "/metrics"
	keyParam    = "key"
)

type keyPublisher interface {
	ProduceKeyPress(ctx context.Context, press keypress.Press) error
}

type sendKeyResponse struct {
	Status string `json:"status"`
	Key    string `json:"key,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewHandler serves the counter-facing HTTP endpoints.
func NewHandler(publisher keyPublisher) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(sendKeyPath, sendKeyHandler(publisher))
	mux.Handle(metricsPath, promhttp.Handler())
	return mux
}

func sendKeyHandler(publisher keyPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := handleSendKey(w, r, publisher)
		observeRequest(keypress.SourceHTTP, status, time.Since(start))
	}
}

func handleSendKey(w http.ResponseWriter, r *http.Request, publisher keyPublisher) int {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		return writeJSON(w, http.StatusMethodNotAllowed, sendKeyResponse{Status: "error", Error: "method not allowed"})
	}

	key := r.URL.Query().Get(keyParam)
	if key == "" {
		return writeJSON(w, http.StatusBadRequest, sendKeyResponse{Status: "error", Error: "key is required"})
	}

	err := publisher.ProduceKeyPress(r.Context(), keypress.Press{
		Key:       key,
		Source:    keypress.SourceHTTP,
		PressedAt: time.Now(),
	})
	if err != nil {
		logger.Error("failed to publish key press", zap.Error(err), zap.String("key", key))
		return writeJSON(w, http.StatusBadGateway, sendKeyResponse{Status: "error", Key: key, Error: "cannot broadcast key"})
	}

	return writeJSON(w, http.StatusOK, sendKeyResponse{Status: "success", Key: key})
}

func writeJSON(w http.ResponseWriter, status int, body sendKeyResponse) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write response", zap.Error(err))
	}
	return status
}
