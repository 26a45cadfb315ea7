package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"wellness-backend/internal/domain"
)

type TokenHandler struct {
	tokenRepo domain.DeviceTokenRepository
	log       *zap.Logger
}

func NewTokenHandler(tokenRepo domain.DeviceTokenRepository, log *zap.Logger) *TokenHandler {
	return &TokenHandler{
		tokenRepo: tokenRepo,
		log:       log,
	}
}

type RegisterTokenRequest struct {
	UserID   string `json:"userId"`
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// HandleRegisterToken handles POST /api/notifications/register
func (h *TokenHandler) HandleRegisterToken(w http.ResponseWriter, r *http.Request) {
	var req RegisterTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if req.Platform == "" {
		req.Platform = "android"
	}

	err := h.tokenRepo.RegisterToken(r.Context(), domain.DeviceToken{
		UserID:    req.UserID,
		Token:     req.Token,
		Platform:  req.Platform,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		h.log.Error("register token", zap.String("user_id", req.UserID), zap.Error(err))
		writeError(w, err)
		return
	}

	h.respond(w, r, "Token registered successfully")
}

// HandleUnregisterToken handles POST /api/notifications/unregister
func (h *TokenHandler) HandleUnregisterToken(w http.ResponseWriter, r *http.Request) {
	var req RegisterTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return
	}

	if err := h.tokenRepo.UnregisterToken(r.Context(), req.Token); err != nil {
		h.log.Error("unregister token", zap.Error(err))
		writeError(w, err)
		return
	}

	h.respond(w, r, "Token unregistered successfully")
}

// HandleGetTokenCount handles GET /api/notifications/count
func (h *TokenHandler) HandleGetTokenCount(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "Token count retrieved")
}

func (h *TokenHandler) respond(w http.ResponseWriter, r *http.Request, message string) {
	count, err := h.tokenRepo.Count(r.Context())
	if err != nil {
		h.log.Error("count tokens", zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{
		Success: true,
		Message: message,
		Count:   count,
	})
}
