package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"wellness-backend/internal/domain"
	"wellness-backend/internal/usecase"
)

// TestHandler sends a test push so app developers can verify their setup.
type TestHandler struct {
	notifier  usecase.Notifier
	tokenRepo domain.DeviceTokenRepository
	log       *zap.Logger
}

func NewTestHandler(notifier usecase.Notifier, tokenRepo domain.DeviceTokenRepository, log *zap.Logger) *TestHandler {
	return &TestHandler{
		notifier:  notifier,
		tokenRepo: tokenRepo,
		log:       log,
	}
}

type testNotificationRequest struct {
	UserID string `json:"userId"`
}

// SendTestNotification handles POST /api/notifications/test
func (h *TestHandler) SendTestNotification(w http.ResponseWriter, r *http.Request) {
	var req testNotificationRequest
	if err := decodeJSON(r, &req); err != nil || req.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	if h.notifier == nil || !h.notifier.IsEnabled() {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "FCM not configured",
		})
		return
	}

	tokens, err := h.tokenRepo.TokensForUser(r.Context(), req.UserID)
	if err != nil {
		h.log.Error("load device tokens", zap.String("user_id", req.UserID), zap.Error(err))
		writeError(w, err)
		return
	}
	if len(tokens) == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "No registered devices",
			"count":   0,
		})
		return
	}

	title := "Test notification"
	body := "Notifications from your wellness app are working."
	data := map[string]string{
		"type":      "test",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.notifier.SendMulticast(r.Context(), tokens, title, body, data); err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "Failed to send notification: " + err.Error(),
			"count":   len(tokens),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Test notification sent successfully",
		"count":   len(tokens),
	})
}
