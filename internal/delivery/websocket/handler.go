package websocket

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"wellness-backend/internal/domain"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origins are enforced by the CORS layer
	},
}

// RecordSource returns the newest record of each kind for a user.
type RecordSource interface {
	LatestRecords(ctx context.Context, userID string) ([]*domain.AssessmentRecord, error)
}

// Update is the message pushed to clients.
type Update struct {
	Type    string                     `json:"type"`
	UserID  string                     `json:"userId"`
	Records []*domain.AssessmentRecord `json:"records"`
	SentAt  time.Time                  `json:"sentAt"`
}

type Handler struct {
	source   RecordSource
	interval time.Duration
	log      *zap.Logger
}

func NewHandler(source RecordSource, interval time.Duration, log *zap.Logger) *Handler {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		source:   source,
		interval: interval,
		log:      log,
	}
}

// ServeHTTP upgrades GET /ws?userId= and pushes the user's latest records on
// connect and then every poll interval until the client goes away.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	log := h.log.With(zap.String("user_id", userID))
	log.Info("client connected")

	// Drain reads so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := r.Context()
	if err := h.push(ctx, conn, userID); err != nil {
		log.Warn("write error", zap.Error(err))
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			log.Info("client disconnected")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := h.push(ctx, conn, userID); err != nil {
				log.Warn("write error", zap.Error(err))
				return
			}
		}
	}
}

func (h *Handler) push(ctx context.Context, conn *websocket.Conn, userID string) error {
	records, err := h.source.LatestRecords(ctx, userID)
	if err != nil {
		// Keep the connection; the next tick retries.
		h.log.Error("load latest records", zap.String("user_id", userID), zap.Error(err))
		return nil
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(Update{
		Type:    "latest",
		UserID:  userID,
		Records: records,
		SentAt:  time.Now().UTC(),
	})
}
