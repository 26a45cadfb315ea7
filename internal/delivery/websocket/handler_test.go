package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wellness-backend/internal/domain"
)

type stubSource struct {
	calls atomic.Int32
}

func (s *stubSource) LatestRecords(_ context.Context, userID string) ([]*domain.AssessmentRecord, error) {
	n := s.calls.Add(1)
	return []*domain.AssessmentRecord{{
		ID:     "rec",
		UserID: userID,
		Kind:   domain.KindEnergyLoop,
		Score:  float64(60 + n),
	}}, nil
}

func TestHandlerPushesLatestRecords(t *testing.T) {
	source := &stubSource{}
	srv := httptest.NewServer(NewHandler(source, 20*time.Millisecond, zap.NewNop()))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?userId=user-1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first Update
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "latest", first.Type)
	assert.Equal(t, "user-1", first.UserID)
	require.Len(t, first.Records, 1)
	assert.Equal(t, 61.0, first.Records[0].Score)

	var second Update
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, 62.0, second.Records[0].Score)
}

func TestHandlerRequiresUserID(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubSource{}, time.Second, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
