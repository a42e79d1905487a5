package handler

import (
	"net/http"
	"net/url"
	"time"

	"hospital-emr-backend/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = 50 * time.Second
)

// ChatStreamHandler pushes chat events of the caller's hospital over a websocket.
type ChatStreamHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewChatStreamHandler accepts browser upgrades from allowedOrigins or the
// server's own host. Clients that send no Origin header are accepted.
func NewChatStreamHandler(hub *realtime.Hub, allowedOrigins []string, log *zap.Logger) *ChatStreamHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &ChatStreamHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				if _, ok := allowed[origin]; ok {
					return true
				}
				u, err := url.Parse(origin)
				return err == nil && u.Host == r.Host
			},
		},
		log: log,
	}
}

// Stream handles GET /api/chat/ws
func (h *ChatStreamHandler) Stream(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	sub := h.hub.Subscribe(session.HospitalID, session.UserID)
	defer h.hub.Unsubscribe(sub)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug("chat stream upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// The reader only services control frames and notices the client leaving.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(streamPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.log.Debug("chat stream closed", zap.Uint("user_id", session.UserID), zap.Error(err))
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				h.log.Debug("chat stream write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
