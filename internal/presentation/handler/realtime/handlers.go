package realtime

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/roomkit/roomkit/internal/infrastructure/metrics"
	"github.com/roomkit/roomkit/internal/infrastructure/ws"
)

type Handler struct {
	core   *ws.Core
	logger *zap.SugaredLogger
}

func NewHandler(core *ws.Core, logger *zap.SugaredLogger) *Handler {
	return &Handler{core: core, logger: logger}
}

// ServeWS upgrades the connection and hands it to the fan-out hub. The client
// picks its topics itself by sending joinRoom/leaveRoom frames; disconnecting
// drops all subscriptions.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.core.Upgrade(w, r)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	client := ws.NewClient(conn)
	h.core.Register() <- client
	metrics.WSConnections.Inc()
	h.logger.Infow("client connected", "client", client.ID, "remote", r.RemoteAddr)

	go client.WritePump()
	go func() {
		client.ReadPump(h.core)
		metrics.WSConnections.Dec()
		h.logger.Infow("client disconnected", "client", client.ID)
	}()
}
