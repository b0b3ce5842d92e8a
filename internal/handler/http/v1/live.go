package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = (livePongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// @Summary Live dashboard feed
// @Description Websocket. Sends the filtered view, the active list and the statistics after every recompute.
// @Tags Incidents
// @Param search query string false "Search string"
// @Param status query string false "Status filter for the active list" default(all)
// @Success 101 {object} LiveUpdateResponse
// @Router /incidents/live [get]
func (h *Handler) liveFeed(c *gin.Context) {
	log := h.logger.WithField("method", "liveFeed")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade to websocket")
		return
	}
	defer conn.Close()

	updates, cancel := h.incidentService.Subscribe(filterFromQuery(c))
	defer cancel()

	// клиент ничего не шлет; чтение нужно для pong и обнаружения закрытия
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(livePongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	log.Info("Live feed client connected")
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteJSON(LiveUpdateToResponse(update)); err != nil {
				log.WithError(err).Warn("Failed to write live update")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			log.Info("Live feed client disconnected")
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
