package staff

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/handlers"
)

// 🍳 GET /api/kitchen/ws : relaie les KOT publiés au checkout
func (h *Handler) KitchenWebSocket(c *gin.Context) {
	conn, err := handlers.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket cuisine: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.PubSub.Subscribe(ctx, cache.KitchenChannel)
	defer pubsub.Close()
	ch := pubsub.Channel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(gin.H{"type": "connected"}); err != nil {
		return
	}
	log.Printf("🍳 Écran cuisine connecté (%s)", c.ClientIP())

	ticker := time.NewTicker(handlers.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ticket cache.KitchenTicket
			if err := json.Unmarshal([]byte(msg.Payload), &ticket); err != nil {
				log.Printf("⚠️ KOT illisible ignoré: %v", err)
				continue
			}
			if err := conn.WriteJSON(gin.H{"type": "kot", "ticket": ticket}); err != nil {
				log.Printf("❌ Erreur envoi WebSocket cuisine: %v", err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-ctx.Done():
			return
		}
	}
}
