package shop

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"brewbatter_back_end/internal/cache"
	"brewbatter_back_end/internal/handlers"
	"brewbatter_back_end/internal/middleware"
)

// 🔄 GET /api/cart/ws : pousse le panier à chaque modification
func (h *Handler) CartWebSocket(c *gin.Context) {
	sessionID := middleware.CartID(c)

	conn, err := handlers.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.PubSub.Subscribe(ctx, cache.CartKey(sessionID))
	defer pubsub.Close()
	ch := pubsub.Channel()

	// lecture: détecte la fermeture côté client
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	push := func(kind string) error {
		ct, err := h.Carts.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		return conn.WriteJSON(gin.H{"type": kind, "cart": viewOf(ct)})
	}

	if err := push("connected"); err != nil {
		log.Printf("❌ Erreur envoi WebSocket: %v", err)
		return
	}

	ticker := time.NewTicker(handlers.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != cache.CartUpdated && msg.Payload != cache.CartCleared {
				continue
			}
			if err := push("cart_updated"); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
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
