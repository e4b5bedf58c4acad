package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// PingPeriod garde les websockets ouverts derrière les proxys
const PingPeriod = 30 * time.Second

// Upgrader est partagé par le panier et l'écran cuisine; CheckOrigin est fixé au démarrage
var Upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}
