package cache

import (
	"context"
	"encoding/json"
	"time"
)

// KitchenChannel reçoit les tickets cuisine émis au checkout
const KitchenChannel = "kitchen:kot"

// KitchenTicket est le message publié pour l'écran cuisine
type KitchenTicket struct {
	OrderID  string    `json:"order_id"`
	Customer string    `json:"customer"`
	Lines    []string  `json:"lines"`
	SentAt   time.Time `json:"sent_at"`
}

// KitchenFeed publie les tickets sur Redis pub/sub
type KitchenFeed struct {
	rdb RedisClient
}

func NewKitchenFeed(rdb RedisClient) *KitchenFeed {
	return &KitchenFeed{rdb: rdb}
}

func (k *KitchenFeed) Publish(ctx context.Context, ticket KitchenTicket) error {
	if ticket.SentAt.IsZero() {
		ticket.SentAt = time.Now().UTC()
	}
	data, err := json.Marshal(ticket)
	if err != nil {
		return err
	}
	return k.rdb.Publish(ctx, KitchenChannel, data).Err()
}
