// Package events publishes storefront activity (listing views, add-to-cart)
// to Kafka for the analytics pipeline. Publishing is fire-and-forget: it
// must never block or fail a shopper-facing request, and a storefront
// running without a broker simply gets a no-op producer.
package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const topic = "storefront.activity"

// Event is one storefront activity record.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	UserID    int64     `json:"user_id,omitempty"`
	PetType   string    `json:"pet_type,omitempty"`
	Category  string    `json:"category,omitempty"`
	Sub       string    `json:"sub,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Results   int       `json:"results,omitempty"`
	At        time.Time `json:"at"`
}

type Producer struct {
	w *kafka.Writer
}

// NewProducer reads KAFKA_BROKER from the environment. Unset means events
// are disabled and every publish is a no-op.
func NewProducer() *Producer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		log.Println("events: KAFKA_BROKER not set, activity events disabled")
		return &Producer{}
	}
	return &Producer{w: &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}}
}

func (p *Producer) Close() {
	if p != nil && p.w != nil {
		p.w.Close()
	}
}

// ListingViewed records one rendered category listing.
func (p *Producer) ListingViewed(ctx context.Context, petType, category, sub string, results int) {
	p.publish(ctx, Event{
		Type:     "listing_viewed",
		PetType:  petType,
		Category: category,
		Sub:      sub,
		Results:  results,
	}, petType)
}

// AddedToCart records a cart line being added.
func (p *Producer) AddedToCart(ctx context.Context, userID int64, productID string, quantity int) {
	p.publish(ctx, Event{
		Type:      "added_to_cart",
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}, productID)
}

func (p *Producer) publish(ctx context.Context, ev Event, key string) {
	if p == nil || p.w == nil {
		return
	}
	ev.ID = uuid.NewString()
	ev.At = time.Now().UTC()

	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	// Async writer: WriteMessages queues and returns; write errors surface
	// in the log, never to the shopper.
	if err := p.w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data, Time: ev.At}); err != nil {
		log.Printf("events: publish %s failed: %v", ev.Type, err)
	}
}
