package cache

import (
	"context"
	"fmt"
	"log"

	kafkax "github.com/ariefcatur/go-laundry-pos.git/internal/kafka"
	"github.com/ariefcatur/go-laundry-pos.git/internal/pos"
	"github.com/ariefcatur/go-laundry-pos.git/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// Service adalah cache layer khusus: satu-satunya tempat read cache katalog
// di-invalidate. Sumber sinyalnya event pos.order.created pasca-commit.
type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// HandleOrderCreated: dipasang sebagai handler consumer.
func (s *Service) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	var env pos.Envelope
	if err := kafkax.UnmarshalEnvelope(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != pos.EventOrderCreated {
		return nil
	} // ignore

	// dedup via Redis (pakai event_id); invalidasi memang idempotent, tapi
	// log-nya jadi bersih
	dkey := fmt.Sprintf(redisx.KeyDedup, "cacheworker", env.EventID)
	exists, _ := redisx.Exists(ctx, s.Redis, dkey)
	if exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[pos.OrderCreatedPayload](env.Payload)
	if err != nil {
		return err
	}

	if err := s.Redis.Del(ctx, redisx.KeyPOSItems, redisx.KeyInventories).Err(); err != nil {
		return err
	}
	log.Printf("%s: cache invalidated: order=%s status=%s", s.ServiceName, p.OrderID, p.Status)
	return nil
}
