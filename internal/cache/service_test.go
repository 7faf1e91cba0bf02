package cache

import (
	"context"
	"testing"

	kafkax "github.com/ariefcatur/go-laundry-pos.git/internal/kafka"
	"github.com/ariefcatur/go-laundry-pos.git/internal/pos"
	kafkago "github.com/segmentio/kafka-go"
)

func TestHandleOrderCreatedIgnoresOtherEvents(t *testing.T) {
	s := &Service{} // redis tidak tersentuh utk event yang di-skip

	env := pos.Envelope{EventID: "ev-1", EventType: "SomethingElse"}
	m := kafkago.Message{Value: kafkax.MustMarshal(env)}

	if err := s.HandleOrderCreated(context.Background(), m); err != nil {
		t.Errorf("HandleOrderCreated() error = %v, want nil (ignored)", err)
	}
}

func TestHandleOrderCreatedRejectsBadEnvelope(t *testing.T) {
	s := &Service{}
	m := kafkago.Message{Value: []byte(`{not json`)}

	if err := s.HandleOrderCreated(context.Background(), m); err == nil {
		t.Error("HandleOrderCreated() error = nil, want decode error")
	}
}
