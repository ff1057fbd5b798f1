package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct {
	N int `json:"n"`
}

func TestWatermillBridge(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridge := NewWatermillBridge(nil)
	defer bridge.Close()

	t.Run("delivers raw messages with metadata", func(t *testing.T) {
		got := make(chan Message, 1)
		require.NoError(t, bridge.Subscribe(ctx, "test.raw", func(_ context.Context, msg Message) error {
			got <- msg
			return nil
		}))

		require.NoError(t, bridge.Publish(ctx, Message{
			Topic:    "test.raw",
			Payload:  []byte("hello"),
			Metadata: map[string]string{"request_id": "req-1"},
		}))

		select {
		case msg := <-got:
			assert.Equal(t, "test.raw", msg.Topic)
			assert.Equal(t, "hello", string(msg.Payload))
			assert.Equal(t, "req-1", msg.Metadata["request_id"])
			assert.NotContains(t, msg.Metadata, metaKeyTopic)
		case <-time.After(2 * time.Second):
			t.Fatal("message was not delivered")
		}
	})

	t.Run("typed events round trip in order", func(t *testing.T) {
		event := NewEvent[ping]("test.typed")
		got := make(chan int, 3)
		require.NoError(t, Subscribe(ctx, bridge, event, func(_ context.Context, p ping) error {
			got <- p.N
			return nil
		}))

		for i := 1; i <= 3; i++ {
			require.NoError(t, Publish(ctx, bridge, event, ping{N: i}))
		}
		for want := 1; want <= 3; want++ {
			select {
			case n := <-got:
				assert.Equal(t, want, n)
			case <-time.After(2 * time.Second):
				t.Fatalf("event %d was not delivered", want)
			}
		}
	})
}

func TestSetupOTel(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled tracing is a no-op", func(t *testing.T) {
		tracer, shutdown, err := SetupOTel(ctx, TracingConfig{})
		require.NoError(t, err)
		_, span := tracer.Start(ctx, "test")
		span.End()
		assert.NoError(t, shutdown(ctx))
	})

	t.Run("enabled tracing builds a provider", func(t *testing.T) {
		tracer, shutdown, err := SetupOTel(ctx, TracingConfig{
			Enabled:     true,
			ServiceName: "portfolio-test",
			ZipkinURL:   "http://127.0.0.1:9411/api/v2/spans",
		})
		require.NoError(t, err)
		require.NotNil(t, tracer)

		bridge := NewWatermillBridge(tracer)
		require.NoError(t, bridge.Publish(ctx, Message{Topic: "test.traced", Payload: []byte("{}")}))
		require.NoError(t, bridge.Close())

		shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	})
}
