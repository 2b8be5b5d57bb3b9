package nats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "formulary.formulations_loaded", Subject("FORMULATIONS_LOADED"))
}

func TestDecodeEvent(t *testing.T) {
	t.Run("publisher envelope", func(t *testing.T) {
		raw := []byte(`{"type":"FORMULATIONS_LOADED","payload":{"source":"fallback","total":9},"occurred_at":"2024-05-01T10:00:00Z"}`)

		event, err := DecodeEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, "FORMULATIONS_LOADED", event.EventType())
		assert.Equal(t, "fallback", event.Payload()["source"])
		assert.Equal(t, float64(9), event.Payload()["total"])
		assert.True(t, event.Timestamp().Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := DecodeEvent([]byte(`{"payload":{}}`))
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeEvent([]byte(`nope`))
		assert.Error(t, err)
	})
}
