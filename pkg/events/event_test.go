package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	before := time.Now()
	event := New("FORMULATIONS_LOADED", map[string]interface{}{"total": 9})

	assert.Equal(t, "FORMULATIONS_LOADED", event.EventType())
	assert.Equal(t, 9, event.Payload()["total"])
	assert.False(t, event.Timestamp().Before(before))
}
