package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	eventTime := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	mag := 4.5
	event := domain.Event{
		ID:          "us7000abcd",
		Magnitude:   &mag,
		Place:       "35 km W of Petrolia, CA",
		Time:        eventTime,
		Coordinates: domain.Coordinates{Lon: -124.5, Lat: 40.3, DepthKm: 19.2},
		EventType:   "earthquake",
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("us7000abcd"), msg.Key)
	assert.Contains(t, string(msg.Value), `"magnitude":4.5`)
	assert.Contains(t, string(msg.Value), `"depth_km":19.2`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("earthquake"), msg.Headers[0].Value)
	assert.Equal(t, "event_time", msg.Headers[1].Key)
	assert.Equal(t, []byte(eventTime.Format(time.RFC3339)), msg.Headers[1].Value)
}
