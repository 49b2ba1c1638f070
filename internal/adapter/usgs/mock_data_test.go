package usgs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/quake-data-dashboard/internal/adapter/usgs"
	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	path := filepath.Join("..", "..", "..", "data", "mock", name)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

// TestDecodeFeed_WithMockFixture decodes the committed genmock feed fixture
// and checks the result against the committed events fixture, so decoder
// changes that alter the output shape show up as a fixture diff.
func TestDecodeFeed_WithMockFixture(t *testing.T) {
	decoded, err := usgs.DecodeFeed(readFixture(t, "feed_all_day.geojson"))
	require.NoError(t, err)

	var want []domain.Event
	require.NoError(t, json.Unmarshal(readFixture(t, "events_all_day.json"), &want))

	require.Equal(t, want, decoded)
	require.Len(t, decoded, 7)

	for i := 1; i < len(decoded); i++ {
		assert.False(t, decoded[i].Time.After(decoded[i-1].Time),
			"event %s is newer than its predecessor", decoded[i].ID)
	}

	// The fixture covers every severity tier plus the no-magnitude and
	// no-place cases.
	counts := map[domain.Severity]int{}
	for _, e := range decoded {
		counts[domain.SeverityFor(e.MagnitudeValue())]++
	}
	assert.Equal(t, 1, counts[domain.SeverityMajor])
	assert.Equal(t, 1, counts[domain.SeverityStrong])
	assert.Equal(t, 1, counts[domain.SeverityModerate])
	assert.Equal(t, 1, counts[domain.SeverityMinor])
	assert.Equal(t, 3, counts[domain.SeverityMicro])

	noMag := 0
	noPlace := 0
	for _, e := range decoded {
		if e.Magnitude == nil {
			noMag++
		}
		if !e.HasPlace() {
			noPlace++
		}
	}
	assert.Equal(t, 1, noMag)
	assert.Equal(t, 1, noPlace)
}
