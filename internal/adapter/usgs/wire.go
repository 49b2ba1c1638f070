package usgs

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
)

// USGS GeoJSON feed types. Optional properties are pointers so nulls and
// missing fields decode to safe defaults instead of failing the fetch.

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	ID         string     `json:"id"`
	Properties properties `json:"properties"`
	Geometry   geometry   `json:"geometry"`
}

type properties struct {
	Mag     *float64 `json:"mag"`
	Place   string   `json:"place"`
	Time    int64    `json:"time"`
	Updated *int64   `json:"updated"`
	Tsunami int      `json:"tsunami"`
	Felt    *int     `json:"felt"`
	Sig     *int     `json:"sig"`
	MagType string   `json:"magType"`
	Net     string   `json:"net"`
	Status  string   `json:"status"`
	Type    string   `json:"type"`
	URL     string   `json:"url"`
}

type geometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth_km]
}

// DecodeFeed parses a GeoJSON summary payload into domain events sorted
// descending by time. Malformed geometry (anything but three entries) is
// defaulted to zero coordinates rather than failing the whole fetch.
func DecodeFeed(payload []byte) ([]domain.Event, error) {
	var fc featureCollection
	if err := json.Unmarshal(payload, &fc); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	events := make([]domain.Event, 0, len(fc.Features))
	for _, f := range fc.Features {
		events = append(events, f.toEvent())
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.After(events[j].Time)
	})

	return events, nil
}

func (f feature) toEvent() domain.Event {
	e := domain.Event{
		ID:           f.ID,
		Magnitude:    f.Properties.Mag,
		Place:        f.Properties.Place,
		Time:         time.UnixMilli(f.Properties.Time).UTC(),
		Tsunami:      f.Properties.Tsunami == 1,
		Felt:         f.Properties.Felt,
		Significance: f.Properties.Sig,
		MagType:      f.Properties.MagType,
		Network:      f.Properties.Net,
		Status:       f.Properties.Status,
		EventType:    f.Properties.Type,
		URL:          f.Properties.URL,
	}

	if f.Properties.Updated != nil {
		u := time.UnixMilli(*f.Properties.Updated).UTC()
		e.Updated = &u
	}

	if c := f.Geometry.Coordinates; len(c) == 3 {
		e.Coordinates = domain.Coordinates{Lon: c[0], Lat: c[1], DepthKm: c[2]}
	}

	return e
}
