package domain

import "time"

// Coordinates is the epicenter position from the feed's GeoJSON geometry.
// The wire order is [lon, lat, depth]; depth may be negative for events
// referenced above sea level.
type Coordinates struct {
	Lon     float64 `json:"lon"`
	Lat     float64 `json:"lat"`
	DepthKm float64 `json:"depth_km"`
}

// Event is one seismic event as reported by the upstream feed. Optional
// feed fields are pointers so "absent" stays distinguishable from zero.
type Event struct {
	ID           string      `json:"id"`
	Magnitude    *float64    `json:"magnitude,omitempty"`
	Place        string      `json:"place,omitempty"`
	Time         time.Time   `json:"time"`
	Updated      *time.Time  `json:"updated,omitempty"`
	Coordinates  `json:"coordinates"`
	Tsunami      bool        `json:"tsunami"`
	Felt         *int        `json:"felt,omitempty"`
	Significance *int        `json:"significance,omitempty"`
	MagType      string      `json:"mag_type,omitempty"`
	Network      string      `json:"network,omitempty"`
	Status       string      `json:"status,omitempty"`
	EventType    string      `json:"event_type,omitempty"`
	URL          string      `json:"url,omitempty"`
}

// MagnitudeValue returns the reported magnitude, or 0 when the feed omitted
// it. This is the single place the absent-vs-zero decision lives: an absent
// magnitude fails any positive minimum-magnitude filter.
func (e Event) MagnitudeValue() float64 {
	if e.Magnitude == nil {
		return 0
	}
	return *e.Magnitude
}

// HasPlace reports whether the feed supplied a location description.
func (e Event) HasPlace() bool {
	return e.Place != ""
}
