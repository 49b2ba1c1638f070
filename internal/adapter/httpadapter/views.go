package httpadapter

import (
	"time"

	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
)

// eventView is the API shape of one event: the raw feed fields plus the
// derived display fields the dashboard renders directly.
type eventView struct {
	domain.Event
	Display displayView `json:"display"`
}

type displayView struct {
	Severity      domain.Severity `json:"severity"`
	SeverityLabel string          `json:"severity_label"`
	Color         string          `json:"color"`
	Coordinates   string          `json:"coordinates"`
	Depth         string          `json:"depth"`
	RelativeAge   string          `json:"relative_age"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
}

func newEventView(e domain.Event) eventView {
	sev := domain.SeverityFor(e.MagnitudeValue())
	return eventView{
		Event: e,
		Display: displayView{
			Severity:      sev,
			SeverityLabel: sev.Label(),
			Color:         sev.Color(),
			Coordinates:   domain.FormatCoordinates(e.Lon, e.Lat),
			Depth:         domain.FormatDepth(e.DepthKm),
			RelativeAge:   domain.RelativeAge(e.Time),
			Date:          domain.FormatAbsoluteDate(e.Time),
			Time:          domain.FormatAbsoluteTime(e.Time),
		},
	}
}

type listResponse struct {
	Events      []eventView `json:"events"`
	Count       int         `json:"count"`
	LastUpdated time.Time   `json:"last_updated"`
	Stale       bool        `json:"stale"`
	LastError   string      `json:"last_error,omitempty"`
}
