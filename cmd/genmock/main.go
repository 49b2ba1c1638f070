// Command genmock generates a deterministic mock USGS GeoJSON feed fixture
// plus its decoded-event JSON counterpart. It runs the synthetic feed
// through the actual decoder so the events fixture matches real decode
// behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -feed-out data/mock/feed_all_day.geojson \
//	  -events-out data/mock/events_all_day.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/quake-data-dashboard/internal/adapter/usgs"
)

// baseTime anchors every fixture timestamp so regenerated fixtures are
// byte-identical.
var baseTime = time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

type mockQuake struct {
	id        string
	mag       *float64
	place     string
	ageBefore time.Duration // subtracted from baseTime
	lon, lat  float64
	depthKm   float64
	tsunami   int
	eventType string
}

func f(v float64) *float64 { return &v }

var quakes = []mockQuake{
	{id: "us7000major1", mag: f(7.2), place: "120 km SSE of Sand Point, Alaska", ageBefore: 30 * time.Minute, lon: -160.1, lat: 54.3, depthKm: 32.5, tsunami: 1, eventType: "earthquake"},
	{id: "us7000strng1", mag: f(5.8), place: "Near the coast of central Chile", ageBefore: 2 * time.Hour, lon: -71.6, lat: -33.0, depthKm: 41.0, eventType: "earthquake"},
	{id: "us7000modr1", mag: f(4.4), place: "35 km W of Petrolia, CA", ageBefore: 5 * time.Hour, lon: -124.5, lat: 40.3, depthKm: 19.2, eventType: "earthquake"},
	{id: "nc73900001", mag: f(2.7), place: "8 km NW of The Geysers, CA", ageBefore: 9 * time.Hour, lon: -122.8, lat: 38.8, depthKm: 1.9, eventType: "earthquake"},
	{id: "ak0249micro1", mag: f(1.1), place: "42 km E of Cantwell, Alaska", ageBefore: 14 * time.Hour, lon: -148.3, lat: 63.4, depthKm: 66.1, eventType: "earthquake"},
	{id: "nn00880001", place: "15 km SSW of Goldfield, Nevada", ageBefore: 18 * time.Hour, lon: -117.3, lat: 37.6, depthKm: 7.4, eventType: "earthquake"},
	{id: "uw62000001", mag: f(1.6), place: "", ageBefore: 22 * time.Hour, lon: -122.2, lat: 46.2, depthKm: 3.0, eventType: "explosion"},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	feedOut := flag.String("feed-out", "", "output path for the GeoJSON feed fixture")
	eventsOut := flag.String("events-out", "", "output path for the decoded events JSON fixture")
	flag.Parse()

	if *feedOut == "" || *eventsOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -feed-out, -events-out")
	}

	feed := buildFeed()
	payload, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}

	events, err := usgs.DecodeFeed(payload)
	if err != nil {
		return fmt.Errorf("decode generated feed: %w", err)
	}

	if err := writeFile(*feedOut, payload); err != nil {
		return fmt.Errorf("writing feed fixture: %w", err)
	}
	log.Printf("wrote feed fixture: %s (%d features)", *feedOut, len(quakes))

	eventsPayload, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	if err := writeFile(*eventsOut, eventsPayload); err != nil {
		return fmt.Errorf("writing events fixture: %w", err)
	}
	log.Printf("wrote events fixture: %s (%d events)", *eventsOut, len(events))

	return nil
}

// buildFeed assembles a GeoJSON feature collection matching the USGS summary
// feed shape.
func buildFeed() map[string]any {
	features := make([]map[string]any, 0, len(quakes))
	for _, q := range quakes {
		eventTime := baseTime.Add(-q.ageBefore)
		props := map[string]any{
			"mag":     q.mag,
			"place":   q.place,
			"time":    eventTime.UnixMilli(),
			"updated": eventTime.Add(10 * time.Minute).UnixMilli(),
			"tsunami": q.tsunami,
			"magType": "ml",
			"net":     q.id[:2],
			"status":  "reviewed",
			"type":    q.eventType,
			"url":     "https://earthquake.usgs.gov/earthquakes/eventpage/" + q.id,
		}
		features = append(features, map[string]any{
			"type":       "Feature",
			"id":         q.id,
			"properties": props,
			"geometry": map[string]any{
				"type":        "Point",
				"coordinates": []float64{q.lon, q.lat, q.depthKm},
			},
		})
	}

	return map[string]any{
		"type": "FeatureCollection",
		"metadata": map[string]any{
			"generated": baseTime.UnixMilli(),
			"title":     "Mock USGS All Earthquakes, Past Day",
			"count":     len(features),
		},
		"features": features,
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
