// Command feedcheck performs one-shot integrity checks against a USGS
// GeoJSON feed: decode health, event ordering, ID uniqueness, coordinate
// sanity, and a severity distribution summary.
//
// Usage:
//
//	go run ./cmd/feedcheck
//	go run ./cmd/feedcheck -feed-url https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_hour.geojson
//	go run ./cmd/feedcheck -file data/mock/feed_all_day.geojson
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/quake-data-dashboard/internal/adapter/usgs"
	"github.com/couchcryptid/quake-data-dashboard/internal/config"
	"github.com/couchcryptid/quake-data-dashboard/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	feedURL := flag.String("feed-url", config.DefaultFeedURL, "USGS GeoJSON feed URL")
	file := flag.String("file", "", "validate a local GeoJSON file instead of fetching")
	timeout := flag.Duration("timeout", 10*time.Second, "feed request timeout")
	retries := flag.Int("retries", 2, "transport retry count")
	flag.Parse()

	if code := run(*feedURL, *file, *timeout, *retries); code != 0 {
		os.Exit(code)
	}
}

func run(feedURL, file string, timeout time.Duration, retries int) int {
	fmt.Println("=== USGS Feed Integrity Check ===")
	fmt.Println()

	events, err := loadEvents(feedURL, file, timeout, retries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkOrdering(events),
		checkIDs(events),
		checkCoordinates(events),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	printSummary(events)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll checks passed.")
		return 0
	}
	fmt.Println("\nFeed check FAILED.")
	return 1
}

func loadEvents(feedURL, file string, timeout time.Duration, retries int) ([]domain.Event, error) {
	if file != "" {
		payload, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return usgs.DecodeFeed(payload)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := usgs.NewClient(feedURL, timeout, retries, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout+time.Duration(retries+1)*timeout)
	defer cancel()
	return client.FetchEvents(ctx)
}

// ── Phase 1: Ordering ──
// The decoder sorts descending by time; any inversion means the sort or the
// feed timestamps are broken.

func checkOrdering(events []domain.Event) *phase {
	p := &phase{name: "Phase 1: Ordering (newest first)"}
	for i := 1; i < len(events); i++ {
		if events[i].Time.After(events[i-1].Time) {
			p.errorf("event %d (%s) at %s is newer than its predecessor %s",
				i, events[i].ID, events[i].Time.Format(time.RFC3339), events[i-1].Time.Format(time.RFC3339))
		}
	}
	return p
}

// ── Phase 2: Identity ──

func checkIDs(events []domain.Event) *phase {
	p := &phase{name: "Phase 2: Identity (non-empty, unique IDs)"}
	seen := make(map[string]int, len(events))
	for i := range events {
		id := events[i].ID
		if id == "" {
			p.errorf("event %d has an empty ID", i)
			continue
		}
		if first, dup := seen[id]; dup {
			p.errorf("event %d duplicates ID %q first seen at %d", i, id, first)
			continue
		}
		seen[id] = i
	}
	return p
}

// ── Phase 3: Coordinates ──

func checkCoordinates(events []domain.Event) *phase {
	p := &phase{name: "Phase 3: Coordinate sanity"}
	for i := range events {
		e := events[i]
		if e.Lat < -90 || e.Lat > 90 {
			p.errorf("event %s: latitude %g out of [-90, 90]", e.ID, e.Lat)
		}
		if e.Lon < -180 || e.Lon > 180 {
			p.errorf("event %s: longitude %g out of [-180, 180]", e.ID, e.Lon)
		}
		if e.Time.IsZero() {
			p.errorf("event %s: zero time", e.ID)
		}
	}
	return p
}

func printSummary(events []domain.Event) {
	counts := map[domain.Severity]int{}
	missingMag := 0
	for i := range events {
		if events[i].Magnitude == nil {
			missingMag++
		}
		counts[domain.SeverityFor(events[i].MagnitudeValue())]++
	}

	fmt.Printf("Events: %d (%d without magnitude)\n", len(events), missingMag)
	for _, sev := range []domain.Severity{
		domain.SeverityMajor,
		domain.SeverityStrong,
		domain.SeverityModerate,
		domain.SeverityMinor,
		domain.SeverityMicro,
	} {
		fmt.Printf("  %-10s %d\n", sev, counts[sev])
	}
}
