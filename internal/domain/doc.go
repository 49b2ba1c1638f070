// Package domain models seismic events from the USGS earthquake feed.
//
// # Data Source
//
// Events come from the USGS real-time GeoJSON summary feeds, e.g.
// https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson.
// Each fetch is a complete snapshot of "events in the last 24 hours": the
// collection is replaced wholesale on every successful fetch, never merged
// or mutated in place.
//
// # Feed Conventions
//
// Coordinates:
//
//	GeoJSON order is [longitude, latitude, depth]. Longitude and latitude
//	are decimal degrees; depth is kilometers and may be negative for events
//	referenced above sea level.
//
// Times:
//
//	Integer milliseconds since the Unix epoch, UTC. The "updated" revision
//	timestamp is optional.
//
// Magnitude:
//
//	A float that may be absent entirely (null in the feed). Absent
//	magnitudes are treated as 0 for filtering, so they fail any positive
//	minimum-magnitude threshold. The same value drives the five-tier
//	severity classification:
//
//	  >= 7.0  major
//	  >= 5.5  strong
//	  >= 4.0  moderate
//	  >= 2.5  minor
//	  else    micro
//
// Place:
//
//	Free-text human-readable description ("22 km SE of Honaunau-Napoopoo,
//	Hawaii"), may be absent. The free-text location filter is a
//	case-insensitive substring match against this field; an event with no
//	place never matches a non-empty search term.
package domain
