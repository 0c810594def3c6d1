// Package refdata holds the static reference data the analysis runs
// against: known locations, fishery restrictions, per-location emergency
// contacts, and safety-zone polygons. All of it is seeded at startup and
// read-only afterwards, so lookups need no locking.
package refdata

import (
	"github.com/haeyanglab/searep/internal/geo"
	"github.com/haeyanglab/searep/internal/marine"
)

// Proximity thresholds, in meters.
const (
	// LocationMatchRadius bounds nearest-location resolution of unnamed
	// coordinates.
	LocationMatchRadius = 10_000
	// ZoneRadius bounds the safety zones attached to a report.
	ZoneRadius = 10_000
	// AnalysisZoneRadius is the wider radius used by the quick analysis
	// endpoint.
	AnalysisZoneRadius = 15_000
)

// Provider serves lookups over the seeded reference data.
type Provider struct {
	locations []marine.Location
	zones     []marine.SafetyZone
	fishery   map[string]marine.FisheryInfo
	contacts  map[string]marine.EmergencyContacts
}

// NewProvider returns a provider over the built-in seed data.
func NewProvider() *Provider {
	return &Provider{
		locations: seedLocations,
		zones:     seedZones,
		fishery:   seedFishery,
		contacts:  seedContacts,
	}
}

// Locations returns all known locations in seed order.
func (p *Provider) Locations() []marine.Location {
	return p.locations
}

// Zones returns all known safety zones in seed order.
func (p *Provider) Zones() []marine.SafetyZone {
	return p.zones
}

// LocationByName returns the location with exactly that name.
func (p *Provider) LocationByName(name string) (marine.Location, bool) {
	for _, loc := range p.locations {
		if loc.Name == name {
			return loc, true
		}
	}
	return marine.Location{}, false
}

// Nearest resolves coordinates to the closest known location within
// LocationMatchRadius, or nil when nothing is close enough.
func (p *Provider) Nearest(point marine.Coordinates) *marine.Location {
	return geo.NearestLocation(point, p.locations, LocationMatchRadius)
}

// First returns the first seeded location. Callers use it as the fallback
// when proximity resolution misses.
func (p *Provider) First() marine.Location {
	return p.locations[0]
}

// ZonesNear returns the safety zones whose first vertex lies within radius
// meters of point, in seed order.
func (p *Provider) ZonesNear(point marine.Coordinates, radius float64) []marine.SafetyZone {
	var near []marine.SafetyZone
	for _, zone := range p.zones {
		if len(zone.Coordinates) == 0 {
			continue
		}
		if geo.Distance(zone.Coordinates[0], point) < radius {
			near = append(near, zone)
		}
	}
	return near
}

// FisheryFor returns the fishery restriction info for a location name.
func (p *Provider) FisheryFor(name string) (marine.FisheryInfo, bool) {
	info, ok := p.fishery[name]
	return info, ok
}

// ContactsFor returns the emergency contacts for a location name, falling
// back to the nationwide numbers when the location has no dedicated entry.
func (p *Provider) ContactsFor(name string) marine.EmergencyContacts {
	if c, ok := p.contacts[name]; ok {
		return c
	}
	return defaultContacts
}
