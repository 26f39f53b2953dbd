// Package geocode resolves a coordinate into the names of the place it
// falls in.
package geocode

import (
	"context"
	"fmt"

	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/lib/stage"
	"googlemaps.github.io/maps"
)

// Coordinate in decimal degrees
type Coordinate struct {
	Lat float64
	Lng float64
}

// Place holds the resolved names. Fields the provider doesn't supply
// are empty.
type Place struct {
	Neighbourhood string
	City          string
	Country       string
	StreetName    string
}

// ProviderError is returned when the geocoding provider fails
type ProviderError struct {
	Coordinate Coordinate
	Err        error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("reverse geocode %.6f,%.6f failed: %v", e.Coordinate.Lat, e.Coordinate.Lng, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Provider is the part of the Google Maps client in use
type Provider interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// Resolver turns coordinates into places
type Resolver struct {
	provider Provider
}

// New makes a Resolver using the Google geocoding API with key
func New(key string) (*Resolver, error) {
	c, err := maps.NewClient(maps.WithAPIKey(key))
	if err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}
	return NewWithProvider(c), nil
}

// NewWithProvider makes a Resolver using p
func NewWithProvider(p Provider) *Resolver {
	return &Resolver{provider: p}
}

// NewFromConfig returns a Resolver if a key is configured in ctx or
// nil if geocoding is disabled
func NewFromConfig(ctx context.Context) (*Resolver, error) {
	ci := fs.GetConfig(ctx)
	if !ci.GeocodingEnabled() {
		return nil, nil
	}
	return New(ci.GeocodeAPIKey)
}

// address component types mapped onto Place fields
var componentFields = map[string]func(*Place) *string{
	"neighborhood": func(p *Place) *string { return &p.Neighbourhood },
	"locality":     func(p *Place) *string { return &p.City },
	"country":      func(p *Place) *string { return &p.Country },
	"route":        func(p *Place) *string { return &p.StreetName },
}

// Resolve looks up c with the provider
func (r *Resolver) Resolve(ctx context.Context, c Coordinate) (Place, error) {
	results, err := r.provider.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: c.Lat, Lng: c.Lng},
	})
	if err != nil {
		return Place{}, &ProviderError{Coordinate: c, Err: err}
	}
	var place Place
	if len(results) == 0 {
		return place, nil
	}
	for _, component := range results[0].AddressComponents {
		for _, t := range component.Types {
			field, ok := componentFields[t]
			if !ok {
				continue
			}
			if dst := field(&place); *dst == "" {
				*dst = component.LongName
			}
		}
	}
	return place, nil
}

// Stage runs Resolve as an enrichment step. It is Skipped when r is
// nil (no key configured) or there is no coordinate.
func (r *Resolver) Stage(ctx context.Context, c *Coordinate) stage.Result[Place] {
	if r == nil || c == nil {
		return stage.Skip[Place]()
	}
	return stage.From(r.Resolve(ctx, *c))
}
