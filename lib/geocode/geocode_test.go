package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/photocat/photocat/fs"
	"github.com/photocat/photocat/lib/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type fakeProvider struct {
	results []maps.GeocodingResult
	err     error
	got     *maps.GeocodingRequest
}

func (f *fakeProvider) ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	f.got = r
	return f.results, f.err
}

func TestResolve(t *testing.T) {
	p := &fakeProvider{results: []maps.GeocodingResult{{
		AddressComponents: []maps.AddressComponent{
			{LongName: "7", Types: []string{"street_number"}},
			{LongName: "Prinsengracht", Types: []string{"route"}},
			{LongName: "Jordaan", Types: []string{"neighborhood", "political"}},
			{LongName: "Amsterdam", Types: []string{"locality", "political"}},
			{LongName: "Netherlands", ShortName: "NL", Types: []string{"country", "political"}},
		},
	}}}
	r := NewWithProvider(p)
	place, err := r.Resolve(context.Background(), Coordinate{Lat: 52.37, Lng: 4.88})
	require.NoError(t, err)
	assert.Equal(t, Place{
		Neighbourhood: "Jordaan",
		City:          "Amsterdam",
		Country:       "Netherlands",
		StreetName:    "Prinsengracht",
	}, place)
	assert.Equal(t, 52.37, p.got.LatLng.Lat)
	assert.Equal(t, 4.88, p.got.LatLng.Lng)
}

func TestResolveMissingFields(t *testing.T) {
	r := NewWithProvider(&fakeProvider{results: []maps.GeocodingResult{{
		AddressComponents: []maps.AddressComponent{
			{LongName: "Iceland", Types: []string{"country"}},
		},
	}}})
	place, err := r.Resolve(context.Background(), Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, Place{Country: "Iceland"}, place)

	r = NewWithProvider(&fakeProvider{})
	place, err = r.Resolve(context.Background(), Coordinate{})
	require.NoError(t, err)
	assert.Equal(t, Place{}, place)
}

func TestResolveProviderError(t *testing.T) {
	boom := errors.New("OVER_QUERY_LIMIT")
	r := NewWithProvider(&fakeProvider{err: boom})
	_, err := r.Resolve(context.Background(), Coordinate{Lat: 1, Lng: 2})
	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, boom)

	res := r.Stage(context.Background(), &Coordinate{Lat: 1, Lng: 2})
	assert.Equal(t, stage.Failed, res.State)
	assert.Equal(t, Place{}, res.ValueOr(Place{}))
}

func TestStageSkipped(t *testing.T) {
	var disabled *Resolver
	assert.Equal(t, stage.Skipped, disabled.Stage(context.Background(), &Coordinate{}).State)

	p := &fakeProvider{}
	r := NewWithProvider(p)
	assert.Equal(t, stage.Skipped, r.Stage(context.Background(), nil).State)
	assert.Nil(t, p.got, "provider must not be called without a coordinate")
}

func TestNewFromConfig(t *testing.T) {
	ctx, ci := fs.AddConfig(context.Background())
	r, err := NewFromConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, r)

	ci.GeocodeAPIKey = "AIzaFakeKeyForTesting"
	r, err = NewFromConfig(ctx)
	require.NoError(t, err)
	assert.NotNil(t, r)
}
