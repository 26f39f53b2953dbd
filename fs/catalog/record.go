package catalog

import (
	"math"
	"strings"

	"github.com/photocat/photocat/fs"
)

// Record is the flattened view of a published asset read by the
// gallery renderer
type Record struct {
	ID            string  `json:"id"`
	URL           string  `json:"url"`
	Created       Millis  `json:"created"`
	Lat           string  `json:"lat"`
	Lng           string  `json:"lng"`
	Location      string  `json:"location"`
	Date          Millis  `json:"date"`
	Neighbourhood string  `json:"neighbourhood"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	StreetName    string  `json:"streetName"`
	DominantColor string  `json:"dominantColor"`
	AspectRatio   float64 `json:"aspectRatio"`
}

// AspectRatio returns width/height rounded to 3 decimal places, or 0
// if height is unknown
func AspectRatio(width, height int) float64 {
	if height <= 0 {
		return 0
	}
	return math.Round(float64(width)/float64(height)*1000) / 1000
}

// Flatten turns a listed asset into a Record. folder is stripped from
// the front of the identity to make the id.
func Flatten(a fs.Asset, folder string) Record {
	bag := a.Context // a nil bag reads as all empty
	return Record{
		ID:            strings.TrimPrefix(a.Identity, prefix(folder)),
		URL:           a.URL,
		Created:       ParseMillis(bag[fs.ContextCreated]),
		Lat:           bag[fs.ContextLat],
		Lng:           bag[fs.ContextLng],
		Location:      bag[fs.ContextLocation],
		Date:          ParseMillis(bag[fs.ContextDate]),
		Neighbourhood: bag[fs.ContextNeighbourhood],
		City:          bag[fs.ContextCity],
		Country:       bag[fs.ContextCountry],
		StreetName:    bag[fs.ContextStreetName],
		DominantColor: bag[fs.ContextDominantColor],
		AspectRatio:   AspectRatio(a.Width, a.Height),
	}
}

func prefix(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return ""
	}
	return folder + "/"
}
