package exifgps

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/photocat/photocat/lib/dms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	lat := Format(52, 18, 41.04, "N")
	lng := Format(4, 48, 57.6, "E")
	assert.Equal(t, `52 deg 18' 41.04" N`, lat)
	assert.Equal(t, `4 deg 48' 57.60" E`, lng)

	gotLat, gotLng, err := dms.ParsePosition(lat + ", " + lng)
	require.NoError(t, err)
	assert.InDelta(t, 52.3114, gotLat, 1e-4)
	assert.InDelta(t, 4.816, gotLng, 1e-4)
}

func TestDecodeNotExif(t *testing.T) {
	_, err := Decode(strings.NewReader("definitely not a jpeg"))
	assert.Error(t, err)
}

func TestFileReaderMissing(t *testing.T) {
	_, err := FileReader{}.Position(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatCarriesFractions(t *testing.T) {
	for _, test := range []struct {
		name                      string
		degrees, minutes, seconds float64
		want                      string
		decimal                   float64
	}{
		{"dms", 52, 18, 41.04, `52 deg 18' 41.04" N`, 52.3114},
		{"decimal minutes", 52, 18.684, 0, `52 deg 18' 41.04" N`, 52.3114},
		{"decimal degrees", 52.3114, 0, 0, `52 deg 18' 41.04" N`, 52.3114},
		{"whole minutes", 52, 18, 0, `52 deg 18' 0.00" N`, 52.3},
		{"seconds round up", 4, 48, 59.999, `4 deg 49' 0.00" N`, 4.816667},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := Format(test.degrees, test.minutes, test.seconds, "N")
			assert.Equal(t, test.want, got)
			decimal, err := dms.Parse(got)
			require.NoError(t, err)
			assert.InDelta(t, test.decimal, decimal, 1e-5)
		})
	}
}

type rat struct{ num, den uint32 }

// gpsTIFF builds a little endian TIFF whose IFD0 points at a GPS IFD
// holding the given latitude and longitude rationals.
func gpsTIFF(latRef string, lat [3]rat, lngRef string, lng [3]rat) []byte {
	const (
		ifd0   = 8
		gpsIFD = ifd0 + 2 + 12 + 4
		latOff = gpsIFD + 2 + 4*12 + 4
		lngOff = latOff + 3*8
	)
	var buf bytes.Buffer
	le := binary.LittleEndian
	w := func(v interface{}) { _ = binary.Write(&buf, le, v) }
	entry := func(tag, typ uint16, count uint32, value []byte) {
		w(tag)
		w(typ)
		w(count)
		var v [4]byte
		copy(v[:], value)
		buf.Write(v[:])
	}
	u32 := func(v uint32) []byte {
		b := make([]byte, 4)
		le.PutUint32(b, v)
		return b
	}
	buf.WriteString("II")
	w(uint16(42))
	w(uint32(ifd0))

	w(uint16(1))
	entry(0x8825, 4, 1, u32(gpsIFD)) // GPSInfoIFDPointer, LONG
	w(uint32(0))

	w(uint16(4))
	entry(0x0001, 2, 2, []byte(latRef+"\x00"))
	entry(0x0002, 5, 3, u32(latOff))
	entry(0x0003, 2, 2, []byte(lngRef+"\x00"))
	entry(0x0004, 5, 3, u32(lngOff))
	w(uint32(0))

	for _, r := range append(lat[:], lng[:]...) {
		w(r.num)
		w(r.den)
	}
	return buf.Bytes()
}

func TestDecodeGPS(t *testing.T) {
	for _, test := range []struct {
		name     string
		latRef   string
		lat      [3]rat
		lngRef   string
		lng      [3]rat
		wantLat  float64
		wantLong float64
	}{
		{
			name:   "dms",
			latRef: "N", lat: [3]rat{{52, 1}, {18, 1}, {4104, 100}},
			lngRef: "E", lng: [3]rat{{4, 1}, {48, 1}, {5760, 100}},
			wantLat: 52.3114, wantLong: 4.816,
		},
		{
			name:   "decimal minutes",
			latRef: "N", lat: [3]rat{{52, 1}, {1868400, 100000}, {0, 1}},
			lngRef: "W", lng: [3]rat{{4, 1}, {4896, 100}, {0, 1}},
			wantLat: 52.3114, wantLong: -4.816,
		},
		{
			name:   "decimal degrees",
			latRef: "S", lat: [3]rat{{523114, 10000}, {0, 1}, {0, 1}},
			lngRef: "E", lng: [3]rat{{4816, 1000}, {0, 1}, {0, 1}},
			wantLat: -52.3114, wantLong: 4.816,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			pos, err := Decode(bytes.NewReader(gpsTIFF(test.latRef, test.lat, test.lngRef, test.lng)))
			require.NoError(t, err)
			lat, lng, err := dms.ParsePosition(pos)
			require.NoError(t, err, pos)
			assert.InDelta(t, test.wantLat, lat, 1e-5, pos)
			assert.InDelta(t, test.wantLong, lng, 1e-5, pos)
		})
	}
}

func TestDecodeNoGPS(t *testing.T) {
	var buf bytes.Buffer
	le := binary.LittleEndian
	buf.WriteString("II")
	_ = binary.Write(&buf, le, uint16(42))
	_ = binary.Write(&buf, le, uint32(8))
	_ = binary.Write(&buf, le, uint16(0))
	_ = binary.Write(&buf, le, uint32(0))
	_, err := Decode(bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrNoPosition)
}
