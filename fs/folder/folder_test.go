package folder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		rel  string
		want Metadata
	}{
		{
			rel: "Amsterdam - Oud-West - Jacob van Lennepstraat, 18 February 2019/img.jpg",
			want: Metadata{
				Location: "Amsterdam - Oud-West - Jacob van Lennepstraat", HasLocation: true,
				Date: "18 February 2019", HasDate: true,
			},
		},
		{
			rel: "Beirut, Beirut - Younas Gebayli Street, 13 October 2017/img.jpg",
			want: Metadata{
				Location: "Beirut, Beirut - Younas Gebayli Street", HasLocation: true,
				Date: "13 October 2017", HasDate: true,
			},
		},
		{
			rel:  "25 March 2016/img.jpg",
			want: Metadata{Date: "25 March 2016", HasDate: true},
		},
		{
			rel:  "img.jpg",
			want: Metadata{},
		},
		{
			rel:  "./img.jpg",
			want: Metadata{},
		},
		{
			rel:  "/London, 1 May 2020/img.jpg",
			want: Metadata{Location: "London", HasLocation: true, Date: "1 May 2020", HasDate: true},
		},
		{
			rel:  "London, 1 May 2020/raw/edited/img.jpg",
			want: Metadata{Location: "London", HasLocation: true, Date: "1 May 2020", HasDate: true},
		},
		{
			rel:  "  Paris ,  2 June 2021  /img.jpg",
			want: Metadata{Location: "Paris", HasLocation: true, Date: "2 June 2021", HasDate: true},
		},
		{
			rel:  ", 3 July 2022/img.jpg",
			want: Metadata{Date: "3 July 2022", HasDate: true},
		},
	} {
		t.Run(test.rel, func(t *testing.T) {
			assert.Equal(t, test.want, Parse(test.rel))
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "", Name("img.jpg"))
	assert.Equal(t, "a", Name("a/img.jpg"))
	assert.Equal(t, "a", Name("a/b/c/img.jpg"))
	assert.Equal(t, "a", Name("/a/img.jpg"))
}

func TestParseNameNormalises(t *testing.T) {
	// as listed by macOS: u followed by a combining diaeresis
	decomposed := "Zu\u0308rich - Langstrasse, 3 May 2018"
	composed := "Z\u00fcrich - Langstrasse, 3 May 2018"
	require.NotEqual(t, composed, decomposed)
	m := ParseName(decomposed)
	assert.Equal(t, "Z\u00fcrich - Langstrasse", m.Location)
	assert.Equal(t, ParseName(composed), m)
}
