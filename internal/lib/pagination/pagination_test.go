package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		defPer   int
		want     Params
	}{
		{
			name:     "default values",
			rawQuery: "",
			defPer:   20,
			want:     Params{Page: 1, PerPage: 20},
		},
		{
			name:     "explicit page and per_page",
			rawQuery: "page=3&per_page=5",
			defPer:   20,
			want:     Params{Page: 3, PerPage: 5},
		},
		{
			name:     "per_page zero means all",
			rawQuery: "per_page=0",
			defPer:   20,
			want:     Params{Page: 1, PerPage: 0},
		},
		{
			name:     "garbage falls back to defaults",
			rawQuery: "page=abc&per_page=-3",
			defPer:   5,
			want:     Params{Page: 1, PerPage: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.rawQuery)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, FromQuery(values, tt.defPer))
		})
	}
}

func TestParams_NumPages(t *testing.T) {
	assert.Equal(t, 5, Params{Page: 1, PerPage: 5}.NumPages(23))
	assert.Equal(t, 2, Params{Page: 1, PerPage: 20}.NumPages(40))
	assert.Equal(t, 1, Params{Page: 1, PerPage: 0}.NumPages(23))
	assert.Equal(t, 0, Params{Page: 1, PerPage: 5}.NumPages(0))
}

func TestParams_OffsetLimit(t *testing.T) {
	p := Params{Page: 3, PerPage: 5}
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 5, p.Limit(23))

	all := Params{Page: 1, PerPage: 0}
	assert.Equal(t, 0, all.Offset())
	assert.Equal(t, 23, all.Limit(23))
}
