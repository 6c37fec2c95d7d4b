package jsonfield

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, raw := range []string{"", "null", "[]", `"x"`, "42", "{broken"} {
		_, ok := Parse([]byte(raw))
		assert.False(t, ok, raw)
	}
	o, ok := Parse([]byte(` {"a": 1} `))
	require.True(t, ok)
	assert.Len(t, o, 1)
}

func TestScalars(t *testing.T) {
	o, ok := Parse([]byte(`{
		"title": "Accueil",
		"count": 42,
		"flag": true,
		"quoted": "true",
		"one": 1,
		"nested": {"a": 1},
		"nothing": null
	}`))
	require.True(t, ok)

	assert.Equal(t, "Accueil", o.String("title"))
	assert.Equal(t, "42", o.String("count"))
	assert.Equal(t, "", o.String("flag"))
	assert.Equal(t, "", o.String("nested"))
	assert.Equal(t, "", o.String("nothing"))
	assert.Equal(t, "", o.String("missing"))

	assert.True(t, o.Bool("flag"))
	assert.True(t, o.Bool("quoted"))
	assert.True(t, o.Bool("one"))
	assert.False(t, o.Bool("title"))
	assert.False(t, o.Bool("missing"))
}

func TestTime(t *testing.T) {
	o, ok := Parse([]byte(`{
		"full": "2025-01-15T10:30:00Z",
		"offset": "2025-01-15T10:30:00+02:00",
		"local": "2025-01-15T10:30:00",
		"date": "2025-01-15",
		"junk": "mid-january",
		"number": 20250115
	}`))
	require.True(t, ok)

	require.NotNil(t, o.Time("full"))
	assert.Equal(t, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), o.Time("full").UTC())
	require.NotNil(t, o.Time("offset"))
	assert.Equal(t, time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC), o.Time("offset").UTC())
	require.NotNil(t, o.Time("local"))
	require.NotNil(t, o.Time("date"))
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), *o.Time("date"))

	assert.Nil(t, o.Time("junk"))
	assert.Nil(t, o.Time("number"))
	assert.Nil(t, o.Time("missing"))
}

func TestStrings(t *testing.T) {
	o, ok := Parse([]byte(`{"kw": ["seo", 7, true, null, {"a": 1}, "site"], "notArray": "seo"}`))
	require.True(t, ok)

	assert.Equal(t, []string{"seo", "7", "site"}, o.Strings("kw"))
	assert.Nil(t, o.Strings("notArray"))
	assert.Nil(t, o.Strings("missing"))
}

func TestDecode(t *testing.T) {
	type point struct {
		X int `json:"x"`
	}
	o, ok := Parse([]byte(`{"p": {"x": 3}, "bad": {"x": "three"}, "list": [1, 2]}`))
	require.True(t, ok)

	assert.Equal(t, &point{X: 3}, Decode[*point](o, "p"))
	assert.Nil(t, Decode[*point](o, "bad"))
	assert.Nil(t, Decode[*point](o, "missing"))
	assert.Equal(t, []int{1, 2}, Decode[[]int](o, "list"))
	assert.Nil(t, Decode[[]int](o, "p"))
}
