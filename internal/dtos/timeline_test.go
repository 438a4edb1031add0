package dtos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"events.ourphilly.org/internal/dtos"
	"events.ourphilly.org/internal/models"
	"events.ourphilly.org/internal/timeutil"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestFilterDtoValidate(t *testing.T) {
	valid := dtos.FilterDto{
		Start: "2025-06-06",
		End:   "2025-06-08",
		Match: "all",
	}
	ok, errs := valid.Validate()
	assert.True(t, ok)
	assert.Empty(t, errs)

	invalid := dtos.FilterDto{
		Start:  "6/6/2025",
		Match:  "some",
		MinLat: floatPtr(39.8),
	}
	ok, errs = invalid.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "start")
	assert.Contains(t, errs, "match")
	assert.Contains(t, errs, "bounds")
}

func TestFilterDtoToQuery(t *testing.T) {
	loc := timeutil.LoadLocation("America/New_York")

	dto := dtos.FilterDto{
		Start:  "2025-06-06",
		End:    "2025-06-08",
		Tags:   []string{"music", "free"},
		Match:  "all",
		AreaID: "a1",
		Search: "jazz",
		MinLat: floatPtr(39.8),
		MaxLat: floatPtr(40.1),
		MinLng: floatPtr(-75.3),
		MaxLng: floatPtr(-74.9),
	}

	q := dto.ToQuery(loc)

	require.NotNil(t, q.DateRange)
	assert.Equal(t, "2025-06-06", timeutil.ISODate(q.DateRange.Start))
	assert.Equal(t, "2025-06-08", timeutil.ISODate(q.DateRange.End))
	assert.Equal(t, models.MatchAll, q.TagMatch)
	assert.Equal(t, []string{"music", "free"}, q.TagSlugs)
	assert.Equal(t, "a1", q.AreaID)
	assert.Equal(t, "jazz", q.SearchText)
	require.NotNil(t, q.Bounds)
	assert.True(t, q.Bounds.Contains(40.0, -75.0))
}

func TestFilterDtoToQueryEndBeforeStartClamps(t *testing.T) {
	loc := timeutil.LoadLocation("America/New_York")

	dto := dtos.FilterDto{Start: "2025-06-08", End: "2025-06-06"}
	q := dto.ToQuery(loc)

	require.NotNil(t, q.DateRange)
	assert.Equal(t, "2025-06-08", timeutil.ISODate(q.DateRange.Start))
	assert.Equal(t, "2025-06-08", timeutil.ISODate(q.DateRange.End))
}

func TestSaveViewDtoValidate(t *testing.T) {
	dto := dtos.SaveViewDto{}
	ok, errs := dto.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "name")

	dto = dtos.SaveViewDto{
		Name:   "Free music",
		Filter: dtos.FilterDto{Tags: []string{"music"}},
	}
	ok, _ = dto.Validate()
	assert.True(t, ok)
}

func TestFilterDtoToQueryEmpty(t *testing.T) {
	loc := time.UTC
	q := dtos.FilterDto{}.ToQuery(loc)

	assert.Nil(t, q.DateRange)
	assert.Nil(t, q.Bounds)
	assert.Empty(t, q.TagSlugs)
}
