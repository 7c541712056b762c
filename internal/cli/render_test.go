package cli

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loicseguin/velolog/internal/domain"
	"github.com/loicseguin/velolog/internal/i18n"
)

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "20.0", formatSpeed(20))
	assert.Equal(t, "12.5", formatSpeed(12.5))
	assert.Equal(t, "nan", formatSpeed(math.NaN()))
}

func TestRenderRidesTable(t *testing.T) {
	tr = i18n.None()

	out := renderRidesTable([]domain.Ride{
		{
			ID:        0,
			Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			Distance:  20,
			Duration:  1,
			Comment:   "morning loop",
			URL:       "http://www.mymap.com/1234",
		},
		{
			ID:        1,
			Timestamp: time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
			Distance:  15,
			Duration:  0,
		},
	})

	assert.Contains(t, out, "Distance")
	assert.Contains(t, out, "2024-01-01 10:00")
	assert.Contains(t, out, "20.0")
	assert.Contains(t, out, "morning loop")
	// zero-duration speed renders as nan
	assert.Contains(t, out, "nan")
}

func TestRenderRidesTable_elidesLongComments(t *testing.T) {
	tr = i18n.None()

	long := "a ride with a very long comment that keeps going and going"
	out := renderRidesTable([]domain.Ride{{
		Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Distance:  20,
		Duration:  1,
		Comment:   long,
	}})

	assert.NotContains(t, out, long)
	assert.Contains(t, out, long[:commentWidth-3]+"...")
}

func TestNoRidesMessage(t *testing.T) {
	tr = i18n.None()

	assert.Equal(t, "No rides for year(s): all", noRidesMessage(domain.AllYears()))
	assert.Equal(t, "No rides for year(s): 2023, 2024", noRidesMessage(domain.Years(2024, 2023)))
}

func TestYearFilter(t *testing.T) {
	t.Run("no args means current year", func(t *testing.T) {
		f, err := yearFilter(nil)
		require.NoError(t, err)
		assert.Equal(t, []int{time.Now().Year()}, f.List())
	})

	t.Run("all", func(t *testing.T) {
		f, err := yearFilter([]string{"all"})
		require.NoError(t, err)
		assert.True(t, f.All())
	})

	t.Run("explicit years", func(t *testing.T) {
		f, err := yearFilter([]string{"2023", "2024"})
		require.NoError(t, err)
		assert.Equal(t, []int{2023, 2024}, f.List())
	})

	t.Run("invalid year", func(t *testing.T) {
		_, err := yearFilter([]string{"soon"})
		assert.Error(t, err)
	})
}
