package timebucket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	// Datas do mesmo mês calendário caem no mesmo bucket,
	// independente do dia
	assert.Equal(t, "2025-03", Key(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-03", Key(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-04", Key(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSeries(t *testing.T) {
	series := NewSeries()
	series.Add(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 100)
	series.Add(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), 200)
	series.Add(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 50)

	assert.Equal(t, []string{"2025-01", "2025-03"}, series.SortedKeys())

	march := series["2025-03"]
	assert.Equal(t, float64(300), march.Sum)
	assert.Equal(t, 2, march.Count)
	assert.Equal(t, float64(150), march.Average())
}

func TestAccumulatorAverageEmptyBucket(t *testing.T) {
	assert.Equal(t, float64(0), Accumulator{}.Average())
}
