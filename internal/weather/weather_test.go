package weather

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/haeyanglab/searep/internal/marine"
)

func simulatorAt(hour int, seed uint64) *Simulator {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, hour, 0, 0, 0, time.UTC))
	return NewSimulator(clock, rand.New(rand.NewPCG(seed, seed)))
}

func TestSnapshotRanges(t *testing.T) {
	s := simulatorAt(12, 1)

	for i := 0; i < 500; i++ {
		snap := s.Snapshot()

		assert.GreaterOrEqual(t, snap.WindSpeed, windMin)
		assert.Less(t, snap.WindSpeed, windMax)
		assert.GreaterOrEqual(t, snap.WaveHeight, waveMin)
		assert.Less(t, snap.WaveHeight, waveMax)
		assert.GreaterOrEqual(t, snap.Temperature, tempMin)
		assert.Less(t, snap.Temperature, tempMax)
		assert.Contains(t, []marine.WeatherCondition{
			marine.WeatherClear, marine.WeatherCloudy, marine.WeatherRainy,
		}, snap.Condition)
	}
}

func TestSnapshotVisibilityDerivedFromCondition(t *testing.T) {
	s := simulatorAt(12, 2)

	for i := 0; i < 200; i++ {
		snap := s.Snapshot()
		switch snap.Condition {
		case marine.WeatherClear:
			assert.Equal(t, marine.VisibilityGood, snap.Visibility)
		case marine.WeatherCloudy:
			assert.Equal(t, marine.VisibilityModerate, snap.Visibility)
		default:
			assert.Equal(t, marine.VisibilityPoor, snap.Visibility)
		}
	}
}

func TestSnapshotNightBiasTowardRain(t *testing.T) {
	rainy := func(hour int) int {
		s := simulatorAt(hour, 7)
		n := 0
		for i := 0; i < 1000; i++ {
			if s.Snapshot().Condition == marine.WeatherRainy {
				n++
			}
		}
		return n
	}

	day := rainy(12)
	night := rainy(22)
	assert.Greater(t, night, day, "night draws should rain more often (day=%d night=%d)", day, night)
}
