// Package weather simulates marine weather telemetry. There is no real
// weather API behind it; every snapshot is a random draw biased by the
// time of day.
package weather

import (
	"math/rand/v2"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/haeyanglab/searep/internal/marine"
)

// Draw ranges and the evening rain bias. Evening and night hours upgrade the
// condition to RAINY with probability 0.3.
const (
	windMin, windMax = 2.0, 17.0  // m/s
	waveMin, waveMax = 0.3, 2.8   // meters
	tempMin, tempMax = 18.0, 30.0 // °C

	nightRainChance = 0.3
)

var conditions = []marine.WeatherCondition{
	marine.WeatherClear,
	marine.WeatherCloudy,
	marine.WeatherRainy,
}

// Simulator produces weather snapshots. The clock and random source are
// injected so tests can freeze time and seed the draws.
type Simulator struct {
	clock clockwork.Clock

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator returns a simulator drawing from rng at times read from clock.
func NewSimulator(clock clockwork.Clock, rng *rand.Rand) *Simulator {
	return &Simulator{clock: clock, rng: rng}
}

// Snapshot draws a fresh weather record for the current hour.
func (s *Simulator) Snapshot() marine.WeatherSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	hour := s.clock.Now().Hour()
	condition := conditions[s.rng.IntN(len(conditions))]

	// Evenings and nights skew wetter.
	if (hour >= 18 || hour <= 6) && s.rng.Float64() < nightRainChance {
		condition = marine.WeatherRainy
	}

	return marine.WeatherSnapshot{
		Condition:   condition,
		WindSpeed:   windMin + s.rng.Float64()*(windMax-windMin),
		WaveHeight:  waveMin + s.rng.Float64()*(waveMax-waveMin),
		Visibility:  visibilityFor(condition),
		Temperature: tempMin + s.rng.Float64()*(tempMax-tempMin),
	}
}

func visibilityFor(c marine.WeatherCondition) marine.Visibility {
	switch c {
	case marine.WeatherClear:
		return marine.VisibilityGood
	case marine.WeatherCloudy:
		return marine.VisibilityModerate
	default:
		return marine.VisibilityPoor
	}
}
