package dataset

import (
	"fmt"
	"log"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// TripRecord is one labeled training example. Records are immutable once
// generated.
type TripRecord struct {
	BusNumber    string
	Destination  string
	DayOfWeek    string
	Hour         int
	StopSequence int

	// ArrivalMinutes is the label, clamped to [1,20] and rounded to two
	// decimal places.
	ArrivalMinutes float64
}

const noiseSigma = 0.5

// Generator produces seeded synthetic trip tables.
type Generator struct {
	rng   *rand.Rand
	noise distuv.Normal
}

// NewGenerator returns a generator whose draws are fully determined by seed.
func NewGenerator(seed uint64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		rng: rng,
		noise: distuv.Normal{
			Mu:    0,
			Sigma: noiseSigma,
			Src:   rng,
		},
	}
}

// Generate returns n labeled records. The sequence of draws depends only on
// the generator's seed, so two generators with the same seed produce
// identical tables.
func (g *Generator) Generate(n int) ([]TripRecord, error) {
	if n <= 0 {
		return nil, fmt.Errorf("dataset: record count must be positive, got %d", n)
	}
	records := make([]TripRecord, 0, n)
	for i := 0; i < n; i++ {
		r := TripRecord{
			BusNumber:    BusNumbers[g.rng.Intn(len(BusNumbers))],
			Destination:  Destinations[g.rng.Intn(len(Destinations))],
			DayOfWeek:    DaysOfWeek[g.rng.Intn(len(DaysOfWeek))],
			Hour:         g.rng.Intn(MaxHour + 1),
			StopSequence: MinStopSequence + g.rng.Intn(MaxStopSequence-MinStopSequence+1),
		}
		r.ArrivalMinutes = g.label(r)
		records = append(records, r)
	}
	return records, nil
}

// label applies the additive time model plus noise, clamped and rounded.
func (g *Generator) label(r TripRecord) float64 {
	total := destinationBase(r.Destination) +
		stopDelay(r.StopSequence) +
		timeOfDayDelay(r.Hour) +
		dayFactor(r.DayOfWeek) +
		busDelay(r.BusNumber) +
		g.noise.Rand()
	return round2(clamp(total, MinArrivalMinutes, MaxArrivalMinutes))
}

func destinationBase(destination string) float64 {
	if base, ok := destinationBaseMinutes[destination]; ok {
		return base
	}
	// Unreachable for the declared vocabulary; a hit here means the
	// vocabulary and the lookup table have diverged.
	log.Printf("dataset: destination %q missing from base-time table, using default %.1f", destination, defaultDestinationBase)
	return defaultDestinationBase
}

func busDelay(busNumber string) float64 {
	if d, ok := busDelayMinutes[busNumber]; ok {
		return d
	}
	log.Printf("dataset: bus %q missing from delay table, using default %.1f", busNumber, defaultBusDelay)
	return defaultBusDelay
}

// stopDelay grows linearly with position along the route.
func stopDelay(stopSequence int) float64 {
	return float64(stopSequence) * 0.5
}

// timeOfDayDelay maps the hour into four contiguous traffic bands covering
// all 24 hours.
func timeOfDayDelay(hour int) float64 {
	switch {
	case hour >= 6 && hour < 12: // morning rush
		return 1.5
	case hour >= 12 && hour < 18: // afternoon
		return 0.5
	case hour >= 18 && hour < 21: // evening rush
		return 2.0
	default: // night and early morning
		return 1.0
	}
}

func dayFactor(day string) float64 {
	if day == "Saturday" || day == "Sunday" {
		return 1.0
	}
	return 0.5
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
