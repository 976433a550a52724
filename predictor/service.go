package predictor

import (
	"fmt"
	"math"
	"slices"

	"github.com/theoremus-urban-solutions/bus-arrival/artifacts"
	"github.com/theoremus-urban-solutions/bus-arrival/dataset"
)

// Request is one raw prediction input as it arrives over the wire.
type Request struct {
	BusNumber    string `json:"bus_number"`
	Destination  string `json:"destination"`
	DayOfWeek    string `json:"day_of_week"`
	TimePeriod   int    `json:"time_period"`
	StopSequence int    `json:"stop_sequence"`
}

// Service answers predictions against one immutable artifact set. It is
// safe for concurrent use; Predict has no side effects.
type Service struct {
	set *artifacts.Set
}

// NewService wraps a loaded artifact set. The set must be complete; a
// partial set means training and serving would disagree on the feature
// space.
func NewService(set *artifacts.Set) (*Service, error) {
	if !set.Complete() {
		return nil, fmt.Errorf("predictor: artifact set is incomplete")
	}
	return &Service{set: set}, nil
}

// Validate checks every raw field against its declared vocabulary or range.
// It runs before any transform, so transform failures downstream indicate an
// artifact/vocabulary mismatch rather than bad input.
func (s *Service) Validate(req Request) error {
	if !slices.Contains(dataset.BusNumbers, req.BusNumber) {
		return invalidCategory("bus_number", "bus number", "buses", dataset.BusNumbers)
	}
	if !slices.Contains(dataset.Destinations, req.Destination) {
		return invalidCategory("destination", "destination", "destinations", dataset.Destinations)
	}
	if !slices.Contains(dataset.DaysOfWeek, req.DayOfWeek) {
		return invalidCategory("day_of_week", "day", "days", dataset.DaysOfWeek)
	}
	if req.TimePeriod < dataset.MinHour || req.TimePeriod > dataset.MaxHour {
		return &ValidationError{
			Field:   "time_period",
			Message: fmt.Sprintf("Invalid time period. Time must be hour (%d-%d)", dataset.MinHour, dataset.MaxHour),
		}
	}
	if req.StopSequence < dataset.MinStopSequence || req.StopSequence > dataset.MaxStopSequence {
		return &ValidationError{
			Field:   "stop_sequence",
			Message: fmt.Sprintf("Invalid stop sequence. Enter between %d and %d", dataset.MinStopSequence, dataset.MaxStopSequence),
		}
	}
	return nil
}

// Predict validates req, replays the persisted encoder and scaler
// transforms, and evaluates the model. The result is rounded to two decimal
// places. Two calls with identical input and unchanged artifacts return
// identical output.
func (s *Service) Predict(req Request) (float64, error) {
	if err := s.Validate(req); err != nil {
		return 0, err
	}

	// Validation already passed, so a transform failure here is a
	// vocabulary desynchronization between the request layer and the
	// persisted tables.
	bus, err := s.set.BusEncoder.Transform(req.BusNumber)
	if err != nil {
		return 0, err
	}
	dest, err := s.set.DestinationEncoder.Transform(req.Destination)
	if err != nil {
		return 0, err
	}
	day, err := s.set.DayEncoder.Transform(req.DayOfWeek)
	if err != nil {
		return 0, err
	}

	row := []float64{
		float64(bus),
		float64(dest),
		float64(day),
		float64(req.TimePeriod),
		float64(req.StopSequence),
	}
	scaled := s.set.Scaler.Transform(row)
	predicted := s.set.Model.Predict(scaled)
	return math.Round(predicted*100) / 100, nil
}
