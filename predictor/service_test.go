package predictor

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/bus-arrival/artifacts"
	"github.com/theoremus-urban-solutions/bus-arrival/dataset"
	"github.com/theoremus-urban-solutions/bus-arrival/feature"
	"github.com/theoremus-urban-solutions/bus-arrival/model"
	"github.com/theoremus-urban-solutions/bus-arrival/training"
)

func trainedService(t *testing.T) *Service {
	t.Helper()
	trainer := training.Trainer{
		Records:      300,
		Seed:         42,
		Alpha:        1.0,
		ArtifactPath: filepath.Join(t.TempDir(), "artifacts.gob"),
	}
	report, err := trainer.Run()
	require.NoError(t, err)
	svc, err := NewService(report.Set)
	require.NoError(t, err)
	return svc
}

func validRequest() Request {
	return Request{
		BusNumber:    "BUS001",
		Destination:  "Nagercoil",
		DayOfWeek:    "Monday",
		TimePeriod:   14,
		StopSequence: 3,
	}
}

func TestPredictValidInput(t *testing.T) {
	svc := trainedService(t)

	minutes, err := svc.Predict(validRequest())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, minutes, 1.0)
	assert.LessOrEqual(t, minutes, 20.0)

	// Rounded to two decimals.
	scaled := minutes * 100
	assert.InDelta(t, math.Round(scaled), scaled, 1e-9)
}

func TestPredictPurity(t *testing.T) {
	svc := trainedService(t)
	req := validRequest()

	first, err := svc.Predict(req)
	require.NoError(t, err)
	second, err := svc.Predict(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPredictValidationFailures(t *testing.T) {
	svc := trainedService(t)

	tests := []struct {
		name      string
		mutate    func(*Request)
		wantField string
		contains  []string
	}{
		{
			name:      "unknown bus",
			mutate:    func(r *Request) { r.BusNumber = "BUS009" },
			wantField: "bus_number",
			contains:  []string{"BUS001", "BUS008"},
		},
		{
			name:      "unknown destination",
			mutate:    func(r *Request) { r.Destination = "Chennai" },
			wantField: "destination",
			contains:  []string{"Nagercoil", "Suchindram"},
		},
		{
			name:      "unknown day",
			mutate:    func(r *Request) { r.DayOfWeek = "Funday" },
			wantField: "day_of_week",
			contains:  []string{"Monday", "Sunday"},
		},
		{
			name:      "hour too large",
			mutate:    func(r *Request) { r.TimePeriod = 24 },
			wantField: "time_period",
			contains:  []string{"0-23"},
		},
		{
			name:      "hour negative",
			mutate:    func(r *Request) { r.TimePeriod = -1 },
			wantField: "time_period",
			contains:  []string{"0-23"},
		},
		{
			name:      "stop too small",
			mutate:    func(r *Request) { r.StopSequence = 0 },
			wantField: "stop_sequence",
			contains:  []string{"between 1 and 7"},
		},
		{
			name:      "stop too large",
			mutate:    func(r *Request) { r.StopSequence = 8 },
			wantField: "stop_sequence",
			contains:  []string{"between 1 and 7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Predict(req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			for _, s := range tt.contains {
				assert.Contains(t, verr.Message, s)
			}
		})
	}
}

func TestPredictAllVocabularyCombinationsStayBounded(t *testing.T) {
	svc := trainedService(t)
	req := validRequest()
	for _, bus := range []string{"BUS003", "BUS006"} {
		for _, dest := range []string{"Thuckalay", "Nagercoil"} {
			for _, hour := range []int{0, 7, 13, 19} {
				req.BusNumber = bus
				req.Destination = dest
				req.TimePeriod = hour
				minutes, err := svc.Predict(req)
				require.NoError(t, err)
				assert.Greater(t, minutes, 0.0, "%s %s %d", bus, dest, hour)
				assert.Less(t, minutes, 25.0, "%s %s %d", bus, dest, hour)
			}
		}
	}
}

func TestNewServiceRejectsIncompleteSet(t *testing.T) {
	_, err := NewService(&artifacts.Set{})
	assert.Error(t, err)
}

// A request that passes validation but misses a persisted table is a
// desynchronization fault, not a user error, and must surface as
// UnknownCategoryError rather than ValidationError.
func TestPredictVocabularyDesyncIsNotAValidationError(t *testing.T) {
	bus, err := feature.FitEncoder([]string{"BUS001", "BUS002"}) // BUS003 missing
	require.NoError(t, err)
	dest, err := feature.FitEncoder(dataset.Destinations)
	require.NoError(t, err)
	day, err := feature.FitEncoder(dataset.DaysOfWeek)
	require.NoError(t, err)
	scaler, err := feature.FitScaler([][]float64{
		{0, 1, 0, 5, 1},
		{1, 0, 1, 12, 4},
		{2, 3, 2, 20, 7},
	})
	require.NoError(t, err)
	svc, err := NewService(&artifacts.Set{
		BusEncoder:         bus,
		DestinationEncoder: dest,
		DayEncoder:         day,
		Scaler:             scaler,
		Model:              model.RidgeParams{Weights: []float64{1, 1, 1, 1, 1}, Intercept: 0},
	})
	require.NoError(t, err)

	req := validRequest()
	req.BusNumber = "BUS003" // valid per the declared vocabulary

	_, err = svc.Predict(req)
	var unknown *feature.UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
