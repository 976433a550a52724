package training

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/exp/rand"

	"github.com/theoremus-urban-solutions/bus-arrival/artifacts"
	"github.com/theoremus-urban-solutions/bus-arrival/dataset"
	"github.com/theoremus-urban-solutions/bus-arrival/feature"
	"github.com/theoremus-urban-solutions/bus-arrival/model"
)

// featureNames in the fixed order the model consumes them.
var featureNames = []string{"Bus_Number", "Destination", "Day_Of_Week", "Time_Period", "Stop_Sequence"}

// testFraction is the held-out share used for metrics reporting.
const testFraction = 0.2

// Trainer runs one end-to-end training pass.
type Trainer struct {
	Records      int
	Seed         uint64
	Alpha        float64
	ArtifactPath string
	// DatasetPath, when set, also exports the generated table as CSV.
	DatasetPath string
}

// Report carries the outcome of a run for the caller; the artifact set has
// already been persisted by the time a Report is returned.
type Report struct {
	Records   int
	TrainSize int
	TestSize  int
	Train     model.Metrics
	Test      model.Metrics
	Set       *artifacts.Set
}

// Run executes generate → encode → split → scale → fit → evaluate → persist.
// Any failed step aborts the run before anything is written.
func (t Trainer) Run() (*Report, error) {
	if t.ArtifactPath == "" {
		return nil, fmt.Errorf("training: artifact path is required")
	}

	log.Printf("training: generating %d synthetic records (seed %d)", t.Records, t.Seed)
	records, err := dataset.NewGenerator(t.Seed).Generate(t.Records)
	if err != nil {
		return nil, err
	}

	if t.DatasetPath != "" {
		if err := exportCSV(records, t.DatasetPath); err != nil {
			return nil, err
		}
		log.Printf("training: dataset exported to %s", t.DatasetPath)
	}

	// Encoders are fitted on the full table; with uniform draws over the
	// closed vocabularies every class appears long before realistic record
	// counts, so the tables cover the declared vocabularies.
	set := &artifacts.Set{}
	if set.BusEncoder, err = feature.FitEncoder(column(records, func(r dataset.TripRecord) string { return r.BusNumber })); err != nil {
		return nil, err
	}
	if set.DestinationEncoder, err = feature.FitEncoder(column(records, func(r dataset.TripRecord) string { return r.Destination })); err != nil {
		return nil, err
	}
	if set.DayEncoder, err = feature.FitEncoder(column(records, func(r dataset.TripRecord) string { return r.DayOfWeek })); err != nil {
		return nil, err
	}

	encoded, labels, err := encodeAll(set, records)
	if err != nil {
		return nil, err
	}

	trainX, trainY, testX, testY := split(encoded, labels, t.Seed)

	// The scaler sees only the training split; the held-out rows go through
	// transform exactly the way serving traffic will.
	set.Scaler, err = feature.FitScaler(trainX)
	if err != nil {
		return nil, err
	}
	trainScaled := set.Scaler.TransformAll(trainX)
	testScaled := set.Scaler.TransformAll(testX)

	set.Model, err = model.FitRidge(trainScaled, trainY, t.Alpha)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Records:   len(records),
		TrainSize: len(trainX),
		TestSize:  len(testX),
		Train:     model.Evaluate(set.Model, trainScaled, trainY),
		Test:      model.Evaluate(set.Model, testScaled, testY),
		Set:       set,
	}
	logReport(report)

	if err := artifacts.Save(set, t.ArtifactPath); err != nil {
		return nil, err
	}
	log.Printf("training: artifact set saved to %s", t.ArtifactPath)
	return report, nil
}

func column(records []dataset.TripRecord, pick func(dataset.TripRecord) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = pick(r)
	}
	return out
}

// encodeAll builds the n×5 feature matrix in the fixed order
// [bus, destination, day, hour, stop] plus the label vector.
func encodeAll(set *artifacts.Set, records []dataset.TripRecord) ([][]float64, []float64, error) {
	X := make([][]float64, len(records))
	y := make([]float64, len(records))
	for i, r := range records {
		bus, err := set.BusEncoder.Transform(r.BusNumber)
		if err != nil {
			return nil, nil, err
		}
		dest, err := set.DestinationEncoder.Transform(r.Destination)
		if err != nil {
			return nil, nil, err
		}
		day, err := set.DayEncoder.Transform(r.DayOfWeek)
		if err != nil {
			return nil, nil, err
		}
		X[i] = []float64{float64(bus), float64(dest), float64(day), float64(r.Hour), float64(r.StopSequence)}
		y[i] = r.ArrivalMinutes
	}
	return X, y, nil
}

// split shuffles row indices with the run seed and holds out the test
// fraction, so a rerun reproduces the same split and the same metrics.
func split(X [][]float64, y []float64, seed uint64) (trainX [][]float64, trainY []float64, testX [][]float64, testY []float64) {
	n := len(X)
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	testN := int(float64(n) * testFraction)
	for i, idx := range perm {
		if i < testN {
			testX = append(testX, X[idx])
			testY = append(testY, y[idx])
		} else {
			trainX = append(trainX, X[idx])
			trainY = append(trainY, y[idx])
		}
	}
	return trainX, trainY, testX, testY
}

func exportCSV(records []dataset.TripRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("training: creating dataset export: %w", err)
	}
	if err := dataset.WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("training: writing dataset export: %w", err)
	}
	return f.Close()
}

func logReport(r *Report) {
	log.Printf("training: %d records, %d train / %d test", r.Records, r.TrainSize, r.TestSize)
	log.Printf("training: train MSE=%.4f RMSE=%.4f MAE=%.4f R2=%.4f", r.Train.MSE, r.Train.RMSE, r.Train.MAE, r.Train.R2)
	log.Printf("training: test  MSE=%.4f RMSE=%.4f MAE=%.4f R2=%.4f", r.Test.MSE, r.Test.RMSE, r.Test.MAE, r.Test.R2)
	for i, name := range featureNames {
		log.Printf("training: coefficient %s = %.4f", name, r.Set.Model.Weights[i])
	}
	log.Printf("training: intercept = %.4f", r.Set.Model.Intercept)
}
