package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"Bus_Number", "Destination", "Day_Of_Week", "Time_Period", "Stop_Sequence", "Arrival_Time_minutes",
}

// WriteCSV exports records in the layout the training dataset has always
// been published in (one row per trip, labels with two decimals).
func WriteCSV(w io.Writer, records []TripRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.BusNumber,
			r.Destination,
			r.DayOfWeek,
			strconv.Itoa(r.Hour),
			strconv.Itoa(r.StopSequence),
			strconv.FormatFloat(r.ArrivalMinutes, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
