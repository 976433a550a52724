package busarrival

import (
	"encoding/json"
	"net/http"
)

// predictionResponse echoes the input fields alongside the prediction, the
// contract the frontend has always consumed.
type predictionResponse struct {
	Success              bool    `json:"success"`
	PredictedArrivalTime float64 `json:"predicted_arrival_time"`
	Unit                 string  `json:"unit"`
	BusNumber            string  `json:"bus_number"`
	Destination          string  `json:"destination"`
	DayOfWeek            string  `json:"day_of_week"`
	TimePeriod           int     `json:"time_period"`
	StopSequence         int     `json:"stop_sequence"`
	Message              string  `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type infoResponse struct {
	System   string `json:"system"`
	Location string `json:"location"`
	Model    string `json:"model"`
	Version  string `json:"version"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
