package busarrival

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/theoremus-urban-solutions/bus-arrival/predictor"
)

// apiServer holds the one prediction service constructed at startup. The
// service and its artifact set are immutable, so handlers share it across
// concurrent requests without locking.
type apiServer struct {
	svc  *predictor.Service
	info ServiceInfo
}

func newAPIServer(svc *predictor.Service, info ServiceInfo) *apiServer {
	return &apiServer{svc: svc, info: info}
}

func (a *apiServer) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return
	}
	var req predictor.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}
	if req.DayOfWeek == "" {
		req.DayOfWeek = "Monday"
	}

	minutes, err := a.svc.Predict(req)
	if err != nil {
		var verr *predictor.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("Prediction error: %v", err)})
		return
	}

	writeJSON(w, http.StatusOK, predictionResponse{
		Success:              true,
		PredictedArrivalTime: minutes,
		Unit:                 "minutes",
		BusNumber:            req.BusNumber,
		Destination:          req.Destination,
		DayOfWeek:            req.DayOfWeek,
		TimePeriod:           req.TimePeriod,
		StopSequence:         req.StopSequence,
		Message:              fmt.Sprintf("Bus %s will arrive in approximately %.2f minutes", req.BusNumber, minutes),
	})
}

func (a *apiServer) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{
		System:   a.info.System,
		Location: a.info.Location,
		Model:    a.info.Model,
		Version:  a.info.Version,
	})
}
