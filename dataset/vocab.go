package dataset

// BusNumbers is the fixed fleet operating in the Kanyakumari district.
var BusNumbers = []string{
	"BUS001", "BUS002", "BUS003", "BUS004",
	"BUS005", "BUS006", "BUS007", "BUS008",
}

// Destinations is the fixed set of served destinations.
var Destinations = []string{
	"Nagercoil",
	"Kanyakumari",
	"Marthandam",
	"Colachel",
	"Thuckalay",
	"Kulasekaram",
	"Padmanabhapuram",
	"Suchindram",
}

// DaysOfWeek in calendar order.
var DaysOfWeek = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

const (
	MinHour = 0
	MaxHour = 23

	MinStopSequence = 1
	MaxStopSequence = 7

	// Arrival labels are clamped to this window (minutes).
	MinArrivalMinutes = 1.0
	MaxArrivalMinutes = 20.0
)

// destinationBaseMinutes is the base travel component per destination.
var destinationBaseMinutes = map[string]float64{
	"Nagercoil":       2,
	"Kanyakumari":     8,
	"Marthandam":      5,
	"Colachel":        10,
	"Thuckalay":       12,
	"Kulasekaram":     6,
	"Padmanabhapuram": 3,
	"Suchindram":      7,
}

// busDelayMinutes is the per-vehicle fixed delay (some buses run slower).
var busDelayMinutes = map[string]float64{
	"BUS001": 0.5,
	"BUS002": 1,
	"BUS003": 0,
	"BUS004": 0.8,
	"BUS005": 0.3,
	"BUS006": 1.2,
	"BUS007": 0.2,
	"BUS008": 0.7,
}

const (
	defaultDestinationBase = 6.0
	defaultBusDelay        = 0.5
)
