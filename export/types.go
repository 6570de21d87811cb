package export

import (
	"errors"
	"time"

	"github.com/paulmach/orb"
)

// ErrRunNotFound is returned when a run id is unknown to the store.
var ErrRunNotFound = errors.New("export: run not found")

// Line is one surviving transmission line.
type Line struct {
	From          orb.Point
	To            orb.Point
	FlowMWh       float64 // annual
	PeakMW        float64 // largest hourly flow
	TemperatureC  float64
	CostEUR       float64
	LengthKm      float64
	LevelizedCost float64 // ct/kWh
}

// Summary is the whole-network result.
type Summary struct {
	TotalCostEUR     float64
	TotalFlowGWh     float64
	CostPerFlowCtKWh float64
}

// Run is one complete estimation as persisted by Store.
type Run struct {
	Region           string
	SearchRadiusKm   float64
	InvestmentPeriod float64
	Threshold        float64
	Iterations       int
	StartedAt        time.Time
	FinishedAt       time.Time
	Summary          Summary
	Lines            []Line
}
