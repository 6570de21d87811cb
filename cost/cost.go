package cost

import (
	"math"
	"sort"
)

// Model prices the components of a transmission network. Every method
// receives the annual hourly flow of one component.
type Model interface {
	// SourceExchanger returns the investment in € for the exchanger at a source.
	SourceExchanger(flow []float64) float64
	// SinkExchanger returns the investment in € for the exchanger at a sink.
	SinkExchanger(flow []float64) float64
	// Connection returns the investment in € for a line of lengthKm.
	Connection(lengthKm float64, flow []float64) float64
}

// PipeClass is one pipe dimension.
type PipeClass struct {
	CapacityMW  float64
	EURPerMeter float64
}

// Table is a Model backed by per-kW exchanger prices and a pipe class list.
type Table struct {
	SourceEURPerKW float64
	SinkEURPerKW   float64
	Pipes          []PipeClass // ascending by CapacityMW
}

var _ Model = (*Table)(nil)

// Default returns the Table built from the package constants.
func Default() *Table {
	return &Table{
		SourceEURPerKW: SourceExchangerEURPerKW,
		SinkEURPerKW:   SinkExchangerEURPerKW,
		Pipes:          append([]PipeClass(nil), defaultPipes...),
	}
}

// SourceExchanger implements Model.
func (t *Table) SourceExchanger(flow []float64) float64 {
	return Peak(flow) * 1000 * t.SourceEURPerKW
}

// SinkExchanger implements Model.
func (t *Table) SinkExchanger(flow []float64) float64 {
	return Peak(flow) * 1000 * t.SinkEURPerKW
}

// Connection implements Model. Non-positive or non-finite lengths cost nothing.
func (t *Table) Connection(lengthKm float64, flow []float64) float64 {
	peak := Peak(flow)
	if peak == 0 || len(t.Pipes) == 0 || !(lengthKm > 0) || math.IsInf(lengthKm, 0) {
		return 0
	}
	return lengthKm * 1000 * t.pricePerMeter(peak)
}

// pricePerMeter picks the smallest class with CapacityMW >= peak, or
// parallel pipes of the largest class.
func (t *Table) pricePerMeter(peak float64) float64 {
	i := sort.Search(len(t.Pipes), func(i int) bool { return t.Pipes[i].CapacityMW >= peak })
	if i < len(t.Pipes) {
		return t.Pipes[i].EURPerMeter
	}
	largest := t.Pipes[len(t.Pipes)-1]
	return math.Ceil(peak/largest.CapacityMW) * largest.EURPerMeter
}

// Peak returns the largest absolute hourly flow. NaN hours are ignored.
func Peak(flow []float64) float64 {
	var peak float64
	for _, f := range flow {
		if a := math.Abs(f); a > peak {
			peak = a
		}
	}
	return peak
}
