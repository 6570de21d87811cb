// Package cost prices heat exchangers and transmission lines from their
// annual hourly flow.
//
// All flows are hourly energies in MWh/h, which equals a thermal power in
// MW. A component is sized for its peak hour: exchangers cost a fixed
// amount per kW of peak, and a line costs its length times the price per
// meter of the smallest pipe class able to carry the peak. Peaks above the
// largest class are carried by parallel pipes of the largest class.
//
// The functions are pure and safe for concurrent use.
package cost
