package dataset

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors.
var (
	// ErrMissingColumn indicates a required column or property is absent.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrBadGeometry indicates an unparsable or unsupported geometry.
	ErrBadGeometry = errors.New("dataset: bad geometry")

	// ErrUnknownCountry indicates a country name without a NUTS0 code.
	ErrUnknownCountry = errors.New("dataset: unknown country")

	// ErrBadValue indicates an unparsable numeric cell.
	ErrBadValue = errors.New("dataset: bad value")
)

// DeliveryTemperature is the sink-side network temperature in °C.
const DeliveryTemperature = 100.0

// ResidentialHeating is the profile category of every sink.
const ResidentialHeating = "residential_heating"

// SourceRecord is one temperature band of one industrial site.
type SourceRecord struct {
	Position    orb.Point
	NUTS0       string
	Subsector   string
	ExcessHeat  float64 // MWh per year
	Temperature float64 // °C
}

// Process returns the load profile category of the record's subsector.
func (r SourceRecord) Process() (string, bool) {
	p, ok := SubsectorProcess[r.Subsector]
	return p, ok
}

// SinkRecord is one heat consumer.
type SinkRecord struct {
	Position    orb.Point
	NUTS2       string
	HeatDemand  float64 // MWh per year
	ID          int     // entry point id, or -area index for coherent areas
	Temperature float64 // °C
}

// SubsectorProcess maps registry subsectors to industry profile processes.
var SubsectorProcess = map[string]string{
	"Iron and steel":                "iron_and_steel",
	"Refineries":                    "chemicals_and_petrochemicals",
	"Chemical industry":             "chemicals_and_petrochemicals",
	"Cement":                        "non_metalic_minerals",
	"Glass":                         "non_metalic_minerals",
	"Non-metallic mineral products": "non_metalic_minerals",
	"Paper and printing":            "paper",
	"Non-ferrous metals":            "iron_and_steel",
	"Other non-classified":          "food_and_tobacco",
}

// CountryNUTS0 maps registry country names to NUTS0 codes.
var CountryNUTS0 = map[string]string{
	"Austria": "AT", "Belgium": "BE", "Bulgaria": "BG", "Cyprus": "CY",
	"Czech Republic": "CZ", "Germany": "DE", "Denmark": "DK", "Estonia": "EE",
	"Finland": "FI", "France": "FR", "Greece": "EL", "Hungary": "HU",
	"Croatia": "HR", "Ireland": "IE", "Italy": "IT", "Lithuania": "LT",
	"Luxembourg": "LU", "Latvia": "LV", "Malta": "MT", "Netherland": "NL",
	"Netherlands": "NL", "Poland": "PL", "Portugal": "PT", "Romania": "RO",
	"Spain": "ES", "Sweden": "SE", "Slovenia": "SI", "Slovakia": "SK",
	"United Kingdom": "UK", "Albania": "AL", "Montenegro": "ME",
	"North Macedonia": "MK", "Serbia": "RS", "Turkey": "TR",
	"Switzerland": "CH", "Iceland": "IS", "Liechtenstein": "LI", "Norway": "NO",
}
