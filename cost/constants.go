package cost

// Heat exchanger prices in € per kW of peak thermal power.
const (
	SourceExchangerEURPerKW = 25.0
	SinkExchangerEURPerKW   = 15.0
)

// defaultPipes lists pre-insulated twin-pipe classes by transport capacity
// (MW at a 40 K spread) and installed price per trench meter, ascending.
var defaultPipes = []PipeClass{
	{CapacityMW: 0.2, EURPerMeter: 195},
	{CapacityMW: 0.3, EURPerMeter: 206},
	{CapacityMW: 0.6, EURPerMeter: 220},
	{CapacityMW: 1.2, EURPerMeter: 240},
	{CapacityMW: 1.9, EURPerMeter: 261},
	{CapacityMW: 3.6, EURPerMeter: 288},
	{CapacityMW: 6.1, EURPerMeter: 323},
	{CapacityMW: 9.8, EURPerMeter: 357},
	{CapacityMW: 20, EURPerMeter: 426},
	{CapacityMW: 45, EURPerMeter: 564},
	{CapacityMW: 75, EURPerMeter: 699},
	{CapacityMW: 125, EURPerMeter: 868},
	{CapacityMW: 190, EURPerMeter: 1016},
}
