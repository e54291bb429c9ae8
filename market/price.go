package market

type Price = int32

// Scale converts between the feed's integer price encoding and floats
// (1.23456 -> 123456). All pairs on the feed use the pipette scale.
const Scale float64 = 100_000.0

func ToFloat(p Price) float64 {
	return float64(p) / Scale
}

func FromFloat(x float64) Price {
	return Price(x*Scale + 0.5)
}
