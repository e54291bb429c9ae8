package market

import "time"

// Tick is a single bid/ask observation decoded from the feed. Prices are
// stored scaled (see Price); volumes are the feed's float trade-size proxies.
// Ticks are never mutated after construction.
type Tick struct {
	Time      time.Time
	Bid       Price
	Ask       Price
	BidVolume float32
	AskVolume float32
}

func (t Tick) BidFloat() float64 {
	return ToFloat(t.Bid)
}

func (t Tick) AskFloat() float64 {
	return ToFloat(t.Ask)
}

func (t Tick) Mid() Price {
	return Price((int64(t.Bid) + int64(t.Ask)) / 2)
}

func (t Tick) Spread() Price {
	return t.Ask - t.Bid
}
