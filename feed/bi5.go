package feed

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/rustyeddy/dukas/market"
	"github.com/ulikunitz/xz/lzma"
)

// recordSize is the fixed width of one tick in a decompressed bi5 buffer:
// uint32 offset-ms | uint32 ask*1e5 | uint32 bid*1e5 | float32 askVol |
// float32 bidVol, all big-endian.
const recordSize = 20

const msPerHour = 60 * 60 * 1000

// DecompressBI5 expands an lzma-compressed bi5 payload.
func DecompressBI5(data []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lzma reader: %w", err)
	}
	flat, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lzma decompress: %w", err)
	}
	return flat, nil
}

// ParseBI5 decodes a decompressed bi5 buffer into ticks. hourStart anchors
// the per-record millisecond offsets; offsets are taken as-is, even when
// they point past the end of the hour. An empty buffer yields an empty
// slice. Trailing bytes beyond the last full record are ignored; the feed
// never emits partial records, so the remainder is noise, not corruption.
func ParseBI5(data []byte, hourStart time.Time) ([]market.Tick, error) {
	n := len(data) / recordSize
	if n == 0 {
		return nil, nil
	}

	ticks := make([]market.Tick, 0, n)
	for i := 0; i < n; i++ {
		rec := data[i*recordSize : (i+1)*recordSize]

		offsetMs := binary.BigEndian.Uint32(rec[0:4])
		askScaled := binary.BigEndian.Uint32(rec[4:8])
		bidScaled := binary.BigEndian.Uint32(rec[8:12])
		askVol := math.Float32frombits(binary.BigEndian.Uint32(rec[12:16]))
		bidVol := math.Float32frombits(binary.BigEndian.Uint32(rec[16:20]))

		ticks = append(ticks, market.Tick{
			Time:      hourStart.Add(time.Duration(offsetMs) * time.Millisecond),
			Ask:       market.Price(askScaled),
			Bid:       market.Price(bidScaled),
			AskVolume: askVol,
			BidVolume: bidVol,
		})
	}
	return ticks, nil
}
