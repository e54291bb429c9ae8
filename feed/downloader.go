package feed

import (
	"context"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/rustyeddy/dukas/market"
	"github.com/sirupsen/logrus"
)

const (
	hoursPerDay    = 24
	DefaultTimeout = 30 * time.Second
)

// Progress receives per-day advancement while a range downloads. Calls
// arrive from the goroutine running DownloadRange, so implementations do
// not need to be goroutine-safe.
type Progress interface {
	Start(total int)
	Step(label string)
	Done()
}

// NopProgress discards all progress events.
type NopProgress struct{}

func (NopProgress) Start(int) {}

func (NopProgress) Step(string) {}

func (NopProgress) Done() {}

// Downloader fetches, decodes, and aggregates historical tick data for one
// pair from the Dukascopy datafeed. Every per-hour failure mode (missing
// file, transport error, corrupt payload) degrades to an empty hour; only
// input validation surfaces as an error.
type Downloader struct {
	BaseURL string
	Pair    string
	Timeout time.Duration
	Workers int
	Delay   time.Duration // polite pause before each request

	Client   *http.Client
	Log      *logrus.Logger
	Progress Progress
}

// NewDownloader returns a Downloader with feed defaults and sequential
// fetching. Pair must already be canonical (see market.ValidatePair).
func NewDownloader(pair string, log *logrus.Logger) *Downloader {
	return &Downloader{
		BaseURL:  DefaultBaseURL,
		Pair:     pair,
		Timeout:  DefaultTimeout,
		Workers:  1,
		Log:      log,
		Progress: NopProgress{},
	}
}

func (d *Downloader) client() *http.Client {
	if d.Client == nil {
		d.Client = &http.Client{Timeout: d.Timeout}
	}
	return d.Client
}

// fetchHour retrieves one compressed bi5 payload. Any non-2xx status,
// transport error, or timeout yields nil: absent hours are routine on this
// feed (weekends, holidays), so absence is data, not an error.
func (d *Downloader) fetchHour(ctx context.Context, url string) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		d.Log.WithError(err).WithField("url", url).Debug("bad request")
		return nil
	}
	req.Header.Set("User-Agent", "dukas-downloader/1.0")

	resp, err := d.client().Do(req)
	if err != nil {
		d.Log.WithError(err).WithField("url", url).Debug("download failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.Log.WithFields(logrus.Fields{
			"url":    url,
			"status": resp.StatusCode,
		}).Debug("no data")
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		d.Log.WithError(err).WithField("url", url).Debug("read body failed")
		return nil
	}
	return body
}

// downloadHour runs the full locate/fetch/decompress/parse cycle for one
// hour and absorbs every failure into an empty result.
func (d *Downloader) downloadHour(ctx context.Context, day time.Time, hour int) []market.Tick {
	hourStart := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	url := TickURL(d.BaseURL, d.Pair, hourStart)

	raw := d.fetchHour(ctx, url)
	if len(raw) == 0 {
		return nil
	}

	flat, err := DecompressBI5(raw)
	if err != nil {
		d.Log.WithError(err).WithField("url", url).Warn("failed to decompress")
		return nil
	}

	ticks, err := ParseBI5(flat, hourStart)
	if err != nil {
		d.Log.WithError(err).WithField("url", url).Warn("failed to parse")
		return nil
	}
	return ticks
}

// DownloadDay collects all ticks for one date, hours 0..23. Hours are
// fetched on a pool of Workers goroutines but collected indexed by hour,
// so the result is always in hour order regardless of completion order.
// A day where every hour came up empty is a warning, not a failure; it
// usually just means a non-trading day.
func (d *Downloader) DownloadDay(ctx context.Context, day time.Time) []market.Tick {
	d.Log.WithFields(logrus.Fields{
		"pair": d.Pair,
		"date": day.Format(dateLayout),
	}).Info("downloading day")

	byHour := make([][]market.Tick, hoursPerDay)

	workers := d.Workers
	if workers < 1 {
		workers = 1
	}
	d.client() // prime before the pool shares it

	hourCh := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for h := range hourCh {
				if d.Delay > 0 {
					time.Sleep(d.Delay)
				}
				byHour[h] = d.downloadHour(ctx, day, h)
			}
		}()
	}
	for h := 0; h < hoursPerDay; h++ {
		hourCh <- h
	}
	close(hourCh)
	wg.Wait()

	var ticks []market.Tick
	for _, ht := range byHour {
		ticks = append(ticks, ht...)
	}

	if len(ticks) == 0 {
		d.Log.WithField("date", day.Format(dateLayout)).Warn("no data for day")
		return nil
	}

	d.Log.WithFields(logrus.Fields{
		"date":  day.Format(dateLayout),
		"ticks": len(ticks),
	}).Info("day complete")
	return ticks
}

// DownloadRange downloads every date between start and end (inclusive,
// YYYY-MM-DD) and returns the combined dataset stable-sorted by timestamp.
// An entirely empty range logs at error level and returns an empty dataset;
// the caller decides whether that is acceptable. Only invalid input or a
// cancelled context produce an error.
func (d *Downloader) DownloadRange(ctx context.Context, start, end string) ([]market.Tick, error) {
	dates, err := DateRange(start, end)
	if err != nil {
		return nil, err
	}

	d.Log.WithFields(logrus.Fields{
		"pair":  d.Pair,
		"start": start,
		"end":   end,
		"days":  len(dates),
	}).Info("downloading range")

	prog := d.Progress
	if prog == nil {
		prog = NopProgress{}
	}
	prog.Start(len(dates))

	var all []market.Tick
	for _, day := range dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		all = append(all, d.DownloadDay(ctx, day)...)
		prog.Step(day.Format(dateLayout))
	}
	prog.Done()

	if len(all) == 0 {
		d.Log.Error("no data downloaded")
		return nil, nil
	}

	// Hours arrive ordered within themselves but the feed offers no global
	// guarantee; a stable sort fixes stragglers without reshuffling ties.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Time.Before(all[j].Time)
	})

	d.Log.WithField("ticks", len(all)).Info("range complete")
	return all, nil
}
