package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/dukas/feed"
	"github.com/rustyeddy/dukas/market"
	"github.com/rustyeddy/dukas/store"
)

func newDownloadCmd(rc *RootConfig) *cobra.Command {
	var (
		pair    string
		start   string
		end     string
		outDir  string
		format  string
		baseURL string
		timeout time.Duration
		workers int
		delay   time.Duration
		noSave  bool
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download FX tick data for a pair and date range",
		Long: `Download historical tick data from the Dukascopy datafeed.

Hours with no data (weekends, holidays) are skipped silently; a day or
range with no data at all is reported but never fails the run.

Example:
  dukas download --pair EURUSD --start 2024-01-01 --end 2024-01-31 \
    --out data/raw --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Load()
			if err != nil {
				return err
			}

			log, err := rc.Logger(cfg.LogLevel)
			if err != nil {
				return err
			}

			// Flags beat the config file where explicitly set.
			if cmd.Flags().Changed("base") {
				cfg.Feed.BaseURL = baseURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Feed.Timeout = timeout.String()
			}
			if cmd.Flags().Changed("workers") {
				cfg.Feed.Workers = workers
			}
			if cmd.Flags().Changed("delay") {
				cfg.Feed.Delay = delay.String()
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = outDir
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if noSave {
				cfg.Output.Save = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			canonical, err := market.ValidatePair(pair)
			if err != nil {
				return err
			}

			feedTimeout, err := cfg.Feed.ParseTimeout()
			if err != nil {
				return err
			}
			feedDelay, err := cfg.Feed.ParseDelay()
			if err != nil {
				return err
			}

			d := feed.NewDownloader(canonical, log)
			d.BaseURL = cfg.Feed.BaseURL
			d.Timeout = feedTimeout
			d.Workers = cfg.Feed.Workers
			d.Delay = feedDelay
			d.Progress = newTerminalProgress(os.Stdout)

			ticks, err := d.DownloadRange(context.Background(), start, end)
			if err != nil {
				return err
			}

			if !cfg.Output.Save {
				return nil
			}
			if len(ticks) == 0 {
				// Nothing to persist; the downloader already said why.
				return nil
			}

			st, err := store.New(cfg.Output.Format, cfg.Output.Dir, log)
			if err != nil {
				return err
			}
			path, err := st.WriteDataset(ticks, canonical, start, end)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d ticks to %s\n", len(ticks), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&pair, "pair", "", "Currency pair, e.g. EURUSD (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD, inclusive (required)")
	cmd.Flags().StringVar(&outDir, "out", "data/raw", "Output directory")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv|sqlite|parquet")
	cmd.Flags().StringVar(&baseURL, "base", feed.DefaultBaseURL, "Datafeed base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", feed.DefaultTimeout, "HTTP timeout per hour file")
	cmd.Flags().IntVar(&workers, "workers", 1, "Parallel hour fetches per day")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Polite delay before each request")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip writing the output file")

	cmd.MarkFlagRequired("pair")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}
