package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/dukas/config"
)

// RootConfig carries the persistent flags into subcommand constructors.
type RootConfig struct {
	ConfigPath string
	LogLevel   string
}

// Load returns the file config when --config was given, defaults otherwise.
func (rc *RootConfig) Load() (*config.Config, error) {
	if rc.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(rc.ConfigPath)
}

// Logger builds the leveled logger shared by the downloader and stores.
func (rc *RootConfig) Logger(level string) (*logrus.Logger, error) {
	if rc.LogLevel != "" {
		level = rc.LogLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "dukas",
		Short:         "Dukascopy historical FX tick data downloader",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.AddCommand(newDownloadCmd(rc))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("dukas (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
