package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/logdeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config path (default ~/.config/logdeck/config.toml)")
	prefsPath := flag.String("prefs", "", "prefs path (default ~/.config/logdeck/prefs.toml)")
	file := flag.String("file", "", "log file to view; overrides log_file and remote_api")
	remoteAPI := flag.String("remote", "", "daemon host:port or URL to poll instead of a file")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address")
	pollSeconds := flag.Int("poll", 0, "remote poll interval in seconds (optional, defaults to 2s)")
	flag.Parse()

	if flag.NArg() > 0 && *file == "" {
		*file = flag.Arg(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		PrefsPath:   *prefsPath,
		File:        *file,
		Remote:      *remoteAPI,
		MetricsAddr: *metricsAddr,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "logdeck: %v\n", err)
		return 1
	}
	return 0
}
