// Command nepali-date is the tray app showing today's Bikram Sambat date
// and serving the BS overlay calendar feed on localhost.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/server"
	"github.com/tartampluch/go-nepalidate/internal/ui"
)

// main only converts runMain's result to an exit code so that deferred
// cleanup (the log file) runs first.
func main() {
	os.Exit(runMain())
}

func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.Parse()

	if *showVersion {
		fmt.Print(config.VersionString())
		return config.ExitCodeSuccess
	}

	if logCloser := config.SetupLogging(os.Stdout, *debugMode, true); logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// SIGINT and SIGTERM quit the tray app.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	config.LogStartupInfo(config.CompMain)

	if err := run(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the feed server into the tray app and blocks in the Fyne loop.
func run(ctx context.Context) error {
	a := app.NewWithID(config.AppID)
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	// The port is read once; a changed port applies on the next start.
	port := a.Preferences().StringWithFallback(config.PrefFeedPort, config.DefaultFeedPort)
	if err := config.ValidatePort(port); err != nil {
		slog.Warn(err.Error(),
			config.LogKeyComponent, config.CompMain,
			config.LogKeyPort, port)
		port = config.DefaultFeedPort
	}

	// The UI supplies the /today snapshot once constructed.
	srv := server.NewFeedServer(port, nil)
	gui := ui.NewNepaliDateApp(a, ctx, srv)

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()
	return nil
}
