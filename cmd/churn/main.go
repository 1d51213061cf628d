package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"
	"github.com/shini4i/file-churn/cmd/churn/command"
	"github.com/shini4i/file-churn/cmd/churn/utils"
	"github.com/shini4i/file-churn/internal/churn"
	"github.com/spf13/afero"
)

var (
	version = "local"
	log     = logging.MustGetLogger("churn")
	format  = logging.MustStringFormatter(
		`%{color}%{time:15:04:05} %{level:.4s}%{color:reset} %{message}`,
	)
)

func main() {
	opts := command.Options{
		Version:     version,
		Banner:      os.Args[0],
		FS:          afero.NewOsFs(),
		RunChurn:    runChurn,
		RunSweep:    runSweep,
		InitLogging: initLogging,
	}

	if err := command.Execute(opts, nil); err != nil {
		os.Exit(1)
	}
}

func initLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))

	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}

	logging.SetBackend(leveled)
}

func newRunner(cfg churn.Config) (*churn.Runner, error) {
	return churn.New(cfg, churn.Dependencies{
		FS:      afero.NewOsFs(),
		Globber: utils.CustomGlobber{},
		Logger:  log,
		Out:     os.Stdout,
	})
}

func runChurn(cfg churn.Config) error {
	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runner.Run(ctx)
}

func runSweep(cfg churn.Config) error {
	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = runner.Sweep(ctx)
	return err
}
