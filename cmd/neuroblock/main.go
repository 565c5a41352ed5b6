package main

import (
	"fmt"
	"os"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/blocker"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/config"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/countdown"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/db"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/notify"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/repository"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	stateRepo := repository.NewSQLiteStateRepo(database)
	blocklistRepo := repository.NewSQLiteBlocklistRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Session lifecycle collaborators: notices and distraction blocking go
	// to stderr so they never corrupt command output.
	ctrlOpts := []countdown.Option{}
	if cfg.Notifications {
		ctrlOpts = append(ctrlOpts,
			countdown.WithNotifier(notify.NewLogNotifier(os.Stderr)),
			countdown.WithBlocker(blocker.NewLogEnforcer(os.Stderr), blocklistRepo),
		)
	} else {
		ctrlOpts = append(ctrlOpts,
			countdown.WithBlocker(blocker.NoopEnforcer{}, blocklistRepo),
		)
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
		ctrlOpts = append(ctrlOpts, countdown.WithAnalytics(countdown.NewLogAnalytics(os.Stderr)))
	}

	ctrl := countdown.NewController(sessionRepo, stateRepo, uow, ctrlOpts...)

	app := &cli.App{
		Countdown:          ctrl,
		History:            service.NewHistoryService(sessionRepo, observers...),
		Stats:              service.NewStatsService(sessionRepo),
		Blocklist:          service.NewBlocklistService(blocklistRepo, observers...),
		Schedules:          service.NewScheduleService(scheduleRepo, observers...),
		DefaultDurationMin: cfg.DefaultDurationMin,
	}

	// Detect interactive terminal for the live countdown view and forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
