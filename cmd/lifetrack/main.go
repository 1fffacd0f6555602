package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/config"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/storage"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Config directory. Defaults to the user config dir." type:"path"`
	DB        string `help:"Database file path. Overrides the configured location." type:"path"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize lifetrack storage and seed the default routines."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive checklist." default:"1"`
	Check    cli.CheckCmd    `cmd:"" help:"Toggle a routine's completion for a date."`
	Day      cli.DayCmd      `cmd:"" help:"Show the checklist for a day."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show completion counts over recent days."`
	Log      cli.LogCmd      `cmd:"" help:"Log or show mood and notes for a day."`
	Exercise cli.ExerciseCmd `cmd:"" help:"Toggle the exercise flag for a day."`
	Weight   cli.WeightCmd   `cmd:"" help:"Log or show weight for a day."`
	Export   cli.ExportCmd   `cmd:"" help:"Export routines and completions to a backup file."`
	Import   cli.ImportCmd   `cmd:"" help:"Merge a backup file into the local data."`
	Remind   cli.RemindCmd   `cmd:"" help:"Notify for routines whose window is open."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Check database health."`
	Routine  struct {
		Add    cli.RoutineAddCmd    `cmd:"" help:"Add a new routine."`
		Edit   cli.RoutineEditCmd   `cmd:"" help:"Edit an existing routine."`
		List   cli.RoutineListCmd   `cmd:"" help:"List routines."`
		Delete cli.RoutineDeleteCmd `cmd:"" aliases:"rm" help:"Delete a routine."`
	} `cmd:"" help:"Manage routines."`
	User struct {
		Name    cli.UserNameCmd    `cmd:"" help:"Show or set the user's name."`
		Onboard cli.UserOnboardCmd `cmd:"" help:"Mark onboarding complete."`
	} `cmd:"" help:"Manage user settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily routine tracker with time-window check-ins"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.DB != "" {
		cfg.DBPath = CLI.DB
	}

	store := storage.NewSQLiteStore(cfg.DBPath)
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
