package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ssamant/pathway/internal/advisor"
	"github.com/ssamant/pathway/internal/cli"
	"github.com/ssamant/pathway/internal/db"
	"github.com/ssamant/pathway/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	database, err := db.OpenDB(db.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	advisorCfg := advisor.LoadConfig()
	var observer advisor.Observer = advisor.NoopObserver{}
	if advisorCfg.LogCalls {
		observer = advisor.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Advisor:     advisor.NewHTTPClient(advisorCfg, observer),
		Profiles:    repository.NewSQLiteProfileRepo(database),
		Submissions: repository.NewSQLiteSubmissionLogRepo(database),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
