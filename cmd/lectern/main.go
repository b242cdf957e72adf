package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mpetrov/lectern/internal/canvas"
	"github.com/mpetrov/lectern/internal/cli"
	"github.com/mpetrov/lectern/internal/config"
	"github.com/mpetrov/lectern/internal/service"
)

func main() {
	if err := run(); err != nil {
		if canvas.IsServiceUnavailable(err) {
			fmt.Fprintln(os.Stderr, "The LMS is temporarily unavailable; try again in a few minutes.")
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The client is built unconditionally; commands that need credentials
	// guard on cfg.IsAuthenticated before using it.
	client := canvas.New(cfg.BaseURL(), cfg.Token())

	app := &cli.App{
		Config:      cfg,
		Courses:     service.NewCourseService(client),
		Identity:    service.NewIdentityService(client),
		Submissions: service.NewSubmissionService(client),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
