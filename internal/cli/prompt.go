package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mpetrov/lectern/internal/cli/formatter"
	"github.com/mpetrov/lectern/internal/domain"
)

// errNoTerminal is returned when an interactive command runs without a TTY.
var errNoTerminal = errors.New("this command needs an interactive terminal")

func requireTerminal(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return errNoTerminal
	}
	return nil
}

// cancelled reports whether the user backed out of a form.
func cancelled(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

// pickCourse shows a select of courses in dashboard order.
func pickCourse(courses []domain.Course, colors *formatter.ColorResolver) (domain.Course, error) {
	options := make([]huh.Option[int64], 0, len(courses))
	byID := make(map[int64]domain.Course, len(courses))
	for _, c := range courses {
		label := fmt.Sprintf("%s (%s)", c.Name, c.Code)
		options = append(options, huh.NewOption(label, c.ID))
		byID[c.ID] = c
	}

	var picked int64
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Which course?").
				Options(options...).
				Value(&picked),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.Course{}, err
	}
	return byID[picked], nil
}

// pickAssignment shows a select of assignments.
func pickAssignment(title string, items []domain.Assignment) (domain.Assignment, error) {
	options := make([]huh.Option[int64], 0, len(items))
	byID := make(map[int64]domain.Assignment, len(items))
	for _, a := range items {
		label := a.Name
		if a.DueAt != nil {
			label = fmt.Sprintf("%s — %s", a.Name, a.DueAt.Format("Jan 2 15:04"))
		}
		options = append(options, huh.NewOption(label, a.ID))
		byID[a.ID] = a
	}

	var picked int64
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title(title).
				Options(options...).
				Value(&picked),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.Assignment{}, err
	}
	return byID[picked], nil
}

// promptFilePath asks for a path to an existing regular file.
func promptFilePath() (string, error) {
	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File to submit").
				Placeholder("essay.pdf").
				Value(&path).
				Validate(func(s string) error {
					info, err := os.Stat(s)
					if err != nil {
						return fmt.Errorf("cannot read %s", s)
					}
					if info.IsDir() {
						return fmt.Errorf("%s is a directory", s)
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return path, nil
}
