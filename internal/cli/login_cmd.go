package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mpetrov/lectern/internal/canvas"
	"github.com/mpetrov/lectern/internal/service"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var baseURL, token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for your LMS instance",
		Long: "Store the instance URL and an API access token. Generate a token under\n" +
			"Account → Settings → New Access Token in the web UI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" || token == "" {
				if err := requireTerminal(app); err != nil {
					return fmt.Errorf("%w (or pass --url and --token)", err)
				}
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewInput().
							Title("Instance URL").
							Placeholder("https://school.instructure.com").
							Value(&baseURL).
							Validate(validateURL),
						huh.NewInput().
							Title("Access token").
							EchoMode(huh.EchoModePassword).
							Value(&token).
							Validate(validateNonEmpty),
					),
				).WithShowHelp(false)
				if err := form.Run(); err != nil {
					if cancelled(err) {
						return nil
					}
					return err
				}
			}

			baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

			// Verify before saving so a typo'd token never gets stored.
			client := canvas.New(baseURL, token)
			user, err := service.NewIdentityService(client).Whoami(cmd.Context())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			app.Config.Set("base_url", baseURL)
			app.Config.Set("token", token)
			if err := app.Config.Save(); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", user.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "", "Instance URL, e.g. https://school.instructure.com")
	cmd.Flags().StringVar(&token, "token", "", "API access token")

	return cmd
}

func validateURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("enter a full URL including https://")
	}
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}
