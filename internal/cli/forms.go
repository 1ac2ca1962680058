package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/remsodo/internal/auth"
	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// remsodoHuhTheme returns a huh theme using the formatter palette.
func remsodoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateEmail(s string) error {
	return (auth.Credentials{Email: s, Password: "-"}).Validate()
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// signUpInput is what the sign-up form collects.
type signUpInput struct {
	Email    string
	Password string
	Confirm  string
	Role     string
}

func signUpForm(in *signUpInput) *huh.Form {
	if in.Role == "" {
		in.Role = string(domain.RoleStudent)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(&in.Email).Validate(validateEmail),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).
				Value(&in.Password).Validate(validateRequired("password")),
			huh.NewInput().Title("Confirm Password").EchoMode(huh.EchoModePassword).Value(&in.Confirm),
			huh.NewSelect[string]().Title("I am a").Options(
				huh.NewOption("Student", string(domain.RoleStudent)),
				huh.NewOption("Tutor", string(domain.RoleTutor)),
			).Value(&in.Role),
		),
	).WithTheme(remsodoHuhTheme()).WithShowHelp(false)
}

func loginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").Value(email).Validate(validateEmail),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).
				Value(password).Validate(validateRequired("password")),
		),
	).WithTheme(remsodoHuhTheme()).WithShowHelp(false)
}

func emailForm(email *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Email").
				Description("We'll send reset instructions to this address.").
				Value(email).Validate(validateEmail),
		),
	).WithTheme(remsodoHuhTheme()).WithShowHelp(false)
}

// readSecret reads a password. With fromStdin it reads one line from the
// command's input; otherwise it prompts on the terminal without echo.
func readSecret(cmd *cobra.Command, app *App, prompt string, fromStdin bool) (string, error) {
	if fromStdin {
		return readLine(cmd.InOrStdin())
	}
	if !app.interactive() || app.ReadPassword == nil {
		return "", errors.New("no terminal for a password prompt; use --password-stdin")
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	pwd, err := app.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pwd), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
