package cli

import (
	"fmt"

	"github.com/alexanderramin/remsodo/internal/cli/formatter"
	"github.com/alexanderramin/remsodo/internal/domain"
	"github.com/alexanderramin/remsodo/internal/service"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign up, log in and manage your session",
	}

	cmd.AddCommand(
		newSignUpCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoAmICmd(app),
		newResetPasswordCmd(app),
	)

	return cmd
}

func printAuthResult(cmd *cobra.Command, res *service.AuthResult) error {
	if !res.Success {
		return &userError{msg: res.Message}
	}
	writeLine(cmd.OutOrStdout(), formatter.Success(res.Message))
	return nil
}

func newSignUpCmd(app *App) *cobra.Command {
	var in signUpInput
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Email == "" && !passwordStdin && app.interactive() {
				if err := signUpForm(&in).Run(); err != nil {
					return err
				}
			} else {
				pwd, err := readSecret(cmd, app, "Password: ", passwordStdin)
				if err != nil {
					return err
				}
				in.Password = pwd
				in.Confirm = pwd
				if !passwordStdin {
					if in.Confirm, err = readSecret(cmd, app, "Confirm password: ", false); err != nil {
						return err
					}
				}
			}
			if in.Password != in.Confirm {
				return printAuthResult(cmd, service.PasswordsDifferResult())
			}
			role, err := domain.ParseRole(in.Role)
			if err != nil {
				return err
			}

			res, err := app.Auth.SignUp(cmd.Context(), in.Email, in.Password, role)
			if err != nil {
				return err
			}
			return printAuthResult(cmd, res)
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&in.Role, "role", "student", "Account role: student or tutor")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")

	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var email string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if email == "" && !passwordStdin && app.interactive() {
				if err := loginForm(&email, &password).Run(); err != nil {
					return err
				}
			} else {
				pwd, err := readSecret(cmd, app, "Password: ", passwordStdin)
				if err != nil {
					return err
				}
				password = pwd
			}

			res, err := app.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return printAuthResult(cmd, res)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.Success("Logged out."))
			return nil
		},
	}
}

func newWhoAmICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			if user == nil {
				writeLine(cmd.OutOrStdout(), formatter.Dim("Not signed in."))
				return nil
			}
			writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s  %s", formatter.Bold(user.Email), formatter.RoleBadge(user.Role)))
			return nil
		},
	}
}

func newResetPasswordCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Request a password reset email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				if !app.interactive() {
					return fmt.Errorf("--email is required")
				}
				if err := emailForm(&email).Run(); err != nil {
					return err
				}
			}
			res, err := app.Auth.RequestPasswordReset(cmd.Context(), email)
			if err != nil {
				return err
			}
			return printAuthResult(cmd, res)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")

	return cmd
}
