package main

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/go-playground/errors/v5"
	"github.com/spf13/cobra"
	"github.com/wasteworks/erpadmin"
	"github.com/wasteworks/erpadmin/gateway"
	"github.com/wasteworks/erpadmin/guard"
	"github.com/wasteworks/erpadmin/internal/render"
	"golang.org/x/term"
)

// requireAuth hydrates the session and applies the navigation decision:
// an anonymous session prints the login hint and stops the command.
func requireAuth(cmd *cobra.Command, a *app) (erpadmin.Authenticated, error) {
	state, err := a.session.Hydrate(cmd.Context())
	if err != nil {
		return erpadmin.Authenticated{}, err
	}

	switch guard.Decide(state) {
	case guard.Admit:
		return state.(erpadmin.Authenticated), nil
	case guard.RedirectLogin:
		return erpadmin.Authenticated{}, errors.New("not logged in, run `erpctl login` first")
	default:
		return erpadmin.Authenticated{}, errors.New("session did not settle")
	}
}

func promptPassword(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", label)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", errors.Wrap(err, "term.ReadPassword()")
	}

	return string(password), nil
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if email == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Email: ")
				if _, err := fmt.Fscanln(cmd.InOrStdin(), &email); err != nil {
					return errors.Wrap(err, "fmt.Fscanln()")
				}
			}
			if password == "" {
				password, err = promptPassword(cmd, "Password")
				if err != nil {
					return err
				}
			}

			state, err := a.session.Login(cmd.Context(), gateway.Credentials{Email: email, Password: password})
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), render.APIError(err))

				return err
			}

			auth := state.(erpadmin.Authenticated)
			fmt.Fprintln(cmd.OutOrStdout(), render.OK("logged in as %s", auth.User.Email))

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and discard stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			a.session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), render.OK("logged out"))

			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var name, email, password, tenant string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and tenant, then log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if password == "" {
				password, err = promptPassword(cmd, "Password")
				if err != nil {
					return err
				}
			}

			payload := map[string]string{
				"name":       name,
				"email":      email,
				"password":   password,
				"tenantName": tenant,
			}
			state, err := a.session.Register(cmd.Context(), payload)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), render.APIError(err))

				return err
			}

			auth := state.(erpadmin.Authenticated)
			fmt.Fprintln(cmd.OutOrStdout(), render.OK("registered %s", auth.User.Email))

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	cmd.Flags().StringVar(&tenant, "tenant", "", "name of the tenant to create")
	if err := cmd.MarkFlagRequired("email"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("tenant"); err != nil {
		panic(err)
	}

	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated identity and permissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			auth, err := requireAuth(cmd, a)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Identity(auth))

			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connection settings and session state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			apiURL := a.cfg.APIURL
			if apiURL == "" {
				apiURL = gateway.DefaultBaseURL
			}

			state, err := a.session.Hydrate(cmd.Context())
			if err != nil {
				return err
			}

			session := "anonymous"
			if auth, ok := state.(erpadmin.Authenticated); ok {
				session = fmt.Sprintf("authenticated as %s", auth.User.Email)
			}

			out := render.Heading("erpctl") + "\n" + render.KV(
				[2]string{"API", apiURL},
				[2]string{"Credentials", a.cfg.CredentialsFile},
				[2]string{"Session", session},
			)
			fmt.Fprint(cmd.OutOrStdout(), strings.TrimSuffix(out, "\n")+"\n")

			return nil
		},
	}
}
