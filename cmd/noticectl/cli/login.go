package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/notice-board/internal/board"
)

func (c *cli) newLoginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := board.NewSession()
			if err := session.OpenAdminLogin(); err != nil {
				return err
			}

			var err error
			if email == "" {
				if email, err = c.readLine("Email: "); err != nil {
					return err
				}
			}
			password, err := c.readSecret("Password: ")
			if err != nil {
				return err
			}

			res, err := c.client("").Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := session.LoginSucceeded(res.Token, res.Admin); err != nil {
				return err
			}
			if err := saveSession(c.sessionPath(), &savedSession{
				Token:     res.Token,
				ExpiresAt: res.ExpiresAt,
				Admin:     res.Admin,
			}); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s. Welcome, %s.\n", res.Message, res.Admin.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "administrator email")
	return cmd
}

func (c *cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			session, _, err := c.adminSession()
			if errors.Is(err, errNotLoggedIn) {
				fmt.Fprintln(c.out, "Not logged in.")
				return nil
			}
			if err != nil {
				return err
			}
			if err := session.Logout(); err != nil {
				return err
			}
			if err := clearSession(c.sessionPath()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Logged out.")
			return nil
		},
	}
}
