package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

func newLoginCommand(opts *Options) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and store the access token locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx := rt.ctx(cmd)
			p := rt.newPage(cmd)

			if password == "" {
				password, err = promptLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			token, err := rt.api.Login(ctx, args[0], password)
			if err != nil {
				p.notices.Error("login failed: " + err.Error())
				return ErrReported
			}
			if err := rt.store.SetCredentials(ctx, token.AccessToken, token.Username); err != nil {
				return errors.Wrap(err, "store credentials")
			}

			p.notices.Success("signed in as " + token.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx := rt.ctx(cmd)
			p := rt.newPage(cmd)
			if err := rt.store.ClearCredentials(ctx); err != nil {
				return errors.Wrap(err, "clear credentials")
			}
			p.notices.Success("signed out")
			return nil
		},
	}
}

func newRegisterCommand(opts *Options) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a backend account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx := rt.ctx(cmd)
			p := rt.newPage(cmd)

			if password == "" {
				password, err = promptLine(cmd, "Password: ")
				if err != nil {
					return err
				}
			}

			account, err := rt.api.Register(ctx, args[0], email, password)
			if err != nil {
				p.notices.Error("registration failed: " + err.Error())
				return ErrReported
			}
			p.notices.Success("account created for " + account.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newWhoamiCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			ctx := rt.ctx(cmd)
			p := rt.newPage(cmd)

			token, err := rt.store.Token(ctx)
			if err != nil {
				return err
			}
			if token == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}

			account, err := rt.api.Me(ctx, token)
			if err != nil {
				p.notices.Error("could not verify your session: " + err.Error())
				return ErrReported
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", account.Username, account.Email)
			return nil
		},
	}
}

func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimSpace(line), nil
}
