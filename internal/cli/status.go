package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saladworks/cartctl/internal/client"
)

func newStatusCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check backend reachability and show the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "backend: %s\n", rt.cfg.APIBaseURL)
			fmt.Fprintf(out, "session: %s\n", rt.session)

			p := rt.newPage(cmd)
			if err := rt.api.Health(rt.ctx(cmd)); err != nil {
				p.notices.Error("backend unreachable: " + err.Error())
				return ErrReported
			}
			p.notices.Success("backend healthy")
			return nil
		},
	}
}

func newContactCommand(opts *Options) *cobra.Command {
	var req client.ContactRequest

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer rt.close()

			p := rt.newPage(cmd)
			msg, err := rt.api.SubmitContact(rt.ctx(cmd), req)
			if err != nil {
				p.notices.Error("could not send your message: " + err.Error())
				return ErrReported
			}
			p.notices.Success(fmt.Sprintf("message #%d sent", msg.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVar(&req.Email, "email", "", "your email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "your phone number")
	cmd.Flags().StringVar(&req.Message, "message", "", "the message")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
