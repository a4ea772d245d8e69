package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsenadheera/portfolio/internal/contact/client"
	"github.com/tsenadheera/portfolio/internal/contact/domain"
)

var (
	contactURL string
	contactSub domain.Submission
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact message to a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if errs := contactSub.FieldErrors(); len(errs) > 0 {
			for _, f := range []string{domain.FieldName, domain.FieldEmail, domain.FieldSubject, domain.FieldMessage} {
				if msg, ok := errs[f]; ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f, msg)
				}
			}
			return fmt.Errorf("invalid message")
		}

		resp, err := client.New(contactURL, nil).Submit(cmd.Context(), contactSub)
		if err != nil {
			return fmt.Errorf("%s: %w", client.MsgNetworkError, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.Status, resp.Message)
		if !resp.Success {
			return fmt.Errorf("submission rejected")
		}
		return nil
	},
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactURL, "url", "http://localhost:3000", "server base URL")
	f.StringVar(&contactSub.Name, "name", "", "sender name")
	f.StringVar(&contactSub.Email, "email", "", "sender email")
	f.StringVar(&contactSub.Subject, "subject", "", "subject line")
	f.StringVar(&contactSub.Message, "message", "", "message body")
	rootCmd.AddCommand(contactCmd)
}
