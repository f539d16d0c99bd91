package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewSendCmd создаёт команду отправки документа.
func NewSendCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "send FILE",
		Short: "Send an XML document as a new outgoing transaction",
		Long: `Send an XML document (or full SBDH) as a new outgoing transaction.

The file is submitted as-is; the server reports the resulting status and
the new transaction id. A reported status of "error" means the delivery
was refused, not that the request failed: the exit code is still 0.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", ErrFileAccess, err)
			}

			client, _, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			resp, err := client.SendDocument(cmd.Context(), document)
			if err != nil {
				return err
			}
			if out.JSONMode() {
				out.Raw(resp.Body)
				return nil
			}

			result, err := resp.DecodeSendResult()
			if err != nil {
				return err
			}
			out.SendResult(result)
			return nil
		},
	}
}
