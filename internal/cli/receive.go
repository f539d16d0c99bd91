package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewReceiveCmd создаёт команду для входящих транзакций.
//
// Без аргументов — список последних входящих транзакций, новые первыми.
// С идентификатором — операция над одной транзакцией; без подкоманды
// показываются конвертные данные (metadata).
func NewReceiveCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var offset, limit int

	cmd := &cobra.Command{
		Use:   "receive [ID [metadata|document|delete]]",
		Short: "View and retrieve incoming transactions and documents",
		Long: `View and retrieve the status and details of incoming transactions.

Without arguments, lists the most recent incoming transactions.
With a transaction ID, operates on a single transaction:

  metadata  Show the envelope data of the transaction (default)
  document  Print the received XML document unchanged
  delete    Delete the transaction on the server`,
		Args: rangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()
			ctx := cmd.Context()

			if len(args) == 0 {
				if limit <= 0 {
					limit = cfg.PageSize
				}
				resp, err := client.ReceiveList(ctx, offset, limit)
				if err != nil {
					return err
				}
				if out.JSONMode() {
					out.Raw(resp.Body)
					return nil
				}
				list, err := resp.DecodeList()
				if err != nil {
					return err
				}
				out.List(list)
				return nil
			}

			id := args[0]
			if err := validateTransactionID(id); err != nil {
				return err
			}

			action := actionMetadata
			if len(args) == 2 {
				action = args[1]
			}

			switch action {
			case actionMetadata:
				resp, err := client.ReceiveMetadata(ctx, id)
				if err != nil {
					return err
				}
				if out.JSONMode() {
					out.Raw(resp.Body)
					return nil
				}
				detail, err := resp.DecodeDetail()
				if err != nil {
					return err
				}
				out.Detail(detail)

			case actionDocument:
				resp, err := client.ReceiveDocument(ctx, id)
				if err != nil {
					return err
				}
				// Документ печатается байт в байт в обоих режимах.
				out.Raw(resp.Body)

			case actionDelete:
				if _, err := client.ReceiveDelete(ctx, id); err != nil {
					return err
				}
				out.Success("Transaction deleted: " + id)

			default:
				cmd.Usage()
				return fmt.Errorf("%w: unknown subcommand %q for receive", ErrUsage, action)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "Offset of the first transaction when listing")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Number of transactions to list (default: page_size from config)")

	return cmd
}
