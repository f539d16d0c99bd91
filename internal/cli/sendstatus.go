package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSendStatusCmd создаёт команду для статусов исходящих транзакций.
//
// Без аргументов — список последних исходящих транзакций, новые первыми.
// С идентификатором — детали одной транзакции, её receipt или удаление.
func NewSendStatusCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var offset, limit int

	cmd := &cobra.Command{
		Use:   "send_status [ID [receipt|delete]]",
		Short: "View and retrieve the status of outgoing transactions",
		Long: `View and retrieve the status and details of outgoing transactions.

Without arguments, lists the most recent outgoing transactions.
With a transaction ID, operates on a single transaction:

  (none)   Show the status details of the transaction
  receipt  Print the delivery receipt unchanged
  delete   Delete the transaction record on the server`,
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
				resp, err := client.SendStatusList(ctx, offset, limit)
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

			if len(args) == 1 {
				resp, err := client.SendStatus(ctx, id)
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
				return nil
			}

			switch args[1] {
			case actionReceipt:
				resp, err := client.SendReceipt(ctx, id)
				if err != nil {
					return err
				}
				// Receipt печатается байт в байт в обоих режимах.
				out.Raw(resp.Body)

			case actionDelete:
				if _, err := client.SendStatusDelete(ctx, id); err != nil {
					return err
				}
				out.Success("Transaction deleted: " + id)

			default:
				cmd.Usage()
				return fmt.Errorf("%w: unknown subcommand %q for send_status", ErrUsage, args[1])
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "Offset of the first transaction when listing")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Number of transactions to list (default: page_size from config)")

	return cmd
}
