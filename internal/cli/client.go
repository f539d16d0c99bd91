package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ionite/ionap-cli/internal/api"
	"github.com/ionite/ionap-cli/internal/config"
)

// ClientFunc создаёт транспортный клиент после разбора глобальных флагов.
// Вместе с клиентом возвращается конфигурация: команды берут из неё page_size.
// Ошибка означает отсутствующую или непригодную конфигурацию.
type ClientFunc func() (*api.Client, *config.Config, error)

// OutputFunc создаёт Output после разбора глобальных флагов.
type OutputFunc func() *Output

// Подкоманды транзакций.
const (
	actionMetadata = "metadata"
	actionDocument = "document"
	actionReceipt  = "receipt"
	actionDelete   = "delete"
)

// validateTransactionID проверяет формат идентификатора локально.
// Неверный идентификатор не доходит до сети.
func validateTransactionID(id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: transaction id %q is not a valid UUID", ErrValidation, id)
	}
	return nil
}

// exactArgs — как cobra.ExactArgs, но печатает usage команды и возвращает
// ошибку вызова, которая отображается в код выхода ExitUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.Usage()
			return fmt.Errorf("%w: accepts %d arg(s), received %d", ErrUsage, n, len(args))
		}
		return nil
	}
}

// rangeArgs — как cobra.RangeArgs, с той же семантикой ошибок, что и exactArgs.
func rangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < min || len(args) > max {
			cmd.Usage()
			return fmt.Errorf("%w: accepts between %d and %d arg(s), received %d", ErrUsage, min, max, len(args))
		}
		return nil
	}
}
