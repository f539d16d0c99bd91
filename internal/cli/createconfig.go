package cli

import (
	"github.com/spf13/cobra"

	"github.com/ionite/ionap-cli/internal/config"
)

// NewCreateConfigCmd создаёт команду create_config.
//
// pathFn возвращает путь к файлу конфигурации с учётом глобального
// флага --config. Существующий файл никогда не перезаписывается.
func NewCreateConfigCmd(pathFn func() (string, error), outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "create_config",
		Short: "Create an initial default configuration file",
		Long: `Create a configuration file with default values.

The file holds the API key, the base API URL and the default page size.
If the file already exists it is left untouched and the command fails:
edit the file directly to change settings.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			path, err := pathFn()
			if err != nil {
				return err
			}
			if err := config.CreateDefault(path); err != nil {
				return err
			}

			out.Println("Default configuration written to " + path)
			return nil
		},
	}
}
