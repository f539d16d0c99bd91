// ionap-cli — инструмент командной строки для ion-AP
// (Peppol-style access point для обмена электронными документами).
//
// Использование:
//
//	ionap-cli [-c FILE] [-j] [-v] <command> [args]
//
// Команды:
//
//	create_config  Создать файл конфигурации по умолчанию
//	receive        Входящие транзакции и документы
//	send           Отправить XML-документ
//	send_status    Статусы исходящих транзакций и receipts
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ionite/ionap-cli/internal/api"
	"github.com/ionite/ionap-cli/internal/cli"
	"github.com/ionite/ionap-cli/internal/config"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var cfgPath string
	var jsonOutput, verbose bool

	rootCmd := &cobra.Command{
		Use:           "ionap-cli",
		Short:         "ion-AP API client — send and receive e-invoicing documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Use the specified configuration file")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Print the raw server response body")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print the outgoing request line and headers")

	// Ошибки разбора флагов — ошибки вызова, код выхода ExitUsage.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.Usage()
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	pathFn := func() (string, error) {
		if cfgPath != "" {
			return cfgPath, nil
		}
		return config.DefaultPath()
	}

	clientFn := func() (*api.Client, *config.Config, error) {
		path, err := pathFn()
		if err != nil {
			return nil, nil, err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		client := api.NewClient(cfg.BaseURL(), cfg.APIKey)
		if verbose {
			client.SetVerbose(os.Stderr)
		}
		return client, cfg, nil
	}
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewCreateConfigCmd(pathFn, outputFn),
		cli.NewReceiveCmd(clientFn, outputFn),
		cli.NewSendCmd(clientFn, outputFn),
		cli.NewSendStatusCmd(clientFn, outputFn),
	)

	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitOK
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	// В verbose-режиме дополнительно показываем сырое тело ошибки сервера.
	var apiErr *api.Error
	if verbose && errors.As(err, &apiErr) && len(apiErr.Body) > 0 {
		fmt.Fprintln(os.Stderr, string(apiErr.Body))
	}

	return cli.ExitCode(err)
}
