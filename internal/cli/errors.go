package cli

import (
	"errors"

	"github.com/ionite/ionap-cli/internal/api"
	"github.com/ionite/ionap-cli/internal/config"
)

// Локально обнаруживаемые ошибки CLI.
var (
	// ErrUsage — неверный вызов команды. До сети такой вызов не доходит.
	ErrUsage = errors.New("usage error")

	// ErrValidation — аргумент не прошёл локальную проверку
	// (например, идентификатор транзакции не является UUID).
	ErrValidation = errors.New("validation error")

	// ErrFileAccess — локальный файл документа не читается.
	ErrFileAccess = errors.New("cannot read file")
)

// Коды выхода процесса. Набор стабилен: на него можно опираться в скриптах.
const (
	// ExitOK — успех.
	ExitOK = 0

	// ExitTransport — сетевой сбой, отказ авторизации или неожиданный
	// ответ сервера.
	ExitTransport = 1

	// ExitUsage — неверный вызов: неизвестная команда, флаг или аргументы.
	ExitUsage = 2

	// ExitConfigMissing — файл конфигурации отсутствует или ключ API не задан.
	ExitConfigMissing = 3

	// ExitConfigExists — create_config отказался перезаписывать существующий файл.
	ExitConfigExists = 4

	// ExitValidation — аргумент не прошёл локальную проверку.
	ExitValidation = 5

	// ExitNotFound — сервер не знает такой транзакции.
	ExitNotFound = 6

	// ExitFileAccess — локальный файл не читается.
	ExitFileAccess = 7
)

// ExitCode отображает ошибку в код выхода процесса.
// Ошибки cobra (разбор флагов и аргументов) не несут сентинелов,
// поэтому всё неопознанное считается ошибкой вызова.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, config.ErrMissing), errors.Is(err, config.ErrNoAPIKey),
		errors.Is(err, config.ErrInvalid):
		return ExitConfigMissing
	case errors.Is(err, config.ErrExists):
		return ExitConfigExists
	case errors.Is(err, ErrValidation):
		return ExitValidation
	case errors.Is(err, api.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrFileAccess):
		return ExitFileAccess
	case errors.Is(err, api.ErrTransport):
		return ExitTransport
	default:
		return ExitUsage
	}
}
