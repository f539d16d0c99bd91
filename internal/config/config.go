package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Имя файла конфигурации в домашнем каталоге пользователя.
const fileName = ".ionap-cli.yaml"

const (
	// DefaultAPIURL — базовый URL тестового инстанса ion-AP.
	DefaultAPIURL = "https://test.ion-ap.net/api/"

	// DefaultPageSize — количество транзакций на страницу списка по умолчанию.
	DefaultPageSize = 10

	// PlaceholderAPIKey записывается в новый файл конфигурации вместо ключа.
	PlaceholderAPIKey = "<api key>"
)

// Ошибки состояния файла конфигурации.
var (
	// ErrMissing — файл конфигурации не существует.
	ErrMissing = errors.New("configuration file does not exist")

	// ErrExists — файл конфигурации уже существует (create_config не перезаписывает).
	ErrExists = errors.New("configuration file already exists")

	// ErrNoAPIKey — ключ API не задан ни в файле, ни в окружении.
	ErrNoAPIKey = errors.New("API key not set")

	// ErrInvalid — файл конфигурации существует, но непригоден:
	// не разбирается или содержит недопустимые значения.
	ErrInvalid = errors.New("invalid configuration")
)

// Config — конфигурация клиента. Файл создаётся командой create_config
// и далее изменяется только правкой вручную.
type Config struct {
	APIKey   string `yaml:"api_key" envconfig:"IONAP_API_KEY"`
	APIURL   string `yaml:"api_url" envconfig:"IONAP_API_URL"`
	PageSize int    `yaml:"page_size" envconfig:"IONAP_PAGE_SIZE"`
}

// Default возвращает конфигурацию с значениями по умолчанию.
func Default() Config {
	return Config{
		APIKey:   PlaceholderAPIKey,
		APIURL:   DefaultAPIURL,
		PageSize: DefaultPageSize,
	}
}

// DefaultPath возвращает фиксированный путь к файлу конфигурации
// в домашнем каталоге пользователя.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, fileName), nil
}

// Load читает конфигурацию из файла по пути path и накладывает
// переменные окружения (IONAP_API_KEY, IONAP_API_URL, IONAP_PAGE_SIZE).
// Отсутствие файла — ошибка ErrMissing: сетевые команды без конфигурации не работают.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run create_config first)", ErrMissing, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalid, path, err)
	}

	// Окружение имеет приоритет над файлом.
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to process environment: %v", ErrInvalid, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate проверяет, что конфигурация пригодна для сетевых вызовов.
func (c *Config) validate() error {
	if c.APIKey == "" || c.APIKey == PlaceholderAPIKey {
		return fmt.Errorf("%w: edit the configuration file or set IONAP_API_KEY", ErrNoAPIKey)
	}
	if c.APIURL == "" {
		return fmt.Errorf("%w: api_url must not be empty", ErrInvalid)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive, got %d", ErrInvalid, c.PageSize)
	}
	return nil
}

// BaseURL возвращает api_url с гарантированным завершающим слэшем.
func (c *Config) BaseURL() string {
	if strings.HasSuffix(c.APIURL, "/") {
		return c.APIURL
	}
	return c.APIURL + "/"
}

// CreateDefault записывает файл конфигурации со значениями по умолчанию.
// Существующий файл не перезаписывается: ключ API пользователя терять нельзя.
// Файл содержит секрет, поэтому права 0600.
func CreateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s, not overwriting", ErrExists, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
