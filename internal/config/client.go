package config

import (
	"fmt"
	"time"
)

// DefaultClientConfigPath путь к файлу конфигурации клиента по умолчанию
const DefaultClientConfigPath = "~/.config/todosync/client.toml"

// Client настройки CLI/TUI клиента
type Client struct {
	ServerURL       string   `toml:"server_url" validate:"required,url"`
	DBPath          string   `toml:"db_path" validate:"required"`
	Token           string   `toml:"token"`
	LogLevel        string   `toml:"log_level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	RequestTimeout  Duration `toml:"request_timeout" validate:"gt=0"`
	BreakerFailures int      `toml:"breaker_failures" validate:"gt=0"`
}

// DefaultClient возвращает конфигурацию клиента по умолчанию
func DefaultClient() Client {
	return Client{
		ServerURL:       "http://localhost:8080",
		DBPath:          "~/.local/share/todosync/client.db",
		RequestTimeout:  Duration(10 * time.Second),
		BreakerFailures: 5,
		LogLevel:        "warn",
	}
}

// LoadClient читает конфигурацию клиента: defaults, затем файл path
// (пустой path означает DefaultClientConfigPath), затем TODOSYNC_CLIENT_* переменные
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()

	if path == "" {
		path = DefaultClientConfigPath
	}
	if _, err := loadFile(path, &cfg); err != nil {
		return Client{}, err
	}

	env := newEnvSource("TODOSYNC_CLIENT_")
	cfg.applyEnv(env)
	if err := env.err(); err != nil {
		return Client{}, fmt.Errorf("environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Client{}, err
	}

	return cfg, nil
}

func (c *Client) applyEnv(env *envSource) {
	env.setString("SERVER_URL", &c.ServerURL)
	env.setString("DB_PATH", &c.DBPath)
	env.setString("TOKEN", &c.Token)
	env.setDuration("REQUEST_TIMEOUT", &c.RequestTimeout)
	env.setInt("BREAKER_FAILURES", &c.BreakerFailures)
	env.setString("LOG_LEVEL", &c.LogLevel)
}

// Validate проверяет итоговую конфигурацию и разворачивает ~ в DBPath
func (c *Client) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}

	dbPath, err := expandPath(c.DBPath)
	if err != nil {
		return fmt.Errorf("invalid client config: db_path: %w", err)
	}
	c.DBPath = dbPath

	return nil
}
