package config

import (
	"fmt"
	"time"
)

// Server настройки HTTP сервера хранилища задач
type Server struct {
	ListenAddr  string   `toml:"listen_addr" validate:"required"`
	DBPath      string   `toml:"db_path" validate:"required"`
	TokenSecret string   `toml:"token_secret"`
	LogLevel    string   `toml:"log_level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	TokenTTL    Duration `toml:"token_ttl" validate:"gte=0"`
	RateWindow  Duration `toml:"rate_window" validate:"gt=0"`
	RateLimit   int      `toml:"rate_limit" validate:"gt=0"`
}

// DefaultServer возвращает конфигурацию сервера по умолчанию
func DefaultServer() Server {
	return Server{
		ListenAddr: ":8080",
		DBPath:     "todosync.db",
		TokenTTL:   Duration(720 * time.Hour),
		RateLimit:  120,
		RateWindow: Duration(time.Minute),
		LogLevel:   "info",
	}
}

// AuthEnabled сообщает, требуется ли bearer токен для API
func (c Server) AuthEnabled() bool {
	return c.TokenSecret != ""
}

// LoadServer читает конфигурацию сервера: defaults, затем файл path
// (пустой path или отсутствующий файл пропускаются), затем TODOSYNC_* переменные
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	if _, err := loadFile(path, &cfg); err != nil {
		return Server{}, err
	}

	env := newEnvSource("TODOSYNC_")
	cfg.applyEnv(env)
	if err := env.err(); err != nil {
		return Server{}, fmt.Errorf("environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}

	return cfg, nil
}

func (c *Server) applyEnv(env *envSource) {
	env.setString("LISTEN_ADDR", &c.ListenAddr)
	env.setString("DB_PATH", &c.DBPath)
	env.setString("TOKEN_SECRET", &c.TokenSecret)
	env.setDuration("TOKEN_TTL", &c.TokenTTL)
	env.setInt("RATE_LIMIT", &c.RateLimit)
	env.setDuration("RATE_WINDOW", &c.RateWindow)
	env.setString("LOG_LEVEL", &c.LogLevel)
}

// Validate проверяет итоговую конфигурацию и разворачивает ~ в DBPath
func (c *Server) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	dbPath, err := expandPath(c.DBPath)
	if err != nil {
		return fmt.Errorf("invalid server config: db_path: %w", err)
	}
	c.DBPath = dbPath

	return nil
}
