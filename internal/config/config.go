package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Duration позволяет писать длительности в TOML строкой ("10s", "720h")
type Duration time.Duration

// UnmarshalText разбирает строку через time.ParseDuration
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText форматирует длительность как time.Duration.String
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std возвращает значение как time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// loadFile накладывает TOML файл поверх cfg. Отсутствующий файл не ошибка.
// Неизвестные ключи считаются ошибкой, чтобы опечатки не терялись молча.
func loadFile(path string, cfg any) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return false, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open config: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return false, fmt.Errorf("parse config %s: %w", resolved, err)
	}

	return true, nil
}

// ParseLogLevel переводит строку уровня логирования в slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
	}
	return l, nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if trimmed == ":memory:" {
		return trimmed, nil
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// envSource читает переменные окружения с общим префиксом
type envSource struct {
	lookup func(string) (string, bool)
	prefix string
	errs   []error
}

func newEnvSource(prefix string) *envSource {
	return &envSource{prefix: prefix, lookup: os.LookupEnv}
}

func (e *envSource) get(key string) (string, bool) {
	val, ok := e.lookup(e.prefix + key)
	if !ok || strings.TrimSpace(val) == "" {
		return "", false
	}
	return strings.TrimSpace(val), true
}

func (e *envSource) setString(key string, dst *string) {
	if val, ok := e.get(key); ok {
		*dst = val
	}
}

func (e *envSource) setInt(key string, dst *int) {
	val, ok := e.get(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s%s: %w", e.prefix, key, err))
		return
	}
	*dst = n
}

func (e *envSource) setDuration(key string, dst *Duration) {
	val, ok := e.get(key)
	if !ok {
		return
	}
	if err := dst.UnmarshalText([]byte(val)); err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s%s: %w", e.prefix, key, err))
	}
}

func (e *envSource) err() error {
	return errors.Join(e.errs...)
}
