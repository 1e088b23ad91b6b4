package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/todosync/internal/models"
)

const (
	// MaxBodyLen максимальная длина текста задачи в символах
	MaxBodyLen = 500
)

// NormalizeBody обрезает пробельные символы по краям текста задачи
func NormalizeBody(body string) string {
	return strings.TrimSpace(body)
}

// ValidateBody проверяет текст задачи и возвращает нормализованное значение.
// Пустой текст или текст только из пробелов отклоняется с models.ErrValidation.
func ValidateBody(body string) (string, error) {
	normalized := NormalizeBody(body)

	if normalized == "" {
		return "", fmt.Errorf("%w: body cannot be empty", models.ErrValidation)
	}

	if utf8.RuneCountInString(normalized) > MaxBodyLen {
		return "", fmt.Errorf("%w: body must not exceed %d characters", models.ErrValidation, MaxBodyLen)
	}

	return normalized, nil
}
