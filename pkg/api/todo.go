package api

import "time"

// Todo представляет задачу в формате API
type Todo struct {
	CreatedAt time.Time `json:"created_at"` // время создания
	UpdatedAt time.Time `json:"updated_at"` // время последнего изменения
	Body      string    `json:"body"`       // текст задачи
	Status    string    `json:"status"`     // pending или completed
	ID        int64     `json:"id"`         // идентификатор, назначенный сервером
}

// TodoListResponse представляет ответ GET /api/v1/todos
type TodoListResponse struct {
	Todos []Todo `json:"todos"` // задачи в порядке создания
}

// CreateTodoRequest представляет запрос на создание задачи
type CreateTodoRequest struct {
	Body string `json:"body" validate:"required,max=500"` // текст задачи
}

// UpdateStatusRequest представляет запрос на изменение статуса задачи
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed"` // новый статус
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // код ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Коды ошибок в ErrorResponse.Error
const (
	ErrCodeValidation   = "validation_error"
	ErrCodeNotFound     = "not_found"
	ErrCodeInternal     = "internal_error"
	ErrCodeRateLimited  = "rate_limited"
	ErrCodeUnauthorized = "unauthorized"
)
