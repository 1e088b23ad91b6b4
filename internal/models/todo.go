package models

import "time"

// Todo представляет элемент списка дел.
// Идентификатор назначается удалённым хранилищем и никогда не переиспользуется.
type Todo struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время создания на сервере
	UpdatedAt time.Time `json:"updated_at"` // UpdatedAt время последнего изменения статуса
	Body      string    `json:"body"`       // Body текст задачи (непустой после trim)
	Status    Status    `json:"status"`     // Status текущий статус: pending или completed
	ID        int64     `json:"id"`         // ID идентификатор, назначенный сервером
}

// IsCompleted возвращает true, если задача выполнена
func (t Todo) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Clone создает копию задачи
func (t *Todo) Clone() *Todo {
	c := *t
	return &c
}
