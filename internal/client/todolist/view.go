package todolist

import (
	"github.com/iudanet/todosync/internal/models"
)

// VisibleTodos возвращает задачи, видимые при фильтре, в исходном порядке.
// Функция чистая: todos не изменяется, результат всегда новый срез.
func VisibleTodos(todos []models.Todo, filter models.Filter) ([]models.Todo, error) {
	statuses, err := filter.Statuses()
	if err != nil {
		return nil, err
	}

	include := make(map[models.Status]bool, len(statuses))
	for _, st := range statuses {
		include[st] = true
	}

	visible := make([]models.Todo, 0, len(todos))
	for _, todo := range todos {
		if include[todo.Status] {
			visible = append(visible, todo)
		}
	}

	return visible, nil
}

// Counts количество задач по статусам
type Counts struct {
	All       int
	Pending   int
	Completed int
}

// ForFilter возвращает количество задач, видимых при фильтре
func (c Counts) ForFilter(filter models.Filter) int {
	switch filter {
	case models.FilterPending:
		return c.Pending
	case models.FilterCompleted:
		return c.Completed
	default:
		return c.All
	}
}

// CountTodos подсчитывает задачи по статусам
func CountTodos(todos []models.Todo) Counts {
	var c Counts
	for _, todo := range todos {
		c.All++
		switch todo.Status {
		case models.StatusPending:
			c.Pending++
		case models.StatusCompleted:
			c.Completed++
		}
	}
	return c
}
