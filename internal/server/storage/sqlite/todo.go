package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/todosync/internal/models"
	"github.com/iudanet/todosync/internal/server/storage"
)

const todoColumns = `id, body, status, created_at, updated_at`

var _ storage.TodoStorage = (*Storage)(nil)

// ListTodos returns todos whose status is in statuses, ordered by ID
// Empty statuses means every status
func (s *Storage) ListTodos(ctx context.Context, statuses []models.Status) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos`
	args := make([]any, 0, len(statuses))

	if len(statuses) > 0 {
		placeholders := make([]string, 0, len(statuses))
		for _, st := range statuses {
			placeholders = append(placeholders, "?")
			args = append(args, string(st))
		}
		query += ` WHERE status IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTodos(rows)
}

// CreateTodo stores a new pending todo and returns it with the assigned ID
func (s *Storage) CreateTodo(ctx context.Context, body string) (*models.Todo, error) {
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (body, status, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		body,
		string(models.StatusPending),
		now.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	return &models.Todo{
		ID:        id,
		Body:      body,
		Status:    models.StatusPending,
		CreatedAt: unixMilliToTime(now.UnixMilli()),
		UpdatedAt: unixMilliToTime(now.UnixMilli()),
	}, nil
}

// GetTodo retrieves a todo by ID
// Returns storage.ErrTodoNotFound if todo doesn't exist
func (s *Storage) GetTodo(ctx context.Context, id int64) (*models.Todo, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)

	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// UpdateTodoStatus sets the status of a todo and returns the updated todo
// Returns storage.ErrTodoNotFound if todo doesn't exist
func (s *Storage) UpdateTodoStatus(ctx context.Context, id int64, status models.Status) (*models.Todo, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, string(status))
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE todos SET status = ?, updated_at = ? WHERE id = ?`,
		string(status),
		time.Now().UTC().UnixMilli(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, storage.ErrTodoNotFound
	}

	return s.GetTodo(ctx, id)
}

// DeleteTodo removes a todo permanently
// Returns storage.ErrTodoNotFound if todo doesn't exist
func (s *Storage) DeleteTodo(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrTodoNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	todo := &models.Todo{}
	var status string
	var createdAt, updatedAt int64

	if err := row.Scan(&todo.ID, &todo.Body, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	todo.Status = models.Status(status)
	todo.CreatedAt = unixMilliToTime(createdAt)
	todo.UpdatedAt = unixMilliToTime(updatedAt)

	return todo, nil
}

func scanTodos(rows *sql.Rows) ([]*models.Todo, error) {
	todos := make([]*models.Todo, 0)

	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return todos, nil
}

func unixMilliToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
