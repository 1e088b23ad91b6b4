package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/todosync/internal/models"
	"github.com/iudanet/todosync/internal/server/storage"
	"github.com/iudanet/todosync/internal/validation"
	"github.com/iudanet/todosync/pkg/api"
)

// TodoHandler обрабатывает CRUD запросы к списку задач
type TodoHandler struct {
	logger  *slog.Logger
	storage storage.TodoStorage
}

// NewTodoHandler создает новый handler для задач
func NewTodoHandler(logger *slog.Logger, storage storage.TodoStorage) *TodoHandler {
	return &TodoHandler{
		logger:  logger,
		storage: storage,
	}
}

// List обрабатывает GET /api/v1/todos?status=pending&status=completed
// Без параметра status возвращает задачи во всех статусах
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query()["status"]
	statuses := make([]models.Status, 0, len(raw))
	for _, value := range raw {
		status, err := models.ParseStatus(value)
		if err != nil {
			h.logger.WarnContext(ctx, "invalid status filter", slog.String("status", value))
			sendError(h.logger, w, api.ErrCodeValidation, err.Error(), http.StatusBadRequest)
			return
		}
		statuses = append(statuses, status)
	}

	todos, err := h.storage.ListTodos(ctx, statuses)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list todos", slog.Any("error", err))
		sendError(h.logger, w, api.ErrCodeInternal, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.TodoListResponse{Todos: make([]api.Todo, 0, len(todos))}
	for _, todo := range todos {
		resp.Todos = append(resp.Todos, toAPITodo(todo))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create request", slog.Any("error", err))
		sendError(h.logger, w, api.ErrCodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}

	// Текст обрезается до проверки тегов: " " не должен пройти required
	req.Body = validation.NormalizeBody(req.Body)
	if err := validateRequest(req); err != nil {
		sendError(h.logger, w, api.ErrCodeValidation, err.Error(), http.StatusBadRequest)
		return
	}
	body, err := validation.ValidateBody(req.Body)
	if err != nil {
		sendError(h.logger, w, api.ErrCodeValidation, err.Error(), http.StatusBadRequest)
		return
	}

	todo, err := h.storage.CreateTodo(ctx, body)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create todo", slog.Any("error", err))
		sendError(h.logger, w, api.ErrCodeInternal, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "todo created", slog.Int64("todo_id", todo.ID))
	sendJSON(h.logger, w, toAPITodo(todo), http.StatusCreated)
}

// UpdateStatus обрабатывает PUT /api/v1/todos/{id}/status
func (h *TodoHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req api.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode status request", slog.Any("error", err))
		sendError(h.logger, w, api.ErrCodeValidation, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateRequest(req); err != nil {
		sendError(h.logger, w, api.ErrCodeValidation, err.Error(), http.StatusBadRequest)
		return
	}

	todo, err := h.storage.UpdateTodoStatus(ctx, id, models.Status(req.Status))
	if err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			sendError(h.logger, w, api.ErrCodeNotFound, "todo not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update todo status", slog.Int64("todo_id", id), slog.Any("error", err))
		sendError(h.logger, w, api.ErrCodeInternal, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "todo status updated",
		slog.Int64("todo_id", todo.ID),
		slog.String("status", string(todo.Status)))
	sendJSON(h.logger, w, toAPITodo(todo), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeleteTodo(ctx, id); err != nil {
		if errors.Is(err, storage.ErrTodoNotFound) {
			sendError(h.logger, w, api.ErrCodeNotFound, "todo not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete todo", slog.Int64("todo_id", id), slog.Any("error", err))
		sendError(h.logger, w, api.ErrCodeInternal, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "todo deleted", slog.Int64("todo_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// parseID извлекает {id} из пути; при ошибке сам пишет ответ 400
func (h *TodoHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.logger.WarnContext(r.Context(), "invalid todo id", slog.String("id", raw))
		sendError(h.logger, w, api.ErrCodeValidation, "invalid todo id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func toAPITodo(todo *models.Todo) api.Todo {
	return api.Todo{
		ID:        todo.ID,
		Body:      todo.Body,
		Status:    string(todo.Status),
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
}
