package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/iudanet/todosync/internal/models"
	"github.com/iudanet/todosync/pkg/api"
)

const todosPath = "/api/v1/todos"

// Options настройки API клиента
type Options struct {
	Logger *slog.Logger

	// Token bearer токен; пустой означает запросы без Authorization
	Token string

	// Timeout таймаут одного HTTP запроса
	Timeout time.Duration

	// BreakerFailures число подряд идущих сбоев транспорта, после которого
	// breaker размыкается и запросы сразу завершаются ErrRemoteUnavailable
	BreakerFailures uint32

	// BreakerCooldown время в разомкнутом состоянии до пробного запроса
	BreakerCooldown time.Duration
}

// Client представляет HTTP клиент удаленного хранилища задач
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts Options) *Client {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = 5
	}
	if opts.BreakerCooldown <= 0 {
		opts.BreakerCooldown = 30 * time.Second
	}

	logger := opts.Logger
	failures := opts.BreakerFailures

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   opts.Token,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "todosync-remote",
			MaxRequests: 1,
			Timeout:     opts.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			// NotFound и ValidationError говорят о живом сервере
			IsSuccessful: func(err error) bool {
				return err == nil || !errors.Is(err, models.ErrRemoteUnavailable)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String())
			},
		}),
	}
}

// FetchAll возвращает задачи со статусами из statuses в порядке создания
func (c *Client) FetchAll(ctx context.Context, statuses []models.Status) ([]models.Todo, error) {
	path := todosPath
	if len(statuses) > 0 {
		query := url.Values{}
		for _, status := range statuses {
			query.Add("status", string(status))
		}
		path += "?" + query.Encode()
	}

	var resp api.TodoListResponse
	if err := c.execute(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch todos: %w", err)
	}

	todos := make([]models.Todo, 0, len(resp.Todos))
	for _, t := range resp.Todos {
		todo, err := fromAPITodo(t)
		if err != nil {
			return nil, fmt.Errorf("fetch todos: %w", err)
		}
		todos = append(todos, todo)
	}

	return todos, nil
}

// Create создает задачу и возвращает ее с назначенным сервером ID
func (c *Client) Create(ctx context.Context, body string) (*models.Todo, error) {
	var resp api.Todo
	if err := c.execute(ctx, http.MethodPost, todosPath, api.CreateTodoRequest{Body: body}, &resp); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	todo, err := fromAPITodo(resp)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return &todo, nil
}

// UpdateStatus меняет статус задачи и возвращает обновленную задачу
func (c *Client) UpdateStatus(ctx context.Context, id int64, status models.Status) (*models.Todo, error) {
	path := todosPath + "/" + strconv.FormatInt(id, 10) + "/status"

	var resp api.Todo
	if err := c.execute(ctx, http.MethodPut, path, api.UpdateStatusRequest{Status: string(status)}, &resp); err != nil {
		return nil, fmt.Errorf("update todo %d: %w", id, err)
	}

	todo, err := fromAPITodo(resp)
	if err != nil {
		return nil, fmt.Errorf("update todo %d: %w", id, err)
	}
	return &todo, nil
}

// Delete удаляет задачу
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := todosPath + "/" + strconv.FormatInt(id, 10)

	if err := c.execute(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	return nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.execute(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	return &resp, nil
}

// execute пропускает запрос через circuit breaker
func (c *Client) execute(ctx context.Context, method, path string, body, result any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.doRequest(ctx, method, path, body, result)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", models.ErrRemoteUnavailable, err)
	}
	return err
}

// doRequest выполняет HTTP запрос и классифицирует ошибку
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err)
		return fmt.Errorf("%w: %w", models.ErrRemoteUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", models.ErrRemoteUnavailable, err)
	}

	c.logger.Debug("Request completed",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyStatus(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %w", models.ErrRemoteUnavailable, err)
		}
	}

	return nil
}

// classifyStatus переводит HTTP статус в доменную ошибку
func classifyStatus(statusCode int, body []byte) error {
	message := strings.TrimSpace(string(body))
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
	}

	var kind error
	switch {
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity:
		kind = models.ErrValidation
	case statusCode == http.StatusNotFound:
		kind = models.ErrNotFound
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		kind = fmt.Errorf("%w: unauthorized", models.ErrRemoteUnavailable)
	default:
		kind = models.ErrRemoteUnavailable
	}

	if message == "" {
		return fmt.Errorf("%w (status %d)", kind, statusCode)
	}
	return fmt.Errorf("%w (status %d): %s", kind, statusCode, message)
}

func fromAPITodo(t api.Todo) (models.Todo, error) {
	status, err := models.ParseStatus(t.Status)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: todo %d: %w", models.ErrRemoteUnavailable, t.ID, err)
	}

	return models.Todo{
		ID:        t.ID,
		Body:      t.Body,
		Status:    status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}, nil
}
