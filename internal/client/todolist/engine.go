package todolist

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/todosync/internal/models"
	"github.com/iudanet/todosync/internal/validation"
)

// Snapshot подтвержденное хранилищем состояние списка.
// Snapshot никогда не изменяется на месте, движок заменяет его целиком.
type Snapshot struct {
	RefreshedAt time.Time
	Todos       []models.Todo
	Version     uint64 // увеличивается при каждой замене
}

// Engine держит локальный snapshot списка и применяет изменения через RemoteStore.
//
// После каждого успешного изменения движок заново запрашивает весь список
// и заменяет snapshot результатом. Изменения не сериализуются: несколько
// могут выполняться одновременно, и snapshot определяет последний
// завершившийся запрос списка, даже если он был начат раньше другого.
type Engine struct {
	snapshot       *Snapshot
	lastRefreshErr error
	remote         RemoteStore
	logger         *slog.Logger
	observer       Observer
	now            func() time.Time
	busy           map[MutationKind]int
	subscribers    map[chan struct{}]struct{}
	statuses       []models.Status
	loading        int
	mu             sync.RWMutex
}

// Option настраивает Engine
type Option func(*Engine)

// WithObserver задает наблюдателя за состояниями изменений
func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// WithStatuses задает набор статусов, которые движок запрашивает у хранилища.
// По умолчанию запрашиваются все статусы.
func WithStatuses(statuses []models.Status) Option {
	return func(e *Engine) {
		e.statuses = append([]models.Status(nil), statuses...)
	}
}

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine создает движок с пустым snapshot. Для начальной загрузки вызовите Refresh.
func NewEngine(remote RemoteStore, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		remote:      remote,
		logger:      logger,
		now:         time.Now,
		snapshot:    &Snapshot{Todos: []models.Todo{}},
		busy:        make(map[MutationKind]int),
		subscribers: make(map[chan struct{}]struct{}),
		statuses:    append([]models.Status(nil), models.AllStatuses...),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Refresh запрашивает список у хранилища и заменяет snapshot.
// При ошибке snapshot не меняется, ошибка возвращается вызывающему.
func (e *Engine) Refresh(ctx context.Context) error {
	err := e.refetch(ctx)
	if err != nil {
		e.logger.Warn("Refresh failed", "error", err)
	}
	return err
}

// CreateTodo создает задачу с текстом body.
// Пустой после trim текст отклоняется с models.ErrValidation без обращения к хранилищу.
func (e *Engine) CreateTodo(ctx context.Context, body string) error {
	normalized, err := validation.ValidateBody(body)
	if err != nil {
		e.emit(Mutation{Kind: KindCreate, State: StateFailed, Err: err})
		return err
	}

	return e.mutate(ctx, KindCreate, 0, func(ctx context.Context) error {
		todo, err := e.remote.Create(ctx, normalized)
		if err == nil && todo != nil {
			e.logger.Debug("Todo created", "todo_id", todo.ID)
		}
		return err
	})
}

// SetStatus отмечает задачу выполненной (completed=true) или невыполненной
func (e *Engine) SetStatus(ctx context.Context, id int64, completed bool) error {
	status := models.StatusFromCompleted(completed)

	return e.mutate(ctx, KindUpdate, id, func(ctx context.Context) error {
		_, err := e.remote.UpdateStatus(ctx, id, status)
		return err
	})
}

// DeleteTodo удаляет задачу
func (e *Engine) DeleteTodo(ctx context.Context, id int64) error {
	return e.mutate(ctx, KindDelete, id, func(ctx context.Context) error {
		return e.remote.Delete(ctx, id)
	})
}

// mutate выполняет запись в хранилище и, при успехе, перезапрашивает список.
// Ошибка повторного запроса не делает изменение неуспешным: запись уже
// подтверждена хранилищем. Она сохраняется в LastRefreshError.
func (e *Engine) mutate(ctx context.Context, kind MutationKind, id int64, write func(context.Context) error) error {
	e.begin(kind)
	e.emit(Mutation{Kind: kind, State: StateInFlight, TodoID: id})

	if err := write(ctx); err != nil {
		e.end(kind)
		e.logger.Warn("Mutation failed",
			"kind", string(kind),
			"todo_id", id,
			"error", err)
		e.emit(Mutation{Kind: kind, State: StateFailed, TodoID: id, Err: err})
		return err
	}

	if err := e.refetch(ctx); err != nil {
		e.logger.Error("Refetch after mutation failed, snapshot kept",
			"kind", string(kind),
			"todo_id", id,
			"error", err)
	}

	e.end(kind)
	e.emit(Mutation{Kind: kind, State: StateCommitted, TodoID: id})
	return nil
}

// refetch запрашивает список и заменяет snapshot целиком
func (e *Engine) refetch(ctx context.Context) error {
	e.mu.Lock()
	e.loading++
	statuses := append([]models.Status(nil), e.statuses...)
	e.mu.Unlock()
	e.notify()

	todos, err := e.remote.FetchAll(ctx, statuses)

	e.mu.Lock()
	e.loading--
	if err != nil {
		e.lastRefreshErr = err
	} else {
		if todos == nil {
			todos = []models.Todo{}
		}
		e.snapshot = &Snapshot{
			Todos:       todos,
			Version:     e.snapshot.Version + 1,
			RefreshedAt: e.now(),
		}
		e.lastRefreshErr = nil
	}
	e.mu.Unlock()
	e.notify()

	return err
}

func (e *Engine) begin(kind MutationKind) {
	e.mu.Lock()
	e.busy[kind]++
	e.mu.Unlock()
	e.notify()
}

func (e *Engine) end(kind MutationKind) {
	e.mu.Lock()
	e.busy[kind]--
	e.mu.Unlock()
	e.notify()
}

func (e *Engine) emit(m Mutation) {
	if e.observer != nil {
		e.observer(m)
	}
}

// Visible возвращает задачи текущего snapshot, видимые при фильтре
func (e *Engine) Visible(filter models.Filter) ([]models.Todo, error) {
	return VisibleTodos(e.current().Todos, filter)
}

// Counts возвращает количество задач текущего snapshot по статусам
func (e *Engine) Counts() Counts {
	return CountTodos(e.current().Todos)
}

// Snapshot возвращает копию текущего snapshot
func (e *Engine) Snapshot() Snapshot {
	s := e.current()
	todos := make([]models.Todo, len(s.Todos))
	copy(todos, s.Todos)
	return Snapshot{
		Todos:       todos,
		Version:     s.Version,
		RefreshedAt: s.RefreshedAt,
	}
}

func (e *Engine) current() *Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot
}

// Busy сообщает, выполняется ли сейчас хотя бы одно изменение вида kind
func (e *Engine) Busy(kind MutationKind) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.busy[kind] > 0
}

// Loading сообщает, выполняется ли сейчас запрос списка
func (e *Engine) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loading > 0
}

// LastRefreshError возвращает ошибку последнего запроса списка или nil,
// если последний запрос был успешным
func (e *Engine) LastRefreshError() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastRefreshErr
}

// Subscribe возвращает канал, в который приходит сигнал после каждой замены
// snapshot или изменения Busy/Loading. Сигналы объединяются: канал буферизован
// на одно значение. cancel отписывает и закрывает канал.
func (e *Engine) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	e.mu.Lock()
	e.subscribers[ch] = struct{}{}
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subscribers, ch)
			e.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

func (e *Engine) notify() {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for ch := range e.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// IsValidation сообщает, что ошибка вызвана некорректным вводом
func IsValidation(err error) bool {
	return errors.Is(err, models.ErrValidation)
}

// IsNotFound сообщает, что хранилище не нашло задачу
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

// IsRemoteUnavailable сообщает о сбое транспорта или сервера
func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, models.ErrRemoteUnavailable)
}
