package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iudanet/todosync/internal/client/storage"
	"github.com/iudanet/todosync/internal/client/todolist"
	"github.com/iudanet/todosync/internal/models"
	"github.com/iudanet/todosync/internal/validation"
)

var filterTitles = map[models.Filter]string{
	models.FilterAll:       "All",
	models.FilterPending:   "Pending",
	models.FilterCompleted: "Completed",
}

// Model модель интерактивного режима.
// Список и чекбоксы всегда строятся из snapshot движка, а не из нажатых клавиш.
type Model struct {
	ctx      context.Context
	engine   *todolist.Engine
	prefs    storage.PreferenceStorage
	logger   *slog.Logger
	updates  <-chan struct{}
	keys     keyMap
	help     help.Model
	input    textinput.Model
	spinner  spinner.Model
	filter   models.Filter
	errMsg   string
	todos    []models.Todo
	counts   todolist.Counts
	cursor   int
	editing  bool
	creating bool
}

// New создает модель. updates канал подписки движка, может быть nil.
func New(
	ctx context.Context,
	engine *todolist.Engine,
	prefs storage.PreferenceStorage,
	logger *slog.Logger,
	filter models.Filter,
	updates <-chan struct{},
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = validation.MaxBodyLen

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		engine:  engine,
		prefs:   prefs,
		logger:  logger,
		updates: updates,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   ti,
		spinner: sp,
		filter:  filter,
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		refreshCmd(m.ctx, m.engine),
		waitForChange(m.updates),
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case changedMsg:
		m.reload()
		return m, waitForChange(m.updates)

	case refreshedMsg:
		m.reload()
		if msg.err != nil {
			m.errMsg = "refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m, saveRefreshCmd(m.ctx, m.prefs, m.logger, m.engine)

	case mutationMsg:
		return m.handleMutation(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	m.reload()
	if msg.kind == todolist.KindCreate {
		m.creating = false
	}

	if msg.err != nil {
		m.errMsg = describeError(msg)
		return m, nil
	}

	// Текст очищается только после подтверждения хранилищем
	if msg.kind == todolist.KindCreate {
		m.input.Reset()
	}

	if err := m.engine.LastRefreshError(); err != nil {
		m.errMsg = "list may be stale: " + err.Error()
		return m, nil
	}
	m.errMsg = ""
	return m, saveRefreshCmd(m.ctx, m.prefs, m.logger, m.engine)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NextFilter):
		return m.setFilter(nextFilter(m.filter))
	}

	// Пока задача создается, поле ввода заблокировано
	if m.createBusy() {
		return m, nil
	}

	if key.Matches(msg, m.keys.Submit) {
		m.creating = true
		m.errMsg = ""
		return m, createCmd(m.ctx, m.engine, m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextFilter):
		return m.setFilter(nextFilter(m.filter))
	case key.Matches(msg, m.keys.All):
		return m.setFilter(models.FilterAll)
	case key.Matches(msg, m.keys.Pending):
		return m.setFilter(models.FilterPending)
	case key.Matches(msg, m.keys.Completed):
		return m.setFilter(models.FilterCompleted)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.todos)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			return m, setStatusCmd(m.ctx, m.engine, t.ID, !t.IsCompleted())
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			return m, deleteCmd(m.ctx, m.engine, t.ID)
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, refreshCmd(m.ctx, m.engine)
	case key.Matches(msg, m.keys.Add):
		m.editing = true
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) setFilter(filter models.Filter) (tea.Model, tea.Cmd) {
	if filter == m.filter {
		return m, nil
	}
	m.filter = filter
	m.cursor = 0
	m.reload()
	return m, saveFilterCmd(m.ctx, m.prefs, m.logger, filter)
}

// reload перечитывает видимые задачи из текущего snapshot
func (m *Model) reload() {
	todos, err := m.engine.Visible(m.filter)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.todos = todos
	m.counts = m.engine.Counts()
	if m.cursor >= len(m.todos) {
		m.cursor = max(len(m.todos)-1, 0)
	}
}

func (m Model) selected() (models.Todo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.todos) {
		return models.Todo{}, false
	}
	return m.todos[m.cursor], true
}

func (m Model) createBusy() bool {
	return m.creating || m.engine.Busy(todolist.KindCreate)
}

func (m Model) syncing() bool {
	return m.engine.Loading() ||
		m.engine.Busy(todolist.KindCreate) ||
		m.engine.Busy(todolist.KindUpdate) ||
		m.engine.Busy(todolist.KindDelete)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if len(m.todos) == 0 {
		b.WriteString(mutedStyle.Render("No todos."))
		b.WriteString("\n")
	}
	for i, t := range m.todos {
		box := pendingStyle.Render(boxUnchecked)
		text := t.Body
		if t.IsCompleted() {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		prefix := "  "
		if i == m.cursor && !m.editing {
			prefix = selectedStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, box, text)
	}

	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")

	if m.syncing() {
		b.WriteString(m.spinner.View() + mutedStyle.Render(" syncing..."))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("✖ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editing {
		b.WriteString(m.help.View(inputHelp{keys: m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return panelStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(models.AllFilters))
	for _, f := range models.AllFilters {
		label := fmt.Sprintf("%s (%d)", filterTitles[f], m.counts.ForFilter(f))
		if f == m.filter {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return titleStyle.Render("Todos") + "   " + strings.Join(tabs, "  ")
}

func (m Model) renderInput() string {
	switch {
	case m.createBusy():
		return mutedStyle.Render("adding: " + m.input.Value())
	case m.editing:
		return m.input.View()
	default:
		return mutedStyle.Render("press a to add a todo")
	}
}

func nextFilter(f models.Filter) models.Filter {
	for i, candidate := range models.AllFilters {
		if candidate == f {
			return models.AllFilters[(i+1)%len(models.AllFilters)]
		}
	}
	return models.FilterAll
}

func describeError(msg mutationMsg) string {
	switch {
	case todolist.IsValidation(msg.err):
		return msg.err.Error()
	case todolist.IsNotFound(msg.err):
		return fmt.Sprintf("todo %d no longer exists", msg.id)
	case todolist.IsRemoteUnavailable(msg.err):
		return fmt.Sprintf("%s failed: server unavailable", msg.kind)
	default:
		return fmt.Sprintf("%s failed: %v", msg.kind, msg.err)
	}
}
