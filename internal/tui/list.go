// Package tui implements a live terminal view of the task list.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duke-cli/duke/internal/config"
	"github.com/duke-cli/duke/internal/filelock"
	"github.com/duke-cli/duke/internal/store"
	"github.com/duke-cli/duke/internal/task"
	"github.com/duke-cli/duke/internal/tasklist"
)

// view represents the current screen state.
type view int

const (
	viewList view = iota
	viewConfirmDelete
	viewAddTodo
	viewFilter
)

const keyEsc = "esc"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Strikethrough(true)
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	statusBarText = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// ReloadMsg asks the model to re-read the task file.
// Sent by the file watcher when the task file changes.
type ReloadMsg struct{}

// List is the top-level bubbletea model.
type List struct {
	cfg    *config.Config
	st     *store.Store
	tasks  []*task.Task
	shown  []*task.Task // tasks after filter
	filter string
	cursor int
	view   view
	width  int
	height int
	err    error

	input textinput.Model // shared by add and filter views

	// Delete confirmation.
	deleteNumber int
	deleteDesc   string
}

// NewList creates a List model backed by the given store.
func NewList(cfg *config.Config, st *store.Store) *List {
	ti := textinput.New()
	ti.CharLimit = 120
	l := &List{cfg: cfg, st: st, input: ti}
	l.load()
	return l
}

// WatchPaths returns the directories the file watcher should monitor.
func (l *List) WatchPaths() []string {
	return []string{l.cfg.Dir()}
}

// Init implements tea.Model.
func (l *List) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (l *List) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return l.handleKey(msg)
	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		return l, nil
	case ReloadMsg:
		l.load()
		return l, nil
	}
	return l, nil
}

// View implements tea.Model.
func (l *List) View() string {
	if l.width == 0 {
		return "Loading..."
	}

	switch l.view {
	case viewConfirmDelete:
		return l.viewDeleteConfirm()
	case viewAddTodo, viewFilter:
		return l.viewWithInput()
	default:
		return l.viewList()
	}
}

func (l *List) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys.
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return l, tea.Quit
	}

	switch l.view {
	case viewList:
		return l.handleListKey(msg)
	case viewConfirmDelete:
		return l.handleDeleteKey(msg)
	case viewAddTodo, viewFilter:
		return l.handleInputKey(msg)
	}

	return l, nil
}

func (l *List) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", keyEsc:
		if l.filter != "" {
			l.filter = ""
			l.applyFilter()
			return l, nil
		}
		return l, tea.Quit
	case "j", "down":
		if l.cursor < len(l.shown)-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "g":
		l.cursor = 0
	case "G":
		l.cursor = max(0, len(l.shown)-1)
	case "x", " ":
		l.toggleSelected()
	case "d":
		l.startDelete()
	case "a":
		l.startInput(viewAddTodo, "todo description")
	case "/":
		l.startInput(viewFilter, "filter")
	case "r":
		l.load()
	}
	return l, nil
}

func (l *List) startDelete() {
	t := l.selectedTask()
	if t == nil {
		return
	}
	if !l.cfg.ConfirmDelete() {
		l.removeTask(t.Number)
		return
	}
	l.deleteNumber = t.Number
	l.deleteDesc = t.Description
	l.view = viewConfirmDelete
}

func (l *List) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		l.removeTask(l.deleteNumber)
		l.view = viewList
	case "n", "N", keyEsc, "q":
		l.view = viewList
	}
	return l, nil
}

func (l *List) startInput(v view, placeholder string) {
	l.view = v
	l.input.Placeholder = placeholder
	l.input.SetValue("")
	l.input.Focus()
}

func (l *List) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		l.view = viewList
		l.input.Blur()
		return l, nil
	case "enter":
		value := strings.TrimSpace(l.input.Value())
		if l.view == viewAddTodo {
			l.addTodo(value)
		} else {
			l.filter = value
			l.applyFilter()
		}
		l.view = viewList
		l.input.Blur()
		return l, nil
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *List) viewList() string {
	var b strings.Builder

	title := l.cfg.AssistantName() + " — " + countLabel(len(l.shown), len(l.tasks), l.filter)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(l.shown) == 0 {
		b.WriteString(statusBarText.Render("Nothing here. Press 'a' to add a todo."))
		b.WriteString("\n")
	}

	visible := max(1, l.height-5) //nolint:mnd // title, blank, status bar, error chrome
	start := 0
	if l.cursor >= visible {
		start = l.cursor - visible + 1
	}
	for i := start; i < len(l.shown) && i < start+visible; i++ {
		b.WriteString(l.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusBarText.Render("j/k move · x toggle · d delete · a add · / filter · q quit"))
	if l.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + l.err.Error()))
	}
	return b.String()
}

func (l *List) renderRow(i int) string {
	t := l.shown[i]

	check := "[ ]"
	if t.Done {
		check = "[x]"
	}
	line := fmt.Sprintf("%s #%d %s (%s)", check, t.Number, t.Description, t.Kind.Name())
	if t.Date != nil {
		line += " " + dateStyle.Render(t.Date.String())
	}
	if t.Done {
		line = doneStyle.Render(line)
	}

	if i == l.cursor {
		return cursorStyle.Render("> ") + line
	}
	return "  " + line
}

func (l *List) viewDeleteConfirm() string {
	return fmt.Sprintf("Delete task #%d %q? (y/n)\n", l.deleteNumber, l.deleteDesc)
}

func (l *List) viewWithInput() string {
	label := "Add todo"
	if l.view == viewFilter {
		label = "Filter"
	}
	return titleStyle.Render(label) + "\n\n" + l.input.View() + "\n\n" +
		statusBarText.Render("enter confirm · esc cancel")
}

func (l *List) selectedTask() *task.Task {
	if l.cursor < 0 || l.cursor >= len(l.shown) {
		return nil
	}
	return l.shown[l.cursor]
}

func (l *List) toggleSelected() {
	t := l.selectedTask()
	if t == nil {
		return
	}
	l.withLock(func() error { return l.st.SetDone(t.Number, !t.Done) })
	action := "mark"
	if t.Done {
		action = "unmark"
	}
	tasklist.LogMutation(l.cfg.Dir(), action, t.Number, t.Description)
	l.load()
}

func (l *List) removeTask(n int) {
	var desc string
	if n >= 1 && n <= len(l.tasks) {
		desc = l.tasks[n-1].Description
	}
	l.withLock(func() error { return l.st.Remove(n) })
	tasklist.LogMutation(l.cfg.Dir(), "delete", n, desc)
	l.load()
	if l.cursor >= len(l.shown) {
		l.cursor = max(0, len(l.shown)-1)
	}
}

func (l *List) addTodo(desc string) {
	if desc == "" {
		return
	}
	t := &task.Task{Kind: task.ToDo, Description: desc}
	if err := task.ValidateDescription(desc); err != nil {
		l.err = err
		return
	}
	if err := task.ValidateUnique(desc, l.tasks); err != nil {
		l.err = err
		return
	}
	l.withLock(func() error { return l.st.Append(t) })
	tasklist.LogMutation(l.cfg.Dir(), "add", len(l.tasks)+1, desc)
	l.load()
}

// withLock runs op under the duke directory lock, recording any error
// for the status line.
func (l *List) withLock(op func() error) {
	unlock, err := filelock.Lock(l.cfg.LockPath())
	if err != nil {
		l.err = err
		return
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	l.err = op()
}

func (l *List) load() {
	tasks, _, err := l.st.Load()
	if err != nil {
		l.err = err
		return
	}
	l.err = nil
	l.tasks = tasks
	l.applyFilter()
}

func (l *List) applyFilter() {
	if l.filter == "" {
		l.shown = l.tasks
	} else {
		l.shown = tasklist.Find(l.tasks, l.filter)
	}
	if l.cursor >= len(l.shown) {
		l.cursor = max(0, len(l.shown)-1)
	}
}

func countLabel(shown, total int, filter string) string {
	if filter != "" {
		return fmt.Sprintf("%d/%d tasks (filter: %s)", shown, total, filter)
	}
	return fmt.Sprintf("%d tasks", total)
}
