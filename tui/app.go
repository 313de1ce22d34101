// Package tui hosts the Bubble Tea program for the interactive dashboard.
//
// The program is a single logical thread: every fetch runs as a command and
// delivers its result as a message, and the model's snapshot is only ever
// replaced in Update, after all four month resources have settled.
package tui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finchdev/finch"
	"github.com/finchdev/finch/period"
)

type mode int

const (
	modeDashboard mode = iota
	modeIncomeEntry
	modeExpenseEntry
)

// Model is the state of the dashboard program.
type Model struct {
	client  *finch.Client
	session *finch.Session
	syncer  *finch.Syncer

	month   period.Month
	snap    *finch.Snapshot
	loading bool

	mode   mode
	form   entryForm
	cursor int // selected expense row

	spin   spinner.Model
	styles Styles
	width  int
	height int

	// cancels the in-flight refresh when a newer one supersedes it
	cancel context.CancelFunc
}

// snapshotMsg delivers a completed refresh.
type snapshotMsg struct {
	snap *finch.Snapshot
}

// mutatedMsg delivers the outcome of a write (add income, add expense,
// delete expense).
type mutatedMsg struct {
	kind string
	err  error
}

// New returns the initial model, viewing the current wall-clock month.
func New(client *finch.Client, session *finch.Session) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		client:  client,
		session: session,
		syncer:  finch.NewSyncer(client, session),
		month:   period.This(),
		loading: true,
		spin:    sp,
		styles:  defaultStyles(),
	}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(client *finch.Client, session *finch.Session) error {
	_, err := tea.NewProgram(New(client, session), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refresh())
}

// refresh supersedes any in-flight refresh and starts a new one for the
// displayed month. The sequence number is taken here, on the event-loop
// side, not in the command goroutine: bubbletea gives no ordering guarantee
// between command goroutines, and a late-scheduled superseded refresh must
// not number itself newest. The superseded refresh's context is cancelled
// and its eventual snapshot is dropped by the seq check in Update, so the
// latest issued refresh always wins the commit.
func (m *Model) refresh() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loading = true
	seq := m.syncer.Begin()
	syncer, month := m.syncer, m.month
	return func() tea.Msg {
		return snapshotMsg{snap: syncer.Refresh(ctx, month, seq)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case snapshotMsg:
		if msg.snap == nil || !m.syncer.Latest(msg.snap.Seq) {
			// a newer refresh is in flight; keep waiting for its snapshot
			return m, nil
		}
		m.snap = msg.snap
		m.loading = false
		if max := len(m.snap.Expenses) - 1; m.cursor > max {
			m.cursor = 0
		}
		return m, nil

	case mutatedMsg:
		if msg.err != nil {
			// failed mutations leave displayed state untouched, no refresh
			log.Printf("%s failed: %v", msg.kind, msg.err)
			return m, nil
		}
		if m.mode != modeDashboard {
			m.mode = modeDashboard
		}
		cmd := m.refresh()
		return m, tea.Batch(m.spin.Tick, cmd)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeDashboard {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.month = m.month.Prev()
		m.cursor = 0
		cmd := m.refresh()
		return m, tea.Batch(m.spin.Tick, cmd)

	case "right", "l":
		m.month = m.month.Next()
		m.cursor = 0
		cmd := m.refresh()
		return m, tea.Batch(m.spin.Tick, cmd)

	case "r":
		cmd := m.refresh()
		return m, tea.Batch(m.spin.Tick, cmd)

	case "i":
		m.mode = modeIncomeEntry
		m.form = newIncomeForm()
		return m, m.form.focusCmd()

	case "e":
		m.mode = modeExpenseEntry
		m.form = newExpenseForm(m.session.Categories)
		return m, m.form.focusCmd()

	case "j", "down":
		if m.snap != nil && m.cursor < len(m.snap.Expenses)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "d":
		return m, m.deleteSelected()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeDashboard
		return m, nil

	case "enter":
		if !m.form.lastFocused() {
			cmd := m.form.focusNext()
			return m, cmd
		}
		cmd := m.submit()
		return m, cmd

	case "tab":
		cmd := m.form.focusNext()
		return m, cmd

	case "shift+tab":
		cmd := m.form.focusPrev()
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submit validates the form and starts the write. Validation failures stay
// on the form with a hint; they never reach the wire.
func (m *Model) submit() tea.Cmd {
	switch m.mode {
	case modeIncomeEntry:
		return m.submitIncome()
	case modeExpenseEntry:
		return m.submitExpense()
	}
	return nil
}

func (m *Model) submitIncome() tea.Cmd {
	amount, source, ok := m.form.incomeValues()
	if !ok {
		return nil
	}
	in := finch.NewIncome{
		UserID: m.session.User.ID,
		Amount: amount,
		Source: source,
		Date:   finch.Now(),
	}
	m.logDateMismatch(in.Date)
	client := m.client
	return func() tea.Msg {
		_, err := client.AddIncome(context.Background(), in)
		return mutatedMsg{kind: "add income", err: err}
	}
}

func (m *Model) submitExpense() tea.Cmd {
	amount, description, categoryID, ok := m.form.expenseValues(m.session.Categories)
	if !ok {
		return nil
	}
	in := finch.NewExpense{
		UserID:      m.session.User.ID,
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		Date:        finch.Now(),
	}
	m.logDateMismatch(in.Date)
	client := m.client
	return func() tea.Msg {
		_, err := client.AddExpense(context.Background(), in)
		return mutatedMsg{kind: "add expense", err: err}
	}
}

// logDateMismatch notes when an entry stamped "now" lands in a month other
// than the displayed one: the triggered refresh will not show it.
func (m *Model) logDateMismatch(ts finch.Timestamp) {
	if !m.month.Contains(ts.Time) {
		log.Printf("entry dated %s belongs to %s, not the displayed %s",
			ts.Format("2006-01-02"), period.Of(ts.Time), m.month)
	}
}

// deleteSelected issues the DELETE for the expense under the cursor. There
// is no confirmation and no optimistic removal: the row stays until the
// triggered refresh commits.
func (m *Model) deleteSelected() tea.Cmd {
	if m.snap == nil || m.cursor >= len(m.snap.Expenses) {
		return nil
	}
	id := m.snap.Expenses[m.cursor].ID
	client := m.client
	return func() tea.Msg {
		err := client.DeleteExpense(context.Background(), id)
		return mutatedMsg{kind: "delete expense", err: err}
	}
}
