package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/finchdev/finch"
)

// entryForm is the income or expense entry panel: a stack of text inputs
// plus a validation hint. Amount parsing at this level is what guarantees
// entries are always positive; invalid input never reaches the wire.
type entryForm struct {
	title  string
	inputs []textinput.Model
	focus  int
	hint   string
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 120
	return in
}

func newIncomeForm() entryForm {
	f := entryForm{
		title:  "Add Income",
		inputs: []textinput.Model{newInput("amount"), newInput("source")},
	}
	f.inputs[0].Focus()
	return f
}

func newExpenseForm(cats finch.CategoryIndex) entryForm {
	names := make([]string, 0, cats.Len())
	for _, c := range cats.All() {
		names = append(names, c.Name)
	}
	f := entryForm{
		title: "Add Expense",
		inputs: []textinput.Model{
			newInput("amount"),
			newInput("description"),
			newInput("category"),
		},
		hint: "categories: " + strings.Join(names, ", "),
	}
	f.inputs[0].Focus()
	return f
}

func (f *entryForm) focusCmd() tea.Cmd { return textinput.Blink }

func (f *entryForm) lastFocused() bool { return f.focus == len(f.inputs)-1 }

func (f *entryForm) focusNext() tea.Cmd { return f.setFocus((f.focus + 1) % len(f.inputs)) }

func (f *entryForm) focusPrev() tea.Cmd {
	return f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
}

func (f *entryForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

func (f entryForm) update(msg tea.Msg) (entryForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *entryForm) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

// amount parses the first input as a strictly positive decimal.
func (f *entryForm) amount() (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(f.value(0))
	if err != nil || !v.IsPositive() {
		f.hint = "amount must be a positive number"
		return decimal.Decimal{}, false
	}
	return v, true
}

// incomeValues validates and returns (amount, source).
func (f *entryForm) incomeValues() (decimal.Decimal, string, bool) {
	amount, ok := f.amount()
	if !ok {
		return decimal.Decimal{}, "", false
	}
	source := f.value(1)
	if source == "" {
		f.hint = "source must not be empty"
		return decimal.Decimal{}, "", false
	}
	return amount, source, true
}

// expenseValues validates and returns (amount, description, category id).
// The category is entered by name and must resolve in the session's set.
func (f *entryForm) expenseValues(cats finch.CategoryIndex) (decimal.Decimal, string, string, bool) {
	amount, ok := f.amount()
	if !ok {
		return decimal.Decimal{}, "", "", false
	}
	description := f.value(1)
	if description == "" {
		f.hint = "description must not be empty"
		return decimal.Decimal{}, "", "", false
	}
	cat := cats.ByName(f.value(2))
	if cat.ID == "" {
		f.hint = "unknown category " + f.value(2)
		return decimal.Decimal{}, "", "", false
	}
	return amount, description, cat.ID, true
}
