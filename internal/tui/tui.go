package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/shoplist/internal/liststore"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) Title() string       { return fmt.Sprintf("%s : %d", i.Name, i.Quantity) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Name }

// single-line rows
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := ui.MutedStyle.Render(ui.Current().BoxUnchecked)
	text := it.Title()
	if it.Purchased {
		box = ui.SuccessStyle.Render(ui.Current().BoxChecked)
		text = ui.PurchasedStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

const (
	fieldName = iota
	fieldQuantity
)

// Model is the Bubble Tea model. All list state lives in the store; the
// bubbles list only ever holds a snapshot of it.
type Model struct {
	store *liststore.Store
	list  list.Model

	// add dialog
	adding bool
	inputs [2]textinput.Model
	focus  int

	status string
	err    error
}

func New(store *liststore.Store) Model {
	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.SetStatusBarItemName("product", "products")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	buyBind := key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "purchased"))
	delBind := key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{addBind, buyBind, delBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	name := textinput.New()
	name.Prompt = "Name     > "
	name.Placeholder = "Milk"
	name.CharLimit = 200
	qty := textinput.New()
	qty.Prompt = "Quantity > "
	qty.Placeholder = "1"
	qty.CharLimit = 9

	m := Model{store: store, list: l, inputs: [2]textinput.Model{name, qty}}
	m.refresh()
	return m
}

// Run blocks until the user quits or ctx is cancelled. The caller owns
// persistence; a cancelled context is a normal exit. opts are applied after
// the defaults, e.g. tea.WithInput to script the session.
func Run(ctx context.Context, store *liststore.Store, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(store), opts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// refresh re-reads the store and keeps the cursor in range.
func (m *Model) refresh() {
	snap := m.store.Items()
	items := make([]list.Item, 0, len(snap))
	done := 0
	for _, it := range snap {
		items = append(items, listItem{it})
		if it.Purchased {
			done++
		}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Shopping list"),
		ui.SuccessStyle.Render(ui.Current().SymDone), done,
		ui.PendingStyle.Render(ui.Current().SymPending), len(snap)-done,
		ui.AccentStyle.Render("Total"), len(snap),
	)
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it.Item, ok
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		h := ws.Height - 4
		if m.adding {
			h -= 4
		}
		m.list.SetSize(ws.Width-4, h)
		return m, nil
	}
	if m.adding {
		return m.updateAdd(msg)
	}

	// Fast typing arrives as one multi-rune message; list keys are single runes.
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyRunes && len(k.Runes) > 1 && !k.Paste {
		var next tea.Model = m
		cmds := make([]tea.Cmd, 0, len(k.Runes))
		for _, r := range k.Runes {
			var cmd tea.Cmd
			next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: k.Alt})
			cmds = append(cmds, cmd)
		}
		return next, tea.Batch(cmds...)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			if it, ok := m.selected(); ok {
				m.store.Toggle(it.ID)
				m.refresh()
			}
			return m, nil
		case "d", "delete":
			if it, ok := m.selected(); ok {
				m.store.Delete(it.ID)
				m.refresh()
				m.status = "deleted " + it.Name
			}
			return m, nil
		case "a":
			m.adding = true
			m.status, m.err = "", nil
			m.focus = fieldName
			for i := range m.inputs {
				m.inputs[i].SetValue("")
				m.inputs[i].Blur()
			}
			cmd := m.inputs[fieldName].Focus()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.closeAdd()
			return m, nil
		case "tab", "shift+tab", "up", "down":
			cmd := m.switchField()
			return m, cmd
		case "enter":
			if m.focus == fieldName {
				cmd := m.switchField()
				return m, cmd
			}
			it := m.store.Add(m.inputs[fieldName].Value(), m.inputs[fieldQuantity].Value())
			m.closeAdd()
			m.refresh()
			m.list.Select(len(m.list.Items()) - 1)
			// new products are written right away, not only on exit
			if err := m.store.Save(); err != nil {
				m.err = err
			} else {
				m.status = fmt.Sprintf("added %s : %d", it.Name, it.Quantity)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) switchField() tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *Model) closeAdd() {
	m.adding = false
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		body := "Add product to list\n" + m.inputs[fieldName].View() + "\n" + m.inputs[fieldQuantity].View()
		content += "\n" + bar.Render(body)
	}
	switch {
	case m.err != nil:
		content += "\n" + ui.ErrorStyle.Render("save: "+m.err.Error())
	case m.status != "":
		content += "\n" + ui.MutedStyle.Render(m.status)
	}
	return ui.FrameStyle.Render(content)
}
