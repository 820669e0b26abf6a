package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/host"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/state"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))
	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)
	stackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 2).
			MarginTop(1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			MarginTop(1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// model is the bubbletea front end. It is also the navigation listener, so
// status text follows every completed step.
type model struct {
	nav    *fragnav.Controller
	host   *host.Memory
	tabs   []string
	tr     *translator
	logger *slog.Logger

	status  string
	counter int
}

func newModel(h *host.Memory, tabs []string, start int, tr *translator, codec state.Codec, saved []byte) (*model, error) {
	m := &model{
		host:   h,
		tabs:   tabs,
		tr:     tr,
		logger: fragnav.GetLogger().With("component", "demo"),
	}

	roots := fragnav.RootFunc(func(i int) host.View {
		if i < 0 || i >= len(tabs) {
			return nil
		}
		return &screen{kind: tabs[i], title: tr.tabLabel(tabs[i])}
	})

	nav, err := fragnav.NewWithProvider(h, roots, len(tabs), start, fragnav.Options{
		SavedState: saved,
		Codec:      codec,
		Listener:   m,
		Transition: host.TransitionFade,
	})
	if err != nil {
		return nil, err
	}
	m.nav = nav

	if nav.Restored() {
		m.status = tr.T("state_restored", nil)
	}
	return m, nil
}

func (m *model) OnTabChanged(view host.View, index int) {
	m.status = m.tr.T("tab_changed", map[string]any{"Tab": m.tr.tabLabel(m.tabs[index])})
}

func (m *model) OnViewChanged(view host.View) {
	m.status = m.tr.T("view_changed", map[string]any{"View": fmt.Sprint(view)})
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var err error
	switch s := key.String(); s {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.counter++
		err = m.nav.Push(newDetail(m.counter))
	case "backspace":
		if !m.nav.CanPop() {
			m.status = m.tr.T("pop_blocked", map[string]any{"Tab": m.currentTabLabel()})
			return m, nil
		}
		err = m.nav.Pop()
	case "c":
		err = m.nav.ClearStack()
	case "r":
		m.counter++
		err = m.nav.Replace(newEdit(m.counter))
	case "d":
		m.nav.ShowDialog(newDialog())
		m.status = m.tr.T("dialog_shown", nil)
	case "x":
		m.nav.ClearDialog()
		m.status = m.tr.T("dialog_cleared", nil)
	default:
		if n, convErr := strconv.Atoi(s); convErr == nil && n >= 1 && n <= m.nav.Size() {
			err = m.nav.SwitchTab(n - 1)
		}
	}

	if err != nil {
		m.logger.Error("navigation failed", "key", key.String(), "error", err)
		m.status = m.tr.T("nav_error", map[string]any{"Error": err.Error()})
	}
	return m, nil
}

func (m *model) currentTabLabel() string {
	return m.tr.tabLabel(m.tabs[m.nav.SelectedIndex()])
}

func (m *model) View() string {
	var b strings.Builder

	tabs := make([]string, len(m.tabs))
	for i, name := range m.tabs {
		label := fmt.Sprintf("%d %s", i+1, m.tr.tabLabel(name))
		if i == m.nav.SelectedIndex() {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	if v := m.nav.CurrentView(); v != nil {
		b.WriteString(titleStyle.Render(fmt.Sprint(v)))
		b.WriteString("\n")
	}

	handles := m.nav.CurrentStack()
	tags := make([]string, len(handles))
	for i, h := range handles {
		tags[i] = h.Tag
	}
	b.WriteString(stackStyle.Render(m.tr.T("stack_label", nil) + ": " + strings.Join(tags, " › ")))
	b.WriteString("\n")

	if d := m.nav.CurrentDialog(); d != nil {
		b.WriteString(dialogStyle.Render(fmt.Sprint(d) + "\n" + m.tr.T("dialog_body", nil)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.tr.T("help", nil)))
	b.WriteString("\n")
	return b.String()
}
