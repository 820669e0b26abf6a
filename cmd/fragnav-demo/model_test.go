package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/config"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/host"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, saved []byte) *model {
	t.Helper()
	tr, err := newTranslator("en")
	require.NoError(t, err)
	m, err := newModel(host.NewMemory(), config.DefaultTabs, 0, tr, state.JSON, saved)
	require.NoError(t, err)
	return m
}

func press(m *model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func TestModelStartsOnFirstTab(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, 0, m.nav.SelectedIndex())
	assert.Equal(t, "recents1", m.nav.CurrentTag())
	assert.Equal(t, "Showing Recents", m.status)
	assert.Contains(t, m.View(), "Recents")
}

func TestModelPushPop(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, runes("p"), runes("p"))
	assert.Len(t, m.nav.CurrentStack(), 3)
	assert.Equal(t, "Now on Detail 2", m.status)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Len(t, m.nav.CurrentStack(), 2)
	assert.Equal(t, "Now on Detail 1", m.status)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Len(t, m.nav.CurrentStack(), 1)
	assert.Equal(t, "Already at the root of Recents", m.status)
}

func TestModelTabsKeepTheirStacks(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, runes("p"), runes("3"))
	assert.Equal(t, 2, m.nav.SelectedIndex())
	assert.Len(t, m.nav.CurrentStack(), 1)
	assert.Equal(t, "Showing Nearby", m.status)

	press(m, runes("1"))
	assert.Len(t, m.nav.CurrentStack(), 2)
	assert.Equal(t, "Detail 1", m.nav.CurrentView().(*screen).title)

	press(m, runes("9"))
	assert.Equal(t, 0, m.nav.SelectedIndex())
}

func TestModelClearAndReplace(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, runes("p"), runes("p"), runes("c"))
	assert.Len(t, m.nav.CurrentStack(), 1)

	press(m, runes("r"))
	assert.Len(t, m.nav.CurrentStack(), 1)
	assert.Equal(t, "edit", m.nav.CurrentView().Kind())
}

func TestModelDialog(t *testing.T) {
	m := newTestModel(t, nil)

	press(m, runes("d"))
	require.NotNil(t, m.nav.CurrentDialog())
	assert.Contains(t, m.View(), "Press x to close")

	press(m, runes("x"))
	assert.Nil(t, m.nav.CurrentDialog())
	assert.Equal(t, "Dialog closed", m.status)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelRestore(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, runes("p"), runes("2"))

	data, err := m.nav.SaveState()
	require.NoError(t, err)

	restored := newTestModel(t, data)
	assert.True(t, restored.nav.Restored())
	assert.Equal(t, 1, restored.nav.SelectedIndex())
	assert.Equal(t, "Restored previous session", restored.status)
}

func TestTranslatorSpanish(t *testing.T) {
	tr, err := newTranslator("es-ES")
	require.NoError(t, err)

	assert.Equal(t, "Recientes", tr.tabLabel("recents"))
	assert.Equal(t, "custom", tr.tabLabel("custom"))
	assert.Equal(t, "Mostrando Comida", tr.T("tab_changed", map[string]any{"Tab": "Comida"}))
}

func TestUserLanguages(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "C")
	t.Setenv("LANG", "es_ES.UTF-8")

	assert.Equal(t, []string{"es-ES"}, userLanguages())
}
