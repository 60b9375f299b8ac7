package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// fakeGame scores ten points a tick and ends after overAt ticks.
type fakeGame struct {
	id      uuid.UUID
	overAt  int
	steps   int
	seeds   []int64
	resized [2]int
	state   core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.seeds = append(g.seeds, cfg.Seed)
	g.steps = 0
	g.state = core.GameState{Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	g.steps++
	g.state.Ticks = g.steps
	g.state.Score = g.steps * 10
	if g.steps >= g.overAt {
		g.state.GameOver = true
		g.state.Outcome = "out_of_lives"
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *fakeGame) RunID() uuid.UUID        { return g.id }

func newTestModel(t *testing.T, overAt int) (Model, *fakeGame, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{id: uuid.New(), overAt: overAt}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 20, Seed: 5})
	m.Init()
	return m, g, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelSavesRunOnceOnGameOver(t *testing.T) {
	m, g, store := newTestModel(t, 2)

	for i := 0; i < 4; i++ {
		m = update(t, m, TickMsg{})
	}
	assert.True(t, m.gameState.GameOver)

	runs, err := store.RecentRuns("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, g.id, runs[0].ID)
	assert.Equal(t, "out_of_lives", runs[0].Outcome)
	assert.Equal(t, 20, runs[0].Score)
	assert.Equal(t, 2, runs[0].Ticks)

	scores, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestModelQuitSavesRun(t *testing.T) {
	m, _, store := newTestModel(t, 100)

	m = update(t, m, TickMsg{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)

	runs, err := store.RecentRuns("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "quit", runs[0].Outcome)
}

func TestModelRestartReplaysFixedSeed(t *testing.T) {
	m, g, _ := newTestModel(t, 1)

	m = update(t, m, TickMsg{})
	require.True(t, m.gameState.GameOver)
	assert.True(t, m.scoreSaved)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = update(t, m, TickMsg{})

	assert.Equal(t, []int64{5, 5}, g.seeds)
	assert.False(t, m.scoreSaved)
	assert.False(t, m.gameState.GameOver)
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	m, g, _ := newTestModel(t, 100)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = update(t, m, TickMsg{})

	assert.Len(t, g.seeds, 1)
	assert.Equal(t, 1, g.steps)
}

func TestModelEscPauses(t *testing.T) {
	m, g, _ := newTestModel(t, 100)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	update(t, m, TickMsg{})

	assert.True(t, g.state.Paused)
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, g, _ := newTestModel(t, 100)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, [2]int{100, 30}, g.resized)
	assert.Len(t, g.seeds, 1)
	assert.Equal(t, 100, m.screen.Width())
	assert.Contains(t, m.View(), "fake")
}
