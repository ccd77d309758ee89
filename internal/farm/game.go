package farm

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// GameID identifies the farm in run history.
const GameID = "farm"

// messageLogSize bounds the notification history kept by Game.
const messageLogSize = 8

// Game adapts a Farm to the platform loop: it maps input frames to farm
// operations, remembers the notifications of the last step and renders the
// board into a core.Screen.
type Game struct {
	rules      Rules
	difficulty string
	seed       int64

	farm    *Farm
	runID   string
	events  []Event // raised by the last Step
	message string  // text of the most recent step that raised events
	log     []string // recent notifications, oldest first
	fresh   int      // trailing log entries raised by the most recent step
	wonAt   int      // turn the win condition was first met, 0 if never

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// RunStats summarizes the current farm for run history.
type RunStats struct {
	RunID      string
	Seed       int64
	Difficulty string
	Turns      int
	Mature     int
	Sown       int
	Reaped     int
	WonAt      int
}

// NewGame creates a game playing by rules. difficulty is a display label.
// Reset must be called before the first Step.
func NewGame(rules Rules, difficulty string) *Game {
	return &Game{
		rules:      rules,
		difficulty: difficulty,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Farm"
}

// Reset starts a new farm seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.farm = New(rand.New(rand.NewSource(cfg.Seed)), g.rules)
	g.runID = uuid.NewString()
	g.events = nil
	g.message = ""
	g.log = nil
	g.fresh = 0
	g.wonAt = 0

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// MinScreenSize returns the smallest drawing area the board fits in.
// Smaller areas show a notice and ignore input.
func MinScreenSize() (w, h int) {
	return minScreenW, minScreenH
}

// Resize updates the drawing area without touching the farm.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step applies one input frame. Movement is applied first, then sow, reap
// and turn advance.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	changed := false
	for _, a := range [...]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		if dir, ok := a.Direction(); ok && g.farm.MovePlayer(dir) {
			changed = true
		}
	}

	if in.Has(core.ActionSow) {
		g.record(g.farm.Sow())
		changed = true
	}
	if in.Has(core.ActionReap) {
		g.record(g.farm.Reap())
		changed = true
	}
	if in.Has(core.ActionAdvance) {
		g.record(g.farm.AdvanceTurn())
		changed = true
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) record(events []Event) {
	if len(events) == 0 {
		return
	}

	msgs := make([]string, 0, len(events))
	for _, ev := range events {
		if ev.Kind == EventWin && g.wonAt == 0 {
			g.wonAt = ev.Turn
		}
		msgs = append(msgs, ev.Message())
	}
	g.events = append(g.events, events...)
	g.message = strings.Join(msgs, " · ")

	g.log = append(g.log, msgs...)
	if over := len(g.log) - messageLogSize; over > 0 {
		g.log = g.log[over:]
	}
	g.fresh = min(len(msgs), messageLogSize)
}

// Events returns the notifications raised by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// Message returns the text of the most recent notifications.
func (g *Game) Message() string {
	return g.message
}

// Messages returns recent notifications, oldest first.
func (g *Game) Messages() []string {
	return g.log
}

// Farm exposes the underlying state object.
func (g *Game) Farm() *Farm {
	return g.farm
}

// RunID identifies the current farm; it changes on every Reset.
func (g *Game) RunID() string {
	return g.runID
}

// WonAt returns the turn the win condition was first met, or 0.
func (g *Game) WonAt() int {
	return g.wonAt
}

// Stats summarizes the current farm.
func (g *Game) Stats() RunStats {
	mature, _ := g.farm.CheckWin()
	return RunStats{
		RunID:      g.runID,
		Seed:       g.seed,
		Difficulty: g.difficulty,
		Turns:      g.farm.Turn(),
		Mature:     mature,
		Sown:       g.farm.Sown(),
		Reaped:     g.farm.Reaped(),
		WonAt:      g.wonAt,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	mature, won := g.farm.CheckWin()
	return core.GameState{
		Score: mature,
		Turn:  g.farm.Turn(),
		Won:   won,
	}
}
