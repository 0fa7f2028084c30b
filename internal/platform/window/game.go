// Package window runs the dodger session in a desktop window using ebiten.
package window

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/dodger"
)

// Game adapts a session to ebiten's Update/Draw/Layout loop.
type Game struct {
	session *dodger.Session
	canvas  *canvas
	width   int
	height  int
	logger  *log.Logger
}

// NewGame wraps a session for a canvas of the given virtual size.
func NewGame(session *dodger.Session, width, height int, logger *log.Logger) (*Game, error) {
	c, err := newCanvas()
	if err != nil {
		return nil, err
	}
	return &Game{
		session: session,
		canvas:  c,
		width:   width,
		height:  height,
		logger:  logger,
	}, nil
}

// Run opens the window and blocks until the player quits.
func Run(g *Game, title string, tps int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.session.Phase() == dodger.PhaseEnd && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySummary()
	}

	g.session.Step(readInput())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.session.Render(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// readInput maps this frame's key edges to actions. SpeedUp fires when the
// key is released, so holding it down does nothing.
func readInput() core.InputFrame {
	in := core.NewInputFrame()

	if justPressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		in.Set(core.ActionMoveLeft)
	}
	if justPressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		in.Set(core.ActionMoveRight)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyW) || inpututil.IsKeyJustReleased(ebiten.KeyArrowUp) {
		in.Set(core.ActionSpeedUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRetry)
	}
	return in
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) copySummary() {
	summary := g.session.State().Summary()
	if err := clipboard.WriteAll(summary); err != nil {
		g.logger.Warn("clipboard unavailable", "error", err)
		return
	}
	g.logger.Info("copied run summary", "summary", summary)
}
