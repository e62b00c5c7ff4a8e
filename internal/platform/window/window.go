//go:build ebiten

package window

import (
	"errors"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/sanddrop/internal/core"
	"github.com/vovakirdan/sanddrop/internal/sim"
)

// Game adapts a sand simulation to the ebiten.Game interface.
type Game struct {
	sim    *sim.Sim
	grid   *core.Grid
	clock  *frameDivider
	logger *log.Logger

	canvas *ebiten.Image
	pixels []byte
	scale  int

	pressed bool
	last    core.Coord
}

// New constructs a Game and runs setup.
func New(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	p := opts.Params
	grid := core.NewGrid(p.Width, p.Height, p.Empty)
	s, err := sim.New(p, grid, sim.NewRand(opts.Seed), sim.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}
	s.Setup()

	return &Game{
		sim:    s,
		grid:   grid,
		clock:  newFrameDivider(opts.TickEvery),
		logger: opts.Logger,
		canvas: ebiten.NewImage(p.Width, p.Height),
		pixels: make([]byte, p.Width*p.Height*4),
		scale:  opts.Scale,
	}, nil
}

// Update handles input and advances the simulation on its frame divider.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Setup()
	}

	g.handleMouse()

	if g.clock.Step() {
		g.sim.OnTick()
	}
	return nil
}

func (g *Game) handleMouse() {
	px, py := ebiten.CursorPosition()
	c := cellAt(px, py, g.scale)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pressed = true
		g.last = c
		g.sim.OnPointerDown(c.X, c.Y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pressed = false
		g.sim.OnPointerUp(c.X, c.Y)
	case g.pressed && c != g.last:
		g.last = c
		g.sim.OnPointerEnter(c.X, c.Y)
	}
}

// Draw renders the status strip and the scaled grid.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	text.Draw(screen, g.grid.Status(), basicfont.Face7x13, 4, statusHeight-4, color.White)

	fillRGBA(g.pixels, g.grid)
	g.canvas.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	op.GeoM.Translate(0, statusHeight)
	screen.DrawImage(g.canvas, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width() * g.scale, g.grid.Height()*g.scale + statusHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	game, err := New(opts)
	if err != nil {
		return err
	}

	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(opts.Params.Status)
	ebiten.SetTPS(opts.FrameRate)
	ebiten.SetWindowSize(w, h)

	game.logger.Info("window opened", "width", opts.Params.Width, "height", opts.Params.Height, "interval", opts.interval())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
