package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/raster"
	"sphere-tracer/internal/scene"
)

// Game re-renders the whole frame on every redraw. It owns the packed RGBA
// buffer; the render sweep writes it and the window presents it, never at
// the same time.
type Game struct {
	cfg    camera.Config
	shader scene.Shader
	fb     *raster.FrameBuffer
	img    *ebiten.Image
	err    error
}

// NewGame validates cfg and allocates the frame buffer once.
func NewGame(cfg camera.Config, sh scene.Shader) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		cfg:    cfg,
		shader: sh,
		fb:     raster.NewFrameBuffer(cfg.Width, cfg.ImageHeight()),
	}, nil
}

// Update runs between frames, so a quit request never interrupts a sweep.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	if err := raster.Render(g.cfg, g.shader, g.fb.Sink(), nil); err != nil {
		g.err = fmt.Errorf("viewer: render frame: %w", err)
		return
	}
	if g.img == nil {
		g.img = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}
	g.img.WritePixels(g.fb.Color)
	screen.DrawImage(g.img, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}

// Run opens a window of the frame size times zoom and blocks until it closes.
func Run(title string, cfg camera.Config, sh scene.Shader, zoom int) error {
	g, err := NewGame(cfg, sh)
	if err != nil {
		return err
	}
	if zoom < 1 {
		zoom = 1
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.fb.Width*zoom, g.fb.Height*zoom)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}
