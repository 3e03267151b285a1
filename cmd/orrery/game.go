package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/xform3d/internal/config"
	"github.com/smasonuk/xform3d/internal/render"
	"github.com/smasonuk/xform3d/internal/scene"
	"github.com/smasonuk/xform3d/internal/wireframe"
)

type Game struct {
	cfg      *config.Config
	system   scene.Body
	renderer *render.Renderer
	lines    []render.Line

	days   float64
	paused bool
	yaw    float64

	dragging bool
	lastX    int
}

func NewGame(cfg *config.Config) *Game {
	viewport := wireframe.Viewport{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}

	return &Game{
		cfg:      cfg,
		system:   scene.SolarSystem(),
		renderer: render.NewRenderer(viewport),
		paused:   cfg.Animation.Paused,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		slog.Debug("Toggle pause", slog.Bool("paused", g.paused), slog.Float64("days", g.days))
	}

	if !g.paused {
		g.days += g.cfg.Animation.DaysPerSecond / float64(ebiten.TPS())
	}

	// Mouse camera control
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, _ = ebiten.CursorPosition()
	}
	if g.dragging {
		x, _ := ebiten.CursorPosition()
		g.yaw -= float64(x-g.lastX) / 2
		g.lastX = x
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	vp := g.renderer.Viewport
	viewProj, err := render.ViewProjection(g.cfg.Camera, vp.Width/vp.Height, g.yaw)
	if err != nil {
		return err
	}

	g.lines, err = g.renderer.Render(scene.Orrery(g.system, g.days), viewProj)
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	drawLines(screen, g.lines)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"day %.1f  FPS: %0.2f\n[space] pause, drag to orbit",
		g.days, ebiten.ActualFPS(),
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
