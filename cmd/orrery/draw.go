package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/smasonuk/xform3d/internal/render"
)

const strokeWidth = 1

func drawLines(screen *ebiten.Image, lines []render.Line) {
	for _, line := range lines {
		vector.StrokeLine(screen, line.X0, line.Y0, line.X1, line.Y1, strokeWidth, line.Color, true)
	}
}
