package main

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	powerframe "github.com/lvoytek/xc3-powerframe"
	"github.com/lvoytek/xc3-powerframe/model"
)

type point struct {
	X, Y int
}

// ringLayout places count pixels clockwise around an ellipse that fits a
// width by height terminal, pixel 0 at the top. Terminal cells are about
// twice as tall as they are wide so the horizontal radius is doubled.
func ringLayout(count, width, height int) (points []point) {
	points = make([]point, count)
	if count == 0 {
		return points
	}

	radius := float64(height-3) / 2
	if limit := float64(width-2) / 4; limit < radius {
		radius = limit
	}
	if radius < 1 {
		radius = 1
	}
	cx := float64(width) / 2
	cy := float64(height-1) / 2

	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(count)
		points[i] = point{
			X: int(math.Round(cx + 2*radius*math.Sin(angle))),
			Y: int(math.Round(cy - radius*math.Cos(angle))),
		}
	}
	return points
}

// Ring is a Display that draws on a terminal
type Ring struct {
	*powerframe.Strip

	screen tcell.Screen
	layout []point
	status string

	mu sync.Mutex
}

// NewRing creates a ring of length pixels drawn on screen
func NewRing(screen tcell.Screen, length int) (ring *Ring) {
	ring = &Ring{
		Strip:  powerframe.NewStrip(length),
		screen: screen,
	}
	ring.Strip.OnFlush = ring.draw
	ring.Resize()
	return ring
}

// Resize recomputes where the pixels go after the terminal changed size
func (ring *Ring) Resize() {
	width, height := ring.screen.Size()

	ring.mu.Lock()
	ring.layout = ringLayout(ring.PixelCount(), width, height)
	ring.mu.Unlock()

	ring.screen.Clear()
	ring.draw(ring.Frame())
}

// SetStatus shows the light mode under the ring
func (ring *Ring) SetStatus(mode model.Mode) {
	ring.mu.Lock()
	ring.status = " " + mode.String() + "   space: next   1-5: select   q: quit "
	ring.mu.Unlock()

	ring.draw(ring.Frame())
}

func (ring *Ring) draw(frame []model.Color) {
	ring.mu.Lock()
	defer ring.mu.Unlock()

	for i, at := range ring.layout {
		if i >= len(frame) {
			break
		}
		r, g, b := frame[i].RGB()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		ring.screen.SetContent(at.X, at.Y, '●', nil, style)
	}

	_, height := ring.screen.Size()
	for x, r := range ring.status {
		ring.screen.SetContent(x, height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	ring.screen.Show()
}
