// Command cursorwindow opens a window and shows the cursor position in the
// local coordinates of a scaled, offset element.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/generative"
	"github.com/gogpu/generative/cursor"
	"github.com/gogpu/generative/dom"
	"github.com/gogpu/generative/integration/ebitenpointer"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

type game struct {
	el      *dom.Element
	poller  *ebitenpointer.Poller
	tracker *cursor.Tracker
	geom    ebiten.GeoM
}

func (g *game) Update() error {
	g.poller.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 18, B: 28, A: 255})

	// The element covers local [0, 100] x [0, 100].
	x0, y0 := g.geom.Apply(0, 0)
	x1, y1 := g.geom.Apply(100, 100)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1,
		color.RGBA{R: 120, G: 160, B: 240, A: 255}, false)

	x, _ := g.el.Attribute(cursor.AttrX)
	y, _ := g.el.Attribute(cursor.AttrY)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("cursorX=%s cursorY=%s\ntouch-action=%s", x, y, g.el.TouchAction()))
}

// Layout uses the window size as the logical screen and keeps the pointer
// bounds in step with it.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.poller.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		generative.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var geom ebiten.GeoM
	geom.Scale(4, 3)
	geom.Translate(120, 90)

	el := dom.NewElement("svg")
	el.Attach(ebitenpointer.MatrixFromGeoM(geom))

	tracker, err := cursor.Track(el)
	if err != nil {
		slog.Error("track cursor", "err", err)
		os.Exit(1)
	}
	defer tracker.Stop()

	g := &game{
		el:      el,
		poller:  ebitenpointer.New(el, screenWidth, screenHeight),
		tracker: tracker,
		geom:    geom,
	}

	ebiten.SetWindowTitle("cursorwindow")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
