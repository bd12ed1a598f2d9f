// Command cursorterm tracks the mouse over a framed area of the terminal
// and shows the cursor position in the area's local coordinates.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/generative"
	"github.com/gogpu/generative/cursor"
	"github.com/gogpu/generative/dom"
	"github.com/gogpu/generative/integration/termpointer"
)

// viewBox is the local coordinate range mapped onto the framed area.
const viewBox = 100

func main() {
	logFile := flag.String("log", "", "write debug log to file")
	flag.Parse()

	if err := run(*logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup, so main can exit with a status code
// without skipping them.
func run(logPath string) error {
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("create log: %w", err)
		}
		defer f.Close()
		generative.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	el := dom.NewElement("svg")
	area := layout(screen, el)
	src := termpointer.New(el, area)

	tracker, err := cursor.Track(el, cursor.WithErrorHandler(func(err error) {
		generative.Logger().Warn("cursorterm: event dropped", "err", err)
	}))
	if err != nil {
		return err
	}
	defer tracker.Stop()

	for {
		render(screen, el, area)
		ev := screen.PollEvent()
		if src.HandleEvent(ev) {
			continue
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			area = layout(screen, el)
			src.Feed().SetBounds(area)
			screen.Sync()
		case nil:
			return nil
		}
	}
}

// layout frames the element inside the screen with a one-cell margin and
// attaches it with a CTM mapping [0, viewBox] onto the frame.
func layout(screen tcell.Screen, el *dom.Element) image.Rectangle {
	w, h := screen.Size()
	area := image.Rect(1, 2, max(w-1, 2), max(h-1, 3))
	ctm := generative.Translate(float64(area.Min.X), float64(area.Min.Y)).
		Multiply(generative.Scale(float64(area.Dx())/viewBox, float64(area.Dy())/viewBox))
	el.Attach(ctm)
	return area
}

func render(screen tcell.Screen, el *dom.Element, area image.Rectangle) {
	screen.Clear()
	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := area.Min.X - 1; x <= area.Max.X; x++ {
		screen.SetContent(x, area.Min.Y-1, '─', nil, frame)
		screen.SetContent(x, area.Max.Y, '─', nil, frame)
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		screen.SetContent(area.Min.X-1, y, '│', nil, frame)
		screen.SetContent(area.Max.X, y, '│', nil, frame)
	}

	x, _ := el.Attribute(cursor.AttrX)
	y, _ := el.Attribute(cursor.AttrY)
	status := fmt.Sprintf("cursorX=%s cursorY=%s touch-action=%s  (q to quit)", x, y, el.TouchAction())
	label := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i, r := range status {
		screen.SetContent(i, 0, r, nil, label)
	}
	screen.Show()
}
