// Command cursordesktop logs the system cursor position in the local
// coordinates of a virtual element laid over the desktop.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/generative"
	"github.com/gogpu/generative/cursor"
	"github.com/gogpu/generative/dom"
	"github.com/gogpu/generative/integration/desktoppointer"
	"github.com/gogpu/generative/integration/pointer"
)

func main() {
	var (
		interval = flag.Duration("interval", 100*time.Millisecond, "polling interval")
		viewBox  = flag.Float64("viewbox", 1000, "local coordinate range mapped onto the screen")
		debug    = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	generative.SetLogger(logger)

	bounds := desktoppointer.ScreenBounds()
	el := dom.NewElement("svg")
	vb := *viewBox
	el.Attach(generative.Scale(float64(bounds.Dx())/vb, float64(bounds.Dy())/vb))

	tracker, err := cursor.Track(el)
	if err != nil {
		logger.Error("track cursor", "err", err)
		os.Exit(1)
	}
	defer tracker.Stop()

	el.AddEventListener(dom.EventPointerMove, func(dom.PointerEvent) {
		x, y := tracker.Position()
		logger.Info("cursor", cursor.AttrX, x, cursor.AttrY, y)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	feed := pointer.NewFeed(el, bounds)
	if err := desktoppointer.Run(ctx, feed, *interval); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("poll cursor", "err", err)
	}
}
