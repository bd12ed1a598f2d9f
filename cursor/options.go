package cursor

// Default attribute names written by a Tracker.
const (
	AttrX = "cursorX"
	AttrY = "cursorY"
)

// Option configures a Tracker during Track.
//
// Example:
//
//	t, err := cursor.Track(el,
//	    cursor.WithAttributes("data-x", "data-y"),
//	    cursor.WithErrorHandler(func(err error) { log.Print(err) }),
//	)
type Option func(*options)

type options struct {
	attrX   string
	attrY   string
	onError func(error)
}

func defaultOptions() options {
	return options{
		attrX: AttrX,
		attrY: AttrY,
	}
}

// WithAttributes sets the attribute names the tracker writes.
// Empty names keep the defaults.
func WithAttributes(x, y string) Option {
	return func(o *options) {
		if x != "" {
			o.attrX = x
		}
		if y != "" {
			o.attrY = y
		}
	}
}

// WithErrorHandler sets a callback for pointer events that could not be
// transformed, e.g. because the element was detached after Track.
// The callback runs on the dispatching goroutine.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}
