package fallback

// Option configures a chain during [Build].
type Option func(*config)

type config struct {
	observer  Observer
	segmenter Segmenter
}

func defaultConfig() config {
	return config{
		observer:  TraceObserver{},
		segmenter: defaultSegmenter(),
	}
}

// WithObserver installs an observer for construction and itemization events.
// A nil observer silences all events.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o == nil {
			o = NopObserver{}
		}
		c.observer = o
	}
}

// WithSegmenter replaces the default grapheme segmenter.
func WithSegmenter(s Segmenter) Option {
	return func(c *config) {
		if s != nil {
			c.segmenter = s
		}
	}
}
