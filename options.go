package tessellum

// DecorateOptions holds options for the decoration pipeline.
type DecorateOptions struct {
	Config *RenderConfig
	Math   MathRenderer
	Index  IndexLookup
}

// Option is a function that configures DecorateOptions.
type Option func(*DecorateOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *DecorateOptions) {
		opts.Config = config
	}
}

// WithMathRenderer sets the renderer used for math widgets.
func WithMathRenderer(r MathRenderer) Option {
	return func(opts *DecorateOptions) {
		opts.Math = r
	}
}

// WithNoteIndex sets the lookup used for wikilink existence checks. A nil
// lookup treats every link as unresolved.
func WithNoteIndex(index IndexLookup) Option {
	return func(opts *DecorateOptions) {
		opts.Index = index
	}
}

// defaultDecorateOptions returns the default pipeline options.
func defaultDecorateOptions() *DecorateOptions {
	return &DecorateOptions{
		Config: DefaultConfig(),
		Math:   PlainMath{},
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *DecorateOptions {
	options := defaultDecorateOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
