package initial

// config holds the resolved options for Generate. Mirrors the builder
// package's pattern of an unexported, option-populated struct.
type config struct {
	skipValidate bool
}

// Option configures Generate. The zero value of config always validates the
// generated state, matching spec §4.2's mandate that a nonzero ice-rule
// violation count is a programmer error.
type Option func(*config)

// WithoutValidation skips the post-materialization ice-rule check. Intended
// for benchmarks that generate many large lattices and have already proven
// correctness via the validated path; Generate itself still fully
// materializes the edge arrays.
func WithoutValidation() Option {
	return func(c *config) {
		c.skipValidate = true
	}
}

func resolve(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
