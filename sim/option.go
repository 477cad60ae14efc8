package sim

// config holds resolved Simulation construction options.
type config struct {
	snapshotsDisabled bool
	skipValidate      bool
}

// Option configures New. Mirrors the functional-options shape used
// throughout this corpus (see package initial and the builder package it
// is grounded on).
type Option func(*config)

// WithSnapshotsDisabled makes Snapshot always fail with
// ErrSnapshotDenied. Intended for a headless batch-benchmark run that
// never inspects intermediate state and would rather not pay for the
// defensive copy Snapshot otherwise performs after every call.
func WithSnapshotsDisabled() Option {
	return func(c *config) {
		c.snapshotsDisabled = true
	}
}

// WithoutInitialValidation skips the initial-state ice-rule check,
// forwarding to initial.WithoutValidation. See that option's doc for when
// this is appropriate.
func WithoutInitialValidation() Option {
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
