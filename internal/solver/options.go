package solver

// Option configures a Solver.
type Option func(*config)

type config struct {
	stepHook func(Step)
}

func defaultConfig() *config {
	return &config{}
}

// WithStepHook registers a function called after every applied move.
// The Step carries a snapshot of the cube, so the hook may keep it.
func WithStepHook(fn func(Step)) Option {
	return func(c *config) {
		c.stepHook = fn
	}
}
