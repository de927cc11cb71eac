package sim

import "fmt"

// InitError reports that the population could not be placed without
// overlap within the practical rejection-sampling cap.
type InitError struct {
	PopulationSz int
	Attempts     int
}

func (e *InitError) Error() string {
	return fmt.Sprintf("sim: could not place %d non-overlapping individuals after %d attempts", e.PopulationSz, e.Attempts)
}

// ConfigError reports one or more out-of-range Config fields. Individual
// field violations are joined with errors.Join so callers see every problem
// at once rather than only the first one checked.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sim: config field %q invalid: %s", e.Field, e.Msg)
}

// RenderError wraps a failure raised by the Renderer boundary. It is never
// fatal to a run: the simulator logs it and keeps dispatching events.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("sim: render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
