// Package arena defines the fixed rectangular domain particles move inside.
package arena

const (
	// Width and Height are the full extent of the simulated domain, in
	// arena units, centered at the origin.
	Width  = 1000.0
	Height = 500.0

	HalfWidth  = Width / 2
	HalfHeight = Height / 2

	// Radius and Mass are shared by every individual in the population.
	Radius = 8.0
	Mass   = 1.0
)

// Left, Right, Top and Bottom return the wall coordinates on each axis.
func Left() float64   { return -HalfWidth }
func Right() float64  { return HalfWidth }
func Top() float64    { return -HalfHeight }
func Bottom() float64 { return HalfHeight }
