package sim

import "image/color"

// ColorFor returns the reference RGBA color for a health state, used by
// any Renderer painting individuals.
func ColorFor(h Health) color.RGBA {
	switch h {
	case Susceptible:
		return color.RGBA{R: 0, G: 0, B: 220, A: 255}
	case Infected:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case Recovered:
		return color.RGBA{R: 0, G: 200, B: 0, A: 255}
	case Dead:
		return color.RGBA{R: 50, G: 50, B: 50, A: 255}
	default:
		return color.RGBA{}
	}
}
