package sim

import "image/color"

// GraphicsContext abstracts the 2D drawing surface a Renderer paints onto.
// Coordinates are translated so (0,0) sits at the arena center and scaled
// by whatever factor the concrete renderer chooses.
type GraphicsContext interface {
	SetColor(c color.RGBA)
	SetFont(name string, size float64)
	DrawString(text string, x, y float64)
	FillRect(x, y, w, h float64)
	DrawRect(x, y, w, h float64)
	SetStroke(width float64)
	Translate(dx, dy float64)
	Scale(sx, sy float64)
}

// Renderer is the boundary between the simulation engine and whatever
// paints it: a GUI canvas, a headless no-op such as NullRenderer (which both
// cmd/simulate and cmd/server use), or anything else. The simulator never
// assumes which.
type Renderer interface {
	// DrawWith registers proc as the current draw procedure and triggers a
	// repaint. A non-nil error is treated by the simulator as a RenderError:
	// logged, never fatal.
	DrawWith(proc func(GraphicsContext)) error
}

// NullRenderer discards every draw call. Used by headless runs (cmd/simulate,
// tests) that have no interest in paying for rendering at all.
type NullRenderer struct{}

func (NullRenderer) DrawWith(proc func(GraphicsContext)) error {
	proc(noopContext{})
	return nil
}

type noopContext struct{}

func (noopContext) SetColor(color.RGBA)                          {}
func (noopContext) SetFont(string, float64)                      {}
func (noopContext) DrawString(string, float64, float64)          {}
func (noopContext) FillRect(float64, float64, float64, float64)  {}
func (noopContext) DrawRect(float64, float64, float64, float64)  {}
func (noopContext) SetStroke(float64)                            {}
func (noopContext) Translate(float64, float64)                   {}
func (noopContext) Scale(float64, float64)                       {}
