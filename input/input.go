// Package input defines the per-frame input surface the flight core consumes.
// Device bindings live behind Source; the core never talks to a device directly.
package input

// Sample is one frame's worth of sampled input.
type Sample struct {
	Horizontal float64 // Aim axis, -1 (left) to 1 (right)
	Vertical   float64 // Aim axis, -1 to 1, before any inversion
	Boost      bool    // Held
	Brake      bool    // Held
	Fire       bool    // Held; the core detects the press edge
}

// Source produces a Sample once per frame.
type Source interface {
	Sample(dt float64) Sample
}

// SourceFunc adapts a function to Source.
type SourceFunc func(dt float64) Sample

func (f SourceFunc) Sample(dt float64) Sample {
	return f(dt)
}

// Idle never produces input.
var Idle Source = SourceFunc(func(float64) Sample { return Sample{} })
