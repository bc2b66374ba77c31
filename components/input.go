package components

import (
	"github.com/automoto/space-kitsune/input"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores the bound source and the last two samples it produced.
// Edges are computed on demand by comparing frames.
type PlayerInputData struct {
	Source   input.Source
	Current  input.Sample
	Previous input.Sample
}

// JustFired reports a fire press that was not held last frame.
func (p *PlayerInputData) JustFired() bool {
	return p.Current.Fire && !p.Previous.Fire
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
