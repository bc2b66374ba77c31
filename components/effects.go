package components

import "github.com/yohamta/donburi"

// AutoDestroyData marks entities that are removed once the clock passes ExpiresAt
type AutoDestroyData struct {
	ExpiresAt float64 // Clock.Elapsed deadline in seconds
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
