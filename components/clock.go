package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Delta   float64 // Seconds in the current frame
	Elapsed float64
	Frame   int
}

var Clock = donburi.NewComponentType[ClockData]()
