package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. Now is seconds since the world started.
type ClockData struct {
	Now   float64
	Delta float64
	Tick  uint64
}

var Clock = donburi.NewComponentType[ClockData]()
