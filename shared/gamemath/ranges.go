package gamemath

// SpeedRatio maps speed onto [0, 1] where slow is 0 and boost is 1.
func SpeedRatio(speed, slow, boost float64) float64 {
	if boost == slow {
		return 0
	}
	return (speed - slow) / (boost - slow)
}

// Drain subtracts cost from v without going below zero.
func Drain(v, cost float64) float64 {
	if v -= cost; v < 0 {
		return 0
	}
	return v
}
