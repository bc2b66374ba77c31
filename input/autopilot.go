package input

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Autopilot is a scripted Source for headless runs. It sweeps the aim axes
// back and forth with tween sequences, taps fire at a fixed rate and holds
// boost or brake for short bursts.
type Autopilot struct {
	horizontal *gween.Sequence
	vertical   *gween.Sequence

	FireInterval float64 // Seconds between trigger presses, 0 disables firing
	BurstEvery   float64 // Seconds between boost/brake bursts, 0 disables them
	BurstLength  float64

	elapsed   float64
	fireTimer float64
	fireHeld  bool
}

// NewAutopilot creates an autopilot with its default sweep pattern.
func NewAutopilot() *Autopilot {
	h := gween.NewSequence()
	h.Add(
		gween.New(0, 1, 1.5, ease.OutSine),
		gween.New(1, -1, 3, ease.InOutSine),
		gween.New(-1, 0, 1.5, ease.InSine),
	)

	v := gween.NewSequence()
	v.Add(
		gween.New(0, 0.6, 1, ease.InOutQuad),
		gween.New(0.6, -0.6, 2, ease.InOutQuad),
		gween.New(-0.6, 0, 1, ease.InOutQuad),
	)

	return &Autopilot{
		horizontal:   h,
		vertical:     v,
		FireInterval: 0.3,
		BurstEvery:   6,
		BurstLength:  1.5,
	}
}

func (a *Autopilot) Sample(dt float64) Sample {
	a.elapsed += dt

	s := Sample{
		Horizontal: float64(advance(a.horizontal, dt)),
		Vertical:   float64(advance(a.vertical, dt)),
	}

	// Alternate press/release so every interval yields one fire edge
	if a.FireInterval > 0 {
		a.fireTimer -= dt
		if a.fireTimer <= 0 {
			a.fireHeld = !a.fireHeld
			a.fireTimer = a.FireInterval / 2
		}
		s.Fire = a.fireHeld
	}

	if a.BurstEvery > 0 && a.BurstLength > 0 {
		cycle := int(a.elapsed / a.BurstEvery)
		if a.elapsed-float64(cycle)*a.BurstEvery < a.BurstLength && cycle > 0 {
			// Even cycles boost, odd cycles brake
			if cycle%2 == 0 {
				s.Boost = true
			} else {
				s.Brake = true
			}
		}
	}

	return s
}

// advance steps a looping sequence and returns its current value.
func advance(seq *gween.Sequence, dt float64) float32 {
	value, _, done := seq.Update(float32(dt))
	if done {
		seq.Reset()
	}
	return value
}
