package motion

import "shakecalc/internal/domain"

// DefaultThreshold is the magnitude increase, in m/s², that counts as a shake.
const DefaultThreshold = 12.0

// Detector tracks the last two sample magnitudes. It is not safe for
// concurrent use; callers serialize Observe.
type Detector struct {
	Threshold float64

	last    float64
	current float64
}

// NewDetector returns a detector at rest. A non-positive threshold selects
// DefaultThreshold and a non-positive gravity selects standard gravity.
func NewDetector(threshold, gravity float64) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if gravity <= 0 {
		gravity = domain.StandardGravity
	}
	return &Detector{Threshold: threshold, last: gravity, current: gravity}
}

// Observe records s and reports the magnitude increase since the previous
// sample and whether it exceeds the threshold. Every qualifying sample fires;
// there is no debounce.
func (d *Detector) Observe(s domain.Sample) (delta float64, fired bool) {
	d.last = d.current
	d.current = s.Magnitude()
	delta = d.current - d.last
	return delta, delta > d.Threshold
}

// Current returns the most recent magnitude.
func (d *Detector) Current() float64 { return d.current }
