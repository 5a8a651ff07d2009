package newton

import (
	"math"
	"math/cmplx"
)

// Smooth turns a trajectory into a convergence quality in [0, 1], 1 being immediate
// convergence. The distance to the root shrinks geometrically in log space, so the last two
// log distances are extrapolated to find the fractional step at which the distance would
// have reached the tolerance. Without that interpolation the image shows one band per
// iteration count.
func (s *Settings) Smooth(t Trajectory) float64 {
	i := float64(t.Len())
	unsmoothed := clamp(1 - i/float64(s.Iterations))

	if t.Len() < 3 {
		return unsmoothed
	}
	z0, z1, root := t.Points[t.Len()-3], t.Points[t.Len()-2], t.Points[t.Len()-1]
	if !isFinite(z0) || !isFinite(z1) || !isFinite(root) {
		return unsmoothed
	}

	ld0 := math.Log(cmplx.Abs(z0 - root))
	ld1 := math.Log(cmplx.Abs(z1 - root))
	if math.IsInf(ld0, 0) || math.IsInf(ld1, 0) || ld1 == ld0 {
		return unsmoothed
	}

	correction := (math.Log(s.Tolerance) - ld0) / (ld1 - ld0)
	quality := 1 - (i+s.CorrectionWeight*correction)/float64(s.Iterations)
	if math.IsNaN(quality) {
		return unsmoothed
	}
	return clamp(quality)
}

func clamp(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
