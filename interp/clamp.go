package interp

import "github.com/sanjeekswipro/colortable/core"

// Interpolation runs in fixed point: corner colors are scaled up by
// FracBits on entry, every blend pass keeps those extra bits, and
// round drops them exactly once, at the final step.

// scale lifts a corner component into the working precision.
func scale(v uint16) int32 {
	return int32(v) << core.FracBits
}

// blend moves a toward b by the fraction f (0..FracSide), operating on
// already-scaled values. The product is widened to 64 bits so a full
// 16-bit color range times a fraction cannot wrap.
func blend(a, b int32, f int) int32 {
	return a + int32((int64(b-a)*int64(f))>>core.FracBits)
}

// round drops the extra FracBits of working precision, rounding to
// nearest, and clamps to the 16-bit output range. Blends of in-range
// corners cannot overshoot, but the clamp guards the boundary.
func round(v int32) uint16 {
	r := (v + core.FracSide/2) >> core.FracBits
	if r < 0 {
		return 0
	}
	if r > 65535 {
		return 65535
	}
	return uint16(r)
}
