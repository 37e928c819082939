// Package blend provides byte-level alpha compositing math.
//
// All operations work on straight (non-premultiplied) 8-bit channels, the
// storage format of cg.Image. Division by 255 uses the shift approximation
// throughout, whose error of at most one unit is invisible in the demos.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
package blend

// SourceOver composites a straight-alpha source over a straight-alpha
// destination and returns the straight-alpha result.
//
//	outA = Sa + Da*(1-Sa)
//	outC = (Sc*Sa + Dc*Da*(1-Sa)) / outA
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	if sa == 255 {
		return sr, sg, sb, 255
	}
	if sa == 0 {
		return dr, dg, db, da
	}

	dw := uint32(mulDiv255(da, 255-sa))
	outA := uint32(sa) + dw
	if outA == 0 {
		return 0, 0, 0, 0
	}

	ch := func(s, d byte) byte {
		num := uint32(s)*uint32(sa) + uint32(d)*dw
		return byte((num + outA/2) / outA)
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), byte(outA)
}

// Mix returns (1-alpha)*dst + alpha*src for a single channel, with alpha
// in [0, 1]. Values outside that range are clamped and NaN counts as 0.
func Mix(src, dst byte, alpha float64) byte {
	switch {
	case !(alpha > 0):
		return dst
	case alpha >= 1:
		return src
	}
	return lerp255(dst, src, byte(alpha*255+0.5))
}
