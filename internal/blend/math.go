package blend

// div255 divides x by 255 using fast shift approximation.
//
// Formula: (x + 255) >> 8
//
// The maximum error is +1 for some input values. For alpha blending
// inputs (0-65025 = 255*255) the result is within [0, 255].
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 using fast approximation.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// lerp255 interpolates from a to b by t/255 with exact rounding.
// The result never leaves [min(a,b), max(a,b)].
func lerp255(a, b, t byte) byte {
	num := uint32(a)*uint32(255-t) + uint32(b)*uint32(t)
	return byte((num + 127) / 255)
}
