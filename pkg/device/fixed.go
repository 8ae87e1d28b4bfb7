package device

// fixedScale is the denominator of the fixed-point wire encoding.
const fixedScale = 1 << 16

// Fix encodes a decimal number as a raw fixed-point word, truncating
// towards zero.
func Fix(v float64) int {
	return int(v * fixedScale)
}

// Unfix decodes a raw fixed-point word into a float64.
func Unfix(v int) float64 {
	return float64(v) / fixedScale
}
