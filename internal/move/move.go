package move

import "math"

// #region move
// Move is one quantized directional-change symbol produced by the external
// curve segmenter. Values are indices into the configured alphabet [0, A).
type Move int

// Valid reports whether m is inside an alphabet of the given size.
func Valid(m Move, alphabetSize int) bool {
	return m >= 0 && int(m) < alphabetSize
}

// #endregion move

// #region quantize

// FullCircle is the directional range shared with the segmenter, in degrees.
const FullCircle = 360.0

// Quantize maps a direction in degrees to its alphabet symbol.
// 360 wraps to 0, and out-of-range inputs are folded into [0, 360).
func Quantize(degrees float64, alphabetSize int) Move {
	d := math.Mod(degrees, FullCircle)
	if d < 0 {
		d += FullCircle
	}
	t := int(math.Floor(float64(alphabetSize) * (d / FullCircle)))
	if t >= alphabetSize {
		t = 0
	}
	return Move(t)
}

// #endregion quantize

// #region context-key

// ContextKey encodes an ordered context of moves as a map key.
// Two bytes per symbol, big-endian, so alphabets up to 65536 symbols
// produce collision-free keys.
func ContextKey(context []Move) string {
	buf := make([]byte, 2*len(context))
	for i, m := range context {
		buf[2*i] = byte(uint16(m) >> 8)
		buf[2*i+1] = byte(uint16(m))
	}
	return string(buf)
}

// #endregion context-key
