package kernel

import (
	"github.com/dimkit/dimkit/internal/parallel"
)

// Conv2D convolves a rows×cols float32 image with a kRows×kCols filter,
// producing a same-size output. Taps falling outside the image replicate
// the nearest edge pixel. Image, filter, and output are tightly packed
// row-major starting at their offsets; both filter dimensions must be odd
// (caller-checked). in and out must not alias.
func Conv2D(in []float32, io, rows, cols int, k []float32, ko, kRows, kCols int, out []float32, oo int, cfg parallel.Config) {
	hr, hc := kRows/2, kCols/2
	parallel.For(rows, func(i int) {
		for j := 0; j < cols; j++ {
			var sum float32
			for p := 0; p < kRows; p++ {
				si := clampIndex(i+p-hr, rows)
				for q := 0; q < kCols; q++ {
					sj := clampIndex(j+q-hc, cols)
					sum += in[io+si*cols+sj] * k[ko+p*kCols+q]
				}
			}
			out[oo+i*cols+j] = sum
		}
	}, cfg)
}

// clampIndex clamps i into [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
