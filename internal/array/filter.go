package array

import (
	"fmt"
	"slices"

	"github.com/dimkit/dimkit/internal/kernel"
	"github.com/dimkit/dimkit/internal/parallel"
)

// PadMode selects how out-of-range positions are filled.
type PadMode int

// Supported padding policies.
const (
	// PadEdge replicates the nearest boundary element.
	PadEdge PadMode = iota
)

// ConvolveDomain selects which output positions a convolution produces.
type ConvolveDomain int

// Supported convolution domains.
const (
	// ConvolveValid produces only positions with full kernel overlap:
	// output length = input - kernel + 1.
	ConvolveValid ConvolveDomain = iota
	// ConvolveSame produces one output per input position, via edge
	// padding before a valid-domain convolution.
	ConvolveSame
)

// Pad returns a copy of v extended by before elements on the left and
// after on the right, filled according to mode.
func Pad[T Element](v *Vector[T], before, after int, mode PadMode) *Vector[T] {
	if before < 0 || after < 0 {
		panic(fmt.Sprintf("pad: negative padding (%d, %d)", before, after))
	}
	if mode != PadEdge {
		panic(fmt.Sprintf("pad: unknown mode %d", mode))
	}
	n := v.Len()
	out := NewVector[T](before + n + after)
	data := out.Data()
	left, right := v.At(0), v.At(n-1)
	for i := 0; i < before; i++ {
		data[i] = left
	}
	for i := 0; i < n; i++ {
		data[before+i] = v.At(i)
	}
	for i := 0; i < after; i++ {
		data[before+n+i] = right
	}
	return out
}

// Convolve convolves v with fil over the given domain. The valid domain
// requires fil.Len() <= v.Len() and yields v.Len()-fil.Len()+1 outputs; the
// same domain edge-pads v by fil.Len()/2 before and fil.Len()-1-fil.Len()/2
// after, then delegates to the valid-domain kernel, yielding v.Len()
// outputs.
func Convolve[T Float](v, fil *Vector[T], domain ConvolveDomain) *Vector[T] {
	k := fil.Len()
	switch domain {
	case ConvolveValid:
		if k > v.Len() {
			panic(fmt.Sprintf("convolve: kernel length %d exceeds input length %d", k, v.Len()))
		}
		out := NewVector[T](v.Len() - k + 1)
		kernel.VecConvolve(v.st.data(), v.st.offset, v.st.stride[0],
			fil.st.data(), fil.st.offset, fil.st.stride[0],
			out.st.data(), out.st.offset, 1, out.Len(), k)
		return out
	case ConvolveSame:
		padded := Pad(v, k/2, k-1-k/2, PadEdge)
		defer padded.Release()
		return Convolve(padded, fil, ConvolveValid)
	default:
		panic(fmt.Sprintf("convolve: unknown domain %d", domain))
	}
}

// Median applies a sliding median filter of width k. k must be odd,
// positive, and no longer than the vector. Windows near the boundary clamp
// to the vector's ends, so the first and last k/2 outputs repeat the
// first and last full windows' medians and the output keeps v's length.
//
// Each position sorts its own k-window, so the cost is O(n*k log k).
func Median[T Float](v *Vector[T], k int) *Vector[T] {
	if k <= 0 || k%2 == 0 {
		panic(fmt.Sprintf("median: kernel size %d must be odd and positive", k))
	}
	n := v.Len()
	if k > n {
		panic(fmt.Sprintf("median: kernel size %d exceeds input length %d", k, n))
	}
	src := v.Clone()
	defer src.Release()
	data := src.Data()

	out := NewVector[T](n)
	res := out.Data()
	parallel.For(n, func(i int) {
		start := i - k/2
		if start < 0 {
			start = 0
		} else if start > n-k {
			start = n - k
		}
		window := make([]T, k)
		copy(window, data[start:start+k])
		slices.Sort(window)
		res[i] = window[k/2]
	}, loopCfg)
	return out
}
