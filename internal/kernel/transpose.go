package kernel

// MatTranspose writes the transpose of a rows×cols row-major matrix into a
// cols×rows row-major destination. is and os are the element strides within
// each buffer (1 for tightly packed matrices). in and out must not alias.
// Unlike the arithmetic kernels it only moves elements, so it accepts any
// element type.
func MatTranspose[T any](in []T, io, is int, out []T, oo, os int, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[oo+(j*rows+i)*os] = in[io+(i*cols+j)*is]
		}
	}
}
