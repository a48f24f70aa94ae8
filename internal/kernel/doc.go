// Package kernel provides the strided primitive kernels backing the array
// operations: element-wise vector arithmetic, scalar-affine transforms,
// ramp generation, reductions, running sums, 1-D convolution, dense matrix
// multiply, matrix transpose, and 2-D image convolution.
//
// Every vector kernel addresses its operands as (buffer, offset, stride,
// count): the buffer is the whole backing slice, the offset is the index of
// the first element, and the stride is the step between consecutive
// elements. Strides may be negative. Callers are responsible for shape and
// bounds correctness; the kernels do no validation of their own.
package kernel
