package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Kernel is a blur convolution kernel: a Rows by Cols matrix of signed
// weights with an implicit center element. Both dimensions are odd so a
// center exists.
type Kernel struct {
	Rows, Cols int

	// Weights holds Rows*Cols coefficients in row-major order.
	Weights []float64
}

// At returns the weight at row r, column c.
func (k Kernel) At(r, c int) float64 {
	return k.Weights[r*k.Cols+c]
}

// HasNegative reports whether any weight is negative.
func (k Kernel) HasNegative() bool {
	for _, w := range k.Weights {
		if w < 0 {
			return true
		}
	}
	return false
}

// ParseBlurKernel parses one kernel descriptor of the form
// "rows,cols,weights...". Rows and cols must be positive odd integers and
// the weight count must equal rows*cols.
func ParseBlurKernel(s string) (Kernel, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 {
		return Kernel{}, fmt.Errorf("%w: %q: want rows,cols,weights...", ErrKernelDescriptor, s)
	}

	rows, err := ParseInt(strings.TrimSpace(parts[0]))
	if err != nil {
		return Kernel{}, fmt.Errorf("%w: %q: bad row count: %v", ErrKernelDescriptor, s, err)
	}
	cols, err := ParseInt(strings.TrimSpace(parts[1]))
	if err != nil {
		return Kernel{}, fmt.Errorf("%w: %q: bad column count: %v", ErrKernelDescriptor, s, err)
	}
	if rows <= 0 || rows%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: %q: rows must be a positive odd integer, got %d", ErrKernelDescriptor, s, rows)
	}
	if cols <= 0 || cols%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: %q: cols must be a positive odd integer, got %d", ErrKernelDescriptor, s, cols)
	}

	weights := parts[2:]
	if len(weights) != rows*cols {
		return Kernel{}, fmt.Errorf("%w: %q: want %d weights for a %dx%d kernel, got %d",
			ErrKernelDescriptor, s, rows*cols, rows, cols, len(weights))
	}

	k := Kernel{Rows: rows, Cols: cols, Weights: make([]float64, 0, rows*cols)}
	for _, t := range weights {
		w, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return Kernel{}, fmt.Errorf("%w: %q: bad weight %q", ErrKernelDescriptor, s, t)
		}
		k.Weights = append(k.Weights, w)
	}
	return k, nil
}

// ParseBlurKernelList parses a semicolon-separated sequence of kernel
// descriptors; each kernel is one blur pass applied in sequence. The
// has-negative flag is accumulated across every parsed kernel, not tracked
// per kernel. Any malformed descriptor fails the whole parse and no kernels
// are returned: a partially-applied blur kernel chain is worse than none.
func ParseBlurKernelList(s string) ([]Kernel, bool, error) {
	var kernels []Kernel
	hasNeg := false
	for _, desc := range strings.Split(s, ";") {
		if strings.TrimSpace(desc) == "" {
			continue
		}
		k, err := ParseBlurKernel(desc)
		if err != nil {
			return nil, false, err
		}
		if k.HasNegative() {
			hasNeg = true
		}
		kernels = append(kernels, k)
	}
	if len(kernels) == 0 {
		return nil, false, fmt.Errorf("%w: %q contains no kernels", ErrKernelDescriptor, s)
	}
	return kernels, hasNeg, nil
}
