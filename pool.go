package md2html

import "runtime"

// Worker sizing constants for batch conversion.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps workers; conversion is pure string work, so more
	// workers than this just contend on the filesystem.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the I/O side of a batch run.
	cpuDivisor = 2
)

// ResolvePoolSize determines the worker count for batch conversion.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// A single Converter is safe for concurrent use, so workers share one
// instance; this only sizes the goroutine count.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in
	// container environments)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
