package strata

const (
	// InitialBase is the starting and minimum base block size. The base is
	// always a power-of-two multiple of it.
	InitialBase = 4

	// DefaultLevels is the level count used by New. More levels lower the
	// capacity overhead at the cost of slower growth and shrinkage.
	DefaultLevels = 3
)
