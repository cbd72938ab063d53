package main

// Config holds search tuning parameters.
type Config struct {
	// Workers is the number of goroutines scanning each wave.
	// Zero or negative means one per available CPU.
	Workers int
	// ProgressEvery is how many scanned states between within-wave
	// progress lines when Verbose is set. Zero disables them.
	ProgressEvery int64
}

// DefaultConfig returns the standard tuning parameters.
func DefaultConfig() Config {
	return Config{
		Workers:       0,
		ProgressEvery: 1 << 20,
	}
}

// Verbose controls whether detailed search progress is printed to stderr.
var Verbose bool
