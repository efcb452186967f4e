package solver

// Config holds generation parameters for the solver.
type Config struct {
	// Temperature is the sampling temperature. Kept low so answers favor
	// factual accuracy over variety. Default: 0.3.
	Temperature float64

	// MaxTokens bounds the length of a generated solution. Default: 1000.
	MaxTokens int
}

// DefaultConfig returns a Config with the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.3,
		MaxTokens:   1000,
	}
}
