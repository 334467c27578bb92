package ranking

// Config holds the constants of the traversal cost model.
type Config struct {
	// Epsilon keeps denominators away from zero.
	Epsilon float64

	// MinIntensity floors intensities used as cost denominators.
	MinIntensity float64

	// DefaultIntensity applies to neighbors absent from the intensity map.
	DefaultIntensity float64

	// CutoffScale and CutoffEpsilon define the adaptive ceiling
	// CutoffScale / (avgIntensity + avgTone + CutoffEpsilon).
	CutoffScale   float64
	CutoffEpsilon float64

	// MinPriority floors priorities before inversion.
	MinPriority float64

	// ContextWindow is how many trailing path nodes are checked for repeats,
	// and ContextPenalty the amount added to the cost multiplier on a repeat.
	ContextWindow  int
	ContextPenalty float64
}

// DefaultConfig returns the standard cost model.
func DefaultConfig() Config {
	return Config{
		Epsilon:          1e-6,
		MinIntensity:     0.1,
		DefaultIntensity: 1.0,
		CutoffScale:      100,
		CutoffEpsilon:    1e-3,
		MinPriority:      0.01,
		ContextWindow:    3,
		ContextPenalty:   0.5,
	}
}

// normalize replaces unset fields with defaults.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.Epsilon <= 0 {
		c.Epsilon = d.Epsilon
	}
	if c.MinIntensity <= 0 {
		c.MinIntensity = d.MinIntensity
	}
	if c.DefaultIntensity == 0 {
		c.DefaultIntensity = d.DefaultIntensity
	}
	if c.CutoffScale <= 0 {
		c.CutoffScale = d.CutoffScale
	}
	if c.CutoffEpsilon <= 0 {
		c.CutoffEpsilon = d.CutoffEpsilon
	}
	if c.MinPriority <= 0 {
		c.MinPriority = d.MinPriority
	}
	if c.ContextWindow < 0 {
		c.ContextWindow = d.ContextWindow
	}
	if c.ContextPenalty < 0 {
		c.ContextPenalty = d.ContextPenalty
	}
	return c
}
