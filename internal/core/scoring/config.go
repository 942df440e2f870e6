package scoring

// Defaults of the inference procedure
const (
	DefaultTrials               = 7
	DefaultIterationLimit       = 1000
	DefaultAlpha                = 0.5
	DefaultAlphaWidth           = 0.05
	DefaultConvergenceThreshold = 0.99999
	DefaultCheckInterval        = 5
	DefaultStallEpsilon         = 1e-12
	DefaultBaseFreq             = 10000
)

// Config tunes the randomized inference
type Config struct {
	// Trials is the number of independent randomized passes averaged together
	Trials int `json:"n_trial" validate:"min=1,max=1000"`

	// IterationLimit caps the Bayesian updates of one trial
	IterationLimit int `json:"iteration_limit" validate:"min=1"`

	// Alpha and AlphaWidth set the smoothing floor and its per-trial gaussian jitter
	Alpha      float64 `json:"alpha_default" validate:"gte=0"`
	AlphaWidth float64 `json:"alpha_width" validate:"gte=0"`

	// ConvergenceThreshold stops a trial once the leading probability exceeds it
	ConvergenceThreshold float64 `json:"convergence_threshold" validate:"gt=0,lte=1"`

	// CheckInterval is how many updates pass between convergence checks
	CheckInterval int `json:"check_interval" validate:"min=1"`

	// StallEpsilon stops a trial whose leading probability moved less than this
	// across one interval; 0 disables the check
	StallEpsilon float64 `json:"stall_epsilon" validate:"gte=0"`

	// BaseFreq scales Alpha into a per-gram probability floor
	BaseFreq float64 `json:"base_freq" validate:"gt=0"`
}

// DefaultConfig returns the stock inference settings
func DefaultConfig() Config {
	return Config{
		Trials:               DefaultTrials,
		IterationLimit:       DefaultIterationLimit,
		Alpha:                DefaultAlpha,
		AlphaWidth:           DefaultAlphaWidth,
		ConvergenceThreshold: DefaultConvergenceThreshold,
		CheckInterval:        DefaultCheckInterval,
		StallEpsilon:         DefaultStallEpsilon,
		BaseFreq:             DefaultBaseFreq,
	}
}

// orDefaults fills the fields that have no meaningful zero value
func (c Config) orDefaults() Config {
	d := DefaultConfig()
	if c.Trials <= 0 {
		c.Trials = d.Trials
	}
	if c.IterationLimit <= 0 {
		c.IterationLimit = d.IterationLimit
	}
	if c.ConvergenceThreshold <= 0 {
		c.ConvergenceThreshold = d.ConvergenceThreshold
	}
	if c.CheckInterval <= 0 {
		c.CheckInterval = d.CheckInterval
	}
	if c.BaseFreq <= 0 {
		c.BaseFreq = d.BaseFreq
	}
	return c
}
