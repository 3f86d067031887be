package fuzzgen

// Config controls the statistical knobs of the generator. Defaults live in
// a package-level value (see NewConfig); every With method clones before
// mutating, so a Config can be shared and specialized without aliasing
// surprises.
type Config struct {
	// NestingLimit is the expression-tree depth past which the termination
	// guard starts probabilistically cutting to trivial leaves (at 1/4
	// chance), and the depth at 3x which it always cuts.
	NestingLimit int

	// RecursionFactor further divides the odds of a self-call, on top of
	// Tries, to keep recursive functions rare.
	RecursionFactor int

	// Tries bounds the rejection-sampling loops used when searching for a
	// break target, a call target, or switch targets. Not an implementation
	// detail: changing it measurably changes the output distribution.
	Tries int

	// MemoryPages is the module's fixed initial=max page count.
	MemoryPages uint32
}

// defaultConfig holds the generator's tuned constants.
var defaultConfig = &Config{
	NestingLimit:    7,
	RecursionFactor: 10,
	Tries:           10,
	MemoryPages:     1,
}

// NewConfig returns a Config with the generator's default constants.
func NewConfig() *Config {
	return defaultConfig.clone()
}

func (c *Config) clone() *Config {
	cp := *c
	return &cp
}

// WithNestingLimit overrides NestingLimit.
func (c *Config) WithNestingLimit(n int) *Config {
	ret := c.clone()
	ret.NestingLimit = n
	return ret
}

// WithRecursionFactor overrides RecursionFactor.
func (c *Config) WithRecursionFactor(n int) *Config {
	ret := c.clone()
	ret.RecursionFactor = n
	return ret
}

// WithTries overrides Tries.
func (c *Config) WithTries(n int) *Config {
	ret := c.clone()
	ret.Tries = n
	return ret
}

// WithMemoryPages overrides MemoryPages.
func (c *Config) WithMemoryPages(n uint32) *Config {
	ret := c.clone()
	ret.MemoryPages = n
	return ret
}

// hardNestingCap is the absolute depth at which the termination guard
// always cuts to a trivial leaf, regardless of the 1/4 dice roll.
func (c *Config) hardNestingCap() int {
	return 3 * c.NestingLimit
}
