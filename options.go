package bitmix

// config holds the tunable behavior of Parse. It is built from defaults
// plus any ParserOption the caller supplies, mirroring the functional
// options pattern used throughout this codec's ancestry.
type config struct {
	requireFullConsumption bool
}

func defaultConfig() config {
	return config{
		requireFullConsumption: true,
	}
}

// ParserOption configures a Parse call.
type ParserOption func(*config)

// WithTrailingData allows Parse to succeed when the buffer holds
// additional bytes (other than whitespace) after the root value, e.g.
// when the caller intends to advance past one value in a larger stream by
// hand. Default: false, a single JSON document must consume the entire
// buffer.
func WithTrailingData(allow bool) ParserOption {
	return func(c *config) {
		c.requireFullConsumption = !allow
	}
}
