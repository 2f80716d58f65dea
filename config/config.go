package config

type (
	HeadersNumber struct {
		Default, Maximal int
	}
)

type (
	Headers struct {
		// Number is responsible for headers storage size.
		// Default value is an initial capacity of the storage.
		// Maximal value is maximum number of header lines allowed to be presented,
		// duplicates included.
		Number HeadersNumber
	}

	Pool struct {
		// Size limits how many released header storages are kept by a parser for reuse.
		Size int
	}
)

// Config holds restrictions and pre-allocations of the parser.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Pool    Pool
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 100,
			},
		},
		Pool: Pool{
			Size: 16,
		},
	}
}
