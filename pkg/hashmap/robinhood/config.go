package robinhood

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/scottcagno/robinhood/pkg/hash"
)

// Config holds the tunables of a Map
type Config struct {
	InitialCapacity int             // slots allocated on creation and after Clear
	GrowthFactor    int             // capacity multiplier applied by a rebuild
	Logger          *zerolog.Logger // receives rebuild events at debug level
}

var defaultConfig = Config{
	InitialCapacity: DefaultInitialCapacity,
	GrowthFactor:    DefaultGrowthFactor,
}

// CheckConfig fills in defaults and clamps out of range values
func (conf Config) CheckConfig() Config {
	if conf.InitialCapacity < 1 {
		conf.InitialCapacity = defaultConfig.InitialCapacity
	}
	if conf.GrowthFactor < minGrowthFactor {
		conf.GrowthFactor = minGrowthFactor
	}
	if conf.Logger == nil {
		nop := zerolog.Nop()
		conf.Logger = &nop
	}
	return conf
}

func (conf Config) String() string {
	return fmt.Sprintf("InitialCapacity: %d, GrowthFactor: %d", conf.InitialCapacity, conf.GrowthFactor)
}

type options[K comparable] struct {
	hash hash.Func[K]
	conf Config
}

// Option configures a Map at construction time
type Option[K comparable] func(*options[K])

// WithHasher sets the hash function used for keys. A nil fn keeps the default.
func WithHasher[K comparable](fn hash.Func[K]) Option[K] {
	return func(o *options[K]) {
		if fn != nil {
			o.hash = fn
		}
	}
}

// WithConfig replaces the whole configuration
func WithConfig[K comparable](conf Config) Option[K] {
	return func(o *options[K]) {
		o.conf = conf
	}
}

// WithInitialCapacity sets the slot count of a new or cleared map.
// Values below one fall back to DefaultInitialCapacity.
func WithInitialCapacity[K comparable](n int) Option[K] {
	return func(o *options[K]) {
		o.conf.InitialCapacity = n
	}
}

// WithGrowthFactor sets the capacity multiplier applied by a rebuild.
// Values below two are raised to two.
func WithGrowthFactor[K comparable](n int) Option[K] {
	return func(o *options[K]) {
		o.conf.GrowthFactor = n
	}
}

// WithLogger sets the logger that receives rebuild events
func WithLogger[K comparable](l zerolog.Logger) Option[K] {
	return func(o *options[K]) {
		o.conf.Logger = &l
	}
}

func buildOptions[K comparable](opts []Option[K]) options[K] {
	o := options[K]{conf: defaultConfig}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hash == nil {
		o.hash = hash.Default[K]()
	}
	o.conf = o.conf.CheckConfig()
	return o
}
