package cricket

import "time"

type Config struct {
	Debug bool `envconfig:"QUIZCRICKET_DEBUG" default:"false"`
	// Seed fixes the random source for replays, 0 seeds from the clock.
	Seed        uint32        `envconfig:"QUIZCRICKET_SEED" default:"0"`
	CatalogPath string        `envconfig:"QUIZCRICKET_CATALOG_PATH"`
	CacheSize   int           `envconfig:"QUIZCRICKET_CACHE_SIZE" default:"16"`
	RevealDelay time.Duration `envconfig:"QUIZCRICKET_REVEAL_DELAY" default:"600ms"`
	HistorySize int           `envconfig:"QUIZCRICKET_HISTORY_SIZE" default:"6"`
}
