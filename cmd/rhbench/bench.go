package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/scottcagno/robinhood/pkg/hash"
	"github.com/scottcagno/robinhood/pkg/hashmap/robinhood"
)

// benchOptions bundles the settings of one run
type benchOptions struct {
	Keys    int
	Erase   float64
	Seed    int64
	Hasher  string
	Growth  int
	Initial int
}

func loadOptions() (benchOptions, error) {
	opts := benchOptions{
		Keys:    viper.GetInt("keys"),
		Erase:   viper.GetFloat64("erase"),
		Seed:    viper.GetInt64("seed"),
		Hasher:  viper.GetString("hasher"),
		Growth:  viper.GetInt("growth"),
		Initial: viper.GetInt("initial"),
	}
	return opts, opts.check()
}

func (o benchOptions) check() error {
	if o.Keys < 0 {
		return errors.Errorf("keys must not be negative, got %d", o.Keys)
	}
	if o.Erase < 0 || o.Erase > 1 {
		return errors.Errorf("erase must be between 0 and 1, got %v", o.Erase)
	}
	return nil
}

func benchKey(i int) string {
	return fmt.Sprintf("key-%08d", i)
}

func runBench(o benchOptions, logger zerolog.Logger) error {
	_, err := bench(o, logger)
	return err
}

// bench fills a map, erases a random share of it, looks every key up
// again, and logs the table shape after each phase.
func bench(o benchOptions, logger zerolog.Logger) (*robinhood.Map[string, int], error) {
	fn, err := hash.ByName(o.Hasher)
	if err != nil {
		return nil, err
	}
	m := robinhood.New[string, int](
		robinhood.WithHasher(fn),
		robinhood.WithConfig[string](robinhood.Config{
			InitialCapacity: o.Initial,
			GrowthFactor:    o.Growth,
			Logger:          &logger,
		}),
	)

	start := time.Now()
	for i := 0; i < o.Keys; i++ {
		m.Insert(benchKey(i), i)
	}
	logPhase(logger, "insert", m.Stats(), time.Since(start))

	rnd := rand.New(rand.NewSource(o.Seed))
	erase := int(float64(o.Keys) * o.Erase)
	start = time.Now()
	for _, i := range rnd.Perm(o.Keys)[:erase] {
		m.Erase(benchKey(i))
	}
	logPhase(logger, "erase", m.Stats(), time.Since(start))

	start = time.Now()
	var found int
	for i := 0; i < o.Keys; i++ {
		if m.Contains(benchKey(i)) {
			found++
		}
	}
	if found != m.Len() {
		return m, errors.Errorf("found %d keys, map holds %d", found, m.Len())
	}
	logPhase(logger, "lookup", m.Stats(), time.Since(start))
	return m, nil
}

func logPhase(logger zerolog.Logger, phase string, s robinhood.Stats, took time.Duration) {
	logger.Info().
		Str("phase", phase).
		Int("len", s.Len).
		Int("cap", s.Cap).
		Float64("load", s.LoadFactor).
		Int("max_dist", s.MaxDisplacement).
		Float64("mean_dist", s.MeanDisplacement).
		Int("rebuilds", s.Rebuilds).
		Dur("took", took).
		Msg("phase done")
}
