package main

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/robinhood/pkg/hash"
)

func TestBench(t *testing.T) {
	for _, name := range hash.Names {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			m, err := bench(benchOptions{
				Keys:    2000,
				Erase:   0.5,
				Seed:    1,
				Hasher:  name,
				Growth:  10,
				Initial: 1,
			}, zerolog.New(&buf))
			require.NoError(t, err)
			assert.Equal(t, 1000, m.Len())
			assert.Contains(t, buf.String(), `"phase":"lookup"`)
		})
	}
}

func TestBench_UnknownHasher(t *testing.T) {
	_, err := bench(benchOptions{Hasher: "sha1"}, zerolog.Nop())
	assert.True(t, errors.Is(err, hash.ErrUnknownHasher))
}

func TestBenchOptions_Check(t *testing.T) {
	assert.NoError(t, benchOptions{Keys: 10, Erase: 0.1}.check())
	assert.Error(t, benchOptions{Keys: -1}.check())
	assert.Error(t, benchOptions{Erase: 1.5}.check())
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, initLogger("DEBUG"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Error(t, initLogger("loud"))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
