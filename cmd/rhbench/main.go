package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scottcagno/robinhood/pkg/hash"
)

// cmdRoot loads a robin hood map and reports how its slot table looks.
var cmdRoot = &cobra.Command{
	Use:   "rhbench",
	Short: "Load an ordered robin hood map and report its slot table shape",
	Long: `
rhbench inserts a number of generated string keys into a robin hood map,
erases a share of them again, and logs load factor, displacement and
rebuild statistics along with the time each phase took.

Every flag can also be given as an environment variable prefixed with
RHBENCH_, for example RHBENCH_KEYS=100000.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(viper.GetString("log-level"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		return runBench(opts, log.Logger)
	},
}

func init() {
	f := cmdRoot.Flags()
	f.Int("keys", 100000, "number of keys to insert")
	f.Float64("erase", 0.25, "share of the inserted keys to erase again (0-1)")
	f.Int64("seed", 1, "seed for picking the keys to erase")
	f.String("hasher", "default", "key hasher, one of: "+strings.Join(hash.Names, ", "))
	f.Int("growth", 10, "capacity multiplier applied on rebuild")
	f.Int("initial", 1, "initial slot count")
	f.String("log-level", "info", "log level (debug logs every rebuild)")

	viper.SetEnvPrefix("rhbench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(f); err != nil {
		panic(err)
	}
}

func initLogger(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
