package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/AnnaReese/Citidle/internal/config"
	"github.com/AnnaReese/Citidle/internal/dataset"
	"github.com/AnnaReese/Citidle/internal/game"
)

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "citidle",
		Short:         "A daily guess-the-US-city game.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	fs := cmd.PersistentFlags()
	fs.String("log-level", "info", "log level: debug, info, warn, error (env: CITIDLE_LOG_LEVEL)")
	fs.String("log-format", "json", "log format: json or text (env: CITIDLE_LOG_FORMAT)")
	fs.String("dataset", "", "path to a cities CSV; empty uses the embedded dataset (env: CITIDLE_DATASET)")
	fs.Int("min-population", 300000, "minimum city population to include (env: CITIDLE_MIN_POPULATION)")

	cmd.AddCommand(newServeCmd(v))
	cmd.AddCommand(newPlayCmd(v))
	cmd.AddCommand(newValidateCmd(v))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	return cmd
}

// bindFlags attaches a command's flags (its own plus inherited ones) to the
// viper instance so CITIDLE_* env vars back every flag.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	bind := func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)
}

// loadCities returns the filtered dataset: the embedded CSV by default, or
// the file named by --dataset.
func loadCities(cfg *config.Config) ([]dataset.CityRecord, error) {
	var (
		records []dataset.CityRecord
		err     error
	)
	if cfg.DatasetPath != "" {
		records, err = dataset.LoadFile(cfg.DatasetPath)
	} else {
		records, err = dataset.Default()
	}
	if err != nil {
		return nil, err
	}

	records = dataset.FilterMinPopulation(records, cfg.MinPopulation)
	if len(records) == 0 {
		return nil, fmt.Errorf("no cities with population >= %d in dataset", cfg.MinPopulation)
	}
	return records, nil
}

func buildEngine(cfg *config.Config) (*game.Engine, error) {
	records, err := loadCities(cfg)
	if err != nil {
		return nil, err
	}
	return game.NewEngine(records)
}
