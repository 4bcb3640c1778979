package main

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/velmark/selekt/config"
)

// envPrefix namespaces the CLI's environment variables, e.g.
// SELEKT_STRATEGY overrides the strategy named in --config.
const envPrefix = "SELEKT"

var rootCmd = &cobra.Command{
	Use:   "selekt",
	Short: "strategy-driven series cleanup",
	Long:  "selekt fills gaps, flags outliers and trims strings using named, configurable strategies.",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	rootCmd.PersistentFlags().String("config", "", "strategy selection file (YAML)")
}

func execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Fatal("cannot bind persistent flags")
	}
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("cannot execute command")
	}
}

// descriptorFor picks the strategy descriptor for a subcommand: an explicit
// --method wins; otherwise the --config selection is loaded, with
// SELEKT_STRATEGY allowed to override the file.
func descriptorFor(method string, fromSelection func(config.Selection) (any, error)) (any, error) {
	if method != "" {
		return method, nil
	}

	path := viper.GetString("config")
	if path == "" {
		return nil, errors.New("either --method or --config is required")
	}

	sel, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err = config.EnvOverride(envPrefix, &sel); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"file": path, "strategy": sel.Strategy}).Debug("selection loaded")

	return fromSelection(sel)
}

// loadSeries reads a one-column numeric series: one value per line, with
// empty lines, "NA" and "NaN" treated as missing observations.
func loadSeries(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open series file")
	}
	defer f.Close()

	var series []float64
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		field := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(field) {
		case "", "na", "nan", "null":
			series = append(series, math.NaN())
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: bad value %q", path, line, field)
		}
		series = append(series, v)
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read series file")
	}

	return series, nil
}
