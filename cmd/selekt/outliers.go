package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/velmark/selekt/outlier"
)

var outliersCmd = &cobra.Command{
	Use:   "outliers",
	Short: "flag outlying values in a one-column series",

	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		method, err := cmd.Flags().GetString("method")
		if err != nil {
			return err
		}

		desc, err := descriptorFor(method, outlier.FromSelection)
		if err != nil {
			return err
		}

		series, err := loadSeries(input)
		if err != nil {
			return err
		}

		idx, err := outlier.Detect(series, desc)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"points": len(series), "outliers": len(idx)}).Debug("detection done")

		for _, i := range idx {
			fmt.Printf("%d\t%g\n", i, series[i])
		}

		return nil
	},
}

func init() {
	outliersCmd.Flags().String("input", "", "series file, one value per line")
	outliersCmd.Flags().String("method", "", "detection strategy name (overrides --config)")
	_ = outliersCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(outliersCmd)
}
