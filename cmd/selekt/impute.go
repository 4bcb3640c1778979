package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/velmark/selekt/impute"
)

var imputeCmd = &cobra.Command{
	Use:   "impute",
	Short: "fill missing values in a one-column series",
	Long:  "impute reads one value per line (empty/NA/NaN = missing), fills the gaps with the selected strategy, and prints the patched series.",

	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}
		method, err := cmd.Flags().GetString("method")
		if err != nil {
			return err
		}

		desc, err := descriptorFor(method, impute.FromSelection)
		if err != nil {
			return err
		}

		series, err := loadSeries(input)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"input": input, "points": len(series)}).Debug("series loaded")

		out, err := impute.Fill(series, desc)
		if err != nil {
			return err
		}
		for _, v := range out {
			fmt.Println(strconv.FormatFloat(v, 'g', -1, 64))
		}

		return nil
	},
}

func init() {
	imputeCmd.Flags().String("input", "", "series file, one value per line")
	imputeCmd.Flags().String("method", "", "fill strategy name (overrides --config)")
	_ = imputeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(imputeCmd)
}
