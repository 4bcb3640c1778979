package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velmark/selekt/strategy"
	"github.com/velmark/selekt/trim"
)

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "trim each line of stdin",
	Long:  "trim reads lines from stdin and trims the selected side. The legacy --left/--right flags map onto --side with left+right (or neither) meaning both.",

	RunE: func(cmd *cobra.Command, args []string) error {
		side, err := cmd.Flags().GetString("side")
		if err != nil {
			return err
		}
		chars, err := cmd.Flags().GetString("chars")
		if err != nil {
			return err
		}
		left, err := cmd.Flags().GetBool("left")
		if err != nil {
			return err
		}
		right, err := cmd.Flags().GetBool("right")
		if err != nil {
			return err
		}

		tag := strategy.Tag(side)
		if side == "" {
			tag = trim.SideFromFlags(left, right)
		}

		var descriptor any = tag
		if chars != "" {
			descriptor = trim.Cutset(tag, chars)
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			out, err := trim.Trim(scanner.Text(), descriptor)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}

		return scanner.Err()
	},
}

func init() {
	trimCmd.Flags().String("side", "", "side strategy: left, right or both")
	trimCmd.Flags().String("chars", "", "runes to trim instead of whitespace")
	trimCmd.Flags().Bool("left", false, "legacy flag: trim the start")
	trimCmd.Flags().Bool("right", false, "legacy flag: trim the end")

	rootCmd.AddCommand(trimCmd)
}
