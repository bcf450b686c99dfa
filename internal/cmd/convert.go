package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mzimandl/cnc-tskit/colors"
)

var convertCmd = &cobra.Command{
	Use:   "convert <hex>",
	Short: "Convert a hex color to other representations",
	Long:  `Convert a #RRGGBB hex color to its rgba(), HSL, and canonical hex forms.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("format", "f", "all", "Output format: rgba, hsl, hex, or all")

	if err := viper.BindPFlag("convert.format", convertCmd.Flags().Lookup("format")); err != nil {
		panic(fmt.Sprintf("failed to bind flag format: %v", err))
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	alpha := viper.GetFloat64("alpha")
	format := viper.GetString("convert.format")

	c, err := colors.ImportColor(alpha, args[0])
	if err != nil {
		return err
	}

	switch format {
	case "rgba":
		fmt.Println(c)
	case "hsl":
		fmt.Println(formatHSL(colors.RGB2HSL(c)))
	case "hex":
		fmt.Println(c.Hex())
	case "all":
		fmt.Println(c)
		fmt.Println(formatHSL(colors.RGB2HSL(c)))
		fmt.Println(c.Hex())
	default:
		return fmt.Errorf("unknown format %q (expected rgba, hsl, hex, or all)", format)
	}

	return nil
}

func formatHSL(h colors.HSL) string {
	return fmt.Sprintf("hsl(%.3f, %.3f, %.3f)", h.H, h.S, h.L)
}
