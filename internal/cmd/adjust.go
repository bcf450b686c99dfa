package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mzimandl/cnc-tskit/colors"
	"github.com/mzimandl/cnc-tskit/pipe"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <hex>",
	Short: "Adjust the luminosity of a color",
	Long:  `Scale the RGB channels of a hex color by a factor and print the result.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAdjust,
}

func init() {
	rootCmd.AddCommand(adjustCmd)

	adjustCmd.Flags().Float64P("factor", "k", 1.0, "Luminosity factor (>= 0; 1 leaves the color unchanged)")

	if err := viper.BindPFlag("adjust.factor", adjustCmd.Flags().Lookup("factor")); err != nil {
		panic(fmt.Sprintf("failed to bind flag factor: %v", err))
	}
}

func runAdjust(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	alpha := viper.GetFloat64("alpha")
	factor := viper.GetFloat64("adjust.factor")

	base, err := colors.Importer(alpha)(args[0])
	if err != nil {
		return err
	}

	adjusted, err := pipe.Pipe(base, colors.WithLuminosity(factor))
	if err != nil {
		return err
	}

	logger.Debug("adjusted color", "input", args[0], "factor", factor, "result", adjusted.Hex())
	fmt.Println(colors.Formatter()(adjusted))
	return nil
}
