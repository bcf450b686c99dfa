package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mzimandl/cnc-tskit/colors"
	"github.com/mzimandl/cnc-tskit/internal/swatch"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch <hex>",
	Short: "Render a luminosity ramp as a PNG strip",
	Long: `Render a horizontal strip of swatch cells, interpolating the luminosity
factor from --from to --to across --steps cells of the base color.`,
	Args: cobra.ExactArgs(1),
	RunE: runSwatch,
}

func init() {
	rootCmd.AddCommand(swatchCmd)

	swatchCmd.Flags().StringP("output", "o", "swatch.png", "Output PNG path")
	swatchCmd.Flags().Int("steps", 7, "Number of swatch cells")
	swatchCmd.Flags().Float64("from", 0.4, "Luminosity factor of the first cell")
	swatchCmd.Flags().Float64("to", 1.6, "Luminosity factor of the last cell")
	swatchCmd.Flags().Int("cell", swatch.DefaultCell, "Cell edge length in pixels")
	swatchCmd.Flags().Float64("grain", 0, "Paper grain strength (0..1, 0 disables)")
	swatchCmd.Flags().Int64("seed", 1337, "Deterministic seed for the grain noise")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"swatch.output", "output"},
		{"swatch.steps", "steps"},
		{"swatch.from", "from"},
		{"swatch.to", "to"},
		{"swatch.cell", "cell"},
		{"swatch.grain", "grain"},
		{"swatch.seed", "seed"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, swatchCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runSwatch(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	base, err := colors.ImportColor(viper.GetFloat64("alpha"), args[0])
	if err != nil {
		return err
	}

	params := swatch.Params{
		Base:  base,
		Steps: viper.GetInt("swatch.steps"),
		From:  viper.GetFloat64("swatch.from"),
		To:    viper.GetFloat64("swatch.to"),
		Cell:  viper.GetInt("swatch.cell"),
		Grain: viper.GetFloat64("swatch.grain"),
		Seed:  viper.GetInt64("swatch.seed"),
	}

	img, err := swatch.Generate(params)
	if err != nil {
		return err
	}

	output := viper.GetString("swatch.output")
	if err := swatch.WritePNG(output, img); err != nil {
		return err
	}

	logger.Info("swatch written",
		"output", output,
		"base", base.Hex(),
		"steps", params.Steps,
		"from", params.From,
		"to", params.To)
	return nil
}
