package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mzimandl/cnc-tskit/colors"
	"github.com/mzimandl/cnc-tskit/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview <hex> [hex ...]",
	Short: "Preview colors as terminal swatches",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	importer := colors.Importer(viper.GetFloat64("alpha"))

	palette := make([]colors.RGBA, 0, len(args))
	for _, hex := range args {
		c, err := importer(hex)
		if err != nil {
			return err
		}
		palette = append(palette, c)
	}

	fmt.Println(preview.Render(palette))
	return nil
}
