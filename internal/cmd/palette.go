package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mzimandl/cnc-tskit/colors"
	"github.com/mzimandl/cnc-tskit/internal/palettedb"
	"github.com/mzimandl/cnc-tskit/internal/preview"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage named palettes",
	Long:  `Save, list, show, and delete named color palettes stored in a local database.`,
}

var paletteSaveCmd = &cobra.Command{
	Use:   "save <name> <hex> [hex ...]",
	Short: "Save a palette under a name",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPaletteSave,
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored palettes",
	Args:  cobra.NoArgs,
	RunE:  runPaletteList,
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored palette as terminal swatches",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteShow,
}

var paletteDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteDelete,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteSaveCmd, paletteListCmd, paletteShowCmd, paletteDeleteCmd)
}

func openPaletteStore() (*palettedb.Store, error) {
	return palettedb.Open(viper.GetString("palette_db"))
}

func runPaletteSave(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	name := args[0]
	alpha := viper.GetFloat64("alpha")

	importer := colors.Importer(alpha)
	palette := make([]colors.RGBA, 0, len(args)-1)
	for _, hex := range args[1:] {
		c, err := importer(hex)
		if err != nil {
			return err
		}
		palette = append(palette, c)
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(name, palette); err != nil {
		return err
	}

	logger.Info("palette saved", "name", name, "colors", len(palette))
	return nil
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no palettes stored")
		return nil
	}

	for _, info := range infos {
		fmt.Printf("%s (%d colors)\n", info.Name, info.Size)
	}
	return nil
}

func runPaletteShow(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	palette, err := store.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println(preview.Render(palette))
	return nil
}

func runPaletteDelete(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return err
	}

	logger.Info("palette deleted", "name", args[0])
	return nil
}
