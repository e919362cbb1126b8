package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jbeda/geom"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/scanchain/def"
	"github.com/katalvlaran/scanchain/layout"
)

var (
	genSeed   int64
	genWidth  float64
	genHeight float64
	genName   string
	genOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <pins>",
	Short: "Write a synthetic design",
	Long: `Write a design with the 32 driver pins on the left and right die edges
and <pins> ordinary pins placed uniformly at random.

Examples:
  scanchain generate 1000 -o small.def
  scanchain generate 1000000 --seed 3 --width 5000 --height 5000 -o huge.def`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "random seed")
	generateCmd.Flags().Float64Var(&genWidth, "width", layout.DefaultWidth, "die width")
	generateCmd.Flags().Float64Var(&genHeight, "height", layout.DefaultHeight, "die height")
	generateCmd.Flags().StringVar(&genName, "name", "scanchain", "design name")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "output file (default stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid pin count %q: %w", args[0], err)
	}
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	var (
		seed   = flagOr(cmd, "seed", genSeed, cfg.Generate.Seed)
		width  = flagOr(cmd, "width", genWidth, cfg.Generate.Width)
		height = flagOr(cmd, "height", genHeight, cfg.Generate.Height)
	)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("die size must be positive, got %gx%g", width, height)
	}

	points, err := layout.Generate(n,
		layout.WithSeed(seed),
		layout.WithDie(width, height),
	)
	if err != nil {
		return err
	}
	die := geom.Rect{Max: geom.Coord{X: width, Y: height}}

	if genOut == "" {
		return def.WriteDesign(cmd.OutOrStdout(), genName, die, points)
	}
	err = writeFile(genOut, func(f *os.File) error {
		return def.WriteDesign(f, genName, die, points)
	})
	if err != nil {
		return err
	}
	logger.Printf("wrote %d pins to %s", n, genOut)

	return nil
}
