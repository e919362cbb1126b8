package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scanchain/def"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/greedy"
	"github.com/katalvlaran/scanchain/render"
	"github.com/katalvlaran/scanchain/router"
)

var (
	strategyName string
	metricName   string
	outFile      string
	svgFile      string
)

var routeCmd = &cobra.Command{
	Use:   "route <input.def>",
	Short: "Route the scan chains of a design",
	Long: `Read a DEF design, build the 16 scan chains and write them as nets.

The fast strategy buckets pins into 32 y-bands (O(n log n)); the slow one
inserts pins greedily at the cheapest position of any chain and yields
shorter wires. The output defaults to <input>_output.def.

Examples:
  scanchain route chip.def
  scanchain route --strategy slow --metric manhattan chip.def
  scanchain route -o nets.def --svg chains.svg chip.def`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.Flags().StringVarP(&strategyName, "strategy", "s", "fast",
		"routing strategy: fast|bands or slow|greedy")
	routeCmd.Flags().StringVarP(&metricName, "metric", "m", "euclidean",
		"distance: euclidean or manhattan")
	routeCmd.Flags().StringVarP(&outFile, "out", "o", "",
		"output net file (default <input>_output.def)")
	routeCmd.Flags().StringVar(&svgFile, "svg", "",
		"also draw the chains to this SVG file")
}

// defaultOutput derives "<input>_output.def" from the input path.
func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_output.def"
}

// readPoints parses a design file into router input.
func readPoints(filename string) ([]geometry.Point, error) {
	parser, err := def.NewParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}
	design, err := parser.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	return design.Points()
}

func runRoute(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	strategy, err := router.ParseStrategy(flagOr(cmd, "strategy", strategyName, cfg.Strategy))
	if err != nil {
		return err
	}
	metric, err := geometry.ParseMetric(flagOr(cmd, "metric", metricName, cfg.Metric))
	if err != nil {
		return err
	}

	points, err := readPoints(input)
	if err != nil {
		return err
	}
	logger.Printf("read %d points from %s", len(points), input)

	opts := router.Options{Strategy: strategy, Metric: metric}
	if strategy == router.Greedy {
		opts.OnInsert = func(in greedy.Insertion) {
			if (in.Step+1)%1000 == 0 {
				logger.Printf("inserted %d pins, total %.3f", in.Step+1, in.Total)
			}
		}
	}
	res, err := router.Route(points, opts)
	if err != nil {
		return err
	}
	logger.Printf("routed %d pins with %s strategy", res.Pins, res.Strategy)

	// Nets
	nets := outFile
	if nets == "" {
		nets = defaultOutput(input)
	}
	if err = writeFile(nets, func(f *os.File) error { return def.WriteNets(f, res.Set) }); err != nil {
		return err
	}
	logger.Printf("wrote nets to %s", nets)

	// Drawing
	if svgFile != "" {
		err = writeFile(svgFile, func(f *os.File) error {
			return render.Chains(f, res.Set, cfg.svgOptions())
		})
		if err != nil {
			return err
		}
		logger.Printf("wrote drawing to %s", svgFile)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "global_distance: %.4f\n", res.Stats.Total)
	fmt.Fprintf(out, "mean: %.4f\n", res.Stats.Mean)
	fmt.Fprintf(out, "standard deviation: %.4f\n", res.Stats.StdDev)

	return nil
}

// writeFile creates filename and hands it to write, reporting close errors.
func writeFile(filename string, write func(f *os.File) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	return f.Close()
}
