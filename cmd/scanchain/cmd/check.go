package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scanchain/chain"
	"github.com/katalvlaran/scanchain/def"
	"github.com/katalvlaran/scanchain/driver"
	"github.com/katalvlaran/scanchain/geometry"
	"github.com/katalvlaran/scanchain/stats"
)

var checkMetric string

var checkCmd = &cobra.Command{
	Use:   "check <input.def> <output.def>",
	Short: "Validate a routing against its design",
	Long: `Rebuild the chains from the nets of <output.def>, check that every chain
runs from its input driver to the paired output driver and that every pin of
<input.def> is routed exactly once, then print the chain statistics.

Examples:
  scanchain check chip.def chip_output.def
  scanchain check --metric manhattan chip.def chip_output.def`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkMetric, "metric", "m", "euclidean",
		"distance: euclidean or manhattan")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	metric, err := geometry.ParseMetric(flagOr(cmd, "metric", checkMetric, cfg.Metric))
	if err != nil {
		return err
	}

	points, err := readPoints(args[0])
	if err != nil {
		return err
	}
	reg, err := driver.NewRegistry(points)
	if err != nil {
		return err
	}
	byName := make(map[string]geometry.Point, len(points))
	for _, p := range points {
		if _, dup := byName[p.Name]; dup {
			return fmt.Errorf("duplicate pin name %q in %s", p.Name, args[0])
		}
		byName[p.Name] = p
	}

	parser, err := def.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	links, err := parser.ParseNetsFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}
	logger.Printf("read %d links from %s", len(links), args[1])

	set, err := chain.FromLinks(links, reg, byName)
	if err != nil {
		return err
	}
	pins := geometry.OrdinaryPins(points)
	if err = chain.Validate(set, reg, pins); err != nil {
		return err
	}
	st, err := stats.FromSet(set, metric)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "All %d chains are valid, %d pins routed.\n", len(set), len(pins))
	for i, l := range st.Lengths {
		fmt.Fprintf(out, "  chain %2d: %12.4f (%d pins)\n", i, l, len(set[i].Interior()))
	}
	fmt.Fprintf(out, "total: %.4f\n", st.Total)
	fmt.Fprintf(out, "mean: %.4f\n", st.Mean)
	fmt.Fprintf(out, "standard deviation: %.4f\n", st.StdDev)
	fmt.Fprintf(out, "sample standard deviation: %.4f\n", st.SampleStdDev)
	fmt.Fprintf(out, "max-min: %.4f\n", st.Spread)

	return nil
}
