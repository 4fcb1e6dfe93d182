package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tripplanner/internal/catalog"
	"tripplanner/internal/catalogbuild"
)

type buildOptions struct {
	input  string
	costs  string
	output string
}

func newBuildCmd(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build places_data.json from an attractions CSV",
		Example: `  catalogctl build --input attractions.csv --output data/places_data.json
  catalogctl build --input attractions.csv --costs travel_cost.csv --output data/places_data.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.input, "input", "", "attractions CSV")
	cmd.Flags().StringVar(&opts.costs, "costs", "", "optional accommodation cost CSV")
	cmd.Flags().StringVar(&opts.output, "output", "data/places_data.json", "catalog JSON to write")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runBuild(cmd *cobra.Command, root *rootOptions, opts *buildOptions) error {
	in, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer in.Close()

	table, err := catalogbuild.ReadTable(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.input, err)
	}

	var accommodation map[string]int
	if opts.costs != "" {
		f, err := os.Open(opts.costs)
		if err != nil {
			return err
		}
		accommodation, err = catalogbuild.LoadTravelCosts(f)
		f.Close()
		if err != nil {
			// costs only refine the daily estimate
			root.log.WithError(err).Warn("ignoring travel cost file", map[string]interface{}{"path": opts.costs})
			accommodation = nil
		}
	}

	cities, report, err := catalogbuild.Build(table, accommodation)
	if err != nil {
		return err
	}
	if err := catalog.WriteFile(opts.output, cities); err != nil {
		return err
	}

	root.log.Info("catalog built", map[string]interface{}{
		"rows":            report.Rows,
		"skipped_no_name": report.SkippedNoName,
		"duplicate_names": report.DuplicateNames,
	})
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d places across %d cities to %s\n", report.Places, report.Cities, opts.output)
	return nil
}
