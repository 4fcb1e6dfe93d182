package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"tripplanner/internal/catalog"
	"tripplanner/internal/planner"
	"tripplanner/internal/services"
)

type planOptions struct {
	catalogPath string
	city        string
	days        int
	budget      float64
	interests   []string
	travelType  string
	minPerDay   int
	maxPerDay   int
}

func newPlanCmd(root *rootOptions) *cobra.Command {
	opts := &planOptions{}
	defaults := planner.DefaultPolicy()

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Print an itinerary for a trip as JSON",
		Example: `  catalogctl plan --city Goa --days 3 --budget 4000 --interests nature,food --type friends`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "data/places_data.json", "catalog JSON")
	cmd.Flags().StringVar(&opts.city, "city", "", "destination city")
	cmd.Flags().IntVar(&opts.days, "days", 1, "trip length in days")
	cmd.Flags().Float64Var(&opts.budget, "budget", 0, "total budget")
	cmd.Flags().StringSliceVar(&opts.interests, "interests", nil, "comma separated interests")
	cmd.Flags().StringVar(&opts.travelType, "type", string(planner.TravelSolo), "solo or friends")
	cmd.Flags().IntVar(&opts.minPerDay, "min-per-day", defaults.MinPlacesPerDay, "places per day used for the capacity estimate")
	cmd.Flags().IntVar(&opts.maxPerDay, "max-per-day", defaults.MaxPlacesPerDay, "most places in a single day")
	_ = cmd.MarkFlagRequired("city")
	return cmd
}

func runPlan(cmd *cobra.Command, root *rootOptions, opts *planOptions) error {
	c, err := catalog.NewFileSource(opts.catalogPath).Load(cmd.Context())
	if err != nil {
		return err
	}

	req, err := planner.NormalizeRequest(opts.city, opts.days, opts.budget, opts.interests, opts.travelType)
	if err != nil {
		return err
	}
	policy := planner.DefaultPolicy()
	policy.MinPlacesPerDay = opts.minPerDay
	policy.MaxPlacesPerDay = opts.maxPerDay

	it, err := planner.GenerateItinerary(req, c, policy)
	if err != nil {
		return err
	}
	for _, w := range it.Warnings {
		root.log.Info("plan relaxed", map[string]interface{}{"code": w.Code, "message": w.Message})
	}

	city, _ := c.City(it.City)
	out, err := json.MarshalIndent(services.PresentItinerary(it, city, req, c.Version()), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
