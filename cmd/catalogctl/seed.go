package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"tripplanner/internal/catalog"
	"tripplanner/internal/common/config"
	"tripplanner/internal/infra"
	"tripplanner/internal/repositories"
)

type seedOptions struct {
	catalogPath string
	configPath  string
}

func newSeedCmd(root *rootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog tables with the contents of a catalog file",
		Long: `seed validates a catalog file and writes it to Postgres in one
transaction, replacing every city and place already stored. The
database settings come from the service configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "data/places_data.json", "catalog JSON")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: configs/config.yaml lookup)")
	return cmd
}

func runSeed(cmd *cobra.Command, root *rootOptions, opts *seedOptions) error {
	ctx := cmd.Context()

	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	c, err := catalog.NewFileSource(opts.catalogPath).Load(ctx)
	if err != nil {
		return err
	}

	db, err := infra.InitPostgresql(cfg.Database.Postgres, root.log)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, root.log)

	if err := infra.MigrateCatalog(ctx, db); err != nil {
		return err
	}
	if err := catalog.Seed(ctx, repositories.NewCatalogRepository(db), c); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d cities and %d places (version %s)\n", len(c.Cities()), c.PlaceCount(), c.Version())
	return nil
}
