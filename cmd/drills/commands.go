package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/deppfellow/blogful/internal/config"
	"github.com/deppfellow/blogful/internal/database"
	"github.com/deppfellow/blogful/internal/lib/utils"
	"github.com/deppfellow/blogful/internal/logger"
	"github.com/deppfellow/blogful/internal/repository"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the drills command tree. Every subcommand reads the
// same BLOGFUL_* configuration as the server.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "drills",
		Short: "Run the shopping-list reporting queries",
		Long: `Run the shopping-list reporting queries against the configured database
and print the rows as JSON.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(NewSearchCommand())
	rootCmd.AddCommand(NewPaginateCommand())
	rootCmd.AddCommand(NewSinceCommand())
	rootCmd.AddCommand(NewTotalsCommand())
	rootCmd.AddCommand(NewMigrateCommand())

	return rootCmd
}

// env is what every subcommand needs: config and a logger.
type env struct {
	cfg *config.Config
	log zerolog.Logger
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Observability.Logging.Level = "debug"
	}

	return &env{cfg: cfg, log: logger.NewLogger(cfg.Observability)}, nil
}

// withProducts opens a pool for the duration of fn.
func withProducts(cmd *cobra.Command, fn func(ctx context.Context, products *repository.ProductRepository) (any, error)) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	db, err := database.New(e.cfg, &e.log, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := fn(cmd.Context(), repository.NewProductRepository(db.Pool))
	if err != nil {
		return err
	}
	return utils.PrintJSON(cmd.OutOrStdout(), result)
}

func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Products whose name contains term, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProducts(cmd, func(ctx context.Context, products *repository.ProductRepository) (any, error) {
				return products.SearchByName(ctx, args[0])
			})
		},
	}
}

func NewPaginateCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "paginate <page>",
		Short: "One page of products, ordered by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("page must be an integer: %w", err)
			}

			return withProducts(cmd, func(ctx context.Context, products *repository.ProductRepository) (any, error) {
				return products.Paginate(ctx, page, size)
			})
		},
	}

	cmd.Flags().IntVar(&size, "size", repository.DefaultPageSize, "products per page")

	return cmd
}

func NewSinceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "since <days>",
		Short: "Products added within the last days days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("days must be a number: %w", err)
			}

			return withProducts(cmd, func(ctx context.Context, products *repository.ProductRepository) (any, error) {
				return products.AddedSince(ctx, days)
			})
		},
	}
}

func NewTotalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Total price per category, largest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProducts(cmd, func(ctx context.Context, products *repository.ProductRepository) (any, error) {
				return products.TotalCostByCategory(ctx)
			})
		},
	}
}

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return database.Migrate(cmd.Context(), &e.log, e.cfg)
		},
	}
}
