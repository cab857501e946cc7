package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/eplradar/config"
	"github.com/DhavalSuthar-24/eplradar/internal/database"
	"github.com/DhavalSuthar-24/eplradar/internal/seed"
)

var seedTargets = []string{"clubs", "players", "matches", "news", "all", "derive-clubs"}

type seedOptions struct {
	file     string
	dataDir  string
	mediaDir string
}

func newSeedCmd() *cobra.Command {
	var opts seedOptions

	c := &cobra.Command{
		Use:       "seed [clubs|players|matches|news|all|derive-clubs]",
		Short:     "Import fixture CSV files",
		Long:      "Import the CSV fixtures from the data directory. derive-clubs rebuilds clubs.csv from matches.csv without touching the database.",
		ValidArgs: seedTargets,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			opts.defaults(cfg)

			if args[0] == "derive-clubs" {
				return deriveClubs(cmd.OutOrStdout(), opts)
			}

			db, err := config.ConnectDB(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			return runSeed(cmd.Context(), cmd.OutOrStdout(), db, args[0], opts)
		},
	}

	c.Flags().StringVarP(&opts.file, "file", "f", "", "CSV file to import (defaults to <data-dir>/<target>.csv)")
	c.Flags().StringVar(&opts.dataDir, "data-dir", "", "directory holding the fixture files")
	c.Flags().StringVar(&opts.mediaDir, "media-dir", "", "directory holding clubs/ and players/ images")
	return c
}

func (o *seedOptions) defaults(cfg *config.Config) {
	if o.dataDir == "" {
		o.dataDir = cfg.App.DataDir
	}
	if o.mediaDir == "" {
		o.mediaDir = cfg.App.MediaDir
	}
}

func (o seedOptions) path(name string) string {
	if o.file != "" {
		return o.file
	}
	return filepath.Join(o.dataDir, name)
}

func deriveClubs(out io.Writer, opts seedOptions) error {
	src := opts.path(seed.MatchesFile)
	dst := filepath.Join(opts.dataDir, seed.ClubsFile)
	n, err := seed.DeriveClubs(src, dst)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d clubs to %s\n", n, dst)
	return nil
}

func runSeed(ctx context.Context, out io.Writer, db *gorm.DB, target string, opts seedOptions) error {
	im := seed.NewImporter(db, opts.mediaDir)
	im.OnAdminCreated(func(username, password string) {
		fmt.Fprintf(out, "created news author %q with password %s, change it after logging in\n", username, password)
	})

	var (
		report seed.Report
		err    error
	)
	switch target {
	case "all":
		reports, err := im.All(ctx, opts.dataDir)
		for _, r := range reports {
			fmt.Fprintln(out, r)
		}
		return err
	case "clubs":
		report, err = im.Clubs(ctx, opts.path(seed.ClubsFile))
	case "players":
		report, err = im.Players(ctx, opts.path(seed.PlayersFile))
	case "matches":
		report, err = im.Matches(ctx, opts.path(seed.MatchesFile))
	case "news":
		report, err = im.News(ctx, opts.path(seed.NewsFile))
	default:
		return fmt.Errorf("unknown seed target %q", target)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, report)
	return nil
}
