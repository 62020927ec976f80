package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rie622skt/InfiniteDrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "infinitedrill",
	Short: "Endless structural mechanics drills",
	Long:  "InfiniteDrill serves procedurally generated multiple-choice practice for beams, trusses, sections, buckling, frames and deflection.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INFINITEDRILL_DB env var)")
	rootCmd.PersistentFlags().String("db-driver", store.DriverSQLite, "Database driver: sqlite or pgx")
	rootCmd.PersistentFlags().String("dsn", "", "Connection string for the pgx driver")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore resolves the driver and DSN from the persistent flags and
// opens the answer log.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	driver, _ := cmd.Flags().GetString("db-driver")

	if driver == store.DriverPostgres {
		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			return nil, fmt.Errorf("--dsn is required with --db-driver=pgx")
		}
		return store.Open(driver, dsn)
	}

	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(store.DriverSQLite, path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then INFINITEDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
