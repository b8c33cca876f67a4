package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fazla-cloud/thunder-agency-platform/internal/config"
	"github.com/fazla-cloud/thunder-agency-platform/internal/database"
	"github.com/fazla-cloud/thunder-agency-platform/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// cli carries what every subcommand needs once the root has run.
type cli struct {
	v   *viper.Viper
	cfg *config.Config
	db  *gorm.DB
	out io.Writer
}

// connectionFlags are bound to the configuration keys of the same name.
var connectionFlags = []struct {
	name, key, usage string
}{
	{"db-driver", "DB_DRIVER", "database driver (mysql, postgres, sqlite)"},
	{"db-host", "DB_HOST", "database host"},
	{"db-port", "DB_PORT", "database port"},
	{"db-user", "DB_USER", "database user"},
	{"db-password", "DB_PASSWORD", "database password"},
	{"db-name", "DB_NAME", "database name, or file path for sqlite"},
	{"timezone", "REPORT_TIMEZONE", "time zone calendar days are computed in"},
	{"log-level", "LOG_LEVEL", "log level (debug, info, warn, error)"},
}

func newRootCmd(out io.Writer) *cobra.Command {
	app := &cli{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:           "thunderctl",
		Short:         "Operator tooling for the Thunder agency platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.cfg = config.FromViper(app.v)
			slog.SetDefault(logging.New(os.Stderr, app.cfg.LogLevel, false))

			db, err := database.Connect(app.cfg)
			if err != nil {
				return err
			}
			app.db = db
			return nil
		},
	}

	flags := root.PersistentFlags()
	for _, f := range connectionFlags {
		flags.String(f.name, "", f.usage)
		_ = app.v.BindPFlag(f.key, flags.Lookup(f.name))
	}

	root.AddCommand(
		newMigrateCmd(app),
		newSeedCmd(app),
		newUsersCmd(app),
		newReportCmd(app),
	)
	return root
}
