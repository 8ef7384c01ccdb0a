package client

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

type adapterFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.DaemonAdapter, error)

// App is the ledgersyncctl command tree.
type App struct {
	build models.AppBuildInfo
	out   io.Writer

	newAdapter adapterFactory
	daemon     adapter.DaemonAdapter

	logger *logger.Logger
}

func NewApp(build models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		build:      build,
		out:        os.Stdout,
		newAdapter: adapter.NewHTTPDaemonAdapter,
		logger:     logger,
	}
}

func (a *App) Run(args []string) error {
	return a.cli().Run(args)
}

func (a *App) cli() *cli.App {
	return &cli.App{
		Name:    "ledgersyncctl",
		Usage:   "control the ledger sync daemon",
		Version: a.build.Version,
		Writer:  a.out,
		// errors are printed by main, never os.Exit from inside the library
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "control API address of the daemon",
				EnvVars: []string{"ADAPTER_ADDRESS"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "request timeout; a manual sync copies the whole ledger",
				EnvVars: []string{"ADAPTER_REQUEST_TIMEOUT"},
			},
		},
		Before:   a.connect,
		Commands: a.commands(),
	}
}

// connect builds the daemon adapter from the global flags.
func (a *App) connect(c *cli.Context) error {
	if a.daemon != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(c.String("address"), c.Duration("timeout"))
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	daemon, err := a.newAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create daemon adapter: %w", err)
	}
	a.daemon = daemon
	return nil
}

func (a *App) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "status",
			Usage:  "show the sync status",
			Action: a.status,
		},
		{
			Name:  "config",
			Usage: "show or change the sync configuration",
			Subcommands: []*cli.Command{
				{Name: "get", Usage: "show the sync configuration", Action: a.configGet},
				{
					Name:  "set",
					Usage: "change the given settings, keep the rest",
					Flags: []cli.Flag{
						&cli.BoolFlag{Name: "auto", Usage: "enable periodic sync"},
						&cli.Uint64Flag{Name: "interval", Usage: "minutes between scheduled syncs (at least 1)"},
						&cli.StringFlag{Name: "remote-root", Usage: "shared folder root; empty string resets to the default"},
						&cli.BoolFlag{Name: "fallback", Usage: "save to the local backup folder when the shared folder is unreachable"},
					},
					Action: a.configSet,
				},
			},
		},
		{
			Name:   "sync",
			Usage:  "publish the local ledger now",
			Action: a.sync,
		},
		{
			Name:   "pull",
			Usage:  "replace the local ledger with the shared copy if it is newer",
			Action: a.pull,
		},
		{
			Name:  "auto",
			Usage: "turn periodic sync on or off",
			Subcommands: []*cli.Command{
				{Name: "start", Usage: "enable periodic sync", Action: a.autoStart},
				{Name: "stop", Usage: "disable periodic sync", Action: a.autoStop},
			},
		},
		{
			Name:   "notify",
			Usage:  "tell the daemon the ledger was changed",
			Action: a.notify,
		},
		{
			Name:  "backup",
			Usage: "manage backups in the shared folder",
			Subcommands: []*cli.Command{
				{Name: "create", Usage: "back up the local ledger", Action: a.backupCreate},
				{Name: "list", Usage: "list backups, newest first", Action: a.backupList},
				{Name: "restore", Usage: "restore the backup with the given timestamp", ArgsUsage: "TIMESTAMP", Action: a.backupRestore},
				{Name: "delete", Usage: "delete the backup with the given timestamp", ArgsUsage: "TIMESTAMP", Action: a.backupDelete},
			},
		},
		{
			Name:   "version",
			Usage:  "print ledgersyncctl and daemon build information",
			Action: a.version,
		},
	}
}

func (a *App) print(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}

func timestampArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected one TIMESTAMP argument, got %d", c.NArg())
	}
	return c.Args().First(), nil
}

var _ Client = (*App)(nil)
