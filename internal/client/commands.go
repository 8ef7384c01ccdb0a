package client

import (
	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-ledger-sync/internal/app"
)

func (a *App) status(c *cli.Context) error {
	status, err := a.daemon.Status(c.Context)
	if err != nil {
		return explain(err)
	}
	a.print(renderStatus(status))
	return nil
}

func (a *App) configGet(c *cli.Context) error {
	cfg, err := a.daemon.Config(c.Context)
	if err != nil {
		return explain(err)
	}
	a.print(renderConfig(cfg))
	return nil
}

// configSet reads the current config and changes only the flags that were
// given on the command line.
func (a *App) configSet(c *cli.Context) error {
	if c.NumFlags() == 0 {
		a.print(warnStyle.Render(app.MsgNothingToChange))
		return nil
	}

	cfg, err := a.daemon.Config(c.Context)
	if err != nil {
		return explain(err)
	}

	if c.IsSet("auto") {
		cfg.AutoSyncEnabled = c.Bool("auto")
	}
	if c.IsSet("interval") {
		cfg.SyncIntervalMinutes = c.Uint64("interval")
	}
	if c.IsSet("remote-root") {
		root := c.String("remote-root")
		cfg.RemoteRoot = &root
		if root == "" {
			cfg.RemoteRoot = nil
		}
	}
	if c.IsSet("fallback") {
		cfg.FallbackToLocal = c.Bool("fallback")
	}

	updated, err := a.daemon.UpdateConfig(c.Context, cfg)
	if err != nil {
		return explain(err)
	}
	a.print(renderConfig(updated))
	return nil
}

func (a *App) sync(c *cli.Context) error {
	result, err := a.daemon.ManualSync(c.Context)
	if err != nil {
		return explain(err)
	}
	a.print(renderCycle(result))
	return nil
}

// pull reports a skipped transfer as a normal outcome.
func (a *App) pull(c *cli.Context) error {
	result, err := a.daemon.LoadFromRemote(c.Context)
	if err != nil {
		if msg := controlOutcome(err); msg != "" {
			a.print(warnStyle.Render(msg))
			return nil
		}
		return explain(err)
	}
	a.print(renderCycle(result))
	return nil
}

func (a *App) autoStart(c *cli.Context) error {
	status, err := a.daemon.StartAutoSync(c.Context)
	if err != nil {
		return explain(err)
	}
	a.print(renderStatus(status))
	return nil
}

func (a *App) autoStop(c *cli.Context) error {
	status, err := a.daemon.StopAutoSync(c.Context)
	if err != nil {
		return explain(err)
	}
	a.print(renderStatus(status))
	return nil
}

func (a *App) notify(c *cli.Context) error {
	if err := a.daemon.NotifyDataChanged(c.Context); err != nil {
		return explain(err)
	}
	a.print(okStyle.Render(app.MsgChangeReported))
	return nil
}

func (a *App) backupCreate(c *cli.Context) error {
	info, err := a.daemon.CreateBackup(c.Context)
	if err != nil {
		return explain(err)
	}
	a.print(renderBackup(info))
	return nil
}

func (a *App) backupList(c *cli.Context) error {
	backups, err := a.daemon.ListBackups(c.Context)
	if err != nil {
		return explain(err)
	}
	if len(backups) == 0 {
		a.print(app.MsgNoBackups)
		return nil
	}
	a.print(renderBackups(backups))
	return nil
}

func (a *App) backupRestore(c *cli.Context) error {
	ts, err := timestampArg(c)
	if err != nil {
		return err
	}
	if err = a.daemon.RestoreBackup(c.Context, ts); err != nil {
		return explain(err)
	}
	a.print(okStyle.Render(app.MsgBackupRestored + ": " + ts))
	return nil
}

func (a *App) backupDelete(c *cli.Context) error {
	ts, err := timestampArg(c)
	if err != nil {
		return err
	}
	if err = a.daemon.DeleteBackup(c.Context, ts); err != nil {
		return explain(err)
	}
	a.print(okStyle.Render(app.MsgBackupDeleted + ": " + ts))
	return nil
}

func (a *App) version(c *cli.Context) error {
	daemon, err := a.daemon.Version(c.Context)
	if err != nil {
		return explain(err)
	}
	a.print(renderVersion(a.build, daemon))
	return nil
}
