package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-ledger-sync/models"
)

const timeLayout = "2006-01-02 15:04:05"

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func yesNo(v bool) string {
	if v {
		return okStyle.Render("yes")
	}
	return warnStyle.Render("no")
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format(timeLayout)
}

func renderStatus(s models.SyncStatus) string {
	rows := []string{
		titleStyle.Render("Sync status"),
		row("auto sync", yesNo(s.IsEnabled)),
		row("shared folder", yesNo(s.RemoteAvailable)),
		row("sync running", yesNo(s.SyncInProgress)),
		row("last sync", formatTime(s.LastSync)),
	}

	if s.ErrorMessage != nil {
		errType := ""
		if s.ErrorType != nil {
			errType = " [" + string(*s.ErrorType) + "]"
		}
		rows = append(rows,
			row("last error", errorStyle.Render(*s.ErrorMessage+errType)),
			row("error at", formatTime(s.LastErrorTime)),
		)
	}
	if s.RetryCount > 0 {
		rows = append(rows, row("failures", fmt.Sprintf("%d", s.RetryCount)))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderConfig(cfg models.SyncConfig) string {
	root := "default"
	if cfg.RemoteRoot != nil && *cfg.RemoteRoot != "" {
		root = *cfg.RemoteRoot
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Sync config"),
		row("auto sync", yesNo(cfg.AutoSyncEnabled)),
		row("interval", fmt.Sprintf("%d min", cfg.SyncIntervalMinutes)),
		row("shared root", root),
		row("local fallback", yesNo(cfg.FallbackToLocal)),
	))
}

func renderCycle(r models.CycleResult) string {
	rows := []string{
		row("pull", string(r.Pull)),
		row("push", string(r.Push)),
		row("target", string(r.Tier)),
	}
	if r.Degraded {
		rows = append(rows, warnStyle.Render("shared folder unreachable, saved to the local backup folder"))
	}
	if r.PullError != "" {
		rows = append(rows, row("pull error", errorStyle.Render(r.PullError)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderBackups(backups []models.BackupInfo) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIMESTAMP", "CREATED", "SIZE", "VERSION")

	for _, b := range backups {
		t.Row(b.Timestamp, b.CreatedAt.Local().Format(timeLayout), formatSize(b.FileSize), b.Version)
	}

	return t.Render()
}

func renderBackup(b models.BackupInfo) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		row("backup", b.FileName),
		row("timestamp", b.Timestamp),
		row("size", formatSize(b.FileSize)),
	)
}

func renderVersion(ctl, daemon models.AppBuildInfo) string {
	line := func(who string, info models.AppBuildInfo) string {
		return row(who, strings.Join([]string{info.Version, info.Date, info.Commit}, "  "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, line("ledgersyncctl", ctl), line("ledgersyncd", daemon))
}

func formatSize(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
