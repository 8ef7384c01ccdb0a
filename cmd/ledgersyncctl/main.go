package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-ledger-sync/internal/client"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	// results go to stdout, so the transport log is written only on request
	log := logger.Nop()
	if path := os.Getenv("LOG_FILE"); path != "" {
		log = logger.NewFileLogger("ledgersyncctl", path, os.Getenv("LOG_LEVEL"))
	}

	var app client.Client = client.NewApp(build, log)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
