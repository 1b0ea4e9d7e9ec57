package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ohp/ohp-config/internal/logger"
	"github.com/ohp/ohp-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := newCLI(buildInfo()).execute(ctx); err != nil {
		stop()
		logger.NewLogger("ohpconfig").Fatal().Err(err).Msg("error generating configuration")
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
