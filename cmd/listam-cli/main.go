package main

import (
	"errors"
	"os"

	"listam-scraper/cmd/listam-cli/commands"
	"listam-scraper/lib/serviceutil"
	"listam-scraper/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(true)

	// telemetry is optional for the cli, without a telemetry.json5 the
	// global no-op providers stay in place
	err := telemetry.SetupFromEnv(ctx, "listam-cli")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	if err == nil {
		defer telemetry.Shutdown(ctx)
		telemetry.InstrumentPerfStats(ctx)
	}

	commands.ExecuteContext(ctx)
}
