package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/queuesim/postoffice/internal/domain/journal"
	"github.com/queuesim/postoffice/internal/infrastructure/config"
	"github.com/queuesim/postoffice/internal/infrastructure/logging"
	"github.com/queuesim/postoffice/internal/infrastructure/monitoring"
	"github.com/queuesim/postoffice/internal/sim"
)

const usage = "usage: postoffice <workers> <clients> <max_arrival_ms> <max_break_ms> <closing_window_ms>\n" +
	"       postoffice -scenario <file.yaml>"

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file instead of positional arguments")
	flag.Parse()

	params, err := loadParams(*scenarioPath, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "postoffice: %v\n%s\n", err, usage)
		os.Exit(1)
	}

	settings := config.LoadSettingsOrDefault()
	logger, err := logging.New(logging.Config{
		Level:       settings.Log.Level,
		Development: settings.Log.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "postoffice: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	jnl, err := journal.Open(settings.Output.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postoffice: %v\n", err)
		os.Exit(1)
	}

	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	runErr := sim.New(params, jnl, metrics, logger).Run()
	closeErr := jnl.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "postoffice: %v\n", runErr)
		os.Exit(1)
	}
	if closeErr != nil {
		fmt.Fprintf(os.Stderr, "postoffice: %v\n", closeErr)
		os.Exit(1)
	}
}

// loadParams takes the scenario file when given, otherwise the five
// positional arguments.
func loadParams(scenarioPath string, args []string) (config.Params, error) {
	if scenarioPath != "" {
		if len(args) != 0 {
			return config.Params{}, fmt.Errorf("cannot combine -scenario with positional arguments")
		}
		return config.LoadScenario(scenarioPath)
	}
	return config.ParseArgs(args)
}
