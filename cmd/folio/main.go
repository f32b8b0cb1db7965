package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/browser"

	"github.com/bobmcallan/folio/internal/app"
	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/models"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to folio.toml (default: FOLIO_CONFIG, then binary dir)")
		inputPath   = flag.String("input", "", "path to the portfolio JSON file (overrides config)")
		outputDir   = flag.String("output", "", "directory for generated reports (overrides config)")
		noOpen      = flag.Bool("no-open", false, "do not open the HTML report in the browser")
		showTable   = flag.Bool("table", false, "print the tabular breakdown to stdout")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		common.LoadVersionFromFile()
		fmt.Println(common.GetFullVersion())
		return
	}

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides on top of config and env
	if *inputPath != "" {
		a.Config.Input.Path = *inputPath
	}
	if *outputDir != "" {
		a.Config.Output.Dir = *outputDir
	}
	if *noOpen {
		a.Config.Output.OpenBrowser = false
	}

	common.PrintBanner(a.Config, a.Logger)

	if err := run(a, *showTable); err != nil {
		a.Logger.Error().Err(err).Msg("Run failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, models.ErrMalformedInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run executes one load-analyze-render cycle.
func run(a *app.App, showTable bool) error {
	portfolio, err := a.AllocationService.LoadPortfolio(a.Config.Input.Path)
	if err != nil {
		return err
	}

	report, err := a.AllocationService.Analyze(portfolio)
	if err != nil {
		return err
	}

	if showTable {
		fmt.Println(a.ReportService.FormatMarkdown(report))
	}

	path, err := a.ReportService.WriteHTML(report)
	if err != nil {
		return err
	}

	fmt.Printf("Suggestion: %s\n", report.Suggestion.String())
	fmt.Printf("Report written to %s\n", path)

	if a.Config.Output.OpenBrowser {
		if err := browser.OpenFile(path); err != nil {
			a.Logger.Warn().Err(err).Str("path", path).Msg("Failed to open report in browser")
		}
	}

	return nil
}
