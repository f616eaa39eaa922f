package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
	"github.com/TiwariPiyush2510/Par-Stock/internal/engine"
	"github.com/TiwariPiyush2510/Par-Stock/internal/export"
	"github.com/TiwariPiyush2510/Par-Stock/internal/ingest"
	"github.com/TiwariPiyush2510/Par-Stock/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	// .env is optional for the CLI
	_ = godotenv.Load()
	logger.Setup("info")

	app := &cli.App{
		Name:  "parstock",
		Usage: "Compute suggested par stock from weekly and monthly consumption reports",
		Commands: []*cli.Command{
			{
				Name:  "calc",
				Usage: "Run the par-stock calculation against local report files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "weekly",
						Usage:    "Weekly consumption report (xlsx or csv)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "monthly",
						Usage:    "Monthly consumption report (xlsx or csv)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "stock",
						Usage: "Optional stock on-hand report",
					},
					&cli.StringSliceFlag{
						Name:  "supplier",
						Usage: "Supplier catalog as label=path, repeatable; order sets match priority",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "Output file; .csv writes delimited text, anything else xlsx",
						Value: "par-stock-plan.xlsx",
					},
					&cli.Float64Flag{
						Name:  "safety-factor",
						Usage: "Multiplier applied to suggested par before stock reconciliation",
						Value: 1.0,
					},
					&cli.BoolFlag{
						Name:  "passthrough",
						Usage: "Report suggested par as final stock needed, ignoring stock figures",
					},
					&cli.BoolFlag{
						Name:  "no-substring-match",
						Usage: "Disable the substring fallback in supplier attribution",
					},
					&cli.BoolFlag{
						Name:  "strict-metadata",
						Usage: "Fail when duplicate rows disagree on item code or unit",
					},
				},
				Action: runCalc,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("parstock failed")
	}
}

func runCalc(c *cli.Context) error {
	weekly, droppedW, err := readConsumption(c.String("weekly"))
	if err != nil {
		return err
	}
	monthly, droppedM, err := readConsumption(c.String("monthly"))
	if err != nil {
		return err
	}

	var stock map[string]domain.StockFigures
	if path := c.String("stock"); path != "" {
		table, err := readTableFile(path)
		if err != nil {
			return err
		}
		stock, _, err = ingest.ParseStock(table)
		if err != nil {
			return err
		}
	}

	catalogs, err := readCatalogs(c.StringSlice("supplier"))
	if err != nil {
		return err
	}

	eng := engine.New(engine.Options{
		SafetyFactor:   c.Float64("safety-factor"),
		Passthrough:    c.Bool("passthrough"),
		SubstringMatch: !c.Bool("no-substring-match"),
		StrictMetadata: c.Bool("strict-metadata"),
	})

	plans, err := eng.ComputePlan(engine.PlanInput{
		Weekly:   weekly,
		Monthly:  monthly,
		Catalogs: catalogs,
		Stock:    stock,
	})
	if err != nil {
		return err
	}

	if dropped := droppedW + droppedM; dropped > 0 {
		log.Warn().Int("rows", dropped).Msg("dropped rows with blank item identity")
	}

	outPath := c.String("out")
	if err := writePlan(outPath, plans); err != nil {
		return err
	}

	log.Info().Int("items", len(plans)).Str("out", outPath).Msg("plan written")
	return nil
}

func readTableFile(path string) (*ingest.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ingest.ReadTable(f, filepath.Base(path))
}

func readConsumption(path string) ([]domain.ConsumptionRecord, int, error) {
	table, err := readTableFile(path)
	if err != nil {
		return nil, 0, err
	}
	return ingest.ParseConsumption(table)
}

// readCatalogs parses label=path specs in order; a spec without "=" uses the
// filename stem as the label.
func readCatalogs(specs []string) ([]domain.SupplierCatalog, error) {
	catalogs := make([]domain.SupplierCatalog, 0, len(specs))
	for _, spec := range specs {
		label, path, found := strings.Cut(spec, "=")
		if !found {
			path = spec
			base := filepath.Base(path)
			label = strings.TrimSuffix(base, filepath.Ext(base))
		}

		table, err := readTableFile(path)
		if err != nil {
			return nil, err
		}
		cat, _, err := ingest.ParseCatalog(table, label)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, cat)
	}
	return catalogs, nil
}

func writePlan(path string, plans []domain.FinalStockPlan) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return export.WriteCSV(out, plans)
	}
	return export.WriteXLSX(out, plans)
}
