package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/leadscope/lead-intel-api/internal/catalog"
	"github.com/leadscope/lead-intel-api/internal/intel"
	"github.com/leadscope/lead-intel-api/internal/logger"
	"github.com/leadscope/lead-intel-api/internal/services"
	"github.com/leadscope/lead-intel-api/pkg/config"
)

// score-leads runs the enrichment pipeline over the catalog from the command
// line and writes the export to stdout or a file. Useful for spot-checking
// scoring changes without starting the server.
func main() {
	format := flag.String("format", "csv", "export format: csv or json")
	minScore := flag.Int("min-score", 0, "only include leads with at least this composite score")
	highQuality := flag.Bool("high-quality", false, "only include leads recommended for pursuit")
	output := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()
	engine := intel.NewEngineWithOptions(cfg.RecencyWindowDays, nil)
	svcs := services.NewServices(catalog.New(), engine, logger.New())

	filter := services.LeadFilter{HighQualityOnly: *highQuality}
	if *minScore > 0 {
		filter.MinScore = minScore
	}

	leads := svcs.Leads.ListLeads(filter)
	if len(leads) == 0 {
		log.Fatal("No leads matched the given filters")
	}
	ids := make([]int, 0, len(leads))
	for _, lead := range leads {
		ids = append(ids, lead.ID)
	}

	data, _, err := svcs.Leads.Export(services.ExportRequest{LeadIDs: ids, Format: *format})
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	if *output == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	fmt.Printf("Wrote %d leads to %s\n", len(leads), *output)
}
