package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jobsweep/internal/detect"
	"jobsweep/internal/model"
	"jobsweep/internal/sheet"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List input companies and their detected providers",
	Long: "Reads the company spreadsheet and prints each row with the provider\n" +
		"and board slug the sweep would resolve for it. No network access.",
	RunE: runCompanies,
}

func init() {
	rootCmd.AddCommand(companiesCmd)
}

func runCompanies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	companies, err := sheet.ReadCompanies(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", cfg.InputPath, err)
		os.Exit(1)
	}

	fmt.Printf("%-25s %-16s %-20s %s\n", "Company", "Provider", "Slug", "Keywords")
	fmt.Println(strings.Repeat("─", 75))

	resolvable := 0
	for _, ci := range companies {
		provider := detect.Detect(ci.Provider, ci.CareerURL)
		slug := ci.Slug
		if slug == "" {
			slug = detect.ResolveSlug(provider, ci.CareerURL)
		}

		label := string(provider)
		switch {
		case provider == model.ProviderUnknown:
			label = "unknown"
		case provider == model.ProviderWorkday, slug != "":
			resolvable++
		}
		if slug == "" {
			slug = "—"
		}

		fmt.Printf("%-25s %-16s %-20s %s\n", ci.Name, label, slug, ci.Keywords)
	}

	fmt.Printf("\nTotal: %d companies (%d resolvable)\n", len(companies), resolvable)
	return nil
}
