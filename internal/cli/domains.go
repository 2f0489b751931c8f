package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"designkb/internal/adapter/dataset"
	"designkb/internal/registry"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List knowledge domains and their dataset status",
	RunE:  runDomains,
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	loader := dataset.NewLoader(cfg.DataDir(GetRootDir()), cfg.Data.Includes, cfg.Data.Excludes)
	available, err := loader.Available()
	if err != nil {
		return fmt.Errorf("failed to scan datasets: %w", err)
	}
	present := make(map[string]bool, len(available))
	for _, name := range available {
		present[name] = true
	}

	reg := registry.Default()
	fmt.Printf("Knowledge domains (dataset dir: %s):\n\n", loader.Root())
	for _, domainCfg := range reg.Domains() {
		status := "missing"
		if present[domainCfg.File] {
			status = "ok"
		}
		marker := " "
		if domainCfg.Name == reg.DefaultDomain() {
			marker = "*"
		}
		fmt.Printf("  %s %-12s %-24s [%s]\n", marker, domainCfg.Name, domainCfg.File, status)
	}
	fmt.Println("\n  * default domain")
	return nil
}
