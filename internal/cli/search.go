package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"designkb/internal/domain"
)

var (
	searchQuery  string
	searchDomain string
	searchTopK   int
	searchStack  string
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the design knowledge base",
	Long: `Search one knowledge domain using BM25 ranked retrieval. Without
--domain the best-matching domain is resolved from the query's keywords.

Examples:
  designkb search -q "bottom navigation bar"
  designkb search -q "state management" --domain package --top-k 10
  designkb search -q "state management" --stack riverpod --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().StringVar(&searchDomain, "domain", "", "knowledge domain (default resolved from query)")
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "number of results (default from config)")
	searchCmd.Flags().StringVar(&searchStack, "stack", "", "filter out packages conflicting with this stack")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.MarkFlagRequired("query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	engine, err := buildEngine(cfg, GetRootDir(), false)
	if err != nil {
		return err
	}

	topK := cfg.Rank.TopK
	if searchTopK > 0 {
		topK = searchTopK
	}

	if searchStack != "" {
		res, err := engine.SearchWithStack(searchQuery, searchStack, searchDomain, topK)
		if err != nil {
			return err
		}
		if searchJSON {
			return printJSON(res)
		}
		fmt.Printf("Excluded (%s stack): %s\n", res.Stack, strings.Join(res.Excluded, ", "))
		printResults(res.SearchResult)
		return nil
	}

	res, err := engine.Search(searchQuery, searchDomain, topK)
	if err != nil {
		return err
	}
	if searchJSON {
		return printJSON(res)
	}
	printResults(res)
	return nil
}

func printJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func printResults(res domain.SearchResult) {
	if res.Count == 0 {
		fmt.Println("No results found.")
		return
	}
	fmt.Printf("Found %d results in %s for: %s\n\n", res.Count, res.Domain, res.Query)
	for i, sr := range res.Results {
		first := true
		for _, field := range sr.Record.Fields() {
			if field.Value == "" {
				continue
			}
			if first {
				fmt.Printf("--- [%d] %s (score: %.2f) ---\n", i+1, field.Value, sr.Score)
				first = false
				continue
			}
			fmt.Printf("  %s: %s\n", field.Name, field.Value)
		}
		fmt.Println()
	}
}
