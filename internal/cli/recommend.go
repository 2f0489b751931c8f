package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"designkb/internal/adapter/render"
	"designkb/internal/adapter/store"
)

var (
	recommendQuery     string
	recommendProject   string
	recommendFormat    string
	recommendSave      bool
	recommendPage      string
	recommendPageQuery string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate a complete design-system recommendation",
	Long: `Aggregate the product, style, color, typography, pattern, architecture
and landing domains into one design-system recommendation for a project.

Formats: markdown (default), ascii, master, json.

With --page, a screen-specific override document is generated after the
main output, driven by layered widget/pattern/ux/landing searches.

Examples:
  designkb recommend -q "fintech app with wallet" -p PayFlow
  designkb recommend -q "fitness tracker" --format ascii
  designkb recommend -q "e-commerce store" -p ShopX --save
  designkb recommend -q "fintech app" -p PayFlow --page dashboard`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringVarP(&recommendQuery, "query", "q", "", "product description (required)")
	recommendCmd.Flags().StringVarP(&recommendProject, "project", "p", "", "project name (default derived from query)")
	recommendCmd.Flags().StringVar(&recommendFormat, "format", "markdown", "output format: markdown, ascii, master, json")
	recommendCmd.Flags().BoolVar(&recommendSave, "save", false, "persist the recommendation to the local store")
	recommendCmd.Flags().StringVar(&recommendPage, "page", "", "also generate a screen-specific override document")
	recommendCmd.Flags().StringVar(&recommendPageQuery, "page-query", "", "extra context for the page override search")
	recommendCmd.MarkFlagRequired("query")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	engine, err := buildEngine(cfg, rootDir, false)
	if err != nil {
		return err
	}

	recommender, err := buildRecommender(cfg, rootDir, engine)
	if err != nil {
		return err
	}

	rec, err := recommender.Generate(recommendQuery, recommendProject)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	switch recommendFormat {
	case "markdown":
		fmt.Println(render.Markdown(rec))
	case "ascii":
		fmt.Println(render.ASCIIBox(rec))
	case "master":
		fmt.Println(render.MasterFile(rec, time.Now()))
	case "json":
		if err := printJSON(rec); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (want markdown, ascii, master or json)", recommendFormat)
	}

	if recommendPage != "" {
		ov, err := recommender.GeneratePageOverride(recommendPage, recommendPageQuery)
		if err != nil {
			return fmt.Errorf("page override failed: %w", err)
		}
		if recommendFormat == "json" {
			if err := printJSON(ov); err != nil {
				return err
			}
		} else {
			fmt.Println()
			fmt.Println(render.PageOverrideFile(ov, rec.Project, time.Now()))
		}
	}

	if recommendSave {
		st, err := openStore(cfg, rootDir)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Put(rec.Project, rec); err != nil {
			return fmt.Errorf("failed to save recommendation: %w", err)
		}
		fmt.Printf("Saved recommendation for %s\n", store.Slug(rec.Project))
	}

	return nil
}
