package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"designkb/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "designkb",
	Short: "Design knowledge base - BM25 search over UI/UX design datasets",
	Long: `designkb is a CLI tool that indexes tabular design-knowledge datasets
(widgets, packages, styles, colors, typography and more) with BM25 lexical
retrieval and aggregates them into complete design-system recommendations.

Example usage:
  designkb search -q "bottom navigation bar"       # Search the best-matching domain
  designkb search -q "state management" --stack riverpod
  designkb recommend -q "fintech app" -p PayFlow   # Generate a design system`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./designkb.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
