package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config and verify the datasets",
	Long: `Write designkb.yaml with the default configuration (unless one exists)
and load every domain's dataset once to verify it parses.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	path := filepath.Join(rootDir, "designkb.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
	} else {
		fmt.Printf("Config already exists at %s\n", path)
	}

	engine, err := buildEngine(cfg, rootDir, true)
	if err != nil {
		return err
	}

	fmt.Printf("\nLoaded %d knowledge domains from %s\n",
		len(engine.Registry().Domains()), cfg.DataDir(rootDir))
	return nil
}
