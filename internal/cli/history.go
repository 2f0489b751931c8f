package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [project]",
	Short: "List or show saved recommendations",
	Long: `Without arguments, list the projects with a saved recommendation.
With a project name, print that project's recommendation as JSON.

Examples:
  designkb history
  designkb history payflow`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore(cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		projects, err := st.List()
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("No saved recommendations.")
			return nil
		}
		fmt.Printf("Saved recommendations (%d):\n", len(projects))
		for _, project := range projects {
			fmt.Printf("  - %s\n", project)
		}
		return nil
	}

	rec, err := st.Get(args[0])
	if err != nil {
		return err
	}
	return printJSON(rec)
}
