package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ranacirrusgo/policynav/internal/analyze"
)

// stakeholdersCmd represents the stakeholders command
var stakeholdersCmd = &cobra.Command{
	Use:   "stakeholders <file>",
	Short: "Group policy sentences by the stakeholders they address",
	Long: `Stakeholders scans a policy document for the parties it regulates
(banks, agencies, consumers, businesses, providers, regulators) and
lists the sentences addressed to each.

Example:
  policynav stakeholders policy.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runStakeholders,
}

func init() {
	rootCmd.AddCommand(stakeholdersCmd)
}

func runStakeholders(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	fmt.Println(analyze.ExtractStakeholders(string(text)))

	return nil
}
