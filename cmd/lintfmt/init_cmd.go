package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .lintfmt.yaml config file",
	Long:  `Create a .lintfmt.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".lintfmt.yaml"); err == nil && !force {
			return fmt.Errorf(".lintfmt.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".lintfmt.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .lintfmt.yaml")
		return nil
	},
}

const defaultConfig = `# lintfmt configuration

# Shared settings
verbose: false
color: false

# Rendering settings
render:
  findings:
    - "findings.json"
  output: ""               # ""/"-" = stdout | directory | file path
  format: ""               # plain | color | json ("" = auto-detect)
  level: all               # all | errors
  max-messages: 0          # occurrences shown per rule group, 0 = unlimited
  summary: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
