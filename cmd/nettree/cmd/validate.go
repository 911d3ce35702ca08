package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nettree/internal/config"
)

// validateInventoryPath is the optional inventory file to validate.
var validateInventoryPath string

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and inventory files",
	Long: `Load and validate the config file, checking formats, allowed values
and required fields. With --inventory, also validate an inventory
definition file.`,
	Run: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInventoryPath, "inventory", "i", "", "inventory definition file to validate")
}

// runValidate executes the validate command logic.
func runValidate(cmd *cobra.Command, args []string) {
	configPath := GetConfigFile()

	// Load and validate configuration (Load internally calls Validate)
	_, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("config file OK: %s\n", configPath)

	if validateInventoryPath == "" {
		return
	}

	net, err := config.LoadInventory(validateInventoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inventory validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("inventory file OK: %s (network %q, %d hosts)\n",
		validateInventoryPath, net.Name(), len(net.Hosts()))
}
