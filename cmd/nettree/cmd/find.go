package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nettree/internal/config"
)

// findInventoryPath is the inventory file flag for the find command.
var findInventoryPath string

// findCmd represents the find command.
var findCmd = &cobra.Command{
	Use:   "find NAME",
	Short: "Find a host by name",
	Long: `Look up a host by exact name in the inventory and print its subtree.

Host names are expected to be unique; with duplicates the first host in
definition order wins. Exits with status 1 when no host matches.`,
	Args: cobra.ExactArgs(1),
	Run:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringVarP(&findInventoryPath, "inventory", "i", "inventory.yaml", "inventory definition file path")
}

// runFind executes the find command logic.
func runFind(cmd *cobra.Command, args []string) {
	name := args[0]

	net, err := config.LoadInventory(findInventoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load inventory: %v\n", err)
		os.Exit(1)
	}

	host, ok := net.FindComputer(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "host %q not found in network %q\n", name, net.Name())
		os.Exit(1)
	}

	fmt.Println(strings.Join(host.AppendTree(nil, "", true), "\n"))
}
