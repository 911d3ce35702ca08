package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nettree/internal/inventory"
)

// demoCmd represents the demo command.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a built-in example inventory",
	Long: `Build a small example network through the fluent API and print its
tree. Useful for checking the rendering format without an inventory
file.`,
	Run: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// runDemo builds and prints the example network.
func runDemo(cmd *cobra.Command, args []string) {
	net := inventory.NewNetwork("University NET")
	net.AddComputer(
		inventory.NewComputer("node1.uni.edu").
			AddAddress("192.168.1.1").
			AddComponent(inventory.NewCPU(4, 2500)).
			AddComponent(inventory.NewMemory(16000)),
	).AddComputer(
		inventory.NewComputer("node2.uni.edu").
			AddAddress("10.0.0.1").
			AddComponent(inventory.NewCPU(8, 3200)).
			AddComponent(
				inventory.NewDisk(inventory.DiskHDD, 2000).
					AddPartition(500, "system").
					AddPartition(1500, "storage"),
			),
	)

	fmt.Println(net.String())
}
