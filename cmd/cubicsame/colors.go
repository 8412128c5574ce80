package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taKana671/CubicSameGame/internal/engine"
	"github.com/taKana671/CubicSameGame/internal/platform/tui"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the sphere palette",
	Long: `Shows every color a sphere can have. A board of size N uses N of
them, chosen at random when the board is created.`,
	Args: cobra.NoArgs,
	Run:  runColors,
}

func runColors(cmd *cobra.Command, args []string) {
	fmt.Printf("Palette (%d colors):\n", engine.PaletteSize)
	fmt.Println()

	fmt.Printf("  %-4s  %-7s  %s\n", "Char", "Name", "Sphere")
	fmt.Printf("  %-4s  %-7s  %s\n", "----", "----", "------")
	for _, c := range engine.AllColors() {
		fmt.Printf("  %-4c  %-7s  %s\n", c.Char(), c.String(), tui.SphereStyle(c).Render("●"))
	}
}
