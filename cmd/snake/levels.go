package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hunting-snake/internal/snake"
)

var flagShowMaps bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level maps",
	Long: `Shows every level map with its theme, size, wall count and the
speed levels that play on it.

Examples:
  snake levels
  snake levels --maps`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagShowMaps, "maps", false, "Print each map layout")
}

func runLevels(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	maxSpeed := cfg.Gameplay.MaxSpeed

	fmt.Printf("  %-5s  %-20s  %-7s  %-5s  %s\n", "Map", "Theme", "Size", "Walls", "Speeds")
	fmt.Printf("  %-5s  %-20s  %-7s  %-5s  %s\n", "---", "-----", "----", "-----", "------")

	for _, lvl := range snake.Levels() {
		var speeds []string
		for s := 1; s <= maxSpeed; s++ {
			if snake.LevelFor(s) == lvl {
				speeds = append(speeds, fmt.Sprint(s))
			}
		}
		fmt.Printf("  %-5d  %-20s  %-7s  %-5d  %s\n",
			lvl.ID, lvl.Theme, fmt.Sprintf("%dx%d", lvl.Width, lvl.Height), lvl.WallCount(), strings.Join(speeds, ","))

		if flagShowMaps {
			fmt.Println()
			fmt.Println(renderMap(lvl))
		}
	}
}

// renderMap draws a level's walls inside the board frame.
func renderMap(lvl *snake.LevelMap) string {
	var b strings.Builder
	for y := 0; y <= lvl.Height; y++ {
		b.WriteString("    ")
		for x := 0; x <= lvl.Width; x++ {
			p := snake.Position{X: x, Y: y}
			switch {
			case x == 0 || y == 0 || x == lvl.Width || y == lvl.Height:
				b.WriteRune(snake.GlyphBorder)
			case lvl.IsWall(p):
				b.WriteRune(snake.GlyphWall)
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}
