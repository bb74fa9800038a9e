package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hunting-snake/internal/core"
	"github.com/vovakirdan/hunting-snake/internal/snake"
)

var flagRender bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <savefile>",
	Short: "Describe a save file",
	Long: `Decode a save file and print what it contains. With --render the
board is drawn as text.

Examples:
  snake inspect snake.sav
  snake inspect --render ~/games/snake.sav`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&flagRender, "render", false, "Draw the saved board")
}

func runInspect(cmd *cobra.Command, args []string) {
	path := args[0]

	snap, err := snake.ReadSnapshotFile(path)
	if err != nil {
		var decErr *snake.DecodeError
		if errors.As(err, &decErr) {
			fatalf("%s is not a valid save: bad %s at token %d", path, decErr.Field, decErr.Token)
		}
		fatalf("%v", err)
	}

	lvl := snake.LevelFor(snap.SpeedLevel)
	head := snap.Body[len(snap.Body)-1]

	fmt.Printf("Save file: %s\n\n", path)
	fmt.Printf("  Board:        %dx%d\n", snap.Width, snap.Height)
	fmt.Printf("  State:        %s\n", snap.State)
	fmt.Printf("  Speed level:  %d (%s)\n", snap.SpeedLevel, lvl.Theme)
	fmt.Printf("  Moving:       %s (locked %s)\n", snap.Moving, snap.Locked)
	fmt.Printf("  Length:       %d, head at (%d, %d)\n", len(snap.Body), head.X, head.Y)
	fmt.Printf("  Keep length:  %t\n", snap.KeepLength)
	if snap.GateActive {
		fmt.Printf("  Gate:         open at (%d, %d)\n", snap.Gate.X, snap.Gate.Y)
	} else if len(snap.Foods) > 0 {
		next := snap.Foods[snap.FoodIndex]
		fmt.Printf("  Food:         %d of %d, next at (%d, %d)\n", snap.FoodIndex+1, len(snap.Foods), next.X, next.Y)
	}

	if !flagRender {
		return
	}

	cfg := loadConfig(cmd)
	opts := cfg.SessionOptions(1)
	opts.MaxSpeed = max(opts.MaxSpeed, snap.SpeedLevel)
	s := snake.NewSession(opts)
	if err := s.Restore(snap); err != nil {
		fatalf("%v", err)
	}

	w, h := s.ScreenSize()
	screen := core.NewScreen(w, h)
	s.Render(screen)
	fmt.Println()
	fmt.Println(screen.String())
}
