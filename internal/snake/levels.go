package snake

import (
	"sync"

	"github.com/vovakirdan/hunting-snake/internal/core"
)

// levelDef is the source table for one shipped level.
type levelDef struct {
	theme   string
	color   core.Color
	safeRow int
	layout  []string
}

// All shipped maps are 70x20 and keep row 5 clear for repositioning.
var levelDefs = []levelDef{
	{
		theme:   "Peaceful Garden",
		color:   core.ColorGreen,
		safeRow: 5,
		layout: []string{
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"     ######                                                           ",
			"     ######                                                           ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                 #####",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
		},
	},
	{
		theme:   "Ancient Ruins",
		color:   core.ColorGray,
		safeRow: 5,
		layout: []string{
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"               #                                       #              ",
			"               #                                       #              ",
			"               #                                       #              ",
			"                                                                      ",
			"                    ###########         ###########                   ",
			"                                                                      ",
			"                         #                   #                        ",
			"                         #                   #                        ",
			"                         #                   #                        ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
		},
	},
	{
		theme:   "Crystal Caves",
		color:   core.ColorCyan,
		safeRow: 5,
		layout: []string{
			"                                                                      ",
			"                                                                      ",
			"                    #                             #                   ",
			"                    #              #              #                   ",
			"                    #                             #                   ",
			"                                                                      ",
			"                    #                             #                   ",
			"                    #         ###########         #                   ",
			"                    #                             #                   ",
			"                    #                             #                   ",
			"                    #    #                   #    #                   ",
			"                    #                             #                   ",
			"                    #                             #                   ",
			"                    #         ###########         #                   ",
			"                    #                             #                   ",
			"                    #              #              #                   ",
			"                    #                             #                   ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
		},
	},
	{
		theme:   "Lava Temple",
		color:   core.ColorRed,
		safeRow: 5,
		layout: []string{
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                          #        #        #                         ",
			"                           #      # #      #                          ",
			"          ######            #    #   #    #            ######         ",
			"                             #  #     #  #                            ",
			"                              ##       ##                             ",
			"                              ##       ##                             ",
			"          ######             #  #     #  #             ######         ",
			"                            #    #   #    #                           ",
			"                           #      # #      #                          ",
			"                          #        #        #                         ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
		},
	},
	{
		theme:   "Nightmare Dimension",
		color:   core.ColorMagenta,
		safeRow: 5,
		layout: []string{
			"                                                                      ",
			"                                                                      ",
			"                                                                      ",
			"          ##                                                          ",
			"                                                                      ",
			"                                                                      ",
			"                              #         #                        #    ",
			"                              # ####### #                        #    ",
			"                              # ####### #                             ",
			"                              # ##   ## #                             ",
			"                              # ##   ## #                             ",
			"                              # ##   ## #                             ",
			"                              # ##### # #                             ",
			"                              # ####### #                             ",
			"     #                        #         #                             ",
			"     #                        ##########                              ",
			"                                                                      ",
			"                                                           ##         ",
			"                                                                      ",
			"                                                                      ",
		},
	},
}

var (
	levelsOnce sync.Once
	levelSet   []*LevelMap
)

// Levels returns the shared immutable level set, parsed on first use.
func Levels() []*LevelMap {
	levelsOnce.Do(func() {
		levelSet = make([]*LevelMap, len(levelDefs))
		for i, def := range levelDefs {
			levelSet[i] = ParseLayout(i+1, def.theme, def.color, def.safeRow, def.layout)
		}
	})
	return levelSet
}

// LevelCount returns the number of shipped levels.
func LevelCount() int {
	return len(levelDefs)
}

// LevelFor selects the map for a speed level: (speedLevel-1) mod LevelCount.
// Non-positive speed levels select the first map.
func LevelFor(speedLevel int) *LevelMap {
	levels := Levels()
	if speedLevel < 1 {
		speedLevel = 1
	}
	return levels[(speedLevel-1)%len(levels)]
}
