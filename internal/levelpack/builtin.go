package levelpack

import "github.com/vovakirdan/brickstorm/internal/game"

func init() {
	Register(Pack{
		ID:     "classic",
		Title:  "Classic Campaign",
		Levels: game.DefaultLayouts(),
	})

	Register(Pack{
		ID:    "gauntlet",
		Title: "The Gauntlet",
		Levels: [][]string{
			{
				"############",
				"@@@@@@@@@@@@",
				"############",
			},
			{
				"*##########*",
				"#@@@@@@@@@@#",
				"@@@##@@##@@@",
				"#@@@@@@@@@@#",
			},
			{
				"*#*#*#*#*#*#",
				"@@@@@@@@@@@@",
				"#@#@#@#@#@#@",
				"@@@@@@@@@@@@",
			},
			{
				"#@#@#@#@#@#@",
				"@#@#@#@#@#@#",
				"##@@####@@##",
				"*@@@@@@@@@@*",
			},
		},
	})

	Register(Pack{
		ID:    "zen",
		Title: "Zen Garden",
		Levels: [][]string{
			{
				"  @@@@@@@@  ",
				"   @@@@@@   ",
			},
			{
				"@@  @@@@  @@",
				" @@      @@ ",
				"  @@@@@@@@  ",
			},
		},
	})
}
