package main

var bigNumbers = [][]string{
	{ // 0
		"█▀█",
		"█ █",
		"▀▀▀",
	},
	{ // 1
		"▄█ ",
		" █ ",
		"▀▀▀",
	},
	{ // 2
		"▀▀█",
		"█▀▀",
		"▀▀▀",
	},
	{ // 3
		"▀▀█",
		"▀▀█",
		"▀▀▀",
	},
	{ // 4
		"█ █",
		"▀▀█",
		"  ▀",
	},
	{ // 5
		"█▀▀",
		"▀▀█",
		"▀▀▀",
	},
	{ // 6
		"█▀▀",
		"█▀█",
		"▀▀▀",
	},
	{ // 7
		"█▀█",
		"  █",
		"  ▀",
	},
	{ // 8
		"█▀█",
		"█▀█",
		"▀▀▀",
	},
	{ // 9
		"█▀█",
		"▀▀█",
		"  ▀",
	},
}

var bigColon = []string{
	" ▀ ",
	"   ",
	" ▀ ",
}

func getBigNumber(n int) []string {
	if n < 0 || n > 9 {
		return []string{"   ", "   ", "   "}
	}
	return bigNumbers[n]
}

// getBigClock renders hh:mm:ss as three lines of block glyphs
func getBigClock(hours, minutes, seconds int) []string {
	digits := [][2]int{
		{hours / 10, hours % 10},
		{minutes / 10, minutes % 10},
		{seconds / 10, seconds % 10},
	}

	result := make([]string, 3)
	for i := 0; i < 3; i++ {
		for j, pair := range digits {
			if j > 0 {
				result[i] += bigColon[i]
			}
			result[i] += getBigNumber(pair[0])[i] + " " + getBigNumber(pair[1])[i]
		}
	}

	return result
}
