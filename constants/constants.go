package constants

import "os"

func GetExportDir() string {
	path := os.Getenv("EXPORT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// 5040 = 2^4 * 3^2 * 5 * 7, so every beat down to a 64th and every
// supported tuplet denominator (3, 5, 7, 9) divides a quarter exactly.
const DivisionsPerQuarter = 5040
const DivisionsPerBar = DivisionsPerQuarter * 4

const TicksPerQuarter = 960
const TicksPerBar = TicksPerQuarter * 4

const DefaultTempo = 120
