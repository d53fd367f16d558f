package tuning

import "math"

// JustRatioMatch describes the just-intonation ratio closest to a step
// interval, along with how far the tempered interval deviates from it.
type JustRatioMatch struct {
	Ratio     string          `json:"ratio"`
	Name      string          `json:"name"`
	Cents     float64         `json:"cents"`
	Deviation float64         `json:"deviation"`
	Secondary *JustRatioMatch `json:"secondary,omitempty"`
}

type justEntry struct {
	ratio string
	name  string
	cents float64
}

// primaryRatios spans unison to octave with the canonical low-limit ratios.
var primaryRatios = []justEntry{
	{"1:1", "unison", 0.0},
	{"25:24", "chromatic semitone", 70.67},
	{"16:15", "minor second", 111.73},
	{"10:9", "minor whole tone", 182.40},
	{"9:8", "major whole tone", 203.91},
	{"6:5", "minor third", 315.64},
	{"5:4", "major third", 386.31},
	{"4:3", "perfect fourth", 498.04},
	{"7:5", "lesser septimal tritone", 582.51},
	{"45:32", "augmented fourth", 590.22},
	{"3:2", "perfect fifth", 701.96},
	{"8:5", "minor sixth", 813.69},
	{"5:3", "major sixth", 884.36},
	{"7:4", "harmonic seventh", 968.83},
	{"16:9", "small minor seventh", 996.09},
	{"9:5", "large minor seventh", 1017.60},
	{"15:8", "major seventh", 1088.27},
	{"2:1", "octave", 1200.0},
}

// secondaryRatios is the denser higher-limit table consulted for exotic
// intervals that the primary table explains poorly.
var secondaryRatios = []justEntry{
	{"81:80", "syntonic comma", 21.51},
	{"28:27", "septimal third tone", 62.96},
	{"21:20", "narrow semitone", 84.47},
	{"15:14", "septimal diatonic semitone", 119.44},
	{"12:11", "undecimal neutral second", 150.64},
	{"11:10", "greater undecimal second", 165.00},
	{"8:7", "septimal whole tone", 231.17},
	{"7:6", "septimal minor third", 266.87},
	{"11:9", "undecimal neutral third", 347.41},
	{"14:11", "undecimal diminished fourth", 417.51},
	{"9:7", "septimal major third", 435.08},
	{"21:16", "narrow fourth", 470.78},
	{"11:8", "undecimal superfourth", 551.32},
	{"10:7", "greater septimal tritone", 617.49},
	{"16:11", "undecimal subfifth", 648.68},
	{"22:15", "undecimal diminished fifth", 663.05},
	{"14:9", "septimal minor sixth", 764.92},
	{"11:7", "undecimal minor sixth", 782.49},
	{"13:8", "tridecimal neutral sixth", 840.53},
	{"18:11", "undecimal neutral sixth", 852.59},
	{"12:7", "septimal major sixth", 933.13},
	{"11:6", "undecimal neutral seventh", 1049.36},
	{"13:7", "tridecimal submajor seventh", 1071.70},
	{"27:14", "septimal major seventh", 1137.04},
}

// ClosestJustRatio finds the primary-table ratio nearest to a step interval
// in [0, 31]. If some secondary-table ratio is strictly nearer, it is
// attached as Secondary: the interval is better explained by an exotic
// ratio. Ratio strings in excluded are skipped in both tables, which lets a
// caller ask for the next-best explanation.
func ClosestJustRatio(steps int, excluded ...string) JustRatioMatch {
	cents := StepToCents(float64(steps))

	skip := make(map[string]bool, len(excluded))
	for _, r := range excluded {
		skip[r] = true
	}

	primary := scanTable(primaryRatios, cents, skip)
	secondary := scanTable(secondaryRatios, cents, skip)

	// An exclusion list covering the whole primary table promotes the best
	// secondary entry; excluding everything returns the zero match.
	if primary == nil {
		if secondary == nil {
			return JustRatioMatch{}
		}
		primary, secondary = secondary, nil
	}

	match := JustRatioMatch{
		Ratio:     primary.ratio,
		Name:      primary.name,
		Cents:     primary.cents,
		Deviation: math.Abs(cents - primary.cents),
	}

	if secondary != nil {
		dev := math.Abs(cents - secondary.cents)
		if dev < match.Deviation {
			match.Secondary = &JustRatioMatch{
				Ratio:     secondary.ratio,
				Name:      secondary.name,
				Cents:     secondary.cents,
				Deviation: dev,
			}
		}
	}

	return match
}

// scanTable returns the entry with minimum absolute deviation from cents,
// or nil if every entry is excluded.
func scanTable(table []justEntry, cents float64, skip map[string]bool) *justEntry {
	var best *justEntry
	bestDev := math.Inf(1)
	for i := range table {
		if skip[table[i].ratio] {
			continue
		}
		dev := math.Abs(cents - table[i].cents)
		if dev < bestDev {
			bestDev = dev
			best = &table[i]
		}
	}
	return best
}
