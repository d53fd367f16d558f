package chord

import (
	"strings"

	"github.com/halewijn/edo31/theory/scale"
	"github.com/halewijn/edo31/theory/tuning"
)

// Chord is a derived chord record. Notes are absolute steps and may exceed
// 31 for upper-octave members; Intervals are the consecutive note
// differences used for classification. Chords are built once and never
// mutated - inversion returns new note sequences.
type Chord struct {
	Degree      int    `json:"degree"`
	DegreeRoman string `json:"degree_roman"`
	Type        string `json:"type"`
	Function    string `json:"function"`
	Notes       []int  `json:"notes"`
	Intervals   []int  `json:"intervals"`
}

// Set holds every chord derivation the engine computes for one scale.
type Set struct {
	Triads              []Chord `json:"triads"`
	Sevenths            []Chord `json:"sevenths"`
	IntervallicTriads   []Chord `json:"intervallic_triads"`
	IntervallicSevenths []Chord `json:"intervallic_sevenths"`
}

// DeriveAll computes both derivation modes, triads and sevenths, for a
// scale.
func DeriveAll(s scale.Scale) Set {
	return Set{
		Triads:              DeriveTraditional(s, false),
		Sevenths:            DeriveTraditional(s, true),
		IntervallicTriads:   DeriveIntervallic(s, false),
		IntervallicSevenths: DeriveIntervallic(s, true),
	}
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// romanForDegree labels a zero-based scale degree, upper case for a
// major-like third (>= 9 steps above the chord root), lower case otherwise.
func romanForDegree(degree int, majorLike bool) string {
	if degree < 0 || degree >= len(romanNumerals) {
		return ""
	}
	numeral := romanNumerals[degree]
	if !majorLike {
		return strings.ToLower(numeral)
	}
	return numeral
}

// harmonicFunction assigns a traditional function label from the chord
// root's position within the scale.
func harmonicFunction(degreeIndex, noteCount, rootDegree int) string {
	if degreeIndex == 0 {
		return "tonic"
	}
	switch {
	case rootDegree >= 17 && rootDegree <= 19:
		return "dominant"
	case rootDegree >= 12 && rootDegree <= 14:
		return "subdominant"
	case degreeIndex == noteCount-1 && rootDegree >= 27:
		return "leading"
	case rootDegree >= 8 && rootDegree <= 11:
		return "mediant"
	case rootDegree >= 20 && rootDegree <= 26:
		return "submediant"
	case rootDegree <= 7:
		return "supertonic"
	default:
		return "other"
	}
}

// pitchDegrees strips the terminal octave degree.
func pitchDegrees(s scale.Scale) []int {
	if len(s.Degrees) < 2 {
		return nil
	}
	return s.Degrees[:len(s.Degrees)-1]
}

// degreeAt indexes the conceptual degree array extended with upper-octave
// copies, so wrap-around chord members resolve to upper-octave pitches.
func degreeAt(degrees []int, idx int) int {
	n := len(degrees)
	return degrees[idx%n] + tuning.StepsPerOctave*(idx/n)
}

// DeriveTraditional stacks literal scale degrees: root/third/fifth(/seventh)
// are the degrees at positions i, i+2, i+4(, i+6) of the octave-extended
// degree array.
func DeriveTraditional(s scale.Scale, withSeventh bool) []Chord {
	degrees := pitchDegrees(s)
	if len(degrees) < 2 {
		return nil
	}

	var chords []Chord
	for i := range degrees {
		notes := []int{
			degreeAt(degrees, i),
			degreeAt(degrees, i+2),
			degreeAt(degrees, i+4),
		}
		if withSeventh {
			notes = append(notes, degreeAt(degrees, i+6))
		}
		chords = append(chords, build(i, len(degrees), notes))
	}
	return chords
}

// Target bands for intervallic best-fit derivation, in steps above the
// chord root.
var (
	thirdBand   = [2]int{7, 11}
	fifthBand   = [2]int{17, 19}
	seventhBand = [2]int{25, 28}
)

// findTone scans the extended degree array above root for the first degree
// whose interval from the root lands inside the band, falling back to the
// degree closest to the band's center when none does. The scan covers one
// full cycle of the scale; ok is false only when there is nothing above the
// root to pick.
func findTone(degrees []int, rootIdx int, band [2]int) (int, bool) {
	root := degreeAt(degrees, rootIdx)
	center := float64(band[0]+band[1]) / 2

	bestNote := 0
	bestDist := -1.0
	for idx := rootIdx + 1; idx <= rootIdx+len(degrees); idx++ {
		note := degreeAt(degrees, idx)
		diff := note - root
		if diff <= 0 {
			continue
		}
		if diff >= band[0] && diff <= band[1] {
			return note, true
		}
		dist := float64(diff) - center
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestNote = note
		}
	}
	if bestDist < 0 {
		return 0, false
	}
	return bestNote, true
}

// DeriveIntervallic builds best-fit chords by scanning each root's upward
// intervals for third-, fifth- and seventh-like tones. A chord is emitted
// only when at least one tone besides the root was found.
func DeriveIntervallic(s scale.Scale, withSeventh bool) []Chord {
	degrees := pitchDegrees(s)
	if len(degrees) == 0 {
		return nil
	}

	var chords []Chord
	for i := range degrees {
		notes := []int{degreeAt(degrees, i)}
		if third, ok := findTone(degrees, i, thirdBand); ok {
			notes = append(notes, third)
		}
		if fifth, ok := findTone(degrees, i, fifthBand); ok && fifth != notes[len(notes)-1] {
			notes = append(notes, fifth)
		}
		if withSeventh {
			if seventh, ok := findTone(degrees, i, seventhBand); ok && seventh != notes[len(notes)-1] {
				notes = append(notes, seventh)
			}
		}
		if len(notes) < 2 {
			continue
		}
		chords = append(chords, build(i, len(degrees), notes))
	}
	return chords
}

// build assembles the chord record shared by both derivation modes.
func build(degreeIndex, noteCount int, notes []int) Chord {
	intervals := make([]int, 0, len(notes)-1)
	for i := 1; i < len(notes); i++ {
		intervals = append(intervals, notes[i]-notes[i-1])
	}

	majorLike := len(notes) >= 2 && notes[1]-notes[0] >= 9
	root := notes[0] % tuning.StepsPerOctave

	return Chord{
		Degree:      degreeIndex,
		DegreeRoman: romanForDegree(degreeIndex, majorLike),
		Type:        GetChordType(intervals),
		Function:    harmonicFunction(degreeIndex, noteCount, root),
		Notes:       notes,
		Intervals:   intervals,
	}
}
