package generate

// Family names in their fixed run order. Naming uniqueness depends on
// generation order, so the order here is load-bearing.
const (
	FamilyHeptatonic  = "heptatonic"
	FamilyMOS         = "mos"
	FamilyWellFormed  = "wellformed"
	FamilyHybrid      = "hybrid"
	FamilyXenharmonic = "xenharmonic"
	FamilyHistorical  = "historical"
	FamilyCultural    = "cultural"
)

// AllFamilies lists every generator family in run order.
var AllFamilies = []string{
	FamilyHeptatonic,
	FamilyMOS,
	FamilyWellFormed,
	FamilyHybrid,
	FamilyXenharmonic,
	FamilyHistorical,
	FamilyCultural,
}

// Params contains parameters for one generation run.
type Params struct {
	// Step-size band most generators accept scales within. The
	// xenharmonic family deliberately ignores it.
	MinStep int `json:"min_step"`
	MaxStep int `json:"max_step"`

	// MaxFlattenDepth caps exploration along one cyclic direction of the
	// heptatonic flattening search.
	MaxFlattenDepth int `json:"max_flatten_depth"`

	// BreakOnDuplicate terminates a flattening direction on the first
	// invalid or duplicate candidate instead of skipping past it. True
	// matches the historical pruning behavior; false explores the scale
	// space further.
	BreakOnDuplicate bool `json:"break_on_duplicate"`

	// MOS stacking parameters.
	MOSGenerators []int `json:"mos_generators"`
	MOSMinNotes   int   `json:"mos_min_notes"`
	MOSMaxNotes   int   `json:"mos_max_notes"`

	// Families enabled for this run, in run order.
	Families []string `json:"families"`
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		MinStep:          2,
		MaxStep:          7,
		MaxFlattenDepth:  48,
		BreakOnDuplicate: true,
		MOSGenerators:    []int{8, 10, 13, 18, 19},
		MOSMinNotes:      5,
		MOSMaxNotes:      9,
		Families:         AllFamilies,
	}
}

// FamilyEnabled reports whether a family participates in this run.
func (p Params) FamilyEnabled(name string) bool {
	for _, f := range p.Families {
		if f == name {
			return true
		}
	}
	return false
}
