package generate

import (
	"fmt"

	"github.com/halewijn/edo31/catalog"
	"github.com/halewijn/edo31/logging"
	"github.com/halewijn/edo31/theory/chord"
	"github.com/halewijn/edo31/theory/scale"
	"github.com/halewijn/edo31/theory/stats"
	"github.com/halewijn/edo31/theory/tuning"
	"github.com/halewijn/edo31/util"
)

// Engine runs every enabled generator family in fixed order against one
// shared name registry, publishing named, categorized scales with their
// derived chords. One Engine corresponds to exactly one generation run;
// the registry is never reused across runs.
type Engine struct {
	params   Params
	registry *NameRegistry
	namer    *Namer
	logger   logging.Logger
}

// NewEngine creates an engine with a fresh name registry.
func NewEngine(params Params) *Engine {
	registry := NewNameRegistry()
	return &Engine{
		params:   params,
		registry: registry,
		namer:    NewNamer(registry),
		logger:   logging.WithFields(logging.Fields{"component": "engine"}),
	}
}

// Run executes the full generation batch and returns the catalog. Given
// identical parameters the output is identical across runs; family order,
// generator order, and registry state all follow generation order.
func (e *Engine) Run() (*catalog.Catalog, error) {
	cat := catalog.NewCatalog(e.params)

	for _, family := range e.params.Families {
		f, err := e.runFamily(family)
		if err != nil {
			return nil, err
		}
		cat.AddFamily(f)
		e.logger.Info("family generated", logging.Fields{
			"family": family,
			"scales": f.Count(),
		})
	}

	e.logger.Info("generation run complete", logging.Fields{
		"run_id": cat.Manifest.RunID,
		"scales": cat.Manifest.ScaleCount,
	})
	return cat, nil
}

func (e *Engine) runFamily(family string) (catalog.Family, error) {
	switch family {
	case FamilyHeptatonic:
		return e.flatFamily(family, NewHeptatonicGenerator(e.params).Generate())
	case FamilyMOS:
		return e.flatFamily(family, NewMOSGenerator(e.params).Generate())
	case FamilyWellFormed:
		return e.flatFamily(family, NewWellFormedGenerator(e.params).Generate())
	case FamilyHybrid:
		return e.groupedFamily(family, NewHybridGenerator(e.params, e.registry).Generate())
	case FamilyXenharmonic:
		return e.groupedFamily(family, NewXenharmonicGenerator(e.registry).Generate())
	case FamilyHistorical:
		return e.groupedFamily(family, NewHistoricalGenerator(e.registry).Generate())
	case FamilyCultural:
		return e.groupedFamily(family, NewCulturalGenerator(e.params, e.registry).Generate())
	default:
		return catalog.Family{}, fmt.Errorf("unknown generator family %q", family)
	}
}

func (e *Engine) flatFamily(name string, scales []scale.Scale) (catalog.Family, error) {
	family := catalog.Family{Name: name}
	for _, s := range scales {
		entry, ok := e.publish(s)
		if !ok {
			continue
		}
		family.Scales = append(family.Scales, entry)
	}
	return family, nil
}

func (e *Engine) groupedFamily(name string, groups map[string][]scale.Scale) (catalog.Family, error) {
	family := catalog.Family{Name: name, Groups: map[string][]catalog.Entry{}}
	for _, groupName := range util.SortedKeys(groups) {
		for _, s := range groups[groupName] {
			entry, ok := e.publish(s)
			if !ok {
				continue
			}
			family.Groups[groupName] = append(family.Groups[groupName], entry)
		}
	}
	return family, nil
}

// publish validates a generated scale, names it if the generator did not,
// attaches categories, properties and a description, and derives its
// chords. Invalid scales indicate a generator defect: they are logged and
// dropped rather than silently passed through.
func (e *Engine) publish(s scale.Scale) (catalog.Entry, bool) {
	if err := s.Validate(); err != nil {
		e.logger.Error(err, "dropping invalid generated scale")
		return catalog.Entry{}, false
	}

	if s.Name == "" {
		s.Name = e.namer.Name(s)
	}
	s.Categories = Categorize(s)

	consonance := tuning.OverallConsonance(s.Degrees[:len(s.Degrees)-1])
	if s.Properties == nil {
		s.Properties = map[string]float64{}
	}
	s.Properties["note_count"] = float64(s.NoteCount())
	s.Properties["mean_interval"] = stats.Mean(stats.IntsToFloats(s.Intervals))
	s.Properties["consonance"] = consonance.Rating

	if s.Description == "" {
		s.Description = fmt.Sprintf("%d-note scale (%s), %s",
			s.NoteCount(), s.IntervalKey(), consonance.Description)
	}

	return catalog.Entry{Scale: s, Chords: chord.DeriveAll(s)}, true
}
