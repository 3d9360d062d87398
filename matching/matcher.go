package matching

import (
	"fmt"
	"sort"

	"github.com/lagooneration/noaudio/algorithms/common"
	"github.com/lagooneration/noaudio/analysis"
	"github.com/lagooneration/noaudio/logging"
)

// PluginMatch is one scored catalog entry. Matches are created fresh per
// FindMatches call and never persisted.
type PluginMatch struct {
	PluginID            string             `json:"plugin_id"`
	Name                string             `json:"name"`
	Similarity          float64            `json:"similarity"` // [0, 1]
	Confidence          float64            `json:"confidence"` // [0, 1]
	SuggestedParameters map[string]float64 `json:"suggested_parameters"`
	Description         string             `json:"description"`
}

// Matcher scores a feature record against a static plugin catalog. It is
// stateless: every call is an independent pass over the catalog.
type Matcher struct {
	catalog []PluginDescriptor
	logger  logging.Logger
}

// NewMatcher creates a matcher over the given catalog; nil selects the
// built-in DefaultCatalog
func NewMatcher(catalog []PluginDescriptor) *Matcher {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	return &Matcher{
		catalog: catalog,
		logger: logging.WithFields(logging.Fields{
			"component": "plugin_matcher",
		}),
	}
}

// Catalog returns the catalog the matcher scores against
func (m *Matcher) Catalog() []PluginDescriptor {
	return m.catalog
}

// FindMatches scores every catalog entry against the record and returns all
// of them sorted by similarity, descending. The sort is stable, so entries
// with equal similarity keep catalog order.
func (m *Matcher) FindMatches(record *analysis.FeatureRecord) ([]PluginMatch, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot match plugins: nil feature record")
	}

	matches := make([]PluginMatch, len(m.catalog))
	for i, plugin := range m.catalog {
		matches[i] = m.scorePlugin(plugin, record)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > 0 {
		m.logger.Debug("plugin matching complete", logging.Fields{
			"catalog_size": len(m.catalog),
			"best_match":   matches[0].PluginID,
		})
	}

	return matches, nil
}

func (m *Matcher) scorePlugin(plugin PluginDescriptor, record *analysis.FeatureRecord) PluginMatch {
	similarity := m.similarity(plugin.Category, record)
	confidence := m.confidence(plugin.Category, similarity, record)

	return PluginMatch{
		PluginID:            plugin.ID,
		Name:                plugin.Name,
		Similarity:          similarity,
		Confidence:          confidence,
		SuggestedParameters: m.suggestParameters(plugin, record),
		Description:         m.describe(plugin, similarity, record),
	}
}

// similarity applies the category-specific weighted heuristic; categories
// without a rule score 0
func (m *Matcher) similarity(category Category, record *analysis.FeatureRecord) float64 {
	switch category {
	case CategoryEQ:
		brightness := common.Clamp01(record.Spectral.Centroid / 8000.0)
		return common.Clamp01(0.4*brightness + 0.3*record.Spectral.Flatness)

	case CategoryDynamics:
		crest := 0.0
		if record.Temporal.RMS > 0 {
			crest = common.Clamp01(record.Temporal.Energy / record.Temporal.RMS / 10.0)
		}
		activity := common.Clamp01(record.Temporal.ZeroCrossingRate / 1000.0)
		return common.Clamp01(0.5*crest + 0.3*activity)

	case CategorySaturation:
		return common.Clamp01(0.4 * record.Harmonic.Inharmonicity)

	default:
		return 0.0
	}
}

// confidence boosts similarity with category-specific secondary signals,
// capped at 1
func (m *Matcher) confidence(category Category, similarity float64, record *analysis.FeatureRecord) float64 {
	confidence := similarity

	switch category {
	case CategoryEQ:
		if record.Spectral.Flatness > 0.7 {
			confidence += 0.2
		}
	case CategoryDynamics:
		if record.Temporal.Loudness > -12.0 {
			confidence += 0.15
		}
	case CategorySaturation:
		if record.Harmonic.Harmonicity < 0.3 {
			confidence += 0.2
		}
	}

	return common.Clamp01(confidence)
}

// suggestParameters fills every declared parameter: specific rules where one
// exists, the declared default otherwise. Rule outputs are clamped to the
// parameter's declared range.
func (m *Matcher) suggestParameters(plugin PluginDescriptor, record *analysis.FeatureRecord) map[string]float64 {
	suggested := make(map[string]float64, len(plugin.Parameters))

	for _, param := range plugin.Parameters {
		value := param.Default

		switch {
		case plugin.Category == CategoryDynamics && param.ID == "threshold":
			// Threshold sits 10 dB under the measured loudness
			value = common.Clamp(record.Temporal.Loudness-10.0, param.Min, param.Max)

		case plugin.Category == CategoryEQ && param.ID == "frequency":
			value = common.Clamp(record.Spectral.Centroid, param.Min, param.Max)

		case plugin.Category == CategorySaturation && param.ID == "drive":
			value = common.Clamp(param.Min+record.Harmonic.Inharmonicity*(param.Max-param.Min), param.Min, param.Max)
		}

		suggested[param.ID] = value
	}

	return suggested
}

// describe assembles a justification from the same threshold checks that
// drive scoring, falling back to a generic similarity sentence
func (m *Matcher) describe(plugin PluginDescriptor, similarity float64, record *analysis.FeatureRecord) string {
	switch plugin.Category {
	case CategoryEQ:
		if record.Spectral.Flatness > 0.7 {
			return fmt.Sprintf("%s can tame the noisy spectral balance (flatness %.2f)", plugin.Name, record.Spectral.Flatness)
		}
		if record.Spectral.Centroid > 4000 {
			return fmt.Sprintf("%s suits the bright spectrum (centroid %.0f Hz)", plugin.Name, record.Spectral.Centroid)
		}

	case CategoryDynamics:
		if record.Temporal.Loudness > -12.0 {
			return fmt.Sprintf("%s can control the hot signal (loudness %.1f dB)", plugin.Name, record.Temporal.Loudness)
		}

	case CategorySaturation:
		if record.Harmonic.Harmonicity < 0.3 {
			return fmt.Sprintf("%s complements the inharmonic material (harmonicity %.2f)", plugin.Name, record.Harmonic.Harmonicity)
		}
	}

	return fmt.Sprintf("%s: %d%% similarity to the analyzed material", plugin.Name, int(similarity*100.0+0.5))
}

// FindMatches scores a record against the built-in catalog
func FindMatches(record *analysis.FeatureRecord) ([]PluginMatch, error) {
	return NewMatcher(nil).FindMatches(record)
}
