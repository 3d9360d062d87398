package matching

// Category identifies a plugin's processing family. Scoring rules are keyed
// by category, so catalog entries in families without a rule score 0.
type Category string

const (
	CategoryEQ         Category = "eq"
	CategoryDynamics   Category = "dynamics"
	CategorySaturation Category = "saturation"
	CategoryReverb     Category = "reverb"
	CategoryModulation Category = "modulation"
)

// Parameter describes one adjustable plugin parameter with its legal range
type Parameter struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Unit    string  `json:"unit,omitempty"`
}

// Preset is a named set of parameter values shipped with a plugin
type Preset struct {
	Name   string             `json:"name"`
	Values map[string]float64 `json:"values"`
}

// PluginDescriptor is a static catalog entry. Descriptors are loaded at
// process start and never created or destroyed at runtime.
type PluginDescriptor struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Manufacturer string      `json:"manufacturer"`
	Category     Category    `json:"category"`
	Parameters   []Parameter `json:"parameters"`
	Presets      []Preset    `json:"presets"`
}

// DefaultCatalog returns the built-in plugin catalog. Order matters: equal
// similarity scores are ranked by catalog position.
func DefaultCatalog() []PluginDescriptor {
	return []PluginDescriptor{
		{
			ID:           "spectra-eq",
			Name:         "Spectra EQ",
			Manufacturer: "NoAudio Labs",
			Category:     CategoryEQ,
			Parameters: []Parameter{
				{ID: "frequency", Name: "Frequency", Min: 20, Max: 20000, Default: 1000, Unit: "Hz"},
				{ID: "gain", Name: "Gain", Min: -12, Max: 12, Default: 0, Unit: "dB"},
				{ID: "q", Name: "Q", Min: 0.1, Max: 10, Default: 0.7},
			},
			Presets: []Preset{
				{Name: "Presence Lift", Values: map[string]float64{"frequency": 3500, "gain": 3, "q": 1.2}},
				{Name: "Rumble Cut", Values: map[string]float64{"frequency": 80, "gain": -9, "q": 0.7}},
			},
		},
		{
			ID:           "glue-comp",
			Name:         "Glue Compressor",
			Manufacturer: "NoAudio Labs",
			Category:     CategoryDynamics,
			Parameters: []Parameter{
				{ID: "threshold", Name: "Threshold", Min: -60, Max: 0, Default: -18, Unit: "dB"},
				{ID: "ratio", Name: "Ratio", Min: 1, Max: 20, Default: 4},
				{ID: "attack", Name: "Attack", Min: 0.1, Max: 100, Default: 10, Unit: "ms"},
				{ID: "release", Name: "Release", Min: 10, Max: 1000, Default: 120, Unit: "ms"},
			},
			Presets: []Preset{
				{Name: "Bus Glue", Values: map[string]float64{"threshold": -12, "ratio": 2, "attack": 30, "release": 300}},
				{Name: "Vocal Leveler", Values: map[string]float64{"threshold": -24, "ratio": 4, "attack": 5, "release": 80}},
			},
		},
		{
			ID:           "tape-sat",
			Name:         "Tape Saturator",
			Manufacturer: "Ferric Audio",
			Category:     CategorySaturation,
			Parameters: []Parameter{
				{ID: "drive", Name: "Drive", Min: 0, Max: 10, Default: 2},
				{ID: "mix", Name: "Mix", Min: 0, Max: 1, Default: 1},
			},
			Presets: []Preset{
				{Name: "Gentle Warmth", Values: map[string]float64{"drive": 1.5, "mix": 0.6}},
				{Name: "Crushed", Values: map[string]float64{"drive": 8, "mix": 1}},
			},
		},
		{
			ID:           "peak-limiter",
			Name:         "Peak Limiter",
			Manufacturer: "NoAudio Labs",
			Category:     CategoryDynamics,
			Parameters: []Parameter{
				{ID: "threshold", Name: "Threshold", Min: -24, Max: 0, Default: -3, Unit: "dB"},
				{ID: "release", Name: "Release", Min: 1, Max: 500, Default: 50, Unit: "ms"},
			},
			Presets: []Preset{
				{Name: "Safety Net", Values: map[string]float64{"threshold": -1, "release": 50}},
			},
		},
		{
			ID:           "space-verb",
			Name:         "Space Verb",
			Manufacturer: "Ambient Works",
			Category:     CategoryReverb,
			Parameters: []Parameter{
				{ID: "size", Name: "Size", Min: 0, Max: 1, Default: 0.5},
				{ID: "mix", Name: "Mix", Min: 0, Max: 1, Default: 0.25},
			},
			Presets: []Preset{
				{Name: "Small Room", Values: map[string]float64{"size": 0.2, "mix": 0.15}},
				{Name: "Cathedral", Values: map[string]float64{"size": 0.9, "mix": 0.4}},
			},
		},
		{
			ID:           "vintage-chorus",
			Name:         "Vintage Chorus",
			Manufacturer: "Ambient Works",
			Category:     CategoryModulation,
			Parameters: []Parameter{
				{ID: "rate", Name: "Rate", Min: 0.1, Max: 10, Default: 0.8, Unit: "Hz"},
				{ID: "depth", Name: "Depth", Min: 0, Max: 1, Default: 0.3},
			},
			Presets: []Preset{
				{Name: "Subtle Width", Values: map[string]float64{"rate": 0.5, "depth": 0.2}},
			},
		},
	}
}
