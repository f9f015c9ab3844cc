// Package catalog holds the static fish species and stage definitions.
// The default catalog is embedded; a YAML override can replace it.
package catalog

import "strings"

// DefaultWaterLine is the water surface as a fraction of surface height,
// used when a stage does not set its own.
const DefaultWaterLine = 0.35

// Body selects the sprite family for a species.
type Body string

const (
	BodyStandard Body = "standard"
	BodyGoldfish Body = "goldfish"
)

// Ambient selects the periodic ambient effect a stage emits.
type Ambient string

const (
	AmbientPetals  Ambient = "petals"
	AmbientSparkle Ambient = "sparkle"
)

// Special color tokens understood by renderers.
const (
	ColorPattern = "pattern"
	ColorGold    = "gold"
)

// Species is an immutable fish definition.
type Species struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	NameEn  string  `yaml:"name_en"`
	Rarity  int     `yaml:"rarity"`
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
	Color   string  `yaml:"color"`
	Speed   float64 `yaml:"speed"`
	Power   float64 `yaml:"power"`
	Body    Body    `yaml:"body"`
	Desc    string  `yaml:"desc"`
}

// Stars renders the rarity as filled stars.
func (s *Species) Stars() string {
	return strings.Repeat("★", s.Rarity)
}

// Stage is an immutable location definition.
type Stage struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	NameEn     string   `yaml:"name_en"`
	Gradient   []string `yaml:"gradient"`
	WaterColor string   `yaml:"water_color"`
	Flow       float64  `yaml:"flow"`
	FishCount  int      `yaml:"fish_count"`
	FishTypes  []string `yaml:"fish_types"`
	WaterY     float64  `yaml:"water_y"`
	Ambient    Ambient  `yaml:"ambient"`
}

// WaterLine returns the stage's water surface fraction.
func (s *Stage) WaterLine() float64 {
	if s.WaterY > 0 {
		return s.WaterY
	}
	return DefaultWaterLine
}

// AmbientEffect returns the stage's ambient effect, petals by default.
func (s *Stage) AmbientEffect() Ambient {
	if s.Ambient == "" {
		return AmbientPetals
	}
	return s.Ambient
}

// Catalog indexes species and stages by id, keeping file order.
type Catalog struct {
	species   []Species
	stages    []Stage
	speciesBy map[string]*Species
	stageBy   map[string]*Stage
}

// New builds a catalog from species and stage lists.
// It does not validate; call Validate for that.
func New(species []Species, stages []Stage) *Catalog {
	c := &Catalog{
		species:   append([]Species(nil), species...),
		stages:    append([]Stage(nil), stages...),
		speciesBy: make(map[string]*Species, len(species)),
		stageBy:   make(map[string]*Stage, len(stages)),
	}
	for i := range c.species {
		if c.species[i].Body == "" {
			c.species[i].Body = BodyStandard
		}
		c.speciesBy[c.species[i].ID] = &c.species[i]
	}
	for i := range c.stages {
		c.stageBy[c.stages[i].ID] = &c.stages[i]
	}
	return c
}

// Species returns the species with the given id, or nil.
func (c *Catalog) Species(id string) *Species {
	return c.speciesBy[id]
}

// Stage returns the stage with the given id, or nil.
func (c *Catalog) Stage(id string) *Stage {
	return c.stageBy[id]
}

// AllSpecies returns every species in catalog order.
func (c *Catalog) AllSpecies() []*Species {
	out := make([]*Species, len(c.species))
	for i := range c.species {
		out[i] = &c.species[i]
	}
	return out
}

// Stages returns every stage in catalog order.
func (c *Catalog) Stages() []*Stage {
	out := make([]*Stage, len(c.stages))
	for i := range c.stages {
		out[i] = &c.stages[i]
	}
	return out
}

// StageIDs returns stage ids in catalog order.
func (c *Catalog) StageIDs() []string {
	ids := make([]string, len(c.stages))
	for i := range c.stages {
		ids[i] = c.stages[i].ID
	}
	return ids
}

// DefaultStage is the first stage in the catalog.
func (c *Catalog) DefaultStage() *Stage {
	if len(c.stages) == 0 {
		return nil
	}
	return &c.stages[0]
}

// FallbackSpecies is used when a stage roster resolves to nothing.
func (c *Catalog) FallbackSpecies() *Species {
	if len(c.species) == 0 {
		return nil
	}
	return &c.species[0]
}

// Roster resolves a stage's fish types to species, skipping unknown ids.
func (c *Catalog) Roster(st *Stage) []*Species {
	out := make([]*Species, 0, len(st.FishTypes))
	for _, id := range st.FishTypes {
		if sp := c.speciesBy[id]; sp != nil {
			out = append(out, sp)
		}
	}
	return out
}
