package catalog

import (
	"errors"
	"fmt"
)

// ValidationError describes one problem in a catalog.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the catalog and reports every problem at once.
// Checks:
//   - at least one species and one stage
//   - unique ids
//   - rarity in 1..5, 0 < min size <= max size, positive speed and power
//   - every stage has a positive fish count and a non-empty roster of known species
func (c *Catalog) Validate() error {
	var errs []error
	add := func(code, format string, args ...any) {
		errs = append(errs, ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if len(c.species) == 0 {
		add("NO_SPECIES", "catalog defines no species")
	}
	if len(c.stages) == 0 {
		add("NO_STAGES", "catalog defines no stages")
	}

	seen := make(map[string]bool)
	for _, sp := range c.species {
		if sp.ID == "" {
			add("MISSING_ID", "species without id")
			continue
		}
		if seen[sp.ID] {
			add("DUPLICATE_ID", "species %q defined twice", sp.ID)
		}
		seen[sp.ID] = true

		if sp.Rarity < 1 || sp.Rarity > 5 {
			add("BAD_RARITY", "species %q rarity %d outside 1..5", sp.ID, sp.Rarity)
		}
		if sp.MinSize <= 0 || sp.MinSize > sp.MaxSize {
			add("BAD_SIZE", "species %q size range %.0f-%.0f", sp.ID, sp.MinSize, sp.MaxSize)
		}
		if sp.Speed <= 0 || sp.Power <= 0 {
			add("BAD_STATS", "species %q needs positive speed and power", sp.ID)
		}
		if sp.Body != BodyStandard && sp.Body != BodyGoldfish {
			add("BAD_BODY", "species %q has unknown body %q", sp.ID, sp.Body)
		}
	}

	stageSeen := make(map[string]bool)
	for _, st := range c.stages {
		if st.ID == "" {
			add("MISSING_ID", "stage without id")
			continue
		}
		if stageSeen[st.ID] {
			add("DUPLICATE_ID", "stage %q defined twice", st.ID)
		}
		stageSeen[st.ID] = true

		if st.FishCount <= 0 {
			add("BAD_COUNT", "stage %q fish count %d", st.ID, st.FishCount)
		}
		if len(st.FishTypes) == 0 {
			add("EMPTY_ROSTER", "stage %q has no fish types", st.ID)
		}
		for _, id := range st.FishTypes {
			if c.speciesBy[id] == nil {
				add("UNKNOWN_SPECIES", "stage %q references unknown species %q", st.ID, id)
			}
		}
		if len(st.Gradient) != 4 {
			add("BAD_GRADIENT", "stage %q gradient needs 4 stops, has %d", st.ID, len(st.Gradient))
		}
		if st.WaterY < 0 || st.WaterY >= 0.9 {
			add("BAD_WATER_LINE", "stage %q water line %.2f", st.ID, st.WaterY)
		}
		if a := st.Ambient; a != "" && a != AmbientPetals && a != AmbientSparkle {
			add("BAD_AMBIENT", "stage %q has unknown ambient %q", st.ID, a)
		}
	}

	return errors.Join(errs...)
}
