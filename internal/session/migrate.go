package session

import "fmt"

// migrate upgrades a decoded document to the current version, filling
// fields the source version did not have.
func migrate(raw map[string]any) (Snapshot, error) {
	version := 0
	if v, ok := raw["version"]; ok {
		n, ok := toFloat(v)
		if !ok {
			return Snapshot{}, fmt.Errorf("session: version is not a number: %v", v)
		}
		version = int(n)
	}

	switch {
	case version <= 0:
		return fromBrowserExport(raw)
	case version == 1:
		return fromV1(raw)
	default:
		return Snapshot{}, fmt.Errorf("session: unsupported snapshot version %d", version)
	}
}

// fromBrowserExport reads the wrapped camelCase format. A document without
// the wrapper is read as the bare state object.
func fromBrowserExport(raw map[string]any) (Snapshot, error) {
	state := raw
	if inner, ok := raw["state"].(map[string]any); ok {
		state = inner
	}

	s := Snapshot{
		CurrentStageID: stringField(state, "currentStageId"),
	}
	if v, ok := state["score"]; ok {
		score, ok := toFloat(v)
		if !ok {
			return Snapshot{}, fmt.Errorf("session: score is not a number: %v", v)
		}
		s.Score = score
	}
	history, err := stringList(state, "caughtHistory")
	if err != nil {
		return Snapshot{}, err
	}
	s.CaughtHistory = history
	return s.Normalize(), nil
}

func fromV1(raw map[string]any) (Snapshot, error) {
	s := Snapshot{
		CurrentStageID: stringField(raw, "current_stage_id"),
	}
	if v, ok := raw["score"]; ok {
		score, ok := toFloat(v)
		if !ok {
			return Snapshot{}, fmt.Errorf("session: score is not a number: %v", v)
		}
		s.Score = score
	}
	history, err := stringList(raw, "caught_history")
	if err != nil {
		return Snapshot{}, err
	}
	s.CaughtHistory = history
	return s.Normalize(), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringList(m map[string]any, key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("session: %s is not a list", key)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("session: %s contains a non-string entry %v", key, item)
		}
		out = append(out, s)
	}
	return out, nil
}
