package session

import (
	"strings"
	"testing"
)

func TestUnmarshalBrowserExport(t *testing.T) {
	data := `{"state":{"score":12.5,"caughtHistory":["koi","funa","koi"],"currentStageId":"pond"},"version":0}`

	s, err := Unmarshal([]byte(data))
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if s.Version != CurrentVersion {
		t.Errorf("Version = %d, expected %d", s.Version, CurrentVersion)
	}
	if s.Score != 12.5 {
		t.Errorf("Score = %v, expected 12.5", s.Score)
	}
	if len(s.CaughtHistory) != 2 || s.CaughtHistory[0] != "funa" || s.CaughtHistory[1] != "koi" {
		t.Errorf("CaughtHistory = %v, expected [funa koi]", s.CaughtHistory)
	}
	if s.CurrentStageID != "pond" {
		t.Errorf("CurrentStageID = %q", s.CurrentStageID)
	}
}

func TestUnmarshalDefaultsAbsentFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"wrapped without history", `{"state":{"score":3},"version":0}`},
		{"bare legacy state", `{"score":3}`},
		{"v1 without history", "version: 1\nscore: 3\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Unmarshal([]byte(tc.data))
			if err != nil {
				t.Fatalf("Unmarshal() failed: %v", err)
			}
			if s.Score != 3 {
				t.Errorf("Score = %v, expected 3", s.Score)
			}
			if s.CaughtHistory == nil || len(s.CaughtHistory) != 0 {
				t.Errorf("CaughtHistory = %#v, expected empty non-nil", s.CaughtHistory)
			}
			if s.CurrentStageID != DefaultStageID {
				t.Errorf("CurrentStageID = %q, expected default", s.CurrentStageID)
			}
		})
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	s, err := Unmarshal(nil)
	if err != nil {
		t.Fatalf("Unmarshal(nil) failed: %v", err)
	}
	if s.CurrentStageID != DefaultStageID || s.Score != 0 {
		t.Errorf("Unmarshal(nil) = %+v", s)
	}
}

func TestUnmarshalRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"future version", "version: 9\n"},
		{"score text", `{"state":{"score":"lots"},"version":0}`},
		{"history object", `{"state":{"caughtHistory":{"a":1}},"version":0}`},
		{"malformed", "{"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tc.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMarshalWritesCurrentVersion(t *testing.T) {
	in := Snapshot{Score: 4.2, CaughtHistory: []string{"ryu", "ayu", "ryu"}, CurrentStageID: "stream"}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "version: 1") || !strings.Contains(text, "current_stage_id: stream") {
		t.Errorf("unexpected encoding:\n%s", text)
	}

	out, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if out.Score != 4.2 || out.CurrentStageID != "stream" || len(out.CaughtHistory) != 2 {
		t.Errorf("decoded %+v", out)
	}
}

func TestNormalizeClampsScore(t *testing.T) {
	s := Snapshot{Score: -5}.Normalize()
	if s.Score != 0 {
		t.Errorf("Score = %v, expected 0", s.Score)
	}

	s = Snapshot{CaughtHistory: []string{"koi", "", "koi"}}.Normalize()
	if len(s.CaughtHistory) != 1 || !s.Has("koi") || s.Has("") {
		t.Errorf("CaughtHistory = %v, expected [koi]", s.CaughtHistory)
	}
}
