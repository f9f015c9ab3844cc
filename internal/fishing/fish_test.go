package fishing

import (
	"testing"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
)

func TestSpawnFishFromRoster(t *testing.T) {
	cat := catalog.Default()
	b := Bounds{W: testW, H: testH}
	rng := core.NewRand(21)

	for _, st := range cat.Stages() {
		roster := map[string]bool{}
		for _, id := range st.FishTypes {
			roster[id] = true
		}
		for i := 0; i < 50; i++ {
			f := SpawnFish(st, cat, b, rng)
			if !roster[f.Species.ID] {
				t.Fatalf("%s: spawned %q outside the roster", st.ID, f.Species.ID)
			}
			if f.Size < f.Species.MinSize || f.Size > f.Species.MaxSize {
				t.Errorf("%s: size %v outside [%v, %v]", st.ID, f.Size, f.Species.MinSize, f.Species.MaxSize)
			}
			if f.Pos.Y < testH*0.4 || f.Pos.Y > testH*0.8 {
				t.Errorf("%s: spawn y %v outside [0.4h, 0.8h]", st.ID, f.Pos.Y)
			}
			if f.State != FishIdle {
				t.Errorf("%s: spawned in state %v", st.ID, f.State)
			}
		}
	}
}

func TestGoldfishScale(t *testing.T) {
	cat := catalog.Default()
	st := cat.Stage("festival")
	rng := core.NewRand(22)
	b := Bounds{W: testW, H: testH}

	for i := 0; i < 50; i++ {
		f := SpawnFish(st, cat, b, rng)
		base := f.Size / 50 * 1.3
		want := base
		if f.Species.Body == catalog.BodyGoldfish {
			want = base * goldfishScale
		}
		if f.Scale != want {
			t.Errorf("%s scale = %v, expected %v", f.Species.ID, f.Scale, want)
		}
	}
}

func TestEmptyRosterFallsBack(t *testing.T) {
	cat := catalog.Default()
	st := &catalog.Stage{ID: "empty", FishCount: 1}
	f := SpawnFish(st, cat, Bounds{W: testW, H: testH}, core.NewRand(23))
	if f.Species != cat.FallbackSpecies() {
		t.Errorf("species = %q, expected the fallback", f.Species.ID)
	}
}

func TestFishStaysInWater(t *testing.T) {
	cat := catalog.Default()
	tune := config.DefaultFishingConfig()
	b := Bounds{W: testW, H: testH}
	rng := core.NewRand(24)

	for _, st := range cat.Stages() {
		f := SpawnFish(st, cat, b, rng)
		for i := 0; i < 2000; i++ {
			f.Update(st, b, uint64(i), nil, tune, rng, func(Particle) {})
			if f.Pos.Y < b.H*st.WaterLine() || f.Pos.Y > b.H-bottomMargin {
				t.Fatalf("%s tick %d: fish y %v out of water", st.ID, i, f.Pos.Y)
			}
		}
	}
}

func TestChasingFishApproachesBobber(t *testing.T) {
	cat := catalog.Default()
	st := cat.Stage("pond")
	tune := config.DefaultFishingConfig()
	b := Bounds{W: testW, H: testH}

	f := &Fish{Pos: core.V(100, 400), Species: cat.Species("koi"), Size: 50, PersonalitySpeed: 1, State: FishChasing}
	bob := &Bobber{Pos: core.V(400, 300), Submerged: true}
	start := f.Pos.Dist(bob.Pos)

	for i := 0; i < 60; i++ {
		f.Update(st, b, uint64(i), bob, tune, core.NewRand(1), func(Particle) {})
	}
	if d := f.Pos.Dist(bob.Pos); d >= start {
		t.Errorf("distance grew from %v to %v while chasing", start, d)
	}
}
