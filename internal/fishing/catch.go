package fishing

// land credits the hooked fish and removes it from the pool. A replacement
// spawns after the respawn delay on whatever surface exists by then.
func (g *Game) land(f *Fish) {
	sp := f.Species
	res := Result{
		Species: sp,
		Size:    f.Size,
		Points:  f.Size * sp.Speed / 100,
		StageID: g.stage.ID,
	}

	g.score += res.Points
	g.caught[sp.ID] = struct{}{}

	g.persist.AddScore(res.Points)
	g.persist.AddCaughtFish(sp.ID)
	if cl, ok := g.persist.(CatchLogger); ok {
		cl.LogCatch(res)
	}

	g.removeFish(f)
	g.target = nil
	g.lastResult = &res
	g.setPhase(PhaseCaught)
	g.audio.PlayCue(CueCatch)
	g.signals.OpenResult(res)
	g.log.Info("catch", "species", sp.ID, "size", res.Size, "points", res.Points, "score", g.score)

	g.timers.After(g.tune.Timing.RespawnDelay, func() {
		g.fish = append(g.fish, SpawnFish(g.stage, g.cat, g.bounds, g.rng))
	})
}

// snap breaks the line. The fish stays hooked until the recovery timer
// returns it to the pool as a fresh fish.
func (g *Game) snap(f *Fish) {
	g.setPhase(PhaseBroken)
	g.setHint(HintSnapped)
	g.log.Debug("line snapped", "species", f.Species.ID, "tension", g.tension)

	g.timers.After(g.tune.Timing.BrokenDelay, func() {
		g.reset()
		g.setPhase(PhaseIdle)
		f.Respawn(g.stage, g.cat, g.bounds, g.rng)
	})
}

// reset ends the cast cycle.
func (g *Game) reset() {
	g.bobber = Bobber{}
	g.tension = 0
	g.target = nil
	g.flash = 0
	g.biteTimer = 0
	g.setHint(HintTapToCast)
	for _, f := range g.fish {
		if f.State == FishChasing {
			f.State = FishIdle
		}
	}
}

func (g *Game) removeFish(f *Fish) {
	for i, other := range g.fish {
		if other == f {
			g.fish = append(g.fish[:i], g.fish[i+1:]...)
			return
		}
	}
}
