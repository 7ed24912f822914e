package engine

// stepLevel runs the current level for tick t. When the level reports
// completion the cursor moves on, wrapping after the last level, and the
// new level is started within the same tick, before any entity acts.
func (e *Engine) stepLevel(t int) {
	if len(e.levels) == 0 {
		return
	}
	cur := e.levels[e.cursor]
	cur.Tick(t)
	if !cur.Done(t) {
		return
	}

	e.cursor = (e.cursor + 1) % len(e.levels)
	e.levels[e.cursor].Start(t)
	e.log.Debug("level started", "level", e.cursor, "tick", t)
}
