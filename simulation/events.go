package simulation

// The source's signal/slot wiring becomes a small set of callback fields:
// Controller registers one function for each of the three events the
// Simulation can raise. A driver loop or test may also register them
// directly without a Controller in between.

// SetStateChangedFunc registers the callback invoked after any mutator
// changes visible Simulation state.
func (s *Simulation) SetStateChangedFunc(f func()) {
	s.onStateChanged = f
}

// SetMovementFinishedFunc registers the callback invoked when a
// translation or turn completes, reporting whether it ended in collision.
func (s *Simulation) SetMovementFinishedFunc(f func(crashed bool)) {
	s.onMovementFinished = f
}

// SetEventLoggedFunc registers the callback invoked for human-readable
// event/log messages (moves, collisions, reset acknowledgements, goal,
// maze loads).
func (s *Simulation) SetEventLoggedFunc(f func(message string)) {
	s.onEventLogged = f
}

func (s *Simulation) emitStateChanged() {
	if s.onStateChanged != nil {
		s.onStateChanged()
	}
}

func (s *Simulation) emitMovementFinished(crashed bool) {
	if s.onMovementFinished != nil {
		s.onMovementFinished(crashed)
	}
}

func (s *Simulation) logEvent(message string) {
	if s.onEventLogged != nil {
		s.onEventLogged(message)
	}
}
