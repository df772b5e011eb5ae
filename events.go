package roster

// Guarded dispatch for the optional Events callbacks. The announcements
// run after query state is already consistent for the triggering mutation.

func (w *World) announceEntityCreated(e *Entity) {
	if w.events.EntityCreated != nil {
		w.events.EntityCreated(e)
	}
}

func (w *World) announceEntityDestroyed(e *Entity) {
	if w.events.EntityDestroyed != nil {
		w.events.EntityDestroyed(e)
	}
}

func (w *World) announceComponentAdded(e *Entity, c Component) {
	if w.events.ComponentAdded != nil {
		w.events.ComponentAdded(e, c)
	}
}

func (w *World) announceComponentRemoved(e *Entity, c Component) {
	if w.events.ComponentRemoved != nil {
		w.events.ComponentRemoved(e, c)
	}
}
