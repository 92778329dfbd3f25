package engine

// System is one stage of the per-tick simulation pipeline
type System interface {
	// Update advances the system by the world's current tick
	Update()

	// Priority orders systems within a tick; lower values run first
	Priority() int
}
