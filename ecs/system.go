package ecs

// System is a unit of per-frame behaviour. Systems are plain structs whose
// exported Query and Singleton fields are wired by the Scheduler on
// registration; any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
