package form

type Lifecycle string

const (
	LifecycleIdle     Lifecycle = "idle"
	LifecycleInFlight Lifecycle = "in-flight"
)
