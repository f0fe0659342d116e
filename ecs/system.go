package ecs

// System is one step of a frame. Query and Singleton fields of a System
// struct are initialized by Scheduler.Register; other fields keep their
// values between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is passed to every system of one Scheduler.Once call.
type UpdateFrame struct {
	// DeltaTime is the frame length in seconds.
	DeltaTime float64
	// Frame counts Once calls, starting at 1.
	Frame    uint64
	Commands *Commands
	Storage  *Storage
}
