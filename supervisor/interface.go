package supervisor

import "context"

// ISupervisor will run the worker and automatically relaunch it when it exits,
// whatever its exit status. Hooks can be used to execute code at different
// points in the execution lifecycle. Relaunches can be delayed.
type ISupervisor interface {
	// Run will run the supervisor and execute any of the worker hooks. It only
	// returns once the context is cancelled (after the current worker, if any,
	// has exited on its own) or a hook or halting error occurs.
	Run(ctx context.Context) error
}
