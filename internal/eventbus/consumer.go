package eventbus

import "context"

// Consumer handles events of the type it is subscribed to. Returning an
// error makes the bus retry the event up to its configured attempts.
type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}
