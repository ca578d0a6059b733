package engine

import "context"

// Ticker abstracts a data source that can produce status cycles.
type Ticker interface {
	Tick(ctx context.Context) Result
}
