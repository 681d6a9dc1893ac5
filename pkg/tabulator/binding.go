package tabulator

import (
	"context"
	"fmt"

	"github.com/nstrayer/tabulator-output-binding/pkg/dataframe"
)

// ValueFunc is the user-supplied data-producing function behind an output.
// It is resolved once per rendering cycle and may return a nil frame to
// signal that there is nothing to render yet. The context carries the
// cycle's deadline and cancellation.
type ValueFunc func(ctx context.Context) (any, error)

// TypeError reports that a value function produced something other than a
// *dataframe.Frame. It is surfaced to the developer, never retried.
type TypeError struct {
	// Got is the concrete Go type of the received value.
	Got string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected a *dataframe.Frame, got %s", e.Got)
}

// Binding adapts a ValueFunc into a table output. A Binding is stateless;
// the same Binding can back any number of rendering cycles.
type Binding struct {
	fn ValueFunc
}

// NewBinding registers fn as the data source for an output slot.
func NewBinding(fn ValueFunc) *Binding {
	return &Binding{fn: fn}
}

// Resolve runs one rendering cycle: it calls the value function and converts
// the result. A nil value yields (nil, nil), meaning nothing to render yet.
// A non-frame value yields a *TypeError naming the received type.
func (b *Binding) Resolve(ctx context.Context) (*Payload, error) {
	res, err := b.fn(ctx)
	if err != nil {
		return nil, fmt.Errorf("value function failed: %w", err)
	}
	if res == nil {
		return nil, nil
	}

	frame, ok := res.(*dataframe.Frame)
	if !ok {
		return nil, &TypeError{Got: fmt.Sprintf("%T", res)}
	}
	if frame == nil {
		// A typed nil frame is still "nothing to render yet".
		return nil, nil
	}
	return BuildPayload(frame), nil
}
