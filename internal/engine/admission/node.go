package admission

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/internal/adapters/store"
	"go.trai.ch/cookbook/internal/core/ports"
)

// NodeID is the unique identifier for the admission Graft node.
const NodeID graft.ID = "engine.admission"

func init() {
	graft.Register(graft.Node[*Validator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID},
		Run: func(ctx context.Context) (*Validator, error) {
			entries, err := graft.Dep[ports.EntryStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewValidator(entries), nil
		},
	})
}
