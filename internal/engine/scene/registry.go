// Package scene tracks the pickable objects placed in the editor scene.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/stickman/internal/logger"
)

// ErrAlreadyRegistered is returned when adding an object whose identity is
// already tracked.
var ErrAlreadyRegistered = errors.New("object already registered")

// Shape is pickable geometry in world space.
type Shape interface {
	// IntersectRay returns the distance along a unit-direction ray to the
	// nearest surface hit.
	IntersectRay(origin, dir mgl64.Vec3) (t float64, ok bool)
}

// Mesh is a pickable sub-mesh of an object. IDs are stable for the
// lifetime of the object; shapes follow the object as it moves.
type Mesh struct {
	ID    uuid.UUID
	Shape Shape
}

// Object is anything that can be placed in the scene and picked.
type Object interface {
	ID() uuid.UUID
	Meshes() []Mesh
}

// Ticker is implemented by objects with per-frame idle behavior.
type Ticker interface {
	Tick()
}

// Entry is a registered object together with the mesh IDs it owned when it
// was added.
type Entry struct {
	ID      uuid.UUID
	MeshIDs []uuid.UUID
	Object  Object
}

type opKind int

const (
	opAdd opKind = iota
	opRemove
)

type pendingOp struct {
	kind   opKind
	object Object
	id     uuid.UUID
}

// Registry is an insertion-ordered set of scene objects.
// It is not safe for concurrent use; structural changes made while Each is
// running are deferred until the outermost iteration finishes.
type Registry struct {
	entries []Entry
	byID    map[uuid.UUID]int
	owners  map[uuid.UUID]uuid.UUID // mesh ID -> object ID

	iterating int
	pending   []pendingOp
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[uuid.UUID]int),
		owners: make(map[uuid.UUID]uuid.UUID),
	}
}

// Add registers obj. Adding an identity that is already present returns
// ErrAlreadyRegistered and leaves the registry unchanged.
func (r *Registry) Add(obj Object) error {
	if r.iterating > 0 {
		if r.tracked(obj.ID()) {
			return fmt.Errorf("add %s: %w", obj.ID(), ErrAlreadyRegistered)
		}
		r.pending = append(r.pending, pendingOp{kind: opAdd, object: obj, id: obj.ID()})
		return nil
	}
	return r.add(obj)
}

// Remove unregisters the object with the given identity. Unknown IDs are
// ignored.
func (r *Registry) Remove(id uuid.UUID) {
	if r.iterating > 0 {
		r.pending = append(r.pending, pendingOp{kind: opRemove, id: id})
		return
	}
	r.remove(id)
}

// Get returns the entry for an object identity.
func (r *Registry) Get(id uuid.UUID) (Entry, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[idx], true
}

// Owner resolves a mesh ID to the entry that owns it.
func (r *Registry) Owner(meshID uuid.UUID) (Entry, bool) {
	id, ok := r.owners[meshID]
	if !ok {
		return Entry{}, false
	}
	return r.Get(id)
}

// All returns a copy of the entries in insertion order.
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
func (r *Registry) Each(fn func(Entry) bool) {
	r.iterating++
	defer func() {
		r.iterating--
		if r.iterating == 0 {
			r.flush()
		}
	}()

	for _, e := range r.entries {
		if !fn(e) {
			return
		}
	}
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Pending returns the number of structural changes waiting for the current
// iteration to finish.
func (r *Registry) Pending() int {
	return len(r.pending)
}

// tracked reports whether id is registered or queued for registration,
// taking queued removals into account.
func (r *Registry) tracked(id uuid.UUID) bool {
	_, present := r.byID[id]
	for _, op := range r.pending {
		if op.id != id {
			continue
		}
		present = op.kind == opAdd
	}
	return present
}

func (r *Registry) add(obj Object) error {
	id := obj.ID()
	if _, ok := r.byID[id]; ok {
		return fmt.Errorf("add %s: %w", id, ErrAlreadyRegistered)
	}

	meshes := obj.Meshes()
	entry := Entry{
		ID:      id,
		MeshIDs: make([]uuid.UUID, 0, len(meshes)),
		Object:  obj,
	}
	for _, m := range meshes {
		entry.MeshIDs = append(entry.MeshIDs, m.ID)
		r.owners[m.ID] = id
	}

	r.byID[id] = len(r.entries)
	r.entries = append(r.entries, entry)

	logger.Debug("scene object added",
		zap.Stringer("id", id),
		zap.Int("meshes", len(meshes)),
	)
	return nil
}

func (r *Registry) remove(id uuid.UUID) {
	idx, ok := r.byID[id]
	if !ok {
		return
	}

	for _, meshID := range r.entries[idx].MeshIDs {
		delete(r.owners, meshID)
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	delete(r.byID, id)
	for i := idx; i < len(r.entries); i++ {
		r.byID[r.entries[i].ID] = i
	}

	logger.Debug("scene object removed", zap.Stringer("id", id))
}

func (r *Registry) flush() {
	ops := r.pending
	r.pending = nil
	for _, op := range ops {
		switch op.kind {
		case opAdd:
			if err := r.add(op.object); err != nil {
				logger.Warn("dropping queued scene add", zap.Error(err))
			}
		case opRemove:
			r.remove(op.id)
		}
	}
}
