package yastate

import (
	"fmt"
	"net/http"
	"reflect"
	"sync"

	"github.com/YaCodeDev/GoYaStateUtils/yaerrors"
)

// Container is a generic shared mutable state store holding at most one
// resource value per Go type. It is the single place an application keeps
// its long-lived cross-cutting resources, so anything holding a reference
// to the container can reach them.
//
// Registry lookups and insertions are guarded by a read-write mutex, so
// every single registry mutation is atomic. The contents of an individual
// resource are owned by that resource's own type.
type Container struct {
	resources map[reflect.Type]any
	mu        sync.RWMutex
}

// NewContainer returns a new empty state container.
//
// Containers are independent: resources stored in one are never visible in
// another, and a resource lives exactly as long as its container. Prefer
// one container per application (and one per test) over any global state.
//
// Example usage:
//
//	world := yastate.NewContainer()
func NewContainer() *Container {
	return &Container{
		resources: make(map[reflect.Type]any),
	}
}

// Resource returns a pointer to the T resource stored in the container,
// creating a zero-value T on first use. The returned pointer aliases the
// stored resource, so mutations through it are visible to every other
// holder of the container.
//
// Example usage:
//
//	type frameCount struct{ n uint64 }
//
//	counter := yastate.Resource[frameCount](world)
//	counter.n++
func Resource[T any](c *Container) *T {
	c.safetyCheck()

	key := reflect.TypeOf((*T)(nil)).Elem()

	c.mu.RLock()
	existing, ok := c.resources[key]
	c.mu.RUnlock()

	if ok {
		value, _ := existing.(*T)

		return value
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have inserted between the two lock scopes.
	if existing, ok := c.resources[key]; ok {
		value, _ := existing.(*T)

		return value
	}

	value := new(T)
	c.resources[key] = value

	return value
}

// Fetch returns a pointer to the T resource if the container holds one.
// Unlike Resource it never inserts: an absent resource yields a not-found
// error instead.
//
// Example usage:
//
//	counter, err := yastate.Fetch[frameCount](world)
//	if err != nil {
//	    // resource was never inserted
//	}
func Fetch[T any](c *Container) (*T, yaerrors.Error) {
	c.safetyCheck()

	key := reflect.TypeOf((*T)(nil)).Elem()

	c.mu.RLock()
	existing, ok := c.resources[key]
	c.mu.RUnlock()

	if !ok {
		return nil, yaerrors.FromError(
			http.StatusNotFound,
			ErrResourceNotFound,
			fmt.Sprintf("fetch resource %s", key),
		)
	}

	value, _ := existing.(*T)

	return value, nil
}

// Insert stores value as the container's T resource, replacing any
// previously stored T.
//
// Example usage:
//
//	yastate.Insert(world, frameCount{n: 60})
func Insert[T any](c *Container, value T) {
	c.safetyCheck()

	key := reflect.TypeOf((*T)(nil)).Elem()

	c.mu.Lock()
	c.resources[key] = &value
	c.mu.Unlock()
}

// Has reports whether the container currently holds a T resource. It never
// inserts.
//
// Example usage:
//
//	if yastate.Has[frameCount](world) {
//	    // counter exists
//	}
func Has[T any](c *Container) bool {
	c.safetyCheck()

	key := reflect.TypeOf((*T)(nil)).Elem()

	c.mu.RLock()
	_, ok := c.resources[key]
	c.mu.RUnlock()

	return ok
}

// Len returns the number of distinct resource types currently stored.
func (c *Container) Len() int {
	c.safetyCheck()

	c.mu.RLock()
	length := len(c.resources)
	c.mu.RUnlock()

	return length
}
