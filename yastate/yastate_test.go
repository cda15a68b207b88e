package yastate_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/YaCodeDev/GoYaStateUtils/yastate"
)

type frameCount struct {
	n uint64
}

type windowTitle struct {
	value string
}

func TestResource_LazyInsert(t *testing.T) {
	world := yastate.NewContainer()

	if yastate.Has[frameCount](world) {
		t.Fatalf("fresh container should not hold a resource")
	}

	counter := yastate.Resource[frameCount](world)
	if counter == nil {
		t.Fatalf("Resource returned nil")
	}

	if counter.n != 0 {
		t.Fatalf("lazily created resource is not zero value, got %d", counter.n)
	}

	if !yastate.Has[frameCount](world) {
		t.Fatalf("Has should report the lazily created resource")
	}
}

func TestResource_SamePointer(t *testing.T) {
	world := yastate.NewContainer()

	first := yastate.Resource[frameCount](world)
	first.n = 42

	second := yastate.Resource[frameCount](world)
	if first != second {
		t.Fatalf("Resource returned a different pointer on second call")
	}

	if second.n != 42 {
		t.Fatalf("mutation was lost, got %d", second.n)
	}
}

func TestResource_DistinctTypes(t *testing.T) {
	world := yastate.NewContainer()

	yastate.Resource[frameCount](world).n = 7
	yastate.Resource[windowTitle](world).value = "yacode"

	if world.Len() != 2 {
		t.Fatalf("expected 2 stored resources, got %d", world.Len())
	}

	if yastate.Resource[frameCount](world).n != 7 {
		t.Fatalf("frameCount resource was clobbered")
	}
}

func TestFetch_Missing(t *testing.T) {
	world := yastate.NewContainer()

	value, err := yastate.Fetch[frameCount](world)
	if err == nil {
		t.Fatalf("Fetch on empty container should fail")
	}

	if value != nil {
		t.Fatalf("Fetch on empty container returned a value: %+v", value)
	}

	if !errors.Is(err.Unwrap(), yastate.ErrResourceNotFound) {
		t.Fatalf("error didn't unwrap to ErrResourceNotFound, got: %v", err)
	}

	if yastate.Has[frameCount](world) {
		t.Fatalf("Fetch must not insert")
	}
}

func TestFetch_Present(t *testing.T) {
	world := yastate.NewContainer()

	yastate.Insert(world, windowTitle{value: "yacode"})

	title, err := yastate.Fetch[windowTitle](world)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if title.value != "yacode" {
		t.Fatalf("Fetch returned wrong value: %q", title.value)
	}
}

func TestInsert_Replaces(t *testing.T) {
	world := yastate.NewContainer()

	yastate.Insert(world, frameCount{n: 1})
	yastate.Insert(world, frameCount{n: 2})

	if world.Len() != 1 {
		t.Fatalf("Insert of the same type should not grow the registry, got %d", world.Len())
	}

	if yastate.Resource[frameCount](world).n != 2 {
		t.Fatalf("Insert did not replace the resource")
	}
}

func TestZeroValueContainer(t *testing.T) {
	var world yastate.Container

	counter := yastate.Resource[frameCount](&world)
	if counter == nil {
		t.Fatalf("zero-value container should be usable")
	}
}

func TestContainersAreIndependent(t *testing.T) {
	one := yastate.NewContainer()
	two := yastate.NewContainer()

	yastate.Resource[frameCount](one).n = 5

	if yastate.Has[frameCount](two) {
		t.Fatalf("resource leaked across containers")
	}
}

func TestResource_Concurrent(t *testing.T) {
	world := yastate.NewContainer()

	var wg sync.WaitGroup

	pointers := make([]*frameCount, 16)

	for i := range pointers {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			pointers[i] = yastate.Resource[frameCount](world)
		}()
	}

	wg.Wait()

	for i, p := range pointers {
		if p != pointers[0] {
			t.Fatalf("goroutine %d observed a different resource pointer", i)
		}
	}
}
