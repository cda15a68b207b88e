package yainit

import (
	"reflect"

	"github.com/YaCodeDev/GoYaStateUtils/yalogger"
	"github.com/YaCodeDev/GoYaStateUtils/yaonceset"
	"github.com/YaCodeDev/GoYaStateUtils/yastate"
)

// ScheduleLabel identifies a named ordered group of repeated work units.
// It is treated as an opaque identifier here.
type ScheduleLabel string

// SystemLabel identifies a named unit of work that can be registered into a
// schedule. It is treated as an opaque identifier here.
type SystemLabel string

// markerKey identifies one thing that might need initializing: either a Go
// type or a (schedule, system) pair. The unused fields stay zero, so the
// two variants can never collide.
type markerKey struct {
	typ      reflect.Type
	schedule ScheduleLabel
	system   SystemLabel
}

// markers is the initialization set resource stored inside the state
// container. It is created lazily on first use and lives exactly as long as
// the container. Membership only ever grows; there is no way to
// un-initialize a key.
type markers struct {
	set yaonceset.OnceSet[markerKey]
}

// Init records that M has been initialized in the given container and
// reports whether this call was the first to do so. The first call per
// (container, M) returns true; every later call returns false and performs
// no mutation.
//
// The intended pattern is guarding one-time setup that has to run after
// the application has already started:
//
//	type assetHooks struct{}
//
//	if yainit.Init[assetHooks](world) {
//	    // runs exactly once per container
//	    registerAssetHooks(world)
//	}
//
// The guarded block runs only on the call that returned true; callers must
// not assume it runs again later.
func Init[M any](c *yastate.Container) bool {
	return mark(c, markerKey{typ: reflect.TypeOf((*M)(nil)).Elem()})
}

// InitWithLog is Init plus a debug log line on the first-time path.
func InitWithLog[M any](c *yastate.Container, log yalogger.Logger) bool {
	first := Init[M](c)
	if first {
		log.Debugf("first initialization for type %s", reflect.TypeOf((*M)(nil)).Elem())
	}

	return first
}

// InitForSystem records that system has been initialized within schedule
// and reports whether this call was the first to do so for that exact
// (schedule, system) pair. The same system in two different schedules is
// tracked independently, as are two different systems in the same schedule.
//
// Example usage:
//
//	if yainit.InitForSystem(world, "update", "spawn_enemies") {
//	    registerSystem(world, "update", spawnEnemies)
//	}
func InitForSystem(c *yastate.Container, schedule ScheduleLabel, system SystemLabel) bool {
	return mark(c, markerKey{schedule: schedule, system: system})
}

// InitForSystemWithLog is InitForSystem plus a debug log line on the
// first-time path.
func InitForSystemWithLog(
	c *yastate.Container,
	schedule ScheduleLabel,
	system SystemLabel,
	log yalogger.Logger,
) bool {
	first := InitForSystem(c, schedule, system)
	if first {
		log.WithFields(map[string]any{
			"schedule": string(schedule),
			"system":   string(system),
		}).Debug("first initialization for system")
	}

	return first
}

// Initialized reports whether Init has already been called for M in the
// given container. It never mutates the initialization set.
func Initialized[M any](c *yastate.Container) bool {
	return peek(c, markerKey{typ: reflect.TypeOf((*M)(nil)).Elem()})
}

// InitializedForSystem reports whether InitForSystem has already been
// called for the (schedule, system) pair in the given container. It never
// mutates the initialization set.
func InitializedForSystem(c *yastate.Container, schedule ScheduleLabel, system SystemLabel) bool {
	return peek(c, markerKey{schedule: schedule, system: system})
}

func mark(c *yastate.Container, key markerKey) bool {
	return yastate.Resource[markers](c).set.Add(key)
}

func peek(c *yastate.Container, key markerKey) bool {
	res, err := yastate.Fetch[markers](c)
	if err != nil {
		return false
	}

	return res.set.Has(key)
}
