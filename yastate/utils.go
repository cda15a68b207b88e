package yastate

import "reflect"

// safetyCheck ensures the internal registry is initialized before any
// operations are performed, so a zero-value Container is usable.
func (c *Container) safetyCheck() {
	if c.resources == nil {
		c.resources = make(map[reflect.Type]any)
	}
}
