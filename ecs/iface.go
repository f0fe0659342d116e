package ecs

import "unsafe"

// iface mirrors the runtime layout of a non-empty interface value. The data
// word of a reflect.Type is the *rtype, which is unique per type.
type iface struct {
	tab  unsafe.Pointer
	data unsafe.Pointer
}
