// Package bridge passes an opaque handle through a foreign C call and
// back into Go unchanged. The C side is a pure pass-through with no
// logic of its own; the handle stays an opaque integer for the whole
// round trip and is only resolved back to a Go value on return.
package bridge

/*
#include <stdint.h>

void forwardHandle(uintptr_t handle);
*/
import "C"
import "runtime/cgo"

// Callback is the function a handle carries through the round trip. It
// receives the same handle that was forwarded.
type Callback func(h cgo.Handle)

// Forward passes h to the C side, which immediately forwards it back
// into Go. The Callback stored in h is invoked exactly once, with h
// itself as its argument.
func Forward(h cgo.Handle) {
	C.forwardHandle(C.uintptr_t(h))
}

//export callcostCallback
func callcostCallback(handle C.uintptr_t) {
	h := cgo.Handle(handle)
	h.Value().(Callback)(h)
}
