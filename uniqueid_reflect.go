// +build nounsafe

package rlox

import "reflect"

// The default implementation of nodeID uses unsafe.Pointer. If you can't
// use packages importing unsafe, you can build with -tags=nounsafe to
// select this implementation instead at a performance penalty.

// nodeID returns the address of the node an interface value holds.
func nodeID(node interface{}) uintptr {
	return reflect.ValueOf(node).Pointer()
}
