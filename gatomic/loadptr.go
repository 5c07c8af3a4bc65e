// Package gatomic provides generic wrappers around sync/atomic's
// unsafe.Pointer operations, so callers can keep a typed **T instead of
// juggling unsafe.Pointer at every call site.
package gatomic

import (
	"sync/atomic"
	"unsafe"
)

// LoadPointer atomically loads *addr.
func LoadPointer[T any](addr **T) *T {
	return (*T)(atomic.LoadPointer((*unsafe.Pointer)(unsafe.Pointer(addr))))
}

// StorePointer atomically sets *addr to val.
func StorePointer[T any](addr **T, val *T) {
	atomic.StorePointer((*unsafe.Pointer)(unsafe.Pointer(addr)), unsafe.Pointer(val))
}

// CompareAndSwapPointer atomically sets *addr to new if it currently holds old.
func CompareAndSwapPointer[T any](addr **T, old, new *T) (swapped bool) {
	return atomic.CompareAndSwapPointer(
		(*unsafe.Pointer)(unsafe.Pointer(addr)),
		unsafe.Pointer(old),
		unsafe.Pointer(new),
	)
}

// LoadInt32 atomically loads *x.
func LoadInt32(x *int32) int32 {
	return atomic.LoadInt32(x)
}

// StoreInt32 atomically sets *x to v.
func StoreInt32(x *int32, v int32) {
	atomic.StoreInt32(x, v)
}
