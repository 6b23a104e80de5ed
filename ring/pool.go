package ring

import (
	"github.com/ntlfhe/ntl/utils/structs"
)

// BufferPool represents a pool of coefficient vectors that can be used (concurrently) as scratch space.
type BufferPool struct {
	bufferPool structs.BufferPool[*[]uint64]
}

// NewPool returns a new pool of vectors of length N.
func NewPool(N int) *BufferPool {
	return &BufferPool{bufferPool: structs.NewSyncPoolUint64(N)}
}

// GetBuffUintArray returns a new []uint64 slice obtained from a pool.
// After use, the slice should be recycled using the [BufferPool.RecycleBuffUintArray] method.
func (p BufferPool) GetBuffUintArray() *[]uint64 {
	return p.bufferPool.Get()
}

// RecycleBuffUintArray takes a reference to a []uint64 slice and puts it back in the pool.
func (p BufferPool) RecycleBuffUintArray(arr *[]uint64) {
	p.bufferPool.Put(arr)
}
