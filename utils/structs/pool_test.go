package structs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyncPoolUint64(t *testing.T) {

	pool := NewSyncPoolUint64(16)

	t.Run("Get", func(t *testing.T) {
		buff := pool.Get()
		require.Len(t, *buff, 16)
		pool.Put(buff)
	})

	t.Run("Concurrent", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(v uint64) {
				defer wg.Done()
				buff := pool.Get()
				for j := range *buff {
					(*buff)[j] = v
				}
				for j := range *buff {
					if (*buff)[j] != v {
						t.Errorf("buffer shared between goroutines")
					}
				}
				pool.Put(buff)
			}(uint64(i))
		}
		wg.Wait()
	})
}

func TestBufferPoolInterface(t *testing.T) {
	var p BufferPool[*[]uint64] = NewSyncPoolUint64(4)
	buff := p.Get()
	require.Len(t, *buff, 4)
	p.Put(buff)
}
