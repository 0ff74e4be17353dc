package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLockSerializesSameKey(t *testing.T) {
	req := require.New(t)
	kl := New()

	const n = 64
	counter := 0

	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.WithLock("auction-1", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	req.Equal(n, counter)
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	req := require.New(t)
	kl := New()

	kl.Lock("a")
	done := make(chan struct{})
	go func() {
		kl.WithLock("b", func() error { return nil })
		close(done)
	}()
	<-done
	kl.Unlock("a")

	req.Empty(kl.locks)
}

func TestEntriesAreReleased(t *testing.T) {
	req := require.New(t)
	kl := New()

	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.WithLock("k", func() error { return nil })
		}()
	}
	wg.Wait()

	req.Empty(kl.locks)
}
