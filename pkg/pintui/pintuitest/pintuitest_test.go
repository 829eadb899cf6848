package pintuitest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLines(t *testing.T) {
	var b Buffer
	assert.Nil(t, b.Lines())

	_, _ = b.Write([]byte("one\ntwo\n"))
	assert.Equal(t, []string{"one", "two"}, b.Lines())

	b.Reset()
	assert.Empty(t, b.String())
}

func TestBufferConcurrentWrites(t *testing.T) {
	var b Buffer
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = b.Write([]byte("x\n"))
		}()
	}
	wg.Wait()
	assert.Len(t, b.Lines(), 20)
}

func TestNewPrinter(t *testing.T) {
	p, buf := NewPrinter()

	p.Success("Done")

	assert.Equal(t, "✓ Done\n", buf.String())
	assert.False(t, p.ColorEnabled())
	assert.False(t, p.Animated())
}
