package idgen

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_InstanceIDFormat(t *testing.T) {
	t.Parallel()

	gen := UUID{}
	for n := 0; n < 200; n++ {
		id := gen.InstanceID()
		require.True(t, IsInstanceID(id), "unexpected instance id %q", id)
	}
}

func TestUUID_InstanceIDsDiffer(t *testing.T) {
	t.Parallel()

	gen := UUID{}
	seen := make(map[string]struct{})
	var mu sync.Mutex
	var wg sync.WaitGroup
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := gen.InstanceID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	// 36^8 possible values, collisions in 50 draws are practically impossible
	assert.Len(t, seen, 50)
}

func TestUUID_CorrelationIDIsUUID(t *testing.T) {
	t.Parallel()

	_, err := uuid.Parse(Default.CorrelationID())
	require.NoError(t, err)
}

func TestIsInstanceID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"AB3K-9XQ1", true},
		{"0000-ZZZZ", true},
		{"ab3k-9xq1", false},
		{"AB3K9XQ1", false},
		{"AB3K-9XQ", false},
		{"AB3K-9XQ12", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsInstanceID(tt.in), tt.in)
	}
}

func TestFixed(t *testing.T) {
	t.Parallel()

	gen := Fixed{Instance: "AAAA-BBBB", Correlation: "corr"}
	assert.Equal(t, "AAAA-BBBB", gen.InstanceID())
	assert.Equal(t, "corr", gen.CorrelationID())
}

func TestUUID_InstanceIDUsesWholeAlphabetAtEveryPosition(t *testing.T) {
	t.Parallel()

	gen := UUID{}
	seen := make([]map[byte]struct{}, groupSize*groupCount+groupCount-1)
	for i := range seen {
		seen[i] = make(map[byte]struct{})
	}
	for n := 0; n < 3000; n++ {
		id := gen.InstanceID()
		for i := 0; i < len(id); i++ {
			seen[i][id[i]] = struct{}{}
		}
	}

	for i, symbols := range seen {
		if i == groupSize {
			assert.Len(t, symbols, 1, "separator position")
			continue
		}
		assert.Len(t, symbols, len(alphabet), "position %d", i)
	}
}
