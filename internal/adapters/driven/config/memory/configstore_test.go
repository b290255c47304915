package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("llm.model", "gemini-1.5-flash"))
	require.NoError(t, store.Set("llm.model", "gemini-1.5-pro"))

	val, ok := store.Get("llm.model")
	assert.True(t, ok)
	assert.Equal(t, "gemini-1.5-pro", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("llm.provider", "gemini")
	_ = store.Set("scan.count", 3)

	assert.Equal(t, "gemini", store.GetString("llm.provider"))
	assert.Empty(t, store.GetString("scan.count"), "non-string value")
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_Delete(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("llm.api_key", "secret")

	require.NoError(t, store.Delete("llm.api_key"))
	_, ok := store.Get("llm.api_key")
	assert.False(t, ok)

	assert.NoError(t, store.Delete("never-set"))
}

func TestConfigStore_SaveLoadNoop(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("k", "v")

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())
	assert.Equal(t, "v", store.GetString("k"))
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", n)
			_ = store.Set(key, key)
			_ = store.GetString(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "key7", store.GetString("key7"))
}
