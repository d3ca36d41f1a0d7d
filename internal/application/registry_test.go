package application

import (
	"sync"
	"testing"

	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryInsertRejectsOccupiedID(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &Bot{id: 1}
	second := &Bot{id: 1}

	require.NoError(t, registry.Insert(1, first))
	err := registry.Insert(1, second)
	require.ErrorIs(t, err, domain.ErrBotAlreadyRegistered)

	got, ok := registry.Lookup(1)
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestRegistryRemoveOnlyMatchingHandle(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	current := &Bot{id: 7}
	stale := &Bot{id: 7}
	require.NoError(t, registry.Insert(7, current))

	assert.False(t, registry.Remove(7, stale))
	assert.Equal(t, 1, registry.Len())

	assert.True(t, registry.Remove(7, current))
	assert.Equal(t, 0, registry.Len())
	assert.False(t, registry.Remove(7, current))
}

func TestRegistryRegisterOrAdopt(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	bot, isNew := registry.RegisterOrAdopt(3)
	assert.Nil(t, bot)
	assert.True(t, isNew)

	registered := &Bot{id: 3}
	require.NoError(t, registry.Insert(3, registered))

	bot, isNew = registry.RegisterOrAdopt(3)
	assert.False(t, isNew)
	assert.Same(t, registered, bot)
}

func TestRegistryListOrderedByID(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, id := range []domain.BotID{30, 10, 20} {
		require.NoError(t, registry.Insert(id, &Bot{id: id}))
	}

	ids := make([]domain.BotID, 0, 3)
	for _, bot := range registry.List() {
		ids = append(ids, bot.ID())
	}
	assert.Equal(t, []domain.BotID{10, 20, 30}, ids)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(id domain.BotID) {
			defer wg.Done()
			bot := &Bot{id: id}
			assert.NoError(t, registry.Insert(id, bot))
			_, _ = registry.Lookup(id)
			assert.True(t, registry.Remove(id, bot))
		}(domain.BotID(i))
	}
	wg.Wait()

	assert.Equal(t, 0, registry.Len())
}

func TestRegistryLockSerializesSameID(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	unlock := registry.lock(5)

	acquired := make(chan struct{})
	go func() {
		release := registry.lock(5)
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first was held")
	default:
	}

	otherUnlock := registry.lock(6)
	otherUnlock()

	unlock()
	<-acquired
}

func TestRegistryLockDropsIdleEntries(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	unlock := registry.lock(5)

	waiting := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(waiting)
		release := registry.lock(5)
		release()
		close(done)
	}()
	<-waiting

	unlock()
	<-done

	for _, id := range []domain.BotID{1, 2, 3} {
		registry.lock(id)()
	}

	registry.lockRegistryMu.Lock()
	defer registry.lockRegistryMu.Unlock()
	assert.Empty(t, registry.idLocks)
}
