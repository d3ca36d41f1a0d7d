package application

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/onebot-cli/internal/domain"
)

// Registry maps account ids to the single live Bot for each id. The zero
// value is not usable; create one with NewRegistry.
type Registry struct {
	mu   sync.RWMutex
	bots map[domain.BotID]*Bot

	lockRegistryMu sync.Mutex
	idLocks        map[domain.BotID]*idLock
}

// idLock is dropped from the registry once no caller holds or awaits it.
type idLock struct {
	mu      sync.Mutex
	holders int
}

func NewRegistry() *Registry {
	return &Registry{
		bots:    map[domain.BotID]*Bot{},
		idLocks: map[domain.BotID]*idLock{},
	}
}

func (r *Registry) Lookup(id domain.BotID) (*Bot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bot, ok := r.bots[id]
	return bot, ok
}

// RegisterOrAdopt returns the registered bot for id and false, or nil and true
// when the caller must construct one and Insert it.
func (r *Registry) RegisterOrAdopt(id domain.BotID) (*Bot, bool) {
	bot, ok := r.Lookup(id)
	if ok {
		return bot, false
	}
	return nil, true
}

func (r *Registry) Insert(id domain.BotID, bot *Bot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bots[id]; ok {
		return fmt.Errorf("insert bot %s: %w", id, domain.ErrBotAlreadyRegistered)
	}
	r.bots[id] = bot
	return nil
}

// Remove deletes the entry for id only while it still maps to bot.
func (r *Registry) Remove(id domain.BotID, bot *Bot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.bots[id]; !ok || current != bot {
		return false
	}
	delete(r.bots, id)
	return true
}

// List returns the registered bots ordered by id.
func (r *Registry) List() []*Bot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bots := make([]*Bot, 0, len(r.bots))
	for _, bot := range r.bots {
		bots = append(bots, bot)
	}
	sort.Slice(bots, func(i, j int) bool {
		return bots[i].ID() < bots[j].ID()
	})
	return bots
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bots)
}

// lock serializes construct-or-adopt for one id and returns the unlock func.
func (r *Registry) lock(id domain.BotID) func() {
	r.lockRegistryMu.Lock()
	l, ok := r.idLocks[id]
	if !ok {
		l = &idLock{}
		r.idLocks[id] = l
	}
	l.holders++
	r.lockRegistryMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		r.lockRegistryMu.Lock()
		l.holders--
		if l.holders == 0 {
			delete(r.idLocks, id)
		}
		r.lockRegistryMu.Unlock()
	}
}
