package fleet

import (
	"sync"

	"fleetwatch/pkg/backend"
)

// FleetStore holds the mirrored bot roster. The roster is replaced wholesale
// on refresh; single-bot mutations confirmed by the engine are mirrored in
// via Upsert/Remove. ActiveBots is a filtered view recomputed on every read,
// preserving insertion order.
type FleetStore struct {
	mu   sync.RWMutex
	bots []backend.Bot
}

// NewFleetStore constructs an empty store.
func NewFleetStore() *FleetStore {
	return &FleetStore{}
}

// SetRoster replaces the full roster.
func (s *FleetStore) SetRoster(bots []backend.Bot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bots = append([]backend.Bot(nil), bots...)
}

// Bots returns a copy of the full roster in insertion order.
func (s *FleetStore) Bots() []backend.Bot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]backend.Bot(nil), s.bots...)
}

// ActiveBots returns the bots that are online and not blocked, in roster
// order.
func (s *FleetStore) ActiveBots() []backend.Bot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := make([]backend.Bot, 0, len(s.bots))
	for _, bot := range s.bots {
		if bot.IsActive() {
			active = append(active, bot)
		}
	}
	return active
}

// Get looks up one bot by id.
func (s *FleetStore) Get(id int64) (backend.Bot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, bot := range s.bots {
		if bot.ID == id {
			return bot, true
		}
	}
	return backend.Bot{}, false
}

// Upsert replaces a bot in place when its id is known, otherwise appends it.
// Used to mirror engine mutation confirmations without a full reload.
func (s *FleetStore) Upsert(bot backend.Bot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bots {
		if s.bots[i].ID == bot.ID {
			s.bots[i] = bot
			return
		}
	}
	s.bots = append(s.bots, bot)
}

// Remove drops a bot from the roster.
func (s *FleetStore) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bots {
		if s.bots[i].ID == id {
			s.bots = append(s.bots[:i], s.bots[i+1:]...)
			return
		}
	}
}

// Len returns the roster size.
func (s *FleetStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bots)
}
