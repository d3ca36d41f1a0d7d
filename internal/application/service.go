package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/bnema/onebot-cli/internal/ports"
)

// BotService turns transports into registered bots.
type BotService struct {
	registry *Registry
	profiles ports.BotRepository
	clock    ports.Clock
	defaults BotDefaults
}

func NewBotService(registry *Registry, profiles ports.BotRepository, clock ports.Clock, defaults BotDefaults) *BotService {
	if registry == nil {
		registry = NewRegistry()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &BotService{
		registry: registry,
		profiles: profiles,
		clock:    clock,
		defaults: defaults,
	}
}

func (s *BotService) Registry() *Registry {
	return s.registry
}

// Wrap returns the bot for the account behind transport. A registered bot
// for the same account adopts the transport and keeps its contacts;
// otherwise a new bot is hydrated and registered. cfg may be nil.
//
// Either a usable bot is returned or nothing is registered.
func (s *BotService) Wrap(ctx context.Context, transport ports.Transport, cfg *BotConfig) (*Bot, error) {
	info, err := transport.LoginInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch login info: %w", err)
	}
	id := info.BotID()

	unlock := s.registry.lock(id)
	defer unlock()

	if existing, isNew := s.registry.RegisterOrAdopt(id); !isNew {
		if existing.adopt(transport, info) {
			existing.Logger().Info("transport replaced", "bot", id.String())
			s.saveProfile(ctx, existing)
			return existing, nil
		}

		select {
		case <-existing.Done():
		case <-ctx.Done():
			return nil, context.Cause(ctx)
		}
	}

	bot := newBot(info, transport, s.defaults.resolve(id, cfg), s.registry)
	if err := bot.UpdateContacts(ctx); err != nil {
		bot.discard(err)
		return nil, err
	}

	if err := bot.activate(); err != nil {
		bot.discard(err)
		return nil, fmt.Errorf("register bot %s: %w", id, err)
	}

	_ = bot.UpdateOtherClients(ctx)
	s.saveProfile(ctx, bot)

	bot.Logger().Info("bot online",
		"bot", id.String(),
		"nick", info.Nickname,
		"friends", bot.Friends().Len(),
		"groups", bot.Groups().Len(),
	)
	return bot, nil
}

// Get returns the registered bot for id.
func (s *BotService) Get(id domain.BotID) (*Bot, error) {
	bot, ok := s.registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("get bot %s: %w", id, domain.ErrBotNotFound)
	}
	return bot, nil
}

// CloseAll closes every registered bot with cause.
func (s *BotService) CloseAll(cause error) {
	for _, bot := range s.registry.List() {
		bot.Close(cause)
	}
}

func (s *BotService) Profiles(ctx context.Context) ([]domain.BotProfile, error) {
	if s.profiles == nil {
		return nil, nil
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bot profiles: %w", err)
	}
	return profiles, nil
}

func (s *BotService) saveProfile(ctx context.Context, bot *Bot) {
	if s.profiles == nil {
		return
	}

	profile := domain.BotProfile{
		ID:         bot.ID(),
		Nickname:   bot.Nick(),
		WorkingDir: bot.Config().WorkingDir,
		Friends:    bot.Friends().Len(),
		Groups:     bot.Groups().Len(),
		LastSeen:   s.clock.Now(),
	}
	if err := s.profiles.Save(ctx, profile); err != nil && !errors.Is(err, context.Canceled) {
		bot.Logger().Warn("save bot profile", "error", err)
	}
}
