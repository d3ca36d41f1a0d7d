package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/bnema/onebot-cli/internal/ports"
)

type (
	FriendList      = domain.ContactList[*domain.Friend, domain.FriendRecord]
	GroupList       = domain.ContactList[*domain.Group, domain.GroupRecord]
	OtherClientList = domain.ContactList[*domain.OtherClient, domain.ClientRecord]
	StrangerList    = domain.ContactList[*domain.Stranger, domain.StrangerRecord]
)

const closeReason = "closed by bot"

// Bot is the long-lived local handle for one remote account. Its identity and
// the contact wrappers it hands out survive transport replacement.
type Bot struct {
	id       domain.BotID
	config   BotConfig
	registry *Registry
	logger   *slog.Logger

	networkLogger func() *slog.Logger
	asFriend      func() *domain.Friend
	asStranger    func() *domain.Stranger

	ctx       context.Context
	cancel    context.CancelCauseFunc
	stopAfter func() bool
	done      chan struct{}

	mu        sync.RWMutex
	transport ports.Transport
	loginInfo domain.LoginInfo
	state     domain.BotState

	friends      *FriendList
	groups       *GroupList
	otherClients *OtherClientList
	strangers    *StrangerList
}

func newBot(info domain.LoginInfo, transport ports.Transport, config BotConfig, registry *Registry) *Bot {
	id := info.BotID()
	b := &Bot{
		id:           id,
		config:       config,
		registry:     registry,
		logger:       config.BotLogger(id, config.WorkingDir),
		done:         make(chan struct{}),
		transport:    transport,
		loginInfo:    info,
		state:        domain.BotStateConstructing,
		friends:      domain.NewContactList(domain.NewFriend),
		groups:       domain.NewContactList(domain.NewGroup),
		otherClients: domain.NewContactList(domain.NewOtherClient),
		strangers:    domain.NewContactList(domain.NewStranger),
	}

	b.networkLogger = sync.OnceValue(func() *slog.Logger {
		return config.NetworkLogger(id, config.WorkingDir)
	})
	b.asFriend = sync.OnceValue(func() *domain.Friend {
		return domain.NewFriend(int64(id), domain.FriendRecord{UserID: int64(id), Nickname: b.Nick()})
	})
	b.asStranger = sync.OnceValue(func() *domain.Stranger {
		return domain.NewStranger(int64(id), domain.StrangerRecord{UserID: int64(id), Nickname: b.Nick()})
	})

	b.ctx, b.cancel = context.WithCancelCause(config.Parent)
	b.stopAfter = context.AfterFunc(b.ctx, func() {
		b.Close(context.Cause(b.ctx))
	})

	return b
}

func (b *Bot) ID() domain.BotID {
	return b.id
}

func (b *Bot) Config() BotConfig {
	return b.config
}

func (b *Bot) Logger() *slog.Logger {
	return b.logger
}

// NetworkLogger is built on first use.
func (b *Bot) NetworkLogger() *slog.Logger {
	return b.networkLogger()
}

// Transport returns the connection currently backing the bot.
func (b *Bot) Transport() ports.Transport {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.transport
}

func (b *Bot) LoginInfo() domain.LoginInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loginInfo
}

func (b *Bot) Nick() string {
	return b.LoginInfo().Nickname
}

func (b *Bot) IsOnline() bool {
	return b.Transport().IsOpen()
}

func (b *Bot) State() domain.BotState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Context is cancelled when the bot starts closing.
func (b *Bot) Context() context.Context {
	return b.ctx
}

// Done is closed once teardown has finished.
func (b *Bot) Done() <-chan struct{} {
	return b.done
}

func (b *Bot) Friends() *FriendList {
	return b.friends
}

func (b *Bot) Groups() *GroupList {
	return b.groups
}

func (b *Bot) OtherClients() *OtherClientList {
	return b.otherClients
}

// Strangers is only filled reactively; OneBot has no stranger list call.
func (b *Bot) Strangers() *StrangerList {
	return b.strangers
}

// AsFriend is the bot's own account seen as a friend. It is not part of
// Friends and is built once from the login info.
func (b *Bot) AsFriend() *domain.Friend {
	return b.asFriend()
}

func (b *Bot) AsStranger() *domain.Stranger {
	return b.asStranger()
}

func (b *Bot) FriendGroups() ([]domain.FriendGroup, error) {
	return nil, domain.ErrUnsupported
}

// Login does nothing: the OneBot implementation owns the login session.
func (b *Bot) Login(context.Context) error {
	b.logger.Warn("bot login is managed by the OneBot implementation, skipping")
	return nil
}

// Accepts reports whether ev originated from this bot's account.
func (b *Bot) Accepts(ev domain.Event) bool {
	return ev.SelfID == b.id
}

// Close tears the bot down once: cancel its context, close the transport if
// it is still open, unregister, then empty every contact list. A nil cause
// becomes domain.ErrBotClosed. Later calls are no-ops.
func (b *Bot) Close(cause error) {
	b.mu.Lock()
	if b.state == domain.BotStateClosing || b.state == domain.BotStateClosed {
		b.mu.Unlock()
		return
	}
	owned := b.state == domain.BotStateActive
	b.state = domain.BotStateClosing
	transport := b.transport
	b.mu.Unlock()

	if cause == nil {
		cause = domain.ErrBotClosed
	}
	b.cancel(cause)
	b.stopAfter()
	b.logger.Info("bot cancelled", "cause", cause.Error())

	// Until activation the transport still belongs to the caller of Wrap.
	if owned && transport.IsOpen() && !transport.IsClosing() && !transport.IsClosed() {
		if err := transport.CloseChannel(domain.CloseNormal, closeReason); err != nil && !errors.Is(err, context.Canceled) {
			b.logger.Error("close transport", "error", err)
		}
	}

	b.registry.Remove(b.id, b)

	b.groups.Clear()
	b.friends.Clear()
	b.otherClients.Clear()
	b.strangers.Clear()

	b.mu.Lock()
	b.state = domain.BotStateClosed
	b.mu.Unlock()
	close(b.done)
}

// adopt swaps in a fresh transport. It fails once the bot has started
// closing.
func (b *Bot) adopt(transport ports.Transport, info domain.LoginInfo) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != domain.BotStateActive {
		return false
	}
	b.transport = transport
	b.loginInfo = info
	return true
}

// activate registers the bot and marks it active in one step. A bot closed
// while it was being hydrated is never registered.
func (b *Bot) activate() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != domain.BotStateConstructing {
		if cause := context.Cause(b.ctx); cause != nil {
			return cause
		}
		return domain.ErrBotClosed
	}
	if err := b.registry.Insert(b.id, b); err != nil {
		return err
	}
	b.state = domain.BotStateActive
	return nil
}

// discard abandons a bot that never became visible to other callers. The
// transport belongs to the caller and is left untouched.
func (b *Bot) discard(cause error) {
	b.mu.Lock()
	if b.state == domain.BotStateClosing || b.state == domain.BotStateClosed {
		b.mu.Unlock()
		return
	}
	b.state = domain.BotStateClosed
	b.mu.Unlock()

	b.stopAfter()
	b.cancel(cause)
	close(b.done)
}

// scope derives a context that is also cancelled when the bot closes.
func (b *Bot) scope(ctx context.Context) (context.Context, func()) {
	scoped, cancel := context.WithCancelCause(ctx)
	stop := context.AfterFunc(b.ctx, func() {
		cancel(context.Cause(b.ctx))
	})
	return scoped, func() {
		stop()
		cancel(nil)
	}
}
