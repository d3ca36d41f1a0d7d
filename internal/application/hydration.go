package application

import (
	"context"
	"fmt"

	"github.com/bnema/onebot-cli/internal/domain"
	"golang.org/x/sync/errgroup"
)

type callPolicy int

const (
	// callRequired failures abort the caller.
	callRequired callPolicy = iota
	// callOptional failures mean the remote lacks the capability and are
	// absorbed.
	callOptional
)

func (b *Bot) applyPolicy(policy callPolicy, op string, err error) error {
	if err == nil {
		return nil
	}
	if policy == callOptional {
		b.logger.Debug("optional call failed", "op", op, "error", err)
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (b *Bot) UpdateLoginInfo(ctx context.Context) error {
	ctx, cancel := b.scope(ctx)
	defer cancel()

	info, err := b.Transport().LoginInfo(ctx)
	if err := b.applyPolicy(callRequired, "fetch login info", err); err != nil {
		return err
	}
	// The bot id is fixed for the handle's lifetime.
	if info.BotID() != b.id {
		return fmt.Errorf("fetch login info: got account %s on bot %s: %w", info.BotID(), b.id, domain.ErrIdentityMismatch)
	}

	b.mu.Lock()
	b.loginInfo = info
	b.mu.Unlock()

	return nil
}

// UpdateContacts fetches the friend and group lists concurrently and
// reconciles both. Either fetch failing leaves both lists untouched.
func (b *Bot) UpdateContacts(ctx context.Context) error {
	ctx, cancel := b.scope(ctx)
	defer cancel()

	transport := b.Transport()

	var friends []domain.FriendRecord
	var groups []domain.GroupRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		friends, err = transport.FriendList(gctx)
		return b.applyPolicy(callRequired, "fetch friend list", err)
	})
	g.Go(func() error {
		var err error
		groups, err = transport.GroupList(gctx)
		return b.applyPolicy(callRequired, "fetch group list", err)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := b.friends.Reconcile(b.ctx, friendEntries(friends)); err != nil {
		return fmt.Errorf("reconcile friends: %w", err)
	}
	if err := b.groups.Reconcile(b.ctx, groupEntries(groups)); err != nil {
		return fmt.Errorf("reconcile groups: %w", err)
	}

	b.logger.Debug("contacts updated", "friends", b.friends.Len(), "groups", b.groups.Len())
	return nil
}

// UpdateOtherClients never fails: not every OneBot implementation reports
// online clients.
func (b *Bot) UpdateOtherClients(ctx context.Context) error {
	ctx, cancel := b.scope(ctx)
	defer cancel()

	clients, err := b.Transport().OnlineClients(ctx)
	if err != nil {
		return b.applyPolicy(callOptional, "fetch online clients", err)
	}

	err = b.otherClients.Reconcile(b.ctx, clientEntries(clients))
	return b.applyPolicy(callOptional, "reconcile online clients", err)
}

func (b *Bot) UpdateGroupMembers(ctx context.Context, groupID int64) error {
	group, ok := b.groups.Get(groupID)
	if !ok {
		return fmt.Errorf("group %d: %w", groupID, domain.ErrContactNotFound)
	}

	ctx, cancel := b.scope(ctx)
	defer cancel()

	members, err := b.Transport().GroupMemberList(ctx, groupID)
	if err := b.applyPolicy(callRequired, "fetch group member list", err); err != nil {
		return err
	}

	if err := group.Members().Reconcile(b.ctx, memberEntries(members)); err != nil {
		return fmt.Errorf("reconcile group %d members: %w", groupID, err)
	}
	return nil
}

// UpdateFriend records a friend learned outside a full snapshot, for example
// from a friend-add notice, and returns the resident wrapper.
func (b *Bot) UpdateFriend(record domain.FriendRecord) (*domain.Friend, error) {
	friend, err := b.friends.Upsert(b.ctx, record.UserID, record)
	if err != nil {
		return nil, fmt.Errorf("update friend %d: %w", record.UserID, err)
	}
	return friend, nil
}

// AddFriend records a friend unless it is already known. A known friend
// keeps its wrapper and its record.
func (b *Bot) AddFriend(record domain.FriendRecord) (*domain.Friend, bool, error) {
	friend, added, err := b.friends.InsertIfAbsent(b.ctx, domain.NewFriend(record.UserID, record))
	if err != nil {
		return nil, false, fmt.Errorf("add friend %d: %w", record.UserID, err)
	}
	return friend, added, nil
}

func (b *Bot) UpdateStranger(record domain.StrangerRecord) (*domain.Stranger, error) {
	stranger, err := b.strangers.Upsert(b.ctx, record.UserID, record)
	if err != nil {
		return nil, fmt.Errorf("update stranger %d: %w", record.UserID, err)
	}
	return stranger, nil
}

func friendEntries(records []domain.FriendRecord) []domain.Entry[domain.FriendRecord] {
	entries := make([]domain.Entry[domain.FriendRecord], 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.Entry[domain.FriendRecord]{ID: record.UserID, Record: record})
	}
	return entries
}

func groupEntries(records []domain.GroupRecord) []domain.Entry[domain.GroupRecord] {
	entries := make([]domain.Entry[domain.GroupRecord], 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.Entry[domain.GroupRecord]{ID: record.GroupID, Record: record})
	}
	return entries
}

func clientEntries(records []domain.ClientRecord) []domain.Entry[domain.ClientRecord] {
	entries := make([]domain.Entry[domain.ClientRecord], 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.Entry[domain.ClientRecord]{ID: record.AppID, Record: record})
	}
	return entries
}

func memberEntries(records []domain.MemberRecord) []domain.Entry[domain.MemberRecord] {
	entries := make([]domain.Entry[domain.MemberRecord], 0, len(records))
	for _, record := range records {
		entries = append(entries, domain.Entry[domain.MemberRecord]{ID: record.UserID, Record: record})
	}
	return entries
}
