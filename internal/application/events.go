package application

import (
	"context"

	"github.com/bnema/onebot-cli/internal/domain"
)

// FilterEvents forwards the events from in that belong to bot. The returned
// channel is closed when in is closed, ctx is done, or the bot has closed.
func FilterEvents(ctx context.Context, bot *Bot, in <-chan domain.Event) <-chan domain.Event {
	out := make(chan domain.Event)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-bot.Done():
				return
			case ev, ok := <-in:
				if !ok {
					return
				}
				if !bot.Accepts(ev) {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				case <-bot.Done():
					return
				}
			}
		}
	}()

	return out
}

const (
	noticeFriendAdd     = "friend_add"
	noticeGroupIncrease = "group_increase"
	noticeGroupDecrease = "group_decrease"
)

// ApplyNotice folds a notice event into the bot's contacts. Other events are
// ignored.
func (b *Bot) ApplyNotice(ctx context.Context, ev domain.Event) error {
	if ev.PostType != domain.PostTypeNotice || !b.Accepts(ev) {
		return nil
	}

	switch ev.Detail {
	case noticeFriendAdd:
		_, _, err := b.AddFriend(domain.FriendRecord{UserID: ev.UserID})
		return err
	case noticeGroupIncrease, noticeGroupDecrease:
		// The bot itself joining or leaving changes the group list.
		if ev.UserID == int64(b.id) || !b.groups.Contains(ev.GroupID) {
			return b.UpdateContacts(ctx)
		}
		return b.UpdateGroupMembers(ctx, ev.GroupID)
	default:
		return nil
	}
}
