package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/bnema/onebot-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T, out <-chan domain.Event) []domain.Event {
	t.Helper()

	var events []domain.Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-out:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("event stream not closed")
			return nil
		}
	}
}

func TestFilterEventsKeepsOwnEvents(t *testing.T) {
	t.Parallel()

	bot := newActiveBot(t, NewRegistry(), mocks.NewMockTransport(t), 42)

	in := make(chan domain.Event, 3)
	in <- domain.Event{SelfID: 42, PostType: domain.PostTypeMessage, UserID: 1}
	in <- domain.Event{SelfID: 7, PostType: domain.PostTypeMessage, UserID: 2}
	in <- domain.Event{SelfID: 42, PostType: domain.PostTypeNotice, UserID: 3}
	close(in)

	events := collectEvents(t, FilterEvents(context.Background(), bot, in))

	if assert.Len(t, events, 2) {
		assert.Equal(t, int64(1), events[0].UserID)
		assert.Equal(t, int64(3), events[1].UserID)
	}
}

func TestFilterEventsStopsWhenBotCloses(t *testing.T) {
	t.Parallel()

	transport := mocks.NewMockTransport(t)
	expectClosedChannel(transport)
	bot := newActiveBot(t, NewRegistry(), transport, 42)

	in := make(chan domain.Event)
	out := FilterEvents(context.Background(), bot, in)

	bot.Close(nil)

	assert.Empty(t, collectEvents(t, out))
}

func TestFilterEventsStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	bot := newActiveBot(t, NewRegistry(), mocks.NewMockTransport(t), 42)

	ctx, cancel := context.WithCancel(context.Background())
	out := FilterEvents(ctx, bot, make(chan domain.Event))
	cancel()

	assert.Empty(t, collectEvents(t, out))
}

func TestApplyNoticeFriendAdd(t *testing.T) {
	t.Parallel()

	bot := newActiveBot(t, NewRegistry(), mocks.NewMockTransport(t), 42)

	err := bot.ApplyNotice(context.Background(), domain.Event{SelfID: 42, PostType: domain.PostTypeNotice, Detail: "friend_add", UserID: 9})
	require.NoError(t, err)
	assert.True(t, bot.Friends().Contains(9))

	err = bot.ApplyNotice(context.Background(), domain.Event{SelfID: 7, PostType: domain.PostTypeNotice, Detail: "friend_add", UserID: 10})
	require.NoError(t, err)
	assert.False(t, bot.Friends().Contains(10))
}

func TestApplyNoticeFriendAddKeepsKnownFriend(t *testing.T) {
	t.Parallel()

	bot := newActiveBot(t, NewRegistry(), mocks.NewMockTransport(t), 42)
	known, err := bot.UpdateFriend(domain.FriendRecord{UserID: 9, Nickname: "alice", Remark: "work"})
	require.NoError(t, err)

	err = bot.ApplyNotice(context.Background(), domain.Event{SelfID: 42, PostType: domain.PostTypeNotice, Detail: "friend_add", UserID: 9})
	require.NoError(t, err)

	got, ok := bot.Friends().Get(9)
	require.True(t, ok)
	assert.Same(t, known, got)
	assert.Equal(t, "alice", got.Nick())
	assert.Equal(t, "work", got.Remark())
}

func TestApplyNoticeFriendAddAfterClose(t *testing.T) {
	t.Parallel()

	transport := mocks.NewMockTransport(t)
	expectClosedChannel(transport)
	bot := newActiveBot(t, NewRegistry(), transport, 42)
	bot.Close(nil)

	err := bot.ApplyNotice(context.Background(), domain.Event{SelfID: 42, PostType: domain.PostTypeNotice, Detail: "friend_add", UserID: 9})
	require.ErrorIs(t, err, domain.ErrBotClosed)
	assert.Equal(t, 0, bot.Friends().Len())
}

func TestApplyNoticeGroupMemberChange(t *testing.T) {
	t.Parallel()

	transport := mocks.NewMockTransport(t)
	transport.EXPECT().FriendList(mock.Anything).Return(nil, nil).Once()
	transport.EXPECT().GroupList(mock.Anything).Return(groupRecords(100), nil).Once()
	transport.EXPECT().GroupMemberList(mock.Anything, int64(100)).Return([]domain.MemberRecord{
		{GroupID: 100, UserID: 5, Nickname: "new"},
	}, nil).Once()

	bot := newActiveBot(t, NewRegistry(), transport, 42)
	require.NoError(t, bot.UpdateContacts(context.Background()))

	err := bot.ApplyNotice(context.Background(), domain.Event{
		SelfID: 42, PostType: domain.PostTypeNotice, Detail: "group_increase", GroupID: 100, UserID: 5,
	})
	require.NoError(t, err)

	group, ok := bot.Groups().Get(100)
	require.True(t, ok)
	assert.True(t, group.Members().Contains(5))
}

func TestApplyNoticeSelfJoinRefreshesGroups(t *testing.T) {
	t.Parallel()

	transport := mocks.NewMockTransport(t)
	transport.EXPECT().FriendList(mock.Anything).Return(nil, nil).Once()
	transport.EXPECT().GroupList(mock.Anything).Return(groupRecords(200), nil).Once()

	bot := newActiveBot(t, NewRegistry(), transport, 42)

	err := bot.ApplyNotice(context.Background(), domain.Event{
		SelfID: 42, PostType: domain.PostTypeNotice, Detail: "group_increase", GroupID: 200, UserID: 42,
	})
	require.NoError(t, err)
	assert.True(t, bot.Groups().Contains(200))
}

func TestApplyNoticeIgnoresMessages(t *testing.T) {
	t.Parallel()

	bot := newActiveBot(t, NewRegistry(), mocks.NewMockTransport(t), 42)

	err := bot.ApplyNotice(context.Background(), domain.Event{SelfID: 42, PostType: domain.PostTypeMessage, Detail: "private", UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, bot.Friends().Len())
}
