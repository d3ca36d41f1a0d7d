package application

import (
	"testing"

	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/bnema/onebot-cli/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
)

// newHydratableTransport returns a transport that reports login info for id
// and serves the given lists.
func newHydratableTransport(t *testing.T, id int64, friends []domain.FriendRecord, groups []domain.GroupRecord) *mocks.MockTransport {
	t.Helper()

	transport := mocks.NewMockTransport(t)
	transport.EXPECT().LoginInfo(mock.Anything).Return(domain.LoginInfo{UserID: id, Nickname: "bot"}, nil).Maybe()
	transport.EXPECT().FriendList(mock.Anything).Return(friends, nil).Maybe()
	transport.EXPECT().GroupList(mock.Anything).Return(groups, nil).Maybe()
	transport.EXPECT().OnlineClients(mock.Anything).Return(nil, domain.ErrUnsupported).Maybe()
	return transport
}

func expectOpenChannel(transport *mocks.MockTransport) {
	transport.EXPECT().IsOpen().Return(true).Maybe()
	transport.EXPECT().IsClosing().Return(false).Maybe()
	transport.EXPECT().IsClosed().Return(false).Maybe()
}

func expectClosedChannel(transport *mocks.MockTransport) {
	transport.EXPECT().IsOpen().Return(false).Maybe()
	transport.EXPECT().IsClosing().Return(false).Maybe()
	transport.EXPECT().IsClosed().Return(true).Maybe()
}

// newActiveBot builds a registered, active bot without hydrating it.
func newActiveBot(t *testing.T, registry *Registry, transport *mocks.MockTransport, id int64) *Bot {
	t.Helper()

	info := domain.LoginInfo{UserID: id, Nickname: "bot"}
	bot := newBot(info, transport, BotDefaults{}.resolve(info.BotID(), nil), registry)
	if err := bot.activate(); err != nil {
		t.Fatalf("activate bot: %v", err)
	}
	return bot
}

func friendRecords(ids ...int64) []domain.FriendRecord {
	records := make([]domain.FriendRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, domain.FriendRecord{UserID: id, Nickname: "friend"})
	}
	return records
}

func groupRecords(ids ...int64) []domain.GroupRecord {
	records := make([]domain.GroupRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, domain.GroupRecord{GroupID: id, GroupName: "group"})
	}
	return records
}
