package ports

import (
	"context"

	"github.com/bnema/onebot-cli/internal/domain"
)

// Transport is a live request/response connection to one remote account.
type Transport interface {
	LoginInfo(ctx context.Context) (domain.LoginInfo, error)
	FriendList(ctx context.Context) ([]domain.FriendRecord, error)
	GroupList(ctx context.Context) ([]domain.GroupRecord, error)
	GroupMemberList(ctx context.Context, groupID int64) ([]domain.MemberRecord, error)
	// OnlineClients is an optional capability; implementations that lack it
	// return an error wrapping domain.ErrUnsupported.
	OnlineClients(ctx context.Context) ([]domain.ClientRecord, error)

	IsOpen() bool
	IsClosing() bool
	IsClosed() bool
	CloseChannel(code int, reason string) error

	Events() <-chan domain.Event
}
