package onebot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/onebot-cli/internal/domain"
)

const (
	actionGetLoginInfo       = "get_login_info"
	actionGetFriendList      = "get_friend_list"
	actionGetGroupList       = "get_group_list"
	actionGetGroupMemberList = "get_group_member_list"
	actionGetOnlineClients   = "get_online_clients"
)

// retcodeUnsupported is returned by implementations for unknown actions.
const retcodeUnsupported = 1404

type request struct {
	Action string `json:"action"`
	Params any    `json:"params,omitempty"`
	Echo   string `json:"echo"`
}

type response struct {
	Status  string          `json:"status"`
	RetCode int             `json:"retcode"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Wording string          `json:"wording"`
	Echo    string          `json:"echo"`
}

// frame holds the fields needed to tell a response from an event.
type frame struct {
	Echo     *string `json:"echo"`
	PostType string  `json:"post_type"`
}

type eventFrame struct {
	Time          int64  `json:"time"`
	SelfID        int64  `json:"self_id"`
	PostType      string `json:"post_type"`
	MessageType   string `json:"message_type"`
	NoticeType    string `json:"notice_type"`
	RequestType   string `json:"request_type"`
	MetaEventType string `json:"meta_event_type"`
	UserID        int64  `json:"user_id"`
	GroupID       int64  `json:"group_id"`
}

func (f eventFrame) toDomain(raw []byte) domain.Event {
	detail := f.MessageType
	switch f.PostType {
	case domain.PostTypeNotice:
		detail = f.NoticeType
	case domain.PostTypeRequest:
		detail = f.RequestType
	case domain.PostTypeMetaEvent:
		detail = f.MetaEventType
	}

	return domain.Event{
		SelfID:   domain.BotID(f.SelfID),
		PostType: f.PostType,
		Detail:   detail,
		UserID:   f.UserID,
		GroupID:  f.GroupID,
		Time:     time.Unix(f.Time, 0),
		Raw:      raw,
	}
}

// ActionError is a non-ok response to an action.
type ActionError struct {
	Action  string
	RetCode int
	Message string
}

func (e *ActionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("onebot action %s failed: retcode %d", e.Action, e.RetCode)
	}
	return fmt.Sprintf("onebot action %s failed: retcode %d: %s", e.Action, e.RetCode, e.Message)
}

func (e *ActionError) Unwrap() error {
	if e.RetCode == retcodeUnsupported {
		return domain.ErrUnsupported
	}
	return nil
}

type loginInfoData struct {
	UserID   int64  `json:"user_id"`
	Nickname string `json:"nickname"`
}

type friendData struct {
	UserID   int64  `json:"user_id"`
	Nickname string `json:"nickname"`
	Remark   string `json:"remark"`
}

type groupData struct {
	GroupID        int64  `json:"group_id"`
	GroupName      string `json:"group_name"`
	MemberCount    int    `json:"member_count"`
	MaxMemberCount int    `json:"max_member_count"`
}

type memberData struct {
	GroupID  int64  `json:"group_id"`
	UserID   int64  `json:"user_id"`
	Nickname string `json:"nickname"`
	Card     string `json:"card"`
	Role     string `json:"role"`
}

type onlineClientsData struct {
	Clients []clientData `json:"clients"`
}

type clientData struct {
	AppID      int64  `json:"app_id"`
	DeviceName string `json:"device_name"`
	DeviceKind string `json:"device_kind"`
}

type groupMemberListParams struct {
	GroupID int64 `json:"group_id"`
}

type onlineClientsParams struct {
	NoCache bool `json:"no_cache"`
}
