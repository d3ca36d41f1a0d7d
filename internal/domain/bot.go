package domain

import (
	"strconv"
	"time"
)

// BotID is the account identity reported by the remote login-info call.
type BotID int64

func (id BotID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type LoginInfo struct {
	UserID   int64
	Nickname string
}

func (l LoginInfo) BotID() BotID {
	return BotID(l.UserID)
}

type BotState int

const (
	BotStateConstructing BotState = iota
	BotStateActive
	BotStateClosing
	BotStateClosed
)

func (s BotState) String() string {
	switch s {
	case BotStateConstructing:
		return "constructing"
	case BotStateActive:
		return "active"
	case BotStateClosing:
		return "closing"
	case BotStateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// CloseNormal is the websocket normal-closure status code.
const CloseNormal = 1000

// BotProfile is the persisted summary of a bot seen by this process.
type BotProfile struct {
	ID         BotID
	Nickname   string
	WorkingDir string
	Friends    int
	Groups     int
	LastSeen   time.Time
}
