package domain

import "time"

// Event is a push notification received on a bot connection.
type Event struct {
	SelfID   BotID
	PostType string
	Detail   string
	UserID   int64
	GroupID  int64
	Time     time.Time
	Raw      []byte
}

const (
	PostTypeMessage   = "message"
	PostTypeNotice    = "notice"
	PostTypeRequest   = "request"
	PostTypeMetaEvent = "meta_event"
)
