package domain

import "sync"

type FriendRecord struct {
	UserID   int64
	Nickname string
	Remark   string
}

type GroupRecord struct {
	GroupID        int64
	GroupName      string
	MemberCount    int
	MaxMemberCount int
}

type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

type MemberRecord struct {
	GroupID  int64
	UserID   int64
	Nickname string
	Card     string
	Role     MemberRole
}

// ClientRecord describes another device logged into the same account.
type ClientRecord struct {
	AppID      int64
	DeviceName string
	DeviceKind string
}

type StrangerRecord struct {
	UserID   int64
	Nickname string
}

// Entry pairs a snapshot key with the remote record observed for it.
type Entry[R any] struct {
	ID     int64
	Record R
}

// entity is the stable local identity shared by every contact kind. Only
// the ContactList that owns it may swap the record.
type entity[R any] struct {
	id     int64
	mu     sync.RWMutex
	record R
}

func (e *entity[R]) ID() int64 {
	return e.id
}

func (e *entity[R]) Record() R {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.record
}

func (e *entity[R]) replace(record R) {
	e.mu.Lock()
	e.record = record
	e.mu.Unlock()
}

type Friend struct {
	entity[FriendRecord]
}

func NewFriend(id int64, record FriendRecord) *Friend {
	return &Friend{entity: entity[FriendRecord]{id: id, record: record}}
}

func (f *Friend) Nick() string {
	return f.Record().Nickname
}

func (f *Friend) Remark() string {
	return f.Record().Remark
}

type Group struct {
	entity[GroupRecord]
	members *ContactList[*Member, MemberRecord]
}

func NewGroup(id int64, record GroupRecord) *Group {
	return &Group{
		entity:  entity[GroupRecord]{id: id, record: record},
		members: NewContactList(NewMember),
	}
}

func (g *Group) Name() string {
	return g.Record().GroupName
}

func (g *Group) MemberCount() int {
	return g.Record().MemberCount
}

// Members is the group's member list. It is empty until the members are
// fetched explicitly.
func (g *Group) Members() *ContactList[*Member, MemberRecord] {
	return g.members
}

func (g *Group) detach() {
	g.members.Clear()
}

type Member struct {
	entity[MemberRecord]
}

func NewMember(id int64, record MemberRecord) *Member {
	return &Member{entity: entity[MemberRecord]{id: id, record: record}}
}

func (m *Member) Nick() string {
	return m.Record().Nickname
}

// Card returns the group-specific display name, falling back to the nickname.
func (m *Member) Card() string {
	record := m.Record()
	if record.Card != "" {
		return record.Card
	}
	return record.Nickname
}

func (m *Member) Role() MemberRole {
	return m.Record().Role
}

type OtherClient struct {
	entity[ClientRecord]
}

func NewOtherClient(id int64, record ClientRecord) *OtherClient {
	return &OtherClient{entity: entity[ClientRecord]{id: id, record: record}}
}

func (c *OtherClient) DeviceName() string {
	return c.Record().DeviceName
}

func (c *OtherClient) DeviceKind() string {
	return c.Record().DeviceKind
}

type Stranger struct {
	entity[StrangerRecord]
}

func NewStranger(id int64, record StrangerRecord) *Stranger {
	return &Stranger{entity: entity[StrangerRecord]{id: id, record: record}}
}

func (s *Stranger) Nick() string {
	return s.Record().Nickname
}

// FriendGroup is a named bucket of friends. OneBot does not expose friend
// grouping, so no list of these is ever populated.
type FriendGroup struct {
	ID    int32
	Name  string
	Count int
}
