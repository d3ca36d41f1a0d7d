package onebot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/onebot-cli/internal/domain"
	"github.com/bnema/onebot-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var _ ports.Transport = (*Client)(nil)

var ErrConnectionClosed = errors.New("onebot connection closed")

const (
	defaultEventBuffer    = 64
	defaultRequestTimeout = 30 * time.Second
	closeTimeout          = 3 * time.Second
)

const (
	stateOpen int32 = iota
	stateClosing
	stateClosed
)

type Config struct {
	URL         string
	AccessToken string
	Logger      *slog.Logger
	Dialer      *websocket.Dialer
	// EventBuffer bounds queued events; events beyond it are dropped.
	EventBuffer    int
	RequestTimeout time.Duration
}

// Client is a OneBot v11 forward websocket connection.
type Client struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	timeout time.Duration

	writeMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[string]chan response

	state  atomic.Int32
	events chan domain.Event
	done   chan struct{}
	err    error
}

// Dial connects to the OneBot implementation at cfg.URL and starts reading.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("dial onebot: url is required")
	}

	header := http.Header{}
	if cfg.AccessToken != "" {
		header.Set("Authorization", "Bearer "+cfg.AccessToken)
	}

	dialer := cfg.Dialer
	if dialer == nil {
		d := *websocket.DefaultDialer
		dialer = &d
	}

	conn, resp, err := dialer.DialContext(ctx, cfg.URL, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial onebot %s: %s: %w", cfg.URL, resp.Status, err)
		}
		return nil, fmt.Errorf("dial onebot %s: %w", cfg.URL, err)
	}

	return newClient(conn, cfg), nil
}

func newClient(conn *websocket.Conn, cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = defaultEventBuffer
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	c := &Client{
		conn:    conn,
		logger:  logger,
		timeout: timeout,
		pending: make(map[string]chan response),
		events:  make(chan domain.Event, buffer),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *Client) LoginInfo(ctx context.Context) (domain.LoginInfo, error) {
	var data loginInfoData
	if err := c.call(ctx, actionGetLoginInfo, nil, &data); err != nil {
		return domain.LoginInfo{}, err
	}
	return domain.LoginInfo{UserID: data.UserID, Nickname: data.Nickname}, nil
}

func (c *Client) FriendList(ctx context.Context) ([]domain.FriendRecord, error) {
	var data []friendData
	if err := c.call(ctx, actionGetFriendList, nil, &data); err != nil {
		return nil, err
	}

	records := make([]domain.FriendRecord, 0, len(data))
	for _, f := range data {
		records = append(records, domain.FriendRecord{UserID: f.UserID, Nickname: f.Nickname, Remark: f.Remark})
	}
	return records, nil
}

func (c *Client) GroupList(ctx context.Context) ([]domain.GroupRecord, error) {
	var data []groupData
	if err := c.call(ctx, actionGetGroupList, nil, &data); err != nil {
		return nil, err
	}

	records := make([]domain.GroupRecord, 0, len(data))
	for _, g := range data {
		records = append(records, domain.GroupRecord{
			GroupID:        g.GroupID,
			GroupName:      g.GroupName,
			MemberCount:    g.MemberCount,
			MaxMemberCount: g.MaxMemberCount,
		})
	}
	return records, nil
}

func (c *Client) GroupMemberList(ctx context.Context, groupID int64) ([]domain.MemberRecord, error) {
	var data []memberData
	if err := c.call(ctx, actionGetGroupMemberList, groupMemberListParams{GroupID: groupID}, &data); err != nil {
		return nil, err
	}

	records := make([]domain.MemberRecord, 0, len(data))
	for _, m := range data {
		records = append(records, domain.MemberRecord{
			GroupID:  m.GroupID,
			UserID:   m.UserID,
			Nickname: m.Nickname,
			Card:     m.Card,
			Role:     domain.MemberRole(m.Role),
		})
	}
	return records, nil
}

func (c *Client) OnlineClients(ctx context.Context) ([]domain.ClientRecord, error) {
	var data onlineClientsData
	if err := c.call(ctx, actionGetOnlineClients, onlineClientsParams{NoCache: true}, &data); err != nil {
		return nil, err
	}

	records := make([]domain.ClientRecord, 0, len(data.Clients))
	for _, cl := range data.Clients {
		records = append(records, domain.ClientRecord{AppID: cl.AppID, DeviceName: cl.DeviceName, DeviceKind: cl.DeviceKind})
	}
	return records, nil
}

func (c *Client) IsOpen() bool {
	return c.state.Load() == stateOpen
}

func (c *Client) IsClosing() bool {
	return c.state.Load() == stateClosing
}

func (c *Client) IsClosed() bool {
	return c.state.Load() == stateClosed
}

// Events is closed once the connection is gone.
func (c *Client) Events() <-chan domain.Event {
	return c.events
}

// Done is closed once the read loop has stopped.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err reports why the connection ended. Valid after Done is closed.
func (c *Client) Err() error {
	<-c.done
	return c.err
}

// CloseChannel sends a close frame, waits briefly for the peer to answer,
// then drops the socket. Only the first call has an effect.
func (c *Client) CloseChannel(code int, reason string) error {
	if !c.state.CompareAndSwap(stateOpen, stateClosing) {
		return nil
	}

	msg := websocket.FormatCloseMessage(code, reason)
	err := c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeTimeout))
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		err = fmt.Errorf("send close frame: %w", err)
	} else {
		err = nil
	}

	timer := time.NewTimer(closeTimeout)
	defer timer.Stop()
	select {
	case <-c.done:
	case <-timer.C:
	}

	_ = c.conn.Close()
	<-c.done
	return err
}

func (c *Client) call(ctx context.Context, action string, params any, out any) error {
	if !c.IsOpen() {
		return fmt.Errorf("%s: %w", action, ErrConnectionClosed)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	echo := uuid.NewString()
	replies := make(chan response, 1)
	c.pendingMu.Lock()
	c.pending[echo] = replies
	c.pendingMu.Unlock()
	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, echo)
		c.pendingMu.Unlock()
	}()

	payload, err := json.Marshal(request{Action: action, Params: params, Echo: echo})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", action, err)
	}
	if err := c.write(payload); err != nil {
		return fmt.Errorf("send %s request: %w", action, err)
	}

	var resp response
	select {
	case resp = <-replies:
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", action, context.Cause(ctx))
	case <-c.done:
		return fmt.Errorf("%s: %w", action, ErrConnectionClosed)
	}

	if resp.Status == "failed" || resp.RetCode != 0 {
		message := resp.Wording
		if message == "" {
			message = resp.Message
		}
		return &ActionError{Action: action, RetCode: resp.RetCode, Message: message}
	}

	if out == nil || len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}

func (c *Client) write(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *Client) readLoop() {
	var err error
	for {
		var data []byte
		_, data, err = c.conn.ReadMessage()
		if err != nil {
			break
		}
		c.dispatch(data)
	}
	c.shutdown(err)
}

func (c *Client) dispatch(data []byte) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		c.logger.Warn("discard malformed frame", "error", err)
		return
	}

	if f.Echo != nil && f.PostType == "" {
		var resp response
		if err := json.Unmarshal(data, &resp); err != nil {
			c.logger.Warn("discard malformed response", "error", err)
			return
		}
		c.pendingMu.Lock()
		replies, ok := c.pending[resp.Echo]
		c.pendingMu.Unlock()
		if !ok {
			c.logger.Debug("discard response without caller", "echo", resp.Echo)
			return
		}
		select {
		case replies <- resp:
		default:
		}
		return
	}

	if f.PostType == "" {
		c.logger.Debug("discard unknown frame")
		return
	}

	var ev eventFrame
	if err := json.Unmarshal(data, &ev); err != nil {
		c.logger.Warn("discard malformed event", "error", err)
		return
	}
	select {
	case c.events <- ev.toDomain(data):
	default:
		c.logger.Warn("event buffer full, dropping event", "post_type", ev.PostType)
	}
}

func (c *Client) shutdown(err error) {
	closing := c.state.Swap(stateClosed) == stateClosing
	_ = c.conn.Close()

	switch {
	case closing, websocket.IsCloseError(err, websocket.CloseNormalClosure):
		c.logger.Info("onebot connection closed")
		c.err = nil
	default:
		c.logger.Warn("onebot connection lost", "error", err)
		c.err = err
	}

	close(c.events)
	close(c.done)
}
