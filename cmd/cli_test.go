package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestTokenSetRequiresValueFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "token", "set", "--name", "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"value\" not set")
}

func TestBotListEmpty(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bot", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bots: 0")
}

func TestBotConnectJSONThenList(t *testing.T) {
	server := newFakeOneBot(t, "")
	t.Setenv("OB_URL", server.url)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "bot", "connect", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Nickname\": \"helper\"")
	assert.Contains(t, stdout, "\"Friends\": 2")
	assert.Contains(t, stdout, "\"GroupCount\": 1")

	stdout, _, err = executeCLI(t, home, "bot", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bots: 1")
	assert.Contains(t, stdout, "helper (42)")
	assert.Contains(t, stdout, "[offline]")
}

func TestBotConnectShowsSpinnerAndStatus(t *testing.T) {
	server := newFakeOneBot(t, "")
	server.loginDelay = 200 * time.Millisecond
	t.Setenv("OB_URL", server.url)

	stdout, stderr, err := executeCLI(t, t.TempDir(), "bot", "connect")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Connecting to OneBot")
	assert.Contains(t, stderr, "Loading login info and contacts")
	assert.Contains(t, stdout, "helper (42)")
	assert.Contains(t, stdout, "gophers (100)")
}

func TestBotConnectUsesStoredToken(t *testing.T) {
	server := newFakeOneBot(t, "s3cret")
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "token", "set", "--name", "home", "--value", "s3cret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "bot", "connect", "--json", "--url", server.url, "--token-ref", "home")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"ID\": 42")
}

func TestTokenSetRejectsMalformedValue(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "token", "set", "--name", "home", "--value", "two words")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token must be one word")
}

func TestBotConnectUnknownTokenRef(t *testing.T) {
	server := newFakeOneBot(t, "s3cret")

	_, _, err := executeCLI(t, t.TempDir(), "bot", "connect", "--json", "--url", server.url, "--token-ref", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBotConnectRejectedWithoutToken(t *testing.T) {
	server := newFakeOneBot(t, "s3cret")

	_, _, err := executeCLI(t, t.TempDir(), "bot", "connect", "--json", "--url", server.url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestTokenRemoveThenConnectFails(t *testing.T) {
	server := newFakeOneBot(t, "s3cret")
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "token", "set", "--name", "home", "--value", "s3cret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "token", "remove", "--name", "home")
	require.NoError(t, err)
	assert.Contains(t, stdout, "removed token \"home\"")

	_, _, err = executeCLI(t, home, "bot", "connect", "--json", "--url", server.url, "--token-ref", "home")
	require.Error(t, err)
}

func TestBotWatchPrintsOwnEvents(t *testing.T) {
	server := newFakeOneBot(t, "")
	server.events = []map[string]any{
		{"time": 1700000000, "self_id": 42, "post_type": "notice", "notice_type": "friend_add", "user_id": 7},
		{"time": 1700000001, "self_id": 99, "post_type": "message", "message_type": "private", "user_id": 8},
		{"time": 1700000002, "self_id": 42, "post_type": "message", "message_type": "group", "group_id": 100, "user_id": 1},
	}
	server.closeAfterEvents = true

	stdout, _, err := executeCLI(t, t.TempDir(), "bot", "watch", "--url", server.url)
	require.NoError(t, err)
	assert.Contains(t, stdout, "watching helper (42)")
	assert.Contains(t, stdout, "notice/friend_add user=7")
	assert.Contains(t, stdout, "message/group group=100 user=1")
	assert.NotContains(t, stdout, "user=8")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// fakeOneBot answers the hydration actions for account 42 and, once the
// online clients were asked for, pushes events.
type fakeOneBot struct {
	url              string
	token            string
	events           []map[string]any
	closeAfterEvents bool
	loginDelay       time.Duration
}

func newFakeOneBot(t *testing.T, token string) *fakeOneBot {
	t.Helper()

	fake := &fakeOneBot{token: token}
	srv := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(srv.Close)
	fake.url = "ws" + strings.TrimPrefix(srv.URL, "http")
	return fake
}

func (f *fakeOneBot) serve(w http.ResponseWriter, r *http.Request) {
	if f.token != "" && r.Header.Get("Authorization") != "Bearer "+f.token {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	upgrader := websocket.Upgrader{}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var req struct {
			Action string `json:"action"`
			Echo   string `json:"echo"`
		}
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		reply := map[string]any{"echo": req.Echo, "status": "ok", "retcode": 0}
		switch req.Action {
		case "get_login_info":
			time.Sleep(f.loginDelay)
			reply["data"] = map[string]any{"user_id": 42, "nickname": "helper"}
		case "get_friend_list":
			reply["data"] = []map[string]any{
				{"user_id": 1, "nickname": "alice"},
				{"user_id": 2, "nickname": "bob"},
			}
		case "get_group_list":
			reply["data"] = []map[string]any{
				{"group_id": 100, "group_name": "gophers", "member_count": 10, "max_member_count": 200},
			}
		default:
			reply["status"] = "failed"
			reply["retcode"] = 1404
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}

		if req.Action != "get_online_clients" {
			continue
		}
		for _, ev := range f.events {
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
		if f.closeAfterEvents {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
			_ = conn.WriteMessage(websocket.CloseMessage, msg)
			return
		}
	}
}
