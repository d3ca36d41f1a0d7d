package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBotStateString(t *testing.T) {
	tests := []struct {
		name  string
		state BotState
		want  string
	}{
		{name: "constructing", state: BotStateConstructing, want: "constructing"},
		{name: "active", state: BotStateActive, want: "active"},
		{name: "closing", state: BotStateClosing, want: "closing"},
		{name: "closed", state: BotStateClosed, want: "closed"},
		{name: "out of range", state: BotState(42), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestLoginInfoBotID(t *testing.T) {
	info := LoginInfo{UserID: 42, Nickname: "overseer"}

	assert.Equal(t, BotID(42), info.BotID())
	assert.Equal(t, "42", info.BotID().String())
}
