package application

import (
	"time"

	"github.com/bnema/onebot-cli/internal/domain"
)

type GroupSummary struct {
	ID             int64
	Name           string
	MemberCount    int
	MaxMemberCount int
}

// BotStatus is a point-in-time view of a bot for rendering.
type BotStatus struct {
	ID           domain.BotID
	Nickname     string
	State        string
	Online       bool
	WorkingDir   string
	Friends      int
	GroupCount   int
	Groups       []GroupSummary
	OtherClients []string
	Strangers    int
	// LastSeen is only set for bots known from a stored profile.
	LastSeen time.Time
}

func StatusOf(bot *Bot) BotStatus {
	status := BotStatus{
		ID:         bot.ID(),
		Nickname:   bot.Nick(),
		State:      bot.State().String(),
		Online:     bot.IsOnline(),
		WorkingDir: bot.Config().WorkingDir,
		Friends:    bot.Friends().Len(),
		GroupCount: bot.Groups().Len(),
		Strangers:  bot.Strangers().Len(),
	}

	for _, group := range bot.Groups().All() {
		status.Groups = append(status.Groups, GroupSummary{
			ID:             group.ID(),
			Name:           group.Name(),
			MemberCount:    group.MemberCount(),
			MaxMemberCount: group.Record().MaxMemberCount,
		})
	}
	for _, client := range bot.OtherClients().All() {
		status.OtherClients = append(status.OtherClients, client.DeviceName())
	}

	return status
}

// StatusFromProfile describes a bot known only from its persisted profile.
func StatusFromProfile(profile domain.BotProfile) BotStatus {
	return BotStatus{
		ID:         profile.ID,
		Nickname:   profile.Nickname,
		State:      "offline",
		WorkingDir: profile.WorkingDir,
		Friends:    profile.Friends,
		GroupCount: profile.Groups,
		LastSeen:   profile.LastSeen,
	}
}
