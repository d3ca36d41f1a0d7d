package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/onebot-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const defaultMaxGroups = 5

type RenderOptions struct {
	Now time.Time
	// MaxGroups caps the group preview per bot. Zero means the default.
	MaxGroups int
}

func renderView(count int, t tally, sections []string, s styles) string {
	lines := []string{
		s.title.Render("OneBot Bots"),
		s.header.Render(headerLine(count, t)),
	}

	if count == 0 {
		lines = append(lines, s.empty.Render("No bots known yet. Run `ob bot connect` first."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, sections...)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(count int, t tally) string {
	line := fmt.Sprintf("bots: %d", count)
	if count == 0 {
		return line
	}

	line += fmt.Sprintf("  online: %d  offline: %d", t.online, t.offline)
	if t.closed > 0 {
		line += fmt.Sprintf("  closed: %d", t.closed)
	}
	return line
}

func renderBot(status application.BotStatus, opts RenderOptions, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.bot.Render(botTitle(status.Nickname, status.ID.String())),
		" ",
		stateBadge(status, s),
	)

	parts := []string{
		title,
		s.detail.Render(fmt.Sprintf("friends: %d  groups: %d  strangers: %d", status.Friends, status.GroupCount, status.Strangers)),
	}
	if status.WorkingDir != "" {
		parts = append(parts, s.detail.Render("working dir: "+status.WorkingDir))
	}
	if len(status.OtherClients) > 0 {
		parts = append(parts, s.detail.Render("other clients: "+strings.Join(status.OtherClients, ", ")))
	}
	if !status.LastSeen.IsZero() {
		style := lipgloss.NewStyle().Foreground(lastSeenColor(status.LastSeen, opts.Now))
		parts = append(parts, style.Render("last seen "+formatLastSeen(status.LastSeen, opts.Now)))
	}

	parts = append(parts, groupLines(status.Groups, opts, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func stateBadge(status application.BotStatus, s styles) string {
	if status.Online {
		return s.online.Render("[online]")
	}
	return s.offline.Render("[" + status.State + "]")
}

func groupLines(groups []application.GroupSummary, opts RenderOptions, s styles) []string {
	limit := opts.MaxGroups
	if limit <= 0 {
		limit = defaultMaxGroups
	}

	lines := make([]string, 0, limit+1)
	for i, group := range groups {
		if i == limit {
			lines = append(lines, s.groupMeta.Render(fmt.Sprintf("... and %d more", len(groups)-limit)))
			break
		}
		lines = append(lines, groupLine(group, s))
	}
	return lines
}

func groupLine(group application.GroupSummary, s styles) string {
	label := s.groupKey.Render(fmt.Sprintf("%s (%d)", group.Name, group.ID))
	if group.MaxMemberCount <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.groupMeta.Render(fmt.Sprintf("%d members", group.MemberCount)))
	}

	percent := 100 * float64(group.MemberCount) / float64(group.MaxMemberCount)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		renderProgressBar(percent, 16, s),
		" ",
		s.groupMeta.Render(fmt.Sprintf("%d/%d members", group.MemberCount, group.MaxMemberCount)),
	)
}

func renderProgressBar(filledPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(filledPercent) / 100.0))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func botTitle(nickname, id string) string {
	trimmed := strings.TrimSpace(nickname)
	if trimmed == "" {
		return id
	}
	return fmt.Sprintf("%s (%s)", trimmed, id)
}

func formatLastSeen(lastSeen, now time.Time) string {
	if now.IsZero() {
		return lastSeen.Format(time.RFC3339)
	}

	elapsed := now.Sub(lastSeen)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour") + " ago"
	default:
		return plural(int(elapsed.Hours()/24), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// lastSeenColor fades from white to grey over a week, matching the log
// retention window.
func lastSeenColor(lastSeen, now time.Time) lipgloss.Color {
	if now.IsZero() {
		return lipgloss.Color("255")
	}

	window := 7 * 24 * time.Hour
	fresh := window.Seconds() - now.Sub(lastSeen).Seconds()
	return interpolateColor(fresh, 0, window.Seconds())
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 is faded grey, 255 bright white on the 256-colour greyscale ramp.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
