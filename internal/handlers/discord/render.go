package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/frostveil/frozenbridges/internal/game"
	"github.com/frostveil/frozenbridges/internal/models"
	"github.com/frostveil/frozenbridges/internal/repositories/settings"
	"github.com/frostveil/frozenbridges/internal/timers"
)

// Embed colors
const (
	colorPrimary = 0x00ff00 // Green color
	colorWarning = 0xf1c40f // Amber color
	colorError   = 0xe74c3c // Red color
)

func mention(p models.Player) string {
	if p.ID == "" {
		return p.DisplayName
	}
	return fmt.Sprintf("<@%s>", p.ID)
}

func timerName(kind timers.Kind) string {
	switch kind {
	case timers.KindAsking:
		return "asking"
	case timers.KindAnswering:
		return "answering"
	case timers.KindDiceRoll:
		return "dice roll"
	case timers.KindAcceptReject:
		return "accept/reject"
	default:
		return string(kind)
	}
}

func voteVerb(t models.VoteType) string {
	switch t {
	case models.VoteTypeSkip:
		return "skip the current turn"
	case models.VoteTypeEnd:
		return "end the game"
	case models.VoteTypeKick:
		return "kick a player"
	default:
		return string(t)
	}
}

// renderNotification turns an engine notification into the public channel
// message. An empty string means nothing is posted publicly; the secret
// question and answer travel by DM instead.
func renderNotification(n *game.Notification) string {
	switch n.Type {
	case game.NoteLobbyOpened:
		return fmt.Sprintf("🌉 %s opened a game of Frozen Bridges. `/bridges join` to get in.", mention(n.Player))

	case game.NotePlayerJoined:
		return fmt.Sprintf("%s joined the game.", mention(n.Player))

	case game.NotePlayerLeft:
		if n.Reason != "" {
			return fmt.Sprintf("%s is out (%s).", mention(n.Player), n.Reason)
		}
		return fmt.Sprintf("%s left the game.", mention(n.Player))

	case game.NoteGameStarted:
		return "❄️ The game begins. Points for hard questions, dice decide who gets exposed."

	case game.NoteTurnStarted:
		return fmt.Sprintf("🎯 %s, your turn. `/bridges ask` a secret question.", mention(n.Player))

	case game.NoteTurnSkipped:
		return fmt.Sprintf("Turn skipped (%s).", n.Reason)

	case game.NoteQuestionAsked:
		return fmt.Sprintf("%s has written a question. Now they `/bridges pick` who answers it.", mention(n.Player))

	case game.NoteAnswererChosen:
		return fmt.Sprintf("👀 %s picked %s. The question is in their DMs.", mention(n.Player), mention(n.Target))

	case game.NoteAnswerSubmitted:
		return fmt.Sprintf("%s answered. %s decides: accept or reject.", mention(n.Player), mention(n.Target))

	case game.NoteAnswerAccepted:
		return fmt.Sprintf("%s accepted the answer. Waiting on a difficulty rating.", mention(n.Player))

	case game.NoteAnswerRejected:
		return fmt.Sprintf("%s rejected the answer. %s owes a better one.", mention(n.Player), mention(n.Target))

	case game.NoteAnswerAutoAccepted:
		return fmt.Sprintf("⏱️ No decision came, so the answer stands. %s takes %d point(s) and the dice stay in the bag.",
			mention(n.Player), n.Rating)

	case game.NoteChangeRequested:
		return fmt.Sprintf("%s wants a different question (%d of %d changes used). %s, `/bridges decide`.",
			mention(n.Player), n.ChangesUsed, n.ChangesMax, mention(n.Target))

	case game.NoteChangeDecided:
		if n.Accepted {
			return fmt.Sprintf("%s agreed to write a new question.", mention(n.Player))
		}
		return fmt.Sprintf("%s refused. The question stands.", mention(n.Player))

	case game.NoteDifficultyRated:
		return fmt.Sprintf("💰 Rated %d/5. %s banks %d point(s). Both of you, `/bridges roll`.",
			n.Rating, mention(n.Target), n.Rating)

	case game.NoteRollResult:
		if n.AutoRoll {
			return fmt.Sprintf("⏱️ %s ran out of time, the die rolled itself: %d.", mention(n.Player), n.Roll)
		}
		return fmt.Sprintf("🎲 %s rolled a %d.", mention(n.Player), n.Roll)

	case game.NoteRollTie:
		return "🎲 Tie! Both of you roll again."

	case game.NoteRevealResult:
		if n.Revealed {
			return fmt.Sprintf("📢 %s wins the roll. The secret is out:\n**Q:** %s\n**A:** %s",
				mention(n.Player), n.Question, n.Answer)
		}
		return fmt.Sprintf("🤐 %s wins the roll. The secret stays buried.", mention(n.Target))

	case game.NoteVoteStarted:
		return renderVoteStarted(n)

	case game.NoteVoteUpdated:
		if n.Vote == nil {
			return ""
		}
		return fmt.Sprintf("🗳️ Vote update: %d yes, %d no (%d needed).",
			n.Vote.YesCount, n.Vote.NoCount, n.Vote.Required)

	case game.NoteVoteResolved:
		return renderVoteResolved(n)

	case game.NoteTimerWarning:
		if n.Player.ID == "" {
			return fmt.Sprintf("⏳ %s left on the %s timer.",
				formatDuration(n.Remaining), timerName(n.TimerKind))
		}
		return fmt.Sprintf("⏳ %s: %s left on the %s timer.",
			mention(n.Player), formatDuration(n.Remaining), timerName(n.TimerKind))

	case game.NotePlayerTimedOut:
		return fmt.Sprintf("⏱️ %s timed out and is benched.", mention(n.Player))

	case game.NoteGameEnded:
		return renderGameEnded(n)

	default:
		return ""
	}
}

func renderVoteStarted(n *game.Notification) string {
	if n.Vote == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗳️ %s started a vote to %s", mention(n.Vote.Starter), voteVerb(n.Vote.Type))
	if n.Vote.Target.ID != "" {
		fmt.Fprintf(&b, " (%s)", mention(n.Vote.Target))
	}
	fmt.Fprintf(&b, ". %d yes of %d needed. `/bridges ballot` to vote.", n.Vote.YesCount, n.Vote.Required)
	return b.String()
}

func renderVoteResolved(n *game.Notification) string {
	if n.Vote == nil {
		return ""
	}

	switch n.Vote.Resolution {
	case game.VoteResolutionPassed:
		return fmt.Sprintf("🗳️ Vote to %s passed, %d to %d.",
			voteVerb(n.Vote.Type), n.Vote.YesCount, n.Vote.NoCount)
	case game.VoteResolutionImpossible:
		return fmt.Sprintf("🗳️ Vote to %s failed, the no's have it.", voteVerb(n.Vote.Type))
	case game.VoteResolutionTimedOut:
		return fmt.Sprintf("🗳️ Vote to %s expired without a majority.", voteVerb(n.Vote.Type))
	default:
		return ""
	}
}

func renderGameEnded(n *game.Notification) string {
	var b strings.Builder
	b.WriteString("🏁 Game over")
	if n.Reason != "" {
		fmt.Fprintf(&b, " (%s)", n.Reason)
	}
	b.WriteString(".")
	return b.String()
}

// scoreboardEmbed renders the standings. Used both for /bridges scoreboard
// and for the final message when a game ends.
func scoreboardEmbed(summary *game.Summary, phase models.Phase, currentPlayerID string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🌉 Frozen Bridges Scoreboard",
		Color: colorPrimary,
	}

	if summary == nil || len(summary.Entries) == 0 {
		embed.Description = "Nobody has joined yet."
		return embed
	}

	var b strings.Builder
	for rank, entry := range summary.Entries {
		marker := "  "
		switch {
		case !entry.Active:
			marker = "💤"
		case entry.PlayerID == currentPlayerID:
			marker = "🎯"
		}
		fmt.Fprintf(&b, "%d. %s **%s** — %d point(s)\n", rank+1, marker, entry.DisplayName, entry.Points)
	}
	embed.Description = b.String()

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Phase",
			Value:  string(phase),
			Inline: true,
		},
	}
	if summary.Elapsed > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Running for",
			Value:  formatDuration(summary.Elapsed),
			Inline: true,
		})
	}
	embed.Fields = fields

	return embed
}

// timerSettingsEmbed renders a chat's configured timer durations
func timerSettingsEmbed(cfg settings.TimerSettings) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "⏱️ Timer Settings",
		Color: colorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Asking", Value: formatDuration(cfg.Asking), Inline: true},
			{Name: "Answering", Value: formatDuration(cfg.Answering), Inline: true},
			{Name: "Dice roll", Value: formatDuration(cfg.DiceRoll), Inline: true},
			{Name: "Accept/reject", Value: formatDuration(cfg.AcceptReject), Inline: true},
			{Name: "Vote", Value: formatDuration(cfg.Vote), Inline: true},
		},
	}
}

// formatDuration prints durations the way players read them: "3m", "1m30s",
// "45s"
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	m := int(d / time.Minute)
	s := int(d % time.Minute / time.Second)

	switch {
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
