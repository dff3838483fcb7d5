package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/frostveil/frozenbridges/internal/game"
	"github.com/frostveil/frozenbridges/internal/models"
)

// messageSession is the slice of discordgo.Session the notifier needs
type messageSession interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// Notifier delivers engine notifications to Discord. Public events go to
// the game's channel; the question and the answer travel by DM so the
// channel only learns them on a successful reveal. Timer warnings replace
// one another: only the latest warning message stays in the channel.
type Notifier struct {
	session messageSession

	mu sync.Mutex
	// latest warning message per chat, deleted when the next warning
	// or any state change arrives
	lastWarnings map[string]string
}

// NewNotifier creates a notifier bound to an open session
func NewNotifier(session messageSession) (*Notifier, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Notifier{
		session:      session,
		lastWarnings: make(map[string]string),
	}, nil
}

// Send implements game.Notifier
func (n *Notifier) Send(_ context.Context, note *game.Notification) error {
	if note.Type == game.NoteTimerWarning {
		return n.sendWarning(note)
	}

	// Any other notification means the game moved on, so a leftover
	// warning no longer applies
	n.forgetWarning(note.ChatID)

	switch note.Type {
	case game.NoteAnswererChosen:
		// The answerer gets the question privately before the channel
		// learns a pick happened
		dm := fmt.Sprintf("❓ %s asks you:\n> %s\nAnswer in the channel with `/bridges answer`.",
			note.Player.DisplayName, note.Question)
		if err := n.direct(note.Target, dm); err != nil {
			return err
		}

	case game.NoteAnswerSubmitted:
		// The asker gets the answer privately; Target is the asker here
		dm := fmt.Sprintf("💬 %s answered:\n> %s\n`/bridges accept` or `/bridges reject` it.",
			note.Player.DisplayName, note.Answer)
		if err := n.direct(note.Target, dm); err != nil {
			return err
		}
	}

	if msg := renderNotification(note); msg != "" {
		if _, err := n.session.ChannelMessageSend(note.ChatID, msg); err != nil {
			return fmt.Errorf("failed to send channel message: %w", err)
		}
	}

	if note.Type == game.NoteGameEnded && note.Summary != nil {
		embed := scoreboardEmbed(note.Summary, models.PhaseEnded, "")
		embed.Title = "🏁 Final Scoreboard"
		if _, err := n.session.ChannelMessageSendEmbed(note.ChatID, embed); err != nil {
			return fmt.Errorf("failed to send final scoreboard: %w", err)
		}
	}

	return nil
}

// sendWarning posts a countdown warning, removing the previous one so only
// the latest is visible
func (n *Notifier) sendWarning(note *game.Notification) error {
	msg := renderNotification(note)
	if msg == "" {
		return nil
	}

	n.mu.Lock()
	prev := n.lastWarnings[note.ChatID]
	n.mu.Unlock()

	if prev != "" {
		if err := n.session.ChannelMessageDelete(note.ChatID, prev); err != nil {
			log.Warn().Err(err).Str("chat_id", note.ChatID).Msg("failed to delete stale warning")
		}
	}

	sent, err := n.session.ChannelMessageSend(note.ChatID, msg)
	if err != nil {
		return fmt.Errorf("failed to send warning: %w", err)
	}

	n.mu.Lock()
	n.lastWarnings[note.ChatID] = sent.ID
	n.mu.Unlock()

	return nil
}

func (n *Notifier) forgetWarning(chatID string) {
	n.mu.Lock()
	delete(n.lastWarnings, chatID)
	n.mu.Unlock()
}

// direct DMs a player. A closed DM is logged and swallowed; the game
// must not stall because one player blocks the bot.
func (n *Notifier) direct(player models.Player, message string) error {
	channel, err := n.session.UserChannelCreate(player.ID)
	if err != nil {
		log.Warn().Err(err).Str("player_id", player.ID).Msg("failed to open DM channel")
		return nil
	}

	if _, err := n.session.ChannelMessageSend(channel.ID, message); err != nil {
		log.Warn().Err(err).Str("player_id", player.ID).Msg("failed to send DM")
	}

	return nil
}
