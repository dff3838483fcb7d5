package discord

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostveil/frozenbridges/internal/game"
	"github.com/frostveil/frozenbridges/internal/models"
	"github.com/frostveil/frozenbridges/internal/timers"
)

// fakeSession records outgoing Discord calls
type fakeSession struct {
	nextID  int
	sent    []string
	deleted []string
	dms     []string
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.nextID++
	if channelID == "dm-channel" {
		f.dms = append(f.dms, content)
	} else {
		f.sent = append(f.sent, content)
	}
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", f.nextID)}, nil
}

func (f *fakeSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.nextID++
	f.sent = append(f.sent, embed.Title)
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", f.nextID)}, nil
}

func (f *fakeSession) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeSession) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: "dm-channel"}, nil
}

func warningNote(chatID string) *game.Notification {
	return &game.Notification{
		Type:      game.NoteTimerWarning,
		ChatID:    chatID,
		Player:    models.Player{ID: "p1", DisplayName: "Player One"},
		TimerKind: timers.KindAsking,
		Remaining: 30 * time.Second,
	}
}

func TestNotifierReplacesPreviousWarning(t *testing.T) {
	session := &fakeSession{}
	n, err := NewNotifier(session)
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, n.Send(ctx, warningNote("chat-1")))
	assert.Empty(t, session.deleted, "first warning has nothing to replace")

	require.NoError(t, n.Send(ctx, warningNote("chat-1")))
	assert.Equal(t, []string{"msg-1"}, session.deleted, "second warning deletes the first")

	require.NoError(t, n.Send(ctx, warningNote("chat-1")))
	assert.Equal(t, []string{"msg-1", "msg-2"}, session.deleted)
}

func TestNotifierWarningTrackerIsPerChat(t *testing.T) {
	session := &fakeSession{}
	n, err := NewNotifier(session)
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, n.Send(ctx, warningNote("chat-1")))
	require.NoError(t, n.Send(ctx, warningNote("chat-2")))
	assert.Empty(t, session.deleted, "warnings in different chats do not replace each other")

	require.NoError(t, n.Send(ctx, warningNote("chat-1")))
	assert.Equal(t, []string{"msg-1"}, session.deleted)
}

func TestNotifierStateChangeClearsWarningTracker(t *testing.T) {
	session := &fakeSession{}
	n, err := NewNotifier(session)
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, n.Send(ctx, warningNote("chat-1")))

	// A state change makes the pending warning moot
	require.NoError(t, n.Send(ctx, &game.Notification{
		Type:   game.NoteTurnStarted,
		ChatID: "chat-1",
		Player: models.Player{ID: "p2", DisplayName: "Player Two"},
	}))

	require.NoError(t, n.Send(ctx, warningNote("chat-1")))
	assert.Empty(t, session.deleted, "a fresh warning after a state change replaces nothing")
}

func TestNotifierSendsQuestionByDM(t *testing.T) {
	session := &fakeSession{}
	n, err := NewNotifier(session)
	require.NoError(t, err)

	require.NoError(t, n.Send(context.Background(), &game.Notification{
		Type:     game.NoteAnswererChosen,
		ChatID:   "chat-1",
		Player:   models.Player{ID: "p1", DisplayName: "Asker"},
		Target:   models.Player{ID: "p2", DisplayName: "Answerer"},
		Question: "what is the secret",
	}))

	require.Len(t, session.dms, 1)
	assert.Contains(t, session.dms[0], "what is the secret")
	for _, public := range session.sent {
		assert.NotContains(t, public, "what is the secret", "the question never reaches the channel")
	}
}
