package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// AdminChecker answers admin checks with Discord channel permissions.
// Administrator or Manage Server both qualify.
type AdminChecker struct {
	session *discordgo.Session
}

// NewAdminChecker creates an admin checker bound to an open session
func NewAdminChecker(session *discordgo.Session) (*AdminChecker, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &AdminChecker{session: session}, nil
}

// IsAdmin implements game.AdminChecker
func (a *AdminChecker) IsAdmin(_ context.Context, chatID, playerID string) (bool, error) {
	perms, err := a.session.UserChannelPermissions(playerID, chatID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve permissions: %w", err)
	}

	const adminBits = discordgo.PermissionAdministrator | discordgo.PermissionManageServer
	return perms&adminBits != 0, nil
}
