package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/frostveil/frozenbridges/internal/game"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	roller      game.Roller
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord connection, created by the caller so the
	// notifier and admin checker can share it
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Die used for player-initiated rolls
	Roller game.Roller
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		roller:      cfg.Roller,
		config:      cfg,
	}

	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers the command set
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cmd := NewBridgesCommand(b.gameService, b.roller)
	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register bridges command: %w", err)
	}

	log.Info().Msg("bot is now running")
	return nil
}

// Stop deletes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	log.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", b.config.GuildID).
		Msg("registered command")

	return nil
}

// handleInteraction dispatches Discord interactions to the registered command
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Error().Err(err).Str("command", name).Msg("command handler failed")
		}
	}
}
