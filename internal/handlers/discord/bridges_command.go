package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/frostveil/frozenbridges/internal/game"
	"github.com/frostveil/frozenbridges/internal/models"
	"github.com/frostveil/frozenbridges/internal/repositories/settings"
)

// BridgesCommand handles the /bridges command
type BridgesCommand struct {
	BaseCommand
	gameService game.Service
	roller      game.Roller
}

// NewBridgesCommand creates a new bridges command handler
func NewBridgesCommand(gameService game.Service, roller game.Roller) *BridgesCommand {
	return &BridgesCommand{
		BaseCommand: BaseCommand{
			Name:        "bridges",
			Description: "Secret question party game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Open a lobby in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the lobby or running game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave the game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "begin",
					Description: "Start the game with the players who joined",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ask",
					Description: "Ask your secret question",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "question",
							Description: "The question; only the answerer will see it",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pick",
					Description: "Pick who has to answer your question",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "The answerer",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "answer",
					Description: "Answer the question asked to you",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "answer",
							Description: "Your answer; only the asker will see it",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "accept",
					Description: "Accept the submitted answer",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reject",
					Description: "Reject the submitted answer and demand another",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rate",
					Description: "Rate the accepted answer's difficulty",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rating",
							Description: "1 (easy) to 5 (brutal)",
							Required:    true,
							MinValue:    float64Ptr(1),
							MaxValue:    5,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll your reveal die",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "change",
					Description: "Ask for a different question",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "decide",
					Description: "Decide a pending question change request",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "accept",
							Description: "True to write a new question, false to keep this one",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "giveup",
					Description: "Forfeit your side of the current turn",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "vote",
					Description: "Start a vote",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "What the vote decides",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "skip the current turn", Value: string(models.VoteTypeSkip)},
								{Name: "end the game", Value: string(models.VoteTypeEnd)},
								{Name: "kick a player", Value: string(models.VoteTypeKick)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Kick target; required for kick votes",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ballot",
					Description: "Vote on the active ballot",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "yes",
							Description: "True for yes, false for no",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "skip",
					Description: "Admin: skip the current turn",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "kick",
					Description: "Admin: remove a player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "The player to remove",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "Admin: end the game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "scoreboard",
					Description: "Show the current scoreboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "timers",
					Description: "Show this channel's timer settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settimer",
					Description: "Admin: change a timer duration",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "timer",
							Description: "Which timer to change",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "asking", Value: string(settings.TimerAsking)},
								{Name: "answering", Value: string(settings.TimerAnswering)},
								{Name: "dice roll", Value: string(settings.TimerDiceRoll)},
								{Name: "accept/reject", Value: string(settings.TimerAcceptReject)},
								{Name: "vote", Value: string(settings.TimerVote)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seconds",
							Description: "New duration in seconds",
							Required:    true,
						},
					},
				},
			},
		},
		gameService: gameService,
		roller:      roller,
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

// Handle processes a Discord interaction for the bridges command
func (c *BridgesCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}
	if i.Member == nil {
		return RespondWithError(s, i, "This game only runs inside a server channel.")
	}

	channelID := i.ChannelID
	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	var err error
	switch sub.Name {
	case "create":
		err = c.handleCreate(s, i, channelID, userID, username)
	case "join":
		err = c.handleJoin(s, i, channelID, userID, username)
	case "leave":
		err = c.handleLeave(s, i, channelID, userID)
	case "begin":
		err = c.handleBegin(s, i, channelID, userID)
	case "ask":
		err = c.handleAsk(s, i, channelID, userID, opts["question"].StringValue())
	case "pick":
		err = c.handlePick(s, i, channelID, userID, opts["player"].UserValue(nil).ID)
	case "answer":
		err = c.handleAnswer(s, i, channelID, userID, opts["answer"].StringValue())
	case "accept":
		err = c.handleAccept(s, i, channelID, userID)
	case "reject":
		err = c.handleReject(s, i, channelID, userID)
	case "rate":
		err = c.handleRate(s, i, channelID, userID, int(opts["rating"].IntValue()))
	case "roll":
		err = c.handleRoll(s, i, channelID, userID)
	case "change":
		err = c.handleChange(s, i, channelID, userID)
	case "decide":
		err = c.handleDecide(s, i, channelID, userID, opts["accept"].BoolValue())
	case "giveup":
		err = c.handleGiveUp(s, i, channelID, userID)
	case "vote":
		err = c.handleVote(s, i, channelID, userID, opts)
	case "ballot":
		err = c.handleBallot(s, i, channelID, userID, opts["yes"].BoolValue())
	case "skip":
		err = c.handleAdminSkip(s, i, channelID, userID)
	case "kick":
		err = c.handleAdminKick(s, i, channelID, userID, opts["player"].UserValue(nil).ID)
	case "end":
		err = c.handleAdminEnd(s, i, channelID, userID)
	case "scoreboard":
		err = c.handleScoreboard(s, i, channelID)
	case "timers":
		err = c.handleTimers(s, i, channelID)
	case "settimer":
		err = c.handleSetTimer(s, i, channelID, userID, opts)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// respondServiceError turns an engine rejection into an ephemeral reply. The
// engine's error strings are written for players.
func respondServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	var gameErr game.GameError
	if errors.As(err, &gameErr) {
		return RespondWithError(s, i, gameErr.Error())
	}

	log.Error().Err(err).Msg("game service call failed")
	return RespondWithError(s, i, "Something went wrong, try again.")
}

func (c *BridgesCommand) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, username string) error {
	_, err := c.gameService.CreateGame(context.Background(), &game.CreateGameInput{
		ChatID:      channelID,
		CreatorID:   userID,
		CreatorName: username,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Lobby opened. You are in.")
}

func (c *BridgesCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, username string) error {
	out, err := c.gameService.JoinGame(context.Background(), &game.JoinGameInput{
		ChatID:     channelID,
		PlayerID:   userID,
		PlayerName: username,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	if out.Reactivated {
		return RespondWithEphemeralMessage(s, i, "Welcome back. Your points survived.")
	}
	return RespondWithEphemeralMessage(s, i, "You are in.")
}

func (c *BridgesCommand) handleLeave(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	_, err := c.gameService.LeaveGame(context.Background(), &game.LeaveGameInput{
		ChatID:   channelID,
		PlayerID: userID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "You left the game.")
}

func (c *BridgesCommand) handleBegin(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	_, err := c.gameService.StartGame(context.Background(), &game.StartGameInput{
		ChatID:   channelID,
		PlayerID: userID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Game on.")
}

func (c *BridgesCommand) handleAsk(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, question string) error {
	_, err := c.gameService.AskQuestion(context.Background(), &game.AskQuestionInput{
		ChatID:   channelID,
		PlayerID: userID,
		Question: question,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	// The slash command input is already hidden from the channel; the
	// ephemeral reply keeps it that way
	return RespondWithEphemeralMessage(s, i, "Question locked in. Now `/bridges pick` your answerer.")
}

func (c *BridgesCommand) handlePick(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, targetID string) error {
	_, err := c.gameService.ChooseAnswerer(context.Background(), &game.ChooseAnswererInput{
		ChatID:   channelID,
		PlayerID: userID,
		TargetID: targetID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Question sent to <@%s>.", targetID))
}

func (c *BridgesCommand) handleAnswer(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, answer string) error {
	_, err := c.gameService.SubmitAnswer(context.Background(), &game.SubmitAnswerInput{
		ChatID:   channelID,
		PlayerID: userID,
		Answer:   answer,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Answer delivered to the asker.")
}

func (c *BridgesCommand) handleAccept(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	_, err := c.gameService.AcceptAnswer(context.Background(), &game.AcceptAnswerInput{
		ChatID:   channelID,
		PlayerID: userID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Accepted. Now `/bridges rate` the difficulty.")
}

func (c *BridgesCommand) handleReject(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	_, err := c.gameService.RejectAnswer(context.Background(), &game.RejectAnswerInput{
		ChatID:   channelID,
		PlayerID: userID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Rejected. The answerer owes a better one.")
}

func (c *BridgesCommand) handleRate(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string, rating int) error {
	_, err := c.gameService.RateDifficulty(context.Background(), &game.RateDifficultyInput{
		ChatID:   channelID,
		PlayerID: userID,
		Rating:   rating,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Rated. Time to roll for the reveal.")
}

func (c *BridgesCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	// Player rolls are generated here at the boundary, so the engine treats
	// manual rolls and timeout auto-rolls identically
	value := c.roller.RollD6()

	_, err := c.gameService.RollDice(context.Background(), &game.RollDiceInput{
		ChatID:   channelID,
		PlayerID: userID,
		Value:    value,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You rolled a %d.", value))
}

func (c *BridgesCommand) handleChange(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	out, err := c.gameService.RequestQuestionChange(context.Background(), &game.RequestQuestionChangeInput{
		ChatID:   channelID,
		PlayerID: userID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Change requested (%d of %d used).", out.ChangesUsed, out.ChangesMax))
}

func (c *BridgesCommand) handleDecide(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string, accept bool) error {
	_, err := c.gameService.RespondQuestionChange(context.Background(), &game.RespondQuestionChangeInput{
		ChatID:   channelID,
		PlayerID: userID,
		Accept:   accept,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	if accept {
		return RespondWithEphemeralMessage(s, i, "Fine, write a new one with `/bridges ask`.")
	}
	return RespondWithEphemeralMessage(s, i, "The question stands.")
}

func (c *BridgesCommand) handleGiveUp(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	_, err := c.gameService.GiveUp(context.Background(), &game.GiveUpInput{
		ChatID:   channelID,
		PlayerID: userID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Turn forfeited.")
}

func (c *BridgesCommand) handleVote(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	voteType := models.VoteType(opts["type"].StringValue())

	targetID := ""
	if opt, ok := opts["player"]; ok {
		targetID = opt.UserValue(nil).ID
	}
	if voteType == models.VoteTypeKick && targetID == "" {
		return RespondWithError(s, i, "Kick votes need a target player.")
	}

	out, err := c.gameService.StartVote(context.Background(), &game.StartVoteInput{
		ChatID:   channelID,
		PlayerID: userID,
		Type:     voteType,
		TargetID: targetID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	if out.Bypassed {
		return RespondWithEphemeralMessage(s, i, "With two players your word is the majority. Done.")
	}
	return RespondWithEphemeralMessage(s, i, "Vote opened. Your yes is already counted.")
}

func (c *BridgesCommand) handleBallot(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string, yes bool) error {
	_, err := c.gameService.CastVote(context.Background(), &game.CastVoteInput{
		ChatID:   channelID,
		PlayerID: userID,
		Yes:      yes,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Ballot counted.")
}

func (c *BridgesCommand) handleAdminSkip(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	_, err := c.gameService.AdminSkip(context.Background(), &game.AdminSkipInput{
		ChatID:  channelID,
		AdminID: userID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Turn skipped.")
}

func (c *BridgesCommand) handleAdminKick(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID, targetID string) error {
	_, err := c.gameService.AdminKick(context.Background(), &game.AdminKickInput{
		ChatID:   channelID,
		AdminID:  userID,
		TargetID: targetID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Player removed.")
}

func (c *BridgesCommand) handleAdminEnd(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string) error {
	_, err := c.gameService.AdminEnd(context.Background(), &game.AdminEndInput{
		ChatID:  channelID,
		AdminID: userID,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, "Game ended.")
}

func (c *BridgesCommand) handleScoreboard(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	out, err := c.gameService.GetSummary(context.Background(), &game.GetSummaryInput{ChatID: channelID})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, scoreboardEmbed(out.Summary, out.Phase, out.CurrentPlayerID))
}

func (c *BridgesCommand) handleTimers(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	out, err := c.gameService.GetTimerSettings(context.Background(), &game.GetTimerSettingsInput{ChatID: channelID})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithEmbed(s, i, timerSettingsEmbed(out.Settings))
}

func (c *BridgesCommand) handleSetTimer(s *discordgo.Session, i *discordgo.InteractionCreate, channelID, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	timer := settings.Timer(opts["timer"].StringValue())
	duration := time.Duration(opts["seconds"].IntValue()) * time.Second

	_, err := c.gameService.UpdateTimerSetting(context.Background(), &game.UpdateTimerSettingInput{
		ChatID:   channelID,
		AdminID:  userID,
		Timer:    timer,
		Duration: duration,
	})
	if err != nil {
		return respondServiceError(s, i, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("The %s timer is now %s.", timer, duration))
}
