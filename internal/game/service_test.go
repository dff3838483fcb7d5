package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/frostveil/frozenbridges/internal/game"
	gameMocks "github.com/frostveil/frozenbridges/internal/game/mocks"
	"github.com/frostveil/frozenbridges/internal/models"
	settingsRepo "github.com/frostveil/frozenbridges/internal/repositories/settings"
	settingsMocks "github.com/frostveil/frozenbridges/internal/repositories/settings/mocks"
	statsRepo "github.com/frostveil/frozenbridges/internal/repositories/stats"
	statsMocks "github.com/frostveil/frozenbridges/internal/repositories/stats/mocks"
	"github.com/frostveil/frozenbridges/internal/timers"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockNotifier *gameMocks.MockNotifier
	mockSched    *gameMocks.MockScheduler
	mockClock    *gameMocks.MockClock
	mockRoller   *gameMocks.MockRoller
	mockAdmin    *gameMocks.MockAdminChecker
	mockStats    *statsMocks.MockRepository
	mockSettings *settingsMocks.MockRepository

	svc   game.Service
	hooks timers.Hooks
	ctx   context.Context

	testTime time.Time
	chatID   string
	p1, p2   string
	p3, p4   string

	// never fires; feeds the vote watcher in tests that ignore timeouts
	never <-chan time.Time
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = gameMocks.NewMockNotifier(s.mockCtrl)
	s.mockSched = gameMocks.NewMockScheduler(s.mockCtrl)
	s.mockClock = gameMocks.NewMockClock(s.mockCtrl)
	s.mockRoller = gameMocks.NewMockRoller(s.mockCtrl)
	s.mockAdmin = gameMocks.NewMockAdminChecker(s.mockCtrl)
	s.mockStats = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockSettings = settingsMocks.NewMockRepository(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	s.chatID = "test-chat-id"
	s.p1, s.p2, s.p3, s.p4 = "player-1", "player-2", "player-3", "player-4"
	s.never = make(chan time.Time)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockSettings.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(&settingsRepo.GetSettingsOutput{Settings: settingsRepo.DefaultSettings()}, nil).
		AnyTimes()

	svc, err := game.New(&game.Config{
		Notifier:     s.mockNotifier,
		StatsRepo:    s.mockStats,
		SettingsRepo: s.mockSettings,
		AdminChecker: s.mockAdmin,
		Scheduler:    s.mockSched,
		Clock:        s.mockClock,
		Roller:       s.mockRoller,
	})
	s.Require().NoError(err)

	s.svc = svc
	s.hooks = svc
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// allowSends lets a test ignore notification traffic
func (s *GameServiceTestSuite) allowSends() {
	s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// allowStats lets a test ignore counter traffic
func (s *GameServiceTestSuite) allowStats() {
	s.mockStats.EXPECT().IncrementStat(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// allowTimers lets a test ignore scheduler traffic
func (s *GameServiceTestSuite) allowTimers() {
	s.mockSched.EXPECT().Arm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.mockSched.EXPECT().Cancel(gomock.Any()).AnyTimes()
}

// startGame brings a fresh game to PLAYING with the given players, first one
// as creator and current player
func (s *GameServiceTestSuite) startGame(players ...string) {
	_, err := s.svc.CreateGame(s.ctx, &game.CreateGameInput{
		ChatID:      s.chatID,
		CreatorID:   players[0],
		CreatorName: "Name " + players[0],
	})
	s.Require().NoError(err)

	for _, p := range players[1:] {
		_, err = s.svc.JoinGame(s.ctx, &game.JoinGameInput{
			ChatID:     s.chatID,
			PlayerID:   p,
			PlayerName: "Name " + p,
		})
		s.Require().NoError(err)
	}

	_, err = s.svc.StartGame(s.ctx, &game.StartGameInput{ChatID: s.chatID, PlayerID: players[0]})
	s.Require().NoError(err)
}

// playToAnswerSubmitted drives p1 asking p2, p2 answering
func (s *GameServiceTestSuite) playToAnswerSubmitted() {
	s.startGame(s.p1, s.p2, s.p3)

	_, err := s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p1, Question: "what is your darkest secret"})
	s.Require().NoError(err)
	_, err = s.svc.ChooseAnswerer(s.ctx, &game.ChooseAnswererInput{ChatID: s.chatID, PlayerID: s.p1, TargetID: s.p2})
	s.Require().NoError(err)
	_, err = s.svc.SubmitAnswer(s.ctx, &game.SubmitAnswerInput{ChatID: s.chatID, PlayerID: s.p2, Answer: "never telling"})
	s.Require().NoError(err)
}

// playToRolling continues through accept and rating
func (s *GameServiceTestSuite) playToRolling(rating int) {
	s.playToAnswerSubmitted()

	_, err := s.svc.AcceptAnswer(s.ctx, &game.AcceptAnswerInput{ChatID: s.chatID, PlayerID: s.p1})
	s.Require().NoError(err)
	_, err = s.svc.RateDifficulty(s.ctx, &game.RateDifficultyInput{ChatID: s.chatID, PlayerID: s.p1, Rating: rating})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestCreateGame() {
	s.allowSends()

	out, err := s.svc.CreateGame(s.ctx, &game.CreateGameInput{
		ChatID:      s.chatID,
		CreatorID:   s.p1,
		CreatorName: "Alice",
	})

	s.NoError(err)
	s.NotEmpty(out.GameID)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(models.PhaseWaiting, summary.Phase)
	s.Len(summary.Summary.Entries, 1)
}

func (s *GameServiceTestSuite) TestCreateGameDuplicateChat() {
	s.allowSends()

	_, err := s.svc.CreateGame(s.ctx, &game.CreateGameInput{ChatID: s.chatID, CreatorID: s.p1, CreatorName: "Alice"})
	s.Require().NoError(err)

	_, err = s.svc.CreateGame(s.ctx, &game.CreateGameInput{ChatID: s.chatID, CreatorID: s.p2, CreatorName: "Bob"})
	s.ErrorIs(err, game.ErrGameAlreadyExists)
}

func (s *GameServiceTestSuite) TestCreateGameCreatorBusyElsewhere() {
	s.allowSends()

	_, err := s.svc.CreateGame(s.ctx, &game.CreateGameInput{ChatID: "other-chat", CreatorID: s.p1, CreatorName: "Alice"})
	s.Require().NoError(err)

	_, err = s.svc.CreateGame(s.ctx, &game.CreateGameInput{ChatID: s.chatID, CreatorID: s.p1, CreatorName: "Alice"})
	s.ErrorIs(err, game.ErrPlayerInOtherGame)
}

func (s *GameServiceTestSuite) TestJoinGame() {
	s.allowSends()

	_, err := s.svc.CreateGame(s.ctx, &game.CreateGameInput{ChatID: s.chatID, CreatorID: s.p1, CreatorName: "Alice"})
	s.Require().NoError(err)

	out, err := s.svc.JoinGame(s.ctx, &game.JoinGameInput{ChatID: s.chatID, PlayerID: s.p2, PlayerName: "Bob"})
	s.NoError(err)
	s.False(out.Reactivated)

	_, err = s.svc.JoinGame(s.ctx, &game.JoinGameInput{ChatID: s.chatID, PlayerID: s.p2, PlayerName: "Bob"})
	s.ErrorIs(err, game.ErrPlayerAlreadyInGame)
}

func (s *GameServiceTestSuite) TestRejoinKeepsPoints() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.playToRolling(5)

	// p2 holds 5 points and leaves mid-game
	_, err := s.svc.LeaveGame(s.ctx, &game.LeaveGameInput{ChatID: s.chatID, PlayerID: s.p2})
	s.Require().NoError(err)

	out, err := s.svc.JoinGame(s.ctx, &game.JoinGameInput{ChatID: s.chatID, PlayerID: s.p2, PlayerName: "Bob"})
	s.NoError(err)
	s.True(out.Reactivated)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(s.p2, summary.Summary.Entries[0].PlayerID)
	s.Equal(5, summary.Summary.Entries[0].Points)
}

func (s *GameServiceTestSuite) TestStartGameNeedsTwoPlayers() {
	s.allowSends()

	_, err := s.svc.CreateGame(s.ctx, &game.CreateGameInput{ChatID: s.chatID, CreatorID: s.p1, CreatorName: "Alice"})
	s.Require().NoError(err)

	_, err = s.svc.StartGame(s.ctx, &game.StartGameInput{ChatID: s.chatID, PlayerID: s.p1})
	s.ErrorIs(err, game.ErrNotEnoughPlayers)
}

func (s *GameServiceTestSuite) TestStartGameArmsAskingTimer() {
	s.allowSends()

	_, err := s.svc.CreateGame(s.ctx, &game.CreateGameInput{ChatID: s.chatID, CreatorID: s.p1, CreatorName: "Alice"})
	s.Require().NoError(err)
	_, err = s.svc.JoinGame(s.ctx, &game.JoinGameInput{ChatID: s.chatID, PlayerID: s.p2, PlayerName: "Bob"})
	s.Require().NoError(err)

	s.mockStats.EXPECT().
		IncrementStat(gomock.Any(), &statsRepo.IncrementStatInput{PlayerID: s.p1, Stat: statsRepo.StatGamesPlayed}).
		Return(nil)
	s.mockStats.EXPECT().
		IncrementStat(gomock.Any(), &statsRepo.IncrementStatInput{PlayerID: s.p2, Stat: statsRepo.StatGamesPlayed}).
		Return(nil)
	s.mockSched.EXPECT().
		Arm(gomock.Any(), s.chatID, timers.KindAsking, 3*time.Minute, gomock.Any())

	out, err := s.svc.StartGame(s.ctx, &game.StartGameInput{ChatID: s.chatID, PlayerID: s.p1})
	s.NoError(err)
	s.Equal(s.p1, out.FirstPlayerID)
}

func (s *GameServiceTestSuite) TestFullTurnFlow() {
	s.allowSends()
	s.allowStats()

	// StartGame and the post-reveal turn advance arm the asking countdown
	s.mockSched.EXPECT().Arm(gomock.Any(), s.chatID, timers.KindAsking, 3*time.Minute, gomock.Any()).Times(2)
	s.mockSched.EXPECT().Arm(gomock.Any(), s.chatID, timers.KindAnswering, 5*time.Minute, gomock.Any())
	// One for the decision window, one for the rating window
	s.mockSched.EXPECT().Arm(gomock.Any(), s.chatID, timers.KindAcceptReject, 2*time.Minute, gomock.Any()).Times(2)
	s.mockSched.EXPECT().Arm(gomock.Any(), s.chatID, timers.KindDiceRoll, time.Minute, gomock.Any())

	s.playToRolling(4)

	out, err := s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p1, Value: 6})
	s.NoError(err)
	s.False(out.Resolved)

	out, err = s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p2, Value: 2})
	s.NoError(err)
	s.True(out.Resolved)
	s.Equal(game.RollRevealed, out.Outcome)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(models.PhasePlaying, summary.Phase)
	s.Equal(s.p2, summary.CurrentPlayerID, "turn rotated to the answerer")
	s.Equal(s.p2, summary.Summary.Entries[0].PlayerID)
	s.Equal(4, summary.Summary.Entries[0].Points)
}

func (s *GameServiceTestSuite) TestRollTieRestartsContest() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.playToRolling(2)

	_, err := s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p1, Value: 3})
	s.Require().NoError(err)
	out, err := s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p2, Value: 3})
	s.NoError(err)
	s.True(out.Resolved)
	s.Equal(game.RollTie, out.Outcome)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(models.PhaseRolling, summary.Phase, "tie keeps the contest open")
	s.Equal(s.p1, summary.CurrentPlayerID)

	// Both roll again, this time decisively
	_, err = s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p1, Value: 1})
	s.Require().NoError(err)
	out, err = s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p2, Value: 5})
	s.NoError(err)
	s.Equal(game.RollHidden, out.Outcome)
}

func (s *GameServiceTestSuite) TestRollValidation() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.playToRolling(1)

	_, err := s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p1, Value: 7})
	s.ErrorIs(err, game.ErrInvalidRoll)

	_, err = s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p3, Value: 4})
	s.ErrorIs(err, game.ErrNotInvolvedInTurn)

	_, err = s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p1, Value: 4})
	s.Require().NoError(err)
	_, err = s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p1, Value: 4})
	s.ErrorIs(err, game.ErrAlreadyRolled)
}

func (s *GameServiceTestSuite) TestAskValidation() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2)

	_, err := s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p2, Question: "q"})
	s.ErrorIs(err, game.ErrNotYourTurn)

	_, err = s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p1, Question: "   "})
	s.ErrorIs(err, game.ErrEmptyQuestion)

	_, err = s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p1, Question: "q"})
	s.Require().NoError(err)
	_, err = s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p1, Question: "q2"})
	s.ErrorIs(err, game.ErrQuestionAlreadyAsked)

	_, err = s.svc.ChooseAnswerer(s.ctx, &game.ChooseAnswererInput{ChatID: s.chatID, PlayerID: s.p1, TargetID: s.p1})
	s.ErrorIs(err, game.ErrInvalidTarget)
}

func (s *GameServiceTestSuite) TestRejectAnswerReopensAnswering() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.playToAnswerSubmitted()

	_, err := s.svc.RejectAnswer(s.ctx, &game.RejectAnswerInput{ChatID: s.chatID, PlayerID: s.p1})
	s.NoError(err)

	// Accepting now fails: there is no answer on the table
	_, err = s.svc.AcceptAnswer(s.ctx, &game.AcceptAnswerInput{ChatID: s.chatID, PlayerID: s.p1})
	s.ErrorIs(err, game.ErrNoAnswer)

	_, err = s.svc.SubmitAnswer(s.ctx, &game.SubmitAnswerInput{ChatID: s.chatID, PlayerID: s.p2, Answer: "fine, here it is"})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestQuestionChangeFlow() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	svc, err := game.New(&game.Config{
		Notifier:           s.mockNotifier,
		StatsRepo:          s.mockStats,
		SettingsRepo:       s.mockSettings,
		AdminChecker:       s.mockAdmin,
		Scheduler:          s.mockSched,
		Clock:              s.mockClock,
		Roller:             s.mockRoller,
		MaxQuestionChanges: 1,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.startGame(s.p1, s.p2)
	_, err = s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p1, Question: "too spicy"})
	s.Require().NoError(err)
	_, err = s.svc.ChooseAnswerer(s.ctx, &game.ChooseAnswererInput{ChatID: s.chatID, PlayerID: s.p1, TargetID: s.p2})
	s.Require().NoError(err)

	// Only the answerer may request, and only once at a time
	_, err = s.svc.RequestQuestionChange(s.ctx, &game.RequestQuestionChangeInput{ChatID: s.chatID, PlayerID: s.p1})
	s.ErrorIs(err, game.ErrNotAnswerer)

	out, err := s.svc.RequestQuestionChange(s.ctx, &game.RequestQuestionChangeInput{ChatID: s.chatID, PlayerID: s.p2})
	s.NoError(err)
	s.Equal(0, out.ChangesUsed)

	_, err = s.svc.RequestQuestionChange(s.ctx, &game.RequestQuestionChangeInput{ChatID: s.chatID, PlayerID: s.p2})
	s.ErrorIs(err, game.ErrChangePending)

	// The asker accepts: back to PLAYING with a fresh question owed
	resp, err := s.svc.RespondQuestionChange(s.ctx, &game.RespondQuestionChangeInput{ChatID: s.chatID, PlayerID: s.p1, Accept: true})
	s.NoError(err)
	s.Equal(1, resp.ChangesUsed)

	_, err = s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p1, Question: "milder this time"})
	s.Require().NoError(err)
	_, err = s.svc.ChooseAnswerer(s.ctx, &game.ChooseAnswererInput{ChatID: s.chatID, PlayerID: s.p1, TargetID: s.p2})
	s.Require().NoError(err)

	// Budget of one is spent
	_, err = s.svc.RequestQuestionChange(s.ctx, &game.RequestQuestionChangeInput{ChatID: s.chatID, PlayerID: s.p2})
	s.ErrorIs(err, game.ErrChangeLimitReached)
}

func (s *GameServiceTestSuite) TestLeaveGameEndsWhenAlone() {
	s.allowSends()
	s.allowStats()
	s.mockSched.EXPECT().Arm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.mockSched.EXPECT().Cancel(s.chatID)

	s.startGame(s.p1, s.p2)

	out, err := s.svc.LeaveGame(s.ctx, &game.LeaveGameInput{ChatID: s.chatID, PlayerID: s.p2})
	s.NoError(err)
	s.True(out.GameEnded)

	_, err = s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.ErrorIs(err, game.ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestLeaveCurrentPlayerAdvancesTurn() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2, s.p3)

	out, err := s.svc.LeaveGame(s.ctx, &game.LeaveGameInput{ChatID: s.chatID, PlayerID: s.p1})
	s.NoError(err)
	s.False(out.GameEnded)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(s.p2, summary.CurrentPlayerID)
}

func (s *GameServiceTestSuite) TestGiveUpAdvancesTurn() {
	s.allowSends()
	s.allowTimers()

	// The exact expectation must precede the catch-all: gomock matches
	// calls against expectations in declaration order
	s.mockStats.EXPECT().
		IncrementStat(gomock.Any(), &statsRepo.IncrementStatInput{PlayerID: s.p1, Stat: statsRepo.StatGiveupsAsker}).
		Return(nil)
	s.mockStats.EXPECT().IncrementStat(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.startGame(s.p1, s.p2, s.p3)

	_, err := s.svc.GiveUp(s.ctx, &game.GiveUpInput{ChatID: s.chatID, PlayerID: s.p1})
	s.NoError(err)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(s.p2, summary.CurrentPlayerID)
	s.True(s.findEntry(summary.Summary, s.p1).Active, "giving up a turn does not deactivate")

	_, err = s.svc.GiveUp(s.ctx, &game.GiveUpInput{ChatID: s.chatID, PlayerID: s.p1})
	s.ErrorIs(err, game.ErrNotInvolvedInTurn)
}

func (s *GameServiceTestSuite) findEntry(summary *game.Summary, playerID string) game.SummaryEntry {
	for _, e := range summary.Entries {
		if e.PlayerID == playerID {
			return e
		}
	}
	s.FailNow("player missing from summary: " + playerID)
	return game.SummaryEntry{}
}

func (s *GameServiceTestSuite) TestVoteEndPassesOnMajority() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()
	s.mockClock.EXPECT().After(gomock.Any()).Return(s.never).AnyTimes()

	s.startGame(s.p1, s.p2, s.p3, s.p4)

	out, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p2, Type: models.VoteTypeEnd})
	s.NoError(err)
	s.False(out.Bypassed)

	// Threshold for 4 players is 3; the starter's yes is seeded
	cast, err := s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p3, Yes: true})
	s.NoError(err)
	s.Equal(game.VoteOngoing, cast.Outcome)

	cast, err = s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p4, Yes: true})
	s.NoError(err)
	s.Equal(game.VotePassed, cast.Outcome)

	_, err = s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.ErrorIs(err, game.ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestVoteFailsWhenImpossible() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()
	s.mockClock.EXPECT().After(gomock.Any()).Return(s.never).AnyTimes()

	s.startGame(s.p1, s.p2, s.p3, s.p4)

	_, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p2, Type: models.VoteTypeEnd})
	s.Require().NoError(err)

	cast, err := s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p3, Yes: false})
	s.NoError(err)
	s.Equal(game.VoteOngoing, cast.Outcome)

	// Two no ballots leave at most 2 yes out of a required 3
	cast, err = s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p4, Yes: false})
	s.NoError(err)
	s.Equal(game.VoteFailedImpossible, cast.Outcome)

	// The vote is gone; the game is not
	_, err = s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p1, Yes: true})
	s.ErrorIs(err, game.ErrNoActiveVote)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(models.PhasePlaying, summary.Phase)
}

func (s *GameServiceTestSuite) TestVoteKickRemovesTarget() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()
	s.mockClock.EXPECT().After(gomock.Any()).Return(s.never).AnyTimes()

	s.startGame(s.p1, s.p2, s.p3, s.p4)

	_, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p1, Type: models.VoteTypeKick, TargetID: s.p4})
	s.Require().NoError(err)

	_, err = s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p2, Yes: true})
	s.Require().NoError(err)
	cast, err := s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p3, Yes: true})
	s.NoError(err)
	s.Equal(game.VotePassed, cast.Outcome)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.False(s.findEntry(summary.Summary, s.p4).Active)
}

func (s *GameServiceTestSuite) TestVoteTwoPlayerBypass() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2)

	out, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p1, Type: models.VoteTypeEnd})
	s.NoError(err)
	s.True(out.Bypassed)

	_, err = s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.ErrorIs(err, game.ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestVoteTwoPlayerSkipBypassKeepsPlayersActive() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2)

	out, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p2, Type: models.VoteTypeSkip})
	s.NoError(err)
	s.True(out.Bypassed)

	// The turn advances but nobody is deactivated and the game goes on
	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(s.p2, summary.CurrentPlayerID)
	s.True(s.findEntry(summary.Summary, s.p1).Active, "a bypassed skip keeps the skipped player active")
	s.True(s.findEntry(summary.Summary, s.p2).Active)
}

func (s *GameServiceTestSuite) TestVoteTwoPlayerKickBypassDoesNothing() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2)

	out, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p2, Type: models.VoteTypeKick, TargetID: s.p1})
	s.NoError(err)
	s.True(out.Bypassed)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(s.p1, summary.CurrentPlayerID)
	s.True(s.findEntry(summary.Summary, s.p1).Active)
}

func (s *GameServiceTestSuite) TestVoteSkipOwnTurn() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()
	s.mockClock.EXPECT().After(gomock.Any()).Return(s.never).AnyTimes()

	s.startGame(s.p1, s.p2, s.p3)

	// The current player may put their own turn up for a skip vote
	out, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p1, Type: models.VoteTypeSkip})
	s.NoError(err)
	s.False(out.Bypassed)

	// Threshold for 3 players is 2; the starter's yes is seeded
	cast, err := s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p2, Yes: true})
	s.NoError(err)
	s.Equal(game.VotePassed, cast.Outcome)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(s.p2, summary.CurrentPlayerID)
	s.False(s.findEntry(summary.Summary, s.p1).Active, "a passed skip vote deactivates")
}

func (s *GameServiceTestSuite) TestVoteValidation() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()
	s.mockClock.EXPECT().After(gomock.Any()).Return(s.never).AnyTimes()

	s.startGame(s.p1, s.p2, s.p3)

	_, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p1, Type: models.VoteTypeKick, TargetID: s.p1})
	s.ErrorIs(err, game.ErrVoteSelfTarget)

	_, err = s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p1, Yes: true})
	s.ErrorIs(err, game.ErrNoActiveVote)

	_, err = s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p2, Type: models.VoteTypeEnd})
	s.Require().NoError(err)

	_, err = s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p3, Type: models.VoteTypeEnd})
	s.ErrorIs(err, game.ErrVoteInProgress)

	_, err = s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p2, Yes: true})
	s.ErrorIs(err, game.ErrAlreadyVoted)
}

func (s *GameServiceTestSuite) TestVoteTimesOut() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	timeout := make(chan time.Time, 1)
	s.mockClock.EXPECT().After(30 * time.Second).Return((<-chan time.Time)(timeout))

	s.startGame(s.p1, s.p2, s.p3)

	_, err := s.svc.StartVote(s.ctx, &game.StartVoteInput{ChatID: s.chatID, PlayerID: s.p2, Type: models.VoteTypeEnd})
	s.Require().NoError(err)

	timeout <- s.testTime.Add(30 * time.Second)

	// The starter already holds a ballot, so polling with them can never
	// change the tally: ErrAlreadyVoted while the vote lives, ErrNoActiveVote
	// once the watcher has expired it
	s.Eventually(func() bool {
		_, err := s.svc.CastVote(s.ctx, &game.CastVoteInput{ChatID: s.chatID, PlayerID: s.p2, Yes: true})
		return err == game.ErrNoActiveVote
	}, 2*time.Second, 10*time.Millisecond, "vote should expire")

	// Game continues after the timeout
	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(models.PhasePlaying, summary.Phase)
}

func (s *GameServiceTestSuite) TestAdminEnd() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2)

	s.mockAdmin.EXPECT().IsAdmin(gomock.Any(), s.chatID, s.p2).Return(false, nil)
	_, err := s.svc.AdminEnd(s.ctx, &game.AdminEndInput{ChatID: s.chatID, AdminID: s.p2})
	s.ErrorIs(err, game.ErrNotAdmin)

	s.mockAdmin.EXPECT().IsAdmin(gomock.Any(), s.chatID, s.p1).Return(true, nil)
	_, err = s.svc.AdminEnd(s.ctx, &game.AdminEndInput{ChatID: s.chatID, AdminID: s.p1})
	s.NoError(err)

	_, err = s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.ErrorIs(err, game.ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestAdminSkip() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2, s.p3)

	s.mockAdmin.EXPECT().IsAdmin(gomock.Any(), s.chatID, s.p3).Return(true, nil)
	_, err := s.svc.AdminSkip(s.ctx, &game.AdminSkipInput{ChatID: s.chatID, AdminID: s.p3})
	s.NoError(err)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(s.p2, summary.CurrentPlayerID)
	s.True(s.findEntry(summary.Summary, s.p1).Active)
}

func (s *GameServiceTestSuite) TestAdminKick() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2, s.p3)

	s.mockAdmin.EXPECT().IsAdmin(gomock.Any(), s.chatID, s.p1).Return(true, nil)
	out, err := s.svc.AdminKick(s.ctx, &game.AdminKickInput{ChatID: s.chatID, AdminID: s.p1, TargetID: s.p3})
	s.NoError(err)
	s.False(out.GameEnded)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.False(s.findEntry(summary.Summary, s.p3).Active)

	// A player the game has never seen is distinct from one who left
	s.mockAdmin.EXPECT().IsAdmin(gomock.Any(), s.chatID, s.p1).Return(true, nil)
	_, err = s.svc.AdminKick(s.ctx, &game.AdminKickInput{ChatID: s.chatID, AdminID: s.p1, TargetID: "stranger"})
	s.ErrorIs(err, game.ErrPlayerNotFound)

	s.mockAdmin.EXPECT().IsAdmin(gomock.Any(), s.chatID, s.p1).Return(true, nil)
	_, err = s.svc.AdminKick(s.ctx, &game.AdminKickInput{ChatID: s.chatID, AdminID: s.p1, TargetID: s.p3})
	s.ErrorIs(err, game.ErrPlayerNotInGame)
}

func (s *GameServiceTestSuite) TestUpdateTimerSettingRequiresAdmin() {
	s.mockAdmin.EXPECT().IsAdmin(gomock.Any(), s.chatID, s.p1).Return(false, nil)

	_, err := s.svc.UpdateTimerSetting(s.ctx, &game.UpdateTimerSettingInput{
		ChatID:   s.chatID,
		AdminID:  s.p1,
		Timer:    settingsRepo.TimerAsking,
		Duration: time.Minute,
	})
	s.ErrorIs(err, game.ErrNotAdmin)
}

func (s *GameServiceTestSuite) TestExpireAskingRemovesAfkPlayer() {
	s.allowSends()
	s.allowTimers()
	// Exact expectation before the catch-all, same ordering rule as in
	// TestGiveUpAdvancesTurn
	s.mockStats.EXPECT().
		IncrementStat(gomock.Any(), &statsRepo.IncrementStatInput{PlayerID: s.p1, Stat: statsRepo.StatTimeouts}).
		Return(nil)
	s.mockStats.EXPECT().IncrementStat(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.startGame(s.p1, s.p2, s.p3)

	s.hooks.OnExpire(s.ctx, s.chatID, timers.KindAsking)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(s.p2, summary.CurrentPlayerID)
	s.False(s.findEntry(summary.Summary, s.p1).Active)
}

func (s *GameServiceTestSuite) TestExpireAskingEndsTwoPlayerGame() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2)

	s.hooks.OnExpire(s.ctx, s.chatID, timers.KindAsking)

	_, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.ErrorIs(err, game.ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestExpireAnsweringRemovesAnswerer() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2, s.p3)
	_, err := s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p1, Question: "q"})
	s.Require().NoError(err)
	_, err = s.svc.ChooseAnswerer(s.ctx, &game.ChooseAnswererInput{ChatID: s.chatID, PlayerID: s.p1, TargetID: s.p2})
	s.Require().NoError(err)

	s.hooks.OnExpire(s.ctx, s.chatID, timers.KindAnswering)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.False(s.findEntry(summary.Summary, s.p2).Active)
	s.Equal(s.p3, summary.CurrentPlayerID, "turn advanced past the remover")
}

func (s *GameServiceTestSuite) TestExpireAcceptRejectAutoAccepts() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.playToAnswerSubmitted()

	s.hooks.OnExpire(s.ctx, s.chatID, timers.KindAcceptReject)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(models.PhasePlaying, summary.Phase, "reveal contest is skipped")
	s.Equal(s.p2, summary.CurrentPlayerID)
	s.Equal(1, s.findEntry(summary.Summary, s.p2).Points, "floor rating awarded")
}

func (s *GameServiceTestSuite) TestExpireDiceRollAutoRolls() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.playToRolling(3)

	// Asker rolled, answerer went quiet
	_, err := s.svc.RollDice(s.ctx, &game.RollDiceInput{ChatID: s.chatID, PlayerID: s.p1, Value: 6})
	s.Require().NoError(err)

	s.mockRoller.EXPECT().RollD6().Return(2)

	s.hooks.OnExpire(s.ctx, s.chatID, timers.KindDiceRoll)

	summary, err := s.svc.GetSummary(s.ctx, &game.GetSummaryInput{ChatID: s.chatID})
	s.NoError(err)
	s.Equal(models.PhasePlaying, summary.Phase)
	s.Equal(s.p2, summary.CurrentPlayerID)
}

func (s *GameServiceTestSuite) TestTimerStillValid() {
	s.allowSends()
	s.allowStats()
	s.allowTimers()

	s.startGame(s.p1, s.p2)

	s.True(s.hooks.TimerStillValid(s.chatID, timers.KindAsking))
	s.False(s.hooks.TimerStillValid(s.chatID, timers.KindAnswering))
	s.False(s.hooks.TimerStillValid(s.chatID, timers.KindDiceRoll))
	s.False(s.hooks.TimerStillValid("no-such-chat", timers.KindAsking))

	_, err := s.svc.AskQuestion(s.ctx, &game.AskQuestionInput{ChatID: s.chatID, PlayerID: s.p1, Question: "q"})
	s.Require().NoError(err)
	_, err = s.svc.ChooseAnswerer(s.ctx, &game.ChooseAnswererInput{ChatID: s.chatID, PlayerID: s.p1, TargetID: s.p2})
	s.Require().NoError(err)

	s.False(s.hooks.TimerStillValid(s.chatID, timers.KindAsking), "asking window closed")
	s.True(s.hooks.TimerStillValid(s.chatID, timers.KindAnswering))
	s.False(s.hooks.TimerStillValid(s.chatID, timers.KindAcceptReject), "no answer on the table yet")
}
