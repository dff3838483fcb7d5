package game

import (
	"sync"
	"time"

	"github.com/frostveil/frozenbridges/internal/models"
)

// Instance is one running match, scoped to one chat room. All turn-scoped
// state lives here; the service serialises access through mu, so the methods
// below assume the caller holds the lock.
type Instance struct {
	mu sync.Mutex

	// ID is a unique identifier for logging and summaries
	ID string

	// ChatID is the chat room this game belongs to
	ChatID string

	phase  models.Phase
	roster *Roster

	currentPlayerID string
	answererID      string

	question       string
	answer         string
	answerAccepted bool

	askerRoll    int
	answererRoll int

	changeRequestsUsed int
	changeAnswererID   string
	changePending      bool

	vote *Vote

	startedAt time.Time
}

// RollOutcome is the result of comparing the two reveal rolls
type RollOutcome int

const (
	// RollRevealed means the asker rolled higher and the question goes public
	RollRevealed RollOutcome = iota

	// RollHidden means the answerer rolled higher and the question stays secret
	RollHidden

	// RollTie means both rolls were cleared for a retry
	RollTie
)

func newInstance(id, chatID string) *Instance {
	return &Instance{
		ID:     id,
		ChatID: chatID,
		phase:  models.PhaseWaiting,
		roster: NewRoster(),
	}
}

// start moves the game from WAITING to PLAYING and seats the first player.
// Requires at least two active players.
func (g *Instance) start(now time.Time) error {
	if g.phase != models.PhaseWaiting {
		return ErrInvalidPhase
	}
	if g.roster.ActiveCount() < 2 {
		return ErrNotEnoughPlayers
	}

	g.startedAt = now
	g.phase = models.PhasePlaying
	g.nextTurn()
	return nil
}

// nextTurn rotates currentPlayerID to the next id in the active queue,
// wrapping to the front. If the current player is no longer queued (left
// mid-turn) the rotation resets to the front; if the queue is empty the
// current player becomes nobody and the caller must end the game. All
// turn-scoped state is cleared.
func (g *Instance) nextTurn() {
	queue := g.roster.Queue()

	switch {
	case len(queue) == 0:
		g.currentPlayerID = ""
	case g.currentPlayerID == "":
		g.currentPlayerID = queue[0]
	default:
		idx := -1
		for i, id := range queue {
			if id == g.currentPlayerID {
				idx = i
				break
			}
		}
		if idx < 0 {
			g.currentPlayerID = queue[0]
		} else {
			g.currentPlayerID = queue[(idx+1)%len(queue)]
		}
	}

	g.clearTurnState()
}

// clearTurnState wipes all turn-scoped fields and resets the phase to
// PLAYING. It never touches the armed timer: a running countdown task
// re-checks the phase itself and exits, and cancellation belongs to whichever
// code path arms the next timer.
func (g *Instance) clearTurnState() {
	g.question = ""
	g.answer = ""
	g.answerAccepted = false
	g.answererID = ""
	g.askerRoll = 0
	g.answererRoll = 0
	g.changeRequestsUsed = 0
	g.changeAnswererID = ""
	g.changePending = false
	g.phase = models.PhasePlaying
}

// handlePlayerLeave deactivates a player mid-game and repairs the turn state.
// If the current asker left, the turn state is cleared and the caller must
// advance the turn. If the answerer left, the answer binding is dropped and
// the phase falls back to PLAYING so the asker can pick a new answerer.
func (g *Instance) handlePlayerLeave(id string) (wasCurrent bool) {
	wasCurrent = id == g.currentPlayerID
	wasAnswerer := id == g.answererID

	g.roster.Remove(id)

	if wasCurrent {
		g.clearTurnState()
	} else if wasAnswerer {
		g.answererID = ""
		g.answer = ""
		g.answerAccepted = false
		g.changePending = false
		g.phase = models.PhasePlaying
	}

	return wasCurrent
}

// canAsk validates that uid may ask a question right now
func (g *Instance) canAsk(uid string) error {
	if g.phase != models.PhasePlaying {
		return ErrInvalidPhase
	}
	if g.currentPlayerID != uid {
		return ErrNotYourTurn
	}
	if g.question != "" {
		return ErrQuestionAlreadyAsked
	}
	return nil
}

// canAnswer validates that uid may submit an answer right now
func (g *Instance) canAnswer(uid string) error {
	if g.phase != models.PhaseAnswering {
		return ErrInvalidPhase
	}
	if g.answererID != uid {
		return ErrNotAnswerer
	}
	if g.answer != "" {
		return ErrAnswerAlreadySubmitted
	}
	return nil
}

// canDecide validates that uid may accept or reject the submitted answer
func (g *Instance) canDecide(uid string) error {
	if g.phase != models.PhaseAnswering {
		return ErrInvalidPhase
	}
	if g.currentPlayerID != uid {
		return ErrNotYourTurn
	}
	if g.answer == "" {
		return ErrNoAnswer
	}
	if g.answerAccepted {
		return ErrAnswerAlreadyAccepted
	}
	return nil
}

// canRoll validates that uid may roll right now
func (g *Instance) canRoll(uid string) error {
	if g.phase != models.PhaseRolling {
		return ErrInvalidPhase
	}
	if uid != g.currentPlayerID && uid != g.answererID {
		return ErrNotInvolvedInTurn
	}
	if uid == g.currentPlayerID && g.askerRoll != 0 {
		return ErrAlreadyRolled
	}
	if uid == g.answererID && g.answererRoll != 0 {
		return ErrAlreadyRolled
	}
	return nil
}

// recordRoll stores a roll for whichever side uid plays. Validation must
// already have passed.
func (g *Instance) recordRoll(uid string, value int) {
	if uid == g.currentPlayerID {
		g.askerRoll = value
	} else {
		g.answererRoll = value
	}
}

// bothRolled reports whether resolution may proceed
func (g *Instance) bothRolled() bool {
	return g.askerRoll != 0 && g.answererRoll != 0
}

// resolveRolls compares the two rolls. On a tie both rolls are cleared and
// the phase stays ROLLING for a true retry of the same contest.
func (g *Instance) resolveRolls() RollOutcome {
	switch {
	case g.askerRoll > g.answererRoll:
		return RollRevealed
	case g.answererRoll > g.askerRoll:
		return RollHidden
	default:
		g.askerRoll = 0
		g.answererRoll = 0
		return RollTie
	}
}

// bindChangeAnswerer scopes the question-change counter to the given
// answerer, resetting it when the answerer changed mid-turn
func (g *Instance) bindChangeAnswerer(id string) {
	if g.changeAnswererID != "" && g.changeAnswererID != id {
		g.changeRequestsUsed = 0
	}
	g.changeAnswererID = id
}

// currentPlayer returns the current asker, or nil
func (g *Instance) currentPlayer() *models.Player {
	if g.currentPlayerID == "" {
		return nil
	}
	return g.roster.Get(g.currentPlayerID)
}

// answerer returns the designated answerer, or nil
func (g *Instance) answerer() *models.Player {
	if g.answererID == "" {
		return nil
	}
	return g.roster.Get(g.answererID)
}

// playerActive reports whether id is an active player here. Takes the
// instance lock itself: it serves the cross-room membership scan.
func (g *Instance) playerActive(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.roster.Get(id)
	return p != nil && p.IsActive
}
