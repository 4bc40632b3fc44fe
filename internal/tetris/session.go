package tetris

import (
	"math/rand"
	"time"
)

// DropInterval is the gravity period.
const DropInterval = 500 * time.Millisecond

type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Command is a discrete player input.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandDown
	CommandRotate
)

// StepResult describes what one drop step did.
type StepResult struct {
	Moved    bool
	Locked   bool
	Cleared  int
	GameOver bool
}

// Session is a single game: one board and one falling piece. It is not
// safe for concurrent use.
type Session struct {
	board    Board
	current  Piece
	state    State
	lastDrop time.Time
	lines    int
	rng      *rand.Rand
}

// NewSession starts a game on an empty board with its first piece at the
// spawn anchor. now seeds the drop timer.
func NewSession(rng *rand.Rand, now time.Time) *Session {
	s := &Session{
		rng:      rng,
		lastDrop: now,
	}
	s.Spawn()
	return s
}

func SpawnX() int {
	return Width/2 - 2
}

// Spawn replaces the active piece with a random one at the spawn anchor.
// It does not check whether the new piece fits.
func (s *Session) Spawn() {
	p := RandomPiece(s.rng)
	p.X = SpawnX()
	p.Y = 0
	s.current = p
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Over() bool {
	return s.state == StateGameOver
}

// Lines is the total number of rows cleared so far.
func (s *Session) Lines() int {
	return s.lines
}

func (s *Session) Current() Piece {
	return s.current
}

// Move shifts the active piece by (dx, dy) if the target is valid.
func (s *Session) Move(dx, dy int) bool {
	if s.Over() {
		return false
	}
	x := s.current.X + dx
	y := s.current.Y + dy
	if !s.board.IsValidPosition(s.current, x, y) {
		return false
	}
	s.current.X = x
	s.current.Y = y
	return true
}

// Rotate turns the active piece clockwise in place when the result fits.
// A blocked rotation is dropped without any kick attempt.
func (s *Session) Rotate() {
	s.tryRotate()
}

func (s *Session) tryRotate() bool {
	if s.Over() {
		return false
	}
	rotated := s.current.Rotated()
	if !s.board.IsValidPosition(rotated, s.current.X, s.current.Y) {
		return false
	}
	s.current = rotated
	return true
}

// Handle applies a player command immediately. It reports whether the
// active piece changed. The drop timer is not touched.
func (s *Session) Handle(cmd Command) bool {
	switch cmd {
	case CommandLeft:
		return s.Move(-1, 0)
	case CommandRight:
		return s.Move(1, 0)
	case CommandDown:
		return s.Move(0, 1)
	case CommandRotate:
		return s.tryRotate()
	default:
		return false
	}
}

// Tick runs a drop step if at least DropInterval has elapsed since the
// last one.
func (s *Session) Tick(now time.Time) StepResult {
	if s.Over() || now.Sub(s.lastDrop) < DropInterval {
		return StepResult{}
	}
	result := s.Step()
	s.lastDrop = now
	return result
}

// Step applies gravity once. When the piece cannot descend it is locked,
// full rows are cleared and a new piece is spawned; a spawn that does not
// fit ends the game.
func (s *Session) Step() StepResult {
	if s.Over() {
		return StepResult{}
	}
	if s.Move(0, 1) {
		return StepResult{Moved: true}
	}
	s.board.Lock(s.current)
	cleared := s.board.ClearLines()
	s.lines += cleared
	s.Spawn()
	result := StepResult{Locked: true, Cleared: cleared}
	if !s.board.IsValidPosition(s.current, s.current.X, s.current.Y) {
		s.state = StateGameOver
		result.GameOver = true
	}
	return result
}

// Snapshot returns a copy of the visible game state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board: s.board,
		Piece: s.current,
		State: s.state,
		Lines: s.lines,
	}
}
