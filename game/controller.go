package game

import (
	"io"
	"log"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/tile"
)

// Piece is the falling piece. Col and Row locate the top-left corner of its
// bounding box in board coordinates.
type Piece struct {
	Type     tile.Type
	Col      int
	Row      int
	Rotation int
}

// CooldownMode selects when the post-lock soft-drop cooldown counts down.
type CooldownMode int

const (
	// CooldownPerFrame decrements once per frame while the game is active
	// and unpaused.
	CooldownPerFrame CooldownMode = iota
	// CooldownPerStep decrements once per gravity step.
	CooldownPerStep
)

// Controller runs the spawn, fall, lock, clear and respawn cycle and applies
// player intents. It is not safe for concurrent use; drive it from one loop.
type Controller struct {
	board        *board.Board
	timer        Timer
	random       Randomizer
	logger       *log.Logger
	debug        bool
	cooldownMode CooldownMode

	session  Session
	current  Piece
	next     tile.Type
	cooldown int

	softDropHeld    bool
	softDropEngaged bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRandomizer replaces the default uniform randomizer.
func WithRandomizer(r Randomizer) Option {
	return func(c *Controller) { c.random = r }
}

// WithBoard supplies the board the controller plays on.
func WithBoard(b *board.Board) Option {
	return func(c *Controller) { c.board = b }
}

// WithLogger sets the logger for session events. Pass nil to silence them.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		c.logger = l
	}
}

// WithDebug enables per-lock debug logging.
func WithDebug(debug bool) Option {
	return func(c *Controller) { c.debug = debug }
}

// WithCooldownMode selects how the lock cooldown counts down.
func WithCooldownMode(mode CooldownMode) Option {
	return func(c *Controller) { c.cooldownMode = mode }
}

// New creates a controller waiting for its first Restart. The timer is paused
// and set to the initial gravity rate.
func New(timer Timer, opts ...Option) *Controller {
	c := &Controller{
		timer:   timer,
		logger:  log.Default(),
		session: newSession(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.board == nil {
		c.board = board.New()
	}
	if c.random == nil {
		c.random = NewUniformRandomizer(0)
	}

	c.timer.SetCyclesPerSecond(c.session.speed)
	c.timer.SetPaused(true)
	return c
}

// State derives the coarse state from the session flags.
func (c *Controller) State() State {
	switch {
	case c.session.newGame:
		return Idle
	case c.session.gameOver:
		return GameOver
	case c.session.paused:
		return Paused
	}
	return Active
}

func (c *Controller) Session() *Session   { return &c.session }
func (c *Controller) Board() *board.Board { return c.board }
func (c *Controller) Piece() Piece        { return c.current }
func (c *Controller) Next() tile.Type     { return c.next }
func (c *Controller) Cooldown() int       { return c.cooldown }

// Apply performs one player intent. Intents that are not legal in the current
// state, or that would move the piece into an invalid position, are ignored.
func (c *Controller) Apply(intent Intent) {
	switch intent {
	case MoveLeft:
		c.Shift(-1)
	case MoveRight:
		c.Shift(1)
	case RotateCW:
		c.Rotate(CW)
	case RotateCCW:
		c.Rotate(CCW)
	case SoftDropStart:
		c.softDropHeld = true
		c.engageSoftDrop()
	case SoftDropStop:
		c.releaseSoftDrop()
	case TogglePause:
		c.TogglePause()
	case Restart:
		c.Restart()
	}
}

// Frame runs one iteration of the outer loop: advance the clock, take at most
// one gravity step, re-engage a held soft drop and count down the cooldown.
func (c *Controller) Frame() {
	c.timer.Update()

	if c.State() != Active {
		return
	}

	if c.timer.HasElapsedCycle() {
		c.step()
	}

	if c.State() != Active {
		return
	}

	if c.cooldownMode == CooldownPerFrame && c.cooldown > 0 {
		c.cooldown--
	}
	c.engageSoftDrop()
}

// Restart begins a new game from Idle or GameOver.
func (c *Controller) Restart() {
	if !c.session.newGame && !c.session.gameOver {
		return
	}

	c.session.start()
	c.board.Clear()
	c.cooldown = 0
	c.softDropEngaged = false
	c.next = c.random.Next()

	c.timer.Reset()
	c.timer.SetCyclesPerSecond(c.session.speed)
	c.timer.SetPaused(false)

	c.logger.Println("[INFO] new game started")
	c.spawn()
}

// TogglePause pauses or resumes an active game.
func (c *Controller) TogglePause() {
	if c.session.gameOver || c.session.newGame {
		return
	}
	c.session.paused = !c.session.paused
	c.timer.SetPaused(c.session.paused)
}

// Shift moves the piece dx columns if the destination is free.
func (c *Controller) Shift(dx int) {
	if c.State() != Active {
		return
	}
	p := c.current
	if c.board.IsValidAndEmpty(p.Type, p.Col+dx, p.Row, p.Rotation) {
		c.current.Col += dx
	}
}

// Rotate turns the piece a quarter turn in dir.
func (c *Controller) Rotate(dir Direction) {
	if c.State() != Active {
		return
	}
	rotation := (c.current.Rotation + 1) % tile.RotationCount
	if dir == CCW {
		rotation = (c.current.Rotation + tile.RotationCount - 1) % tile.RotationCount
	}
	c.rotateTo(rotation)
}

// rotateTo clamps the rotated bounding box back inside the board edges using
// the target rotation's insets and commits only if the result is free.
func (c *Controller) rotateTo(rotation int) {
	p := c.current
	typ := p.Type
	dim := typ.Dimension()

	left := typ.LeftInset(rotation)
	right := typ.RightInset(rotation)
	top := typ.TopInset(rotation)
	bottom := typ.BottomInset(rotation)

	col, row := p.Col, p.Row

	if col < -left {
		col = -left
	} else if col+dim-1-right >= board.ColCount {
		col = board.ColCount - dim + right
	}

	if row < -top {
		row = -top
	} else if row+dim-1-bottom >= board.RowCount {
		row = board.RowCount - dim + bottom
	}

	if c.board.IsValidAndEmpty(typ, col, row, rotation) {
		c.current = Piece{Type: typ, Col: col, Row: row, Rotation: rotation}
	}
}

// step is one gravity cycle: fall a row or lock in place.
func (c *Controller) step() {
	if c.cooldownMode == CooldownPerStep && c.cooldown > 0 {
		c.cooldown--
	}

	p := c.current
	if c.board.IsValidAndEmpty(p.Type, p.Col, p.Row+1, p.Rotation) {
		c.current.Row++
		return
	}
	c.lock()
}

func (c *Controller) lock() {
	p := c.current
	c.board.AddPiece(p.Type, p.Col, p.Row, p.Rotation)
	cleared := c.board.CheckLines()
	c.session.recordLock(cleared)

	if c.debug {
		c.logger.Printf("[DEBUG] locked %s at (%d,%d) rot %d, cleared %d, score %d, speed %.3f",
			p.Type, p.Col, p.Row, p.Rotation, cleared, c.session.score, c.session.speed)
	}

	c.timer.SetCyclesPerSecond(c.session.speed)
	c.timer.Reset()
	c.softDropEngaged = false
	c.cooldown = LockCooldownFrames

	c.spawn()
}

func (c *Controller) spawn() {
	typ := c.next
	c.current = Piece{
		Type: typ,
		Col:  typ.SpawnColumn(),
		Row:  typ.SpawnRow(),
	}
	c.next = c.random.Next()
	c.session.recordSpawn(typ)

	if !c.board.IsValidAndEmpty(typ, c.current.Col, c.current.Row, c.current.Rotation) {
		c.session.gameOver = true
		c.timer.SetPaused(true)
		c.logger.Printf("[INFO] game over: score=%d level=%d lines=%d", c.session.score, c.session.level, c.session.lines)
	}
}

func (c *Controller) engageSoftDrop() {
	if !c.softDropHeld || c.softDropEngaged || c.cooldown > 0 || c.State() != Active {
		return
	}
	c.timer.SetCyclesPerSecond(SoftDropRate)
	c.softDropEngaged = true
}

// releaseSoftDrop restores the session's gravity rate and starts the clock
// fresh at that rate.
func (c *Controller) releaseSoftDrop() {
	c.softDropHeld = false
	c.softDropEngaged = false
	c.timer.SetCyclesPerSecond(c.session.speed)
	c.timer.Reset()
}

// GhostRow returns the row the current piece would lock at if dropped now.
func (c *Controller) GhostRow() int {
	p := c.current
	if !p.Type.Valid() {
		return p.Row
	}
	return c.board.DropRow(p.Type, p.Col, p.Row, p.Rotation)
}
