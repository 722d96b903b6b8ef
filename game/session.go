package game

import (
	"math"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tile"
)

// Session is the per-game progress owned by a Controller.
type Session struct {
	score    int
	level    int
	speed    float64
	lines    int
	placed   int
	paused   bool
	newGame  bool
	gameOver bool
	spawned  *intmap.Map[tile.Type, int]
}

func newSession() Session {
	return Session{
		speed:   InitialSpeed,
		newGame: true,
		spawned: intmap.New[tile.Type, int](tile.Count),
	}
}

func (s *Session) start() {
	s.score = 0
	s.level = 1
	s.speed = InitialSpeed
	s.lines = 0
	s.placed = 0
	s.paused = false
	s.newGame = false
	s.gameOver = false
	s.spawned.Clear()
}

// recordLock applies the scoring and speed curve for one locked piece.
func (s *Session) recordLock(cleared int) {
	s.score += LineScore(cleared)
	s.lines += cleared
	s.placed++
	s.speed += SpeedIncrement
	s.level = levelFor(s.speed)
}

func (s *Session) recordSpawn(typ tile.Type) {
	n, _ := s.spawned.Get(typ)
	s.spawned.Put(typ, n+1)
}

func levelFor(speed float64) int {
	return int(math.Floor(speed * LevelFactor))
}

func (s *Session) Score() int       { return s.score }
func (s *Session) Level() int       { return s.level }
func (s *Session) Speed() float64   { return s.speed }
func (s *Session) Lines() int       { return s.lines }
func (s *Session) Placed() int      { return s.placed }
func (s *Session) IsPaused() bool   { return s.paused }
func (s *Session) IsNewGame() bool  { return s.newGame }
func (s *Session) IsGameOver() bool { return s.gameOver }

// Spawned returns how many pieces of typ have entered play this game.
func (s *Session) Spawned(typ tile.Type) int {
	n, _ := s.spawned.Get(typ)
	return n
}
