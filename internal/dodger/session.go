package dodger

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// Phase is a state of the session state machine.
type Phase int

const (
	PhaseLogo Phase = iota
	PhaseTitle
	PhaseGame
	PhaseEnd
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLogo:
		return "logo"
	case PhaseTitle:
		return "title"
	case PhaseGame:
		return "game"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Options configures a new Session.
type Options struct {
	Config    config.DodgerConfig
	Seed      int64          // 0 means seed from the clock
	Highscore int            // Best score loaded at startup
	Store     HighscoreSaver // Optional; nil keeps the highscore in memory only
	Music     Jukebox        // Optional; nil runs silently
	Logger    *log.Logger    // Optional; nil discards log output
}

// Session holds all mutable game state and advances it one frame at a time.
type Session struct {
	cfg    config.DodgerConfig
	lanes  *LaneTable
	player *Player
	racers [3]*Racer

	phase        Phase
	score        int
	lastScore    int
	highscore    int
	spawnTimer   int
	speed        int // Slowest racer interval, drives the HUD
	distance     int
	frameCounter int
	fps          int

	rng    *rand.Rand
	store  HighscoreSaver
	music  Jukebox
	logger *log.Logger
}

// NewSession builds the lane table, the player and the three racers, and
// starts the state machine on the logo screen.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	lanes := NewLaneTable(cfg.Window.Width, cfg.Window.Height(), cfg.Lanes.Columns, cfg.Lanes.Rows)
	s := &Session{
		cfg:       cfg,
		lanes:     lanes,
		player:    NewPlayer(lanes, cfg.Player.StartColumn, cfg.Player.StartRow),
		phase:     PhaseLogo,
		highscore: opts.Highscore,
		speed:     cfg.Racers.BaseInterval,
		fps:       cfg.TickRate,
		rng:       rand.New(rand.NewSource(seed)),
		store:     opts.Store,
		music:     opts.Music,
		logger:    logger,
	}
	for _, g := range LaneGroups {
		s.racers[g] = NewRacer(lanes, g, cfg.Racers.BaseInterval)
	}
	return s
}

// Step advances the session by one frame.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.updateMusic()

	switch s.phase {
	case PhaseLogo:
		s.stepLogo()
	case PhaseTitle:
		if in.Has(core.ActionStart) {
			s.setPhase(PhaseGame)
		}
	case PhaseGame:
		s.stepGame(in)
	case PhaseEnd:
		if in.Has(core.ActionRetry) {
			s.setPhase(PhaseGame)
		}
	}

	return core.StepResult{State: s.State()}
}

// updateMusic advances the playlist. A failing jukebox is dropped so one
// broken stream does not flood the log every frame.
func (s *Session) updateMusic() {
	if s.music == nil {
		return
	}
	if err := s.music.Update(); err != nil {
		s.logger.Error("music stopped", "error", err)
		s.music = nil
	}
}

func (s *Session) stepLogo() {
	if s.frameCounter > s.fps*s.cfg.Logo.Seconds {
		s.frameCounter = 0
		s.setPhase(PhaseTitle)
		return
	}
	s.frameCounter++
}

func (s *Session) stepGame(in core.InputFrame) {
	s.distance = s.MPH() * s.frameCounter / s.fps

	if in.Has(core.ActionSpeedUp) {
		for _, r := range s.racers {
			r.SpeedUp(s.cfg.Racers.IntervalStep, s.cfg.Racers.MinInterval)
		}
	}

	if s.spawnTimer > s.SpawnThreshold() {
		s.racers[s.rng.Intn(len(s.racers))].Spawn()
		s.spawnTimer = 0
	}

	s.speed = s.slowestInterval()

	if in.Has(core.ActionMoveLeft) {
		s.player.MoveLeft()
	} else if in.Has(core.ActionMoveRight) {
		s.player.MoveRight()
	}

	for _, r := range s.racers {
		if s.driveRacer(r) {
			s.logger.Debug("collision", "lane", r.Group(), "score", s.score)
			s.enterEnd()
			return
		}
	}

	s.spawnTimer++
	s.frameCounter++
}

// driveRacer runs one frame of a racer. Returns true if it hit the player,
// in which case the racer is left where the collision happened.
func (s *Session) driveRacer(r *Racer) bool {
	if !r.Spawned() {
		return false
	}
	r.Tick()

	if r.Collides(s.player.Rect()) {
		return true
	}

	if !r.Ready() {
		return false
	}
	r.Move()

	if r.Passed() {
		s.score++
		if s.cfg.Racers.AutoSpeedUp {
			r.SpeedUp(s.cfg.Racers.IntervalStep, s.cfg.Racers.PassFloor)
		}
		r.Recycle()
	}
	return false
}

// enterEnd runs the end-screen entry actions: racers are reset, a beaten
// highscore is persisted and the run counters start over.
func (s *Session) enterEnd() {
	for _, r := range s.racers {
		r.Reset()
	}

	if s.score > s.highscore {
		s.highscore = s.score
		s.logger.Info("new highscore", "score", s.highscore)
		if s.store != nil {
			if err := s.store.Save(s.highscore); err != nil {
				s.logger.Error("could not save highscore", "error", err)
			}
		}
	}

	s.lastScore = s.score
	s.score = 0
	s.spawnTimer = 0
	s.speed = s.cfg.Racers.BaseInterval
	s.distance = 0
	s.frameCounter = 0
	s.setPhase(PhaseEnd)
}

func (s *Session) setPhase(p Phase) {
	s.logger.Debug("phase", "from", s.phase, "to", p)
	s.phase = p
}

// slowestInterval returns the largest update interval among the racers.
func (s *Session) slowestInterval() int {
	slowest := 0
	for _, r := range s.racers {
		slowest = core.Max(slowest, r.Interval())
	}
	return slowest
}

// SpawnThreshold returns the number of frames between spawns: twice the
// slowest racer's interval.
func (s *Session) SpawnThreshold() int {
	return 2 * s.slowestInterval()
}

// MPH returns the cosmetic speed shown on the HUD.
func (s *Session) MPH() int {
	return s.cfg.Stats.MPHBase - s.speed*s.cfg.Stats.MPHPerInterval
}

// State returns a snapshot of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Phase:     s.phase.String(),
		Score:     s.score,
		LastScore: s.lastScore,
		Highscore: s.highscore,
		Speed:     s.MPH(),
		Distance:  s.distance,
		GameOver:  s.phase == PhaseEnd,
	}
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the dodges in the current run.
func (s *Session) Score() int { return s.score }

// Highscore returns the best score known to the session.
func (s *Session) Highscore() int { return s.highscore }

// Player returns the player.
func (s *Session) Player() *Player { return s.player }

// Racer returns the racer for a lane group.
func (s *Session) Racer(g LaneGroup) *Racer { return s.racers[g] }

// Lanes returns the shared lane table.
func (s *Session) Lanes() *LaneTable { return s.lanes }
