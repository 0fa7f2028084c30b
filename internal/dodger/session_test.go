package dodger

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/storage"
)

type fakeStore struct {
	saved []int
	err   error
}

func (f *fakeStore) Save(score int) error {
	f.saved = append(f.saved, score)
	return f.err
}

type fakeJukebox struct {
	calls int
	err   error
}

func (f *fakeJukebox) Update() error {
	f.calls++
	return f.err
}

func newTestSession(opts Options) *Session {
	if opts.Config.TickRate == 0 {
		opts.Config = config.DefaultDodgerConfig()
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	return NewSession(opts)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// crash places the middle racer on the player and steps once.
func crash(s *Session) {
	r := s.Racer(LaneMiddle)
	r.Spawn()
	r.position = MaxDepth
	s.Step(input())
}

func TestLogoToTitle(t *testing.T) {
	s := newTestSession(Options{})

	for i := 0; i < 121; i++ {
		s.Step(input())
		if s.Phase() != PhaseLogo {
			t.Fatalf("Left logo after %d frames, expected 122", i+1)
		}
	}
	s.Step(input())
	if s.Phase() != PhaseTitle {
		t.Errorf("Phase after 122 frames = %v, expected title", s.Phase())
	}
}

func TestTitleWaitsForStart(t *testing.T) {
	s := newTestSession(Options{})
	s.phase = PhaseTitle

	for i := 0; i < 10; i++ {
		s.Step(input(core.ActionMoveLeft, core.ActionRetry))
	}
	if s.Phase() != PhaseTitle {
		t.Fatalf("Title should ignore everything but Start, got %v", s.Phase())
	}

	s.Step(input(core.ActionStart))
	if s.Phase() != PhaseGame {
		t.Errorf("Phase after Start = %v, expected game", s.Phase())
	}
}

func TestFirstSpawn(t *testing.T) {
	s := newTestSession(Options{})
	s.phase = PhaseGame

	if s.SpawnThreshold() != 120 {
		t.Fatalf("SpawnThreshold() = %d, expected 120", s.SpawnThreshold())
	}

	spawned := func() int {
		n := 0
		for _, g := range LaneGroups {
			if s.Racer(g).Spawned() {
				n++
			}
		}
		return n
	}

	for i := 0; i < 121; i++ {
		s.Step(input())
		if spawned() != 0 {
			t.Fatalf("Racer spawned on frame %d, expected 122", i+1)
		}
	}
	s.Step(input())
	if spawned() != 1 {
		t.Errorf("Spawned racers after frame 122 = %d, expected 1", spawned())
	}
}

func TestDodgeScoresAndSpeedsUp(t *testing.T) {
	s := newTestSession(Options{})
	s.phase = PhaseGame

	r := s.Racer(LaneLeft)
	r.Spawn()
	for i := 0; i < 304; i++ {
		if s.driveRacer(r) {
			t.Fatal("Left racer should not hit the middle player")
		}
	}
	if s.Score() != 0 || r.Position() != MaxDepth {
		t.Fatalf("Before pass: score=%d position=%d, expected 0 and %d", s.Score(), r.Position(), MaxDepth)
	}

	s.driveRacer(r)
	if s.Score() != 1 {
		t.Errorf("Score after pass = %d, expected 1", s.Score())
	}
	if r.Spawned() || r.Position() != 0 {
		t.Errorf("Passed racer should be recycled, spawned=%v position=%d", r.Spawned(), r.Position())
	}
	if r.Interval() != 55 {
		t.Errorf("Interval after pass = %d, expected 55", r.Interval())
	}
}

func TestFixedPresetKeepsInterval(t *testing.T) {
	cfg := config.DefaultDodgerConfig()
	config.ApplyDodgerPreset(&cfg, config.DifficultyFixed)
	s := newTestSession(Options{Config: cfg})
	s.phase = PhaseGame

	r := s.Racer(LaneRight)
	r.Spawn()
	for i := 0; i < 305; i++ {
		s.driveRacer(r)
	}
	if s.Score() != 1 {
		t.Fatalf("Score = %d, expected 1", s.Score())
	}
	if r.Interval() != 60 {
		t.Errorf("Interval = %d, expected 60 without auto speed-up", r.Interval())
	}
}

func TestCollisionEndsRun(t *testing.T) {
	s := newTestSession(Options{})
	s.phase = PhaseGame

	r := s.Racer(LaneMiddle)
	r.Spawn()
	r.position = MaxDepth
	if !s.driveRacer(r) {
		t.Fatal("driveRacer should report the collision")
	}
	if r.Position() != MaxDepth {
		t.Errorf("Colliding racer moved to %d", r.Position())
	}

	res := s.Step(input())
	if s.Phase() != PhaseEnd {
		t.Fatalf("Phase after collision = %v, expected end", s.Phase())
	}
	if !res.State.GameOver {
		t.Error("State should report GameOver on the end screen")
	}
	for _, g := range LaneGroups {
		if s.Racer(g).Spawned() || s.Racer(g).Interval() != 60 {
			t.Errorf("%v racer not reset on end", g)
		}
	}
}

func TestRetryStartsNewRun(t *testing.T) {
	s := newTestSession(Options{})
	s.phase = PhaseGame
	s.score = 4
	crash(s)

	if s.Phase() != PhaseEnd {
		t.Fatalf("Phase = %v, expected end", s.Phase())
	}
	if st := s.State(); st.LastScore != 4 || st.Score != 0 {
		t.Errorf("State after crash: last=%d score=%d, expected 4 and 0", st.LastScore, st.Score)
	}

	s.Step(input(core.ActionStart))
	if s.Phase() != PhaseEnd {
		t.Fatal("End screen should only react to Retry")
	}
	s.Step(input(core.ActionRetry))
	if s.Phase() != PhaseGame {
		t.Errorf("Phase after Retry = %v, expected game", s.Phase())
	}
}

func TestHighscoreOnlySavedWhenBeaten(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(Options{Store: store})

	runs := []struct {
		score     int
		wantSaved []int
		wantBest  int
	}{
		{5, []int{5}, 5},
		{3, []int{5}, 5},
		{5, []int{5}, 5},
		{8, []int{5, 8}, 8},
	}

	for _, run := range runs {
		s.phase = PhaseGame
		s.score = run.score
		crash(s)

		if len(store.saved) != len(run.wantSaved) {
			t.Fatalf("After run of %d: saved %v, expected %v", run.score, store.saved, run.wantSaved)
		}
		for i := range store.saved {
			if store.saved[i] != run.wantSaved[i] {
				t.Errorf("After run of %d: saved %v, expected %v", run.score, store.saved, run.wantSaved)
			}
		}
		if s.Highscore() != run.wantBest {
			t.Errorf("Highscore() = %d, expected %d", s.Highscore(), run.wantBest)
		}
	}
}

func TestHighscoreSaveErrorKeepsPlaying(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	s := newTestSession(Options{Store: store})
	s.phase = PhaseGame
	s.score = 2
	crash(s)

	if s.Phase() != PhaseEnd {
		t.Errorf("Phase = %v, expected end", s.Phase())
	}
	if s.Highscore() != 2 {
		t.Errorf("Highscore() = %d, expected 2 in memory", s.Highscore())
	}
}

func TestHighscoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.txt")
	store, err := storage.OpenHighscore(path)
	if err != nil {
		t.Fatal(err)
	}

	best, err := store.Load()
	if err != nil || best != 0 {
		t.Fatalf("Load() on fresh file = %d, %v", best, err)
	}

	s := newTestSession(Options{Store: store, Highscore: best})
	s.phase = PhaseGame
	s.score = 5
	crash(s)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5" {
		t.Errorf("File content = %q, expected %q", data, "5")
	}

	// Restart with the stored value and play a worse run
	best, _ = store.Load()
	s = newTestSession(Options{Store: store, Highscore: best})
	s.phase = PhaseGame
	s.score = 3
	crash(s)

	data, _ = os.ReadFile(path)
	if string(data) != "5" {
		t.Errorf("File content after worse run = %q, expected %q", data, "5")
	}
	if s.Highscore() != 5 {
		t.Errorf("Highscore() = %d, expected 5", s.Highscore())
	}
}

func TestSpeedUpKeyFloor(t *testing.T) {
	s := newTestSession(Options{})
	s.phase = PhaseGame

	for i := 0; i < 20; i++ {
		s.Step(input(core.ActionSpeedUp))
	}
	for _, g := range LaneGroups {
		if got := s.Racer(g).Interval(); got != 10 {
			t.Errorf("%v interval = %d, expected 10", g, got)
		}
	}
	if s.MPH() != 160 {
		t.Errorf("MPH() = %d, expected 160", s.MPH())
	}
	if s.SpawnThreshold() != 20 {
		t.Errorf("SpawnThreshold() = %d, expected 20", s.SpawnThreshold())
	}
}

func TestPlayerMovesDuringGame(t *testing.T) {
	s := newTestSession(Options{})
	s.phase = PhaseGame

	s.Step(input(core.ActionMoveLeft))
	if s.Player().Rect().X != 192 {
		t.Errorf("X after left = %v, expected 192", s.Player().Rect().X)
	}

	// Left wins when both are held
	s.Step(input(core.ActionMoveLeft, core.ActionMoveRight))
	if s.Player().Rect().X != 192 {
		t.Errorf("X after left+right = %v, expected 192", s.Player().Rect().X)
	}

	s.Step(input(core.ActionMoveRight))
	s.Step(input(core.ActionMoveRight))
	s.Step(input(core.ActionMoveRight))
	if s.Player().Rect().X != 576 {
		t.Errorf("X after three rights = %v, expected 576", s.Player().Rect().X)
	}
}

func TestHUDStats(t *testing.T) {
	s := newTestSession(Options{})
	s.phase = PhaseGame

	if s.MPH() != 60 {
		t.Errorf("Initial MPH() = %d, expected 60", s.MPH())
	}

	for i := 0; i < 61; i++ {
		s.Step(input())
	}
	// distance is computed from the frame counter before it advances
	if st := s.State(); st.Distance != 60 {
		t.Errorf("Distance after 61 frames = %d, expected 60", st.Distance)
	}
}

func TestMusicUpdatedEveryPhase(t *testing.T) {
	jb := &fakeJukebox{}
	s := newTestSession(Options{Music: jb})

	s.Step(input())
	s.phase = PhaseTitle
	s.Step(input())
	s.phase = PhaseGame
	s.Step(input())
	s.phase = PhaseEnd
	s.Step(input())

	if jb.calls != 4 {
		t.Errorf("Jukebox updated %d times, expected 4", jb.calls)
	}
}

func TestFailingJukeboxIsDropped(t *testing.T) {
	jb := &fakeJukebox{err: errors.New("stream closed")}
	s := newTestSession(Options{Music: jb})

	for i := 0; i < 5; i++ {
		s.Step(input())
	}
	if jb.calls != 1 {
		t.Errorf("Failing jukebox updated %d times, expected 1", jb.calls)
	}
}

func TestSessionDeterminism(t *testing.T) {
	// Same seed and inputs produce identical runs
	run := func() []core.GameState {
		s := newTestSession(Options{Seed: 12345})
		s.phase = PhaseGame
		inputs := rand.New(rand.NewSource(7))
		var states []core.GameState
		for i := 0; i < 3000; i++ {
			in := randomInput(inputs)
			if s.Phase() == PhaseEnd {
				in.Set(core.ActionRetry)
			}
			states = append(states, s.Step(in).State)
		}
		return states
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Runs diverged at frame %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnPicksEveryLane(t *testing.T) {
	s := newTestSession(Options{Seed: 7})
	s.phase = PhaseGame

	picks := map[LaneGroup]int{}
	for i := 0; i < 300; i++ {
		for _, g := range LaneGroups {
			s.Racer(g).Reset()
		}
		s.spawnTimer = s.SpawnThreshold() + 1
		s.Step(input())

		spawned := 0
		for _, g := range LaneGroups {
			if s.Racer(g).Spawned() {
				picks[g]++
				spawned++
			}
		}
		if spawned != 1 {
			t.Fatalf("Crossing %d: %d racers spawned, expected 1", i, spawned)
		}
	}

	for _, g := range LaneGroups {
		if picks[g] == 0 {
			t.Errorf("Lane %v was never picked in 300 spawns: %v", g, picks)
		}
	}
}

func TestSessionInvariants(t *testing.T) {
	s := newTestSession(Options{Seed: 99})
	s.phase = PhaseGame
	inputs := rand.New(rand.NewSource(3))
	lanesX := map[float64]bool{192: true, 384: true, 576: true}

	for frame := 0; frame < 10000; frame++ {
		before := [3]bool{}
		for _, g := range LaneGroups {
			before[g] = s.Racer(g).Spawned()
		}

		in := randomInput(inputs)
		if s.Phase() == PhaseEnd {
			in.Set(core.ActionRetry)
		}
		s.Step(in)

		newSpawns := 0
		for _, g := range LaneGroups {
			r := s.Racer(g)
			if r.Position() < 0 || r.Position() > MaxDepth {
				t.Fatalf("Frame %d: %v position %d out of range", frame, g, r.Position())
			}
			if r.Interval() < 10 || r.Interval() > 60 {
				t.Fatalf("Frame %d: %v interval %d out of range", frame, g, r.Interval())
			}
			if !before[g] && r.Spawned() {
				newSpawns++
			}
		}
		if newSpawns > 1 {
			t.Fatalf("Frame %d: %d racers spawned at once", frame, newSpawns)
		}
		if x := s.Player().Rect().X; !lanesX[x] {
			t.Fatalf("Frame %d: player at x=%v", frame, x)
		}
		if s.Score() < 0 || s.Highscore() < 0 {
			t.Fatalf("Frame %d: negative score", frame)
		}
	}
}

func randomInput(rng *rand.Rand) core.InputFrame {
	in := core.NewInputFrame()
	switch rng.Intn(10) {
	case 0:
		in.Set(core.ActionMoveLeft)
	case 1:
		in.Set(core.ActionMoveRight)
	case 2:
		in.Set(core.ActionSpeedUp)
	}
	return in
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseLogo, "logo"},
		{PhaseTitle, "title"},
		{PhaseGame, "game"},
		{PhaseEnd, "end"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, expected %q", tt.phase, got, tt.want)
		}
	}
}
