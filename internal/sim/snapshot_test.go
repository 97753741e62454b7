package sim

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestStateIsDeepCopy(t *testing.T) {
	m := newTestMatch(t, ModeClassic, 5)
	m.Start()
	m.Update(testDt, Input{})

	s := m.State()
	s.Ball.X = -999
	s.Paddle.Y = -999
	*s.Score = 42

	if m.ball.X == -999 {
		t.Error("mutating the snapshot ball reached the live ball")
	}
	if m.paddles[RoleRight].Y == -999 {
		t.Error("mutating the snapshot paddle reached the live paddle")
	}
	if m.Score() == 42 {
		t.Error("mutating the snapshot score reached the live score")
	}
}

func TestStateShapePerMode(t *testing.T) {
	classic := newTestMatch(t, ModeClassic, 5).State()
	if classic.Paddle == nil || classic.Paddles != nil {
		t.Error("single-paddle mode should fill Paddle, not Paddles")
	}
	if classic.Lives != nil {
		t.Error("classic snapshot carries lives")
	}
	if classic.ShowReserveTeamOption != nil {
		t.Error("classic snapshot carries reserve flags")
	}

	fortress := newTestMatch(t, ModeFortress, 5).State()
	if fortress.Paddles == nil || fortress.Paddle != nil {
		t.Error("four-paddle mode should fill Paddles, not Paddle")
	}
	if fortress.Paddles.Left == nil || fortress.Paddles.Right == nil ||
		fortress.Paddles.Top == nil || fortress.Paddles.Bottom == nil {
		t.Error("fortress snapshot missing an edge paddle")
	}
	if fortress.Lives == nil || *fortress.Lives != 3 {
		t.Error("fortress snapshot missing lives")
	}
	if fortress.ShowReserveTeamOption == nil || fortress.ReserveTeamUsed == nil {
		t.Error("fortress snapshot missing reserve flags")
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	src := newTestMatch(t, ModeFortress, 31)
	src.Start()
	for i := 0; i < 45; i++ {
		src.Update(testDt, Input{})
	}

	raw, err := json.Marshal(src.State())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	dst := newTestMatch(t, ModeFortress, 99)
	dst.SetState(decoded)

	if !reflect.DeepEqual(src.State(), dst.State()) {
		t.Errorf("round-tripped state differs:\nsrc %+v\ndst %+v", src.State(), dst.State())
	}
	if dst.Phase() != PhaseRunning {
		t.Errorf("phase = %v after applying a running snapshot, want running", dst.Phase())
	}
}

func TestSetStatePartial(t *testing.T) {
	m := newTestMatch(t, ModeSurvival, 8)
	m.Start()
	m.Update(testDt, Input{})

	ballX := m.ball.X
	paddleY := m.paddles[RoleRight].Y

	m.SetState(Snapshot{Score: intPtr(7), Lives: intPtr(1)})

	if m.Score() != 7 {
		t.Errorf("score = %d, want 7", m.Score())
	}
	if m.Lives() != 1 {
		t.Errorf("lives = %d, want 1", m.Lives())
	}
	if m.ball.X != ballX {
		t.Error("partial snapshot touched the ball")
	}
	if m.paddles[RoleRight].Y != paddleY {
		t.Error("partial snapshot touched the paddle")
	}
	if m.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want still running", m.Phase())
	}
}

func TestSetStateZeroValueIsNoOp(t *testing.T) {
	m := newTestMatch(t, ModeSurvival, 8)
	m.Start()
	before := m.Hash()

	m.SetState(Snapshot{})

	if m.Hash() != before {
		t.Error("empty snapshot changed state")
	}
}

func TestSetStateDerivesPhase(t *testing.T) {
	m := newTestMatch(t, ModeFortress, 8)
	m.Start()

	m.SetState(Snapshot{GameConfig: &FieldState{Width: 800, Height: 600, IsRunning: false}})
	if m.Phase() != PhasePaused {
		t.Errorf("phase = %v, want paused", m.Phase())
	}

	m.SetState(Snapshot{GameConfig: &FieldState{Width: 800, Height: 600, IsRunning: true}})
	if m.Phase() != PhaseRunning {
		t.Errorf("phase = %v, want running", m.Phase())
	}

	m.SetState(Snapshot{ShowReserveTeamOption: boolPtr(true)})
	if m.Phase() != PhaseReserveOffered {
		t.Errorf("phase = %v, want reserve offered", m.Phase())
	}

	m.SetState(Snapshot{GameOver: boolPtr(true), ShowReserveTeamOption: boolPtr(false)})
	if m.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, want game over", m.Phase())
	}
}

func TestSnapshotOmitsAbsentFields(t *testing.T) {
	raw, err := json.Marshal(Snapshot{Score: intPtr(5)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"score":5}` {
		t.Errorf("partial snapshot serialized as %s", raw)
	}

	classic, err := json.Marshal(newTestMatch(t, ModeClassic, 5).State())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, absent := range []string{"lives", "paddles", "showReserveTeamOption", "reserveTeamUsed"} {
		if strings.Contains(string(classic), absent) {
			t.Errorf("classic snapshot contains %q: %s", absent, classic)
		}
	}
	for _, present := range []string{"ball", "paddle", "gameConfig", "score", "gameOver", "finalScore", "velocityX", "isRunning"} {
		if !strings.Contains(string(classic), present) {
			t.Errorf("classic snapshot missing %q: %s", present, classic)
		}
	}
}

func TestHashTracksState(t *testing.T) {
	m := newTestMatch(t, ModeClassic, 64)
	m.Start()
	before := m.Hash()
	m.Update(testDt, Input{})
	if m.Hash() == before {
		t.Error("hash unchanged after a step")
	}
}
