package systems

import (
	"testing"
	"time"

	"github.com/pthm-cable/pounce/components"
)

func testMoodParams() MoodParams {
	return MoodParams{
		IdleSpeed:     0.15,
		RunSpeed:      1.2,
		ExcitedSpeed:  4.5,
		ExcitedRadius: 90,
	}
}

func TestSetModeReentrant(t *testing.T) {
	t0 := time.Unix(1000, 0)
	cat := &components.Cat{Mode: components.ModeCurious, ModeSince: t0}

	// Same mode again: timers must not restart.
	if SetMode(cat, components.ModeCurious, t0.Add(time.Second)) {
		t.Error("re-entrant set should be a no-op")
	}
	if !cat.ModeSince.Equal(t0) {
		t.Error("ModeSince restarted on re-entrant set")
	}

	// ForceMode restarts explicitly.
	ForceMode(cat, components.ModeCurious, t0.Add(2*time.Second))
	if !cat.ModeSince.Equal(t0.Add(2 * time.Second)) {
		t.Error("ForceMode should restart the timer")
	}
}

func TestResolveMood(t *testing.T) {
	p := testMoodParams()
	now := time.Unix(1000, 0)

	tests := []struct {
		name  string
		zone  Zone
		speed float32
		dist  float32
		want  components.Mode
	}{
		{"prepare zone wins", ZonePrepare, 8, 60, components.ModePreparing},
		{"idle below near-zero speed", ZoneChase, 0.1, 500, components.ModeIdle},
		{"idle wins over closeness", ZoneSettled, 0.0, 20, components.ModeIdle},
		{"excited on high speed", ZoneChase, 5.0, 500, components.ModeExcited},
		{"excited on closeness", ZoneChase, 2.0, 80, components.ModeExcited},
		{"running on moderate speed", ZoneChase, 2.0, 500, components.ModeRunning},
		{"curious otherwise", ZoneChase, 0.5, 500, components.ModeCurious},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &components.Cat{}
			prox := Proximity{Zone: tt.zone, CenterDistance: tt.dist}
			ResolveMood(cat, prox, tt.speed, now, p)
			if cat.Mode != tt.want {
				t.Errorf("mode = %v, want %v", cat.Mode, tt.want)
			}
		})
	}
}
