package engine

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift-scene/input"
)

type recordingRenderer struct {
	pubs []Publication
}

func (r *recordingRenderer) Publish(p Publication) { r.pubs = append(r.pubs, p) }

type recordingObserver struct {
	results []TickResult
}

func (o *recordingObserver) ObserveTick(res TickResult) { o.results = append(o.results, res) }

var testEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSimClockSeconds(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	clock := NewSimClock(mock)

	assert.Equal(t, 0.0, clock.Seconds())
	mock.AdvanceSeconds(2.25)
	assert.InDelta(t, 2.25, clock.Seconds(), 1e-9)
	mock.Advance(750 * time.Millisecond)
	assert.InDelta(t, 3.0, clock.Seconds(), 1e-9)
}

func TestMonotonicTimeProviderAdvances(t *testing.T) {
	p := NewMonotonicTimeProvider()
	t1 := p.Now()
	time.Sleep(2 * time.Millisecond)
	assert.True(t, p.Now().After(t1))
}

func TestFrameStatsReportsOncePerInterval(t *testing.T) {
	now := testEpoch
	s := NewFrameStats(time.Second, now)

	for i := 0; i < 49; i++ {
		now = now.Add(20 * time.Millisecond)
		_, closed := s.Record(now)
		require.False(t, closed, "frame %d", i)
	}
	now = now.Add(20 * time.Millisecond)
	ms, closed := s.Record(now)
	require.True(t, closed)
	assert.InDelta(t, 20.0, ms, 1e-9)
	assert.InDelta(t, 20.0, s.LastMs(), 1e-9)
}

func TestOrchestratorFramePublishesAndNotifies(t *testing.T) {
	sim := newTestSimulation(t)
	mock := NewMockTimeProvider(testEpoch)
	rend := &recordingRenderer{}
	obs := &recordingObserver{}
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	o := NewOrchestrator(sim, NewSimClock(mock), rend, time.Second, logger, obs)

	for i := 0; i < 70; i++ {
		o.Frame(input.Frame{})
		mock.Advance(16 * time.Millisecond)
	}

	require.Len(t, rend.pubs, 70)
	require.Len(t, obs.results, 70)

	first := rend.pubs[0]
	assert.Equal(t, uint64(1), first.Tick)
	assert.Equal(t, StateColliding, first.State)
	assert.Equal(t, 4, first.Cameras)
	assert.InDelta(t, -2.5, first.Bodies[0].Translation.X(), 1e-6)

	last := rend.pubs[69]
	for i, b := range sim.Bodies {
		assert.Equal(t, b.MVP(), last.Bodies[i].MVP)
		assert.Equal(t, b.ModelMatrix(), last.Bodies[i].Model)
	}
	assert.Greater(t, last.FrameMs, 0.0, "stats window closed after one simulated second")
	assert.Contains(t, logBuf.String(), "frame stats")
}

func TestOrchestratorLogsRejectedCommands(t *testing.T) {
	sim := newTestSimulation(t)
	var logBuf bytes.Buffer
	o := NewOrchestrator(sim, NewSimClock(NewMockTimeProvider(testEpoch)), nil, time.Second, zerolog.New(&logBuf))

	res := o.Frame(input.Frame{SelectCamera: 9})

	assert.Len(t, res.Rejected, 1)
	assert.Contains(t, logBuf.String(), "camera command rejected")
}

func TestOrchestratorResetAfterPeriod(t *testing.T) {
	sim := newTestSimulation(t)
	mock := NewMockTimeProvider(testEpoch)
	o := NewOrchestrator(sim, NewSimClock(mock), nil, time.Second, zerolog.Nop())

	o.Frame(input.Frame{})
	mock.AdvanceSeconds(5)
	res := o.Frame(input.Frame{})

	assert.Equal(t, StateReset, res.State)
	assert.Equal(t, uint64(1), sim.Cycle().Resets())
}
