package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResetAllSentinels(t *testing.T) {
	s := New()
	require.Equal(t, "", s.StatString(BestRunTurns))
	require.Equal(t, "2000", s.StatString(Score))
}

func TestEffectiveDistanceSmoothing(t *testing.T) {
	s := New()
	s.AddDistance(2)
	require.Equal(t, float64(2), s.StatValue(TotalEffectiveDistance))

	s2 := New()
	s2.AddDistance(6)
	require.Equal(t, float64(4), s2.StatValue(TotalEffectiveDistance)) // 6/2+1
}

func TestRunLifecycleAndScoring(t *testing.T) {
	s := New()
	s.StartRun()
	s.AddDistance(4)
	s.AddTurn()
	s.FinishRun()

	require.True(t, s.Solved())
	require.False(t, s.Started())
	require.Equal(t, float64(4), s.StatValue(BestRunDistance))
	require.Equal(t, float64(1), s.StatValue(BestRunTurns))
	require.NotEqual(t, "", s.StatString(BestRunTurns))
}

func TestBestRunMonotonicity(t *testing.T) {
	s := New()
	s.StartRun()
	s.AddDistance(10)
	s.AddTurn()
	s.AddTurn()
	s.FinishRun()
	firstBestTurns := s.StatValue(BestRunTurns)

	s.StartRun()
	s.AddDistance(2)
	s.FinishRun()

	require.LessOrEqual(t, s.StatValue(BestRunTurns), firstBestTurns)
}

func TestPenalizeForResetChargesNextRun(t *testing.T) {
	s := New()
	s.PenalizeForReset()
	s.StartRun()
	require.Equal(t, float64(15), s.StatValue(CurrentRunEffectiveDistance))
	require.Equal(t, float64(15), s.StatValue(TotalEffectiveDistance))
}

func TestEndUnfinishedRunPreservesCounters(t *testing.T) {
	s := New()
	s.StartRun()
	s.AddDistance(3)
	s.EndUnfinishedRun()
	require.False(t, s.Started())
	require.False(t, s.Solved())
	require.Equal(t, float64(3), s.StatValue(CurrentRunDistance))
}
