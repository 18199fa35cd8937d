package maintenance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePruner struct {
	keeps []int
	err   error
}

func (f *fakePruner) Prune(ctx context.Context, keep int) (int64, error) {
	f.keeps = append(f.keeps, keep)
	return 2, f.err
}

func TestRunPrune_PassesConfiguredRetention(t *testing.T) {
	p := &fakePruner{}
	s := NewScheduler(p, 50)

	s.runPrune()

	assert.Equal(t, []int{50}, p.keeps)
}

func TestRunPrune_SurvivesPruneFailure(t *testing.T) {
	p := &fakePruner{err: errors.New("db down")}
	s := NewScheduler(p, 10)

	// Must not panic; the next scheduled run should still happen.
	s.runPrune()
	s.runPrune()

	assert.Len(t, p.keeps, 2)
}
