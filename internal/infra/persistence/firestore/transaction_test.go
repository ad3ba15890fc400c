package firestore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxScope_FailedCallbackAppliesNoWrites(t *testing.T) {
	scope := &txScope{}
	var applied []string

	err := scope.run(func() error {
		// Membership staged, then the counter step fails.
		scope.stage(func() error {
			applied = append(applied, "like")

			return nil
		})

		return errors.New("shop counters unavailable")
	})

	require.Error(t, err)
	assert.Empty(t, applied)
}

func TestTxScope_AppliesWritesInOrder(t *testing.T) {
	scope := &txScope{}
	var applied []string

	err := scope.run(func() error {
		scope.stage(func() error {
			applied = append(applied, "like")

			return nil
		})
		scope.stage(func() error {
			applied = append(applied, "counter")

			return nil
		})

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"like", "counter"}, applied)
}

func TestTxScope_WriteErrorAbortsRemaining(t *testing.T) {
	scope := &txScope{}
	var applied []string

	err := scope.run(func() error {
		scope.stage(func() error { return errors.New("document too large") })
		scope.stage(func() error {
			applied = append(applied, "counter")

			return nil
		})

		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "document too large")
	assert.Empty(t, applied)
}

func TestRepositoryFactory_BindsScope(t *testing.T) {
	scope := &txScope{}
	factory := &repositoryFactory{scope: scope}

	assert.Same(t, scope, factory.NewLikeRepository().(*likeRepository).scope)
	assert.Same(t, scope, factory.NewReviewRepository().(*reviewRepository).scope)
	assert.Same(t, scope, factory.NewShopRepository().(*shopRepository).scope)

	assert.Nil(t, NewLikeRepository(nil).(*likeRepository).scope)
}
