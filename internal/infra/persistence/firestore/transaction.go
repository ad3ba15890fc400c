package firestore

import (
	"context"

	"shopseva/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// txScope collects the writes of one transaction attempt. Firestore refuses a
// read after a write in the same transaction, so repositories read through tx
// immediately and stage their writes; the writes are applied once fn returns.
type txScope struct {
	tx     *firestore.Transaction
	writes []func() error
}

func (s *txScope) stage(write func() error) {
	s.writes = append(s.writes, write)
}

// run calls fn and applies the staged writes only if it succeeds.
func (s *txScope) run(fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	for _, write := range s.writes {
		if err := write(); err != nil {
			return errors.Wrap(err, "failed to stage transaction write")
		}
	}

	return nil
}

type firestoreTransactionManager struct {
	client *firestore.Client
}

// NewTransactionManager returns the Firestore TransactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs fn inside RunTransaction. The like, review and counter writes of
// the bound repositories commit together or not at all. fn may run more than
// once when Firestore retries on contention.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		scope := &txScope{tx: tx}

		return scope.run(func() error {
			return fn(&repositoryFactory{client: tm.client, scope: scope})
		})
	})
}
