package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific store.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Stores without multi-document transactions run fn against their plain repositories.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	NewShopRepository() ShopRepository
	NewReviewRepository() ReviewRepository
	NewLikeRepository() LikeRepository
	NewContactMessageRepository() ContactMessageRepository
	NewUserRepository() UserRepository
}
