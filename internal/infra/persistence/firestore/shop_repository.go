package firestore

import (
	"context"
	"time"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type shopRepository struct {
	client *firestore.Client
	scope  *txScope
}

// NewShopRepository returns a ShopRepository over the shops collection.
func NewShopRepository(client *firestore.Client) repository.ShopRepository {
	return &shopRepository{client: client}
}

func (repo *shopRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(collectionShops)
}

func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	now := time.Now()
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = now
	}
	shop.UpdatedAt = now

	if _, err := repo.col().Doc(shop.ID.String()).Create(ctx, fromShop(shop)); err != nil {
		if isAlreadyExists(err) {
			return domainerrors.ErrShopValidation.WithDetails("shop id already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	return nil
}

func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	snap, err := repo.col().Doc(id.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find shop by id")
	}

	return decodeShop(snap)
}

func (repo *shopRepository) FindByStatus(ctx context.Context, status entity.ModerationStatus) ([]*entity.Shop, error) {
	return repo.query(ctx, withStatus(repo.col().Query, status))
}

func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, status entity.ModerationStatus) ([]*entity.Shop, error) {
	q := repo.col().Where("ownerId", "==", ownerID.String())
	if status != "" {
		q = withStatus(q, status)
	}

	return repo.query(ctx, q)
}

func (repo *shopRepository) FindApproved(ctx context.Context, filter entity.ShopFilter) ([]*entity.Shop, error) {
	filter = filter.Normalize()

	q := withStatus(repo.col().Query, entity.StatusApproved)
	if filter.Category != "" {
		q = q.Where("category", "==", filter.Category)
	}
	if filter.State != "" {
		q = q.Where("state", "==", filter.State)
	}
	if filter.District != "" {
		q = q.Where("district", "==", filter.District)
	}

	return repo.query(ctx, q)
}

func (repo *shopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Shop, error) {
	if len(ids) == 0 {
		return []*entity.Shop{}, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.col().Doc(id.String()))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load shops")
	}

	shops := make([]*entity.Shop, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		shop, err := decodeShop(snap)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	return shops, nil
}

func (repo *shopRepository) ListSummaries(ctx context.Context) ([]*entity.Shop, error) {
	return repo.query(ctx, repo.col().Select("category", "state", "district", "isApproved", "isRejected", "createdAt", "updatedAt"))
}

// Update rewrites the descriptive and moderation fields. Counters are
// excluded so concurrent likes are never overwritten.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shop.UpdatedAt = time.Now()
	doc := fromShop(shop)

	_, err := repo.col().Doc(shop.ID.String()).Update(ctx, []firestore.Update{
		{Path: "name", Value: doc.Name},
		{Path: "address", Value: doc.Address},
		{Path: "category", Value: doc.Category},
		{Path: "state", Value: doc.State},
		{Path: "district", Value: doc.District},
		{Path: "contact", Value: doc.Contact},
		{Path: "alternateContact", Value: doc.AlternateContact},
		{Path: "email", Value: doc.Email},
		{Path: "ownerName", Value: doc.OwnerName},
		{Path: "businessHours", Value: doc.BusinessHours},
		{Path: "establishmentYear", Value: doc.EstablishmentYear},
		{Path: "latitude", Value: doc.Latitude},
		{Path: "longitude", Value: doc.Longitude},
		{Path: "images", Value: doc.Images},
		{Path: "isApproved", Value: doc.IsApproved},
		{Path: "isRejected", Value: doc.IsRejected},
		{Path: "rejectionReason", Value: doc.RejectionReason},
		{Path: "updatedAt", Value: doc.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return domainerrors.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	return nil
}

func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.col().Doc(id.String()).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return domainerrors.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shop")
	}

	return nil
}

// AdjustCounters reads and writes inside a transaction so the floor at zero
// holds. Bound to a scope, it joins that transaction and stages the update.
func (repo *shopRepository) AdjustCounters(ctx context.Context, id uuid.UUID, likesDelta, reviewsDelta int) error {
	ref := repo.col().Doc(id.String())

	var err error
	if repo.scope != nil {
		var updates []firestore.Update
		updates, err = counterUpdates(repo.scope.tx, ref, likesDelta, reviewsDelta)
		if err == nil {
			tx := repo.scope.tx
			repo.scope.stage(func() error { return tx.Update(ref, updates) })
		}
	} else {
		err = repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
			updates, err := counterUpdates(tx, ref, likesDelta, reviewsDelta)
			if err != nil {
				return err
			}

			return tx.Update(ref, updates)
		})
	}
	if err != nil {
		if isNotFound(err) {
			return domainerrors.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to adjust shop counters")
	}

	return nil
}

// counterUpdates reads the shop through tx and returns the floored counter writes.
func counterUpdates(tx *firestore.Transaction, ref *firestore.DocumentRef, likesDelta, reviewsDelta int) ([]firestore.Update, error) {
	snap, err := tx.Get(ref)
	if err != nil {
		return nil, err
	}

	var doc shopDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return []firestore.Update{
		{Path: "likes", Value: entity.AdjustCounter(doc.Likes, likesDelta)},
		{Path: "reviewCount", Value: entity.AdjustCounter(doc.ReviewCount, reviewsDelta)},
		{Path: "updatedAt", Value: time.Now()},
	}, nil
}

func (repo *shopRepository) query(ctx context.Context, q firestore.Query) ([]*entity.Shop, error) {
	snaps, err := q.OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(snaps))
	for _, snap := range snaps {
		shop, err := decodeShop(snap)
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	return shops, nil
}

func decodeShop(snap *firestore.DocumentSnapshot) (*entity.Shop, error) {
	var doc shopDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode shop "+snap.Ref.ID)
	}

	shop, err := doc.toShop(snap.Ref.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "shop id"), "failed to decode shop "+snap.Ref.ID)
	}

	return shop, nil
}

func withStatus(q firestore.Query, status entity.ModerationStatus) firestore.Query {
	switch status {
	case entity.StatusApproved:
		return q.Where("isApproved", "==", true)
	case entity.StatusRejected:
		return q.Where("isRejected", "==", true).Where("isApproved", "==", false)
	default:
		return q.Where("isApproved", "==", false).Where("isRejected", "==", false)
	}
}
