package service

import (
	"context"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/internal/repository"
)

// ReorderCollections rewrites display_order of every collection to its
// position in orderedIDs. The list must be exactly the current set. Two
// concurrent reorders are not serialised; the last commit wins.
func (s *CatalogServiceImpl) ReorderCollections(ctx context.Context, orderedIDs []int64) (err error) {
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.CatalogRepository) error {
		current, err := repo.GetCollectionIDs(ctx)
		if err != nil {
			return err
		}

		if err := domain.ValidatePermutation(current, orderedIDs); err != nil {
			return err
		}

		for id, order := range domain.DisplayOrders(orderedIDs) {
			if err := repo.UpdateCollectionDisplayOrder(ctx, id, order); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return withNotFound(err, "Collection not found")
	}

	s.publish(ctx, dto.EventCollectionsReordered, dto.ReorderedEntities{OrderedIDs: orderedIDs})

	return nil
}

func (s *CatalogServiceImpl) ReorderSubcollections(ctx context.Context, collectionID int64, orderedIDs []int64) (err error) {
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.CatalogRepository) error {
		if _, err := repo.GetCollectionByID(ctx, collectionID); err != nil {
			return withNotFound(err, "Collection not found")
		}

		current, err := repo.GetSubcollectionIDs(ctx, collectionID)
		if err != nil {
			return err
		}

		if err := domain.ValidatePermutation(current, orderedIDs); err != nil {
			return err
		}

		for id, order := range domain.DisplayOrders(orderedIDs) {
			if err := repo.UpdateSubcollectionDisplayOrder(ctx, collectionID, id, order); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return withNotFound(err, msgSubcollectionNotFound)
	}

	s.publish(ctx, dto.EventSubcollectionsReordered, dto.ReorderedEntities{ParentID: collectionID, OrderedIDs: orderedIDs})

	return nil
}
