package service

import (
	"context"
	"strings"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/internal/repository"
	"github.com/alimikegami/catalog-service/pkg/errs"
)

const (
	msgSubcollectionNotFound = "Subcollection not found"
	msgSubcollectionConflict = "Subcollection name already exists in this collection"
)

func (s *CatalogServiceImpl) GetSubcollections(ctx context.Context, collectionID int64) (res []dto.SubcollectionResponse, err error) {
	if _, err = s.repo.GetCollectionByID(ctx, collectionID); err != nil {
		return nil, withNotFound(err, "Collection not found")
	}

	data, err := s.repo.GetSubcollectionsByCollectionID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	res = make([]dto.SubcollectionResponse, 0, len(data))
	for _, sub := range data {
		res = append(res, toSubcollectionResponse(sub))
	}

	return res, nil
}

func (s *CatalogServiceImpl) GetAllSubcollections(ctx context.Context) (res []dto.SubcollectionResponse, err error) {
	data, err := s.repo.GetSubcollectionsWithCollection(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.SubcollectionResponse, 0, len(data))
	for _, sub := range data {
		item := toSubcollectionResponse(sub.Subcollection)
		item.CollectionName = sub.CollectionName
		res = append(res, item)
	}

	return res, nil
}

func (s *CatalogServiceImpl) AddSubcollection(ctx context.Context, collectionID int64, req dto.SubcollectionRequest) (res dto.SubcollectionResponse, err error) {
	name, err := requiredName(req.Name)
	if err != nil {
		return res, err
	}

	data := domain.Subcollection{
		CollectionID: collectionID,
		Name:         name,
		Description:  req.Description,
		CreatedAt:    s.clock.Now().UnixMilli(),
	}

	data.ID, err = s.repo.AddSubcollection(ctx, data)
	if err != nil {
		return res, withConflict(withNotFound(err, "Collection not found"), msgSubcollectionConflict)
	}

	res = toSubcollectionResponse(data)
	s.publish(ctx, dto.EventSubcollectionCreated, res)

	return res, nil
}

func (s *CatalogServiceImpl) UpdateSubcollection(ctx context.Context, collectionID int64, id int64, req dto.SubcollectionRequest) (res dto.SubcollectionResponse, err error) {
	if err = optionalName(req.Name); err != nil {
		return res, err
	}

	var data domain.Subcollection
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.CatalogRepository) (txErr error) {
		data, txErr = scopedSubcollection(ctx, repo, collectionID, id)
		if txErr != nil {
			return txErr
		}

		if req.Name != nil {
			data.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			data.Description = req.Description
		}

		return repo.UpdateSubcollection(ctx, data)
	})
	if err != nil {
		return res, withConflict(withNotFound(err, msgSubcollectionNotFound), msgSubcollectionConflict)
	}

	res = toSubcollectionResponse(data)
	s.publish(ctx, dto.EventSubcollectionUpdated, res)

	return res, nil
}

func (s *CatalogServiceImpl) DeleteSubcollection(ctx context.Context, collectionID int64, id int64) (err error) {
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.CatalogRepository) error {
		if _, err := scopedSubcollection(ctx, repo, collectionID, id); err != nil {
			return err
		}
		return repo.DeleteSubcollection(ctx, id)
	})
	if err != nil {
		return withNotFound(err, msgSubcollectionNotFound)
	}

	s.publish(ctx, dto.EventSubcollectionDeleted, dto.DeletedEntity{ID: id, ParentID: collectionID})

	return nil
}

// scopedSubcollection loads a subcollection and hides it when it belongs to a
// different collection than the one in the path.
func scopedSubcollection(ctx context.Context, repo repository.CatalogRepository, collectionID int64, id int64) (domain.Subcollection, error) {
	data, err := repo.GetSubcollectionByID(ctx, id)
	if err != nil {
		return data, err
	}

	if data.CollectionID != collectionID {
		return data, errs.ErrNotFound
	}

	return data, nil
}

func toSubcollectionResponse(s domain.Subcollection) dto.SubcollectionResponse {
	return dto.SubcollectionResponse{
		ID:           s.ID,
		CollectionID: s.CollectionID,
		Name:         s.Name,
		Description:  s.Description,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
	}
}
