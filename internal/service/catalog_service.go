package service

import (
	"context"
	"strings"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/alimikegami/catalog-service/internal/repository"
	"github.com/alimikegami/catalog-service/pkg/clock"
	"github.com/alimikegami/catalog-service/pkg/errs"
)

type CatalogServiceImpl struct {
	repo      repository.CatalogRepository
	publisher EventPublisher
	clock     clock.Clock
}

func CreateNewService(repo repository.CatalogRepository, publisher EventPublisher, clk clock.Clock) CatalogService {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &CatalogServiceImpl{repo: repo, publisher: publisher, clock: clk}
}

func (s *CatalogServiceImpl) GetCollections(ctx context.Context) (res []dto.CollectionResponse, err error) {
	data, err := s.repo.GetCollections(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]dto.CollectionResponse, 0, len(data))
	for _, c := range data {
		res = append(res, toCollectionResponse(c))
	}

	return res, nil
}

func (s *CatalogServiceImpl) GetCollection(ctx context.Context, id int64) (res dto.CollectionResponse, err error) {
	data, err := s.repo.GetCollectionByID(ctx, id)
	if err != nil {
		return res, withNotFound(err, "Collection not found")
	}

	return toCollectionResponse(data), nil
}

func (s *CatalogServiceImpl) AddCollection(ctx context.Context, req dto.CollectionRequest) (res dto.CollectionResponse, err error) {
	name, err := requiredName(req.Name)
	if err != nil {
		return res, err
	}

	data := domain.Collection{
		Name:        name,
		Description: req.Description,
		CreatedAt:   s.clock.Now().UnixMilli(),
	}

	data.ID, err = s.repo.AddCollection(ctx, data)
	if err != nil {
		return res, withConflict(err, "Collection name already exists")
	}

	res = toCollectionResponse(data)
	s.publish(ctx, dto.EventCollectionCreated, res)

	return res, nil
}

func (s *CatalogServiceImpl) UpdateCollection(ctx context.Context, id int64, req dto.CollectionRequest) (res dto.CollectionResponse, err error) {
	if err = optionalName(req.Name); err != nil {
		return res, err
	}

	var data domain.Collection
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.CatalogRepository) (txErr error) {
		data, txErr = repo.GetCollectionByID(ctx, id)
		if txErr != nil {
			return txErr
		}

		if req.Name != nil {
			data.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			data.Description = req.Description
		}

		return repo.UpdateCollection(ctx, data)
	})
	if err != nil {
		return res, withConflict(withNotFound(err, "Collection not found"), "Collection name already exists")
	}

	res = toCollectionResponse(data)
	s.publish(ctx, dto.EventCollectionUpdated, res)

	return res, nil
}

func (s *CatalogServiceImpl) DeleteCollection(ctx context.Context, id int64) (err error) {
	err = s.repo.DeleteCollection(ctx, id)
	if err != nil {
		return withNotFound(err, "Collection not found")
	}

	s.publish(ctx, dto.EventCollectionDeleted, dto.DeletedEntity{ID: id})

	return nil
}

func requiredName(name *string) (string, error) {
	if name == nil || strings.TrimSpace(*name) == "" {
		return "", errs.Validation("name is required")
	}
	return strings.TrimSpace(*name), nil
}

func optionalName(name *string) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return errs.Validation("name must not be empty")
	}
	return nil
}

// withNotFound and withConflict only rename the bare store sentinels so a
// message set deeper in the call is kept.
func withNotFound(err error, message string) error {
	if err == errs.ErrNotFound {
		return errs.WithMessage(errs.ErrNotFound, message)
	}
	return err
}

func withConflict(err error, message string) error {
	if err == errs.ErrConflict {
		return errs.WithMessage(errs.ErrConflict, message)
	}
	return err
}

func toCollectionResponse(c domain.Collection) dto.CollectionResponse {
	return dto.CollectionResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
	}
}
