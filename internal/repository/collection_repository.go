package repository

import (
	"context"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const collectionColumns = "id, name, description, display_order, created_at"

func (r *CatalogRepositoryImpl) AddCollection(ctx context.Context, data domain.Collection) (id int64, err error) {
	id, err = r.insertReturningID(ctx, "INSERT INTO collections(name, description, display_order, created_at) VALUES (:name, :description, :display_order, :created_at) RETURNING id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCollection").Msg("")
		return 0, translateError(err)
	}

	return id, nil
}

func (r *CatalogRepositoryImpl) GetCollections(ctx context.Context) (data []domain.Collection, err error) {
	data = []domain.Collection{}
	err = sqlx.SelectContext(ctx, r.conn(), &data, "SELECT "+collectionColumns+" FROM collections ORDER BY display_order ASC, id ASC")
	if err != nil {
		log.Error().Err(err).Str("component", "GetCollections").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetCollectionByID(ctx context.Context, id int64) (data domain.Collection, err error) {
	conn := r.conn()
	err = sqlx.GetContext(ctx, conn, &data, conn.Rebind("SELECT "+collectionColumns+" FROM collections WHERE id = ?"), id)
	if err != nil {
		return data, translateError(err)
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetCollectionIDs(ctx context.Context) (ids []int64, err error) {
	err = sqlx.SelectContext(ctx, r.conn(), &ids, "SELECT id FROM collections")
	if err != nil {
		log.Error().Err(err).Str("component", "GetCollectionIDs").Msg("")
		return nil, translateError(err)
	}

	return ids, nil
}

func (r *CatalogRepositoryImpl) UpdateCollection(ctx context.Context, data domain.Collection) (err error) {
	err = r.execAffectingOne(ctx, "UPDATE collections SET name = ?, description = ? WHERE id = ?", data.Name, data.Description, data.ID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCollection").Msg("")
		return translateError(err)
	}

	return nil
}

func (r *CatalogRepositoryImpl) UpdateCollectionDisplayOrder(ctx context.Context, id int64, displayOrder int) (err error) {
	err = r.execAffectingOne(ctx, "UPDATE collections SET display_order = ? WHERE id = ?", displayOrder, id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCollectionDisplayOrder").Int64("id", id).Msg("")
		return translateError(err)
	}

	return nil
}

func (r *CatalogRepositoryImpl) DeleteCollection(ctx context.Context, id int64) (err error) {
	err = r.execAffectingOne(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCollection").Int64("id", id).Msg("")
		return translateError(err)
	}

	return nil
}
