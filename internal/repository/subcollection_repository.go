package repository

import (
	"context"

	"github.com/alimikegami/catalog-service/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const subcollectionColumns = "id, collection_id, name, description, display_order, created_at"

func (r *CatalogRepositoryImpl) AddSubcollection(ctx context.Context, data domain.Subcollection) (id int64, err error) {
	id, err = r.insertReturningID(ctx, "INSERT INTO subcollections(collection_id, name, description, display_order, created_at) VALUES (:collection_id, :name, :description, :display_order, :created_at) RETURNING id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddSubcollection").Msg("")
		return 0, translateError(err)
	}

	return id, nil
}

func (r *CatalogRepositoryImpl) GetSubcollectionsByCollectionID(ctx context.Context, collectionID int64) (data []domain.Subcollection, err error) {
	conn := r.conn()
	data = []domain.Subcollection{}
	err = sqlx.SelectContext(ctx, conn, &data, conn.Rebind("SELECT "+subcollectionColumns+" FROM subcollections WHERE collection_id = ? ORDER BY display_order ASC, id ASC"), collectionID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetSubcollectionsByCollectionID").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetSubcollectionsWithCollection(ctx context.Context) (data []domain.SubcollectionWithCollection, err error) {
	data = []domain.SubcollectionWithCollection{}
	err = sqlx.SelectContext(ctx, r.conn(), &data, `SELECT s.id, s.collection_id, s.name, s.description, s.display_order, s.created_at, c.name AS collection_name
		FROM subcollections s
		JOIN collections c ON c.id = s.collection_id
		ORDER BY c.name ASC, s.name ASC`)
	if err != nil {
		log.Error().Err(err).Str("component", "GetSubcollectionsWithCollection").Msg("")
		return nil, translateError(err)
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetSubcollectionByID(ctx context.Context, id int64) (data domain.Subcollection, err error) {
	conn := r.conn()
	err = sqlx.GetContext(ctx, conn, &data, conn.Rebind("SELECT "+subcollectionColumns+" FROM subcollections WHERE id = ?"), id)
	if err != nil {
		return data, translateError(err)
	}

	return data, nil
}

func (r *CatalogRepositoryImpl) GetSubcollectionIDs(ctx context.Context, collectionID int64) (ids []int64, err error) {
	conn := r.conn()
	err = sqlx.SelectContext(ctx, conn, &ids, conn.Rebind("SELECT id FROM subcollections WHERE collection_id = ?"), collectionID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetSubcollectionIDs").Msg("")
		return nil, translateError(err)
	}

	return ids, nil
}

func (r *CatalogRepositoryImpl) UpdateSubcollection(ctx context.Context, data domain.Subcollection) (err error) {
	err = r.execAffectingOne(ctx, "UPDATE subcollections SET name = ?, description = ? WHERE id = ? AND collection_id = ?", data.Name, data.Description, data.ID, data.CollectionID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateSubcollection").Msg("")
		return translateError(err)
	}

	return nil
}

func (r *CatalogRepositoryImpl) UpdateSubcollectionDisplayOrder(ctx context.Context, collectionID int64, id int64, displayOrder int) (err error) {
	err = r.execAffectingOne(ctx, "UPDATE subcollections SET display_order = ? WHERE id = ? AND collection_id = ?", displayOrder, id, collectionID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateSubcollectionDisplayOrder").Int64("id", id).Msg("")
		return translateError(err)
	}

	return nil
}

func (r *CatalogRepositoryImpl) DeleteSubcollection(ctx context.Context, id int64) (err error) {
	err = r.execAffectingOne(ctx, "DELETE FROM subcollections WHERE id = ?", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteSubcollection").Int64("id", id).Msg("")
		return translateError(err)
	}

	return nil
}
