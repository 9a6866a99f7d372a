package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alimikegami/catalog-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

type CatalogRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateNewRepository(db *sqlx.DB) CatalogRepository {
	return &CatalogRepositoryImpl{
		db: db,
	}
}

// conn returns the open transaction when there is one. A repository handed to
// a HandleTrx callback must not touch the pool, since the SQLite pool has a
// single connection.
func (r *CatalogRepositoryImpl) conn() sqlx.ExtContext {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *CatalogRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo CatalogRepository) error) (err error) {
	if r.tx != nil {
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
			if err != nil {
				log.Error().Err(err).Str("component", "HandleTrx").Msg("")
			}
		}
	}()

	err = fn(ctx, &CatalogRepositoryImpl{db: r.db, tx: tx})

	return err
}

// insertReturningID binds a named INSERT ... RETURNING id statement for the
// current driver and scans the new id.
func (r *CatalogRepositoryImpl) insertReturningID(ctx context.Context, query string, arg interface{}) (id int64, err error) {
	conn := r.conn()

	bound, args, err := conn.BindNamed(query, arg)
	if err != nil {
		return 0, err
	}

	err = sqlx.GetContext(ctx, conn, &id, bound, args...)
	return id, err
}

func (r *CatalogRepositoryImpl) execAffectingOne(ctx context.Context, query string, args ...interface{}) error {
	conn := r.conn()

	res, err := conn.ExecContext(ctx, conn.Rebind(query), args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *CatalogRepositoryImpl) ClearCatalog(ctx context.Context) (err error) {
	conn := r.conn()
	for _, table := range []string{"products", "subcollections", "collections"} {
		if _, err = conn.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			log.Error().Err(err).Str("component", "ClearCatalog").Str("table", table).Msg("")
			return translateError(err)
		}
	}

	return nil
}

// translateError maps driver constraint violations onto the store's error
// kinds. Anything unrecognised is returned unchanged and surfaces as a 500.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return errs.ErrConflict
		case "23503":
			return errs.ErrNotFound
		case "23514":
			return errs.Validation(pqErr.Message)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return errs.ErrConflict
		case sqlite3.ErrConstraintForeignKey:
			return errs.ErrNotFound
		case sqlite3.ErrConstraintCheck:
			return errs.Validation(liteErr.Error())
		}
	}

	return err
}
