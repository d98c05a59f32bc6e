// Package crud provides the GORM repository shared by every inventory entity:
// a filtered paginated list, point reads, upsert on a natural key, full-field
// update and idempotent delete.
package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/inventory-service/pkg/pagination"
)

var tracer = otel.Tracer("crud-repository")

// ErrNotFound is returned when no row carries the requested id.
var ErrNotFound = errors.New("record not found")

// Keyed is implemented by entities that are unique on a natural key column.
type Keyed interface {
	NaturalKey() string
}

// QueryTimeout bounds every repository call.
type QueryTimeout time.Duration

// Options configures a Repository for one entity.
type Options struct {
	Entity         string
	ConflictColumn string
	UpdateColumns  []string
	Preload        []string
	OrderBy        string
	AllOrderBy     string
	SearchColumn   string
	Timeout        time.Duration
}

func (o Options) withDefaults() Options {
	if o.ConflictColumn == "" {
		o.ConflictColumn = "name"
	}
	if o.SearchColumn == "" {
		o.SearchColumn = "name"
	}
	if o.OrderBy == "" {
		o.OrderBy = "created_at DESC, id DESC"
	}
	if o.AllOrderBy == "" {
		o.AllOrderBy = o.SearchColumn + " ASC, id ASC"
	}
	return o
}

// Repository is a GORM repository for entity T.
type Repository[T Keyed] struct {
	db   *gorm.DB
	opts Options
}

// New creates a repository for T.
func New[T Keyed](db *gorm.DB, opts Options) *Repository[T] {
	return &Repository[T]{db: db, opts: opts.withDefaults()}
}

// List returns one page of rows whose search column contains params.Search
// (case-insensitive) and the total number of matching rows. The row fetch
// and the count run concurrently.
func (r *Repository[T]) List(ctx context.Context, params pagination.Params) ([]T, int64, error) {
	ctx, span := r.start(ctx, "List",
		attribute.String("query.search", params.Search),
		attribute.Int("query.page", params.Page),
		attribute.Int("query.limit", params.Limit),
	)
	defer span.End()
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		rows  []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := r.preload(r.filtered(gctx, params.Search))
		return q.Order(r.opts.OrderBy).
			Offset(params.Offset()).
			Limit(params.Limit).
			Find(&rows).Error
	})
	g.Go(func() error {
		return r.filtered(gctx, params.Search).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		recordError(span, err)
		return nil, 0, fmt.Errorf("list %s: %w", r.opts.Entity, err)
	}

	span.SetAttributes(
		attribute.Int("result.count", len(rows)),
		attribute.Int64("result.total", total),
	)
	return rows, total, nil
}

// Search returns at most limit rows matching term, ordered by the search column.
func (r *Repository[T]) Search(ctx context.Context, term string, limit int) ([]T, error) {
	ctx, span := r.start(ctx, "Search",
		attribute.String("query.search", term),
		attribute.Int("query.limit", limit),
	)
	defer span.End()
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []T
	err := r.preload(r.filtered(ctx, term)).
		Order(r.opts.AllOrderBy).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("search %s: %w", r.opts.Entity, err)
	}
	return rows, nil
}

// All returns every row ordered by the search column.
func (r *Repository[T]) All(ctx context.Context) ([]T, error) {
	ctx, span := r.start(ctx, "All")
	defer span.End()
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []T
	if err := r.db.WithContext(ctx).Order(r.opts.AllOrderBy).Find(&rows).Error; err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("list all %s: %w", r.opts.Entity, err)
	}
	span.SetAttributes(attribute.Int("result.count", len(rows)))
	return rows, nil
}

// FindByID returns the row with id or ErrNotFound.
func (r *Repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	ctx, span := r.start(ctx, "FindByID", attribute.Int64(r.opts.Entity+".id", int64(id)))
	defer span.End()
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := r.first(r.db.WithContext(ctx), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			recordError(span, err)
		}
		return nil, err
	}
	return row, nil
}

// Upsert inserts row or, when a row with the same natural key exists,
// overwrites its update columns. The stored row is returned.
func (r *Repository[T]) Upsert(ctx context.Context, row *T) (*T, error) {
	key := (*row).NaturalKey()
	ctx, span := r.start(ctx, "Upsert", attribute.String(r.opts.Entity+".key", key))
	defer span.End()
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stored T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: r.opts.ConflictColumn}},
				DoUpdates: clause.AssignmentColumns(r.assignColumns()),
			}).
			Create(row).Error
		if err != nil {
			return err
		}
		return r.preload(tx).
			Where(clause.Eq{Column: clause.Column{Name: r.opts.ConflictColumn}, Value: key}).
			First(&stored).Error
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("upsert %s %q: %w", r.opts.Entity, key, err)
	}
	return &stored, nil
}

// Update overwrites the update columns of the row with id.
func (r *Repository[T]) Update(ctx context.Context, id uint, row *T) (*T, error) {
	ctx, span := r.start(ctx, "Update", attribute.Int64(r.opts.Entity+".id", int64(id)))
	defer span.End()
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var updated *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := r.first(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(existing).Omit(clause.Associations).Select(r.assignColumns()).Updates(row).Error; err != nil {
			return err
		}
		updated, err = r.first(tx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		recordError(span, err)
		return nil, fmt.Errorf("update %s %d: %w", r.opts.Entity, id, err)
	}
	return updated, nil
}

// Delete removes the row with id and returns it. An absent row yields (nil, nil).
func (r *Repository[T]) Delete(ctx context.Context, id uint) (*T, error) {
	ctx, span := r.start(ctx, "Delete", attribute.Int64(r.opts.Entity+".id", int64(id)))
	defer span.End()
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var deleted *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := r.first(tx, id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(existing).Error; err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("delete %s %d: %w", r.opts.Entity, id, err)
	}
	span.SetAttributes(attribute.Bool("result.deleted", deleted != nil))
	return deleted, nil
}

// Count returns the number of stored rows.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	ctx, span := r.start(ctx, "Count")
	defer span.End()
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		recordError(span, err)
		return 0, fmt.Errorf("count %s: %w", r.opts.Entity, err)
	}
	return total, nil
}

func (r *Repository[T]) first(db *gorm.DB, id uint) (*T, error) {
	var row T
	err := r.preload(db).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// filtered builds a fresh query per call; gorm chains must not be shared
// between goroutines.
func (r *Repository[T]) filtered(ctx context.Context, search string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where(
			fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '\\'", r.opts.SearchColumn),
			"%"+escapeLike(strings.ToLower(search))+"%",
		)
	}
	return q
}

func (r *Repository[T]) preload(db *gorm.DB) *gorm.DB {
	for _, rel := range r.opts.Preload {
		db = db.Preload(rel)
	}
	return db
}

func (r *Repository[T]) assignColumns() []string {
	cols := make([]string, 0, len(r.opts.UpdateColumns)+1)
	cols = append(cols, r.opts.UpdateColumns...)
	return append(cols, "updated_at")
}

func (r *Repository[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opts.Timeout)
}

func (r *Repository[T]) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("db.entity", r.opts.Entity))
	return tracer.Start(ctx, "repository."+r.opts.Entity+"."+op, trace.WithAttributes(attrs...))
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, fmt.Sprintf("database error: %v", err))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
