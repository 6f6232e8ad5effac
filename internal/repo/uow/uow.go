package uow

import (
	"context"

	"gorm.io/gorm"

	app_error "github.com/00rosa/rena-plataform/internal/errors"
	category_repo "github.com/00rosa/rena-plataform/internal/repo/category"
	product_repo "github.com/00rosa/rena-plataform/internal/repo/product"
	user_repo "github.com/00rosa/rena-plataform/internal/repo/user"
)

// Mutation is a staged write. It runs inside the commit transaction and
// reports the rows it touched.
type Mutation func(tx *gorm.DB) (int64, error)

// UnitOfWorkContract aggregates the repositories behind a single atomic
// commit point. One instance serves one logical operation and is discarded
// afterwards; instances are never shared across operations.
type UnitOfWorkContract interface {
	Users() user_repo.UserRepoContract
	Categories() category_repo.CategoryRepoContract
	Products() product_repo.ProductRepoContract

	SaveChanges(ctx context.Context) (int64, *app_error.AppError)
	BeginTransaction(ctx context.Context) *app_error.AppError
	CommitTransaction(ctx context.Context) *app_error.AppError
	RollbackTransaction() *app_error.AppError
	Close()
}

// Factory hands out one unit of work per logical operation.
type Factory interface {
	New() UnitOfWorkContract
}

type GormFactory struct {
	DB *gorm.DB
}

func NewFactory(db *gorm.DB) Factory {
	return &GormFactory{DB: db}
}

func (f *GormFactory) New() UnitOfWorkContract {
	return New(f.DB)
}

type UnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	pending []Mutation

	users      user_repo.UserRepoContract
	categories category_repo.CategoryRepoContract
	products   product_repo.ProductRepoContract
}

func New(db *gorm.DB) *UnitOfWork {
	u := &UnitOfWork{db: db}
	u.users = user_repo.NewUserRepo(u)
	u.categories = category_repo.NewCategoryRepo(u)
	u.products = product_repo.NewProductRepo(u)
	return u
}

func (u *UnitOfWork) Users() user_repo.UserRepoContract             { return u.users }
func (u *UnitOfWork) Categories() category_repo.CategoryRepoContract { return u.categories }
func (u *UnitOfWork) Products() product_repo.ProductRepoContract    { return u.products }

// Handle returns the connection reads run on: the open explicit transaction
// when there is one, the root handle otherwise.
func (u *UnitOfWork) Handle(ctx context.Context) *gorm.DB {
	if u.tx != nil {
		return u.tx.WithContext(ctx)
	}
	return u.db.WithContext(ctx)
}

// Stage queues a write; nothing touches the store until SaveChanges.
func (u *UnitOfWork) Stage(fn func(tx *gorm.DB) (int64, error)) {
	u.pending = append(u.pending, fn)
}

// SaveChanges applies every staged mutation atomically and returns the total
// rows affected. Inside an explicit transaction scope the mutations run on
// the open transaction without committing it; otherwise a transaction wraps
// the whole flush. The stage is cleared only on success.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int64, *app_error.AppError) {
	var affected int64

	flush := func(tx *gorm.DB) error {
		for _, fn := range u.pending {
			n, err := fn(tx)
			if err != nil {
				return err
			}
			affected += n
		}
		return nil
	}

	if u.tx != nil {
		if err := flush(u.tx.WithContext(ctx)); err != nil {
			return 0, app_error.Internal("failed to save changes", "db-commit")
		}
	} else {
		if err := u.db.WithContext(ctx).Transaction(flush); err != nil {
			return 0, app_error.Internal("failed to save changes", "db-commit")
		}
	}

	u.pending = nil
	return affected, nil
}

// BeginTransaction opens an explicit scope for multi-step operations that
// must stay atomic across several saves.
func (u *UnitOfWork) BeginTransaction(ctx context.Context) *app_error.AppError {
	if u.tx != nil {
		return app_error.Internal("transaction already open", "db-begin")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return app_error.Internal("failed to begin transaction", "db-begin")
	}

	u.tx = tx
	return nil
}

// CommitTransaction flushes anything still staged and commits. On failure it
// rolls back before propagating, so no partial state stays visible.
func (u *UnitOfWork) CommitTransaction(ctx context.Context) *app_error.AppError {
	if u.tx == nil {
		return app_error.Internal("no transaction open", "db-commit")
	}

	if len(u.pending) > 0 {
		if _, err := u.SaveChanges(ctx); err != nil {
			u.RollbackTransaction()
			return err
		}
	}

	if err := u.tx.Commit().Error; err != nil {
		u.RollbackTransaction()
		return app_error.Internal("failed to commit transaction", "db-commit")
	}

	u.tx = nil
	return nil
}

func (u *UnitOfWork) RollbackTransaction() *app_error.AppError {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	u.pending = nil
	if err != nil {
		return app_error.Internal("failed to rollback transaction", "db-rollback")
	}
	return nil
}

// Close releases the transaction resource on every exit path. Services defer
// it; an uncommitted transaction is rolled back.
func (u *UnitOfWork) Close() {
	if u.tx != nil {
		u.RollbackTransaction()
	}
}
