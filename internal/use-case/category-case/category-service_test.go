package category_service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/00rosa/rena-plataform/internal/dtos/category_dto"
	"github.com/00rosa/rena-plataform/internal/entity"
	app_error "github.com/00rosa/rena-plataform/internal/errors"
	category_repo "github.com/00rosa/rena-plataform/internal/repo/category"
	product_repo "github.com/00rosa/rena-plataform/internal/repo/product"
	"github.com/00rosa/rena-plataform/internal/repo/uow"
	user_repo "github.com/00rosa/rena-plataform/internal/repo/user"
)

// --- Mocks ---

type mockFactory struct{ u uow.UnitOfWorkContract }

func (f *mockFactory) New() uow.UnitOfWorkContract { return f.u }

type mockUow struct {
	mock.Mock
	categories *mockCategoryRepo
}

func (m *mockUow) Users() user_repo.UserRepoContract { return nil }

func (m *mockUow) Categories() category_repo.CategoryRepoContract { return m.categories }

func (m *mockUow) Products() product_repo.ProductRepoContract { return nil }

func (m *mockUow) SaveChanges(ctx context.Context) (int64, *app_error.AppError) {
	args := m.Called(ctx)
	return int64(args.Int(0)), asAppError(args.Get(1))
}

func (m *mockUow) BeginTransaction(ctx context.Context) *app_error.AppError {
	return asAppError(m.Called(ctx).Get(0))
}

func (m *mockUow) CommitTransaction(ctx context.Context) *app_error.AppError {
	return asAppError(m.Called(ctx).Get(0))
}

func (m *mockUow) RollbackTransaction() *app_error.AppError {
	return asAppError(m.Called().Get(0))
}

func (m *mockUow) Close() { m.Called() }

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) GetById(ctx context.Context, id uuid.UUID) (*entity.Category, *app_error.AppError) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, asAppError(args.Get(1))
	}
	return args.Get(0).(*entity.Category), asAppError(args.Get(1))
}

func (m *mockCategoryRepo) GetAll(ctx context.Context) ([]entity.Category, *app_error.AppError) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, asAppError(args.Get(1))
	}
	return args.Get(0).([]entity.Category), asAppError(args.Get(1))
}

func (m *mockCategoryRepo) Add(category *entity.Category)    { m.Called(category) }
func (m *mockCategoryRepo) Update(category *entity.Category) { m.Called(category) }
func (m *mockCategoryRepo) Delete(category *entity.Category) {
	category.IsActive = false
	m.Called(category)
}

func (m *mockCategoryRepo) Exists(ctx context.Context, id uuid.UUID) (bool, *app_error.AppError) {
	args := m.Called(ctx, id)
	return args.Bool(0), asAppError(args.Get(1))
}

func (m *mockCategoryRepo) NameExists(ctx context.Context, name string) (bool, *app_error.AppError) {
	args := m.Called(ctx, name)
	return args.Bool(0), asAppError(args.Get(1))
}

func asAppError(v any) *app_error.AppError {
	if v == nil {
		return nil
	}
	return v.(*app_error.AppError)
}

func newService() (*CategoryService, *mockUow, *mockCategoryRepo) {
	repo := new(mockCategoryRepo)
	u := &mockUow{categories: repo}
	u.On("Close").Return()
	return &CategoryService{Uow: &mockFactory{u: u}}, u, repo
}

var _ uow.Factory = (*mockFactory)(nil)
var _ uow.UnitOfWorkContract = (*mockUow)(nil)

// --- Tests ---

func TestCreateCategory_DuplicateName(t *testing.T) {
	svc, u, repo := newService()
	ctx := context.Background()

	repo.On("NameExists", ctx, "Shoes").Return(true, nil).Once()

	resp, err := svc.Create(ctx, category_dto.CreateCategoryRequest{Name: "Shoes"})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.Code)
	u.AssertNotCalled(t, "SaveChanges", mock.Anything)
}

func TestCreateCategory_Success(t *testing.T) {
	svc, u, repo := newService()
	ctx := context.Background()
	desc := "footwear of all kinds"

	var created *entity.Category
	repo.On("NameExists", ctx, "Shoes").Return(false, nil).Once()
	repo.On("Add", mock.AnythingOfType("*entity.Category")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*entity.Category)
	}).Once()
	u.On("SaveChanges", ctx).Return(1, nil).Once()

	resp, err := svc.Create(ctx, category_dto.CreateCategoryRequest{Name: "Shoes", Description: &desc})

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Shoes", resp.Name)
	assert.Equal(t, &desc, resp.Description)
	assert.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateCategory_NameReusableAfterSoftDelete(t *testing.T) {
	svc, u, repo := newService()
	ctx := context.Background()

	existing := &entity.Category{
		Base: entity.Base{ID: uuid.New(), IsActive: true},
		Name: "Shoes",
	}

	// While the first category is active the name is taken.
	repo.On("NameExists", ctx, "Shoes").Return(true, nil).Once()
	_, err := svc.Create(ctx, category_dto.CreateCategoryRequest{Name: "Shoes"})
	assert.Equal(t, http.StatusConflict, err.Code)

	// Soft-delete it.
	repo.On("GetById", ctx, existing.ID).Return(existing, nil).Once()
	repo.On("Delete", existing).Return().Once()
	u.On("SaveChanges", ctx).Return(1, nil).Once()
	deleted, dErr := svc.Delete(ctx, existing.ID)
	assert.Nil(t, dErr)
	assert.True(t, deleted)
	assert.False(t, existing.IsActive)

	// The name is free again.
	repo.On("NameExists", ctx, "Shoes").Return(false, nil).Once()
	repo.On("Add", mock.AnythingOfType("*entity.Category")).Return().Once()
	u.On("SaveChanges", ctx).Return(1, nil).Once()
	resp, cErr := svc.Create(ctx, category_dto.CreateCategoryRequest{Name: "Shoes"})
	assert.Nil(t, cErr)
	assert.Equal(t, "Shoes", resp.Name)
}

func TestUpdateCategory_PatchSemantics(t *testing.T) {
	svc, u, repo := newService()
	ctx := context.Background()

	oldDesc := "old"
	existing := &entity.Category{
		Base:        entity.Base{ID: uuid.New(), IsActive: true},
		Name:        "Shoes",
		Description: &oldDesc,
	}

	newDesc := "brand new description"
	var updated *entity.Category
	repo.On("GetById", ctx, existing.ID).Return(existing, nil).Once()
	repo.On("Update", mock.AnythingOfType("*entity.Category")).Run(func(args mock.Arguments) {
		updated = args.Get(0).(*entity.Category)
	}).Once()
	u.On("SaveChanges", ctx).Return(1, nil).Once()

	resp, err := svc.Update(ctx, existing.ID, category_dto.UpdateCategoryRequest{Description: &newDesc})

	assert.Nil(t, err)
	// The name was not in the patch and must survive.
	assert.Equal(t, "Shoes", updated.Name)
	assert.Equal(t, &newDesc, updated.Description)
	assert.Equal(t, "Shoes", resp.Name)
}

func TestUpdateCategory_RenameConflict(t *testing.T) {
	svc, u, repo := newService()
	ctx := context.Background()

	existing := &entity.Category{
		Base: entity.Base{ID: uuid.New(), IsActive: true},
		Name: "Shoes",
	}
	newName := "Clothing"

	repo.On("GetById", ctx, existing.ID).Return(existing, nil).Once()
	repo.On("NameExists", ctx, "Clothing").Return(true, nil).Once()

	resp, err := svc.Update(ctx, existing.ID, category_dto.UpdateCategoryRequest{Name: &newName})

	assert.Nil(t, resp)
	assert.Equal(t, http.StatusConflict, err.Code)
	u.AssertNotCalled(t, "SaveChanges", mock.Anything)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc, _, repo := newService()
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetById", ctx, id).Return(nil, nil).Once()

	resp, err := svc.Update(ctx, id, category_dto.UpdateCategoryRequest{})

	assert.Nil(t, resp)
	assert.Equal(t, http.StatusNotFound, err.Code)
}

func TestDeleteCategory_IdempotentEffect(t *testing.T) {
	svc, u, repo := newService()
	ctx := context.Background()

	existing := &entity.Category{
		Base: entity.Base{ID: uuid.New(), IsActive: true},
		Name: "Shoes",
	}

	repo.On("GetById", ctx, existing.ID).Return(existing, nil).Once()
	repo.On("Delete", existing).Return().Once()
	u.On("SaveChanges", ctx).Return(1, nil).Once()

	first, err := svc.Delete(ctx, existing.ID)
	assert.Nil(t, err)
	assert.True(t, first)

	// Second delete sees an inactive row, which reads as absent.
	repo.On("GetById", ctx, existing.ID).Return(nil, nil).Once()

	second, err := svc.Delete(ctx, existing.ID)
	assert.Nil(t, err)
	assert.False(t, second)
}

func TestGetCategoryById_AbsentIsNotAnError(t *testing.T) {
	svc, _, repo := newService()
	ctx := context.Background()
	id := uuid.New()

	repo.On("GetById", ctx, id).Return(nil, nil).Once()

	resp, err := svc.GetById(ctx, id)

	assert.Nil(t, resp)
	assert.Nil(t, err)
}
