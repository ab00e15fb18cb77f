package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListFeatured(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) CountFeatured(ctx context.Context, excludeID uint) (int64, error) {
	args := m.Called(ctx, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateProjectNotFeaturedSkipsCapCheck(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil)

	project := &model.Project{Title: "Site", Description: "desc", ImageURL: "http://img"}
	repo.On("Create", mock.Anything, project).Return(nil)

	created, err := svc.Create(context.Background(), project)
	require.NoError(t, err)
	assert.Equal(t, project, created)

	repo.AssertNotCalled(t, "CountFeatured", mock.Anything, mock.Anything)
}

func TestCreateFeaturedProjectUnderCap(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil)

	project := &model.Project{Title: "Site", Description: "desc", ImageURL: "http://img", Featured: true}
	repo.On("CountFeatured", mock.Anything, uint(0)).Return(int64(5), nil)
	repo.On("Create", mock.Anything, project).Return(nil)

	_, err := svc.Create(context.Background(), project)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateFeaturedProjectAtCap(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil)

	project := &model.Project{Title: "Site", Description: "desc", ImageURL: "http://img", Featured: true}
	repo.On("CountFeatured", mock.Anything, uint(0)).Return(int64(6), nil)

	_, err := svc.Create(context.Background(), project)
	assert.ErrorIs(t, err, apperrors.ErrFeaturedLimit)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateProjectFullReplace(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil)

	live := "https://old.example"
	existing := &model.Project{
		ID:           3,
		Title:        "Old",
		Description:  "old desc",
		ImageURL:     "http://old-img",
		LiveURL:      &live,
		Technologies: []string{"Go"},
		Featured:     false,
	}
	repo.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	incoming := &model.Project{
		Title:        "New",
		Description:  "new desc",
		ImageURL:     "http://new-img",
		Technologies: []string{"Go", "Echo"},
	}
	updated, err := svc.Update(context.Background(), 3, incoming)
	require.NoError(t, err)

	assert.Equal(t, uint(3), updated.ID)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, []string{"Go", "Echo"}, updated.Technologies)
	// Omitted optional fields are cleared, not preserved.
	assert.Nil(t, updated.LiveURL)
}

func TestUpdateNewlyFeaturedHitsCap(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil)

	existing := &model.Project{ID: 3, Title: "Old", Featured: false}
	repo.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
	repo.On("CountFeatured", mock.Anything, uint(3)).Return(int64(6), nil)

	incoming := &model.Project{Title: "Old", Featured: true}
	_, err := svc.Update(context.Background(), 3, incoming)
	assert.ErrorIs(t, err, apperrors.ErrFeaturedLimit)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateAlreadyFeaturedSkipsCapCheck(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil)

	existing := &model.Project{ID: 3, Title: "Old", Featured: true}
	repo.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	incoming := &model.Project{Title: "Old", Featured: true}
	_, err := svc.Update(context.Background(), 3, incoming)
	require.NoError(t, err)

	repo.AssertNotCalled(t, "CountFeatured", mock.Anything, mock.Anything)
}

func TestUpdateProjectNotFound(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), 99, &model.Project{Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestDeleteProjectNotFound(t *testing.T) {
	repo := new(MockProjectRepository)
	svc := NewProjectService(repo, nil)

	repo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}
