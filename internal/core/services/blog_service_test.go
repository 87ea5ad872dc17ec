package services_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/core/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
)

// --- Mock BlogRepository ---
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) FindBlogPostByID(ctx context.Context, postID string) (*domain.BlogPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) ListBlogPosts(ctx context.Context, limit int, cursorAfter string) ([]domain.BlogPost, int64, error) {
	args := m.Called(ctx, limit, cursorAfter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.BlogPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) CountBlogPosts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) SaveBlogPost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) UpdateBlogPost(ctx context.Context, postID string, post domain.BlogPost) (*domain.BlogPost, error) {
	args := m.Called(ctx, postID, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) DeleteBlogPost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) UploadFile(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockFileStore) FileViewURL(fileID string) string {
	args := m.Called(fileID)
	return args.String(0)
}

// --- Test Suite ---
type BlogServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockBlogRepository
	mockFiles *MockFileStore
	service   portssvc.BlogSvcFacade
}

func (suite *BlogServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBlogRepository)
	suite.mockFiles = new(MockFileStore)
	suite.service = services.NewBlogService(suite.mockRepo, suite.mockFiles)
}

// --- Test Cases ---

func (suite *BlogServiceTestSuite) TestCreateBlogPost_DefaultsSlugAndAuthor() {
	ctx := context.Background()
	req := dto.SaveBlogPostRequest{
		Title:   "Designing Steel Connections: A Primer!",
		Content: "Body text",
	}

	suite.mockRepo.On("SaveBlogPost", ctx, mock.MatchedBy(func(p domain.BlogPost) bool {
		return p.Slug == "designing-steel-connections-a-primer" && p.AuthorID == "user-1"
	})).Return(&domain.BlogPost{
		DocumentFields: domain.DocumentFields{ID: "post-1"},
		Title:          req.Title,
		Slug:           "designing-steel-connections-a-primer",
		AuthorID:       "user-1",
	}, nil).Once()

	resp, err := suite.service.CreateBlogPost(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("post-1", resp.ID)
	suite.Equal("designing-steel-connections-a-primer", resp.Slug)
	suite.Empty(resp.FeaturedImageURL)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestCreateBlogPost_KeepsExplicitSlug() {
	ctx := context.Background()
	req := dto.SaveBlogPostRequest{Title: "A Title", Slug: "my-slug", Content: "Body"}

	suite.mockRepo.On("SaveBlogPost", ctx, mock.MatchedBy(func(p domain.BlogPost) bool {
		return p.Slug == "my-slug"
	})).Return(&domain.BlogPost{DocumentFields: domain.DocumentFields{ID: "post-2"}, Slug: "my-slug"}, nil).Once()

	_, err := suite.service.CreateBlogPost(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestUpdateBlogPost_PreservesAuthor() {
	ctx := context.Background()
	existing := &domain.BlogPost{
		DocumentFields: domain.DocumentFields{ID: "post-3"},
		AuthorID:       "original-author",
	}
	suite.mockRepo.On("FindBlogPostByID", ctx, "post-3").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateBlogPost", ctx, "post-3", mock.MatchedBy(func(p domain.BlogPost) bool {
		return p.AuthorID == "original-author"
	})).Return(existing, nil).Once()

	_, err := suite.service.UpdateBlogPost(ctx, "post-3", dto.SaveBlogPostRequest{Title: "T", Content: "C"})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestDeleteBlogPost_RemovesFeaturedImage() {
	ctx := context.Background()
	existing := &domain.BlogPost{
		DocumentFields: domain.DocumentFields{ID: "post-4"},
		FeaturedImage:  "file-9",
	}
	suite.mockRepo.On("FindBlogPostByID", ctx, "post-4").Return(existing, nil).Once()
	suite.mockFiles.On("DeleteFile", ctx, "file-9").Return(nil).Once()
	suite.mockRepo.On("DeleteBlogPost", ctx, "post-4").Return(nil).Once()

	err := suite.service.DeleteBlogPost(ctx, "post-4")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockFiles.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestUploadImage() {
	ctx := context.Background()
	content := strings.NewReader("fake-png")

	suite.mockFiles.On("UploadFile", ctx, "cover.png", content).Return("file-1", nil).Once()
	suite.mockFiles.On("FileViewURL", "file-1").Return("https://cloud.example/v1/storage/buckets/blog-images/files/file-1/view?project=p").Once()

	resp, err := suite.service.UploadImage(ctx, "cover.png", content)

	suite.Require().NoError(err)
	suite.Equal("file-1", resp.FileID)
	suite.Contains(resp.URL, "file-1/view")
	suite.mockFiles.AssertExpectations(suite.T())
}

func TestBlogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BlogServiceTestSuite))
}
