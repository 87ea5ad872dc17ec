package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
	"github.com/Habib7442/apromax-admin/internal/handlers"
	"github.com/Habib7442/apromax-admin/internal/platform/config"
)

// --- Mock BlogService ---
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) ListBlogPosts(ctx context.Context, params dto.ListParams) (*dto.ListBlogPostsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBlogPostsResponse), args.Error(1)
}
func (m *MockBlogService) CreateBlogPost(ctx context.Context, req dto.SaveBlogPostRequest, authorID string) (*dto.BlogPostResponse, error) {
	args := m.Called(ctx, req, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlogPostResponse), args.Error(1)
}
func (m *MockBlogService) UpdateBlogPost(ctx context.Context, postID string, req dto.SaveBlogPostRequest) (*dto.BlogPostResponse, error) {
	args := m.Called(ctx, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlogPostResponse), args.Error(1)
}
func (m *MockBlogService) DeleteBlogPost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}
func (m *MockBlogService) UploadImage(ctx context.Context, filename string, r io.Reader) (*dto.UploadImageResponse, error) {
	args := m.Called(ctx, filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadImageResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BlogSvcFacade = (*MockBlogService)(nil)

// --- Test Suite ---
type BlogHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockBlogService *MockBlogService
	jwtSecret       string
}

func (suite *BlogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockBlogService = new(MockBlogService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	services := &portssvc.ServiceContainer{Blog: suite.mockBlogService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *BlogHandlerTestSuite) authHeader(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "apromax-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return "Bearer " + signed
}

// --- Test Cases ---

func (suite *BlogHandlerTestSuite) TestCreateBlogPost_PassesAuthorFromToken() {
	expected := &dto.BlogPostResponse{ID: "post-1", Title: "Hello", Slug: "hello", AuthorID: "admin-7"}
	suite.mockBlogService.On("CreateBlogPost", mock.Anything, mock.MatchedBy(func(r dto.SaveBlogPostRequest) bool {
		return r.Title == "Hello" && r.Content == "World"
	}), "admin-7").Return(expected, nil).Once()

	body, _ := json.Marshal(dto.SaveBlogPostRequest{Title: "Hello", Content: "World"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/blogs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader("admin-7"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockBlogService.AssertExpectations(suite.T())
}

func (suite *BlogHandlerTestSuite) TestCreateBlogPost_MissingFields() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/blogs", bytes.NewBufferString(`{"excerpt":"no title"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader("admin-7"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.ElementsMatch([]string{"title is required", "content is required"}, resp.Errors)
	suite.mockBlogService.AssertNotCalled(suite.T(), "CreateBlogPost")
}

func (suite *BlogHandlerTestSuite) TestUploadImage_Success() {
	expected := &dto.UploadImageResponse{
		FileID: "file-1",
		URL:    "https://cloud.appwrite.io/v1/storage/buckets/blog-images/files/file-1/view?project=proj-1",
	}
	suite.mockBlogService.On("UploadImage", mock.Anything, "cover.png", mock.Anything).
		Return(expected, nil).Once()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "cover.png")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte("png bytes"))
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/blogs/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", suite.authHeader("admin-7"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UploadImageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("file-1", resp.FileID)
	suite.mockBlogService.AssertExpectations(suite.T())
}

func (suite *BlogHandlerTestSuite) TestUploadImage_MissingFile() {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	suite.Require().NoError(writer.WriteField("caption", "not a file"))
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/blogs/images", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", suite.authHeader("admin-7"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBlogService.AssertNotCalled(suite.T(), "UploadImage")
}

func TestBlogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BlogHandlerTestSuite))
}
