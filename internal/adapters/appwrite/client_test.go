package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Habib7442/apromax-admin/internal/apperrors"
)

// newTestBackend spins up a fake Appwrite endpoint and a client pointed at it.
func newTestBackend(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient(server.URL, "proj-1", "key-1")
}

func TestCreateDocument_WireFormat(t *testing.T) {
	var captured struct {
		method  string
		path    string
		project string
		apiKey  string
		body    map[string]any
	}

	_, client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.project = r.Header.Get("X-Appwrite-Project")
		captured.apiKey = r.Header.Get("X-Appwrite-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"$id":"doc-1","$createdAt":"2025-06-01T10:00:00.000+00:00","$updatedAt":"2025-06-01T10:00:00.000+00:00","title":"hello"}`))
	})

	db := NewDatabases(client, "db-1")

	var out struct {
		DocumentMeta
		Title string `json:"title"`
	}
	err := db.CreateDocument(context.Background(), "posts", map[string]any{"title": "hello"}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/databases/db-1/collections/posts/documents", captured.path)
	assert.Equal(t, "proj-1", captured.project)
	assert.Equal(t, "key-1", captured.apiKey)
	assert.Equal(t, "unique()", captured.body["documentId"])
	assert.Equal(t, map[string]any{"title": "hello"}, captured.body["data"])

	assert.Equal(t, "doc-1", out.ID)
	assert.Equal(t, "hello", out.Title)
	assert.Equal(t, 2025, out.Created().Year())
}

func TestListDocuments_QueryEncoding(t *testing.T) {
	var queries []string
	_, client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		queries = r.URL.Query()["queries[]"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":42,"documents":[]}`))
	})

	db := NewDatabases(client, "db-1")
	list, err := db.ListDocuments(context.Background(), "posts", ListOptions{
		Limit:       25,
		CursorAfter: "doc-9",
		OrderDesc:   "$createdAt",
	})
	require.NoError(t, err)

	assert.Equal(t, 42, list.Total)
	assert.ElementsMatch(t, []string{`limit(25)`, `cursorAfter("doc-9")`, `orderDesc("$createdAt")`}, queries)
}

func TestStatusErrorMapping(t *testing.T) {
	cases := []struct {
		status   int
		sentinel error
	}{
		{http.StatusNotFound, apperrors.ErrNotFound},
		{http.StatusUnauthorized, apperrors.ErrUnauthorized},
		{http.StatusForbidden, apperrors.ErrUnauthorized},
		{http.StatusConflict, apperrors.ErrDuplicate},
		{http.StatusInternalServerError, apperrors.ErrExternal},
	}

	for _, tc := range cases {
		status := tc.status
		_, client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message":"backend said no","type":"general","code":0}`))
		})

		db := NewDatabases(client, "db-1")
		err := db.GetDocument(context.Background(), "posts", "doc-1", &struct{}{})
		require.Error(t, err, "status %d", tc.status)
		assert.ErrorIs(t, err, tc.sentinel, "status %d", tc.status)
		assert.Contains(t, err.Error(), "backend said no")
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	_, client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db := NewDatabases(client, "db-1")
	_, err := db.ListDocuments(ctx, "posts", ListOptions{Limit: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateEmailSession_NoAPIKey(t *testing.T) {
	var captured struct {
		path    string
		project string
		apiKey  string
		session string
		body    map[string]string
	}

	_, client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.project = r.Header.Get("X-Appwrite-Project")
		captured.apiKey = r.Header.Get("X-Appwrite-Key")
		captured.session = r.Header.Get("X-Appwrite-Session")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"$id":"sess-1","userId":"user-1","secret":"s3cret"}`))
	})

	account := NewAccount(client)
	session, err := account.CreateEmailSession(context.Background(), "admin@apromaxeng.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, "/account/sessions/email", captured.path)
	assert.Equal(t, "proj-1", captured.project)
	// Credential checks must go through as an unauthenticated project call.
	assert.Empty(t, captured.apiKey)
	assert.Empty(t, captured.session)
	assert.Equal(t, "admin@apromaxeng.com", captured.body["email"])
	assert.Equal(t, "hunter22", captured.body["password"])

	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "s3cret", session.Secret)
}

func TestAccountGet_UsesSessionHeader(t *testing.T) {
	var captured struct {
		apiKey  string
		session string
	}

	_, client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		captured.apiKey = r.Header.Get("X-Appwrite-Key")
		captured.session = r.Header.Get("X-Appwrite-Session")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"$id":"user-1","name":"Admin","email":"admin@apromaxeng.com"}`))
	})

	account := NewAccount(client)
	user, err := account.Get(context.Background(), "s3cret")
	require.NoError(t, err)

	// The session header replaces the API key, never both.
	assert.Equal(t, "s3cret", captured.session)
	assert.Empty(t, captured.apiKey)
	assert.Equal(t, "Admin", user.Name)
}

func TestUsersGetUser_UsesAPIKey(t *testing.T) {
	var captured struct {
		path   string
		apiKey string
	}

	_, client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apiKey = r.Header.Get("X-Appwrite-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"$id":"user-1","name":"Admin","email":"admin@apromaxeng.com"}`))
	})

	users := NewUsers(client)
	user, err := users.GetUser(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "/users/user-1", captured.path)
	assert.Equal(t, "key-1", captured.apiKey)
	assert.Equal(t, "admin@apromaxeng.com", user.Email)
}

func TestCreateFile_MultipartUpload(t *testing.T) {
	var captured struct {
		path     string
		fileID   string
		filename string
		content  string
	}

	_, client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		captured.fileID = r.FormValue("fileId")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		captured.filename = header.Filename
		buf := make([]byte, header.Size)
		_, _ = file.Read(buf)
		captured.content = string(buf)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"$id":"file-1","bucketId":"resumes","name":"cv.pdf","mimeType":"application/pdf","sizeOriginal":11}`))
	})

	storage := NewStorage(client)
	file, err := storage.CreateFile(context.Background(), "resumes", "cv.pdf", bytes.NewBufferString("fake resume"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/buckets/resumes/files", captured.path)
	assert.Equal(t, "unique()", captured.fileID)
	assert.Equal(t, "cv.pdf", captured.filename)
	assert.Equal(t, "fake resume", captured.content)
	assert.Equal(t, "file-1", file.ID)
}

func TestFileViewURL(t *testing.T) {
	client := NewClient("https://cloud.appwrite.io/v1", "proj-1", "key-1")
	storage := NewStorage(client)

	got := storage.FileViewURL("blog-images", "file-7")
	assert.Equal(t, "https://cloud.appwrite.io/v1/storage/buckets/blog-images/files/file-7/view?project=proj-1", got)

	// The URL must stay parseable once IDs carry no escaping of their own.
	_, err := url.Parse(got)
	assert.NoError(t, err)
}
