package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/internal/service"
	"github.com/open-music/server/pkg/jwt"
	"github.com/open-music/server/pkg/logger"
)

// MockPlaylistRepository 播放列表仓储Mock
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListByUser(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaylistSummary), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlaylistRepository) AddSong(ctx context.Context, ps *domain.PlaylistSong) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveSong(ctx context.Context, playlistID, songID string) (int64, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlaylistRepository) SongExists(ctx context.Context, playlistID, songID string) (bool, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistRepository) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SongSummary), args.Error(1)
}

// MockCollaborationRepository 协作者仓储Mock
type MockCollaborationRepository struct {
	mock.Mock
}

func (m *MockCollaborationRepository) Create(ctx context.Context, collab *domain.Collaboration) error {
	args := m.Called(ctx, collab)
	return args.Error(0)
}

func (m *MockCollaborationRepository) Delete(ctx context.Context, playlistID, userID string) (int64, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollaborationRepository) Exists(ctx context.Context, playlistID, userID string) (bool, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository 用户仓储Mock
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockActivityRepository 播放列表活动仓储Mock
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByPlaylist(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

type playlistTestEnv struct {
	playlistRepo *MockPlaylistRepository
	collabRepo   *MockCollaborationRepository
	songRepo     *MockSongRepository
	userRepo     *MockUserRepository
	activityRepo *MockActivityRepository
	jwtManager   *jwt.Manager
	router       *gin.Engine
}

func newPlaylistTestEnv(t *testing.T) *playlistTestEnv {
	t.Helper()

	log := logger.New(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	env := &playlistTestEnv{
		playlistRepo: new(MockPlaylistRepository),
		collabRepo:   new(MockCollaborationRepository),
		songRepo:     new(MockSongRepository),
		userRepo:     new(MockUserRepository),
		activityRepo: new(MockActivityRepository),
	}

	playlistService := service.NewPlaylistService(env.playlistRepo, env.collabRepo, env.songRepo, env.userRepo, env.activityRepo)
	h := New(nil, nil, nil, nil, playlistService, nil, nil, nil, log)

	env.jwtManager = jwt.NewManager(&jwt.Config{
		Secret:        "test-secret",
		Issuer:        "open-music-test",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
	env.router = NewRouter(h, env.jwtManager, t.TempDir(), log)
	return env
}

// doAuthJSON issues a request carrying a bearer access token for the given user.
func (env *playlistTestEnv) doAuthJSON(t *testing.T, userID, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	token, err := env.jwtManager.GenerateAccessToken(userID)
	assert.NoError(t, err)

	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func storedPlaylist(id, owner string) *domain.Playlist {
	now := time.Now()
	return &domain.Playlist{
		ID:        id,
		Name:      "Road Trip",
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TestCreatePlaylistEndpoint tests POST /playlists
func TestCreatePlaylistEndpoint(t *testing.T) {
	t.Run("returns 201 with the new playlist id", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.playlistRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Playlist")).Return(nil)

		w := env.doAuthJSON(t, "user-1", "POST", "/playlists", gin.H{"name": "Road Trip"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"playlistId":"playlist-`)
	})

	t.Run("returns 400 for an empty name", func(t *testing.T) {
		env := newPlaylistTestEnv(t)

		w := env.doAuthJSON(t, "user-1", "POST", "/playlists", gin.H{"name": ""})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"fail"`)
	})
}

// TestDeletePlaylistEndpoint tests DELETE /playlists/:id
func TestDeletePlaylistEndpoint(t *testing.T) {
	t.Run("owner deletes the playlist", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(storedPlaylist("playlist-1", "user-1"), nil)
		env.playlistRepo.On("Delete", mock.Anything, "playlist-1").Return(int64(1), nil)

		w := env.doAuthJSON(t, "user-1", "DELETE", "/playlists/playlist-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("a non-owner gets 403 and the playlist survives", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(storedPlaylist("playlist-1", "user-1"), nil)

		w := env.doAuthJSON(t, "user-2", "DELETE", "/playlists/playlist-1", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env.playlistRepo.AssertNotCalled(t, "Delete", mock.Anything, "playlist-1")
	})
}

// TestGetPlaylistSongsEndpoint tests GET /playlists/:id/songs
func TestGetPlaylistSongsEndpoint(t *testing.T) {
	t.Run("serializes an empty song list as an empty array", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(storedPlaylist("playlist-1", "user-1"), nil)
		env.userRepo.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1", Username: "dicoding"}, nil)
		env.playlistRepo.On("ListSongs", mock.Anything, "playlist-1").Return(nil, nil)

		w := env.doAuthJSON(t, "user-1", "GET", "/playlists/playlist-1/songs", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"songs":[]`)
		assert.Contains(t, w.Body.String(), `"username":"dicoding"`)
	})

	t.Run("returns 404 for a missing playlist", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.playlistRepo.On("GetByID", mock.Anything, "playlist-x").Return(nil, nil)

		w := env.doAuthJSON(t, "user-1", "GET", "/playlists/playlist-x/songs", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env.collabRepo.AssertNotCalled(t, "Exists", mock.Anything, "playlist-x", "user-1")
	})
}

// TestAddPlaylistSongEndpoint tests POST /playlists/:id/songs
func TestAddPlaylistSongEndpoint(t *testing.T) {
	t.Run("collaborator adds a song and the activity is recorded", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.songRepo.On("GetByID", mock.Anything, "song-7").Return(&domain.Song{ID: "song-7", Title: "Yellow"}, nil)
		env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(storedPlaylist("playlist-1", "user-1"), nil)
		env.collabRepo.On("Exists", mock.Anything, "playlist-1", "user-2").Return(true, nil)
		env.playlistRepo.On("SongExists", mock.Anything, "playlist-1", "song-7").Return(false, nil)
		env.playlistRepo.On("AddSong", mock.Anything, mock.AnythingOfType("*domain.PlaylistSong")).Return(nil)
		env.activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Activity) bool {
			return a.PlaylistID == "playlist-1" && a.SongID == "song-7" &&
				a.UserID == "user-2" && a.Action == domain.ActivityActionAdd
		})).Return(nil)

		w := env.doAuthJSON(t, "user-2", "POST", "/playlists/playlist-1/songs", gin.H{"songId": "song-7"})

		assert.Equal(t, http.StatusCreated, w.Code)
		env.activityRepo.AssertExpectations(t)
	})

	t.Run("a stranger gets 403", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.songRepo.On("GetByID", mock.Anything, "song-7").Return(&domain.Song{ID: "song-7", Title: "Yellow"}, nil)
		env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(storedPlaylist("playlist-1", "user-1"), nil)
		env.collabRepo.On("Exists", mock.Anything, "playlist-1", "user-3").Return(false, nil)

		w := env.doAuthJSON(t, "user-3", "POST", "/playlists/playlist-1/songs", gin.H{"songId": "song-7"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestGetPlaylistActivitiesEndpoint tests GET /playlists/:id/activities
func TestGetPlaylistActivitiesEndpoint(t *testing.T) {
	t.Run("returns the recorded activities", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(storedPlaylist("playlist-1", "user-1"), nil)
		env.activityRepo.On("ListByPlaylist", mock.Anything, "playlist-1").Return([]domain.ActivityEntry{
			{Username: "dicoding", Title: "Yellow", Action: domain.ActivityActionAdd, Time: time.Now()},
		}, nil)

		w := env.doAuthJSON(t, "user-1", "GET", "/playlists/playlist-1/activities", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"playlistId":"playlist-1"`)
		assert.Contains(t, w.Body.String(), `"action":"add"`)
	})

	t.Run("returns 404 when no activity has been recorded", func(t *testing.T) {
		env := newPlaylistTestEnv(t)
		env.playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(storedPlaylist("playlist-1", "user-1"), nil)
		env.activityRepo.On("ListByPlaylist", mock.Anything, "playlist-1").Return([]domain.ActivityEntry{}, nil)

		w := env.doAuthJSON(t, "user-1", "GET", "/playlists/playlist-1/activities", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
