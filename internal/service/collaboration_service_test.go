package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/pkg/errors"
)

func newCollaborationService(
	collabRepo *MockCollaborationRepository,
	userRepo *MockUserRepository,
	playlistRepo *MockPlaylistRepository,
) *CollaborationService {
	playlistService := NewPlaylistService(playlistRepo, collabRepo, new(MockSongRepository), userRepo, new(MockActivityRepository))
	return NewCollaborationService(collabRepo, userRepo, playlistService)
}

// TestAddCollaboration tests adding a collaborator
func TestAddCollaboration(t *testing.T) {
	t.Run("owner adds an existing user", func(t *testing.T) {
		playlistRepo := new(MockPlaylistRepository)
		playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(ownedPlaylist("playlist-1", "user-1"), nil)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, "user-2").Return(&domain.User{ID: "user-2", Username: "bob"}, nil)
		collabRepo := new(MockCollaborationRepository)
		collabRepo.On("Exists", mock.Anything, "playlist-1", "user-2").Return(false, nil)
		collabRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Collaboration")).Return(nil)

		svc := newCollaborationService(collabRepo, userRepo, playlistRepo)
		id, err := svc.Add(context.Background(), "playlist-1", "user-1", "user-2")

		assert.NoError(t, err)
		assert.Contains(t, id, "collab-")
	})

	t.Run("non-owner cannot add collaborators", func(t *testing.T) {
		playlistRepo := new(MockPlaylistRepository)
		playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(ownedPlaylist("playlist-1", "user-1"), nil)

		svc := newCollaborationService(new(MockCollaborationRepository), new(MockUserRepository), playlistRepo)
		_, err := svc.Add(context.Background(), "playlist-1", "user-2", "user-3")

		assert.True(t, errors.IsAuthorization(err))
	})

	t.Run("unknown collaborator user reports not found", func(t *testing.T) {
		playlistRepo := new(MockPlaylistRepository)
		playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(ownedPlaylist("playlist-1", "user-1"), nil)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, "user-x").Return(nil, nil)

		svc := newCollaborationService(new(MockCollaborationRepository), userRepo, playlistRepo)
		_, err := svc.Add(context.Background(), "playlist-1", "user-1", "user-x")

		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("duplicate collaboration violates invariant", func(t *testing.T) {
		playlistRepo := new(MockPlaylistRepository)
		playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(ownedPlaylist("playlist-1", "user-1"), nil)
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, "user-2").Return(&domain.User{ID: "user-2"}, nil)
		collabRepo := new(MockCollaborationRepository)
		collabRepo.On("Exists", mock.Anything, "playlist-1", "user-2").Return(true, nil)

		svc := newCollaborationService(collabRepo, userRepo, playlistRepo)
		_, err := svc.Add(context.Background(), "playlist-1", "user-1", "user-2")

		assert.True(t, errors.IsInvariant(err))
	})
}

// TestRemoveCollaboration tests removing a collaborator
func TestRemoveCollaboration(t *testing.T) {
	t.Run("owner removes a collaborator", func(t *testing.T) {
		playlistRepo := new(MockPlaylistRepository)
		playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(ownedPlaylist("playlist-1", "user-1"), nil)
		collabRepo := new(MockCollaborationRepository)
		collabRepo.On("Delete", mock.Anything, "playlist-1", "user-2").Return(int64(1), nil)

		svc := newCollaborationService(collabRepo, new(MockUserRepository), playlistRepo)
		assert.NoError(t, svc.Remove(context.Background(), "playlist-1", "user-1", "user-2"))
	})

	t.Run("removing an absent collaboration violates invariant", func(t *testing.T) {
		playlistRepo := new(MockPlaylistRepository)
		playlistRepo.On("GetByID", mock.Anything, "playlist-1").Return(ownedPlaylist("playlist-1", "user-1"), nil)
		collabRepo := new(MockCollaborationRepository)
		collabRepo.On("Delete", mock.Anything, "playlist-1", "user-2").Return(int64(0), nil)

		svc := newCollaborationService(collabRepo, new(MockUserRepository), playlistRepo)
		err := svc.Remove(context.Background(), "playlist-1", "user-1", "user-2")

		assert.True(t, errors.IsInvariant(err))
	})
}
