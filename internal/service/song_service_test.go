package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/open-music/server/internal/domain"
	"github.com/open-music/server/pkg/errors"
)

func validSong() *domain.Song {
	return &domain.Song{Title: "Yellow", Year: 2000, Genre: "Rock", Performer: "Coldplay"}
}

// TestSongCreate tests song creation
func TestSongCreate(t *testing.T) {
	t.Run("creates song and returns prefixed id", func(t *testing.T) {
		songRepo := new(MockSongRepository)
		songRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Song")).Return(nil)

		svc := NewSongService(songRepo, new(MockAlbumRepository))
		id, err := svc.Create(context.Background(), validSong())

		assert.NoError(t, err)
		assert.Contains(t, id, "song-")
	})

	t.Run("verifies the referenced album exists", func(t *testing.T) {
		albumRepo := new(MockAlbumRepository)
		albumRepo.On("GetByID", mock.Anything, "album-x").Return(nil, nil)

		song := validSong()
		albumID := "album-x"
		song.AlbumID = &albumID

		svc := NewSongService(new(MockSongRepository), albumRepo)
		_, err := svc.Create(context.Background(), song)

		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		svc := NewSongService(new(MockSongRepository), new(MockAlbumRepository))
		_, err := svc.Create(context.Background(), &domain.Song{Title: "Yellow"})

		assert.True(t, errors.IsValidation(err))
	})
}

// TestSongList tests filtered listing
func TestSongList(t *testing.T) {
	t.Run("passes filters through and never returns nil", func(t *testing.T) {
		songRepo := new(MockSongRepository)
		songRepo.On("List", mock.Anything, "yellow", "coldplay").Return(nil, nil)

		svc := NewSongService(songRepo, new(MockAlbumRepository))
		songs, err := svc.List(context.Background(), "yellow", "coldplay")

		assert.NoError(t, err)
		assert.NotNil(t, songs)
		assert.Empty(t, songs)
	})
}

// TestSongGetUpdateDelete tests row-count to error mapping
func TestSongGetUpdateDelete(t *testing.T) {
	t.Run("missing song reports not found", func(t *testing.T) {
		songRepo := new(MockSongRepository)
		songRepo.On("GetByID", mock.Anything, "song-x").Return(nil, nil)

		svc := NewSongService(songRepo, new(MockAlbumRepository))
		_, err := svc.GetByID(context.Background(), "song-x")

		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("updating a missing song reports not found", func(t *testing.T) {
		songRepo := new(MockSongRepository)
		songRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Song")).Return(int64(0), nil)

		svc := NewSongService(songRepo, new(MockAlbumRepository))
		song := validSong()
		song.ID = "song-x"
		err := svc.Update(context.Background(), song)

		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("deleting a missing song reports not found", func(t *testing.T) {
		songRepo := new(MockSongRepository)
		songRepo.On("Delete", mock.Anything, "song-x").Return(int64(0), nil)

		svc := NewSongService(songRepo, new(MockAlbumRepository))
		err := svc.Delete(context.Background(), "song-x")

		assert.True(t, errors.IsNotFound(err))
	})
}
