package domain

import (
	"time"

	"github.com/open-music/server/pkg/errors"
)

// Song 歌曲实体
type Song struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Genre     string    `json:"genre"`
	Performer string    `json:"performer"`
	Duration  *int      `json:"duration"`
	AlbumID   *string   `json:"albumId"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate 验证歌曲数据
func (s *Song) Validate() error {
	if s.Title == "" {
		return errors.Validation("song title is required")
	}
	if s.Year <= 0 {
		return errors.Validation("song year must be a positive number")
	}
	if s.Genre == "" {
		return errors.Validation("song genre is required")
	}
	if s.Performer == "" {
		return errors.Validation("song performer is required")
	}
	if s.Duration != nil && *s.Duration < 0 {
		return errors.Validation("song duration must not be negative")
	}
	return nil
}

// SongSummary 歌曲摘要，用于列表响应
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}
