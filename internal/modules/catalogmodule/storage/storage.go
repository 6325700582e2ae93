// Package storage translates typed catalog requests into database operations.
// The only business rule here is the content creation cascade; everything
// else is a direct mapping to single-table queries.
package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mantonx/streambase/internal/database"
)

// Storage wraps database queries for the catalog entities
type Storage struct {
	db *gorm.DB
	tm *database.TransactionManager
}

// NewStorage creates a catalog storage backed by db
func NewStorage(db *gorm.DB) *Storage {
	return &Storage{
		db: db,
		tm: database.NewTransactionManager(db),
	}
}

// User methods

func (s *Storage) GetUser(ctx context.Context, id uint) (*database.User, error) {
	var user database.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*database.User, error) {
	var user database.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) CreateUser(ctx context.Context, user *database.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// Content methods

func (s *Storage) GetAllContent(ctx context.Context) ([]database.Content, error) {
	var items []database.Content
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Storage) GetPublishedContent(ctx context.Context) ([]database.Content, error) {
	var items []database.Content
	err := s.db.WithContext(ctx).
		Where("status = ?", database.ContentStatusPublished).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *Storage) GetContentByID(ctx context.Context, id uint) (*database.Content, error) {
	var item database.Content
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateContent inserts a content row together with any nested seasons and
// episodes. The whole tree is written in one transaction: a failure on any
// row rolls back everything already inserted.
func (s *Storage) CreateContent(ctx context.Context, content *database.Content) error {
	seasons := content.Seasons
	content.Seasons = nil

	err := s.tm.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(content).Error; err != nil {
			return err
		}

		if content.Type != database.ContentTypeTVShow || len(seasons) == 0 {
			return nil
		}

		for i := range seasons {
			season := &seasons[i]
			episodes := season.Episodes
			season.Episodes = nil
			season.ContentID = content.ID

			if err := tx.Omit(clause.Associations).Create(season).Error; err != nil {
				return err
			}

			for j := range episodes {
				episodes[j].SeasonID = season.ID
				if err := tx.Create(&episodes[j]).Error; err != nil {
					return err
				}
			}
			season.Episodes = episodes
		}
		return nil
	})
	if err != nil {
		return err
	}

	if content.Type == database.ContentTypeTVShow {
		content.Seasons = seasons
	}
	return nil
}

// UpdateContent applies a partial update. Only the columns present in
// updates change; everything else keeps its stored value.
func (s *Storage) UpdateContent(ctx context.Context, id uint, updates map[string]interface{}) (*database.Content, error) {
	var item database.Content
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Storage) DeleteContent(ctx context.Context, id uint) error {
	var item database.Content
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&item).Error
}

// Season methods

func (s *Storage) GetSeasonsByContentID(ctx context.Context, contentID uint) ([]database.Season, error) {
	var seasons []database.Season
	err := s.db.WithContext(ctx).
		Preload("Episodes").
		Where("content_id = ?", contentID).
		Order("season_number ASC").
		Find(&seasons).Error
	return seasons, err
}

func (s *Storage) CreateSeason(ctx context.Context, season *database.Season) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(season).Error
}

func (s *Storage) UpdateSeason(ctx context.Context, id uint, updates map[string]interface{}) (*database.Season, error) {
	var season database.Season
	if err := s.db.WithContext(ctx).First(&season, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&season).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).First(&season, id).Error; err != nil {
		return nil, err
	}
	return &season, nil
}

// DeleteSeason removes a season and its episodes. Episodes go first so the
// foreign key constraint on season_id is never violated.
func (s *Storage) DeleteSeason(ctx context.Context, id uint) error {
	var season database.Season
	if err := s.db.WithContext(ctx).First(&season, id).Error; err != nil {
		return err
	}

	return s.tm.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("season_id = ?", id).Delete(&database.Episode{}).Error; err != nil {
			return err
		}
		return tx.Delete(&season).Error
	})
}

// Episode methods

func (s *Storage) GetEpisodesBySeasonID(ctx context.Context, seasonID uint) ([]database.Episode, error) {
	var episodes []database.Episode
	err := s.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("episode_number ASC").
		Find(&episodes).Error
	return episodes, err
}

func (s *Storage) GetEpisodeByID(ctx context.Context, id uint) (*database.Episode, error) {
	var episode database.Episode
	if err := s.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		return nil, err
	}
	return &episode, nil
}

func (s *Storage) CreateEpisode(ctx context.Context, episode *database.Episode) error {
	return s.db.WithContext(ctx).Create(episode).Error
}

func (s *Storage) UpdateEpisode(ctx context.Context, id uint, updates map[string]interface{}) (*database.Episode, error) {
	var episode database.Episode
	if err := s.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&episode).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		return nil, err
	}
	return &episode, nil
}

func (s *Storage) DeleteEpisode(ctx context.Context, id uint) error {
	var episode database.Episode
	if err := s.db.WithContext(ctx).First(&episode, id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&episode).Error
}

// Upcoming content methods

func (s *Storage) GetAllUpcoming(ctx context.Context) ([]database.UpcomingContent, error) {
	var items []database.UpcomingContent
	err := s.db.WithContext(ctx).Order("section_order ASC").Find(&items).Error
	return items, err
}

func (s *Storage) GetUpcomingByID(ctx context.Context, id uint) (*database.UpcomingContent, error) {
	var item database.UpcomingContent
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Storage) CreateUpcoming(ctx context.Context, item *database.UpcomingContent) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Storage) UpdateUpcoming(ctx context.Context, id uint, updates map[string]interface{}) (*database.UpcomingContent, error) {
	var item database.UpcomingContent
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Storage) DeleteUpcoming(ctx context.Context, id uint) error {
	var item database.UpcomingContent
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&item).Error
}
