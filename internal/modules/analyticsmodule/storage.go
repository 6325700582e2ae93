// Package analyticsmodule records catalog interaction events and serves the
// aggregate dashboard numbers plus a live websocket feed of incoming events.
package analyticsmodule

import (
	"context"

	"gorm.io/gorm"

	"github.com/mantonx/streambase/internal/database"
)

// Summary is the aggregate payload for the analytics dashboard
type Summary struct {
	TotalViews     int64                    `json:"totalViews"`
	TotalContent   int64                    `json:"totalContent"`
	PopularContent []database.Content       `json:"popularContent"`
	RecentViews    []database.AnalyticsEvent `json:"recentViews"`
}

// Storage wraps database queries for analytics events
type Storage struct {
	db *gorm.DB
	tm *database.TransactionManager
}

// NewStorage creates an analytics storage backed by db
func NewStorage(db *gorm.DB) *Storage {
	return &Storage{
		db: db,
		tm: database.NewTransactionManager(db),
	}
}

// CreateEvent appends an analytics event. A "view" event against a content
// row also bumps that row's denormalized views counter; both writes commit
// together or not at all. The counter update deliberately skips updated_at:
// a view is not an edit.
func (s *Storage) CreateEvent(ctx context.Context, event *database.AnalyticsEvent) error {
	return s.tm.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		if event.EventType == database.AnalyticsEventView && event.ContentID != nil {
			if err := tx.Model(&database.Content{}).
				Where("id = ?", *event.ContentID).
				UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Summary aggregates the dashboard numbers: total "view" events, total
// content rows, the top 10 content rows by the views counter, and the 50
// most recent "view" events.
func (s *Storage) Summary(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		PopularContent: []database.Content{},
		RecentViews:    []database.AnalyticsEvent{},
	}

	if err := s.db.WithContext(ctx).
		Model(&database.AnalyticsEvent{}).
		Where("event_type = ?", database.AnalyticsEventView).
		Count(&summary.TotalViews).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&database.Content{}).
		Count(&summary.TotalContent).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Order("views DESC").
		Limit(10).
		Find(&summary.PopularContent).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Where("event_type = ?", database.AnalyticsEventView).
		Order("timestamp DESC").
		Limit(50).
		Find(&summary.RecentViews).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
