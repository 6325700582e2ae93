package database

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// ContentType is the canonical content kind. It has exactly one wire
// representation; legacy display literals are converted at the API boundary
// by NormalizeContentType and never stored.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeTVShow ContentType = "tv_show"
)

// NormalizeContentType maps legacy and display-cased literals onto the
// canonical representation. The second return value is false for unknown types.
func NormalizeContentType(raw string) (ContentType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "movie":
		return ContentTypeMovie, true
	case "tv_show", "tv show":
		return ContentTypeTVShow, true
	}
	return "", false
}

// ContentStatus values for the published-content listing
const (
	ContentStatusPublished = "published"
	ContentStatusDraft     = "draft"
)

// Analytics event types
const (
	AnalyticsEventView      = "view"
	AnalyticsEventPlay      = "play"
	AnalyticsEventLike      = "like"
	AnalyticsEventAddToList = "add_to_list"
)

// User represents an account row. There is no authentication flow; users
// exist only so analytics events can reference them.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null;uniqueIndex" json:"username"`
	Password string `gorm:"not null" json:"password"`
}

// Content represents a movie or TV show catalog entry
type Content struct {
	ID          uint                       `gorm:"primaryKey" json:"id"`
	Title       string                     `gorm:"not null;index" json:"title"`
	Type        ContentType                `gorm:"type:text;not null;index" json:"type"`
	Genres      datatypes.JSONSlice[string] `gorm:"not null" json:"genres"`
	Description *string                    `gorm:"type:text" json:"description"`
	ReleaseYear *int                       `json:"releaseYear"`
	RatingType  string                     `gorm:"not null" json:"ratingType"`
	Rating      int                        `gorm:"not null" json:"rating"` // tenths, 93 renders as 9.3
	Director    *string                    `json:"director"`
	Writer      *string                    `json:"writer"`
	Cast        datatypes.JSONSlice[string] `json:"cast"`
	ThumbnailURL *string                   `json:"thumbnailUrl"`
	TrailerURL   *string                   `json:"trailerUrl"`
	VideoURL     *string                   `json:"videoUrl"` // movies only
	Views        int                       `gorm:"default:0" json:"views"`
	Status       string                    `gorm:"default:published;index" json:"status"`

	// Curated placement flags
	HomeHero           bool `gorm:"default:false" json:"homeHero"`
	TypePageHero       bool `gorm:"default:false" json:"typePageHero"`
	HomeNewRelease     bool `gorm:"default:false" json:"homeNewRelease"`
	TypePageNewRelease bool `gorm:"default:false" json:"typePageNewRelease"`
	HomePopular        bool `gorm:"default:false" json:"homePopular"`
	TypePagePopular    bool `gorm:"default:false" json:"typePagePopular"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Seasons []Season `gorm:"foreignKey:ContentID" json:"seasons,omitempty"`
}

// Season represents a season of a TV-show content entry
type Season struct {
	ID           uint                       `gorm:"primaryKey" json:"id"`
	ContentID    uint                       `gorm:"not null;index" json:"contentId"`
	SeasonNumber int                        `gorm:"not null;index" json:"seasonNumber"`
	Description  *string                    `gorm:"type:text" json:"description"`
	ReleaseYear  *int                       `json:"releaseYear"`
	RatingType   string                     `gorm:"not null" json:"ratingType"`
	Rating       int                        `gorm:"not null" json:"rating"`
	Director     *string                    `json:"director"`
	Writer       *string                    `json:"writer"`
	Cast         datatypes.JSONSlice[string] `json:"cast"`
	ThumbnailURL *string                    `json:"thumbnailUrl"`
	TrailerURL   *string                    `json:"trailerUrl"`

	HomeHero           bool `gorm:"default:false" json:"homeHero"`
	TypePageHero       bool `gorm:"default:false" json:"typePageHero"`
	HomeNewRelease     bool `gorm:"default:false" json:"homeNewRelease"`
	TypePageNewRelease bool `gorm:"default:false" json:"typePageNewRelease"`
	HomePopular        bool `gorm:"default:false" json:"homePopular"`
	TypePagePopular    bool `gorm:"default:false" json:"typePagePopular"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Episodes []Episode `gorm:"foreignKey:SeasonID" json:"episodes,omitempty"`
}

// Episode represents an episode belonging to a season
type Episode struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SeasonID      uint      `gorm:"not null;index" json:"seasonId"`
	EpisodeNumber int       `gorm:"not null;index" json:"episodeNumber"`
	Title         string    `gorm:"not null" json:"title"`
	Description   *string   `gorm:"type:text" json:"description"`
	Duration      *string   `json:"duration"`
	VideoURL      *string   `json:"videoUrl"`
	ThumbnailURL  *string   `json:"thumbnailUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpcomingContent represents a not-yet-released item in the coming-soon
// section. It is standalone and unrelated to Content rows.
type UpcomingContent struct {
	ID           uint                       `gorm:"primaryKey" json:"id"`
	Title        string                     `gorm:"not null" json:"title"`
	Type         ContentType                `gorm:"type:text;not null" json:"type"`
	Genres       datatypes.JSONSlice[string] `gorm:"not null" json:"genres"`
	Episodes     *int                       `json:"episodes"` // TV shows only
	ReleaseDate  time.Time                  `gorm:"not null" json:"releaseDate"`
	Description  string                     `gorm:"type:text;not null" json:"description"`
	ThumbnailURL *string                    `json:"thumbnailUrl"`
	TrailerURL   *string                    `json:"trailerUrl"`
	SectionOrder int                        `gorm:"default:0" json:"sectionOrder"`
	CreatedAt    time.Time                  `json:"createdAt"`
}

// AnalyticsEvent is an append-only record of a UI interaction
type AnalyticsEvent struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	ContentID *uint              `gorm:"index" json:"contentId"`
	EventType string             `gorm:"not null;index" json:"eventType"`
	UserID    *uint              `json:"userId"`
	Timestamp time.Time          `gorm:"autoCreateTime;index" json:"timestamp"`
	Metadata  datatypes.JSONMap  `json:"metadata"`
}

// TableName keeps the analytics table name aligned with the original schema
func (AnalyticsEvent) TableName() string {
	return "analytics"
}

// TableName keeps the content table singular as in the original schema
func (Content) TableName() string {
	return "content"
}

// TableName keeps the upcoming table name aligned with the original schema
func (UpcomingContent) TableName() string {
	return "upcoming_content"
}
