package client

import "time"

// Content is a catalog entry as returned by the API.
type Content struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Genres       []string `json:"genres"`
	Description  *string  `json:"description"`
	ReleaseYear  *int     `json:"releaseYear"`
	RatingType   string   `json:"ratingType"`
	Rating       int      `json:"rating"`
	Director     *string  `json:"director"`
	Writer       *string  `json:"writer"`
	Cast         []string `json:"cast"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	TrailerURL   *string  `json:"trailerUrl"`
	VideoURL     *string  `json:"videoUrl"`
	Views        int      `json:"views"`
	Status       string   `json:"status"`

	HomeHero           bool `json:"homeHero"`
	TypePageHero       bool `json:"typePageHero"`
	HomeNewRelease     bool `json:"homeNewRelease"`
	TypePageNewRelease bool `json:"typePageNewRelease"`
	HomePopular        bool `json:"homePopular"`
	TypePagePopular    bool `json:"typePagePopular"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Seasons []Season `json:"seasons,omitempty"`
}

// Season is a TV-show season as returned by the API.
type Season struct {
	ID           uint     `json:"id"`
	ContentID    uint     `json:"contentId"`
	SeasonNumber int      `json:"seasonNumber"`
	Description  *string  `json:"description"`
	ReleaseYear  *int     `json:"releaseYear"`
	RatingType   string   `json:"ratingType"`
	Rating       int      `json:"rating"`
	Director     *string  `json:"director"`
	Writer       *string  `json:"writer"`
	Cast         []string `json:"cast"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	TrailerURL   *string  `json:"trailerUrl"`

	HomeHero           bool `json:"homeHero"`
	TypePageHero       bool `json:"typePageHero"`
	HomeNewRelease     bool `json:"homeNewRelease"`
	TypePageNewRelease bool `json:"typePageNewRelease"`
	HomePopular        bool `json:"homePopular"`
	TypePagePopular    bool `json:"typePagePopular"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Episodes []Episode `json:"episodes,omitempty"`
}

// Episode is a season episode as returned by the API.
type Episode struct {
	ID            uint      `json:"id"`
	SeasonID      uint      `json:"seasonId"`
	EpisodeNumber int       `json:"episodeNumber"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Duration      *string   `json:"duration"`
	VideoURL      *string   `json:"videoUrl"`
	ThumbnailURL  *string   `json:"thumbnailUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpcomingContent is a coming-soon entry as returned by the API.
type UpcomingContent struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Genres       []string  `json:"genres"`
	Episodes     *int      `json:"episodes"`
	ReleaseDate  time.Time `json:"releaseDate"`
	Description  string    `json:"description"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	TrailerURL   *string   `json:"trailerUrl"`
	SectionOrder int       `json:"sectionOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AnalyticsEvent is a recorded interaction as returned by the API.
type AnalyticsEvent struct {
	ID        uint           `json:"id"`
	ContentID *uint          `json:"contentId"`
	EventType string         `json:"eventType"`
	UserID    *uint          `json:"userId"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata"`
}

// AnalyticsSummary is the aggregate dashboard payload.
type AnalyticsSummary struct {
	TotalViews     int64            `json:"totalViews"`
	TotalContent   int64            `json:"totalContent"`
	PopularContent []Content        `json:"popularContent"`
	RecentViews    []AnalyticsEvent `json:"recentViews"`
}

// EpisodeInput is the payload for creating an episode, standalone or nested
// inside a season.
type EpisodeInput struct {
	SeasonID      uint    `json:"seasonId,omitempty"`
	EpisodeNumber int     `json:"episodeNumber"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Duration      *string `json:"duration,omitempty"`
	VideoURL      *string `json:"videoUrl,omitempty"`
	ThumbnailURL  *string `json:"thumbnailUrl,omitempty"`
}

// SeasonInput is the payload for creating a season, standalone or nested
// inside a content create.
type SeasonInput struct {
	ContentID    uint     `json:"contentId,omitempty"`
	SeasonNumber int      `json:"seasonNumber"`
	Description  *string  `json:"description,omitempty"`
	ReleaseYear  *int     `json:"releaseYear,omitempty"`
	RatingType   string   `json:"ratingType"`
	Rating       int      `json:"rating"`
	Director     *string  `json:"director,omitempty"`
	Writer       *string  `json:"writer,omitempty"`
	Cast         []string `json:"cast,omitempty"`
	ThumbnailURL *string  `json:"thumbnailUrl,omitempty"`
	TrailerURL   *string  `json:"trailerUrl,omitempty"`

	HomeHero           bool `json:"homeHero,omitempty"`
	TypePageHero       bool `json:"typePageHero,omitempty"`
	HomeNewRelease     bool `json:"homeNewRelease,omitempty"`
	TypePageNewRelease bool `json:"typePageNewRelease,omitempty"`
	HomePopular        bool `json:"homePopular,omitempty"`
	TypePagePopular    bool `json:"typePagePopular,omitempty"`

	Episodes []EpisodeInput `json:"episodes,omitempty"`
}

// ContentInput is the payload for creating a catalog entry. For TV shows the
// nested Seasons (and their Episodes) are created in the same request.
type ContentInput struct {
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Genres       []string `json:"genres"`
	Description  *string  `json:"description,omitempty"`
	ReleaseYear  *int     `json:"releaseYear,omitempty"`
	RatingType   string   `json:"ratingType"`
	Rating       int      `json:"rating"`
	Director     *string  `json:"director,omitempty"`
	Writer       *string  `json:"writer,omitempty"`
	Cast         []string `json:"cast,omitempty"`
	ThumbnailURL *string  `json:"thumbnailUrl,omitempty"`
	TrailerURL   *string  `json:"trailerUrl,omitempty"`
	VideoURL     *string  `json:"videoUrl,omitempty"`

	HomeHero           bool `json:"homeHero,omitempty"`
	TypePageHero       bool `json:"typePageHero,omitempty"`
	HomeNewRelease     bool `json:"homeNewRelease,omitempty"`
	TypePageNewRelease bool `json:"typePageNewRelease,omitempty"`
	HomePopular        bool `json:"homePopular,omitempty"`
	TypePagePopular    bool `json:"typePagePopular,omitempty"`

	Seasons []SeasonInput `json:"seasons,omitempty"`
}

// UpcomingInput is the payload for creating a coming-soon entry. ReleaseDate
// accepts RFC 3339 or a plain calendar date.
type UpcomingInput struct {
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Genres       []string `json:"genres"`
	Episodes     *int     `json:"episodes,omitempty"`
	ReleaseDate  string   `json:"releaseDate"`
	Description  string   `json:"description"`
	ThumbnailURL *string  `json:"thumbnailUrl,omitempty"`
	TrailerURL   *string  `json:"trailerUrl,omitempty"`
	SectionOrder *int     `json:"sectionOrder,omitempty"`
}

// ContentPatch is a partial update for a catalog entry. Nil fields are left
// out of the request body and keep their stored values.
type ContentPatch struct {
	Title        *string   `json:"title,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Genres       *[]string `json:"genres,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ReleaseYear  *int      `json:"releaseYear,omitempty"`
	RatingType   *string   `json:"ratingType,omitempty"`
	Rating       *int      `json:"rating,omitempty"`
	Director     *string   `json:"director,omitempty"`
	Writer       *string   `json:"writer,omitempty"`
	Cast         *[]string `json:"cast,omitempty"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	TrailerURL   *string   `json:"trailerUrl,omitempty"`
	VideoURL     *string   `json:"videoUrl,omitempty"`
	Status       *string   `json:"status,omitempty"`

	HomeHero           *bool `json:"homeHero,omitempty"`
	TypePageHero       *bool `json:"typePageHero,omitempty"`
	HomeNewRelease     *bool `json:"homeNewRelease,omitempty"`
	TypePageNewRelease *bool `json:"typePageNewRelease,omitempty"`
	HomePopular        *bool `json:"homePopular,omitempty"`
	TypePagePopular    *bool `json:"typePagePopular,omitempty"`
}

// SeasonPatch is a partial update for a season.
type SeasonPatch struct {
	SeasonNumber *int      `json:"seasonNumber,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ReleaseYear  *int      `json:"releaseYear,omitempty"`
	RatingType   *string   `json:"ratingType,omitempty"`
	Rating       *int      `json:"rating,omitempty"`
	Director     *string   `json:"director,omitempty"`
	Writer       *string   `json:"writer,omitempty"`
	Cast         *[]string `json:"cast,omitempty"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	TrailerURL   *string   `json:"trailerUrl,omitempty"`

	HomeHero           *bool `json:"homeHero,omitempty"`
	TypePageHero       *bool `json:"typePageHero,omitempty"`
	HomeNewRelease     *bool `json:"homeNewRelease,omitempty"`
	TypePageNewRelease *bool `json:"typePageNewRelease,omitempty"`
	HomePopular        *bool `json:"homePopular,omitempty"`
	TypePagePopular    *bool `json:"typePagePopular,omitempty"`
}

// EpisodePatch is a partial update for an episode.
type EpisodePatch struct {
	EpisodeNumber *int    `json:"episodeNumber,omitempty"`
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Duration      *string `json:"duration,omitempty"`
	VideoURL      *string `json:"videoUrl,omitempty"`
	ThumbnailURL  *string `json:"thumbnailUrl,omitempty"`
}

// UpcomingPatch is a partial update for a coming-soon entry.
type UpcomingPatch struct {
	Title        *string   `json:"title,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Genres       *[]string `json:"genres,omitempty"`
	Episodes     *int      `json:"episodes,omitempty"`
	ReleaseDate  *string   `json:"releaseDate,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	TrailerURL   *string   `json:"trailerUrl,omitempty"`
	SectionOrder *int      `json:"sectionOrder,omitempty"`
}

// EventInput is the payload for recording an analytics event.
type EventInput struct {
	ContentID *uint          `json:"contentId,omitempty"`
	EventType string         `json:"eventType"`
	UserID    *uint          `json:"userId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
