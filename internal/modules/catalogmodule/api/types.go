// Package api exposes the catalog HTTP surface: request shapes, validation,
// and Gin handlers for content, seasons, episodes, and upcoming entries.
package api

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"github.com/mantonx/streambase/internal/database"
	apperrors "github.com/mantonx/streambase/internal/errors"
)

// validate is the shared validator. Field names in error output come from
// json tags so clients see the names they sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct validates v and flattens the result into field errors
func checkStruct(v interface{}) []apperrors.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperrors.FieldError{{Field: "", Rule: "invalid", Message: err.Error()}}
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace starts with the root struct name; drop it so nested
		// paths read like seasons[0].episodes[1].title. Embedded structs
		// contribute their type name, which clients never sent.
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		field = strings.ReplaceAll(field, "SeasonNested.", "")
		field = strings.ReplaceAll(field, "EpisodeNested.", "")
		fields = append(fields, apperrors.FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: ruleMessage(fe),
		})
	}
	return fields
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}

// releaseDateFormats are the accepted wire formats for upcoming release dates
var releaseDateFormats = []string{time.RFC3339, "2006-01-02"}

func parseReleaseDate(raw string) (time.Time, error) {
	for _, layout := range releaseDateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", raw)
}

// EpisodeNested is an episode draft inside a season during content creation
type EpisodeNested struct {
	EpisodeNumber int     `json:"episodeNumber" validate:"required,min=1"`
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	Duration      *string `json:"duration"`
	VideoURL      *string `json:"videoUrl"`
	ThumbnailURL  *string `json:"thumbnailUrl"`
}

func (e *EpisodeNested) toModel() database.Episode {
	return database.Episode{
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Title,
		Description:   e.Description,
		Duration:      e.Duration,
		VideoURL:      e.VideoURL,
		ThumbnailURL:  e.ThumbnailURL,
	}
}

// SeasonNested is a season draft inside a content creation request
type SeasonNested struct {
	SeasonNumber int      `json:"seasonNumber" validate:"required,min=1"`
	Description  *string  `json:"description"`
	ReleaseYear  *int     `json:"releaseYear"`
	RatingType   string   `json:"ratingType" validate:"required"`
	Rating       *int     `json:"rating" validate:"required,min=0,max=100"`
	Director     *string  `json:"director"`
	Writer       *string  `json:"writer"`
	Cast         []string `json:"cast"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	TrailerURL   *string  `json:"trailerUrl"`

	HomeHero           *bool `json:"homeHero"`
	TypePageHero       *bool `json:"typePageHero"`
	HomeNewRelease     *bool `json:"homeNewRelease"`
	TypePageNewRelease *bool `json:"typePageNewRelease"`
	HomePopular        *bool `json:"homePopular"`
	TypePagePopular    *bool `json:"typePagePopular"`

	Episodes []EpisodeNested `json:"episodes" validate:"omitempty,dive"`
}

func (s *SeasonNested) toModel() database.Season {
	season := database.Season{
		SeasonNumber: s.SeasonNumber,
		Description:  s.Description,
		ReleaseYear:  s.ReleaseYear,
		RatingType:   s.RatingType,
		Rating:       deref(s.Rating),
		Director:     s.Director,
		Writer:       s.Writer,
		Cast:         datatypes.NewJSONSlice(s.Cast),
		ThumbnailURL: s.ThumbnailURL,
		TrailerURL:   s.TrailerURL,

		HomeHero:           derefBool(s.HomeHero),
		TypePageHero:       derefBool(s.TypePageHero),
		HomeNewRelease:     derefBool(s.HomeNewRelease),
		TypePageNewRelease: derefBool(s.TypePageNewRelease),
		HomePopular:        derefBool(s.HomePopular),
		TypePagePopular:    derefBool(s.TypePagePopular),
	}
	for i := range s.Episodes {
		season.Episodes = append(season.Episodes, s.Episodes[i].toModel())
	}
	return season
}

// ContentInsert is the writable shape for POST /api/content.
// System-managed columns (id, views, timestamps) are not accepted.
type ContentInsert struct {
	Title        string   `json:"title" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Genres       []string `json:"genres" validate:"required,min=1,dive,required"`
	Description  *string  `json:"description"`
	ReleaseYear  *int     `json:"releaseYear"`
	RatingType   string   `json:"ratingType" validate:"required"`
	Rating       *int     `json:"rating" validate:"required,min=0,max=100"`
	Director     *string  `json:"director"`
	Writer       *string  `json:"writer"`
	Cast         []string `json:"cast"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	TrailerURL   *string  `json:"trailerUrl"`
	VideoURL     *string  `json:"videoUrl"`
	Status       *string  `json:"status" validate:"omitempty,oneof=published draft"`

	HomeHero           *bool `json:"homeHero"`
	TypePageHero       *bool `json:"typePageHero"`
	HomeNewRelease     *bool `json:"homeNewRelease"`
	TypePageNewRelease *bool `json:"typePageNewRelease"`
	HomePopular        *bool `json:"homePopular"`
	TypePagePopular    *bool `json:"typePagePopular"`

	Seasons []SeasonNested `json:"seasons" validate:"omitempty,dive"`
}

func (c *ContentInsert) toModel(contentType database.ContentType) database.Content {
	status := database.ContentStatusPublished
	if c.Status != nil {
		status = *c.Status
	}

	content := database.Content{
		Title:        c.Title,
		Type:         contentType,
		Genres:       datatypes.NewJSONSlice(c.Genres),
		Description:  c.Description,
		ReleaseYear:  c.ReleaseYear,
		RatingType:   c.RatingType,
		Rating:       deref(c.Rating),
		Director:     c.Director,
		Writer:       c.Writer,
		Cast:         datatypes.NewJSONSlice(c.Cast),
		ThumbnailURL: c.ThumbnailURL,
		TrailerURL:   c.TrailerURL,
		VideoURL:     c.VideoURL,
		Status:       status,

		HomeHero:           derefBool(c.HomeHero),
		TypePageHero:       derefBool(c.TypePageHero),
		HomeNewRelease:     derefBool(c.HomeNewRelease),
		TypePageNewRelease: derefBool(c.TypePageNewRelease),
		HomePopular:        derefBool(c.HomePopular),
		TypePagePopular:    derefBool(c.TypePagePopular),
	}
	for i := range c.Seasons {
		content.Seasons = append(content.Seasons, c.Seasons[i].toModel())
	}
	return content
}

// ContentPatch is the writable shape for PUT /api/content/:id. Nil fields
// are absent from the request and keep their stored values (merge semantics).
type ContentPatch struct {
	Title        *string   `json:"title" validate:"omitempty,min=1"`
	Type         *string   `json:"type"`
	Genres       *[]string `json:"genres" validate:"omitempty,min=1,dive,required"`
	Description  *string   `json:"description"`
	ReleaseYear  *int      `json:"releaseYear"`
	RatingType   *string   `json:"ratingType" validate:"omitempty,min=1"`
	Rating       *int      `json:"rating" validate:"omitempty,min=0,max=100"`
	Director     *string   `json:"director"`
	Writer       *string   `json:"writer"`
	Cast         *[]string `json:"cast"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	TrailerURL   *string   `json:"trailerUrl"`
	VideoURL     *string   `json:"videoUrl"`
	Status       *string   `json:"status" validate:"omitempty,oneof=published draft"`

	HomeHero           *bool `json:"homeHero"`
	TypePageHero       *bool `json:"typePageHero"`
	HomeNewRelease     *bool `json:"homeNewRelease"`
	TypePageNewRelease *bool `json:"typePageNewRelease"`
	HomePopular        *bool `json:"homePopular"`
	TypePagePopular    *bool `json:"typePagePopular"`
}

func (p *ContentPatch) toUpdates(contentType *database.ContentType) map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent(updates, "title", p.Title)
	if contentType != nil {
		updates["type"] = *contentType
	}
	if p.Genres != nil {
		updates["genres"] = datatypes.NewJSONSlice(*p.Genres)
	}
	setIfPresent(updates, "description", p.Description)
	setIfPresent(updates, "release_year", p.ReleaseYear)
	setIfPresent(updates, "rating_type", p.RatingType)
	setIfPresent(updates, "rating", p.Rating)
	setIfPresent(updates, "director", p.Director)
	setIfPresent(updates, "writer", p.Writer)
	if p.Cast != nil {
		updates["cast"] = datatypes.NewJSONSlice(*p.Cast)
	}
	setIfPresent(updates, "thumbnail_url", p.ThumbnailURL)
	setIfPresent(updates, "trailer_url", p.TrailerURL)
	setIfPresent(updates, "video_url", p.VideoURL)
	setIfPresent(updates, "status", p.Status)
	setIfPresent(updates, "home_hero", p.HomeHero)
	setIfPresent(updates, "type_page_hero", p.TypePageHero)
	setIfPresent(updates, "home_new_release", p.HomeNewRelease)
	setIfPresent(updates, "type_page_new_release", p.TypePageNewRelease)
	setIfPresent(updates, "home_popular", p.HomePopular)
	setIfPresent(updates, "type_page_popular", p.TypePagePopular)
	return updates
}

// SeasonInsert is the writable shape for POST /api/seasons
type SeasonInsert struct {
	ContentID uint `json:"contentId" validate:"required"`
	SeasonNested
}

// SeasonPatch is the writable shape for PUT /api/seasons/:id
type SeasonPatch struct {
	SeasonNumber *int      `json:"seasonNumber" validate:"omitempty,min=1"`
	Description  *string   `json:"description"`
	ReleaseYear  *int      `json:"releaseYear"`
	RatingType   *string   `json:"ratingType" validate:"omitempty,min=1"`
	Rating       *int      `json:"rating" validate:"omitempty,min=0,max=100"`
	Director     *string   `json:"director"`
	Writer       *string   `json:"writer"`
	Cast         *[]string `json:"cast"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	TrailerURL   *string   `json:"trailerUrl"`

	HomeHero           *bool `json:"homeHero"`
	TypePageHero       *bool `json:"typePageHero"`
	HomeNewRelease     *bool `json:"homeNewRelease"`
	TypePageNewRelease *bool `json:"typePageNewRelease"`
	HomePopular        *bool `json:"homePopular"`
	TypePagePopular    *bool `json:"typePagePopular"`
}

func (p *SeasonPatch) toUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent(updates, "season_number", p.SeasonNumber)
	setIfPresent(updates, "description", p.Description)
	setIfPresent(updates, "release_year", p.ReleaseYear)
	setIfPresent(updates, "rating_type", p.RatingType)
	setIfPresent(updates, "rating", p.Rating)
	setIfPresent(updates, "director", p.Director)
	setIfPresent(updates, "writer", p.Writer)
	if p.Cast != nil {
		updates["cast"] = datatypes.NewJSONSlice(*p.Cast)
	}
	setIfPresent(updates, "thumbnail_url", p.ThumbnailURL)
	setIfPresent(updates, "trailer_url", p.TrailerURL)
	setIfPresent(updates, "home_hero", p.HomeHero)
	setIfPresent(updates, "type_page_hero", p.TypePageHero)
	setIfPresent(updates, "home_new_release", p.HomeNewRelease)
	setIfPresent(updates, "type_page_new_release", p.TypePageNewRelease)
	setIfPresent(updates, "home_popular", p.HomePopular)
	setIfPresent(updates, "type_page_popular", p.TypePagePopular)
	return updates
}

// EpisodeInsert is the writable shape for POST /api/episodes
type EpisodeInsert struct {
	SeasonID uint `json:"seasonId" validate:"required"`
	EpisodeNested
}

// EpisodePatch is the writable shape for PUT /api/episodes/:id
type EpisodePatch struct {
	EpisodeNumber *int    `json:"episodeNumber" validate:"omitempty,min=1"`
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Description   *string `json:"description"`
	Duration      *string `json:"duration"`
	VideoURL      *string `json:"videoUrl"`
	ThumbnailURL  *string `json:"thumbnailUrl"`
}

func (p *EpisodePatch) toUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent(updates, "episode_number", p.EpisodeNumber)
	setIfPresent(updates, "title", p.Title)
	setIfPresent(updates, "description", p.Description)
	setIfPresent(updates, "duration", p.Duration)
	setIfPresent(updates, "video_url", p.VideoURL)
	setIfPresent(updates, "thumbnail_url", p.ThumbnailURL)
	return updates
}

// UpcomingInsert is the writable shape for POST /api/upcoming-content.
// Unlike the legacy write path this is validated exactly like PUT.
type UpcomingInsert struct {
	Title        string   `json:"title" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Genres       []string `json:"genres" validate:"required,min=1,dive,required"`
	Episodes     *int     `json:"episodes" validate:"omitempty,min=0"`
	ReleaseDate  string   `json:"releaseDate" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	TrailerURL   *string  `json:"trailerUrl"`
	SectionOrder *int     `json:"sectionOrder"`
}

func (u *UpcomingInsert) toModel(contentType database.ContentType, releaseDate time.Time) database.UpcomingContent {
	sectionOrder := 0
	if u.SectionOrder != nil {
		sectionOrder = *u.SectionOrder
	}
	return database.UpcomingContent{
		Title:        u.Title,
		Type:         contentType,
		Genres:       datatypes.NewJSONSlice(u.Genres),
		Episodes:     u.Episodes,
		ReleaseDate:  releaseDate,
		Description:  u.Description,
		ThumbnailURL: u.ThumbnailURL,
		TrailerURL:   u.TrailerURL,
		SectionOrder: sectionOrder,
	}
}

// UpcomingPatch is the writable shape for PUT /api/upcoming-content/:id
type UpcomingPatch struct {
	Title        *string   `json:"title" validate:"omitempty,min=1"`
	Type         *string   `json:"type"`
	Genres       *[]string `json:"genres" validate:"omitempty,min=1,dive,required"`
	Episodes     *int      `json:"episodes" validate:"omitempty,min=0"`
	ReleaseDate  *string   `json:"releaseDate"`
	Description  *string   `json:"description" validate:"omitempty,min=1"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	TrailerURL   *string   `json:"trailerUrl"`
	SectionOrder *int      `json:"sectionOrder"`
}

func (p *UpcomingPatch) toUpdates(contentType *database.ContentType, releaseDate *time.Time) map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent(updates, "title", p.Title)
	if contentType != nil {
		updates["type"] = *contentType
	}
	if p.Genres != nil {
		updates["genres"] = datatypes.NewJSONSlice(*p.Genres)
	}
	setIfPresent(updates, "episodes", p.Episodes)
	if releaseDate != nil {
		updates["release_date"] = *releaseDate
	}
	setIfPresent(updates, "description", p.Description)
	setIfPresent(updates, "thumbnail_url", p.ThumbnailURL)
	setIfPresent(updates, "trailer_url", p.TrailerURL)
	setIfPresent(updates, "section_order", p.SectionOrder)
	return updates
}

func setIfPresent[T any](updates map[string]interface{}, column string, value *T) {
	if value != nil {
		updates[column] = *value
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefBool(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
