// Package drafts holds in-progress form state for the admin screens. Drafts
// accumulate list edits (genres, cast, seasons, episodes) with the same
// trim/dedupe rules the forms apply, validate before submission, and convert
// to API inputs.
package drafts

import (
	"errors"
	"strings"

	"github.com/mantonx/streambase/pkg/client"
)

var (
	// ErrTitleRequired is returned when a draft has no title.
	ErrTitleRequired = errors.New("title is required")
	// ErrTypeRequired is returned when a draft has no valid content type.
	ErrTypeRequired = errors.New("type must be movie or tv_show")
	// ErrGenreRequired is returned when a draft has no genres.
	ErrGenreRequired = errors.New("at least one genre is required")
	// ErrSeasonRequired is returned when a TV show draft has no seasons.
	ErrSeasonRequired = errors.New("a tv show requires at least one season")
	// ErrReleaseDateRequired is returned when an upcoming draft has no
	// release date.
	ErrReleaseDateRequired = errors.New("release date is required")
	// ErrDescriptionRequired is returned when an upcoming draft has no
	// description.
	ErrDescriptionRequired = errors.New("description is required")
)

// addToList trims the value and appends it unless it is blank or already
// present. Blank and duplicate adds are silent no-ops.
func addToList(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

// removeFromList removes the first occurrence of value.
func removeFromList(list []string, value string) []string {
	for i, existing := range list {
		if existing == value {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// EpisodeDraft is one episode row inside a season draft.
type EpisodeDraft struct {
	EpisodeNumber int
	Title         string
	Description   string
	Duration      string
	VideoURL      string
	ThumbnailURL  string
}

// SeasonDraft is an in-progress season form, with its episode rows.
type SeasonDraft struct {
	SeasonNumber int
	Description  string
	ReleaseYear  int
	RatingType   string
	Rating       int
	Director     string
	Writer       string
	Cast         []string
	ThumbnailURL string
	TrailerURL   string
	Episodes     []EpisodeDraft
}

// AddCast adds a cast member, ignoring blanks and duplicates.
func (s *SeasonDraft) AddCast(name string) {
	s.Cast = addToList(s.Cast, name)
}

// RemoveCast removes a cast member by value.
func (s *SeasonDraft) RemoveCast(name string) {
	s.Cast = removeFromList(s.Cast, name)
}

// AddEpisode appends an episode row numbered after the last one.
func (s *SeasonDraft) AddEpisode() *EpisodeDraft {
	s.Episodes = append(s.Episodes, EpisodeDraft{EpisodeNumber: len(s.Episodes) + 1})
	return &s.Episodes[len(s.Episodes)-1]
}

// RemoveEpisode deletes the episode at index i and renumbers the rest.
func (s *SeasonDraft) RemoveEpisode(i int) {
	if i < 0 || i >= len(s.Episodes) {
		return
	}
	s.Episodes = append(s.Episodes[:i], s.Episodes[i+1:]...)
	for j := range s.Episodes {
		s.Episodes[j].EpisodeNumber = j + 1
	}
}

// ContentDraft is an in-progress catalog entry form.
type ContentDraft struct {
	Title        string
	Type         string
	Genres       []string
	Description  string
	ReleaseYear  int
	RatingType   string
	Rating       int
	Director     string
	Writer       string
	Cast         []string
	ThumbnailURL string
	TrailerURL   string
	VideoURL     string

	HomeHero           bool
	TypePageHero       bool
	HomeNewRelease     bool
	TypePageNewRelease bool
	HomePopular        bool
	TypePagePopular    bool

	Seasons []SeasonDraft
}

// AddGenre adds a genre, ignoring blanks and duplicates.
func (d *ContentDraft) AddGenre(genre string) {
	d.Genres = addToList(d.Genres, genre)
}

// RemoveGenre removes a genre by value.
func (d *ContentDraft) RemoveGenre(genre string) {
	d.Genres = removeFromList(d.Genres, genre)
}

// AddCast adds a cast member, ignoring blanks and duplicates.
func (d *ContentDraft) AddCast(name string) {
	d.Cast = addToList(d.Cast, name)
}

// RemoveCast removes a cast member by value.
func (d *ContentDraft) RemoveCast(name string) {
	d.Cast = removeFromList(d.Cast, name)
}

// AddSeason appends a season draft numbered after the last one.
func (d *ContentDraft) AddSeason() *SeasonDraft {
	d.Seasons = append(d.Seasons, SeasonDraft{SeasonNumber: len(d.Seasons) + 1})
	return &d.Seasons[len(d.Seasons)-1]
}

// RemoveSeason deletes the season at index i and renumbers the rest.
func (d *ContentDraft) RemoveSeason(i int) {
	if i < 0 || i >= len(d.Seasons) {
		return
	}
	d.Seasons = append(d.Seasons[:i], d.Seasons[i+1:]...)
	for j := range d.Seasons {
		d.Seasons[j].SeasonNumber = j + 1
	}
}

// Validate checks the draft before submission. Nothing is sent when it fails.
func (d *ContentDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.Type != "movie" && d.Type != "tv_show" {
		return ErrTypeRequired
	}
	if len(d.Genres) == 0 {
		return ErrGenreRequired
	}
	if d.Type == "tv_show" && len(d.Seasons) == 0 {
		return ErrSeasonRequired
	}
	return nil
}

// ToInput converts the draft to the API create payload. Call Validate first.
func (d *ContentDraft) ToInput() client.ContentInput {
	in := client.ContentInput{
		Title:        d.Title,
		Type:         d.Type,
		Genres:       append([]string(nil), d.Genres...),
		Description:  optional(d.Description),
		ReleaseYear:  optionalInt(d.ReleaseYear),
		RatingType:   d.RatingType,
		Rating:       d.Rating,
		Director:     optional(d.Director),
		Writer:       optional(d.Writer),
		Cast:         append([]string(nil), d.Cast...),
		ThumbnailURL: optional(d.ThumbnailURL),
		TrailerURL:   optional(d.TrailerURL),

		HomeHero:           d.HomeHero,
		TypePageHero:       d.TypePageHero,
		HomeNewRelease:     d.HomeNewRelease,
		TypePageNewRelease: d.TypePageNewRelease,
		HomePopular:        d.HomePopular,
		TypePagePopular:    d.TypePagePopular,
	}
	if d.Type == "movie" {
		in.VideoURL = optional(d.VideoURL)
	}
	for _, s := range d.Seasons {
		in.Seasons = append(in.Seasons, s.toInput())
	}
	return in
}

func (s *SeasonDraft) toInput() client.SeasonInput {
	in := client.SeasonInput{
		SeasonNumber: s.SeasonNumber,
		Description:  optional(s.Description),
		ReleaseYear:  optionalInt(s.ReleaseYear),
		RatingType:   s.RatingType,
		Rating:       s.Rating,
		Director:     optional(s.Director),
		Writer:       optional(s.Writer),
		Cast:         append([]string(nil), s.Cast...),
		ThumbnailURL: optional(s.ThumbnailURL),
		TrailerURL:   optional(s.TrailerURL),
	}
	for _, e := range s.Episodes {
		in.Episodes = append(in.Episodes, client.EpisodeInput{
			EpisodeNumber: e.EpisodeNumber,
			Title:         e.Title,
			Description:   optional(e.Description),
			Duration:      optional(e.Duration),
			VideoURL:      optional(e.VideoURL),
			ThumbnailURL:  optional(e.ThumbnailURL),
		})
	}
	return in
}

// Reset restores the zero draft after a successful submission.
func (d *ContentDraft) Reset() {
	*d = ContentDraft{}
}

// UpcomingDraft is an in-progress coming-soon form.
type UpcomingDraft struct {
	Title        string
	Type         string
	Genres       []string
	Episodes     int
	ReleaseDate  string
	Description  string
	ThumbnailURL string
	TrailerURL   string
	SectionOrder int
}

// AddGenre adds a genre, ignoring blanks and duplicates.
func (d *UpcomingDraft) AddGenre(genre string) {
	d.Genres = addToList(d.Genres, genre)
}

// RemoveGenre removes a genre by value.
func (d *UpcomingDraft) RemoveGenre(genre string) {
	d.Genres = removeFromList(d.Genres, genre)
}

// Validate checks the draft before submission.
func (d *UpcomingDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.Type != "movie" && d.Type != "tv_show" {
		return ErrTypeRequired
	}
	if len(d.Genres) == 0 {
		return ErrGenreRequired
	}
	if strings.TrimSpace(d.ReleaseDate) == "" {
		return ErrReleaseDateRequired
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// ToInput converts the draft to the API create payload. Call Validate first.
func (d *UpcomingDraft) ToInput() client.UpcomingInput {
	in := client.UpcomingInput{
		Title:        d.Title,
		Type:         d.Type,
		Genres:       append([]string(nil), d.Genres...),
		ReleaseDate:  d.ReleaseDate,
		Description:  d.Description,
		ThumbnailURL: optional(d.ThumbnailURL),
		TrailerURL:   optional(d.TrailerURL),
	}
	if d.Type == "tv_show" && d.Episodes > 0 {
		in.Episodes = optionalInt(d.Episodes)
	}
	if d.SectionOrder != 0 {
		order := d.SectionOrder
		in.SectionOrder = &order
	}
	return in
}

// Reset restores the zero draft after a successful submission.
func (d *UpcomingDraft) Reset() {
	*d = UpcomingDraft{}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
