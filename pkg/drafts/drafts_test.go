package drafts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMovieDraft() *ContentDraft {
	return &ContentDraft{
		Title:      "Dune",
		Type:       "movie",
		Genres:     []string{"Sci-Fi"},
		RatingType: "IMDB",
		Rating:     83,
	}
}

func TestAddGenre(t *testing.T) {
	d := &ContentDraft{}

	d.AddGenre("Sci-Fi")
	d.AddGenre("  Drama  ")
	assert.Equal(t, []string{"Sci-Fi", "Drama"}, d.Genres)

	// Duplicates and blanks are silent no-ops
	d.AddGenre("Sci-Fi")
	d.AddGenre("")
	d.AddGenre("   ")
	assert.Equal(t, []string{"Sci-Fi", "Drama"}, d.Genres)
}

func TestRemoveGenre(t *testing.T) {
	d := &ContentDraft{Genres: []string{"Sci-Fi", "Drama", "Action"}}

	d.RemoveGenre("Drama")
	assert.Equal(t, []string{"Sci-Fi", "Action"}, d.Genres)

	d.RemoveGenre("Comedy")
	assert.Equal(t, []string{"Sci-Fi", "Action"}, d.Genres)
}

func TestCastEditing(t *testing.T) {
	d := &ContentDraft{}

	d.AddCast("Timothée Chalamet")
	d.AddCast("Zendaya")
	d.AddCast("Zendaya")
	assert.Len(t, d.Cast, 2)

	d.RemoveCast("Zendaya")
	assert.Equal(t, []string{"Timothée Chalamet"}, d.Cast)
}

func TestSeasonNumbering(t *testing.T) {
	d := &ContentDraft{Type: "tv_show"}

	first := d.AddSeason()
	second := d.AddSeason()
	third := d.AddSeason()
	assert.Equal(t, 1, first.SeasonNumber)
	assert.Equal(t, 2, second.SeasonNumber)
	assert.Equal(t, 3, third.SeasonNumber)

	// Removing the middle season renumbers the tail
	d.RemoveSeason(1)
	require.Len(t, d.Seasons, 2)
	assert.Equal(t, 1, d.Seasons[0].SeasonNumber)
	assert.Equal(t, 2, d.Seasons[1].SeasonNumber)

	// Out-of-range removals are no-ops
	d.RemoveSeason(-1)
	d.RemoveSeason(5)
	assert.Len(t, d.Seasons, 2)
}

func TestEpisodeNumbering(t *testing.T) {
	s := &SeasonDraft{SeasonNumber: 1}

	s.AddEpisode().Title = "Pilot"
	s.AddEpisode().Title = "Second"
	s.AddEpisode().Title = "Third"

	s.RemoveEpisode(0)
	require.Len(t, s.Episodes, 2)
	assert.Equal(t, "Second", s.Episodes[0].Title)
	assert.Equal(t, 1, s.Episodes[0].EpisodeNumber)
	assert.Equal(t, 2, s.Episodes[1].EpisodeNumber)
}

func TestContentDraftValidate(t *testing.T) {
	t.Run("valid movie", func(t *testing.T) {
		assert.NoError(t, validMovieDraft().Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		d := validMovieDraft()
		d.Title = "   "
		assert.ErrorIs(t, d.Validate(), ErrTitleRequired)
	})

	t.Run("bad type", func(t *testing.T) {
		d := validMovieDraft()
		d.Type = "documentary"
		assert.ErrorIs(t, d.Validate(), ErrTypeRequired)
	})

	t.Run("no genres", func(t *testing.T) {
		d := validMovieDraft()
		d.Genres = nil
		assert.ErrorIs(t, d.Validate(), ErrGenreRequired)
	})

	t.Run("tv show needs a season", func(t *testing.T) {
		d := validMovieDraft()
		d.Type = "tv_show"
		assert.ErrorIs(t, d.Validate(), ErrSeasonRequired)

		d.AddSeason()
		assert.NoError(t, d.Validate())
	})
}

func TestContentDraftToInput(t *testing.T) {
	d := validMovieDraft()
	d.Description = "Desert planet epic"
	d.VideoURL = "https://cdn.example.com/dune.mp4"

	in := d.ToInput()
	assert.Equal(t, "Dune", in.Title)
	require.NotNil(t, in.Description)
	assert.Equal(t, "Desert planet epic", *in.Description)
	require.NotNil(t, in.VideoURL)

	// TV shows never send a movie video URL
	d.Type = "tv_show"
	d.AddSeason().AddEpisode().Title = "Pilot"
	in = d.ToInput()
	assert.Nil(t, in.VideoURL)
	require.Len(t, in.Seasons, 1)
	require.Len(t, in.Seasons[0].Episodes, 1)
	assert.Equal(t, "Pilot", in.Seasons[0].Episodes[0].Title)
}

func TestContentDraftReset(t *testing.T) {
	d := validMovieDraft()
	d.AddSeason()
	d.Reset()
	assert.Equal(t, ContentDraft{}, *d)
}

func TestUpcomingDraftValidate(t *testing.T) {
	d := &UpcomingDraft{
		Title:       "Dune: Part Three",
		Type:        "movie",
		Genres:      []string{"Sci-Fi"},
		ReleaseDate: "2025-06-01",
		Description: "The saga concludes.",
	}
	require.NoError(t, d.Validate())

	d.ReleaseDate = ""
	assert.ErrorIs(t, d.Validate(), ErrReleaseDateRequired)

	d.ReleaseDate = "2025-06-01"
	d.Description = ""
	assert.ErrorIs(t, d.Validate(), ErrDescriptionRequired)
}

func TestUpcomingDraftToInput(t *testing.T) {
	d := &UpcomingDraft{
		Title:       "New Season",
		Type:        "tv_show",
		Genres:      []string{"Drama"},
		Episodes:    8,
		ReleaseDate: "2025-06-01",
		Description: "Coming soon.",
	}

	in := d.ToInput()
	require.NotNil(t, in.Episodes)
	assert.Equal(t, 8, *in.Episodes)

	// Episode counts only apply to TV shows
	d.Type = "movie"
	in = d.ToInput()
	assert.Nil(t, in.Episodes)

	d.Reset()
	assert.Equal(t, UpcomingDraft{}, *d)
}
