package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mantonx/streambase/internal/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&database.User{},
		&database.Content{},
		&database.Season{},
		&database.Episode{},
		&database.UpcomingContent{},
	))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}

func movieFixture(title string) *database.Content {
	return &database.Content{
		Title:      title,
		Type:       database.ContentTypeMovie,
		Genres:     datatypes.NewJSONSlice([]string{"Sci-Fi"}),
		RatingType: "IMDB",
		Rating:     83,
		Status:     database.ContentStatusPublished,
	}
}

func tvShowFixture(title string, seasons int, episodesPerSeason int) *database.Content {
	show := &database.Content{
		Title:      title,
		Type:       database.ContentTypeTVShow,
		Genres:     datatypes.NewJSONSlice([]string{"Drama"}),
		RatingType: "IMDB",
		Rating:     90,
		Status:     database.ContentStatusPublished,
	}
	for s := 1; s <= seasons; s++ {
		season := database.Season{
			SeasonNumber: s,
			RatingType:   "IMDB",
			Rating:       90,
		}
		for e := 1; e <= episodesPerSeason; e++ {
			season.Episodes = append(season.Episodes, database.Episode{
				EpisodeNumber: e,
				Title:         "Episode",
			})
		}
		show.Seasons = append(show.Seasons, season)
	}
	return show
}

func TestCreateContent_Movie(t *testing.T) {
	store := NewStorage(setupTestDB(t))
	ctx := context.Background()

	movie := movieFixture("Dune")
	movie.Description = strPtr("Desert planet epic")
	movie.ReleaseYear = intPtr(2021)

	require.NoError(t, store.CreateContent(ctx, movie))
	assert.NotZero(t, movie.ID)

	stored, err := store.GetContentByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", stored.Title)
	assert.Equal(t, database.ContentTypeMovie, stored.Type)
	assert.Equal(t, 0, stored.Views)
	assert.False(t, stored.HomeHero)
	assert.False(t, stored.HomePopular)
	assert.NotZero(t, stored.CreatedAt)
	assert.NotZero(t, stored.UpdatedAt)
}

func TestCreateContent_TVShowCascade(t *testing.T) {
	db := setupTestDB(t)
	store := NewStorage(db)
	ctx := context.Background()

	show := tvShowFixture("The Expanse", 2, 3)
	require.NoError(t, store.CreateContent(ctx, show))

	var seasonCount, episodeCount int64
	require.NoError(t, db.Model(&database.Season{}).Count(&seasonCount).Error)
	require.NoError(t, db.Model(&database.Episode{}).Count(&episodeCount).Error)
	assert.Equal(t, int64(2), seasonCount)
	assert.Equal(t, int64(6), episodeCount)

	// Parent keys are wired through the whole tree
	seasons, err := store.GetSeasonsByContentID(ctx, show.ID)
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	for _, season := range seasons {
		assert.Equal(t, show.ID, season.ContentID)
		require.Len(t, season.Episodes, 3)
		for _, episode := range season.Episodes {
			assert.Equal(t, season.ID, episode.SeasonID)
		}
	}
}

func TestCreateContent_CascadeRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	store := NewStorage(db)
	ctx := context.Background()

	show := tvShowFixture("Broken Show", 2, 2)
	// The second season reuses the first one's primary key, which fails
	// mid-cascade after the content row and first season are in.
	show.Seasons[0].ID = 42
	show.Seasons[1].ID = 42

	err := store.CreateContent(ctx, show)
	require.Error(t, err)

	var contentCount, seasonCount, episodeCount int64
	require.NoError(t, db.Model(&database.Content{}).Count(&contentCount).Error)
	require.NoError(t, db.Model(&database.Season{}).Count(&seasonCount).Error)
	require.NoError(t, db.Model(&database.Episode{}).Count(&episodeCount).Error)
	assert.Zero(t, contentCount)
	assert.Zero(t, seasonCount)
	assert.Zero(t, episodeCount)
}

func TestUpdateContent_MergeSemantics(t *testing.T) {
	store := NewStorage(setupTestDB(t))
	ctx := context.Background()

	movie := movieFixture("Arrival")
	require.NoError(t, store.CreateContent(ctx, movie))

	// Rating changes, title is absent from the update and must survive
	updated, err := store.UpdateContent(ctx, movie.ID, map[string]interface{}{
		"rating": 94,
	})
	require.NoError(t, err)
	assert.Equal(t, "Arrival", updated.Title)
	assert.Equal(t, 94, updated.Rating)
}

func TestUpdateContent_NotFound(t *testing.T) {
	store := NewStorage(setupTestDB(t))

	_, err := store.UpdateContent(context.Background(), 999, map[string]interface{}{"rating": 50})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteContent(t *testing.T) {
	store := NewStorage(setupTestDB(t))
	ctx := context.Background()

	movie := movieFixture("Tenet")
	require.NoError(t, store.CreateContent(ctx, movie))
	require.NoError(t, store.DeleteContent(ctx, movie.ID))

	_, err := store.GetContentByID(ctx, movie.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = store.DeleteContent(ctx, movie.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetPublishedContent_FiltersDrafts(t *testing.T) {
	store := NewStorage(setupTestDB(t))
	ctx := context.Background()

	published := movieFixture("Visible")
	require.NoError(t, store.CreateContent(ctx, published))

	draft := movieFixture("Hidden")
	draft.Status = database.ContentStatusDraft
	require.NoError(t, store.CreateContent(ctx, draft))

	items, err := store.GetPublishedContent(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Visible", items[0].Title)

	all, err := store.GetAllContent(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteSeason_CascadesToEpisodes(t *testing.T) {
	db := setupTestDB(t)
	store := NewStorage(db)
	ctx := context.Background()

	show := tvShowFixture("Dark", 2, 4)
	require.NoError(t, store.CreateContent(ctx, show))

	target := show.Seasons[0]
	require.NoError(t, store.DeleteSeason(ctx, target.ID))

	episodes, err := store.GetEpisodesBySeasonID(ctx, target.ID)
	require.NoError(t, err)
	assert.Empty(t, episodes)

	// The sibling season is untouched
	remaining, err := store.GetSeasonsByContentID(ctx, show.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Len(t, remaining[0].Episodes, 4)

	err = store.DeleteSeason(ctx, target.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSeasonOrdering(t *testing.T) {
	store := NewStorage(setupTestDB(t))
	ctx := context.Background()

	show := tvShowFixture("Ordered", 0, 0)
	require.NoError(t, store.CreateContent(ctx, show))

	for _, n := range []int{3, 1, 2} {
		require.NoError(t, store.CreateSeason(ctx, &database.Season{
			ContentID:    show.ID,
			SeasonNumber: n,
			RatingType:   "IMDB",
			Rating:       80,
		}))
	}

	seasons, err := store.GetSeasonsByContentID(ctx, show.ID)
	require.NoError(t, err)
	require.Len(t, seasons, 3)
	for i, season := range seasons {
		assert.Equal(t, i+1, season.SeasonNumber)
	}
}

func TestEpisodeCRUD(t *testing.T) {
	store := NewStorage(setupTestDB(t))
	ctx := context.Background()

	show := tvShowFixture("Pilot Show", 1, 0)
	require.NoError(t, store.CreateContent(ctx, show))
	seasonID := show.Seasons[0].ID

	episode := &database.Episode{
		SeasonID:      seasonID,
		EpisodeNumber: 1,
		Title:         "Pilot",
		Duration:      strPtr("52m"),
	}
	require.NoError(t, store.CreateEpisode(ctx, episode))

	updated, err := store.UpdateEpisode(ctx, episode.ID, map[string]interface{}{
		"title": "Pilot (Extended)",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pilot (Extended)", updated.Title)
	require.NotNil(t, updated.Duration)
	assert.Equal(t, "52m", *updated.Duration)

	require.NoError(t, store.DeleteEpisode(ctx, episode.ID))
	_, err = store.GetEpisodeByID(ctx, episode.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpcomingOrderedBySection(t *testing.T) {
	store := NewStorage(setupTestDB(t))
	ctx := context.Background()

	for _, item := range []struct {
		title string
		order int
	}{
		{"Third", 3},
		{"First", 1},
		{"Second", 2},
	} {
		require.NoError(t, store.CreateUpcoming(ctx, &database.UpcomingContent{
			Title:        item.title,
			Type:         database.ContentTypeMovie,
			Genres:       datatypes.NewJSONSlice([]string{"Action"}),
			ReleaseDate:  mustDate(t, "2025-06-01"),
			Description:  "Soon",
			SectionOrder: item.order,
		}))
	}

	items, err := store.GetAllUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "Second", items[1].Title)
	assert.Equal(t, "Third", items[2].Title)
}

func TestUserLookup(t *testing.T) {
	store := NewStorage(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, &database.User{Username: "admin", Password: "hashed"}))

	user, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = store.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
