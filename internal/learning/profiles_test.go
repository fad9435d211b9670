package learning

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vbcards/pkg/models"
)

type profileFixture struct {
	service  *ProfileService
	profiles *fakeProfileStore
	settings *fakeSettingsStore
	deleter  *fakeDeleter
	now      time.Time
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()
	f := &profileFixture{
		profiles: newFakeProfileStore(),
		settings: newFakeSettingsStore(),
		deleter:  &fakeDeleter{},
		now:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = NewProfileService(f.profiles, f.settings, f.deleter, testLogger())
	f.service.clock = func() time.Time { return f.now }
	ids := 0
	f.service.newID = func() string {
		ids++
		return strings.Repeat("0", ids) // deterministic ids: "0", "00", ...
	}
	return f
}

func TestProfileCreate(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	profile, err := f.service.Create(ctx, "  Mia  ", "🐣", "#ff8800")
	require.NoError(t, err)

	assert.Equal(t, "Mia", profile.Name, "name is trimmed")
	assert.Equal(t, "🐣", profile.Avatar)
	assert.True(t, profile.CreatedAt.Equal(f.now))
	assert.Zero(t, profile.TotalWordsLearned)

	settings, err := f.settings.GetUserSettings(ctx, profile.UserID)
	require.NoError(t, err)
	require.NotNil(t, settings, "defaults are written alongside the profile")
	assert.True(t, settings.EnableReminders)
	assert.Equal(t, 10, settings.DailyGoal)
}

func TestProfileCreateRejectsBadNames(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	for _, name := range []string{"", "   ", strings.Repeat("x", 33)} {
		_, err := f.service.Create(ctx, name, "", "")
		assert.True(t, errors.Is(err, models.ErrInvalidProfileName), "name %q", name)
	}
	assert.Empty(t, f.profiles.rows, "nothing persisted on validation failure")

	// 32 runes of multi-byte text is still a valid name.
	_, err := f.service.Create(ctx, strings.Repeat("猫", 32), "", "")
	assert.NoError(t, err)
}

func TestProfileGetNotFound(t *testing.T) {
	f := newProfileFixture(t)

	_, err := f.service.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, models.ErrProfileNotFound))
}

func TestProfileUpdatePartial(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, "Mia", "🐣", "#ff8800")
	require.NoError(t, err)

	color := "#00ff00"
	updated, err := f.service.Update(ctx, created.UserID, ProfileUpdate{ThemeColor: &color})
	require.NoError(t, err)
	assert.Equal(t, "Mia", updated.Name, "unset fields are untouched")
	assert.Equal(t, color, updated.ThemeColor)

	bad := ""
	_, err = f.service.Update(ctx, created.UserID, ProfileUpdate{Name: &bad})
	assert.True(t, errors.Is(err, models.ErrInvalidProfileName))
}

func TestProfileTouchLastActive(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, "Mia", "", "")
	require.NoError(t, err)

	f.now = f.now.Add(time.Hour)
	require.NoError(t, f.service.TouchLastActive(ctx, created.UserID))

	profile, err := f.service.Get(ctx, created.UserID)
	require.NoError(t, err)
	assert.True(t, profile.LastActiveAt.Equal(f.now))

	app, err := f.settings.GetAppSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, app.LastActiveUserID)
}

func TestProfileDelete(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, "Mia", "", "")
	require.NoError(t, err)
	require.NoError(t, f.service.TouchLastActive(ctx, created.UserID))

	require.NoError(t, f.service.Delete(ctx, created.UserID))

	assert.Equal(t, []string{created.UserID}, f.deleter.deleted)
	app, err := f.settings.GetAppSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, app.LastActiveUserID, "last-active pointer cleared")

	err = f.service.Delete(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrProfileNotFound))
}
