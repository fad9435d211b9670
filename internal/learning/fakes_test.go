package learning

// In-memory store fakes for the tests in this package. Gets hand back copies
// so state only changes through Upsert, like the real repositories.

import (
	"context"
	"sort"

	"github.com/example/vbcards/pkg/models"
)

type fakeProgressStore struct {
	rows map[string]models.WordProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{rows: make(map[string]models.WordProgress)}
}

func (f *fakeProgressStore) GetByID(_ context.Context, id string) (*models.WordProgress, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProgressStore) ListByUser(_ context.Context, userID string) ([]models.WordProgress, error) {
	var out []models.WordProgress
	for _, p := range f.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProgressStore) ListByUserAndLevel(_ context.Context, userID string, level int) ([]models.WordProgress, error) {
	var out []models.WordProgress
	for _, p := range f.rows {
		if p.UserID == userID && p.Level == level {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProgressStore) Upsert(_ context.Context, p *models.WordProgress) error {
	f.rows[p.ID] = *p
	return nil
}

type fakeHistoryStore struct {
	appended []models.LearningHistory
}

func (f *fakeHistoryStore) Append(_ context.Context, h *models.LearningHistory) error {
	f.appended = append(f.appended, *h)
	return nil
}

type fakeDailyStatsStore struct {
	rows map[string]models.DailyStats
}

func newFakeDailyStatsStore() *fakeDailyStatsStore {
	return &fakeDailyStatsStore{rows: make(map[string]models.DailyStats)}
}

func (f *fakeDailyStatsStore) Get(_ context.Context, userID, dateKey string) (*models.DailyStats, error) {
	s, ok := f.rows[models.DailyStatsID(userID, dateKey)]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeDailyStatsStore) ListByUser(_ context.Context, userID string) ([]models.DailyStats, error) {
	var out []models.DailyStats
	for _, s := range f.rows {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeDailyStatsStore) Upsert(_ context.Context, s *models.DailyStats) error {
	f.rows[s.ID] = *s
	return nil
}

type fakeProfileStore struct {
	rows map[string]models.UserProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{rows: make(map[string]models.UserProfile)}
}

func (f *fakeProfileStore) GetByID(_ context.Context, userID string) (*models.UserProfile, error) {
	p, ok := f.rows[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfileStore) List(_ context.Context) ([]models.UserProfile, error) {
	var out []models.UserProfile
	for _, p := range f.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastActiveAt.After(out[j].LastActiveAt) })
	return out, nil
}

func (f *fakeProfileStore) Upsert(_ context.Context, p *models.UserProfile) error {
	f.rows[p.UserID] = *p
	return nil
}

type fakeSettingsStore struct {
	user map[string]models.UserSettings
	app  models.AppSettings
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{
		user: make(map[string]models.UserSettings),
		app:  models.AppSettings{ID: models.AppSettingsID, Version: models.SchemaVersion},
	}
}

func (f *fakeSettingsStore) GetUserSettings(_ context.Context, userID string) (*models.UserSettings, error) {
	s, ok := f.user[userID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSettingsStore) UpsertUserSettings(_ context.Context, s *models.UserSettings) error {
	f.user[s.UserID] = *s
	return nil
}

func (f *fakeSettingsStore) GetAppSettings(_ context.Context) (*models.AppSettings, error) {
	app := f.app
	return &app, nil
}

func (f *fakeSettingsStore) UpsertAppSettings(_ context.Context, s *models.AppSettings) error {
	f.app = *s
	return nil
}

func (f *fakeSettingsStore) SetLastActiveUser(_ context.Context, userID string) error {
	f.app.LastActiveUserID = userID
	return nil
}

type fakeDeleter struct {
	deleted []string
}

func (f *fakeDeleter) DeleteUserData(_ context.Context, userID string) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeManifestSource struct {
	manifests map[int]*models.LevelManifest
}

func (f *fakeManifestSource) Level(level int) (*models.LevelManifest, error) {
	m, ok := f.manifests[level]
	if !ok {
		return nil, nil
	}
	return m, nil
}
