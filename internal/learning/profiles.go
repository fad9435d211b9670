package learning

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/vbcards/pkg/models"
)

// ProfileUpdate carries partial profile changes; nil fields are kept as-is.
type ProfileUpdate struct {
	Name       *string
	Avatar     *string
	ThemeColor *string
}

// ProfileService manages the lifecycle of local user profiles.
type ProfileService struct {
	profiles ProfileStore
	settings SettingsStore
	deleter  UserDataDeleter
	logger   *logrus.Logger
	clock    func() time.Time
	newID    func() string
}

// NewProfileService wires the stores with the real clock and UUID source.
func NewProfileService(profiles ProfileStore, settings SettingsStore, deleter UserDataDeleter, logger *logrus.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		settings: settings,
		deleter:  deleter,
		logger:   logger,
		clock:    time.Now,
		newID:    uuid.NewString,
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > models.MaxProfileNameLen {
		return "", models.ErrInvalidProfileName
	}
	return name, nil
}

// Create validates the name, then writes a fresh profile with a zeroed
// snapshot and its default settings row. Nothing is persisted on a
// validation failure.
func (s *ProfileService) Create(ctx context.Context, name, avatar, themeColor string) (*models.UserProfile, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	profile := &models.UserProfile{
		UserID:       s.newID(),
		Name:         name,
		Avatar:       avatar,
		ThemeColor:   themeColor,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.settings.UpsertUserSettings(ctx, models.DefaultUserSettings(profile.UserID, now)); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", profile.UserID).Info("profile created")
	return profile, nil
}

// Get returns a profile or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.ErrProfileNotFound
	}
	return profile, nil
}

// List returns all profiles, most recently active first.
func (s *ProfileService) List(ctx context.Context) ([]models.UserProfile, error) {
	return s.profiles.List(ctx)
}

// Update applies a partial update to a profile.
func (s *ProfileService) Update(ctx context.Context, userID string, upd ProfileUpdate) (*models.UserProfile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name, err := validateName(*upd.Name)
		if err != nil {
			return nil, err
		}
		profile.Name = name
	}
	if upd.Avatar != nil {
		profile.Avatar = *upd.Avatar
	}
	if upd.ThemeColor != nil {
		profile.ThemeColor = *upd.ThemeColor
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// TouchLastActive bumps the profile's last-active time and records it as the
// app-wide last active user.
func (s *ProfileService) TouchLastActive(ctx context.Context, userID string) error {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	profile.LastActiveAt = s.clock()
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return err
	}
	return s.settings.SetLastActiveUser(ctx, userID)
}

// Delete removes a profile together with all its progress, history, daily
// stats and settings in one sweep, and clears the last-active pointer if it
// referenced the deleted profile.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	if err := s.deleter.DeleteUserData(ctx, userID); err != nil {
		return err
	}

	app, err := s.settings.GetAppSettings(ctx)
	if err != nil {
		return err
	}
	if app.LastActiveUserID == userID {
		if err := s.settings.SetLastActiveUser(ctx, ""); err != nil {
			return err
		}
	}

	s.logger.WithField("user_id", userID).Info("profile deleted")
	return nil
}
