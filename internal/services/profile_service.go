package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fazla-cloud/thunder-agency-platform/internal/constants"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"github.com/fazla-cloud/thunder-agency-platform/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidRole      = errors.New("invalid role")
	ErrCannotModifySelf = errors.New("admins cannot change their own role or status")
)

// UnknownName is shown for profiles without a full name.
const UnknownName = "Unknown"

// ProfileService resolves and edits profiles.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, logger *slog.Logger) *ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Resolve returns the profile of an authenticated user. Any failure,
// including a missing row, is reported as no profile.
func (s *ProfileService) Resolve(userID string) (*models.Profile, bool) {
	if userID == "" {
		return nil, false
	}
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("profile lookup failed", "user_id", userID, "error", err)
		}
		return nil, false
	}
	return profile, true
}

// GetProfile returns a profile by ID.
func (s *ProfileService) GetProfile(id string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// UpdateProfileInput holds the self-editable profile fields.
type UpdateProfileInput struct {
	FullName *string
	Title    *string
}

// UpdateProfile edits the viewer's own name and title. A blank title clears it.
func (s *ProfileService) UpdateProfile(id string, input UpdateProfileInput) (*models.Profile, error) {
	if _, err := s.GetProfile(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.FullName != nil {
		if !minRunes(*input.FullName, constants.MinFullNameLength) {
			return nil, ErrFullNameTooShort
		}
		fields["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.Title != nil {
		fields["title"] = nullable(trimmedOrNil(input.Title))
	}

	if len(fields) > 0 {
		if err := s.profileRepo.UpdateFields(id, fields); err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return s.GetProfile(id)
}

// SetAvatar stores the public URL of a profile's avatar.
func (s *ProfileService) SetAvatar(id, url string) (*models.Profile, error) {
	if _, err := s.GetProfile(id); err != nil {
		return nil, err
	}
	if err := s.profileRepo.UpdateFields(id, map[string]any{"avatar_url": url}); err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	return s.GetProfile(id)
}

// ListProfiles returns one page of profiles and the total count.
func (s *ProfileService) ListProfiles(filter repository.ProfileFilter, page utils.PaginationParams) ([]models.Profile, int64, error) {
	profiles, total, err := s.profileRepo.List(filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, total, nil
}

// Assignees returns the active designers and marketers.
func (s *ProfileService) Assignees() ([]models.Profile, error) {
	active := true
	profiles, _, err := s.profileRepo.List(repository.ProfileFilter{IsActive: &active}, utils.AllRows)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignees: %w", err)
	}
	assignees := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Role.IsAssignee() {
			assignees = append(assignees, p)
		}
	}
	return assignees, nil
}

// AdminUpdateInput holds the fields only admins may change.
type AdminUpdateInput struct {
	Role     *models.Role
	IsActive *bool
}

// AdminUpdate changes another user's role or active flag.
func (s *ProfileService) AdminUpdate(actorID, id string, input AdminUpdateInput) (*models.Profile, error) {
	if _, err := s.GetProfile(id); err != nil {
		return nil, err
	}
	if actorID == id {
		return nil, ErrCannotModifySelf
	}

	fields := map[string]any{}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, ErrInvalidRole
		}
		fields["role"] = string(*input.Role)
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	if len(fields) > 0 {
		if err := s.profileRepo.UpdateFields(id, fields); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		s.logger.Info("user updated by admin", "actor_id", actorID, "user_id", id, "fields", len(fields))
	}

	return s.GetProfile(id)
}

// SetRoleByEmail assigns role to the user registered with email.
func (s *ProfileService) SetRoleByEmail(email string, role models.Role) (*models.Profile, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	user, err := s.userRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if err := s.profileRepo.UpdateFields(user.ID, map[string]any{"role": string(role)}); err != nil {
		return nil, fmt.Errorf("failed to set role: %w", err)
	}
	return s.GetProfile(user.ID)
}

// Email returns the login email of a user.
func (s *ProfileService) Email(id string) (string, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	return user.Email, nil
}

// Profiles returns the profiles among ids keyed by ID. Lookup failures are
// logged and yield an empty map.
func (s *ProfileService) Profiles(ids []string) map[string]models.Profile {
	out := map[string]models.Profile{}
	profiles, err := s.profileRepo.FindByIDs(uniqueStrings(ids))
	if err != nil {
		s.logger.Warn("profile batch lookup failed", "count", len(ids), "error", err)
		return out
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out
}

// NameOf returns a lookup from profile ID to display name over profiles.
func NameOf(profiles map[string]models.Profile) func(id string) string {
	return func(id string) string {
		p, ok := profiles[id]
		if !ok {
			return UnknownName
		}
		return p.DisplayName(UnknownName)
	}
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}

	return result
}
