package services

import (
	"regexp"
	"strings"

	"portal-api/config"
)

// AccessConfig is the access-control table: who may administer what. It is
// built once at startup from configuration; changing it requires a redeploy.
type AccessConfig struct {
	superadminIDs map[string]bool
	crIDsByClass  map[string]map[string]bool
}

// RoleService answers the single question the rest of the portal asks:
// does this identity have administrative rights over this class.
type RoleService struct {
	access AccessConfig
}

func NewRoleService(cfg *config.Config) *RoleService {
	access := AccessConfig{
		superadminIDs: make(map[string]bool),
		crIDsByClass:  make(map[string]map[string]bool),
	}
	for _, id := range cfg.SuperadminIDs {
		access.superadminIDs[strings.ToLower(id)] = true
	}
	for classID, ids := range cfg.CRIDsByClass {
		allowed := make(map[string]bool, len(ids))
		for _, id := range ids {
			allowed[strings.ToLower(id)] = true
		}
		access.crIDsByClass[strings.ToLower(classID)] = allowed
	}
	return &RoleService{access: access}
}

// IsSuperadmin reports whether any of the identity's ids (SRN, PESU id,
// email) is a superadmin. Matching is case-insensitive.
func (s *RoleService) IsSuperadmin(userIDs []string) bool {
	for _, id := range userIDs {
		if s.access.superadminIDs[strings.ToLower(id)] {
			return true
		}
	}
	return false
}

// IsCR reports whether the identity is a class representative for classID.
func (s *RoleService) IsCR(userIDs []string, classID string) bool {
	allowed, ok := s.access.crIDsByClass[strings.ToLower(classID)]
	if !ok {
		return false
	}
	for _, id := range userIDs {
		if allowed[strings.ToLower(id)] {
			return true
		}
	}
	return false
}

// IsAdmin is the capability check consulted before any write to materials,
// calendar or settings.
func (s *RoleService) IsAdmin(userIDs []string, classID string) bool {
	return s.IsSuperadmin(userIDs) || s.IsCR(userIDs, classID)
}

var (
	digitsPattern   = regexp.MustCompile(`\d+`)
	nonAlnumPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// ClassID derives the canonical class id from profile fields.
// Format: Sem{semester}-{section}, both stripped to alphanumerics.
func ClassID(semester, section string) string {
	sem := strings.TrimSpace(semester)
	if match := digitsPattern.FindString(sem); match != "" {
		sem = match
	}
	sem = nonAlnumPattern.ReplaceAllString(sem, "")
	sec := nonAlnumPattern.ReplaceAllString(strings.TrimSpace(section), "")
	return "Sem" + sem + "-" + sec
}

// SectionFromClassID extracts the section part of a class id, or "" when the
// id has no section part.
func SectionFromClassID(classID string) string {
	parts := strings.Split(classID, "-")
	if len(parts) >= 2 {
		return parts[len(parts)-1]
	}
	return ""
}
