package member_inspector

import (
	"errors"
	"fmt"
	"os"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/roleprobe/internal/modules/member_inspector/domain"
	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath is where the settings document is read from when no path is given.
const DefaultSettingsPath = "settings.json"

// ErrInvalidSettings is returned when the settings document is missing required values.
var ErrInvalidSettings = errors.New("invalid settings")

// SettingsDocument mirrors the on-disk settings file.
// JSON documents are accepted since JSON is valid YAML.
type SettingsDocument struct {
	CommunityServerID string `yaml:"community_server_id"`
	PremiumRoleID     string `yaml:"premium_role_id"`
	OwnerUserID       string `yaml:"owner_user_id"`
}

// LoadSettings reads and validates the settings document at path.
func LoadSettings(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes and validates a settings document.
func ParseSettings(data []byte) (domain.Settings, error) {
	var doc SettingsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return doc.Validate()
}

// Validate checks the required IDs and converts the document to domain settings.
func (d SettingsDocument) Validate() (domain.Settings, error) {
	serverID, err := parseRequiredID("community_server_id", d.CommunityServerID)
	if err != nil {
		return domain.Settings{}, err
	}

	premiumRoleID, err := parseRequiredID("premium_role_id", d.PremiumRoleID)
	if err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		CommunityServerID: serverID,
		PremiumRoleID:     premiumRoleID,
		OwnerUserID:       d.OwnerUserID,
	}, nil
}

func parseRequiredID(key, value string) (snowflake.ID, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidSettings, key)
	}

	id, err := snowflake.Parse(value)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalidSettings, key, value)
	}

	return id, nil
}
