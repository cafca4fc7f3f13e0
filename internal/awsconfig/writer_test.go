package awsconfig_test

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/BerryBytes/frost/internal/awsconfig"
	"github.com/BerryBytes/frost/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

func newWriter(fs afero.Fs) *awsconfig.Writer {
	return awsconfig.NewWriter(fs, func() (string, error) { return "/home/frost", nil }, zap.NewNop())
}

func TestWriteProfiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := newWriter(fs)

	profiles := []models.Profile{
		{
			Name:         "sbx-admin",
			SSOStartURL:  "https://frost.awsapps.com/start",
			SSORegion:    "us-east-1",
			SSOAccountID: "111111111111",
			SSORoleName:  "AdministratorAccess",
			Region:       "us-west-2",
			Output:       "json",
		},
		{
			Name:         "prod-team-CustomRole",
			SSOStartURL:  "https://frost.awsapps.com/start",
			SSORegion:    "us-east-1",
			SSOAccountID: "222222222222",
			SSORoleName:  "CustomRole",
			Region:       "us-east-1",
			Output:       "json",
		},
	}
	require.NoError(t, writer.WriteProfiles(profiles))

	data, err := afero.ReadFile(fs, "/home/frost/.aws/config")
	require.NoError(t, err)

	file, err := ini.Load(data)
	require.NoError(t, err)

	section := file.Section("profile sbx-admin")
	assert.Equal(t, "https://frost.awsapps.com/start", section.Key("sso_start_url").String())
	assert.Equal(t, "us-east-1", section.Key("sso_region").String())
	assert.Equal(t, "111111111111", section.Key("sso_account_id").String())
	assert.Equal(t, "AdministratorAccess", section.Key("sso_role_name").String())
	assert.Equal(t, "us-west-2", section.Key("region").String())
	assert.Equal(t, "json", section.Key("output").String())
	assert.ElementsMatch(t, []string{
		"sso_start_url", "sso_region", "sso_account_id", "sso_role_name", "region", "output",
	}, section.KeyStrings())

	section = file.Section("profile prod-team-CustomRole")
	assert.Equal(t, "222222222222", section.Key("sso_account_id").String())
}

func TestWriteProfiles_ReplacesPreviousContents(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := newWriter(fs)

	require.NoError(t, writer.WriteProfiles([]models.Profile{{Name: "old-admin"}}))
	require.NoError(t, writer.WriteProfiles([]models.Profile{{Name: "new-admin"}}))

	data, err := afero.ReadFile(fs, "/home/frost/.aws/config")
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old-admin")
	assert.Contains(t, string(data), "profile new-admin")
}

func TestWriteSSOCache(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := newWriter(fs)

	userConfig := models.UserConfig{
		StartURL: "https://frost.awsapps.com/start",
		Region:   "us-east-1",
	}
	expiresAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, writer.WriteSSOCache(userConfig, "access-token", expiresAt))

	hash := sha1.Sum([]byte(userConfig.StartURL))
	path := "/home/frost/.aws/sso/cache/" + hex.EncodeToString(hash[:]) + ".json"
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var entry map[string]string
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "https://frost.awsapps.com/start", entry["startUrl"])
	assert.Equal(t, "us-east-1", entry["region"])
	assert.Equal(t, "access-token", entry["accessToken"])
	assert.Equal(t, "2025-03-01T12:00:00Z", entry["expiresAt"])
}

func TestWriteSSOCache_LocalTimeNormalizedToUTC(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := newWriter(fs)

	userConfig := models.UserConfig{StartURL: "https://frost.awsapps.com/start", Region: "us-east-1"}
	local := time.Date(2025, 3, 1, 7, 0, 0, 0, time.FixedZone("EST", -5*60*60))
	require.NoError(t, writer.WriteSSOCache(userConfig, "access-token", local))

	hash := sha1.Sum([]byte(userConfig.StartURL))
	data, err := afero.ReadFile(fs, "/home/frost/.aws/sso/cache/"+hex.EncodeToString(hash[:])+".json")
	require.NoError(t, err)

	var entry map[string]string
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "2025-03-01T12:00:00Z", entry["expiresAt"])
}

func TestWriteProfiles_HomeDirError(t *testing.T) {
	writer := awsconfig.NewWriter(afero.NewMemMapFs(), func() (string, error) {
		return "", assert.AnError
	}, zap.NewNop())

	err := writer.WriteProfiles([]models.Profile{{Name: "sbx-admin"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get home directory")
}
