package config_test

import (
	"testing"
	"time"

	"github.com/BerryBytes/frost/internal/config"
	"github.com/BerryBytes/frost/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *config.FileStore {
	return config.NewFileStore(afero.NewMemMapFs(), "/home/frost/.config/frost/config.json")
}

func TestFileStore_EmptyStore(t *testing.T) {
	store := newStore()

	userConfig, err := store.UserConfig()
	require.NoError(t, err)
	assert.Nil(t, userConfig)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Nil(t, token)

	client, err := store.SSOClient()
	require.NoError(t, err)
	assert.Nil(t, client)

	lastError, err := store.LastError()
	require.NoError(t, err)
	assert.Empty(t, lastError)

	working, err := store.Working()
	require.NoError(t, err)
	assert.False(t, working)

	clusters, err := store.Clusters()
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestFileStore_UserConfigRoundTrip(t *testing.T) {
	store := newStore()

	cfg := models.UserConfig{StartURL: "https://frost.awsapps.com/start", Region: "us-east-1"}
	require.NoError(t, store.SetUserConfig(cfg))

	got, err := store.UserConfig()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cfg, *got)
}

func TestFileStore_TokenLifecycle(t *testing.T) {
	store := newStore()

	expiresAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SetToken(models.TokenState{AccessToken: "access-token", ExpiresAt: expiresAt}))

	token, err := store.Token()
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "access-token", token.AccessToken)
	assert.True(t, token.ExpiresAt.Equal(expiresAt))

	require.NoError(t, store.DeleteToken())
	token, err = store.Token()
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestFileStore_SSOClientLifecycle(t *testing.T) {
	store := newStore()

	client := models.RegisteredClient{
		ClientName:   "Frost-abc",
		ClientID:     "id-1",
		ClientSecret: "secret-1",
		IssuedAt:     1700000000,
		ExpiresAt:    1707776000,
	}
	require.NoError(t, store.SetSSOClient(client))

	got, err := store.SSOClient()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, client, *got)

	require.NoError(t, store.DeleteSSOClient())
	got, err = store.SSOClient()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileStore_LastErrorClearedByEmptyMessage(t *testing.T) {
	store := newStore()

	require.NoError(t, store.SetLastError("login timed out"))
	lastError, err := store.LastError()
	require.NoError(t, err)
	assert.Equal(t, "login timed out", lastError)

	require.NoError(t, store.SetLastError(""))
	lastError, err = store.LastError()
	require.NoError(t, err)
	assert.Empty(t, lastError)
}

func TestFileStore_FieldsSurviveUnrelatedWrites(t *testing.T) {
	store := newStore()

	cfg := models.UserConfig{StartURL: "https://frost.awsapps.com/start", Region: "us-east-1"}
	require.NoError(t, store.SetUserConfig(cfg))
	require.NoError(t, store.SetToken(models.TokenState{
		AccessToken: "access-token",
		ExpiresAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.SetWorking(true))
	require.NoError(t, store.SetClusters([]models.ClusterSummary{
		{Name: "alpha", Profile: "sbx-admin", Region: "us-west-2"},
	}))

	got, err := store.UserConfig()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cfg, *got)

	token, err := store.Token()
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "access-token", token.AccessToken)

	working, err := store.Working()
	require.NoError(t, err)
	assert.True(t, working)

	clusters, err := store.Clusters()
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, "alpha", clusters[0].Name)
}

func TestFileStore_CorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/frost/.config/frost/config.json"
	require.NoError(t, afero.WriteFile(fs, path, []byte("{not json"), 0o600))

	store := config.NewFileStore(fs, path)
	_, err := store.UserConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse store")
}
