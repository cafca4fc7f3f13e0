package awsconfig

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BerryBytes/frost/models"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

// Writer owns the files under ~/.aws that this tool generates: the CLI
// config (fully rewritten each cycle, no foreign entries to preserve)
// and the SSO token cache consumed by SDK credential providers.
type Writer struct {
	Fs      afero.Fs
	HomeDir func() (string, error)
	Log     *zap.Logger
}

func NewWriter(fs afero.Fs, homeDir func() (string, error), log *zap.Logger) *Writer {
	return &Writer{Fs: fs, HomeDir: homeDir, Log: log}
}

func (w *Writer) writeFile(subpath string, contents []byte) error {
	home, err := w.HomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	fullPath := filepath.Join(home, ".aws", subpath)
	w.Log.Info("writing AWS config file", zap.String("path", fullPath))

	if err := w.Fs.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", fullPath, err)
	}
	if err := afero.WriteFile(w.Fs, fullPath, contents, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", fullPath, err)
	}
	return nil
}

// WriteProfiles rewrites ~/.aws/config with one section per generated
// profile.
func (w *Writer) WriteProfiles(profiles []models.Profile) error {
	file := ini.Empty()
	for _, profile := range profiles {
		section, err := file.NewSection(fmt.Sprintf("profile %s", profile.Name))
		if err != nil {
			return fmt.Errorf("failed to create section for profile %s: %w", profile.Name, err)
		}
		if err := section.ReflectFrom(&profile); err != nil {
			return fmt.Errorf("failed to serialize profile %s: %w", profile.Name, err)
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize AWS config: %w", err)
	}
	return w.writeFile("config", buf.Bytes())
}

// ssoCacheEntry matches the document the AWS SDKs expect in
// ~/.aws/sso/cache.
type ssoCacheEntry struct {
	StartURL    string `json:"startUrl"`
	Region      string `json:"region"`
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// WriteSSOCache writes the cached access token for the start URL. The
// file name is the hex SHA-1 of the start URL, which is how downstream
// SDK credential providers locate it.
func (w *Writer) WriteSSOCache(userConfig models.UserConfig, accessToken string, expiresAt time.Time) error {
	hash := sha1.Sum([]byte(userConfig.StartURL))
	filename := hex.EncodeToString(hash[:]) + ".json"

	contents, err := json.Marshal(ssoCacheEntry{
		StartURL:    userConfig.StartURL,
		Region:      userConfig.Region,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal SSO cache entry: %w", err)
	}

	return w.writeFile(filepath.Join("sso", "cache", filename), contents)
}
