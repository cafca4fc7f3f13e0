package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BerryBytes/frost/models"
	"github.com/spf13/afero"
)

// Store is the persisted application state shared by the registrar, the
// token acquirer and the scheduler. Writes hit independent fields, so a
// field-level last-write-wins is all callers rely on.
type Store interface {
	UserConfig() (*models.UserConfig, error)
	SetUserConfig(cfg models.UserConfig) error

	SSOClient() (*models.RegisteredClient, error)
	SetSSOClient(client models.RegisteredClient) error
	DeleteSSOClient() error

	Token() (*models.TokenState, error)
	SetToken(token models.TokenState) error
	DeleteToken() error

	LastError() (string, error)
	SetLastError(message string) error

	Working() (bool, error)
	SetWorking(working bool) error

	Clusters() ([]models.ClusterSummary, error)
	SetClusters(clusters []models.ClusterSummary) error
}

// document is the on-disk JSON layout. Absent fields stay nil so that
// "unset" survives a read-modify-write round trip.
type document struct {
	UserConfig  *models.UserConfig       `json:"userConfig,omitempty"`
	AccessToken *string                  `json:"accessToken,omitempty"`
	ExpiresAt   *time.Time               `json:"expiresAt,omitempty"`
	SSOClient   *models.RegisteredClient `json:"ssoClient,omitempty"`
	LastError   *string                  `json:"lastError,omitempty"`
	IsWorking   bool                     `json:"isWorking,omitempty"`
	Clusters    []models.ClusterSummary  `json:"clusters,omitempty"`
}

// FileStore keeps the document in a single JSON file.
type FileStore struct {
	Fs   afero.Fs
	Path string

	mu sync.Mutex
}

// DefaultStorePath returns the per-user location of the application state.
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "frost", "config.json"), nil
}

func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{Fs: fs, Path: path}
}

func (s *FileStore) load() (*document, error) {
	doc := &document{}
	data, err := afero.ReadFile(s.Fs, s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}
	return doc, nil
}

func (s *FileStore) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	if err := s.Fs.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := afero.WriteFile(s.Fs, s.Path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}

func (s *FileStore) update(mutate func(*document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	mutate(doc)
	return s.save(doc)
}

func (s *FileStore) UserConfig() (*models.UserConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.UserConfig, nil
}

func (s *FileStore) SetUserConfig(cfg models.UserConfig) error {
	return s.update(func(doc *document) { doc.UserConfig = &cfg })
}

func (s *FileStore) SSOClient() (*models.RegisteredClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.SSOClient, nil
}

func (s *FileStore) SetSSOClient(client models.RegisteredClient) error {
	return s.update(func(doc *document) { doc.SSOClient = &client })
}

func (s *FileStore) DeleteSSOClient() error {
	return s.update(func(doc *document) { doc.SSOClient = nil })
}

func (s *FileStore) Token() (*models.TokenState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if doc.AccessToken == nil || doc.ExpiresAt == nil {
		return nil, nil
	}
	return &models.TokenState{AccessToken: *doc.AccessToken, ExpiresAt: *doc.ExpiresAt}, nil
}

func (s *FileStore) SetToken(token models.TokenState) error {
	return s.update(func(doc *document) {
		doc.AccessToken = &token.AccessToken
		doc.ExpiresAt = &token.ExpiresAt
	})
}

func (s *FileStore) DeleteToken() error {
	return s.update(func(doc *document) {
		doc.AccessToken = nil
		doc.ExpiresAt = nil
	})
}

func (s *FileStore) LastError() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return "", err
	}
	if doc.LastError == nil {
		return "", nil
	}
	return *doc.LastError, nil
}

func (s *FileStore) SetLastError(message string) error {
	return s.update(func(doc *document) {
		if message == "" {
			doc.LastError = nil
			return
		}
		doc.LastError = &message
	})
}

func (s *FileStore) Working() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return false, err
	}
	return doc.IsWorking, nil
}

func (s *FileStore) SetWorking(working bool) error {
	return s.update(func(doc *document) { doc.IsWorking = working })
}

func (s *FileStore) Clusters() ([]models.ClusterSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Clusters, nil
}

func (s *FileStore) SetClusters(clusters []models.ClusterSummary) error {
	return s.update(func(doc *document) { doc.Clusters = clusters })
}
