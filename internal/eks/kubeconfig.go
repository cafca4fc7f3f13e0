package eks

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BerryBytes/frost/models"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// AuthenticatorPathEnv overrides where the IAM token exec binary lives.
const AuthenticatorPathEnv = "AWS_IAM_AUTHENTICATOR_PATH"

type Kubeconfig struct {
	APIVersion     string         `yaml:"apiVersion"`
	Kind           string         `yaml:"kind"`
	Clusters       []NamedEntry   `yaml:"clusters"`
	Contexts       []NamedEntry   `yaml:"contexts"`
	Users          []NamedEntry   `yaml:"users"`
	CurrentContext string         `yaml:"current-context,omitempty"`
	Rest           map[string]any `yaml:",inline"`
}

// NamedEntry keys an entry by name and carries everything else opaquely,
// so entries this tool does not own keep all their fields across a
// read-merge-write cycle.
type NamedEntry struct {
	Name string         `yaml:"name"`
	Rest map[string]any `yaml:",inline"`
}

type ClusterData struct {
	Server                   string `yaml:"server"`
	CertificateAuthorityData string `yaml:"certificate-authority-data"`
}

type UserData struct {
	Exec ExecConfig `yaml:"exec"`
}

type ExecConfig struct {
	APIVersion      string   `yaml:"apiVersion"`
	Command         string   `yaml:"command"`
	Args            []string `yaml:"args"`
	Env             []EnvVar `yaml:"env,omitempty"`
	InteractiveMode string   `yaml:"interactiveMode,omitempty"`
}

type EnvVar struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type ContextData struct {
	Cluster string `yaml:"cluster"`
	User    string `yaml:"user"`
}

// DefaultAuthenticatorPath resolves the aws-iam-authenticator binary: an
// environment override first, then a binary shipped beside this one.
func DefaultAuthenticatorPath() string {
	if path := os.Getenv(AuthenticatorPathEnv); path != "" {
		return path
	}
	name := "aws-iam-authenticator"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	executable, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(executable), name)
}

// Merger folds discovered clusters into the user's kubeconfig. Entries it
// generates replace same-named ones; everything else in the file is left
// untouched.
type Merger struct {
	Fs                afero.Fs
	HomeDir           func() (string, error)
	AuthenticatorPath string
	Log               *zap.Logger
}

func NewMerger(fs afero.Fs, homeDir func() (string, error), authenticatorPath string, log *zap.Logger) *Merger {
	return &Merger{Fs: fs, HomeDir: homeDir, AuthenticatorPath: authenticatorPath, Log: log}
}

func (m *Merger) configPath() (string, error) {
	home, err := m.HomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".kube", "config"), nil
}

// Load reads the current kubeconfig snapshot. A missing or unreadable
// file yields an empty config.
func (m *Merger) Load() (*Kubeconfig, error) {
	path, err := m.configPath()
	if err != nil {
		return nil, err
	}

	kubeconfig := &Kubeconfig{APIVersion: "v1", Kind: "Config"}
	data, err := afero.ReadFile(m.Fs, path)
	if err != nil {
		m.Log.Debug("no existing kubeconfig", zap.String("path", path), zap.Error(err))
		return kubeconfig, nil
	}
	if err := yaml.Unmarshal(data, kubeconfig); err != nil {
		return nil, fmt.Errorf("failed to parse kubeconfig: %w", err)
	}
	return kubeconfig, nil
}

// Update merges the discovered clusters into the kubeconfig on disk.
func (m *Merger) Update(infos []models.ClusterInfo) error {
	current, err := m.Load()
	if err != nil {
		return err
	}

	MergeClusters(current, infos, m.AuthenticatorPath)

	path, err := m.configPath()
	if err != nil {
		return err
	}
	m.Log.Info("writing kubeconfig", zap.String("path", path))

	data, err := yaml.Marshal(current)
	if err != nil {
		return fmt.Errorf("failed to marshal kubeconfig: %w", err)
	}
	if err := m.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create kubeconfig directory: %w", err)
	}
	if err := afero.WriteFile(m.Fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}
	return nil
}

// MergeClusters rewrites the entries for the discovered clusters inside
// config. The same derived name keys the cluster, user and context
// entries, so merging twice with identical input is a no-op.
func MergeClusters(config *Kubeconfig, infos []models.ClusterInfo, authenticatorPath string) {
	nameFor := namePattern(infos)

	for _, info := range infos {
		name := nameFor(info)

		updateOrAppendEntry(&config.Clusters, NamedEntry{
			Name: name,
			Rest: map[string]any{"cluster": ClusterData{
				Server:                   info.Cluster.Endpoint,
				CertificateAuthorityData: info.Cluster.CertificateAuthorityData,
			}},
		})

		updateOrAppendEntry(&config.Users, NamedEntry{
			Name: name,
			Rest: map[string]any{"user": UserData{
				Exec: ExecConfig{
					APIVersion:      "client.authentication.k8s.io/v1",
					Command:         authenticatorPath,
					Args:            []string{"token", "-i", info.Cluster.Name},
					Env:             []EnvVar{{Name: "AWS_PROFILE", Value: info.Profile.Name}},
					InteractiveMode: "Never",
				},
			}},
		})

		updateOrAppendEntry(&config.Contexts, NamedEntry{
			Name: name,
			Rest: map[string]any{"context": ContextData{Cluster: name, User: name}},
		})
	}
}

// namePattern picks the shortest naming scheme that keeps the whole
// discovered set collision-free. Plain cluster names are used when unique
// across the set, qualified by whichever of region and role vary;
// duplicated cluster names force the fully qualified form.
func namePattern(infos []models.ClusterInfo) func(models.ClusterInfo) string {
	clusterNames := make(map[string]struct{}, len(infos))
	roleNames := make(map[string]struct{}, len(infos))
	regionNames := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		clusterNames[info.Cluster.Name] = struct{}{}
		roleNames[info.Profile.SSORoleName] = struct{}{}
		regionNames[info.Region] = struct{}{}
	}

	uniqueClusters := len(clusterNames) == len(infos)
	sameRole := len(roleNames) <= 1
	sameRegion := len(regionNames) <= 1

	switch {
	case uniqueClusters && sameRole && sameRegion:
		return func(info models.ClusterInfo) string {
			return info.Cluster.Name
		}
	case uniqueClusters && sameRole:
		return func(info models.ClusterInfo) string {
			return joinName(info.Cluster.Name, info.Region)
		}
	case uniqueClusters && sameRegion:
		return func(info models.ClusterInfo) string {
			return joinName(info.Cluster.Name, info.Profile.SSORoleName)
		}
	case uniqueClusters:
		return func(info models.ClusterInfo) string {
			return joinName(info.Cluster.Name, info.Region, info.Profile.SSORoleName)
		}
	default:
		return func(info models.ClusterInfo) string {
			return joinName(info.Cluster.Name, info.Profile.SSOAccountID, info.Region, info.Profile.SSORoleName)
		}
	}
}

func joinName(parts ...string) string {
	return strings.Join(parts, ":")
}

func updateOrAppendEntry(entries *[]NamedEntry, newEntry NamedEntry) {
	for i, entry := range *entries {
		if entry.Name == newEntry.Name {
			(*entries)[i] = newEntry
			return
		}
	}
	*entries = append(*entries, newEntry)
}
