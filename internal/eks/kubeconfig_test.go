package eks_test

import (
	"testing"

	"github.com/BerryBytes/frost/internal/eks"
	"github.com/BerryBytes/frost/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const testAuthenticator = "/opt/frost/aws-iam-authenticator"

func clusterInfo(name, accountID, role, region string) models.ClusterInfo {
	return models.ClusterInfo{
		Cluster: models.EKSCluster{
			Name:                     name,
			Endpoint:                 "https://" + name + "." + region + ".eks.example.com",
			CertificateAuthorityData: "Y2EtZGF0YQ==",
		},
		Profile: models.Profile{
			Name:         accountID + "-" + role,
			SSOAccountID: accountID,
			SSORoleName:  role,
			Region:       region,
		},
		Region: region,
	}
}

func entryNames(entries []eks.NamedEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}

func TestMergeClusters_PlainNamesWhenUnique(t *testing.T) {
	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
		clusterInfo("beta", "111111111111", "admin", "us-west-2"),
	}

	config := &eks.Kubeconfig{APIVersion: "v1", Kind: "Config"}
	eks.MergeClusters(config, infos, testAuthenticator)

	assert.ElementsMatch(t, []string{"alpha", "beta"}, entryNames(config.Clusters))
}

func TestMergeClusters_QualifiesByVaryingRegion(t *testing.T) {
	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
		clusterInfo("beta", "111111111111", "admin", "eu-west-1"),
	}

	config := &eks.Kubeconfig{APIVersion: "v1", Kind: "Config"}
	eks.MergeClusters(config, infos, testAuthenticator)

	assert.ElementsMatch(t, []string{"alpha:us-west-2", "beta:eu-west-1"}, entryNames(config.Clusters))
}

func TestMergeClusters_QualifiesByVaryingRole(t *testing.T) {
	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
		clusterInfo("beta", "111111111111", "viewonly", "us-west-2"),
	}

	config := &eks.Kubeconfig{APIVersion: "v1", Kind: "Config"}
	eks.MergeClusters(config, infos, testAuthenticator)

	assert.ElementsMatch(t, []string{"alpha:admin", "beta:viewonly"}, entryNames(config.Clusters))
}

func TestMergeClusters_DuplicateNamesFullyQualified(t *testing.T) {
	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
		clusterInfo("alpha", "222222222222", "admin", "us-west-2"),
	}

	config := &eks.Kubeconfig{APIVersion: "v1", Kind: "Config"}
	eks.MergeClusters(config, infos, testAuthenticator)

	assert.ElementsMatch(t, []string{
		"alpha:111111111111:us-west-2:admin",
		"alpha:222222222222:us-west-2:admin",
	}, entryNames(config.Clusters))
}

func TestMergeClusters_UserExecEntry(t *testing.T) {
	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
	}

	config := &eks.Kubeconfig{APIVersion: "v1", Kind: "Config"}
	eks.MergeClusters(config, infos, testAuthenticator)

	require.Len(t, config.Users, 1)
	user, ok := config.Users[0].Rest["user"].(eks.UserData)
	require.True(t, ok)
	exec := user.Exec
	assert.Equal(t, "client.authentication.k8s.io/v1", exec.APIVersion)
	assert.Equal(t, testAuthenticator, exec.Command)
	assert.Equal(t, []string{"token", "-i", "alpha"}, exec.Args)
	assert.Equal(t, []eks.EnvVar{{Name: "AWS_PROFILE", Value: "111111111111-admin"}}, exec.Env)
	assert.Equal(t, "Never", exec.InteractiveMode)

	require.Len(t, config.Contexts, 1)
	context, ok := config.Contexts[0].Rest["context"].(eks.ContextData)
	require.True(t, ok)
	assert.Equal(t, "alpha", context.Cluster)
	assert.Equal(t, "alpha", context.User)
}

func TestMergeClusters_ReplacesManagedPreservesForeign(t *testing.T) {
	config := &eks.Kubeconfig{
		APIVersion: "v1",
		Kind:       "Config",
		Clusters: []eks.NamedEntry{
			{Name: "alpha", Rest: map[string]any{"cluster": map[string]any{"server": "https://stale.example.com"}}},
			{Name: "minikube", Rest: map[string]any{"cluster": map[string]any{"server": "https://127.0.0.1:8443"}}},
		},
		Contexts: []eks.NamedEntry{
			{Name: "minikube", Rest: map[string]any{"context": map[string]any{"cluster": "minikube", "user": "minikube"}}},
		},
		CurrentContext: "minikube",
	}

	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
	}
	eks.MergeClusters(config, infos, testAuthenticator)

	require.Len(t, config.Clusters, 2)
	managed, ok := config.Clusters[0].Rest["cluster"].(eks.ClusterData)
	require.True(t, ok)
	assert.Equal(t, "https://alpha.us-west-2.eks.example.com", managed.Server)
	assert.Equal(t, map[string]any{"cluster": map[string]any{"server": "https://127.0.0.1:8443"}}, config.Clusters[1].Rest)
	assert.Equal(t, "minikube", config.CurrentContext)
}

func TestMergeClusters_Idempotent(t *testing.T) {
	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
		clusterInfo("beta", "111111111111", "admin", "eu-west-1"),
	}

	config := &eks.Kubeconfig{APIVersion: "v1", Kind: "Config"}
	eks.MergeClusters(config, infos, testAuthenticator)
	once := *config
	eks.MergeClusters(config, infos, testAuthenticator)

	assert.Equal(t, once.Clusters, config.Clusters)
	assert.Equal(t, once.Users, config.Users)
	assert.Equal(t, once.Contexts, config.Contexts)
}

func TestMergerUpdate_WritesMergedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	existing := `apiVersion: v1
kind: Config
clusters:
  - name: minikube
    cluster:
      server: https://127.0.0.1:8443
      certificate-authority-data: bWluaWt1YmU=
contexts: []
users: []
`
	require.NoError(t, afero.WriteFile(fs, "/home/frost/.kube/config", []byte(existing), 0o600))

	merger := eks.NewMerger(fs, func() (string, error) { return "/home/frost", nil }, testAuthenticator, zap.NewNop())
	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
	}
	require.NoError(t, merger.Update(infos))

	data, err := afero.ReadFile(fs, "/home/frost/.kube/config")
	require.NoError(t, err)

	var written eks.Kubeconfig
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.ElementsMatch(t, []string{"minikube", "alpha"}, entryNames(written.Clusters))
	require.Len(t, written.Users, 1)
	assert.Equal(t, "alpha", written.Users[0].Name)
}

func TestMergerUpdate_ForeignEntriesKeepAllFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	existing := `apiVersion: v1
kind: Config
preferences: {}
clusters:
  - name: alpha
    cluster:
      server: https://stale.example.com
      certificate-authority-data: c3RhbGU=
  - name: minikube
    cluster:
      server: https://127.0.0.1:8443
      certificate-authority: /home/frost/.minikube/ca.crt
contexts:
  - name: minikube
    context:
      cluster: minikube
      user: minikube
      namespace: kube-system
users:
  - name: minikube
    user:
      token: super-secret-token
      client-certificate: /home/frost/.minikube/client.crt
current-context: minikube
`
	require.NoError(t, afero.WriteFile(fs, "/home/frost/.kube/config", []byte(existing), 0o600))

	merger := eks.NewMerger(fs, func() (string, error) { return "/home/frost", nil }, testAuthenticator, zap.NewNop())
	infos := []models.ClusterInfo{
		clusterInfo("alpha", "111111111111", "admin", "us-west-2"),
	}
	require.NoError(t, merger.Update(infos))

	data, err := afero.ReadFile(fs, "/home/frost/.kube/config")
	require.NoError(t, err)
	written := string(data)

	// The foreign user, context and cluster keep every field.
	assert.Contains(t, written, "super-secret-token")
	assert.Contains(t, written, "client-certificate: /home/frost/.minikube/client.crt")
	assert.Contains(t, written, "namespace: kube-system")
	assert.Contains(t, written, "certificate-authority: /home/frost/.minikube/ca.crt")
	assert.Contains(t, written, "current-context: minikube")
	assert.Contains(t, written, "preferences: {}")

	// The managed entry is rewritten.
	assert.Contains(t, written, "server: https://alpha.us-west-2.eks.example.com")
	assert.NotContains(t, written, "https://stale.example.com")
}

func TestMergerLoad_MissingFile(t *testing.T) {
	merger := eks.NewMerger(afero.NewMemMapFs(), func() (string, error) { return "/home/frost", nil }, testAuthenticator, zap.NewNop())

	config, err := merger.Load()
	require.NoError(t, err)
	assert.Equal(t, "v1", config.APIVersion)
	assert.Equal(t, "Config", config.Kind)
	assert.Empty(t, config.Clusters)
}
