package models

// EKSCluster holds the cluster details needed for a kubeconfig entry.
type EKSCluster struct {
	Name                     string `json:"name"`
	Endpoint                 string `json:"endpoint"`
	CertificateAuthorityData string `json:"certificateAuthorityData"`
}

// ClusterInfo is one discovered cluster together with the profile and
// region it was discovered through.
type ClusterInfo struct {
	Cluster EKSCluster `json:"cluster"`
	Profile Profile    `json:"profile"`
	Region  string     `json:"region"`
}

// ClusterSummary is the persisted form of a discovered cluster, kept for
// the status surface.
type ClusterSummary struct {
	Name    string `json:"name"`
	Profile string `json:"profile"`
	Region  string `json:"region"`
}
