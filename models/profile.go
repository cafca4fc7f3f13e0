package models

// Profile is one generated AWS CLI profile, one per (account, role) pair.
type Profile struct {
	Name         string `json:"name" ini:"-"`
	SSOStartURL  string `json:"ssoStartUrl" ini:"sso_start_url"`
	SSORegion    string `json:"ssoRegion" ini:"sso_region"`
	SSOAccountID string `json:"ssoAccountId" ini:"sso_account_id"`
	SSORoleName  string `json:"ssoRoleName" ini:"sso_role_name"`
	Region       string `json:"region" ini:"region"`
	Output       string `json:"output" ini:"output"`
}
