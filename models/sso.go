package models

import "time"

// UserConfig is the operator-authored SSO configuration. Changing it
// restarts the refresh schedule and invalidates any cached token.
type UserConfig struct {
	StartURL string `json:"startUrl"`
	Region   string `json:"region"`
}

// RegisteredClient is a persisted OIDC device-grant client registration.
// IssuedAt and ExpiresAt are unix timestamps as returned by the endpoint.
type RegisteredClient struct {
	ClientName   string `json:"clientName"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	IssuedAt     int64  `json:"issuedAt"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// Expired reports whether the registration is no longer usable.
func (c *RegisteredClient) Expired(now time.Time) bool {
	return !now.Before(time.Unix(c.ExpiresAt, 0))
}

// TokenState holds the access token produced by a device-authorization
// run. ExpiresAt drives the next scheduled refresh.
type TokenState struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// SSOAccount is an account visible through the SSO portal.
type SSOAccount struct {
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
}

// SSORole is a role assumable in one account. Many roles map to one account.
type SSORole struct {
	AccountID string `json:"accountId"`
	RoleName  string `json:"roleName"`
}
