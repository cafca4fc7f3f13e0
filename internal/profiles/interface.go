package profiles

import (
	"context"

	"github.com/BerryBytes/frost/models"
	"github.com/aws/aws-sdk-go-v2/service/sso"
)

// SSOAPI is the slice of the SSO portal API used for account and role
// discovery. Both listings are paginated by an opaque continuation token.
type SSOAPI interface {
	ListAccounts(ctx context.Context, params *sso.ListAccountsInput, optFns ...func(*sso.Options)) (*sso.ListAccountsOutput, error)
	ListAccountRoles(ctx context.Context, params *sso.ListAccountRolesInput, optFns ...func(*sso.Options)) (*sso.ListAccountRolesOutput, error)
}

// SSOClientFactory builds an SSO portal client for the user's SSO region.
type SSOClientFactory interface {
	SSOClient(ctx context.Context, region string) (SSOAPI, error)
}

// ProfileWriter persists the generated profiles.
type ProfileWriter interface {
	WriteProfiles(profiles []models.Profile) error
}
