package profiles

import (
	"regexp"

	"github.com/BerryBytes/frost/models"
	"github.com/gosimple/slug"
)

// Short aliases for well-known permission sets. Unmapped names pass
// through unchanged.
var predefinedShortNames = map[string]string{
	"AdministratorAccess":   "admin",
	"Billing":               "billing",
	"DatabaseAdministrator": "dba",
	"DataScientist":         "datasci",
	"NetworkAdministrator":  "netadmin",
	"PowerUserAccess":       "poweruser",
	"SecurityAudit":         "secaudit",
	"SupportUser":           "support",
	"SystemAdministrator":   "sysadmin",
	"ViewOnlyAccess":        "viewonly",
}

var (
	shortNameTag = regexp.MustCompile(`#([-_a-zA-Z0-9]+)`)
	regionTag    = regexp.MustCompile(`@([a-z]+-[a-z]+-[0-9]+)`)
)

// GenerateProfiles derives one AWS CLI profile per (account, role) pair.
// Profile names are `<account-short-name>-<role-short-name>`; distinct
// accounts that slugify to the same short name combined with the same
// role name collide, which is a known limitation of the naming scheme.
func GenerateProfiles(userConfig models.UserConfig, accounts []models.SSOAccount, roles []models.SSORole) []models.Profile {
	accountIDToName := make(map[string]string, len(accounts))
	accountIDToRegion := make(map[string]string, len(accounts))
	for _, account := range accounts {
		accountIDToName[account.AccountID] = shortAccountName(account.AccountName)
		region := preferredAccountRegion(account.AccountName)
		if region == "" {
			region = userConfig.Region
		}
		accountIDToRegion[account.AccountID] = region
	}

	generated := make([]models.Profile, 0, len(roles))
	for _, role := range roles {
		generated = append(generated, models.Profile{
			Name:         accountIDToName[role.AccountID] + "-" + shortPermissionSetName(role.RoleName),
			SSOStartURL:  userConfig.StartURL,
			SSORegion:    userConfig.Region,
			SSOAccountID: role.AccountID,
			SSORoleName:  role.RoleName,
			Region:       accountIDToRegion[role.AccountID],
			Output:       "json",
		})
	}
	return generated
}

// shortAccountName honors a `#<slug>` tag in the account display name and
// otherwise lower-case-slugifies the full name.
func shortAccountName(name string) string {
	if match := shortNameTag.FindStringSubmatch(name); match != nil {
		return match[1]
	}
	return slug.Make(name)
}

// preferredAccountRegion extracts an `@<region>` tag from the account
// display name, or returns empty when the account has no override.
func preferredAccountRegion(name string) string {
	if match := regionTag.FindStringSubmatch(name); match != nil {
		return match[1]
	}
	return ""
}

func shortPermissionSetName(name string) string {
	if short, ok := predefinedShortNames[name]; ok {
		return short
	}
	return name
}
