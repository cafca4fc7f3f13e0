package profiles

import (
	"context"
	"fmt"
	"sync"

	"github.com/BerryBytes/frost/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sso"
	"golang.org/x/sync/errgroup"
)

// ListAccounts walks the paginated account listing for the current token.
func ListAccounts(ctx context.Context, api SSOAPI, accessToken string) ([]models.SSOAccount, error) {
	var accounts []models.SSOAccount

	input := &sso.ListAccountsInput{AccessToken: aws.String(accessToken)}
	for {
		output, err := api.ListAccounts(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, account := range output.AccountList {
			accounts = append(accounts, models.SSOAccount{
				AccountID:   aws.ToString(account.AccountId),
				AccountName: aws.ToString(account.AccountName),
			})
		}
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	return accounts, nil
}

// ListAccountRoles walks the paginated role listing for one account.
func ListAccountRoles(ctx context.Context, api SSOAPI, accessToken, accountID string) ([]models.SSORole, error) {
	var roles []models.SSORole

	input := &sso.ListAccountRolesInput{
		AccessToken: aws.String(accessToken),
		AccountId:   aws.String(accountID),
	}
	for {
		output, err := api.ListAccountRoles(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list roles for account %s: %w", accountID, err)
		}
		for _, role := range output.RoleList {
			roles = append(roles, models.SSORole{
				AccountID: aws.ToString(role.AccountId),
				RoleName:  aws.ToString(role.RoleName),
			})
		}
		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	return roles, nil
}

// ListAllRoles fans out the per-account role listings in parallel and
// flattens the results. Ordering is not significant downstream.
func ListAllRoles(ctx context.Context, api SSOAPI, accessToken string, accounts []models.SSOAccount) ([]models.SSORole, error) {
	var (
		mu    sync.Mutex
		roles []models.SSORole
	)

	group, ctx := errgroup.WithContext(ctx)
	for _, account := range accounts {
		group.Go(func() error {
			accountRoles, err := ListAccountRoles(ctx, api, accessToken, account.AccountID)
			if err != nil {
				return err
			}
			mu.Lock()
			roles = append(roles, accountRoles...)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return roles, nil
}
