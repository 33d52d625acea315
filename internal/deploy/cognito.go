package deploy

import (
	"context"
	"errors"
	"fmt"
	"log"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cogtypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// apiErrorCode extracts the service error code when err is a modeled AWS
// error, or "unknown" otherwise.
func apiErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return "unknown"
}

// createCognitoResources provisions the user pool, hosted domain, resource
// server scope and the client-credentials app client. Domain and resource
// server failures are tolerated since both may survive a previous run.
func (d *Deployer) createCognitoResources(ctx context.Context, gatewayName string) (*CognitoResources, error) {
	poolName := fmt.Sprintf("%s-user-pool-%s", gatewayName, d.suffix)
	log.Printf("[deploy] creating Cognito user pool %s", poolName)

	pool, err := d.cognito.CreateUserPool(ctx, &cognitoidentityprovider.CreateUserPoolInput{
		PoolName: sdkaws.String(poolName),
		Policies: &cogtypes.UserPoolPolicyType{
			PasswordPolicy: &cogtypes.PasswordPolicyType{
				MinimumLength:                 sdkaws.Int32(8),
				RequireUppercase:              true,
				RequireLowercase:              true,
				RequireNumbers:                true,
				RequireSymbols:                true,
				TemporaryPasswordValidityDays: 7,
			},
		},
		DeletionProtection: cogtypes.DeletionProtectionTypeInactive,
	})
	if err != nil {
		return nil, fmt.Errorf("create user pool: %w", err)
	}
	userPoolID := sdkaws.ToString(pool.UserPool.Id)
	log.Printf("[deploy] created user pool %s", userPoolID)

	domainName := fmt.Sprintf("%s-domain-%s", gatewayName, d.suffix)
	_, err = d.cognito.CreateUserPoolDomain(ctx, &cognitoidentityprovider.CreateUserPoolDomainInput{
		Domain:     sdkaws.String(domainName),
		UserPoolId: sdkaws.String(userPoolID),
	})
	if err != nil {
		log.Printf("[deploy] domain creation failed (%s, may already exist): %v", apiErrorCode(err), err)
	}

	scope := fmt.Sprintf("%s/genesis-gateway:invoke", gatewayName)
	_, err = d.cognito.CreateResourceServer(ctx, &cognitoidentityprovider.CreateResourceServerInput{
		UserPoolId: sdkaws.String(userPoolID),
		Identifier: sdkaws.String(gatewayName),
		Name:       sdkaws.String(fmt.Sprintf("%s-resource-server", gatewayName)),
		Scopes: []cogtypes.ResourceServerScopeType{
			{
				ScopeName:        sdkaws.String("genesis-gateway:invoke"),
				ScopeDescription: sdkaws.String("Invoke gateway tools"),
			},
		},
	})
	if err != nil {
		log.Printf("[deploy] resource server creation failed (%s): %v", apiErrorCode(err), err)
	}

	client, err := d.cognito.CreateUserPoolClient(ctx, &cognitoidentityprovider.CreateUserPoolClientInput{
		UserPoolId:                      sdkaws.String(userPoolID),
		ClientName:                      sdkaws.String(fmt.Sprintf("%s-client-%s", gatewayName, d.suffix)),
		GenerateSecret:                  true,
		AllowedOAuthFlows:               []cogtypes.OAuthFlowType{cogtypes.OAuthFlowTypeClientCredentials},
		AllowedOAuthScopes:              []string{scope},
		AllowedOAuthFlowsUserPoolClient: true,
		SupportedIdentityProviders:      []string{"COGNITO"},
	})
	if err != nil {
		return nil, fmt.Errorf("create user pool client: %w", err)
	}
	clientID := sdkaws.ToString(client.UserPoolClient.ClientId)
	log.Printf("[deploy] created app client %s", clientID)

	return &CognitoResources{
		UserPoolID:    userPoolID,
		UserPoolName:  poolName,
		DomainName:    domainName,
		ClientID:      clientID,
		ClientSecret:  sdkaws.ToString(client.UserPoolClient.ClientSecret),
		DiscoveryURL:  fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s/.well-known/openid-configuration", d.region, userPoolID),
		TokenEndpoint: fmt.Sprintf("https://%s.auth.%s.amazoncognito.com/oauth2/token", domainName, d.region),
	}, nil
}
