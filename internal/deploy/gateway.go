package deploy

import (
	"context"
	"fmt"
	"log"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	agentcore "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
)

// createGateway creates the MCP gateway with a custom JWT authorizer pointed
// at the Cognito discovery URL.
func (d *Deployer) createGateway(ctx context.Context, gatewayName string, cog *CognitoResources, roleArn string) (*GatewayResources, error) {
	log.Printf("[deploy] creating gateway %s", gatewayName)

	out, err := d.gateway.CreateGateway(ctx, &agentcore.CreateGatewayInput{
		Name:           sdkaws.String(gatewayName),
		Description:    sdkaws.String(fmt.Sprintf("Retail Demo API Gateway - %s", d.timestamp)),
		RoleArn:        sdkaws.String(roleArn),
		ProtocolType:   actypes.GatewayProtocolTypeMcp,
		AuthorizerType: actypes.AuthorizerTypeCustomJwt,
		AuthorizerConfiguration: &actypes.AuthorizerConfigurationMemberCustomJWTAuthorizer{
			Value: actypes.CustomJWTAuthorizerConfiguration{
				DiscoveryUrl:   sdkaws.String(cog.DiscoveryURL),
				AllowedClients: []string{cog.ClientID},
			},
		},
		ExceptionLevel: actypes.ExceptionLevelDebug,
	})
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	gw := &GatewayResources{
		GatewayID:  sdkaws.ToString(out.GatewayId),
		GatewayURL: sdkaws.ToString(out.GatewayUrl),
		GatewayARN: sdkaws.ToString(out.GatewayArn),
	}
	log.Printf("[deploy] created gateway %s at %s", gw.GatewayID, gw.GatewayURL)
	return gw, nil
}

// waitForGateway polls the gateway status every pollInterval until READY,
// FAILED, or the wall-clock budget runs out. Transient poll errors are logged
// and retried. The boolean result is the only signal back to the caller.
func (d *Deployer) waitForGateway(ctx context.Context, gatewayID string) bool {
	log.Printf("[deploy] waiting for gateway %s to become ready", gatewayID)

	start := d.nowFunc()
	for d.nowFunc().Sub(start) < d.maxWait {
		out, err := d.gateway.GetGateway(ctx, &agentcore.GetGatewayInput{
			GatewayIdentifier: sdkaws.String(gatewayID),
		})
		if err != nil {
			log.Printf("[deploy] error checking gateway status: %v", err)
			d.sleepFunc(d.pollInterval)
			continue
		}

		switch out.Status {
		case actypes.GatewayStatusReady:
			log.Printf("[deploy] gateway %s is ready", gatewayID)
			return true
		case actypes.GatewayStatusFailed:
			log.Printf("[deploy] gateway %s creation failed", gatewayID)
			return false
		default:
			log.Printf("[deploy] gateway status %s, waiting", out.Status)
			d.sleepFunc(d.pollInterval)
		}
	}

	log.Printf("[deploy] timed out waiting for gateway %s", gatewayID)
	return false
}

// createAPIKeyCredentialProvider registers the placeholder credential the
// gateway presents to the public backend.
func (d *Deployer) createAPIKeyCredentialProvider(ctx context.Context) (string, error) {
	out, err := d.gateway.CreateApiKeyCredentialProvider(ctx, &agentcore.CreateApiKeyCredentialProviderInput{
		Name:   sdkaws.String(fmt.Sprintf("retail-api-key-%s", d.suffix)),
		ApiKey: sdkaws.String("public-api-no-key-required"), // placeholder for public API
	})
	if err != nil {
		return "", fmt.Errorf("create api key credential provider: %w", err)
	}

	arn := sdkaws.ToString(out.CredentialProviderArn)
	log.Printf("[deploy] created api key credential provider %s", arn)
	return arn, nil
}

// createOpenAPITarget attaches the inline OpenAPI document to the gateway
// using the placeholder API-key credential provider.
func (d *Deployer) createOpenAPITarget(ctx context.Context, gatewayID string, openAPIPayload []byte) (string, error) {
	providerArn, err := d.createAPIKeyCredentialProvider(ctx)
	if err != nil {
		return "", err
	}

	out, err := d.gateway.CreateGatewayTarget(ctx, &agentcore.CreateGatewayTargetInput{
		GatewayIdentifier: sdkaws.String(gatewayID),
		Name:              sdkaws.String(fmt.Sprintf("retail-api-target-%s", d.suffix)),
		Description:       sdkaws.String("Retail Demo API OpenAPI Target"),
		TargetConfiguration: &actypes.TargetConfigurationMemberMcp{
			Value: &actypes.McpTargetConfigurationMemberOpenApiSchema{
				Value: &actypes.ApiSchemaConfigurationMemberInlinePayload{
					Value: string(openAPIPayload),
				},
			},
		},
		CredentialProviderConfigurations: []actypes.CredentialProviderConfiguration{
			{
				CredentialProviderType: actypes.CredentialProviderTypeApiKey,
				CredentialProvider: &actypes.CredentialProviderMemberApiKeyCredentialProvider{
					Value: actypes.GatewayApiKeyCredentialProvider{
						ProviderArn:        sdkaws.String(providerArn),
						CredentialLocation: actypes.ApiKeyCredentialLocationHeader,
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create gateway target: %w", err)
	}

	targetID := sdkaws.ToString(out.TargetId)
	log.Printf("[deploy] created target %s", targetID)
	return targetID, nil
}
