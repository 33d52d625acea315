package deploy

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DeploymentConfig is the JSON artifact consumed by gateway clients. The
// shape and file name are a stable contract.
type DeploymentConfig struct {
	GatewayURL     string         `json:"gateway_url"`
	GatewayID      string         `json:"gateway_id"`
	ClientID       string         `json:"client_id"`
	ClientSecret   string         `json:"client_secret"`
	TokenEndpoint  string         `json:"token_endpoint"`
	Scope          string         `json:"scope"`
	Region         string         `json:"region"`
	TargetID       string         `json:"target_id"`
	DeploymentInfo DeploymentInfo `json:"deployment_info"`
}

// DeploymentInfo records provenance of the run.
type DeploymentInfo struct {
	DeployedAt string `json:"deployed_at"`
	UserPoolID string `json:"user_pool_id"`
	DomainName string `json:"domain_name"`
	Method     string `json:"method"`
}

// saveConfiguration writes the deployment artifact and returns its path.
func (d *Deployer) saveConfiguration(gatewayName string, gw *GatewayResources, cog *CognitoResources, targetID string) (string, error) {
	cfg := DeploymentConfig{
		GatewayURL:    gw.GatewayURL,
		GatewayID:     gw.GatewayID,
		ClientID:      cog.ClientID,
		ClientSecret:  cog.ClientSecret,
		TokenEndpoint: cog.TokenEndpoint,
		Scope:         fmt.Sprintf("%s/genesis-gateway:invoke", gatewayName),
		Region:        d.region,
		TargetID:      targetID,
		DeploymentInfo: DeploymentInfo{
			DeployedAt: d.timestamp,
			UserPoolID: cog.UserPoolID,
			DomainName: cog.DomainName,
			Method:     "sdk",
		},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal configuration: %w", err)
	}

	path := filepath.Join(d.outDir, fmt.Sprintf("retail_gateway_config_boto3_%s.json", d.suffix))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write configuration: %w", err)
	}

	log.Printf("[deploy] configuration saved to %s", path)
	return path, nil
}
