// Package deploy provisions a Bedrock AgentCore gateway fronted by Cognito
// OAuth and backed by an inline OpenAPI target. The sequence is strictly
// linear and each step is fatal: there is no rollback, and partially created
// cloud resources are left behind for manual cleanup.
package deploy

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/imrishuroy/retail-gateway/internal/aws"
	"github.com/imrishuroy/retail-gateway/internal/openapi"
)

// Deployer orchestrates the provisioning calls against the three control
// planes. Polling cadence and the IAM propagation wait are tunable so tests
// can run with fake clocks.
type Deployer struct {
	cognito aws.CognitoAPI
	iam     aws.IAMAPI
	sts     aws.STSAPI
	gateway aws.GatewayAPI
	metrics *aws.Metrics

	region    string
	suffix    string
	timestamp string
	outDir    string

	propagationWait time.Duration
	pollInterval    time.Duration
	maxWait         time.Duration

	sleepFunc func(time.Duration)
	nowFunc   func() time.Time
}

// NewDeployer returns a Deployer with production defaults and a fresh random
// suffix shared by all resource names of this run.
func NewDeployer(clients *aws.AWSClients, region string) *Deployer {
	return &Deployer{
		cognito:         clients.Cognito,
		iam:             clients.IAM,
		sts:             clients.STS,
		gateway:         clients.Gateway,
		metrics:         aws.NewMetrics(clients.CloudWatch, "RetailGateway/Deploy"),
		region:          region,
		suffix:          newSuffix(),
		timestamp:       time.Now().Format("20060102-150405"),
		outDir:          ".",
		propagationWait: 30 * time.Second,
		pollInterval:    10 * time.Second,
		maxWait:         5 * time.Minute,
		sleepFunc:       time.Sleep,
		nowFunc:         time.Now,
	}
}

// newSuffix returns 8 random lowercase hex characters.
func newSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Deploy runs the full provisioning sequence and writes the configuration
// artifact. An empty name is auto-generated from the run suffix.
func (d *Deployer) Deploy(ctx context.Context, name, apiBaseURL string) (*Result, error) {
	if name == "" {
		name = fmt.Sprintf("retail-demo-%s", d.suffix)
	}

	start := time.Now()
	res, err := d.deploy(ctx, name, apiBaseURL)
	if d.metrics != nil {
		// best effort; a metrics failure never fails the run
		_ = d.metrics.RecordDeployment(ctx, err == nil, time.Since(start), map[string]string{"GatewayName": name})
	}
	return res, err
}

func (d *Deployer) deploy(ctx context.Context, name, apiBaseURL string) (*Result, error) {
	log.Printf("[deploy] starting deployment of %s (region=%s suffix=%s)", name, d.region, d.suffix)

	cog, err := d.createCognitoResources(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create cognito resources: %w", err)
	}

	roleArn, err := d.getOrCreateServiceRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("create service role: %w", err)
	}

	// IAM is eventually consistent; a freshly created role is not always
	// assumable immediately.
	log.Printf("[deploy] waiting %s for IAM propagation", d.propagationWait)
	d.sleepFunc(d.propagationWait)

	gw, err := d.createGateway(ctx, name, cog, roleArn)
	if err != nil {
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	if !d.waitForGateway(ctx, gw.GatewayID) {
		return nil, fmt.Errorf("gateway %s failed to become ready", gw.GatewayID)
	}

	payload, err := openapi.MarshalDocument(apiBaseURL)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	targetID, err := d.createOpenAPITarget(ctx, gw.GatewayID, payload)
	if err != nil {
		return nil, fmt.Errorf("create openapi target: %w", err)
	}

	file, err := d.saveConfiguration(name, gw, cog, targetID)
	if err != nil {
		return nil, fmt.Errorf("save configuration: %w", err)
	}

	log.Printf("[deploy] deployment of %s complete", name)
	return &Result{
		GatewayName: name,
		Gateway:     *gw,
		Cognito:     *cog,
		TargetID:    targetID,
		ConfigFile:  file,
	}, nil
}
