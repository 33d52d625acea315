package deploy

import (
	"context"
	"errors"
	"fmt"
	"log"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const trustPolicyDocument = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {
        "Service": "bedrock-agentcore.amazonaws.com"
      },
      "Action": "sts:AssumeRole"
    }
  ]
}`

const gatewayPolicyDocument = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Action": [
        "logs:CreateLogGroup",
        "logs:CreateLogStream",
        "logs:PutLogEvents"
      ],
      "Resource": "arn:aws:logs:*:*:*"
    }
  ]
}`

// getOrCreateServiceRole returns the ARN of the gateway service role,
// creating it together with its log-write policy when absent.
func (d *Deployer) getOrCreateServiceRole(ctx context.Context) (string, error) {
	roleName := fmt.Sprintf("AmazonBedrockAgentCoreGatewayServiceRole-%s", d.suffix)

	got, err := d.iam.GetRole(ctx, &iam.GetRoleInput{RoleName: sdkaws.String(roleName)})
	if err == nil {
		log.Printf("[deploy] using existing IAM role %s", roleName)
		return sdkaws.ToString(got.Role.Arn), nil
	}
	var nse *iamtypes.NoSuchEntityException
	if !errors.As(err, &nse) {
		return "", fmt.Errorf("get role: %w", err)
	}

	log.Printf("[deploy] creating IAM service role %s", roleName)
	created, err := d.iam.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 sdkaws.String(roleName),
		AssumeRolePolicyDocument: sdkaws.String(trustPolicyDocument),
		Description:              sdkaws.String(fmt.Sprintf("Service role for AgentCore Gateway %s", roleName)),
	})
	if err != nil {
		return "", fmt.Errorf("create role: %w", err)
	}

	policyArn, err := d.createOrRecoverPolicy(ctx, fmt.Sprintf("AgentCoreGatewayPolicy-%s", d.suffix))
	if err != nil {
		return "", err
	}

	_, err = d.iam.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		RoleName:  sdkaws.String(roleName),
		PolicyArn: sdkaws.String(policyArn),
	})
	if err != nil {
		return "", fmt.Errorf("attach role policy: %w", err)
	}

	return sdkaws.ToString(created.Role.Arn), nil
}

// createOrRecoverPolicy creates the log-write policy. When the policy already
// exists its ARN is reconstructed from the caller account id and the fixed
// policy name.
func (d *Deployer) createOrRecoverPolicy(ctx context.Context, policyName string) (string, error) {
	out, err := d.iam.CreatePolicy(ctx, &iam.CreatePolicyInput{
		PolicyName:     sdkaws.String(policyName),
		PolicyDocument: sdkaws.String(gatewayPolicyDocument),
		Description:    sdkaws.String("Basic policy for AgentCore Gateway"),
	})
	if err == nil {
		return sdkaws.ToString(out.Policy.Arn), nil
	}

	var eae *iamtypes.EntityAlreadyExistsException
	if !errors.As(err, &eae) {
		return "", fmt.Errorf("create policy: %w", err)
	}

	ident, idErr := d.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if idErr != nil {
		return "", fmt.Errorf("get caller identity: %w", idErr)
	}
	arn := fmt.Sprintf("arn:aws:iam::%s:policy/%s", sdkaws.ToString(ident.Account), policyName)
	log.Printf("[deploy] policy %s already exists, using %s", policyName, arn)
	return arn, nil
}
