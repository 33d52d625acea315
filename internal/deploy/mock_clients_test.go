package deploy

import (
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	agentcore "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcorecontrol/types"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cogtypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Minimal scripted mocks for the deployer's AWS interfaces.
// NOTE: intentionally not production-grade.

const testAccount = "123456789012"

type mockCognito struct {
	createPoolCalls   int
	createDomainCalls int
	createRSCalls     int
	createClientCalls int

	domainErr error
	rsErr     error
}

func (m *mockCognito) CreateUserPool(ctx context.Context, params *cognitoidentityprovider.CreateUserPoolInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateUserPoolOutput, error) {
	m.createPoolCalls++
	return &cognitoidentityprovider.CreateUserPoolOutput{
		UserPool: &cogtypes.UserPoolType{
			Id:   sdkaws.String("us-east-1_TestPool1"),
			Name: params.PoolName,
		},
	}, nil
}

func (m *mockCognito) CreateUserPoolDomain(ctx context.Context, params *cognitoidentityprovider.CreateUserPoolDomainInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateUserPoolDomainOutput, error) {
	m.createDomainCalls++
	if m.domainErr != nil {
		return nil, m.domainErr
	}
	return &cognitoidentityprovider.CreateUserPoolDomainOutput{}, nil
}

func (m *mockCognito) CreateResourceServer(ctx context.Context, params *cognitoidentityprovider.CreateResourceServerInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateResourceServerOutput, error) {
	m.createRSCalls++
	if m.rsErr != nil {
		return nil, m.rsErr
	}
	return &cognitoidentityprovider.CreateResourceServerOutput{}, nil
}

func (m *mockCognito) CreateUserPoolClient(ctx context.Context, params *cognitoidentityprovider.CreateUserPoolClientInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateUserPoolClientOutput, error) {
	m.createClientCalls++
	return &cognitoidentityprovider.CreateUserPoolClientOutput{
		UserPoolClient: &cogtypes.UserPoolClientType{
			ClientId:     sdkaws.String("client-abc"),
			ClientSecret: sdkaws.String("secret-xyz"),
		},
	}, nil
}

type mockIAM struct {
	roleExists   bool
	policyExists bool

	getRoleCalls    int
	createRoleCalls int
	attachCalls     int

	attachedPolicyArn string
}

func (m *mockIAM) GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	m.getRoleCalls++
	if !m.roleExists {
		return nil, &iamtypes.NoSuchEntityException{}
	}
	return &iam.GetRoleOutput{
		Role: &iamtypes.Role{
			Arn: sdkaws.String(fmt.Sprintf("arn:aws:iam::%s:role/%s", testAccount, *params.RoleName)),
		},
	}, nil
}

func (m *mockIAM) CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
	m.createRoleCalls++
	return &iam.CreateRoleOutput{
		Role: &iamtypes.Role{
			Arn: sdkaws.String(fmt.Sprintf("arn:aws:iam::%s:role/%s", testAccount, *params.RoleName)),
		},
	}, nil
}

func (m *mockIAM) CreatePolicy(ctx context.Context, params *iam.CreatePolicyInput, optFns ...func(*iam.Options)) (*iam.CreatePolicyOutput, error) {
	if m.policyExists {
		return nil, &iamtypes.EntityAlreadyExistsException{}
	}
	return &iam.CreatePolicyOutput{
		Policy: &iamtypes.Policy{
			Arn: sdkaws.String(fmt.Sprintf("arn:aws:iam::%s:policy/%s", testAccount, *params.PolicyName)),
		},
	}, nil
}

func (m *mockIAM) AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
	m.attachCalls++
	m.attachedPolicyArn = *params.PolicyArn
	return &iam.AttachRolePolicyOutput{}, nil
}

type mockSTS struct {
	calls int
}

func (m *mockSTS) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	m.calls++
	return &sts.GetCallerIdentityOutput{Account: sdkaws.String(testAccount)}, nil
}

type mockGateway struct {
	// statuses are returned by successive GetGateway calls; the last entry
	// repeats once exhausted.
	statuses  []actypes.GatewayStatus
	statusIdx int

	getErr error // returned once by the first GetGateway call, then cleared

	createGatewayCalls int
	providerCalls      int
	targetCalls        int

	lastTargetInput *agentcore.CreateGatewayTargetInput
}

func (m *mockGateway) CreateGateway(ctx context.Context, params *agentcore.CreateGatewayInput, optFns ...func(*agentcore.Options)) (*agentcore.CreateGatewayOutput, error) {
	m.createGatewayCalls++
	return &agentcore.CreateGatewayOutput{
		GatewayId:  sdkaws.String("gw-test123"),
		GatewayUrl: sdkaws.String("https://gw-test123.gateway.bedrock-agentcore.us-east-1.amazonaws.com/mcp"),
		GatewayArn: sdkaws.String(fmt.Sprintf("arn:aws:bedrock-agentcore:us-east-1:%s:gateway/gw-test123", testAccount)),
		Status:     actypes.GatewayStatusCreating,
	}, nil
}

func (m *mockGateway) GetGateway(ctx context.Context, params *agentcore.GetGatewayInput, optFns ...func(*agentcore.Options)) (*agentcore.GetGatewayOutput, error) {
	if m.getErr != nil {
		err := m.getErr
		m.getErr = nil
		return nil, err
	}
	idx := m.statusIdx
	if idx >= len(m.statuses) {
		idx = len(m.statuses) - 1
	}
	m.statusIdx++
	return &agentcore.GetGatewayOutput{
		GatewayId: params.GatewayIdentifier,
		Status:    m.statuses[idx],
	}, nil
}

func (m *mockGateway) CreateGatewayTarget(ctx context.Context, params *agentcore.CreateGatewayTargetInput, optFns ...func(*agentcore.Options)) (*agentcore.CreateGatewayTargetOutput, error) {
	m.targetCalls++
	m.lastTargetInput = params
	return &agentcore.CreateGatewayTargetOutput{
		TargetId: sdkaws.String("target-456"),
	}, nil
}

func (m *mockGateway) CreateApiKeyCredentialProvider(ctx context.Context, params *agentcore.CreateApiKeyCredentialProviderInput, optFns ...func(*agentcore.Options)) (*agentcore.CreateApiKeyCredentialProviderOutput, error) {
	m.providerCalls++
	return &agentcore.CreateApiKeyCredentialProviderOutput{
		CredentialProviderArn: sdkaws.String(fmt.Sprintf("arn:aws:bedrock-agentcore:us-east-1:%s:token-vault/default/apikeycredentialprovider/%s", testAccount, *params.Name)),
	}, nil
}
