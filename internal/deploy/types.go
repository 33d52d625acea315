package deploy

// CognitoResources captures everything the OAuth setup step produced.
type CognitoResources struct {
	UserPoolID    string
	UserPoolName  string
	DomainName    string
	ClientID      string
	ClientSecret  string
	DiscoveryURL  string
	TokenEndpoint string
}

// GatewayResources identifies the created gateway.
type GatewayResources struct {
	GatewayID  string
	GatewayURL string
	GatewayARN string
}

// Result collects everything a successful deployment produced.
type Result struct {
	GatewayName string
	Gateway     GatewayResources
	Cognito     CognitoResources
	TargetID    string
	ConfigFile  string
}
