package validation

// DeployParams are the provisioner CLI inputs.
type DeployParams struct {
	// Name feeds Cognito pool, hosted domain and gateway names, so it must be
	// a valid domain-prefix fragment. Empty means auto-generate.
	Name       string `validate:"omitempty,gateway_name,max=40"`
	Region     string `validate:"required"`
	APIBaseURL string `validate:"required,url"` // backend the OpenAPI target points at
}
