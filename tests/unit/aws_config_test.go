package unit

import (
	"context"
	"os"
	"testing"

	internalaws "github.com/imrishuroy/retail-gateway/internal/aws"
)

func TestLoadAWSConfig_DefaultRegion(t *testing.T) {
	os.Setenv("AWS_REGION", "")

	cfg, err := internalaws.LoadAWSConfig(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Region != "us-east-1" {
		t.Fatalf("expected default region 'us-east-1', got %s", cfg.Region)
	}
}

func TestLoadAWSConfig_ExplicitRegionWins(t *testing.T) {
	os.Setenv("AWS_REGION", "eu-central-1")

	cfg, err := internalaws.LoadAWSConfig(context.Background(), "ap-southeast-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Region != "ap-southeast-2" {
		t.Fatalf("explicit region should win, got %s", cfg.Region)
	}
}

func TestLoadAWSConfig_EnvFallback(t *testing.T) {
	os.Setenv("AWS_REGION", "eu-west-2")

	cfg, err := internalaws.LoadAWSConfig(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Region != "eu-west-2" {
		t.Fatalf("expected env region 'eu-west-2', got %s", cfg.Region)
	}
}
