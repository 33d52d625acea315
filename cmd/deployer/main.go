package main

import (
	"context"
	"flag"
	"log"

	"github.com/imrishuroy/retail-gateway/internal/aws"
	"github.com/imrishuroy/retail-gateway/internal/deploy"
	"github.com/imrishuroy/retail-gateway/internal/validation"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // load .env if it exists

	name := flag.String("name", "", "gateway name (default: auto-generated)")
	region := flag.String("region", "us-east-1", "AWS region")
	apiURL := flag.String("api-url", "https://api.yourcompany.com", "retail API base URL")
	flag.Parse()

	params := validation.DeployParams{
		Name:       *name,
		Region:     *region,
		APIBaseURL: *apiURL,
	}
	if err := validation.New().Struct(params); err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	ctx := context.Background()
	clients, err := aws.NewAWSClients(ctx, params.Region)
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	d := deploy.NewDeployer(clients, params.Region)
	res, err := d.Deploy(ctx, params.Name, params.APIBaseURL)
	if err != nil {
		log.Fatalf("deployment failed: %v", err)
	}

	log.Printf("gateway %s is ready at %s", res.GatewayName, res.Gateway.GatewayURL)
	log.Printf("configuration saved to %s", res.ConfigFile)
}
