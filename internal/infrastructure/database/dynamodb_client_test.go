package database

import (
	"context"
	"testing"

	"simulador_tokenizacao/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := config.DynamoDBConfig{
		Region:          "sa-east-1",
		Endpoint:        "http://localhost:8000",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	}
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", awsCfg.Region)
	}

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %+v err=%v", creds, err)
	}

	ep, err := awsCfg.EndpointResolverWithOptions.ResolveEndpoint(dynamodb.ServiceID, "sa-east-1")
	if err != nil || ep.URL != "http://localhost:8000" {
		t.Fatalf("expected local endpoint, got %+v err=%v", ep, err)
	}
	if _, err := awsCfg.EndpointResolverWithOptions.ResolveEndpoint("S3", "sa-east-1"); err == nil {
		t.Fatalf("expected other services to fall through")
	}
}
