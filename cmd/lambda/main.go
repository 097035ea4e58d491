package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/saulo-duarte/kiku/internal/container"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	_ = godotenv.Load()

	c, err := container.New()
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	adapter = httpadapter.New(c.Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
