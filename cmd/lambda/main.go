package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"course-aggregator/internal/aggregator"
	"course-aggregator/internal/config"
	"course-aggregator/internal/server"
)

// handler is built once per cold start; invocations share it.
var handler *server.Handler

func main() {
	cfg := config.Load()
	handler = server.New(aggregator.New(cfg))
	lambda.Start(handleRequest)
}

// handleRequest bridges the API Gateway proxy event onto the plain
// http.Handler so both deployment shapes share one implementation.
func handleRequest(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	q := url.Values{}
	for k, v := range event.QueryStringParameters {
		q.Set(k, v)
	}

	target := url.URL{Path: event.Path, RawQuery: q.Encode()}
	req := httptest.NewRequest(http.MethodGet, orSlash(target.String()), nil).WithContext(ctx)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	headers := map[string]string{}
	for k := range rec.Header() {
		headers[k] = rec.Header().Get(k)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: rec.Code,
		Headers:    headers,
		Body:       rec.Body.String(),
	}, nil
}

func orSlash(s string) string {
	if s == "" {
		return "/"
	}
	return s
}
