//go:build lambda

package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// Default catalog served when a request does not carry its own.
//
//go:embed testdata/demo.json
var embeddedCatalog string

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveRequest struct {
	Catalog      json.RawMessage `json:"catalog"`
	Workers      int             `json:"workers"`
	MaxSolutions int             `json:"maxSolutions"`
}

type solveResult struct {
	Verbs     int      `json:"verbs"`
	Waves     int      `json:"waves"`
	Scanned   int64    `json:"scanned"`
	Pruned    int64    `json:"pruned"`
	Count     int64    `json:"count"`
	TimeMs    int64    `json:"timeMs"`
	Solutions []string `json:"solutions"`
	Truncated bool     `json:"truncated,omitempty"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req solveRequest
	if body != "" {
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			return errResp(400, "invalid JSON: "+err.Error())
		}
	}

	catalogJSON := embeddedCatalog
	if len(req.Catalog) > 0 {
		catalogJSON = string(req.Catalog)
	}
	catalog, err := ParseCatalog(catalogJSON)
	if err != nil {
		return errResp(400, err.Error())
	}

	cfg := DefaultConfig()
	cfg.Workers = req.Workers

	var solutions []State
	solver := NewSolver(catalog, cfg)
	stats := solver.Solve(ScorePositive, func(s State) {
		solutions = append(solutions, s)
	})

	resp := solveResult{
		Verbs:   len(catalog.Verbs),
		Waves:   stats.Waves,
		Scanned: stats.Scanned,
		Pruned:  stats.Pruned,
		Count:   stats.Solutions,
		TimeMs:  stats.Elapsed.Milliseconds(),
	}
	if req.MaxSolutions > 0 && len(solutions) > req.MaxSolutions {
		solutions = solutions[:req.MaxSolutions]
		resp.Truncated = true
	}
	resp.Solutions = make([]string, len(solutions))
	for i, s := range solutions {
		resp.Solutions[i] = FormatSolution(s, catalog)
	}

	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
