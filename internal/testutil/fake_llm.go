package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/remsodo/internal/llm"
)

// FakeLLMClient replays canned responses in order and records each request.
// Once Responses is exhausted the last entry repeats. A non-nil Err fails every call.
type FakeLLMClient struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Requests  []llm.GenerateRequest
}

func NewFakeLLMClient(responses ...string) *FakeLLMClient {
	return &FakeLLMClient{Responses: responses}
}

func (f *FakeLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Responses) == 0 {
		return &llm.GenerateResponse{Model: "fake"}, nil
	}
	text := f.Responses[0]
	if len(f.Responses) > 1 {
		f.Responses = f.Responses[1:]
	}
	return &llm.GenerateResponse{Text: text, Model: "fake"}, nil
}

func (f *FakeLLMClient) Available(context.Context) bool { return f.Err == nil }

func (f *FakeLLMClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

func (f *FakeLLMClient) LastRequest() llm.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Requests) == 0 {
		return llm.GenerateRequest{}
	}
	return f.Requests[len(f.Requests)-1]
}
