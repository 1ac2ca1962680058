package llm

import "fmt"

type TaskType string

const (
	TaskCatalog   TaskType = "catalog"
	TaskDetails   TaskType = "details"
	TaskAuthoring TaskType = "authoring"
	TaskChat      TaskType = "chat"
)

var AllTasks = []TaskType{TaskCatalog, TaskDetails, TaskAuthoring, TaskChat}

type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout when > 0
}

type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig targets the hosted Gemini API. Without an API key the
// client stays disabled.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-2.5-flash",
		TimeoutMs:  60000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskCatalog:   {Temperature: 0.9, MaxTokens: 4096, TimeoutMs: 45000},
			TaskDetails:   {Temperature: 0.7, MaxTokens: 8192, TimeoutMs: 60000},
			TaskAuthoring: {Temperature: 0.5, MaxTokens: 8192, TimeoutMs: 90000},
			TaskChat:      {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 30000},
		},
	}
}

// TaskTimeout returns the task's timeout, or the global one when unset.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// SetTaskTimeout overrides one task's timeout; non-positive values are ignored.
func (c *LLMConfig) SetTaskTimeout(task TaskType, ms int) {
	if ms <= 0 {
		return
	}
	if c.Tasks == nil {
		c.Tasks = map[TaskType]TaskConfig{}
	}
	tc := c.Tasks[task]
	tc.TimeoutMs = ms
	c.Tasks[task] = tc
}

func (c LLMConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Endpoint == "" || c.Model == "" {
		return fmt.Errorf("llm endpoint and model are required")
	}
	return nil
}
