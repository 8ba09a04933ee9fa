package eventbus

import (
	"time"
)

type EventType string

const (
	EventTypeDetection EventType = "detection"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// DetectionEvent asks a worker to run a detection over an uploaded PDF.
type DetectionEvent struct {
	JobID     string `json:"job_id"`
	FileName  string `json:"file_name"`
	Content   []byte `json:"-"`
	CacheKey  string `json:"cache_key"`
	EnableLLM bool   `json:"enable_llm"`
}
