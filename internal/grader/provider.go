// Package grader abstracts the external multimodal evaluation service.
// A Provider receives a filled grading instruction plus the reference
// image and the learner's screenshot, and returns the grader's raw
// structured verdict as JSON. Parsing the verdict into a domain type is
// the evaluation package's job.
package grader

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for grader interaction.
type Provider interface {
	// Grade sends one composite grading request and returns the raw
	// structured response. The request's Schema field, when set,
	// instructs the provider to return JSON conforming to that schema.
	Grade(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one grading call.
type Request struct {
	// System sets the grader's role and output constraints.
	System string

	// Instruction is the filled grading template: task description,
	// submitted source, and reference solution.
	Instruction string

	// Images are attached in order after the instruction text. For a
	// grading call this is the reference design image followed by the
	// submission screenshot.
	Images []Image

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Image is one image part of a grading request.
type Image struct {
	// MIMEType is the image media type, e.g. "image/png".
	MIMEType string

	// Data is the raw image bytes. Providers apply their own transport
	// encoding (base64) as required by the underlying API.
	Data []byte
}

// Schema defines the JSON structure expected from the grader.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "design-verdict".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the grader's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
