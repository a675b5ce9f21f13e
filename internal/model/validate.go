// Package model defines the JSON request bodies of the API and validates
// them schema-first before any handler logic runs.
package model

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EnhanceRequest struct {
	Job      string `json:"job"`
	Filename string `json:"filename"`
}

type DeleteResumeRequest struct {
	Filename string `json:"filename"`
}

type DownloadRequest struct {
	ResultID string `json:"result_id"`
}

const signupSchema = `{
	"type": "object",
	"required": ["email", "password", "username"],
	"properties": {
		"email":    {"type": "string", "minLength": 3, "format": "email"},
		"password": {"type": "string", "minLength": 1},
		"username": {"type": "string", "minLength": 1}
	}
}`

const loginSchema = `{
	"type": "object",
	"required": ["email", "password"],
	"properties": {
		"email":    {"type": "string", "minLength": 1},
		"password": {"type": "string", "minLength": 1}
	}
}`

const enhanceSchema = `{
	"type": "object",
	"required": ["job", "filename"],
	"properties": {
		"job":      {"type": "string", "minLength": 1},
		"filename": {"type": "string", "minLength": 1}
	}
}`

const deleteResumeSchema = `{
	"type": "object",
	"required": ["filename"],
	"properties": {
		"filename": {"type": "string", "minLength": 1}
	}
}`

const downloadSchema = `{
	"type": "object",
	"required": ["result_id"],
	"properties": {
		"result_id": {"type": "string", "minLength": 1}
	}
}`

var schemas = map[string]*gojsonschema.Schema{}

func init() {
	for name, raw := range map[string]string{
		"signup":        signupSchema,
		"login":         loginSchema,
		"enhance":       enhanceSchema,
		"delete_resume": deleteResumeSchema,
		"download":      downloadSchema,
	} {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("model: bad %s schema: %v", name, err))
		}
		schemas[name] = s
	}
}

// ValidateJSON checks a raw request body against the named schema.
func ValidateJSON(name string, body []byte) error {
	schema, ok := schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
