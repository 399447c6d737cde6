package models

import (
	"time"

	"github.com/danielhkuo/codevault/stego"
)

// Request types

type EncodeRequest struct {
	Message       string `json:"message"`
	CarrierText   string `json:"carrier_text"`
	Method        string `json:"method"`
	SecurityLevel string `json:"security_level"`
}

// DecodeParameters narrow a blind ELS search
type DecodeParameters struct {
	SkipDistance  int `json:"skip_distance"`
	StartPosition int `json:"start_position"`
}

// DecodeRequest decodes exactly when Instructions is set, blindly otherwise
type DecodeRequest struct {
	Text         string              `json:"text"`
	Method       string              `json:"method"`
	Instructions *stego.Instructions `json:"instructions,omitempty"`
	Parameters   *DecodeParameters   `json:"parameters,omitempty"`
}

type TextRequest struct {
	Text string `json:"text"`
}

type CarrierCheckRequest struct {
	Message     string `json:"message"`
	CarrierText string `json:"carrier_text"`
	Method      string `json:"method"`
}

// Response types

type EncodeResponse struct {
	Success   bool                  `json:"success"`
	Result    *stego.EncodeResult   `json:"result"`
	Security  stego.SecurityMetrics `json:"security"`
	Timestamp time.Time             `json:"timestamp"`
}

type DecodeResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Method    stego.Method `json:"method"`
	Timestamp time.Time    `json:"timestamp"`
}

type BlindDecodeResponse struct {
	Success    bool              `json:"success"`
	Results    []stego.Candidate `json:"results"`
	TotalFound int               `json:"total_found"`
	Detection  *stego.Detection  `json:"detection,omitempty"`
	Cached     bool              `json:"cached"`
	Timestamp  time.Time         `json:"timestamp"`
}

type DetectResponse struct {
	Success   bool            `json:"success"`
	Detection stego.Detection `json:"detection"`
	Timestamp time.Time       `json:"timestamp"`
}

type AnalyzeResponse struct {
	Success   bool              `json:"success"`
	Analysis  stego.TextProfile `json:"analysis"`
	Timestamp time.Time         `json:"timestamp"`
}

type CarrierCheckResponse struct {
	Success     bool              `json:"success"`
	Method      stego.Method      `json:"method"`
	Suitability stego.Suitability `json:"suitability"`
	Timestamp   time.Time         `json:"timestamp"`
}

type MethodsResponse struct {
	Success bool               `json:"success"`
	Methods []stego.MethodInfo `json:"methods"`
}

type Limits struct {
	MaxMessageLength int `json:"max_message_length"`
	MaxCarrierLength int `json:"max_carrier_length"`
	MaxResults       int `json:"max_results"`
}

type StatusResponse struct {
	Success  bool            `json:"success"`
	Status   string          `json:"status"`
	Features map[string]bool `json:"features"`
	Limits   Limits          `json:"limits"`
	Version  string          `json:"version"`
	Uptime   string          `json:"uptime"`
}

// Error response

type ErrorResponse struct {
	Error     string   `json:"error"`
	Message   string   `json:"message,omitempty"`
	ErrorKind string   `json:"error_kind,omitempty"`
	Details   []string `json:"details,omitempty"`
}
