package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultPrompt = "You are a study assistant for an SAT practice testing platform. Answer briefly and encouragingly. Focus on how the practice test works, navigation, marking questions for review, scoring, score reports, and general SAT study strategy. Do not reveal answers to specific test questions."

type ServiceConfig struct {
	GeminiAPIKey string
	GeminiModel  string
	HTTPClient   *http.Client
}

type Service struct {
	geminiAPIKey string
	geminiModel  string
	client       *http.Client
}

type Result struct {
	Reply  string
	Source string
}

func NewService(cfg ServiceConfig) *Service {
	model := strings.TrimSpace(cfg.GeminiModel)
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 18 * time.Second}
	}
	return &Service{
		geminiAPIKey: strings.TrimSpace(cfg.GeminiAPIKey),
		geminiModel:  model,
		client:       client,
	}
}

// Generate answers a help query, preferring Gemini when a key is configured
// and falling back to canned replies otherwise. Gemini failures degrade to
// the local reply instead of surfacing an error to the student.
func (s *Service) Generate(ctx context.Context, query string) (Result, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Result{}, fmt.Errorf("query is required")
	}
	if len(q) > 1200 {
		return Result{}, fmt.Errorf("query too long")
	}

	if s.geminiAPIKey == "" {
		return Result{Reply: localReply(q), Source: "local"}, nil
	}

	reply, err := s.generateWithGemini(ctx, q)
	if err != nil {
		return Result{Reply: localReply(q), Source: "local_fallback"}, nil
	}
	return Result{Reply: reply, Source: "gemini"}, nil
}

func (s *Service) generateWithGemini(ctx context.Context, query string) (string, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": query},
				},
			},
		},
		"systemInstruction": map[string]any{
			"parts": []map[string]string{
				{"text": defaultPrompt},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.4,
			"maxOutputTokens": 320,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", s.geminiModel, s.geminiAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	var out geminiGenerateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", err
	}
	reply := strings.TrimSpace(out.firstText())
	if reply == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return reply, nil
}

func localReply(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	switch {
	case strings.Contains(q, "start"), strings.Contains(q, "begin"):
		return "Use Start Test to begin a fresh practice attempt. Starting over discards any attempt already in progress, so finish or reset first if you want to keep it."
	case strings.Contains(q, "review"), strings.Contains(q, "flag"), strings.Contains(q, "mark"):
		return "Use Mark for Review on any question you want to revisit. Flagged questions show up highlighted in the question navigator so you can jump back before finishing."
	case strings.Contains(q, "score"), strings.Contains(q, "result"):
		return "Each section is scored from 200 to 800 and the composite from 400 to 1600. Your dashboard keeps every finished attempt, and you can download a per-question report as CSV or XLSX."
	case strings.Contains(q, "time"), strings.Contains(q, "timer"):
		return "The timer is a pacing guide. The test is not cut off when it reaches zero, but try to finish within the window to build real test stamina."
	case strings.Contains(q, "answer"), strings.Contains(q, "change"):
		return "You can change an answer any time before finishing: navigate back to the question and pick a different option. Leaving a question blank never costs you points."
	case strings.Contains(q, "error"), strings.Contains(q, "stuck"), strings.Contains(q, "problem"):
		return "Try refreshing the page and logging in again; your answers are saved after every question. If the problem persists, reset the test from the dashboard and start a new attempt."
	default:
		return "I can help with starting a practice test, navigation, marking questions for review, scoring, and score reports. What would you like to know?"
	}
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r geminiGenerateResponse) firstText() string {
	for _, c := range r.Candidates {
		for _, p := range c.Content.Parts {
			if strings.TrimSpace(p.Text) != "" {
				return p.Text
			}
		}
	}
	return ""
}
