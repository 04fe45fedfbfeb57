package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"talenthub/matching-service/internal/models"
)

// textGenerator is the single synchronous call boundary to the language
// model. Narrowed from GeminiService so tests can supply a fake.
type textGenerator interface {
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error)
}

// LLMScorer delegates match scoring to an external language model. The path
// is fail-loud: network, quota and parse failures all propagate as errors,
// because a silently wrong score is worse than a visible failure. Output is
// non-deterministic between calls.
type LLMScorer struct {
	generator      textGenerator
	fetcher        ResumeFetcher
	retriever      ChunkRetriever
	promptBuilder  *PromptBuilder
	maxRetries     int
	maxResumeChars int
}

const (
	llmScoreTemperature   = 0.2
	defaultMaxResumeChars = 24000
)

// NewLLMScorer builds an LLM scorer. retriever may be nil; it is only used to
// swap an over-long resume for its most job-relevant chunks. maxRetries caps
// the transient-failure retries per generate call.
func NewLLMScorer(generator textGenerator, fetcher ResumeFetcher, retriever ChunkRetriever, maxRetries int) *LLMScorer {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	return &LLMScorer{
		generator:      generator,
		fetcher:        fetcher,
		retriever:      retriever,
		promptBuilder:  NewPromptBuilder(),
		maxRetries:     maxRetries,
		maxResumeChars: defaultMaxResumeChars,
	}
}

func (s *LLMScorer) Score(ctx context.Context, job *models.Job, candidate *models.Candidate) (*models.MatchResult, error) {
	if job == nil {
		return nil, fmt.Errorf("job is required")
	}
	if candidate == nil {
		return nil, fmt.Errorf("candidate is required")
	}
	if candidate.ResumeURL == "" {
		return nil, fmt.Errorf("candidate has no resume reference")
	}

	resumeText, err := s.fetcher.FetchText(ctx, candidate.ResumeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}

	resumeText = s.fitResumeText(ctx, job, candidate, resumeText)

	prompt := s.promptBuilder.BuildMatchEvaluationPrompt(job, resumeText, candidate)

	response, err := s.generator.GenerateTextWithRetry(ctx, prompt, llmScoreTemperature, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("llm scoring failed: %w", err)
	}

	result, err := parseMatchResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse llm match response: %w", err)
	}

	return result, nil
}

// fitResumeText replaces an over-long resume with its most job-relevant
// chunks from the vector store. Falls back to plain truncation when no
// retriever is configured or retrieval fails.
func (s *LLMScorer) fitResumeText(ctx context.Context, job *models.Job, candidate *models.Candidate, resumeText string) string {
	if len(resumeText) <= s.maxResumeChars {
		return resumeText
	}

	if s.retriever != nil {
		query := job.Title + " " + strings.Join(job.Skills, " ")
		chunks, err := s.retriever.RelevantChunks(ctx, candidate.ID.String(), query, 5)
		if err != nil {
			log.Printf("⚠️  Failed to retrieve resume chunks: %v\n", err)
		} else if len(chunks) > 0 {
			return strings.Join(chunks, "\n\n")
		}
	}

	return resumeText[:s.maxResumeChars]
}

// parseMatchResponse parses the model's reply into a MatchResult. The reply
// should be a bare JSON object, possibly wrapped in a Markdown code fence;
// both forms are accepted. Anything else is a parse error, never guessed at.
func parseMatchResponse(response string) (*models.MatchResult, error) {
	jsonStr := stripCodeFence(response)

	var result models.MatchResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	if !result.ScoreLabel.IsValid() {
		return nil, fmt.Errorf("response has invalid scoreLabel %q", result.ScoreLabel)
	}

	switch result.ConfidenceLevel {
	case models.ConfidenceHigh, models.ConfidenceMedium, models.ConfidenceLow:
	case "":
		result.ConfidenceLevel = models.ConfidenceForLabel(result.ScoreLabel)
	default:
		return nil, fmt.Errorf("response has invalid confidenceLevel %q", result.ConfidenceLevel)
	}

	if result.MatchPercentage < 0 {
		result.MatchPercentage = 0
	}
	if result.MatchPercentage > 100 {
		result.MatchPercentage = 100
	}

	result.Success = true
	return &result, nil
}

// stripCodeFence removes Markdown code-fence wrapping and isolates the JSON
// object. Unfenced responses pass through trimmed.
func stripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
