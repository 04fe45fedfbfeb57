package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"talenthub/matching-service/internal/models"
	"talenthub/matching-service/internal/repositories"
)

// PoolPipeline scans the full candidate pool in two phases: hard filters
// eliminate candidates outright, then a weighted soft score orders the
// survivors. A candidate failing any hard filter never appears in the output,
// regardless of soft score. Not qualifying is a normal outcome, never an
// error.
type PoolPipeline struct {
	candidateRepo repositories.CandidateRepository
	concurrency   int
}

func NewPoolPipeline(candidateRepo repositories.CandidateRepository, concurrency int) *PoolPipeline {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PoolPipeline{
		candidateRepo: candidateRepo,
		concurrency:   concurrency,
	}
}

// Search returns the hard-filtered pool sorted by descending soft score. The
// internal ranking score is stripped before returning.
func (p *PoolPipeline) Search(ctx context.Context, filter models.PoolFilter, relevantSkills []string) ([]models.Candidate, error) {
	pool, err := p.candidateRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}

	var survivors []models.Candidate
	for _, candidate := range pool {
		if passesHardFilters(&candidate, filter, relevantSkills) {
			survivors = append(survivors, candidate)
		}
	}

	scores := make([]float64, len(survivors))

	var wg sync.WaitGroup
	indexes := make(chan int)

	for w := 0; w < p.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				scores[i] = softScore(&survivors[i], filter, relevantSkills)
			}
		}()
	}

feed:
	for i := range survivors {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pool scan cancelled: %w", err)
	}

	order := make([]int, len(survivors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranked := make([]models.Candidate, 0, len(survivors))
	for _, i := range order {
		ranked = append(ranked, survivors[i])
	}
	return ranked, nil
}

// passesHardFilters applies the eliminating requirements. The minimum
// experience check only runs when the candidate's experience field is
// present: missing data reads as "no evidence", not zero.
func passesHardFilters(c *models.Candidate, filter models.PoolFilter, relevantSkills []string) bool {
	if filter.MinExperienceYears != nil && c.ExperienceYears != nil &&
		*c.ExperienceYears < *filter.MinExperienceYears {
		return false
	}

	if filter.TopCompaniesRequired && !isTrue(c.TopCompanies) {
		return false
	}
	if filter.TopInstitutesRequired && !isTrue(c.TopInstitutes) {
		return false
	}
	if filter.ConsultingRequired && !isTrue(c.HasConsultingBackground) {
		return false
	}

	if len(relevantSkills) > 0 && len(c.Skills) == 0 {
		return false
	}

	return true
}

// softScore accumulates the secondary ranking score for a surviving
// candidate. The flag bonuses apply whether or not the flag was required; the
// named company/institute bonuses accumulate per match, uncapped.
func softScore(c *models.Candidate, filter models.PoolFilter, relevantSkills []string) float64 {
	score := 0.0

	if len(relevantSkills) > 0 {
		matched := overlapCount(relevantSkills, c.Skills)
		score += float64(matched) / float64(len(relevantSkills)) * poolSkillMatchMax
	}

	if isTrue(c.TopCompanies) {
		score += poolTopCompaniesBonus
	}
	if isTrue(c.TopInstitutes) {
		score += poolTopInstitutesBonus
	}
	if isTrue(c.HasConsultingBackground) {
		score += poolConsultingBonus
	}

	for _, company := range filter.RequiredCompanies {
		if containsFold(c.Companies, company) {
			score += poolNamedCompanyBonus
		}
	}
	for _, institute := range filter.RequiredInstitutes {
		if containsFold(c.Institutes, institute) {
			score += poolNamedInstituteBonus
		}
	}

	if filter.RequiredLocation != "" &&
		strings.EqualFold(strings.TrimSpace(c.CurrentLocation), strings.TrimSpace(filter.RequiredLocation)) {
		score += poolLocationBonus
	}

	return score
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
