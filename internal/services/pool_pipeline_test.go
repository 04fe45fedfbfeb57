package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub/matching-service/internal/models"
)

// stubCandidateRepo serves a fixed in-memory pool.
type stubCandidateRepo struct {
	pool []models.Candidate
	err  error
}

func (r *stubCandidateRepo) Create(candidate *models.Candidate) error { return nil }

func (r *stubCandidateRepo) FindByID(id uuid.UUID) (*models.Candidate, error) {
	for i := range r.pool {
		if r.pool[i].ID == id {
			return &r.pool[i], nil
		}
	}
	return nil, fmt.Errorf("candidate not found")
}

func (r *stubCandidateRepo) FindAll() ([]models.Candidate, error) {
	return r.pool, r.err
}

func boolPtr(v bool) *bool { return &v }

func namedCandidate(name string) models.Candidate {
	return models.Candidate{ID: uuid.New(), Name: name}
}

func TestPoolPipeline_ConsultingHardFilterExcludes(t *testing.T) {
	// A consulting-less candidate stays out even with a perfect skill overlap.
	strongButNoConsulting := namedCandidate("strong")
	strongButNoConsulting.Skills = []string{"go", "sql", "docker"}
	strongButNoConsulting.HasConsultingBackground = boolPtr(false)

	weakConsultant := namedCandidate("consultant")
	weakConsultant.Skills = []string{"go"}
	weakConsultant.HasConsultingBackground = boolPtr(true)

	repo := &stubCandidateRepo{pool: []models.Candidate{strongButNoConsulting, weakConsultant}}
	pipeline := NewPoolPipeline(repo, 2)

	ranked, err := pipeline.Search(context.Background(),
		models.PoolFilter{ConsultingRequired: true},
		[]string{"go", "sql", "docker"})
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	assert.Equal(t, "consultant", ranked[0].Name)
}

func TestPoolPipeline_TopCompaniesFlagMustBeTrue(t *testing.T) {
	// Both a false flag and a missing flag fail the requirement.
	flagFalse := namedCandidate("false-flag")
	flagFalse.TopCompanies = boolPtr(false)

	flagMissing := namedCandidate("missing-flag")

	flagTrue := namedCandidate("true-flag")
	flagTrue.TopCompanies = boolPtr(true)

	repo := &stubCandidateRepo{pool: []models.Candidate{flagFalse, flagMissing, flagTrue}}
	pipeline := NewPoolPipeline(repo, 1)

	ranked, err := pipeline.Search(context.Background(),
		models.PoolFilter{TopCompaniesRequired: true}, nil)
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	assert.Equal(t, "true-flag", ranked[0].Name)
}

func TestPoolPipeline_MissingExperiencePassesMinFilter(t *testing.T) {
	// No experience data means no evidence, not zero years.
	unknown := namedCandidate("unknown-experience")

	junior := namedCandidate("junior")
	junior.ExperienceYears = floatPtr(1)

	senior := namedCandidate("senior")
	senior.ExperienceYears = floatPtr(8)

	repo := &stubCandidateRepo{pool: []models.Candidate{unknown, junior, senior}}
	pipeline := NewPoolPipeline(repo, 2)

	ranked, err := pipeline.Search(context.Background(),
		models.PoolFilter{MinExperienceYears: floatPtr(5)}, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"unknown-experience", "senior"}, names)
}

func TestPoolPipeline_SkillRequirementExcludesEmptyProfiles(t *testing.T) {
	noSkills := namedCandidate("no-skills")

	someSkills := namedCandidate("some-skills")
	someSkills.Skills = []string{"terraform"}

	repo := &stubCandidateRepo{pool: []models.Candidate{noSkills, someSkills}}
	pipeline := NewPoolPipeline(repo, 2)

	ranked, err := pipeline.Search(context.Background(), models.PoolFilter{}, []string{"go"})
	require.NoError(t, err)

	// The zero-overlap candidate survives with a zero score; only the empty
	// profile is excluded.
	require.Len(t, ranked, 1)
	assert.Equal(t, "some-skills", ranked[0].Name)
}

func TestPoolPipeline_RanksBySoftScoreDescending(t *testing.T) {
	partial := namedCandidate("partial-overlap")
	partial.Skills = []string{"go"}

	full := namedCandidate("full-overlap")
	full.Skills = []string{"go", "sql"}

	fullWithBonuses := namedCandidate("full-with-bonuses")
	fullWithBonuses.Skills = []string{"go", "sql"}
	fullWithBonuses.TopCompanies = boolPtr(true)
	fullWithBonuses.Companies = []string{"Acme"}
	fullWithBonuses.CurrentLocation = "Zurich"

	repo := &stubCandidateRepo{pool: []models.Candidate{partial, full, fullWithBonuses}}
	pipeline := NewPoolPipeline(repo, 3)

	ranked, err := pipeline.Search(context.Background(),
		models.PoolFilter{
			RequiredCompanies: []string{"acme"},
			RequiredLocation:  "zurich",
		},
		[]string{"go", "sql"})
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Equal(t, "full-with-bonuses", ranked[0].Name)
	assert.Equal(t, "full-overlap", ranked[1].Name)
	assert.Equal(t, "partial-overlap", ranked[2].Name)
}

func TestPoolPipeline_TiesKeepPoolOrder(t *testing.T) {
	first := namedCandidate("first")
	first.Skills = []string{"go"}

	second := namedCandidate("second")
	second.Skills = []string{"go"}

	repo := &stubCandidateRepo{pool: []models.Candidate{first, second}}
	pipeline := NewPoolPipeline(repo, 2)

	ranked, err := pipeline.Search(context.Background(), models.PoolFilter{}, []string{"go"})
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
}

func TestPoolPipeline_RepositoryErrorPropagates(t *testing.T) {
	repo := &stubCandidateRepo{err: fmt.Errorf("connection refused")}
	pipeline := NewPoolPipeline(repo, 2)

	_, err := pipeline.Search(context.Background(), models.PoolFilter{}, nil)
	assert.ErrorContains(t, err, "failed to load candidate pool")
}

func TestPoolPipeline_CancelledContext(t *testing.T) {
	pool := make([]models.Candidate, 50)
	for i := range pool {
		pool[i] = namedCandidate(fmt.Sprintf("candidate-%d", i))
		pool[i].Skills = []string{"go"}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pipeline := NewPoolPipeline(&stubCandidateRepo{pool: pool}, 2)

	_, err := pipeline.Search(ctx, models.PoolFilter{}, []string{"go"})
	assert.ErrorContains(t, err, "pool scan cancelled")
}
