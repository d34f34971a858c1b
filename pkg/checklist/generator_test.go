package checklist

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/XiaoConstantine/checklist-go/pkg/errors"
)

func newTestGenerator(t *testing.T, opts Options) *Generator {
	t.Helper()
	catalog, err := CatalogForLocale(LocaleEN)
	require.NoError(t, err)
	return NewGenerator(catalog, opts)
}

func assertContiguousIDs(t *testing.T, steps []Step) {
	t.Helper()
	for i, step := range steps {
		assert.Equal(t, strconv.Itoa(i+1), step.ID)
	}
}

// Scenario A: two segments match distinct rules, padded to the minimum with
// the first fallback entry.
func TestGenerateScenarioTwoMatchesPadded(t *testing.T) {
	g := newTestGenerator(t, Options{})

	steps, err := g.Generate("Deploy the API endpoint. Write documentation.", 5)
	require.NoError(t, err)

	require.Len(t, steps, 3)
	assertContiguousIDs(t, steps)
	assert.Equal(t, "Publish a stable endpoint", steps[0].Title)
	assert.Equal(t, "Update documentation", steps[1].Title)
	assert.Equal(t, "Clarify execution scope", steps[2].Title)
}

// Scenario B: empty text is rejected with no steps.
func TestGenerateScenarioEmptyText(t *testing.T) {
	g := newTestGenerator(t, Options{})

	for _, text := range []string{"", "   ", "\n\t "} {
		steps, err := g.Generate(text, 8)
		require.Error(t, err)
		assert.Equal(t, pkgerrors.EmptyText, pkgerrors.CodeOf(err))
		assert.Nil(t, steps)
	}
}

// Scenario C: more matches than maxSteps truncates to the earliest segments.
func TestGenerateScenarioTruncation(t *testing.T) {
	g := newTestGenerator(t, Options{})

	clauses := []string{
		"Deploy the api",
		"Fix the errors",
		"Write the docs",
		"Describe the scope",
		"Add a privacy policy",
		"Write the terms",
		"Expose another endpoint",
		"Handle exceptions",
		"Update the spec",
		"Describe the rollout",
	}
	text := strings.Join(clauses, ". ") + "."

	steps, err := g.Generate(text, 4)
	require.NoError(t, err)

	require.Len(t, steps, 4)
	assertContiguousIDs(t, steps)
	assert.Equal(t, "Publish a stable endpoint", steps[0].Title)
	assert.Equal(t, "Complete error handling", steps[1].Title)
	assert.Equal(t, "Update documentation", steps[2].Title)
	assert.Equal(t, "Draft requirement summary", steps[3].Title)
}

// Scenario D: no segment matches, the whole fallback pool is used.
func TestGenerateScenarioWholesaleFallback(t *testing.T) {
	g := newTestGenerator(t, Options{})

	steps, err := g.Generate("hello world", 6)
	require.NoError(t, err)

	require.Len(t, steps, 5) // pool size
	assertContiguousIDs(t, steps)
	for i, template := range g.Catalog().Fallback() {
		assert.Equal(t, template.Title, steps[i].Title)
	}

	// A tighter maximum caps the wholesale fallback too.
	steps, err = g.Generate("hello world", 3)
	require.NoError(t, err)
	assert.Len(t, steps, 3)
	assertContiguousIDs(t, steps)
}

func TestGenerateSingleMatchPadsCyclically(t *testing.T) {
	g := newTestGenerator(t, Options{})

	steps, err := g.Generate("Deploy the api.", 8)
	require.NoError(t, err)

	require.Len(t, steps, 3)
	assert.Equal(t, "Publish a stable endpoint", steps[0].Title)
	assert.Equal(t, "Clarify execution scope", steps[1].Title)
	assert.Equal(t, "Break down key tasks", steps[2].Title)
}

func TestGenerateBoundsProperty(t *testing.T) {
	g := newTestGenerator(t, Options{})

	texts := []string{
		"hello world",
		"Deploy the api.",
		"Deploy the api. Write docs. Fix errors. Describe scope. Privacy policy. Terms.",
		strings.Repeat("Deploy the api. ", 20),
	}
	for _, text := range texts {
		for maxSteps := MinSteps; maxSteps <= MaxSteps; maxSteps++ {
			steps, err := g.Generate(text, maxSteps)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(steps), MinSteps,
				"text=%q maxSteps=%d", text, maxSteps)
			assert.LessOrEqual(t, len(steps), maxSteps,
				"text=%q maxSteps=%d", text, maxSteps)
			assertContiguousIDs(t, steps)
		}
	}
}

func TestGenerateMaxStepsClamped(t *testing.T) {
	g := newTestGenerator(t, Options{})

	steps, err := g.Generate("hello world", 0)
	require.NoError(t, err)
	assert.Len(t, steps, MinSteps)

	steps, err = g.Generate(strings.Repeat("Deploy the api. ", 20), 100)
	require.NoError(t, err)
	assert.Len(t, steps, MaxSteps)
}

func TestGenerateDeterministic(t *testing.T) {
	g := newTestGenerator(t, Options{Parameterized: true})
	text := "Deploy the api and write the docs. Fix errors.\n- publish the privacy policy"

	first, err := g.Generate(text, 7)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := g.Generate(text, 7)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerateArtifactUnion(t *testing.T) {
	g := newTestGenerator(t, Options{})

	steps, err := g.Generate("Deploy the api endpoint behind a public url.", 8)
	require.NoError(t, err)

	require.NotEmpty(t, steps)
	// Template artifact first, then the keyword-triggered artifact.
	assert.Equal(t, []string{"stable endpoint", "public URL"}, steps[0].Artifacts)
}

func TestGenerateArtifactDeduplication(t *testing.T) {
	g := newTestGenerator(t, Options{})

	// "demo" and "video" both trigger "demo video URL"; the union keeps one.
	steps, err := g.Generate("Publish api docs with a demo video.", 8)
	require.NoError(t, err)

	require.NotEmpty(t, steps)
	count := 0
	for _, a := range steps[0].Artifacts {
		if a == "demo video URL" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGenerateArtifactsNeverNil(t *testing.T) {
	g := newTestGenerator(t, Options{})

	steps, err := g.Generate("hello world. Deploy the api.", 8)
	require.NoError(t, err)
	for _, step := range steps {
		assert.NotNil(t, step.Artifacts)
	}
}

func TestGenerateParameterizedSteps(t *testing.T) {
	g := newTestGenerator(t, Options{Parameterized: true})

	steps, err := g.Generate("Deploy the API endpoint.", 8)
	require.NoError(t, err)

	require.NotEmpty(t, steps)
	assert.Equal(t, "Execute: Deploy the API endpoint", steps[0].Title)
	assert.Equal(t, "Do the following: Deploy the API endpoint.", steps[0].Action)
	assert.Equal(t, "Confirm completion of: Deploy the API endpoint.", steps[0].Verify)

	// Padding steps have no originating segment and stay verbatim.
	assert.Equal(t, "Clarify execution scope", steps[1].Title)
}

func TestGenerateParameterizedSnippetTruncation(t *testing.T) {
	g := newTestGenerator(t, Options{Parameterized: true})

	long := "deploy the api " + strings.Repeat("x", 100)
	steps, err := g.Generate(long+".", 8)
	require.NoError(t, err)

	require.NotEmpty(t, steps)
	title := steps[0].Title
	snippet := strings.TrimPrefix(title, "Execute: ")
	assert.Len(t, []rune(snippet), 48)
	assert.False(t, strings.HasSuffix(title, "..."))
	// The full segment still appears in the action text.
	assert.Contains(t, steps[0].Action, long)
}

func TestGenerateZHLocale(t *testing.T) {
	catalog, err := CatalogForLocale(LocaleZH)
	require.NoError(t, err)
	g := NewGenerator(catalog, Options{})

	steps, err := g.Generate("部署一个稳定的接口。完善文档。", 5)
	require.NoError(t, err)

	require.Len(t, steps, 3)
	assert.Equal(t, "发布稳定接口", steps[0].Title)
	assert.Equal(t, "更新文档", steps[1].Title)
	assert.Equal(t, "明确执行范围", steps[2].Title)
}

func TestResultShapes(t *testing.T) {
	ctxStr := "release prep"

	success := SuccessResult([]Step{{ID: "1"}, {ID: "2"}, {ID: "3"}}, &ctxStr)
	assert.Equal(t, "checklist", success.Type)
	assert.Equal(t, "agent", success.Audience)
	assert.Equal(t, &ctxStr, success.Context)
	assert.Equal(t, "Generated 3 checklist steps.", success.HumanSummary)
	assert.Equal(t, StateSuccess, success.Meta.State)
	assert.Empty(t, success.Meta.Reason)

	failure := FailureResult(pkgerrors.New(pkgerrors.EmptyText, "text must be non-empty"), nil)
	assert.Equal(t, StateFailure, failure.Meta.State)
	assert.Equal(t, "empty_text", failure.Meta.Reason)
	assert.NotNil(t, failure.Steps)
	assert.Empty(t, failure.Steps)
	assert.Nil(t, failure.Context)

	// Errors without a caller-facing reason fall back to invalid_input.
	failure = FailureResult(fmt.Errorf("boom"), nil)
	assert.Equal(t, "invalid_input", failure.Meta.Reason)
}
