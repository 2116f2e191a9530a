package quiz

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answersFor builds answers on a single axis whose values sum to total,
// using chunks of at most 5 points.
func answersFor(axis Axis, startID, total int) []Answer {
	var out []Answer
	id := startID
	for total > 0 {
		v := min(5, total)
		out = append(out, Answer{QuestionID: id, OptionID: "x", Value: v, Type: axis})
		total -= v
		id++
	}
	return out
}

func TestComputeResults_Empty(t *testing.T) {
	r := ComputeResults(nil, DefaultAxisMax)

	assert.Equal(t, TypeUnspecified, r.ADHDType)
	assert.Equal(t, 0, r.InattentiveScore)
	assert.Equal(t, 0, r.HyperactiveScore)
	assert.Equal(t, 0, r.CombinedScore)
	assert.Equal(t, 10, r.FocusScore)
	assert.Equal(t, 10, r.OrganizationScore)
	require.NotNil(t, r.PrimaryChallenges)
	assert.Empty(t, r.PrimaryChallenges)
}

func TestComputeResults_MaxInattentive(t *testing.T) {
	r := ComputeResults(answersFor(AxisInattentive, 1, 40), DefaultAxisMax)

	assert.Equal(t, 10, r.InattentiveScore)
	assert.Equal(t, 0, r.HyperactiveScore)
	assert.Equal(t, TypeInattentive, r.ADHDType)
	assert.Equal(t, 2, r.FocusScore)
	// (10+0)/2*0.6 = 3
	assert.Equal(t, 7, r.OrganizationScore)
	assert.Equal(t, []string{"Staying focused on tasks", "Completing projects", "Time management"}, r.PrimaryChallenges)
}

func TestComputeResults_CombinedWinsAtThreshold(t *testing.T) {
	// 24/40 -> 6 on both axes.
	answers := append(answersFor(AxisInattentive, 1, 24), answersFor(AxisHyperactive, 100, 24)...)
	r := ComputeResults(answers, DefaultAxisMax)

	require.Equal(t, 6, r.InattentiveScore)
	require.Equal(t, 6, r.HyperactiveScore)
	assert.Equal(t, TypeCombined, r.ADHDType)
}

func TestComputeResults_Subtypes(t *testing.T) {
	tests := []struct {
		name        string
		inattentive int
		hyperactive int
		want        ADHDType
	}{
		{"both high", 32, 32, TypeCombined},
		{"inattentive only", 32, 8, TypeInattentive},
		{"hyperactive only", 4, 36, TypeHyperactive},
		{"both below", 20, 20, TypeUnspecified},
		{"half rounds up to threshold", 22, 22, TypeCombined}, // 22/40*10 = 5.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := append(answersFor(AxisInattentive, 1, tt.inattentive), answersFor(AxisHyperactive, 100, tt.hyperactive)...)
			r := ComputeResults(answers, DefaultAxisMax)
			assert.Equal(t, tt.want, r.ADHDType)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw, max, want int
	}{
		{0, 40, 0},
		{40, 40, 10},
		{2, 40, 1},   // 0.5 -> 1
		{6, 40, 2},   // 1.5 -> 2
		{10, 20, 5},
		{44, 40, 11}, // not clamped
		{5, 0, 0},
		{5, -3, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw, tt.max), "Normalize(%d, %d)", tt.raw, tt.max)
	}
}

func TestDerivedScoresFloor(t *testing.T) {
	for i := 0; i <= 10; i++ {
		for h := 0; h <= 10; h++ {
			assert.GreaterOrEqual(t, FocusScore(i), 2)
			assert.GreaterOrEqual(t, OrganizationScore(i, h), 2)
		}
	}
	assert.Equal(t, 10, FocusScore(0))
	assert.Equal(t, 6, FocusScore(5))
	assert.Equal(t, 2, FocusScore(10))
	assert.Equal(t, 7, OrganizationScore(6, 6))
	assert.Equal(t, 4, OrganizationScore(10, 10))
}

func TestPrimaryChallenges(t *testing.T) {
	tests := []struct {
		name    string
		i, h, c int
		want    []string
	}{
		{"none", 0, 0, 0, []string{}},
		{"inattentive five", 5, 0, 0, []string{"Time management", "Organization"}},
		{"hyperactive seven", 0, 7, 0, []string{"Restlessness", "Impulsive decision making", "Excessive talking"}},
		{"combined only", 0, 0, 8, []string{"Emotional regulation", "Task switching"}},
		{"inattentive five and hyperactive five", 5, 5, 0, []string{"Time management", "Organization", "Excessive talking"}},
		{"all high", 10, 10, 10, []string{"Staying focused on tasks", "Completing projects", "Time management"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrimaryChallenges(tt.i, tt.h, tt.c)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), MaxChallenges)
		})
	}
}

func TestComputeResults_OrderInvariant(t *testing.T) {
	answers := append(answersFor(AxisInattentive, 1, 27), answersFor(AxisHyperactive, 50, 31)...)
	answers = append(answers, answersFor(AxisBoth, 90, 15)...)
	want := ComputeResults(answers, DefaultAxisMax)

	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		shuffled := append([]Answer{}, answers...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, ComputeResults(shuffled, DefaultAxisMax))
	}
}

func TestComputeResults_Deterministic(t *testing.T) {
	answers := append(answersFor(AxisInattentive, 1, 18), answersFor(AxisBoth, 30, 14)...)
	assert.Equal(t, ComputeResults(answers, DefaultAxisMax), ComputeResults(answers, DefaultAxisMax))
}

func TestComputeResults_UnknownAxisIgnored(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: 5, Type: "sleepy"},
		{QuestionID: 2, Value: 5, Type: AxisInattentive},
	}
	r := ComputeResults(answers, DefaultAxisMax)
	assert.Equal(t, 1, r.InattentiveScore) // 5/40*10 = 1.25
	assert.Equal(t, 0, r.HyperactiveScore)
	assert.Equal(t, 0, r.CombinedScore)
}

func TestComputeResults_DuplicatesSummed(t *testing.T) {
	answers := []Answer{
		{QuestionID: 1, Value: 5, Type: AxisBoth},
		{QuestionID: 1, Value: 5, Type: AxisBoth},
	}
	r := ComputeResults(answers, DefaultAxisMax)
	assert.Equal(t, 5, r.CombinedScore)
}

func TestResults_JSONRoundTrip(t *testing.T) {
	r := ComputeResults(append(answersFor(AxisInattentive, 1, 30), answersFor(AxisBoth, 40, 18)...), DefaultAxisMax)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"adhdType":"Inattentive"`)
	assert.Contains(t, string(b), `"primaryChallenges":[`)

	var got Results
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, r, got)
}

func TestResults_Clone(t *testing.T) {
	r := Results{PrimaryChallenges: []string{"a", "b"}}
	c := r.Clone()
	c.PrimaryChallenges[0] = "changed"
	assert.Equal(t, "a", r.PrimaryChallenges[0])
}

func TestParseADHDType(t *testing.T) {
	got, err := ParseADHDType("Hyperactive-Impulsive")
	require.NoError(t, err)
	assert.Equal(t, TypeHyperactive, got)
	assert.Equal(t, "Hyperactive-Impulsive Type", got.Info().Name)

	_, err = ParseADHDType("Sleepy")
	assert.Error(t, err)
	assert.Equal(t, "Sleepy", ADHDType("Sleepy").Info().Name)
}
