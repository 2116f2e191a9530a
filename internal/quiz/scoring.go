package quiz

import "math"

// Thresholds on the normalized 0-10 scale.
const (
	SubtypeThreshold = 6

	// MaxChallenges caps the primary challenge list.
	MaxChallenges = 3

	minDerivedScore = 2
)

// challengeRule appends Labels when the normalized score of Axis reaches Min.
type challengeRule struct {
	Axis   Axis
	Min    int
	Labels []string
}

// challengeRules are evaluated in order and are cumulative: a score of 7
// matches both the >=7 and the >=5 rule for its axis.
var challengeRules = []challengeRule{
	{AxisInattentive, 7, []string{"Staying focused on tasks", "Completing projects"}},
	{AxisInattentive, 5, []string{"Time management", "Organization"}},
	{AxisHyperactive, 7, []string{"Restlessness", "Impulsive decision making"}},
	{AxisHyperactive, 5, []string{"Excessive talking", "Interrupting others"}},
	{AxisBoth, 7, []string{"Emotional regulation", "Task switching"}},
}

// rawScores holds per-axis point totals before normalization.
type rawScores struct {
	Inattentive int
	Hyperactive int
	Combined    int
}

// ComputeResults scores a completed answer list. It is pure and total: an
// empty list is valid, duplicate question IDs are summed, and answers with an
// unknown axis contribute nothing.
func ComputeResults(answers []Answer, axisMax AxisMax) Results {
	raw := accumulate(answers)

	inattentive := Normalize(raw.Inattentive, axisMax.Inattentive)
	hyperactive := Normalize(raw.Hyperactive, axisMax.Hyperactive)
	combined := Normalize(raw.Combined, axisMax.Combined)

	return Results{
		ADHDType:          Classify(inattentive, hyperactive),
		InattentiveScore:  inattentive,
		HyperactiveScore:  hyperactive,
		CombinedScore:     combined,
		FocusScore:        FocusScore(inattentive),
		OrganizationScore: OrganizationScore(inattentive, hyperactive),
		PrimaryChallenges: PrimaryChallenges(inattentive, hyperactive, combined),
	}
}

func accumulate(answers []Answer) rawScores {
	var raw rawScores
	for _, a := range answers {
		switch a.Type {
		case AxisInattentive:
			raw.Inattentive += a.Value
		case AxisHyperactive:
			raw.Hyperactive += a.Value
		case AxisBoth:
			raw.Combined += a.Value
		}
	}
	return raw
}

// Normalize rescales raw onto 0-10, rounding half away from zero. The result
// is not clamped. A non-positive axisMax yields 0.
func Normalize(raw, axisMax int) int {
	if axisMax <= 0 {
		return 0
	}
	return int(math.Round(float64(raw) / float64(axisMax) * 10))
}

// Classify applies the subtype decision table; the first matching row wins.
func Classify(inattentive, hyperactive int) ADHDType {
	switch {
	case inattentive >= SubtypeThreshold && hyperactive >= SubtypeThreshold:
		return TypeCombined
	case inattentive >= SubtypeThreshold:
		return TypeInattentive
	case hyperactive >= SubtypeThreshold:
		return TypeHyperactive
	default:
		return TypeUnspecified
	}
}

// FocusScore derives the focus metric from the normalized inattentive score.
func FocusScore(inattentive int) int {
	return max(minDerivedScore, 10-int(math.Floor(float64(inattentive)*0.8)))
}

// OrganizationScore derives the organization metric from the normalized
// inattentive and hyperactive scores.
func OrganizationScore(inattentive, hyperactive int) int {
	avg := float64(inattentive+hyperactive) / 2
	return max(minDerivedScore, 10-int(math.Floor(avg*0.6)))
}

// PrimaryChallenges walks the challenge checklist and keeps the first
// MaxChallenges labels in append order.
func PrimaryChallenges(inattentive, hyperactive, combined int) []string {
	scores := map[Axis]int{
		AxisInattentive: inattentive,
		AxisHyperactive: hyperactive,
		AxisBoth:        combined,
	}

	challenges := []string{}
	for _, rule := range challengeRules {
		if scores[rule.Axis] >= rule.Min {
			challenges = append(challenges, rule.Labels...)
		}
	}

	if len(challenges) > MaxChallenges {
		challenges = challenges[:MaxChallenges:MaxChallenges]
	}
	return challenges
}
