package quiz

import "fmt"

// Axis is the symptom dimension a question scores against.
type Axis string

const (
	AxisInattentive Axis = "inattentive"
	AxisHyperactive Axis = "hyperactive"
	AxisBoth        Axis = "both"
)

// Valid reports whether a is one of the three known axes.
func (a Axis) Valid() bool {
	switch a {
	case AxisInattentive, AxisHyperactive, AxisBoth:
		return true
	}
	return false
}

// Answer is one recorded response to a question.
type Answer struct {
	QuestionID int    `json:"questionId"`
	OptionID   string `json:"optionId"`
	Value      int    `json:"value"`
	Type       Axis   `json:"type"`
}

// ADHDType is the subtype label assigned to a completed quiz.
type ADHDType string

const (
	TypeInattentive ADHDType = "Inattentive"
	TypeHyperactive ADHDType = "Hyperactive-Impulsive"
	TypeCombined    ADHDType = "Combined"
	TypeUnspecified ADHDType = "Unspecified"
)

// TypeInfo holds the display metadata for a subtype.
type TypeInfo struct {
	ID          ADHDType
	Name        string
	Description string
	Emoji       string
}

var typeInfos = map[ADHDType]TypeInfo{
	TypeInattentive: {
		ID:          TypeInattentive,
		Name:        "Inattentive Type",
		Description: "Difficulty maintaining focus, easily distracted, struggles with organization and completing tasks.",
		Emoji:       "🧠",
	},
	TypeHyperactive: {
		ID:          TypeHyperactive,
		Name:        "Hyperactive-Impulsive Type",
		Description: "Fidgety, restless, interrupts others, difficulty waiting turn, makes hasty decisions.",
		Emoji:       "⚡",
	},
	TypeCombined: {
		ID:          TypeCombined,
		Name:        "Combined Type",
		Description: "Shows significant symptoms of both inattention and hyperactivity-impulsivity.",
		Emoji:       "🔄",
	},
	TypeUnspecified: {
		ID:          TypeUnspecified,
		Name:        "Unspecified Type",
		Description: "Shows some ADHD symptoms but doesn't meet full criteria for other types.",
		Emoji:       "❓",
	},
}

// Info returns the display metadata for t. Unknown labels get a bare entry
// carrying only the label.
func (t ADHDType) Info() TypeInfo {
	if info, ok := typeInfos[t]; ok {
		return info
	}
	return TypeInfo{ID: t, Name: string(t)}
}

// ParseADHDType converts a subtype label into an ADHDType.
func ParseADHDType(s string) (ADHDType, error) {
	t := ADHDType(s)
	if _, ok := typeInfos[t]; !ok {
		return "", fmt.Errorf("unknown ADHD type %q", s)
	}
	return t, nil
}

// Results is the output of the scoring engine for one completed quiz.
type Results struct {
	ADHDType          ADHDType `json:"adhdType"`
	InattentiveScore  int      `json:"inattentiveScore"`
	HyperactiveScore  int      `json:"hyperactiveScore"`
	CombinedScore     int      `json:"combinedScore"`
	FocusScore        int      `json:"focusScore"`
	OrganizationScore int      `json:"organizationScore"`
	PrimaryChallenges []string `json:"primaryChallenges"`
}

// Clone returns a copy of r that shares no memory with it.
func (r Results) Clone() Results {
	out := r
	out.PrimaryChallenges = append([]string{}, r.PrimaryChallenges...)
	return out
}

// AxisMax holds the maximum attainable raw score per axis for a question bank.
type AxisMax struct {
	Inattentive int `json:"inattentive" yaml:"inattentive"`
	Hyperactive int `json:"hyperactive" yaml:"hyperactive"`
	Combined    int `json:"both" yaml:"both"`
}

// DefaultAxisMax matches the embedded question bank.
var DefaultAxisMax = AxisMax{Inattentive: 40, Hyperactive: 40, Combined: 20}

// For returns the maximum for the given axis, or 0 for an unknown axis.
func (m AxisMax) For(a Axis) int {
	switch a {
	case AxisInattentive:
		return m.Inattentive
	case AxisHyperactive:
		return m.Hyperactive
	case AxisBoth:
		return m.Combined
	}
	return 0
}

// IsZero reports whether no maximum has been set for any axis.
func (m AxisMax) IsZero() bool {
	return m == AxisMax{}
}
