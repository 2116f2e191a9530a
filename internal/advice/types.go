package advice

import (
	"fmt"

	"github.com/adhdflow/adhdflow/internal/quiz"
)

// DefaultMotivationLevel is assumed when the quiz has not measured motivation.
const DefaultMotivationLevel = "Moderate"

// Profile is the part of a quiz result the advice prompt is built from.
type Profile struct {
	ADHDType          quiz.ADHDType
	FocusScore        int
	OrganizationScore int
	PrimaryChallenges []string
	MotivationLevel   string
}

// ProfileFromResults derives a Profile from scored quiz results.
func ProfileFromResults(r quiz.Results) Profile {
	return Profile{
		ADHDType:          r.ADHDType,
		FocusScore:        r.FocusScore,
		OrganizationScore: r.OrganizationScore,
		PrimaryChallenges: append([]string{}, r.PrimaryChallenges...),
		MotivationLevel:   DefaultMotivationLevel,
	}
}

// ContentType selects what kind of advice to generate.
type ContentType string

const (
	DailyTips              ContentType = "daily-tips"
	FocusStrategies        ContentType = "focus-strategies"
	OrganizationStrategies ContentType = "organization-strategies"
	ProductivityTips       ContentType = "productivity-tips"
	EmotionalRegulation    ContentType = "emotional-regulation"
	MorningRoutine         ContentType = "morning-routine"
	Strategies             ContentType = "strategies"
	Routines               ContentType = "routines"
	Environment            ContentType = "environment"
	Tools                  ContentType = "tools"
	Communication          ContentType = "communication"
)

type contentTypeInfo struct {
	label       string
	instruction string
}

var contentTypeOrder = []ContentType{
	DailyTips,
	FocusStrategies,
	OrganizationStrategies,
	ProductivityTips,
	EmotionalRegulation,
	MorningRoutine,
	Strategies,
	Routines,
	Environment,
	Tools,
	Communication,
}

var contentTypeInfos = map[ContentType]contentTypeInfo{
	DailyTips: {
		label:       "Daily Tips",
		instruction: "practical daily tips this person can apply today to manage their ADHD symptoms",
	},
	FocusStrategies: {
		label:       "Focus Strategies",
		instruction: "focus strategies that help this person start, sustain and return to attention on a task",
	},
	OrganizationStrategies: {
		label:       "Organization Strategies",
		instruction: "organization strategies for keeping track of tasks, belongings and commitments",
	},
	ProductivityTips: {
		label:       "Productivity Tips",
		instruction: "productivity tips that work with an ADHD brain instead of against it",
	},
	EmotionalRegulation: {
		label:       "Emotional Regulation",
		instruction: "emotional regulation techniques for frustration, overwhelm and rejection sensitivity",
	},
	MorningRoutine: {
		label:       "Morning Routine",
		instruction: "steps for a simple, repeatable morning routine that fits this ADHD profile",
	},
	Strategies: {
		label:       "Strategies",
		instruction: "specific actionable strategies that will help this person manage their ADHD symptoms",
	},
	Routines: {
		label:       "Routines",
		instruction: "effective daily routines and habits that can help this person manage their ADHD",
	},
	Environment: {
		label:       "Environment",
		instruction: "environmental adjustments and workspace organization tips for this ADHD profile",
	},
	Tools: {
		label:       "Tools",
		instruction: "digital and physical tools, apps, and resources that would be beneficial for this ADHD profile",
	},
	Communication: {
		label:       "Communication",
		instruction: "communication strategies and social skills tips for this ADHD profile",
	},
}

// ContentTypes returns every supported content type in display order.
func ContentTypes() []ContentType {
	return append([]ContentType{}, contentTypeOrder...)
}

// FeaturedContentTypes returns the types offered next to quiz results.
// The rest stay reachable from the command line.
func FeaturedContentTypes() []ContentType {
	return append([]ContentType{}, contentTypeOrder[:6]...)
}

// Valid reports whether c is a supported content type.
func (c ContentType) Valid() bool {
	_, ok := contentTypeInfos[c]
	return ok
}

// Label returns the human-readable name of c.
func (c ContentType) Label() string {
	if info, ok := contentTypeInfos[c]; ok {
		return info.label
	}
	return string(c)
}

// Instruction returns the prompt fragment for c. Unknown types use the
// generic strategies instruction.
func (c ContentType) Instruction() string {
	if info, ok := contentTypeInfos[c]; ok {
		return info.instruction
	}
	return contentTypeInfos[Strategies].instruction
}

// ParseContentType converts a content type ID into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	c := ContentType(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown content type %q", s)
	}
	return c, nil
}
