package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultBankYAML []byte

//go:embed bank_schema.json
var bankSchemaJSON []byte

// Option is one selectable answer to a question.
type Option struct {
	ID    string `yaml:"id" json:"id"`
	Text  string `yaml:"text" json:"text"`
	Value int    `yaml:"value" json:"value"`
}

// Question is a single quiz item scored against one axis.
type Question struct {
	ID      int      `yaml:"id" json:"id"`
	Type    Axis     `yaml:"type" json:"type"`
	Text    string   `yaml:"text" json:"text"`
	Options []Option `yaml:"options" json:"options"`
}

// MaxValue returns the highest option value of q.
func (q Question) MaxValue() int {
	best := 0
	for _, o := range q.Options {
		if o.Value > best {
			best = o.Value
		}
	}
	return best
}

// Bank is an ordered question set together with the axis maxima used to
// normalize scores for it.
type Bank struct {
	Version   string     `yaml:"version" json:"version"`
	AxisMax   AxisMax    `yaml:"axis_max" json:"axis_max"`
	Questions []Question `yaml:"questions" json:"questions"`
}

var (
	// ErrAxisMaxMismatch is returned when a bank declares axis maxima that
	// differ from what its questions can actually produce.
	ErrAxisMaxMismatch = errors.New("declared axis_max does not match questions")

	// ErrQuestionNotFound is returned by lookups on an unknown question.
	ErrQuestionNotFound = errors.New("question not found")
)

var (
	defaultBankOnce sync.Once
	defaultBank     *Bank
	defaultBankErr  error
)

// DefaultBank returns the embedded question bank.
func DefaultBank() (*Bank, error) {
	defaultBankOnce.Do(func() {
		defaultBank, defaultBankErr = LoadBank(bytes.NewReader(defaultBankYAML))
	})
	return defaultBank, defaultBankErr
}

// LoadBankFile reads and validates a YAML question bank from path.
func LoadBankFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer f.Close()

	b, err := LoadBank(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// LoadBank decodes a YAML question bank, validates its shape against the
// bank JSON Schema and then checks its semantics.
func LoadBank(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if err := validateBankDocument(doc); err != nil {
		return nil, err
	}

	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	if b.AxisMax.IsZero() {
		b.AxisMax = b.ComputedAxisMax()
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks the semantic rules the schema cannot express.
func (b *Bank) Validate() error {
	seen := make(map[int]bool, len(b.Questions))
	for _, q := range b.Questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		if !q.Type.Valid() {
			return fmt.Errorf("question %d: unknown axis %q", q.ID, q.Type)
		}

		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if opts[o.ID] {
				return fmt.Errorf("question %d: duplicate option id %q", q.ID, o.ID)
			}
			opts[o.ID] = true
			if o.Value < 0 {
				return fmt.Errorf("question %d: option %q has negative value", q.ID, o.ID)
			}
		}
	}

	if computed := b.ComputedAxisMax(); computed != b.AxisMax {
		return fmt.Errorf("%w: declared %+v, computed %+v", ErrAxisMaxMismatch, b.AxisMax, computed)
	}
	return nil
}

// ComputedAxisMax sums each question's highest option value per axis.
func (b *Bank) ComputedAxisMax() AxisMax {
	var m AxisMax
	for _, q := range b.Questions {
		switch q.Type {
		case AxisInattentive:
			m.Inattentive += q.MaxValue()
		case AxisHyperactive:
			m.Hyperactive += q.MaxValue()
		case AxisBoth:
			m.Combined += q.MaxValue()
		}
	}
	return m
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.Questions)
}

// QuestionIDs returns the question IDs in bank order.
func (b *Bank) QuestionIDs() []int {
	ids := make([]int, len(b.Questions))
	for i, q := range b.Questions {
		ids[i] = q.ID
	}
	return ids
}

// Question returns the question with the given ID.
func (b *Bank) Question(id int) (Question, error) {
	for _, q := range b.Questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
}

// AnswerFor builds the Answer for choosing option optionIndex of the
// question at position questionIndex.
func (b *Bank) AnswerFor(questionIndex, optionIndex int) (Answer, error) {
	if questionIndex < 0 || questionIndex >= len(b.Questions) {
		return Answer{}, fmt.Errorf("%w: index %d", ErrQuestionNotFound, questionIndex)
	}
	q := b.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return Answer{}, fmt.Errorf("question %d: option index %d out of range", q.ID, optionIndex)
	}
	o := q.Options[optionIndex]
	return Answer{
		QuestionID: q.ID,
		OptionID:   o.ID,
		Value:      o.Value,
		Type:       q.Type,
	}, nil
}

// Compute scores answers against this bank's axis maxima.
func (b *Bank) Compute(answers []Answer) Results {
	return ComputeResults(answers, b.AxisMax)
}

var (
	bankSchemaOnce sync.Once
	bankSchema     *jsonschema.Schema
	bankSchemaErr  error
)

func compiledBankSchema() (*jsonschema.Schema, error) {
	bankSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(bankSchemaJSON, &def); err != nil {
			bankSchemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://question-bank.json"
		if err := c.AddResource(url, def); err != nil {
			bankSchemaErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		bankSchema, bankSchemaErr = c.Compile(url)
	})
	return bankSchema, bankSchemaErr
}

// validateBankDocument checks a decoded YAML document against the bank
// schema. The document is round-tripped through JSON so the validator sees
// JSON value types.
func validateBankDocument(doc any) error {
	schema, err := compiledBankSchema()
	if err != nil {
		return err
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("question bank is not JSON-compatible: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("question bank is not JSON-compatible: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("question bank schema validation failed: %w", err)
	}
	return nil
}
