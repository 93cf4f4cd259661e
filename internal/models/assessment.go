package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Category string

const (
	CategoryPersonalBackground    Category = "personalBackground"
	CategoryEntrepreneurialSkills Category = "entrepreneurialSkills"
	CategoryResources             Category = "resources"
	CategoryBehavioralMetrics     Category = "behavioralMetrics"
	CategoryGrowthVision          Category = "growthVision"
)

// CategoryOrder is the presentation and aggregation order of the five
// assessment dimensions.
var CategoryOrder = []Category{
	CategoryPersonalBackground,
	CategoryEntrepreneurialSkills,
	CategoryResources,
	CategoryBehavioralMetrics,
	CategoryGrowthVision,
}

var ValidCategories = map[Category]bool{
	CategoryPersonalBackground:    true,
	CategoryEntrepreneurialSkills: true,
	CategoryResources:             true,
	CategoryBehavioralMetrics:     true,
	CategoryGrowthVision:          true,
}

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multipleChoice"
	TypeMultiSelect    QuestionType = "multiSelect"
	TypeOpenEnded      QuestionType = "openEnded"
	TypeLikert         QuestionType = "likert"
)

// Question is an immutable catalog entry.
type Question struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	SubHeading    string       `json:"sub_heading,omitempty"`
	Category      Category     `json:"category"`
	Type          QuestionType `json:"type"`
	Options       []string     `json:"options,omitempty"`
	Weight        float64      `json:"weight"`
	Section       string       `json:"section"`
	MinCharacters int          `json:"min_characters,omitempty"`
	// RubricKey selects the evaluator rubric for open-ended questions.
	// Not exposed over the API.
	RubricKey string `json:"-"`
}

// ResponseValue is a tagged union over the four answer shapes: a selected
// option label, a set of option labels, a likert value, or free text.
// The tag must match the question's type; scorer branches check it instead
// of sniffing the runtime shape.
type ResponseValue struct {
	kind     QuestionType
	option   string
	selected []string
	scale    int
	text     string
}

func OptionResponse(option string) ResponseValue {
	return ResponseValue{kind: TypeMultipleChoice, option: option}
}

func MultiSelectResponse(selected []string) ResponseValue {
	return ResponseValue{kind: TypeMultiSelect, selected: selected}
}

func LikertResponse(scale int) ResponseValue {
	return ResponseValue{kind: TypeLikert, scale: scale}
}

func TextResponse(text string) ResponseValue {
	return ResponseValue{kind: TypeOpenEnded, text: text}
}

func (v ResponseValue) Kind() QuestionType { return v.kind }
func (v ResponseValue) Option() string     { return v.option }
func (v ResponseValue) Selected() []string { return v.selected }
func (v ResponseValue) Scale() int         { return v.scale }
func (v ResponseValue) Text() string       { return v.text }

// MarshalJSON writes the bare union value (string, string array, or number),
// matching the wire and storage format of assessment responses.
func (v ResponseValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case TypeMultipleChoice:
		return json.Marshal(v.option)
	case TypeMultiSelect:
		return json.Marshal(v.selected)
	case TypeLikert:
		return json.Marshal(v.scale)
	case TypeOpenEnded:
		return json.Marshal(v.text)
	}
	return nil, fmt.Errorf("response value has no kind")
}

// DecodeResponseValue parses a raw JSON answer into the shape required by the
// question's type. The union tag comes from the catalog, never from the wire.
func DecodeResponseValue(qt QuestionType, raw json.RawMessage) (ResponseValue, error) {
	switch qt {
	case TypeMultipleChoice:
		var option string
		if err := json.Unmarshal(raw, &option); err != nil {
			return ResponseValue{}, fmt.Errorf("multiple-choice response must be a string: %w", err)
		}
		return OptionResponse(option), nil
	case TypeMultiSelect:
		var selected []string
		if err := json.Unmarshal(raw, &selected); err != nil {
			return ResponseValue{}, fmt.Errorf("multi-select response must be a string array: %w", err)
		}
		return MultiSelectResponse(selected), nil
	case TypeLikert:
		var scale int
		if err := json.Unmarshal(raw, &scale); err != nil {
			return ResponseValue{}, fmt.Errorf("likert response must be an integer: %w", err)
		}
		return LikertResponse(scale), nil
	case TypeOpenEnded:
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return ResponseValue{}, fmt.Errorf("open-ended response must be a string: %w", err)
		}
		return TextResponse(text), nil
	}
	return ResponseValue{}, fmt.Errorf("unknown question type %q", qt)
}

// AssessmentResponse is one answer to one question. Immutable once submitted.
type AssessmentResponse struct {
	QuestionID string        `json:"question_id"`
	Category   Category      `json:"category"`
	Value      ResponseValue `json:"response"`
	Timestamp  time.Time     `json:"timestamp"`
}

// AssessmentScores is the computed result for one submission. The five
// category fields are normalized scores; OverallScore is their sum.
// ScoringVersion binds the result to the formula that produced it.
type AssessmentScores struct {
	PersonalBackground    int    `json:"personalBackground"`
	EntrepreneurialSkills int    `json:"entrepreneurialSkills"`
	Resources             int    `json:"resources"`
	BehavioralMetrics     int    `json:"behavioralMetrics"`
	GrowthVision          int    `json:"growthVision"`
	OverallScore          int    `json:"overallScore"`
	ScoringVersion        string `json:"scoringVersion"`
}

// Get returns the normalized score for a category.
func (s AssessmentScores) Get(c Category) int {
	switch c {
	case CategoryPersonalBackground:
		return s.PersonalBackground
	case CategoryEntrepreneurialSkills:
		return s.EntrepreneurialSkills
	case CategoryResources:
		return s.Resources
	case CategoryBehavioralMetrics:
		return s.BehavioralMetrics
	case CategoryGrowthVision:
		return s.GrowthVision
	}
	return 0
}

func (s *AssessmentScores) set(c Category, score int) {
	switch c {
	case CategoryPersonalBackground:
		s.PersonalBackground = score
	case CategoryEntrepreneurialSkills:
		s.EntrepreneurialSkills = score
	case CategoryResources:
		s.Resources = score
	case CategoryBehavioralMetrics:
		s.BehavioralMetrics = score
	case CategoryGrowthVision:
		s.GrowthVision = score
	}
}

// SetCategory assigns a category's normalized score.
func (s *AssessmentScores) SetCategory(c Category, score int) { s.set(c, score) }

// StarTier is one band of the overall-score-to-stars mapping.
type StarTier struct {
	Stars int    `json:"stars"`
	Name  string `json:"name"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}
