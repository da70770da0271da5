package wizard

import (
	"maps"

	"github.com/abhisek/statpick/internal/catalog"
)

// QuestionKey identifies a question in the decision tree.
type QuestionKey string

const (
	KeyObjective    QuestionKey = "objective"
	KeyDataType     QuestionKey = "data_type"
	KeyGroupCount   QuestionKey = "group_count"
	KeyRelation     QuestionKey = "relation"
	KeyNormality    QuestionKey = "normality"
	KeyVariableType QuestionKey = "variable_type"
)

// AllKeys returns every question key in the order they can be asked.
func AllKeys() []QuestionKey {
	return []QuestionKey{
		KeyObjective,
		KeyDataType,
		KeyGroupCount,
		KeyVariableType,
		KeyRelation,
		KeyNormality,
	}
}

// Option is one enumerated answer to a question.
type Option string

const (
	ObjectiveCompareGroups       Option = "compare_groups"
	ObjectiveAnalyzeRelationship Option = "analyze_relationship"
	ObjectivePredict             Option = "predict"

	DataNumeric     Option = "numeric"
	DataCategorical Option = "categorical"
	DataOrdinal     Option = "ordinal"

	GroupsTwo         Option = "two"
	GroupsThreeOrMore Option = "three_or_more"

	RelationIndependent Option = "independent"
	RelationPaired      Option = "paired"

	NormalityYes Option = "yes"
	NormalityNo  Option = "no"

	VariablesBothContinuous Option = "both_continuous"
	VariablesOrdinalOrMixed Option = "ordinal_or_mixed"
)

var options = map[QuestionKey][]Option{
	KeyObjective:    {ObjectiveCompareGroups, ObjectiveAnalyzeRelationship, ObjectivePredict},
	KeyDataType:     {DataNumeric, DataCategorical, DataOrdinal},
	KeyGroupCount:   {GroupsTwo, GroupsThreeOrMore},
	KeyRelation:     {RelationIndependent, RelationPaired},
	KeyNormality:    {NormalityYes, NormalityNo},
	KeyVariableType: {VariablesBothContinuous, VariablesOrdinalOrMixed},
}

// Options returns the enumerated choices for key in display order.
func Options(key QuestionKey) []Option {
	opts := options[key]
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}

// Answers maps each answered question to the selected option.
type Answers map[QuestionKey]Option

// Clone returns an independent copy. A nil Answers clones to an empty map.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	maps.Copy(out, a)
	return out
}

// Keys returns the answered keys in the order they are asked.
func (a Answers) Keys() []QuestionKey {
	var keys []QuestionKey
	for _, k := range AllKeys() {
		if _, ok := a[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// MaxStep is the deepest step of the decision tree.
const MaxStep = 4

// State is the wizard position: the current step (1–MaxStep) and the
// answers that led there. It is a value owned by the caller; the engine
// never mutates a State it was given.
type State struct {
	Step    int
	Answers Answers
}

// NewState returns the initial state: step 1, no answers.
func NewState() State {
	return State{Step: 1, Answers: Answers{}}
}

// Restart discards every answer and returns to step 1.
func Restart() State {
	return NewState()
}

// OutcomeKind tags which variant an Outcome holds.
type OutcomeKind int

const (
	OutcomeNextStep OutcomeKind = iota // More questions follow
	OutcomeTerminal                    // A test has been selected
)

// Outcome is the result of Advance. For OutcomeNextStep, State is the state
// to continue from. For OutcomeTerminal, TestID names the recommendation and
// State holds the full answer set at the step where it was reached.
type Outcome struct {
	Kind   OutcomeKind
	State  State
	TestID catalog.ID
}

// IsTerminal reports whether the outcome ends the wizard.
func (o Outcome) IsTerminal() bool {
	return o.Kind == OutcomeTerminal
}

// Entry is one answered question, used to replay a path.
type Entry struct {
	Key    QuestionKey
	Option Option
}
