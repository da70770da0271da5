package wizard

import (
	"fmt"
	"slices"

	"github.com/abhisek/statpick/internal/catalog"
)

// Expected returns the question due at s. It fails with ErrInvalidTransition
// when s could not have been reached by answering questions in order.
func Expected(s State) (QuestionKey, error) {
	a := s.Answers
	switch s.Step {
	case 1:
		if len(a) == 0 {
			return KeyObjective, nil
		}
	case 2:
		if len(a) > 2 {
			break
		}
		switch a[KeyObjective] {
		case ObjectiveCompareGroups:
			dt, answered := a[KeyDataType]
			if !answered {
				if len(a) == 1 {
					return KeyDataType, nil
				}
				break
			}
			if dt == DataNumeric || dt == DataOrdinal {
				return KeyGroupCount, nil
			}
		case ObjectiveAnalyzeRelationship:
			if len(a) == 1 {
				return KeyVariableType, nil
			}
		}
	case 3:
		switch a[KeyObjective] {
		case ObjectiveCompareGroups:
			if len(a) != 3 || !rankableData(a) {
				break
			}
			switch a[KeyGroupCount] {
			case GroupsTwo:
				return KeyRelation, nil
			case GroupsThreeOrMore:
				return KeyNormality, nil
			}
		case ObjectiveAnalyzeRelationship:
			if len(a) == 2 && a[KeyVariableType] == VariablesBothContinuous {
				return KeyNormality, nil
			}
		}
	case 4:
		if len(a) == 4 &&
			a[KeyObjective] == ObjectiveCompareGroups &&
			rankableData(a) &&
			a[KeyGroupCount] == GroupsTwo &&
			slices.Contains(options[KeyRelation], a[KeyRelation]) {
			return KeyNormality, nil
		}
	}
	return "", &TransitionError{Step: s.Step, Reason: "answers do not lead to this step"}
}

// Advance records option as the answer to key and returns where the wizard
// goes next. s is not modified.
func Advance(s State, key QuestionKey, option Option) (Outcome, error) {
	want, err := Expected(s)
	if err != nil {
		return Outcome{}, err
	}
	if key != want {
		return Outcome{}, &TransitionError{
			Step: s.Step, Key: key, Option: option,
			Reason: fmt.Sprintf("expected an answer to %s", want),
		}
	}
	if !slices.Contains(options[key], option) {
		return Outcome{}, &TransitionError{
			Step: s.Step, Key: key, Option: option,
			Reason: "not one of the question's choices",
		}
	}

	next := State{Step: s.Step, Answers: s.Answers.Clone()}
	next.Answers[key] = option

	switch key {
	case KeyObjective:
		if option == ObjectivePredict {
			return terminal(next, catalog.SimpleLinearRegression), nil
		}
		next.Step = 2
	case KeyDataType:
		if option == DataCategorical {
			return terminal(next, catalog.ChiSquare), nil
		}
		// Group count is asked on the same step.
	case KeyGroupCount:
		next.Step = 3
	case KeyVariableType:
		if option == VariablesOrdinalOrMixed {
			return terminal(next, catalog.SpearmanCorrelation), nil
		}
		next.Step = 3
	case KeyRelation:
		next.Step = 4
	case KeyNormality:
		return terminal(next, normalityOutcome(next.Answers)), nil
	}
	return Outcome{Kind: OutcomeNextStep, State: next}, nil
}

// normalityOutcome picks the test once normality has been answered.
// Each path pairs a parametric test with its rank-based counterpart.
func normalityOutcome(a Answers) catalog.ID {
	normal := a[KeyNormality] == NormalityYes

	var parametric, nonParametric catalog.ID
	switch {
	case a[KeyObjective] == ObjectiveAnalyzeRelationship:
		parametric, nonParametric = catalog.PearsonCorrelation, catalog.SpearmanCorrelation
	case a[KeyGroupCount] == GroupsThreeOrMore:
		parametric, nonParametric = catalog.OneWayANOVA, catalog.KruskalWallis
	case a[KeyRelation] == RelationPaired:
		parametric, nonParametric = catalog.TTestPaired, catalog.WilcoxonSignedRank
	default:
		parametric, nonParametric = catalog.TTestIndependent, catalog.MannWhitneyU
	}

	if normal {
		return parametric
	}
	return nonParametric
}

func terminal(s State, id catalog.ID) Outcome {
	return Outcome{Kind: OutcomeTerminal, State: s, TestID: id}
}

func rankableData(a Answers) bool {
	dt := a[KeyDataType]
	return dt == DataNumeric || dt == DataOrdinal
}

// StepOf returns the step at which key is asked on the path described by a.
// Normality is asked at step 4 after the relation question, otherwise at 3.
func StepOf(key QuestionKey, a Answers) int {
	switch key {
	case KeyObjective:
		return 1
	case KeyDataType, KeyGroupCount, KeyVariableType:
		return 2
	case KeyRelation:
		return 3
	case KeyNormality:
		if _, ok := a[KeyRelation]; ok {
			return 4
		}
		return 3
	default:
		return 0
	}
}

// Back moves from step N to step N-1. Answers recorded at step N-1 or later
// are dropped so they are asked again.
func Back(s State) (State, error) {
	if s.Step <= 1 {
		return s, ErrNoPreviousStep
	}
	target := s.Step - 1
	kept := make(Answers, len(s.Answers))
	for k, v := range s.Answers {
		if StepOf(k, s.Answers) < target {
			kept[k] = v
		}
	}
	return State{Step: target, Answers: kept}, nil
}

// Replay answers entries in order from the initial state. The last entry
// must be the one that ends the wizard if the path is complete; entries
// after a terminal outcome are rejected.
func Replay(entries []Entry) (Outcome, error) {
	out := Outcome{Kind: OutcomeNextStep, State: NewState()}
	for i, e := range entries {
		if out.IsTerminal() {
			return out, &TransitionError{
				Step: out.State.Step, Key: e.Key, Option: e.Option,
				Reason: fmt.Sprintf("answer %d comes after the recommendation", i+1),
			}
		}
		next, err := Advance(out.State, e.Key, e.Option)
		if err != nil {
			return out, err
		}
		out = next
	}
	return out, nil
}
