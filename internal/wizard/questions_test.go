package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/statpick/internal/locale"
)

func TestDescribe_EveryReachableQuestion(t *testing.T) {
	for _, l := range locale.All() {
		for _, entries := range paths(t, NewState(), nil) {
			s := NewState()
			for _, e := range entries {
				q, err := Describe(s, l)
				require.NoError(t, err)
				assert.Equal(t, e.Key, q.Key)
				assert.Equal(t, s.Step, q.Step)
				assert.False(t, strings.HasPrefix(q.Title, "title."), "untranslated title %q", q.Title)
				assert.False(t, strings.HasPrefix(q.Prompt, "prompt."), "untranslated prompt %q", q.Prompt)
				require.Len(t, q.Choices, len(Options(e.Key)))
				for _, c := range q.Choices {
					assert.False(t, strings.HasPrefix(c.Label, "option."), "untranslated label %q", c.Label)
				}

				out, err := Advance(s, e.Key, e.Option)
				require.NoError(t, err)
				s = out.State
			}
		}
	}
}

func TestDescribe_NormalityWording(t *testing.T) {
	groups := State{Step: 3, Answers: Answers{
		KeyObjective:  ObjectiveCompareGroups,
		KeyDataType:   DataNumeric,
		KeyGroupCount: GroupsThreeOrMore,
	}}
	correlation := State{Step: 3, Answers: Answers{
		KeyObjective:    ObjectiveAnalyzeRelationship,
		KeyVariableType: VariablesBothContinuous,
	}}
	final := State{Step: 4, Answers: Answers{
		KeyObjective:  ObjectiveCompareGroups,
		KeyDataType:   DataNumeric,
		KeyGroupCount: GroupsTwo,
		KeyRelation:   RelationPaired,
	}}

	qg, err := Describe(groups, locale.English)
	require.NoError(t, err)
	qc, err := Describe(correlation, locale.English)
	require.NoError(t, err)
	qf, err := Describe(final, locale.English)
	require.NoError(t, err)

	assert.Equal(t, "Step 3: Data distribution", qg.Title)
	assert.Contains(t, qc.Prompt, "linear relationship")
	assert.Equal(t, "Step 4: Parametric assumptions", qf.Title)
}

func TestDescribe_Spanish(t *testing.T) {
	q, err := Describe(NewState(), locale.Spanish)
	require.NoError(t, err)
	assert.Equal(t, "Paso 1: ¿Cuál es tu objetivo de análisis?", q.Title)
	assert.Equal(t, "Comparar grupos", q.Choices[0].Label)
}

func TestDescribe_InvalidState(t *testing.T) {
	_, err := Describe(State{Step: 4, Answers: Answers{}}, locale.English)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTrail(t *testing.T) {
	a := Answers{
		KeyNormality:  NormalityNo,
		KeyObjective:  ObjectiveCompareGroups,
		KeyRelation:   RelationPaired,
		KeyGroupCount: GroupsTwo,
		KeyDataType:   DataNumeric,
	}
	trail := Trail(a, locale.English)
	require.Len(t, trail, 5)

	var keys []QuestionKey
	for _, aq := range trail {
		keys = append(keys, aq.Key)
	}
	assert.Equal(t, []QuestionKey{KeyObjective, KeyDataType, KeyGroupCount, KeyRelation, KeyNormality}, keys)
	assert.Equal(t, "Compare groups", trail[0].Answer)
	assert.Equal(t, "Do your data meet normality and similar variances?", trail[4].Prompt)
	assert.Equal(t, "No, or not sure", trail[4].Answer)
}

func TestPhrasesComplete(t *testing.T) {
	for id := range phrases[locale.English] {
		for _, l := range locale.All() {
			_, ok := phrases[l][id]
			assert.True(t, ok, "locale %s missing %q", l, id)
		}
	}
}
