package wizard

import "github.com/abhisek/statpick/internal/locale"

// Choice is one selectable option with its display label.
type Choice struct {
	Option Option
	Label  string
}

// Question is everything needed to present the question due at a state.
type Question struct {
	Key     QuestionKey
	Step    int
	Title   string
	Prompt  string
	Choices []Choice
}

// AnsweredQuestion pairs a prompt with the label of the chosen option.
type AnsweredQuestion struct {
	Key    QuestionKey
	Prompt string
	Answer string
}

// Describe returns the localized question due at s.
func Describe(s State, l locale.Locale) (Question, error) {
	key, err := Expected(s)
	if err != nil {
		return Question{}, err
	}
	ctx := contextOf(key, s.Answers)
	q := Question{
		Key:    key,
		Step:   s.Step,
		Title:  text(l, "title."+ctx.title),
		Prompt: text(l, "prompt."+ctx.prompt),
	}
	for _, opt := range options[key] {
		q.Choices = append(q.Choices, Choice{Option: opt, Label: Label(key, opt, l)})
	}
	return q, nil
}

// Label returns the localized label for option.
func Label(key QuestionKey, option Option, l locale.Locale) string {
	return text(l, "option."+string(key)+"."+string(option))
}

// Trail lists the answered questions in the order they were asked.
func Trail(a Answers, l locale.Locale) []AnsweredQuestion {
	var out []AnsweredQuestion
	for _, key := range a.Keys() {
		out = append(out, AnsweredQuestion{
			Key:    key,
			Prompt: text(l, "prompt."+contextOf(key, a).prompt),
			Answer: Label(key, a[key], l),
		})
	}
	return out
}

type questionContext struct {
	title  string
	prompt string
}

// contextOf picks the wording for key. Normality is worded differently
// depending on the branch it closes.
func contextOf(key QuestionKey, a Answers) questionContext {
	switch key {
	case KeyObjective:
		return questionContext{"step1", "objective"}
	case KeyDataType:
		return questionContext{"step2.groups", "data_type"}
	case KeyGroupCount:
		return questionContext{"step2.groups", "group_count"}
	case KeyVariableType:
		return questionContext{"step2.relationship", "variable_type"}
	case KeyRelation:
		return questionContext{"step3.relation", "relation"}
	case KeyNormality:
		if _, ok := a[KeyRelation]; ok {
			return questionContext{"step4", "normality.final"}
		}
		if a[KeyObjective] == ObjectiveAnalyzeRelationship {
			return questionContext{"step3.relationship", "normality.correlation"}
		}
		return questionContext{"step3.distribution", "normality.groups"}
	}
	return questionContext{}
}

func text(l locale.Locale, id string) string {
	if s, ok := phrases[l][id]; ok {
		return s
	}
	if s, ok := phrases[locale.English][id]; ok {
		return s
	}
	return id
}

var phrases = map[locale.Locale]map[string]string{
	locale.English: {
		"title.step1":              "Step 1: What is the goal of your analysis?",
		"title.step2.groups":       "Step 2: Characteristics of your data",
		"title.step2.relationship": "Step 2: Type of variables",
		"title.step3.relation":     "Step 3: Relationship between groups",
		"title.step3.distribution": "Step 3: Data distribution",
		"title.step3.relationship": "Step 3: Characteristics of the relationship",
		"title.step4":              "Step 4: Parametric assumptions",

		"prompt.objective":             "Choose an option:",
		"prompt.data_type":             "What type of data do you have?",
		"prompt.group_count":           "How many groups will you compare?",
		"prompt.variable_type":         "What type of variables do you have?",
		"prompt.relation":              "The groups are:",
		"prompt.normality.groups":      "Do your data follow a normal distribution with similar variances?",
		"prompt.normality.correlation": "Do your variables follow a normal distribution with a linear relationship?",
		"prompt.normality.final":       "Do your data meet normality and similar variances?",

		"option.objective.compare_groups":       "Compare groups",
		"option.objective.analyze_relationship": "Analyze relationships between variables",
		"option.objective.predict":              "Predict a variable",
		"option.data_type.numeric":              "Numeric/Continuous",
		"option.data_type.categorical":          "Categorical/Nominal",
		"option.data_type.ordinal":              "Ordinal",
		"option.group_count.two":                "2 groups",
		"option.group_count.three_or_more":      "3 or more groups",
		"option.variable_type.both_continuous":  "Both continuous numeric",
		"option.variable_type.ordinal_or_mixed": "Ordinal or mixed",
		"option.relation.independent":           "Independent (different people/subjects)",
		"option.relation.paired":                "Related/Paired (same people before-after)",
		"option.normality.yes":                  "Yes",
		"option.normality.no":                   "No, or not sure",
	},
	locale.Spanish: {
		"title.step1":              "Paso 1: ¿Cuál es tu objetivo de análisis?",
		"title.step2.groups":       "Paso 2: Características de tus datos",
		"title.step2.relationship": "Paso 2: Tipo de variables",
		"title.step3.relation":     "Paso 3: Relación entre grupos",
		"title.step3.distribution": "Paso 3: Distribución de datos",
		"title.step3.relationship": "Paso 3: Características de la relación",
		"title.step4":              "Paso 4: Supuestos paramétricos",

		"prompt.objective":             "Selecciona una opción:",
		"prompt.data_type":             "¿Qué tipo de datos tienes?",
		"prompt.group_count":           "¿Cuántos grupos vas a comparar?",
		"prompt.variable_type":         "¿Qué tipo de variables tienes?",
		"prompt.relation":              "¿Los grupos son?",
		"prompt.normality.groups":      "¿Tus datos siguen una distribución normal y tienen varianzas similares?",
		"prompt.normality.correlation": "¿Tus variables siguen una distribución normal y tienen relación lineal?",
		"prompt.normality.final":       "¿Tus datos cumplen con normalidad y varianzas similares?",

		"option.objective.compare_groups":       "Comparar grupos",
		"option.objective.analyze_relationship": "Analizar relaciones entre variables",
		"option.objective.predict":              "Predecir una variable",
		"option.data_type.numeric":              "Numéricos/Continuos",
		"option.data_type.categorical":          "Categóricos/Nominales",
		"option.data_type.ordinal":              "Ordinales",
		"option.group_count.two":                "2 grupos",
		"option.group_count.three_or_more":      "3 o más grupos",
		"option.variable_type.both_continuous":  "Ambas numéricas continuas",
		"option.variable_type.ordinal_or_mixed": "Ordinales o mixtas",
		"option.relation.independent":           "Independientes (diferentes personas/sujetos)",
		"option.relation.paired":                "Relacionados/Emparejados (mismas personas antes-después)",
		"option.normality.yes":                  "Sí",
		"option.normality.no":                   "No o no estoy seguro/a",
	},
}
