package catalog

import "slices"

// ID identifies a statistical test in the catalog.
type ID string

const (
	TTestIndependent       ID = "t_student_independientes"
	TTestPaired            ID = "t_student_relacionadas"
	MannWhitneyU           ID = "u_mann_whitney"
	ChiSquare              ID = "chi_cuadrada"
	WilcoxonSignedRank     ID = "wilcoxon"
	OneWayANOVA            ID = "anova_un_factor"
	KruskalWallis          ID = "kruskal_wallis"
	PearsonCorrelation     ID = "correlacion_pearson"
	SpearmanCorrelation    ID = "correlacion_spearman"
	SimpleLinearRegression ID = "regresion_lineal"
)

// IDs returns the closed set of test identifiers in display order.
func IDs() []ID {
	return []ID{
		TTestIndependent,
		TTestPaired,
		MannWhitneyU,
		ChiSquare,
		WilcoxonSignedRank,
		OneWayANOVA,
		KruskalWallis,
		PearsonCorrelation,
		SpearmanCorrelation,
		SimpleLinearRegression,
	}
}

// Valid reports whether id is one of the ten catalog identifiers.
func (id ID) Valid() bool {
	return slices.Contains(IDs(), id)
}

// Family classifies a test by its distributional assumptions.
type Family string

const (
	Parametric    Family = "parametric"    // Assumes a distributional form, usually normality
	NonParametric Family = "nonparametric" // Rank or order based, no distributional assumption
)

// AllFamilies returns both families in display order.
func AllFamilies() []Family {
	return []Family{Parametric, NonParametric}
}

// Valid reports whether f is one of the two families.
func (f Family) Valid() bool {
	return f == Parametric || f == NonParametric
}

// FamilyInfo is the localized text for a family.
type FamilyInfo struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// TestRecord describes one statistical test. Records are reference data;
// the catalog hands out copies.
type TestRecord struct {
	ID          ID       `yaml:"id" json:"id"`
	DisplayName string   `yaml:"name" json:"name"`
	Family      Family   `yaml:"family" json:"family"`
	Assumptions []string `yaml:"assumptions" json:"assumptions"`
	UsageNote   string   `yaml:"usage" json:"usage"`
}

func (r TestRecord) clone() TestRecord {
	r.Assumptions = slices.Clone(r.Assumptions)
	return r
}
