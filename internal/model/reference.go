package model

// DiagnosticCriteria is the DSM-5 digest of a disorder
type DiagnosticCriteria struct {
	Summary  string   `json:"summary" bson:"summary" yaml:"summary"`
	Symptoms []string `json:"symptoms" bson:"symptoms" yaml:"symptoms"`
}

// ActionUnits lists facial action units with changed activity
type ActionUnits struct {
	IncreasedActivity []string `json:"increased_activity" bson:"increased_activity" yaml:"increased_activity"`
	DecreasedActivity []string `json:"decreased_activity" bson:"decreased_activity" yaml:"decreased_activity"`
}

// FacialCorrelates describes observable facial markers of a disorder
type FacialCorrelates struct {
	Summary       string      `json:"summary" bson:"summary" yaml:"summary"`
	AssociatedAUs ActionUnits `json:"associated_aus" bson:"associated_aus" yaml:"associated_aus"`
}

// AssociatedRisks are headline risk figures of a disorder
type AssociatedRisks struct {
	LifeExpectancyReductionYearsRange string `json:"life_expectancy_reduction_years_range,omitempty" bson:"life_expectancy_reduction_years_range,omitempty" yaml:"life_expectancy_reduction_years_range,omitempty"`
	SuicideRiskLevel                  string `json:"suicide_risk_level,omitempty" bson:"suicide_risk_level,omitempty" yaml:"suicide_risk_level,omitempty"`
	DisabilityGlobalRank2019          string `json:"disability_global_rank_2019,omitempty" bson:"disability_global_rank_2019,omitempty" yaml:"disability_global_rank_2019,omitempty"`
}

// GlobalPrevalence holds affected-population figures in millions
type GlobalPrevalence struct {
	TotalAffected2019Millions               float64 `json:"total_affected_2019_millions,omitempty" bson:"total_affected_2019_millions,omitempty" yaml:"total_affected_2019_millions,omitempty"`
	ChildrenAdolescentsAffected2019Millions float64 `json:"children_adolescents_affected_2019_millions,omitempty" bson:"children_adolescents_affected_2019_millions,omitempty" yaml:"children_adolescents_affected_2019_millions,omitempty"`
	TotalAffectedMillions                   float64 `json:"total_affected_millions,omitempty" bson:"total_affected_millions,omitempty" yaml:"total_affected_millions,omitempty"`
}

// PrevalenceData wraps the prevalence figures by scope
type PrevalenceData struct {
	Global *GlobalPrevalence `json:"global,omitempty" bson:"global,omitempty" yaml:"global,omitempty"`
}

// Disorder is a reference entry shown on the disorders page
type Disorder struct {
	ID                 string             `json:"id" bson:"_id" yaml:"id"`
	Name               string             `json:"name" bson:"name" yaml:"name"`
	DescriptionShort   string             `json:"description_short" bson:"description_short" yaml:"description_short"`
	DiagnosticCriteria DiagnosticCriteria `json:"diagnostic_criteria_dsm5" bson:"diagnostic_criteria_dsm5" yaml:"diagnostic_criteria_dsm5"`
	FacialCorrelates   FacialCorrelates   `json:"facial_correlates" bson:"facial_correlates" yaml:"facial_correlates"`
	AssociatedRisks    AssociatedRisks    `json:"associated_risks" bson:"associated_risks" yaml:"associated_risks"`
	PrevalenceData     PrevalenceData     `json:"prevalence_data" bson:"prevalence_data" yaml:"prevalence_data"`

	// Affected is derived from PrevalenceData when served, never stored.
	Affected *AffectedPopulation `json:"affected,omitempty" bson:"-" yaml:"-"`
}

// AffectedPopulation is the worldwide affected population in millions.
// Adults and ChildrenAdolescents are zero when only a total is recorded.
type AffectedPopulation struct {
	Adults              float64 `json:"adults"`
	ChildrenAdolescents float64 `json:"children_adolescents"`
	Total               float64 `json:"total"`
}

// AffectedSplit returns adults and children/adolescents affected worldwide,
// or just the total when no split is recorded. It is nil without global data.
func (d *Disorder) AffectedSplit() *AffectedPopulation {
	g := d.PrevalenceData.Global
	if g == nil {
		return nil
	}
	if g.TotalAffected2019Millions > 0 && g.ChildrenAdolescentsAffected2019Millions > 0 {
		return &AffectedPopulation{
			Adults:              g.TotalAffected2019Millions - g.ChildrenAdolescentsAffected2019Millions,
			ChildrenAdolescents: g.ChildrenAdolescentsAffected2019Millions,
			Total:               g.TotalAffected2019Millions,
		}
	}
	if g.TotalAffectedMillions > 0 {
		return &AffectedPopulation{Total: g.TotalAffectedMillions}
	}
	return nil
}

// DefaultStatisticsID is the national dashboard document
const DefaultStatisticsID = "mexico_national_dashboard"

// Statistics is a free-form statistics document. The body is rendered by the
// presentation layer as-is.
type Statistics struct {
	ID   string                 `json:"id" bson:"_id"`
	Data map[string]interface{} `json:"data" bson:"data"`
}

// Overview is the landing page payload
type Overview struct {
	Statistics *Statistics `json:"statistics"`
	Disorders  []*Disorder `json:"disorders"`
}
