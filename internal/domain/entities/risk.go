package entities

// RiskLevel is the risk tier of an offering.
type RiskLevel string

const (
	RiskBaixo RiskLevel = "baixo"
	RiskMedio RiskLevel = "medio"
	RiskAlto  RiskLevel = "alto"
)

// RiskMetrics are the point-in-time figures the classifier needs.
// MargemBrutaMes12 is nil for the legacy model, which has no variable cost.
type RiskMetrics struct {
	MargemBrutaMes12 *float64 `json:"margemBrutaMes12,omitempty"`
	EbitdaMes12      Cents    `json:"ebitdaMes12"`
	EbitdaMes24      Cents    `json:"ebitdaMes24"`
}

// RiskInput is what the classifier consumes: Conservador indicators and metrics.
type RiskInput struct {
	Indicadores Indicators  `json:"indicadores"`
	Metricas    RiskMetrics `json:"metricas"`
}

// RiskClassification is the classifier output. Recomendacoes is never empty.
type RiskClassification struct {
	Nivel         RiskLevel `json:"nivel"`
	Cenario       string    `json:"cenario"`
	Recomendacoes []string  `json:"recomendacoes"`
}
