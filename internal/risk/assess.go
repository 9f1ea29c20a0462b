package risk

// Category is a human-readable risk band.
type Category string

const (
	CategoryVeryLow  Category = "very-low"
	CategoryLow      Category = "low"
	CategoryModerate Category = "moderate"
	CategoryHigh     Category = "high"
	CategoryVeryHigh Category = "very-high"
)

// Level grades a single environmental factor.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Ensemble weights applied to the model and fire weather index scores.
const (
	modelWeight = 0.7
	fwiWeight   = 0.3
)

// Factors grades the individual weather drivers of risk.
type Factors struct {
	Temperature Level `json:"temperature"`
	Humidity    Level `json:"humidity"`
	Wind        Level `json:"wind"`
}

// Confidence bounds the model score.
type Confidence struct {
	Lower float64 `json:"lower_bound"`
	Upper float64 `json:"upper_bound"`
	Level float64 `json:"confidence_level"`
}

// Assessment is the combined risk report for one set of features.
type Assessment struct {
	EnsembleRisk     float64    `json:"ensemble_risk_score"`
	ModelRisk        float64    `json:"model_risk"`
	FireWeatherIndex float64    `json:"fire_weather_index"`
	Category         Category   `json:"risk_category"`
	Factors          Factors    `json:"risk_factors"`
	Confidence       Confidence `json:"confidence_interval"`
	Recommendations  []string   `json:"recommendations"`
}

// Categorize maps a score onto its risk band.
func Categorize(score float64) Category {
	switch {
	case score >= 0.8:
		return CategoryVeryHigh
	case score >= 0.6:
		return CategoryHigh
	case score >= 0.4:
		return CategoryModerate
	case score >= 0.2:
		return CategoryLow
	}
	return CategoryVeryLow
}

// Assess blends the model score with the fire weather index and derives the
// category, factor grades, confidence bounds and recommendations. A nil model
// falls back to FWIEstimator.
func Assess(model Estimator, f Features) Assessment {
	if model == nil {
		model = FWIEstimator{}
	}
	modelRisk := clamp(model.Estimate(f), 0, 1)
	fwi := FireWeatherIndex(f.Temperature, f.Humidity, f.WindSpeed)
	ensemble := modelRisk*modelWeight + fwi*fwiWeight

	return Assessment{
		EnsembleRisk:     ensemble,
		ModelRisk:        modelRisk,
		FireWeatherIndex: fwi,
		Category:         Categorize(ensemble),
		Factors:          AnalyzeFactors(f),
		Confidence:       confidenceFor(modelRisk),
		Recommendations:  Recommendations(ensemble, f),
	}
}

// AnalyzeFactors grades temperature, humidity and wind independently.
func AnalyzeFactors(f Features) Factors {
	var out Factors
	switch {
	case f.Temperature > 35:
		out.Temperature = LevelHigh
	case f.Temperature > 25:
		out.Temperature = LevelModerate
	default:
		out.Temperature = LevelLow
	}
	switch {
	case f.Humidity < 30:
		out.Humidity = LevelHigh
	case f.Humidity < 50:
		out.Humidity = LevelModerate
	default:
		out.Humidity = LevelLow
	}
	switch {
	case f.WindSpeed > 25:
		out.Wind = LevelHigh
	case f.WindSpeed > 15:
		out.Wind = LevelModerate
	default:
		out.Wind = LevelLow
	}
	return out
}

func confidenceFor(r float64) Confidence {
	level := max(r, 1-r)
	return Confidence{
		Lower: max(0, r-(1-level)*0.2),
		Upper: min(1, r+(1-level)*0.2),
		Level: level,
	}
}

// Recommendations lists actions for a risk score, followed by warnings
// triggered by strong wind or very low humidity.
func Recommendations(score float64, f Features) []string {
	var recs []string
	switch {
	case score > 0.8:
		recs = append(recs,
			"Implement immediate fire prevention measures",
			"Consider evacuation planning for high-risk areas",
			"Deploy additional fire monitoring resources",
			"Issue red flag warning to public",
		)
	case score > 0.6:
		recs = append(recs,
			"Increase fire patrol frequency",
			"Restrict outdoor burning activities",
			"Prepare firefighting resources for rapid deployment",
			"Issue fire weather watch",
		)
	case score > 0.4:
		recs = append(recs,
			"Monitor weather conditions closely",
			"Maintain standard fire prevention protocols",
			"Educate public about fire safety",
		)
	default:
		recs = append(recs, "Continue routine fire monitoring")
	}

	if f.WindSpeed > 20 {
		recs = append(recs, "High wind speeds detected - extra caution with any ignition sources")
	}
	if f.Humidity < 30 {
		recs = append(recs, "Very low humidity - vegetation extremely dry and flammable")
	}
	return recs
}
