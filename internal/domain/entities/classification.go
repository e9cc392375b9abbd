package entities

import "strings"

// InvalidClass is the sentinel class the classifier returns when the image
// does not depict a recognizable complaint scene. A submission carrying such
// an image must be rejected.
const InvalidClass = "invalid"

// Classification is the outcome of one classifier prediction, mirroring the
// /predict response of the image-classification service.
type Classification struct {
	PredictedClass string             `json:"predicted_class"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities,omitempty"`
	RiskScore      int                `json:"risk_score"`
}

// Invalid reports whether the classifier flagged the image as not depicting
// a valid complaint category. The comparison is case-insensitive.
func (c Classification) Invalid() bool {
	return strings.EqualFold(strings.TrimSpace(c.PredictedClass), InvalidClass)
}
