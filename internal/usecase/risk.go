package usecase

import "civic_pulse/internal/domain/entities"

// ResolveRiskLevel encodes the risk fallback policy as a pure function:
// classifier score first, then the client-supplied value, then the default.
// Out-of-range values (including the classifier's 0 for the invalid class)
// never leak into a persisted complaint.
func ResolveRiskLevel(result *entities.Classification, clientRisk int) int {
	if result != nil && inRiskRange(result.RiskScore) {
		return result.RiskScore
	}
	if inRiskRange(clientRisk) {
		return clientRisk
	}
	return entities.RiskLevelDefault
}

func inRiskRange(risk int) bool {
	return risk >= entities.RiskLevelMin && risk <= entities.RiskLevelMax
}
