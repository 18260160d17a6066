package destinations

import (
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

const (
	msgInvalidPort          = "Ports must be in the 1024-65535 range."
	msgInvalidWeight        = "Weights must be positive integers."
	msgMixedWeights         = "Destinations must be either all weighted or all unweighted."
	msgWeightedExist        = "Destinations cannot be inserted when there are weighted destinations already configured."
	msgUnweightedExist      = "Weighted destinations cannot be inserted when there are unweighted destinations already configured."
	msgWeightedDelete       = "Weighted destinations cannot be deleted individually."
	msgAppNotFound          = "App with guid %s not found."
	msgDestinationNotFound  = "Destination with guid %s not found on route %s."
	msgDestinationKeyAbsent = "Destination for app %s process %s port %d not found on route %s."
)

// validateRequests runs the checks that need nothing but the request itself
func validateRequests(requests []DestinationRequest) error {
	weighted, unweighted := 0, 0
	for _, r := range requests {
		if r.Port != nil && !models.ValidPort(*r.Port) {
			return validationError(InvalidPort, msgInvalidPort)
		}
		if r.Weight != nil {
			if *r.Weight <= 0 {
				return validationError(InvalidWeight, msgInvalidWeight)
			}
			weighted++
		} else {
			unweighted++
		}
	}
	if weighted > 0 && unweighted > 0 {
		return validationError(WeightedConflict, msgMixedWeights)
	}
	return nil
}

// validateInsert enforces that a route's destinations stay homogeneous in
// weightedness when new ones are added next to the existing ones.
func validateInsert(existing, requested []models.Destination) error {
	if len(requested) == 0 {
		return nil
	}
	for _, e := range existing {
		if e.Weighted() {
			return validationError(WeightedConflict, msgWeightedExist)
		}
	}
	if len(existing) > 0 && requested[0].Weighted() {
		return validationError(WeightedConflict, msgUnweightedExist)
	}
	return nil
}
