package compare

import (
	"github.com/nairatools/payecompare/internal/domain"
)

// ScenarioComparison pairs a named salary scenario with its regime results.
type ScenarioComparison struct {
	Name    string         `json:"name"`
	Results domain.Results `json:"results"`
}

// ScenarioSet is a batch of scenario comparisons from one run.
type ScenarioSet struct {
	Scenarios []ScenarioComparison `json:"scenarios"`
}
