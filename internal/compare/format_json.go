package compare

import (
	"encoding/json"

	"github.com/nairatools/payecompare/internal/domain"
)

// JSONFormatter renders comparison results as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON for a single comparison.
func (jf *JSONFormatter) Format(res *domain.Results) (string, error) {
	return jf.marshal(res)
}

// FormatScenarios generates JSON for a scenario batch.
func (jf *JSONFormatter) FormatScenarios(set *ScenarioSet) (string, error) {
	return jf.marshal(set)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
