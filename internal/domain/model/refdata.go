package model

// Repository is a project/tree jobs are ingested against. Unknown project
// names map to dataset-not-found at the API boundary.
type Repository struct {
	ID          int64  `json:"id"          db:"id"`
	Name        string `json:"name"        db:"name"`
	DVCSType    string `json:"dvcs_type"   db:"dvcs_type"`
	URL         string `json:"url"         db:"url"`
	Description string `json:"description" db:"description"`
}

// RefdataModel names a read-only reference-data collection.
type RefdataModel string

// Reference-data collections served by the refdata endpoint.
const (
	RefdataProduct               RefdataModel = "product"
	RefdataBuildPlatform         RefdataModel = "build_platform"
	RefdataMachinePlatform       RefdataModel = "machine_platform"
	RefdataMachine               RefdataModel = "machine"
	RefdataOption                RefdataModel = "option"
	RefdataOptionCollection      RefdataModel = "option_collection"
	RefdataJobType               RefdataModel = "job_type"
	RefdataJobGroup              RefdataModel = "job_group"
	RefdataFailureClassification RefdataModel = "failure_classification"
	RefdataRepository            RefdataModel = "repository"
)

// ValidRefdataModels returns the served collections in a stable order.
func ValidRefdataModels() []RefdataModel {
	return []RefdataModel{
		RefdataProduct,
		RefdataBuildPlatform,
		RefdataMachinePlatform,
		RefdataMachine,
		RefdataOption,
		RefdataOptionCollection,
		RefdataJobType,
		RefdataJobGroup,
		RefdataFailureClassification,
		RefdataRepository,
	}
}

// Valid returns true if the model names a served collection.
func (m RefdataModel) Valid() bool {
	for _, v := range ValidRefdataModels() {
		if m == v {
			return true
		}
	}
	return false
}
