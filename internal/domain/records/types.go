package records

type RecordType string

const (
	RecordTypeVaccine RecordType = "vaccine"
	RecordTypeAllergy RecordType = "allergy"
)

func (t RecordType) Valid() bool {
	return t == RecordTypeVaccine || t == RecordTypeAllergy
}

type Severity string

const (
	SeverityMild   Severity = "mild"
	SeveritySevere Severity = "severe"
)

func (s Severity) Valid() bool {
	return s == SeverityMild || s == SeveritySevere
}
