package domain

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

// AlertStatus is a tagged evaluation result. Rules whose condition has no
// backing computation yet report AlertNotImplemented instead of a silent
// false, so the gap stays visible.
type AlertStatus int

const (
	AlertOK AlertStatus = iota
	AlertTriggered
	AlertNotImplemented
)

func (s AlertStatus) String() string {
	switch s {
	case AlertOK:
		return "ok"
	case AlertTriggered:
		return "triggered"
	case AlertNotImplemented:
		return "not_implemented"
	}
	return "unknown"
}

type AlertRule struct {
	ID        string
	Title     string
	Condition string
	Threshold float64
	Status    AlertStatus
	Severity  Severity
	// Value is the observed quantity the rule compared against its
	// threshold; nil when the rule did not evaluate.
	Value *float64
}
