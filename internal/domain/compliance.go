package domain

// ViolationType is the closed set of statutory violation categories.
type ViolationType string

const (
	ViolationMinimumWage      ViolationType = "minimum_wage"
	ViolationOvertimeLimit    ViolationType = "overtime_limit"
	ViolationWorkingHours     ViolationType = "working_hours"
	ViolationLeaveEntitlement ViolationType = "leave_entitlement"
	ViolationDiscrimination   ViolationType = "discrimination"
)

// Severity grades a violation for remediation triage.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ComplianceViolation is one detected breach of a statutory rule. Violations
// are output data for remediation workflows, never errors.
type ComplianceViolation struct {
	Type               ViolationType `json:"type"`
	Severity           Severity      `json:"severity"`
	Description        string        `json:"description"`
	DescriptionArabic  string        `json:"description_ar"`
	ResolutionRequired bool          `json:"resolution_required"`
	PenaltyRisk        int           `json:"penalty_risk"`
}

// ComplianceReport is the validator's verdict on one PayrollResult. It is
// computed as an independent second pass so the report and the orchestrator's
// compliance score can be cross-checked against each other in tests.
type ComplianceReport struct {
	LaborLawCompliant bool                  `json:"labor_law_compliant"`
	GOSICompliant     bool                  `json:"gosi_compliant"`
	Violations        []ComplianceViolation `json:"violations"`
	Recommendations   []string              `json:"recommendations"`
}
