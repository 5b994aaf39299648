package domain

// CustomerType enumerates the customer segments used for triage.
type CustomerType string

const (
	CustomerTypeStar         CustomerType = "estrella"
	CustomerTypeCow          CustomerType = "vaca"
	CustomerTypeDog          CustomerType = "perro"
	CustomerTypeQuestionMark CustomerType = "interrogante"
)

// CustomerTypes lists the accepted segments in display order.
var CustomerTypes = []CustomerType{
	CustomerTypeStar,
	CustomerTypeCow,
	CustomerTypeDog,
	CustomerTypeQuestionMark,
}

// IsValid reports whether the segment is one of the known tokens.
func (t CustomerType) IsValid() bool {
	for _, known := range CustomerTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CriticalityLevel enumerates ticket urgency.
type CriticalityLevel string

const (
	CriticalityVeryHigh CriticalityLevel = "muy alto"
	CriticalityHigh     CriticalityLevel = "alto"
	CriticalityMedium   CriticalityLevel = "medio"
	CriticalityLow      CriticalityLevel = "bajo"
	CriticalityVeryLow  CriticalityLevel = "muy bajo"
)

// CriticalityLevels lists the accepted levels from most to least urgent.
var CriticalityLevels = []CriticalityLevel{
	CriticalityVeryHigh,
	CriticalityHigh,
	CriticalityMedium,
	CriticalityLow,
	CriticalityVeryLow,
}

// IsValid reports whether the level is one of the known tokens.
func (l CriticalityLevel) IsValid() bool {
	for _, known := range CriticalityLevels {
		if l == known {
			return true
		}
	}
	return false
}

// TicketDraft is a fully validated ticket intake record.
type TicketDraft struct {
	CustomerName        string           `json:"customerName"`
	CustomerType        CustomerType     `json:"customerType"`
	CriticalityLevel    CriticalityLevel `json:"criticalityLevel"`
	EscalationNecessary bool             `json:"escalationNecessary"`
	AdditionalComments  *string          `json:"additionalComments,omitempty"`
}
