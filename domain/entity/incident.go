package entity

// Incident is the classification the backend returns for a citizen report.
// The backend owns the schema; the client treats anything beyond these
// fields as opaque.
type Incident struct {
	Severity         Severity `json:"severity"`
	ResponderSummary string   `json:"responder_summary"`
	CitizenGuidance  string   `json:"citizen_guidance"`
}

type Report struct {
	Message string `json:"message" validate:"required"`
}
