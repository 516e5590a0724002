package pages

type Step struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type KeyDate struct {
	Event       string `json:"event"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Admissions is the content of /content/pages/admissions.json.
type Admissions struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Process      []Step    `json:"process"`
	Requirements []string  `json:"requirements"`
	Dates        []KeyDate `json:"dates"`
}

func DefaultAdmissions() Admissions {
	return Admissions{
		Title:       "Admissions",
		Description: "Join our community of learners. Find everything you need to know about applying to Sengani Girls School.",
		Process: []Step{
			{Step: 1, Icon: "FileText", Title: "Application Form", Description: "Download and fill the admission application form completely. Ensure all required fields are filled accurately."},
			{Step: 2, Icon: "Calendar", Title: "Document Submission", Description: "Submit the completed application form along with all required documents to the school office."},
			{Step: 3, Icon: "Users", Title: "Interview Process", Description: "Attend the admission interview with the student and parents. This helps us understand the student's needs better."},
			{Step: 4, Icon: "CheckCircle", Title: "Admission Confirmation", Description: "Receive admission confirmation and complete the fee payment process to secure the seat."},
		},
		Requirements: []string{
			"Birth Certificate (Original and Photocopy)",
			"Previous School Transfer Certificate",
			"Academic Records/Report Cards",
			"Passport Size Photographs (4 copies)",
			"Medical Certificate",
			"Parent/Guardian ID Proof",
		},
		Dates: []KeyDate{
			{Event: "Admission Form Release", Date: "2025-01-15T09:00:00", Description: "Application forms will be available for download and at the school office"},
			{Event: "Last Date for Submission", Date: "2025-02-28T17:00:00", Description: "Final deadline for submitting completed application forms"},
			{Event: "Interview Period", Date: "2025-03-01T09:00:00", Description: "Admission interviews will be conducted during this period"},
			{Event: "Admission Results", Date: "2025-03-15T10:00:00", Description: "Admission results will be announced and communicated to applicants"},
		},
	}
}
