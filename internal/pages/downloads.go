package pages

type Instructions struct {
	Show bool   `json:"show"`
	Text string `json:"text"`
}

type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type Download struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	File         string `json:"file"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	AcademicYear string `json:"academic_year,omitempty"`
	FileSize     string `json:"file_size,omitempty"`
	Pages        int    `json:"pages,omitempty"`
}

// Downloads is the content of /content/pages/downloads.json. Files come from
// the /content/downloads/ collection.
type Downloads struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Instructions Instructions `json:"instructions"`
	Categories   []Category   `json:"categories"`
}

func DefaultDownloads() Downloads {
	return Downloads{
		Title:       "Downloads",
		Description: "Access important documents, forms, and resources for students and parents.",
		Categories: []Category{
			{Name: "Fee Structure", Description: "Annual fee structure, payment schedules, and financial information", Icon: "DollarSign"},
			{Name: "Newsletters", Description: "Monthly newsletters with school updates and achievements", Icon: "Bell"},
			{Name: "Academic Calendar", Description: "Important academic dates, holidays, and examination schedules", Icon: "Calendar"},
			{Name: "Forms", Description: "Application forms, permission slips, and other required documents", Icon: "FileText"},
			{Name: "Policies", Description: "School policies, guidelines, and procedural documents", Icon: "Shield"},
			{Name: "Exam Schedules", Description: "Examination timetables and assessment information", Icon: "GraduationCap"},
		},
	}
}

func DefaultDownloadList() []Download {
	return []Download{
		{
			Title: "Fee Structure 2024-25", Date: "2024-12-01T10:00:00", File: "/downloads/fee-structure-2024-25.pdf",
			Description: "Complete fee structure for the academic year 2024-25 including all charges and payment schedules.",
			Category:    "Fee Structure", AcademicYear: "2024-25", FileSize: "2.5 MB",
		},
		{
			Title: "School Newsletter - December 2024", Date: "2024-12-05T14:00:00", File: "/downloads/newsletter-december-2024.pdf",
			Description: "Monthly newsletter featuring school events, achievements, and upcoming activities.",
			Category:    "Newsletters", AcademicYear: "2024-25", FileSize: "1.8 MB",
		},
		{
			Title: "Academic Calendar 2024-25", Date: "2024-11-15T09:00:00", File: "/downloads/academic-calendar-2024-25.pdf",
			Description: "Complete academic calendar with important dates, holidays, and examination schedules.",
			Category:    "Academic Calendar", AcademicYear: "2024-25", FileSize: "1.2 MB",
		},
		{
			Title: "Admission Application Form", Date: "2024-11-20T11:00:00", File: "/downloads/admission-form.pdf",
			Description: "Application form for new admissions. Please fill completely and submit with required documents.",
			Category:    "Forms", AcademicYear: "2024-25", FileSize: "800 KB",
		},
		{
			Title: "School Uniform Policy", Date: "2024-10-10T08:00:00", File: "/downloads/uniform-policy.pdf",
			Description: "Guidelines for school uniform including specifications, vendors, and compliance requirements.",
			Category:    "Policies", AcademicYear: "2024-25", FileSize: "1.1 MB",
		},
		{
			Title: "Mid-term Examination Schedule", Date: "2024-12-08T16:00:00", File: "/downloads/midterm-exam-schedule.pdf",
			Description: "Detailed schedule for mid-term examinations including dates, timings, and examination centers.",
			Category:    "Exam Schedules", AcademicYear: "2024-25", FileSize: "950 KB",
		},
	}
}
