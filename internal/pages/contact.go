package pages

type ContactInfo struct {
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	OfficeHours string `json:"office_hours"`
}

type ContactDepartment struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Hours string `json:"hours"`
}

// Contact is the content of /content/pages/contact.json. The layout footer
// also reads ContactInfo from it.
type Contact struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	ContactInfo ContactInfo         `json:"contact_info"`
	Departments []ContactDepartment `json:"departments"`
}

func DefaultContact() Contact {
	return Contact{
		Title:       "Contact Us",
		Description: "Get in touch with us for admissions, inquiries, or any other information.",
		ContactInfo: ContactInfo{
			Phone:       "+254 723 324518",
			Email:       "senganigirlsschool@gmail.com",
			Address:     "Sengani Village, Matungulu Subcounty, Machakos, Tala",
			OfficeHours: "Monday - Friday: 8:00 AM - 5:00 PM",
		},
		Departments: []ContactDepartment{
			{Name: "Admissions Office", Phone: "+254 723 324518", Email: "senganigirlsschool@gmail.com", Hours: "9:00 AM - 3:00 PM"},
			{Name: "Principal's Office", Phone: "+254 723 324518", Email: "senganigirlsschool@gmail.com", Hours: "10:00 AM - 2:00 PM"},
			{Name: "Academic Office", Phone: "+254 723 324518", Email: "senganigirlsschool@gmail.com", Hours: "9:00 AM - 4:00 PM"},
		},
	}
}
