package pages

type Member struct {
	Name           string   `json:"name"`
	Position       string   `json:"position"`
	Department     string   `json:"department"`
	Photo          string   `json:"photo,omitempty"`
	Qualifications string   `json:"qualifications,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	Email          string   `json:"email,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Subjects       []string `json:"subjects,omitempty"`
}

type Principal struct {
	Name           string `json:"name"`
	Photo          string `json:"photo,omitempty"`
	Message        string `json:"message"`
	Qualifications string `json:"qualifications"`
}

type Department struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HOD         string `json:"hod,omitempty"`
}

// Faculty is the content of /content/pages/faculty.json. Members come from
// the /content/faculty/ collection.
type Faculty struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Principal   Principal    `json:"principal"`
	Departments []Department `json:"departments"`
}

func DefaultFaculty() Faculty {
	return Faculty{
		Title:       "Faculty & Staff",
		Description: "Meet our dedicated team of educators and staff members.",
		Principal: Principal{
			Name:           "Dr. Priya Sharma",
			Photo:          "/images/faculty/principal.jpg",
			Message:        "Welcome to Sengani Girls School. Our dedicated faculty and staff are committed to providing quality education and nurturing the potential of every student. We believe in creating an environment where young women can grow academically, socially, and personally.",
			Qualifications: "Ph.D. in Education, M.Ed., B.Ed.",
		},
		Departments: []Department{
			{Name: "Mathematics", Description: "Developing analytical thinking and problem-solving skills through comprehensive mathematical education.", HOD: "Mr. Rajesh Kumar"},
			{Name: "Science", Description: "Fostering scientific inquiry and research through hands-on experiments and theoretical knowledge.", HOD: "Dr. Meera Nair"},
			{Name: "Languages", Description: "Enhancing communication skills through Tamil, English, and Hindi language instruction.", HOD: "Mrs. Lakshmi Devi"},
			{Name: "Social Studies", Description: "Building awareness of society, history, and global citizenship through comprehensive social education.", HOD: "Mrs. Sunitha Reddy"},
		},
	}
}

func DefaultMembers() []Member {
	return []Member{
		{
			Name: "Dr. Priya Sharma", Position: "Principal", Department: "Administration",
			Photo:          "/images/faculty/principal.jpg",
			Qualifications: "Ph.D. in Education, M.Ed., B.Ed.", Experience: "25 years",
			Email: "principal@senganigirlsschool.edu",
			Bio:   "Dr. Priya Sharma brings over 25 years of educational leadership experience to Sengani Girls School.",
		},
		{
			Name: "Mrs. Lakshmi Devi", Position: "Vice Principal", Department: "Administration",
			Qualifications: "M.Ed., B.Ed., M.A. English", Experience: "20 years",
			Email:    "vp@senganigirlsschool.edu",
			Subjects: []string{"English", "Literature"},
		},
		{
			Name: "Mr. Rajesh Kumar", Position: "Head of Mathematics Department", Department: "Mathematics",
			Qualifications: "M.Sc. Mathematics, B.Ed.", Experience: "15 years",
			Subjects: []string{"Mathematics", "Statistics"},
		},
		{
			Name: "Dr. Meera Nair", Position: "Science Teacher", Department: "Science",
			Qualifications: "Ph.D. Chemistry, M.Sc., B.Ed.", Experience: "12 years",
			Subjects: []string{"Chemistry", "Physics"},
		},
		{
			Name: "Mrs. Kavitha Raman", Position: "Tamil Teacher", Department: "Tamil",
			Qualifications: "M.A. Tamil, B.Ed.", Experience: "18 years",
			Subjects: []string{"Tamil Literature", "Tamil Grammar"},
		},
		{
			Name: "Ms. Anitha Joseph", Position: "Physical Education Teacher", Department: "Physical Education",
			Qualifications: "M.P.Ed., B.P.Ed.", Experience: "10 years",
			Subjects: []string{"Physical Education", "Sports Training"},
		},
	}
}
