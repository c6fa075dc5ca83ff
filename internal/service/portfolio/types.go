package portfolio

// Content is the whole static catalogue served by the read-only endpoints.
type Content struct {
	Portfolio      Profile         `json:"portfolio" yaml:"portfolio"`
	Skills         Skills          `json:"skills" yaml:"skills"`
	Experience     Experience      `json:"experience" yaml:"experience"`
	Certifications []Certification `json:"certifications" yaml:"certifications"`
	Resume         Resume          `json:"resume" yaml:"resume"`
	Contact        ContactCopy     `json:"contact" yaml:"contact"`
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

type Profile struct {
	Personal   Personal    `json:"personal" yaml:"personal"`
	Summary    Summary     `json:"summary" yaml:"summary"`
	QuickStats QuickStats  `json:"quickStats" yaml:"quickStats"`
	Education  []Education `json:"education" yaml:"education"`
}

type Personal struct {
	Name         string `json:"name" yaml:"name"`
	Title        string `json:"title" yaml:"title"`
	Email        string `json:"email" yaml:"email"`
	Phone        string `json:"phone" yaml:"phone"`
	Location     string `json:"location" yaml:"location"`
	Availability string `json:"availability" yaml:"availability"`
	Resume       string `json:"resume" yaml:"resume"`
	GitHub       string `json:"github" yaml:"github"`
	LinkedIn     string `json:"linkedin" yaml:"linkedin"`
}

type Summary struct {
	Professional string `json:"professional" yaml:"professional"`
	Mission      string `json:"mission" yaml:"mission"`
}

type QuickStats struct {
	Projects       int    `json:"projects" yaml:"projects"`
	Certifications int    `json:"certifications" yaml:"certifications"`
	Experience     string `json:"experience" yaml:"experience"`
	Skills         int    `json:"skills" yaml:"skills"`
	Hackathons     int    `json:"hackathons" yaml:"hackathons"`
}

type Education struct {
	Degree       string   `json:"degree" yaml:"degree"`
	Institution  string   `json:"institution" yaml:"institution"`
	Duration     string   `json:"duration" yaml:"duration"`
	Status       string   `json:"status" yaml:"status"`
	Courses      []string `json:"courses,omitempty" yaml:"courses"`
	Achievements []string `json:"achievements,omitempty" yaml:"achievements"`
}

// ---------------------------------------------------------------------------
// Skills
// ---------------------------------------------------------------------------

type Skills struct {
	Categories       []SkillCategory  `json:"categories" yaml:"categories"`
	ProficiencyScale ProficiencyScale `json:"proficiencyScale" yaml:"proficiencyScale"`
}

type SkillCategory struct {
	Name   string  `json:"name" yaml:"name"`
	Icon   string  `json:"icon" yaml:"icon"`
	Skills []Skill `json:"skills" yaml:"skills"`
}

type Skill struct {
	Name      string   `json:"name" yaml:"name"`
	Level     int      `json:"level" yaml:"level"` // percent, 0-100
	Expertise []string `json:"expertise" yaml:"expertise"`
}

type ProficiencyScale struct {
	Beginner     string `json:"beginner" yaml:"beginner"`
	Intermediate string `json:"intermediate" yaml:"intermediate"`
	Advanced     string `json:"advanced" yaml:"advanced"`
	Expert       string `json:"expert" yaml:"expert"`
}

// ---------------------------------------------------------------------------
// Experience
// ---------------------------------------------------------------------------

type Experience struct {
	Internships []Internship `json:"internships" yaml:"internships"`
	Projects    []Project    `json:"projects" yaml:"projects"`
}

type Internship struct {
	Role         string   `json:"role" yaml:"role"`
	Company      string   `json:"company" yaml:"company"`
	Duration     string   `json:"duration" yaml:"duration"`
	Location     string   `json:"location" yaml:"location"`
	Description  string   `json:"description" yaml:"description"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

type Project struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Duration     string   `json:"duration" yaml:"duration"`
	Status       string   `json:"status" yaml:"status"`
	Features     []string `json:"features" yaml:"features"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	GitHub       string   `json:"github" yaml:"github"`
	Impact       string   `json:"impact" yaml:"impact"`
}

// ---------------------------------------------------------------------------
// Certifications, resume, contact copy
// ---------------------------------------------------------------------------

type Certification struct {
	Name        string   `json:"name" yaml:"name"`
	Issuer      string   `json:"issuer" yaml:"issuer"`
	Date        string   `json:"date" yaml:"date"`
	Description string   `json:"description" yaml:"description"`
	Skills      []string `json:"skills" yaml:"skills"`
}

type Resume struct {
	DownloadURL string        `json:"downloadUrl" yaml:"downloadUrl"`
	ViewURL     string        `json:"viewUrl" yaml:"viewUrl"`
	LastUpdated string        `json:"lastUpdated" yaml:"lastUpdated"`
	Details     ResumeDetails `json:"details" yaml:"details"`
	Tips        []string      `json:"tips" yaml:"tips"`
}

type ResumeDetails struct {
	Format   string   `json:"format" yaml:"format"`
	Size     string   `json:"size" yaml:"size"`
	Pages    int      `json:"pages" yaml:"pages"`
	Sections []string `json:"sections" yaml:"sections"`
}

// ContactCopy is the text echoed back to a visitor after a submission.
type ContactCopy struct {
	ThankYou  string   `json:"thankYou" yaml:"thankYou"`
	NextSteps []string `json:"nextSteps" yaml:"nextSteps"`
}
