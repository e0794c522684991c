package validate

// Payload schemas mirror the shapes the site's admin frontend sends.
// ApplyDefaults runs before Check so omitted optional fields end up with
// their documented defaults.

type BlogPostInput struct {
	ID            string   `json:"id"`
	Title         string   `json:"title" validate:"required"`
	Summary       string   `json:"summary" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	CoverImage    string   `json:"coverImage"`
	PublishedDate string   `json:"publishedDate"`
	Featured      bool     `json:"featured"`
	Published     bool     `json:"published"`
	Tags          []string `json:"tags"`
}

func (in *BlogPostInput) ApplyDefaults() {
	if in.Tags == nil {
		in.Tags = []string{}
	}
}

type CaseStudyInput struct {
	ID             string   `json:"id"`
	Title          string   `json:"title" validate:"required"`
	Summary        string   `json:"summary" validate:"required"`
	CoverImage     string   `json:"coverImage"`
	ThumbnailImage string   `json:"thumbnailImage"`
	PublishedDate  string   `json:"publishedDate"`
	Featured       bool     `json:"featured"`
	Published      bool     `json:"published"`
	Tags           []string `json:"tags"`
}

func (in *CaseStudyInput) ApplyDefaults() {
	if in.Tags == nil {
		in.Tags = []string{}
	}
}

type SectionInput struct {
	CaseStudyID string `json:"caseStudyId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Order       *int   `json:"order"`
}

type MetricInput struct {
	CaseStudyID string `json:"caseStudyId" validate:"required"`
	Label       string `json:"label" validate:"required"`
	Value       string `json:"value" validate:"required"`
	Order       *int   `json:"order"`
}

type SocialLinksInput struct {
	LinkedIn string `json:"linkedin" validate:"omitempty,url"`
	GitHub   string `json:"github" validate:"omitempty,url"`
	Twitter  string `json:"twitter" validate:"omitempty,url"`
}

type ProfileInput struct {
	DisplayName string           `json:"displayName" validate:"required"`
	Headline    string           `json:"headline"`
	Bio         string           `json:"bio"`
	Email       string           `json:"email" validate:"required,email"`
	Phone       string           `json:"phone"`
	Location    string           `json:"location"`
	Website     string           `json:"website" validate:"omitempty,url"`
	SocialLinks SocialLinksInput `json:"socialLinks"`
}

type WorkExperienceInput struct {
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Order       *int   `json:"order"`
}

type EducationInput struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Order       *int   `json:"order"`
}

type SkillInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Proficiency int    `json:"proficiency" validate:"min=1,max=5"`
	Order       *int   `json:"order"`
}

func (in *SkillInput) ApplyDefaults() {
	if in.Proficiency == 0 {
		in.Proficiency = 3
	}
}

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type CreateAdminInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName"`
}

type UpdateRoleInput struct {
	UID  string `json:"uid" validate:"required"`
	Role string `json:"role" validate:"required,oneof=admin super_admin"`
}

type ProcessImageInput struct {
	TempPath          string `json:"tempPath" validate:"required"`
	DestinationFolder string `json:"destinationFolder" validate:"required"`
	FileName          string `json:"fileName" validate:"required"`
	GenerateThumbnail *bool  `json:"generateThumbnail"`
	OptimizeImage     *bool  `json:"optimizeImage"`
	ThumbnailWidth    int    `json:"thumbnailWidth" validate:"min=0"`
	ThumbnailHeight   int    `json:"thumbnailHeight" validate:"min=0"`
	Quality           int    `json:"quality" validate:"min=0,max=100"`
}

func (in *ProcessImageInput) ApplyDefaults() {
	if in.GenerateThumbnail == nil {
		t := true
		in.GenerateThumbnail = &t
	}
	if in.OptimizeImage == nil {
		t := true
		in.OptimizeImage = &t
	}
	if in.ThumbnailWidth == 0 {
		in.ThumbnailWidth = 300
	}
	if in.ThumbnailHeight == 0 {
		in.ThumbnailHeight = 300
	}
	if in.Quality == 0 {
		in.Quality = 80
	}
}

type AutoProcessInput struct {
	FilePath    string `json:"filePath" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	FileName    string `json:"fileName" validate:"required"`
}
