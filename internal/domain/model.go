// Package domain holds the entity shapes shared by every store driver.
package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"

	// ProfileID is the fixed document id of the singleton profile.
	ProfileID = "main"
)

type BlogPost struct {
	ID            string     `json:"id" firestore:"-"`
	Title         string     `json:"title" firestore:"title"`
	Summary       string     `json:"summary" firestore:"summary"`
	Content       string     `json:"content" firestore:"content"`
	CoverImage    string     `json:"coverImage,omitempty" firestore:"coverImage"`
	PublishedDate *time.Time `json:"publishedDate,omitempty" firestore:"publishedDate"`
	Featured      bool       `json:"featured" firestore:"featured"`
	Published     bool       `json:"published" firestore:"published"`
	Tags          []string   `json:"tags" firestore:"tags"`
	Slug          string     `json:"slug" firestore:"slug"`
	CreatedAt     time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

type CaseStudy struct {
	ID             string     `json:"id" firestore:"-"`
	Title          string     `json:"title" firestore:"title"`
	Summary        string     `json:"summary" firestore:"summary"`
	CoverImage     string     `json:"coverImage,omitempty" firestore:"coverImage"`
	ThumbnailImage string     `json:"thumbnailImage,omitempty" firestore:"thumbnailImage"`
	PublishedDate  *time.Time `json:"publishedDate,omitempty" firestore:"publishedDate"`
	Featured       bool       `json:"featured" firestore:"featured"`
	Published      bool       `json:"published" firestore:"published"`
	Tags           []string   `json:"tags" firestore:"tags"`
	Slug           string     `json:"slug" firestore:"slug"`
	CreatedAt      time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

type CaseStudySection struct {
	ID          string `json:"id" firestore:"-"`
	CaseStudyID string `json:"caseStudyId" firestore:"caseStudyId"`
	Title       string `json:"title" firestore:"title"`
	Content     string `json:"content" firestore:"content"`
	Order       int    `json:"order" firestore:"order"`
}

type CaseStudyMetric struct {
	ID          string `json:"id" firestore:"-"`
	CaseStudyID string `json:"caseStudyId" firestore:"caseStudyId"`
	Label       string `json:"label" firestore:"label"`
	Value       string `json:"value" firestore:"value"`
	Order       int    `json:"order" firestore:"order"`
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty" firestore:"linkedin"`
	GitHub   string `json:"github,omitempty" firestore:"github"`
	Twitter  string `json:"twitter,omitempty" firestore:"twitter"`
}

type Profile struct {
	ID          string      `json:"id" firestore:"-"`
	DisplayName string      `json:"displayName" firestore:"displayName"`
	Headline    string      `json:"headline,omitempty" firestore:"headline"`
	Bio         string      `json:"bio,omitempty" firestore:"bio"`
	Email       string      `json:"email" firestore:"email"`
	Phone       string      `json:"phone,omitempty" firestore:"phone"`
	Location    string      `json:"location,omitempty" firestore:"location"`
	Website     string      `json:"website,omitempty" firestore:"website"`
	SocialLinks SocialLinks `json:"socialLinks" firestore:"socialLinks"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" firestore:"updatedAt"`
}

type WorkExperience struct {
	ID          string    `json:"id" firestore:"-"`
	ProfileID   string    `json:"profileId" firestore:"profileId"`
	Company     string    `json:"company" firestore:"company"`
	Position    string    `json:"position" firestore:"position"`
	Description string    `json:"description,omitempty" firestore:"description"`
	StartDate   string    `json:"startDate" firestore:"startDate"`
	EndDate     string    `json:"endDate,omitempty" firestore:"endDate"`
	Current     bool      `json:"current" firestore:"current"`
	Order       int       `json:"order" firestore:"order"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

type Education struct {
	ID          string    `json:"id" firestore:"-"`
	ProfileID   string    `json:"profileId" firestore:"profileId"`
	Institution string    `json:"institution" firestore:"institution"`
	Degree      string    `json:"degree" firestore:"degree"`
	Field       string    `json:"field" firestore:"field"`
	StartDate   string    `json:"startDate" firestore:"startDate"`
	EndDate     string    `json:"endDate,omitempty" firestore:"endDate"`
	Order       int       `json:"order" firestore:"order"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

type Skill struct {
	ID          string    `json:"id" firestore:"-"`
	ProfileID   string    `json:"profileId" firestore:"profileId"`
	Name        string    `json:"name" firestore:"name"`
	Category    string    `json:"category" firestore:"category"`
	Proficiency int       `json:"proficiency" firestore:"proficiency"`
	Order       int       `json:"order" firestore:"order"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

type ContactSubmission struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Subject   string    `json:"subject,omitempty" firestore:"subject"`
	Message   string    `json:"message" firestore:"message"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type AdminAccount struct {
	UID       string    `json:"uid" firestore:"-"`
	Email     string    `json:"email" firestore:"email"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	CreatedBy string    `json:"createdBy,omitempty" firestore:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" firestore:"updatedAt"`
	UpdatedBy string    `json:"updatedBy,omitempty" firestore:"updatedBy"`
}

// StoredImage is metadata recorded after the image pipeline completes;
// the bytes themselves live in the object store.
type StoredImage struct {
	ID            string    `json:"id" firestore:"-"`
	OriginalPath  string    `json:"originalPath" firestore:"originalPath"`
	OptimizedPath string    `json:"optimizedPath" firestore:"optimizedPath"`
	ThumbnailPath string    `json:"thumbnailPath" firestore:"thumbnailPath"`
	ContentType   string    `json:"contentType" firestore:"contentType"`
	Folder        string    `json:"folder" firestore:"folder"`
	UploadedBy    string    `json:"uploadedBy" firestore:"uploadedBy"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}
