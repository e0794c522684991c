// Package callable exposes every operation under a single
// POST /v1/functions/:name endpoint using the request envelope the
// site's existing frontend already speaks: {"data": ...} in,
// {"result": ...} or {"error": {...}} out.
package callable

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/portfolio-backend/internal/admins"
	"github.com/tharindu-dev/portfolio-backend/internal/apperr"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/blog"
	"github.com/tharindu-dev/portfolio-backend/internal/casestudy"
	"github.com/tharindu-dev/portfolio-backend/internal/contact"
	"github.com/tharindu-dev/portfolio-backend/internal/images"
	"github.com/tharindu-dev/portfolio-backend/internal/profilesite"
	"github.com/tharindu-dev/portfolio-backend/internal/validate"
)

// Func is one dispatchable operation.
type Func func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error)

type Deps struct {
	Blog        *blog.Service
	CaseStudies *casestudy.Service
	Profile     *profilesite.Service
	Contacts    *contact.Service
	Admins      *admins.Service
	Images      *images.Service
}

type Dispatcher struct {
	fns map[string]Func
}

type idPayload struct {
	ID string `json:"id"`
}

func NewDispatcher(d Deps) *Dispatcher {
	fns := map[string]Func{
		"createBlogPost": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.BlogPostInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.Blog.Create(ctx, ident, in)
		},
		"updateBlogPost": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.BlogPostInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.Blog.Update(ctx, ident, in)
		},
		"deleteBlogPost": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in idPayload
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			if err := d.Blog.Delete(ctx, ident, in.ID); err != nil {
				return nil, err
			}
			return gin.H{"success": true}, nil
		},
		"createCaseStudy": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.CaseStudyInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.CaseStudies.Create(ctx, ident, in)
		},
		"updateCaseStudy": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.CaseStudyInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.CaseStudies.Update(ctx, ident, in)
		},
		"deleteCaseStudy": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in idPayload
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			if err := d.CaseStudies.Delete(ctx, ident, in.ID); err != nil {
				return nil, err
			}
			return gin.H{"success": true}, nil
		},
		"addCaseStudySection": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.SectionInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.CaseStudies.AddSection(ctx, ident, in)
		},
		"addCaseStudyMetric": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.MetricInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.CaseStudies.AddMetric(ctx, ident, in)
		},
		"updateProfile": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.ProfileInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.Profile.UpdateProfile(ctx, ident, in)
		},
		"addWorkExperience": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.WorkExperienceInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.Profile.AddWorkExperience(ctx, ident, in)
		},
		"addEducation": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.EducationInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.Profile.AddEducation(ctx, ident, in)
		},
		"addSkill": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.SkillInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.Profile.AddSkill(ctx, ident, in)
		},
		"submitContactForm": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.ContactInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			sub, err := d.Contacts.Submit(ctx, in)
			if err != nil {
				return nil, err
			}
			return gin.H{"success": true, "id": sub.ID}, nil
		},
		"markContactAsRead": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in idPayload
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			if err := d.Contacts.MarkAsRead(ctx, ident, in.ID); err != nil {
				return nil, err
			}
			return gin.H{"success": true}, nil
		},
		"deleteContactSubmission": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in idPayload
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			if err := d.Contacts.Delete(ctx, ident, in.ID); err != nil {
				return nil, err
			}
			return gin.H{"success": true}, nil
		},
		"createAdmin": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.CreateAdminInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			account, err := d.Admins.CreateAdmin(ctx, ident, in)
			if err != nil {
				return nil, err
			}
			return gin.H{"success": true, "uid": account.UID}, nil
		},
		"updateAdminRole": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.UpdateRoleInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			if err := d.Admins.UpdateRole(ctx, ident, in); err != nil {
				return nil, err
			}
			return gin.H{"success": true}, nil
		},
		"processImage": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.ProcessImageInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.Images.Process(ctx, ident, in)
		},
		"autoProcess": func(ctx context.Context, ident *auth.Identity, data json.RawMessage) (any, error) {
			var in validate.AutoProcessInput
			if err := bind(data, &in); err != nil {
				return nil, err
			}
			return d.Images.AutoProcess(ctx, ident, in)
		},
	}
	return &Dispatcher{fns: fns}
}

func (d *Dispatcher) RegisterRoutes(r gin.IRouter) {
	r.POST("/functions/:name", d.Handle)
}

func (d *Dispatcher) Handle(c *gin.Context) {
	name := c.Param("name")
	fn, ok := d.fns[name]
	if !ok {
		writeError(c, apperr.E(apperr.NotFound, "Function not found: "+name))
		return
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.ShouldBindJSON(&envelope); err != nil {
		writeError(c, apperr.Wrap(apperr.InvalidArgument, "Invalid request envelope", err))
		return
	}

	out, err := fn(c.Request.Context(), auth.FromContext(c), envelope.Data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": out})
}

func bind(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, "Invalid request payload", err)
	}
	return nil
}

func writeError(c *gin.Context, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.Internal {
		log.Printf("callable: %v", e)
	}

	body := gin.H{
		"status":  e.Kind.CallableStatus(),
		"message": e.Message,
	}
	if len(e.Fields) > 0 {
		body["details"] = e.Fields
	}
	c.JSON(e.Kind.HTTPStatus(), gin.H{"error": body})
}
