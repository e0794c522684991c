package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tharindu-dev/portfolio-backend/internal/admins"
	"github.com/tharindu-dev/portfolio-backend/internal/api/callable"
	apihttp "github.com/tharindu-dev/portfolio-backend/internal/api/http"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/blog"
	"github.com/tharindu-dev/portfolio-backend/internal/cache"
	"github.com/tharindu-dev/portfolio-backend/internal/casestudy"
	"github.com/tharindu-dev/portfolio-backend/internal/contact"
	"github.com/tharindu-dev/portfolio-backend/internal/images"
	"github.com/tharindu-dev/portfolio-backend/internal/profilesite"
	"github.com/tharindu-dev/portfolio-backend/internal/store"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigin  string
	Stores      store.Stores
	Verifier    auth.TokenVerifier
	UserAdmin   auth.UserAdmin
	Objects     images.ObjectStore
	Cache       *cache.Cache
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(dep.CORSOrigin)))

	gate := auth.NewGate(dep.Stores.Accounts)

	blogSvc := blog.NewService(dep.Stores.Blog, gate, dep.Cache)
	caseStudySvc := casestudy.NewService(dep.Stores.CaseStudies, gate, dep.Cache)
	profileSvc := profilesite.NewService(dep.Stores.Profiles, gate, dep.Cache)
	contactSvc := contact.NewService(dep.Stores.Contacts, gate)
	adminSvc := admins.NewService(dep.Stores.Accounts, dep.UserAdmin, gate)
	imageSvc := images.NewService(dep.Objects, dep.Stores.Images, gate)

	api := r.Group("/api")
	api.Use(auth.Middleware(dep.Verifier))

	healthHandler := apihttp.NewHealthHandler(dep.ServiceName, dep.Version, dep.Stores.Health)
	healthHandler.RegisterRoutes(api)

	blog.NewHandler(blogSvc).RegisterRoutes(api)
	casestudy.NewHandler(caseStudySvc).RegisterRoutes(api)
	profilesite.NewHandler(profileSvc).RegisterRoutes(api)
	contact.NewHandler(contactSvc).RegisterRoutes(api)
	admins.NewHandler(adminSvc).RegisterRoutes(api)
	images.NewHandler(imageSvc).RegisterRoutes(api)

	// The envelope surface the existing frontend calls.
	v1 := r.Group("/v1")
	v1.Use(auth.Middleware(dep.Verifier))

	dispatcher := callable.NewDispatcher(callable.Deps{
		Blog:        blogSvc,
		CaseStudies: caseStudySvc,
		Profile:     profileSvc,
		Contacts:    contactSvc,
		Admins:      adminSvc,
		Images:      imageSvc,
	})
	dispatcher.RegisterRoutes(v1)

	return r
}

func corsConfig(origin string) cors.Config {
	cfg := cors.DefaultConfig()
	if origin == "*" || origin == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}
