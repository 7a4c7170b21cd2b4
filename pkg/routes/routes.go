package pkg

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"EduAgent/internal/auth"
	"EduAgent/internal/config"
	"EduAgent/internal/files"
	"EduAgent/internal/organization"
	"EduAgent/internal/student"
	"EduAgent/pkg/middleware"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewJWTConfig),
	fx.Provide(auth.NewTokenService),
	fx.Provide(organization.NewRepository),
	fx.Provide(organization.NewService),
	fx.Provide(organization.NewHandler),
	fx.Provide(student.NewRepository),
	fx.Provide(student.NewService),
	fx.Provide(student.NewHandler),
	fx.Provide(files.NewRepository),
	fx.Provide(files.NewStorage),
	fx.Provide(files.NewService),
	fx.Provide(files.NewHandler),
	fx.Provide(NewPrincipalResolver),
	fx.Provide(middleware.NewGuard),
	fx.Invoke(EnsureIndexes),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.Setup(e)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	addr := ":" + port

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Server running on http://localhost" + addr)
			go func() {
				if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

// principalResolver routes a token's kind claim to the matching store.
type principalResolver struct {
	organizations *organization.Service
	students      *student.Service
}

func NewPrincipalResolver(organizations *organization.Service, students *student.Service) auth.PrincipalResolver {
	return &principalResolver{organizations: organizations, students: students}
}

func (r *principalResolver) Resolve(ctx context.Context, kind auth.Kind, id string) (*auth.Principal, error) {
	switch kind {
	case auth.KindOrganization:
		return r.organizations.Resolve(ctx, id)
	case auth.KindStudent:
		return r.students.Resolve(ctx, id)
	}
	return nil, nil
}

func EnsureIndexes(lc fx.Lifecycle, organizations *organization.Repository, students *student.Repository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := organizations.EnsureIndexes(ctx); err != nil {
				return err
			}
			return students.EnsureIndexes(ctx)
		},
	})
}

func RegisterRoutes(
	e *echo.Echo,
	guard *middleware.Guard,
	organizations *organization.Handler,
	students *student.Handler,
	fileHandler *files.Handler,
) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to EduAgent API"})
	})

	api := e.Group("/api")

	org := api.Group("/organization")
	org.POST("/signup", organizations.Signup)
	org.POST("/login", organizations.Login)
	org.GET("/me", organizations.Me, guard.Authenticate, guard.RequireKind(auth.KindOrganization))

	stu := api.Group("/student")
	stu.POST("/signup", students.Signup)
	stu.POST("/login", students.Login)
	stu.GET("/me", students.Me, guard.Authenticate, guard.RequireKind(auth.KindStudent))
	stu.GET("/organization/:org_id", students.ListByOrganization, guard.Authenticate)

	f := api.Group("/files", guard.Authenticate, guard.RequireKind(auth.KindOrganization))
	f.POST("/upload/pdf", fileHandler.UploadPDF)
	f.POST("/upload/video", fileHandler.UploadVideo)
	f.GET("/organization/:org_id", fileHandler.ListByOrganization)
	f.GET("/:file_id", fileHandler.GetByID)
}
