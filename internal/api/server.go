package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campus-events/gateway/docs"
	v1 "github.com/campus-events/gateway/internal/api/handler/v1"
	"github.com/campus-events/gateway/internal/api/middleware"
	"github.com/campus-events/gateway/internal/config"
	"github.com/campus-events/gateway/internal/repository"
	"github.com/campus-events/gateway/internal/repository/dao"
	"github.com/campus-events/gateway/internal/service"
	"github.com/campus-events/gateway/internal/upstream"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(db))

	// An upstream 401 means the stored token is dead; drop the session so
	// the next request reads as logged out.
	teardown := func(ctx context.Context) {
		sid := upstream.SIDFromContext(ctx)
		if sid == "" {
			return
		}
		if err := sessionRepo.Delete(ctx, sid); err != nil {
			zap.L().Error("session teardown failed", zap.Error(err))
		}
	}

	client := upstream.NewClient(conf.Upstream, teardown)

	authSvc := service.NewAuthService(conf.API, client, sessionRepo)
	accessSvc := service.NewAccessService(client)
	eventSvc := service.NewEventService(client)
	whitelistSvc := service.NewWhitelistService(client)
	participantSvc := service.NewParticipantService(client)
	userSvc := service.NewUserService(client)

	s.MountHandlers(
		authSvc,
		accessSvc,
		v1.NewAuthHandler(conf.API, authSvc),
		v1.NewEventHandler(eventSvc),
		v1.NewWhitelistHandler(whitelistSvc),
		v1.NewParticipantHandler(participantSvc),
		v1.NewUserHandler(userSvc),
	)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authSvc *service.AuthService,
	accessSvc *service.AccessService,
	authHandler *v1.AuthHandler,
	eventHandler *v1.EventHandler,
	whitelistHandler *v1.WhitelistHandler,
	participantHandler *v1.ParticipantHandler,
	userHandler *v1.UserHandler,
) {
	const basePath = "/api/v1"

	loadSession := middleware.LoadSession(authSvc)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/auth/register", authHandler.HandleRegister)
	}

	users := s.Router.Group(basePath, loadSession, middleware.RequireUser(accessSvc))
	{
		users.POST("/auth/logout", authHandler.HandleLogout)
		users.GET("/auth/me", authHandler.HandleMe)

		users.GET("/events", eventHandler.HandleListEvents)
		users.GET("/events/:eventID", eventHandler.HandleGetEvent)
		users.POST("/events/:eventID/register", eventHandler.HandleRegisterToEvent)
		users.GET("/my-registrations", eventHandler.HandleMyRegistrations)
		users.DELETE("/registrations/:registrationID", eventHandler.HandleCancelRegistration)

		users.POST("/whitelist/request", whitelistHandler.HandleSubmitRequest)
		users.GET("/whitelist/my-request", whitelistHandler.HandleMyRequest)

		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	organizers := s.Router.Group(basePath, loadSession, middleware.RequireOrganizerSurface(accessSvc))
	{
		organizers.GET("/events/:eventID/registrations", eventHandler.HandleEventRegistrations)
		organizers.GET("/events/:eventID/registrations/summary", eventHandler.HandleRegistrationSummary)
		organizers.GET("/events/:eventID/attendance", eventHandler.HandleEventAttendance)
		organizers.POST("/events/:eventID/attendance", eventHandler.HandleMarkAttendance)
		organizers.POST("/events/:eventID/attendance/bulk", eventHandler.HandleMarkBulkAttendance)
		organizers.GET("/events/:eventID/attendance/stats", eventHandler.HandleAttendanceStats)
	}

	admins := s.Router.Group(basePath, loadSession, middleware.RequireAdminSurface(accessSvc))
	{
		admins.GET("/my-events", eventHandler.HandleMyEvents)
		admins.POST("/events", eventHandler.HandleCreateEvent)
		admins.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		admins.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)
		admins.PATCH("/events/:eventID/publish", eventHandler.HandlePublishEvent)
		admins.POST("/events/:eventID/poster", eventHandler.HandleUploadPoster)

		admins.GET("/whitelist/requests", whitelistHandler.HandleListRequests)
		admins.PATCH("/whitelist/requests/:requestID/review", whitelistHandler.HandleReviewRequest)
		admins.GET("/whitelist/summary", whitelistHandler.HandleSummary)

		admins.GET("/participants", participantHandler.HandleListParticipants)

		admins.POST("/events/:eventID/reminders", eventHandler.HandleSendReminder)
		admins.PUT("/reminders/auto/:reminderID", eventHandler.HandleSetAutoReminder)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Campus Events Gateway"
	docs.SwaggerInfo.Description = "Session-backed gateway for the campus event management backend."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
