package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/allotjaments/viatgers-api/docs"
	v1 "github.com/allotjaments/viatgers-api/internal/api/handler/v1"
	"github.com/allotjaments/viatgers-api/internal/api/middleware"
	"github.com/allotjaments/viatgers-api/internal/config"
	"github.com/allotjaments/viatgers-api/internal/repository"
	"github.com/allotjaments/viatgers-api/internal/repository/dao"
	"github.com/allotjaments/viatgers-api/internal/service"
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

	reservaHandler := s.initReservaHandler(db)
	viatgerHandler := s.initViatgerHandler(db)
	formulariHandler := s.initFormulariHandler(db)
	mossosHandler := s.initMossosHandler(db)
	s.MountHandlers(reservaHandler, viatgerHandler, formulariHandler, mossosHandler)

	return s
}

func (s *Server) initReservaHandler(db *gorm.DB) *v1.ReservaHandler {
	repo := repository.NewReservaRepository(dao.NewReservaDAO(db))
	svc := service.NewReservaService(repo)

	return v1.NewReservaHandler(svc)
}

func (s *Server) initViatgerHandler(db *gorm.DB) *v1.ViatgerHandler {
	repo := repository.NewViatgerRepository(dao.NewViatgerDAO(db))
	reservaRepo := repository.NewReservaRepository(dao.NewReservaDAO(db))
	svc := service.NewViatgerService(repo, reservaRepo)

	return v1.NewViatgerHandler(svc)
}

func (s *Server) initFormulariHandler(db *gorm.DB) *v1.FormulariHandler {
	repo := repository.NewFormulariRepository(dao.NewFormulariDAO(db))
	viatgerRepo := repository.NewViatgerRepository(dao.NewViatgerDAO(db))
	reservaRepo := repository.NewReservaRepository(dao.NewReservaDAO(db))
	svc := service.NewFormulariService(repo, viatgerRepo, reservaRepo, s.Config.API.PublicBaseURL)

	return v1.NewFormulariHandler(svc)
}

func (s *Server) initMossosHandler(db *gorm.DB) *v1.MossosHandler {
	viatgerRepo := repository.NewViatgerRepository(dao.NewViatgerDAO(db))
	reservaRepo := repository.NewReservaRepository(dao.NewReservaDAO(db))
	svc := service.NewMossosService(viatgerRepo, reservaRepo, s.Config.Mossos)

	return v1.NewMossosHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(reservaHandler *v1.ReservaHandler, viatgerHandler *v1.ViatgerHandler, formulariHandler *v1.FormulariHandler, mossosHandler *v1.MossosHandler) {
	const basePath = "/api/v1"

	// The token in the URL is the only authorization the public form needs.
	// The legacy alias serves the same handlers; old distributed links must
	// keep resolving.
	public := s.Router.Group(basePath)
	{
		public.GET("/formulari/:token", formulariHandler.HandleFitxaPublica)
		public.POST("/formulari/:token", formulariHandler.HandleRegistrePublic)
		public.GET("/formulari-viatger/:token", formulariHandler.HandleFitxaPublica)
		public.POST("/formulari-viatger/:token", formulariHandler.HandleRegistrePublic)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.Config.API.HubLoginURL)

	admin := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		admin.GET("/viatgers", viatgerHandler.HandleListViatgers)
		admin.POST("/viatgers", viatgerHandler.HandleCreateViatger)
		admin.GET("/viatgers/estadistiques", viatgerHandler.HandleEstadistiques)
		admin.PUT("/viatgers/:viatgerID", viatgerHandler.HandleUpdateViatger)
		admin.DELETE("/viatgers/:viatgerID", viatgerHandler.HandleDeleteViatger)

		admin.POST("/viatgers/generar-formulari-reserva", formulariHandler.HandleGenerarFormulari)
		admin.DELETE("/viatgers/eliminar-formulari-reserva", formulariHandler.HandleEliminarFormulari)
		admin.GET("/formularis-reserva/:reservaID", formulariHandler.HandleGetFormulariReserva)

		admin.POST("/viatgers/generar-txt-mossos", mossosHandler.HandleGenerarTXT)
		admin.GET("/viatgers/download-txt/:fileName", mossosHandler.HandleDownloadTXT)

		admin.POST("/reserves", reservaHandler.HandleCreateReserva)
		admin.GET("/reserves/:reservaID", reservaHandler.HandleGetReserva)
		admin.PUT("/reserves/:reservaID", reservaHandler.HandleUpdateReserva)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "API de registre de viatgers"
	docs.SwaggerInfo.Description = "Registre de viatgers i exportació Mossos d'Esquadra per a allotjaments turístics."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
