package router

// router.go is the composition root: repositories, services and handlers
// are wired here and the route tree is declared in one place.

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/config"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/handler"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/infra"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/middleware"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/repository"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/service"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/worker"
)

// New builds the HTTP engine with every route and middleware wired.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := infra.NewImageStore(cfg.UploadStoragePath)
	if err != nil {
		return nil, err
	}

	// Repositories
	usuarioRepo := repository.NewUsuarioRepository(db)
	rolRepo := repository.NewRolRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	adopcionRepo := repository.NewAdopcionRepository(db)
	donacionRepo := repository.NewDonacionRepository(db)
	apadrinamientoRepo := repository.NewApadrinamientoRepository(db)
	especieRazaRepo := repository.NewEspecieRazaRepository(db)
	enfermedadRepo := repository.NewEnfermedadRepository(db)
	reporteCasoRepo := repository.NewReporteCasoRepository(db)
	reporteAdminRepo := repository.NewReporteAdminRepository(db)

	// Services
	authSvc := service.NewAuthService(usuarioRepo, cfg, dispatcher)
	rolSvc := service.NewRolService(rolRepo)
	animalSvc := service.NewAnimalService(animalRepo, especieRazaRepo)
	adopcionSvc := service.NewAdopcionService(adopcionRepo, animalRepo, cfg, dispatcher)
	donacionSvc := service.NewDonacionService(donacionRepo, usuarioRepo, dispatcher)
	apadrinamientoSvc := service.NewApadrinamientoService(apadrinamientoRepo, donacionRepo, animalRepo, dispatcher)
	taxonomiaSvc := service.NewEspecieRazaService(especieRazaRepo)
	enfermedadSvc := service.NewEnfermedadService(enfermedadRepo)
	reporteCasoSvc := service.NewReporteCasoService(reporteCasoRepo, animalRepo)
	reporteAdminSvc := service.NewReporteAdminService(reporteAdminRepo, rdb)

	// Handlers
	healthH := handler.NewHealthHandler(db, rdb)
	authH := handler.NewAuthHandler(authSvc)
	usuarioH := handler.NewUsuarioHandler(authSvc)
	rolH := handler.NewRolHandler(rolSvc)
	animalH := handler.NewAnimalHandler(animalSvc, store)
	adopcionH := handler.NewAdopcionHandler(adopcionSvc, cfg.AdminRolID)
	donacionH := handler.NewDonacionHandler(donacionSvc)
	apadrinamientoH := handler.NewApadrinamientoHandler(apadrinamientoSvc)
	especieRazaH := handler.NewEspecieRazaHandler(taxonomiaSvc)
	enfermedadH := handler.NewEnfermedadHandler(enfermedadSvc)
	reporteCasoH := handler.NewReporteCasoHandler(reporteCasoSvc)
	reporteAdminH := handler.NewReporteAdminHandler(reporteAdminSvc)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ErrorHandler(),
		middleware.RateLimiter(1000, time.Minute),
	)

	r.GET("/health", healthH.Check)
	r.Static("/uploads", store.Dir())
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))
	}

	auth := middleware.JWTAuth(cfg.JWTSecret)
	admin := middleware.RequireAdmin(cfg.AdminRolID)

	api := r.Group("/api")

	// ── Auth ────────────────────────────────────────────────────────────────
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/registro", authH.Registro)
		authGroup.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		authGroup.GET("/verify", auth, authH.Verify)
		authGroup.GET("/perfil", auth, authH.Perfil)
		authGroup.PUT("/perfil", auth, authH.ActualizarPerfil)
	}

	// ── Usuarios (admin) ────────────────────────────────────────────────────
	usuarios := api.Group("/usuarios", auth, admin)
	{
		usuarios.GET("", usuarioH.Listar)
		usuarios.GET("/:id", usuarioH.Obtener)
		usuarios.DELETE("/:id", usuarioH.Eliminar)
	}

	// ── Roles (admin) ───────────────────────────────────────────────────────
	roles := api.Group("/roles", auth, admin)
	{
		roles.POST("", rolH.Crear)
		roles.GET("", rolH.Listar)
		roles.GET("/:id", rolH.Obtener)
		roles.PUT("/:id", rolH.Actualizar)
		roles.DELETE("/:id", rolH.Eliminar)
	}

	// ── Animals ─────────────────────────────────────────────────────────────
	animals := api.Group("/animals")
	{
		animals.GET("/disponibles", animalH.Disponibles)
		animals.GET("/:id", animalH.Detalle)

		animals.GET("", auth, animalH.Listar)
		animals.POST("", auth, animalH.Crear)
		animals.PUT("/:id", auth, animalH.Actualizar)
		animals.DELETE("/:id", auth, admin, animalH.Eliminar)
		animals.POST("/:id/imagenes", auth, animalH.AgregarImagen)
		animals.POST("/:id/historial", auth, animalH.AgregarHistorial)
	}

	// ── Adoptions ───────────────────────────────────────────────────────────
	adoptions := api.Group("/adoptions", auth)
	{
		adoptions.POST("/solicitud", adopcionH.CrearSolicitud)
		adoptions.GET("/solicitud", adopcionH.ListarSolicitudes)
		adoptions.GET("/solicitud/:id", adopcionH.ObtenerSolicitud)
		adoptions.PUT("/estado_solicitud/:id", admin, adopcionH.CambiarEstadoSolicitud)

		adoptions.GET("", adopcionH.ListarAdopciones)
		adoptions.PUT("/:id", admin, adopcionH.Finalizar)
		adoptions.PUT("/estado/:id", admin, adopcionH.CambiarEstadoAdopcion)
		adoptions.DELETE("/:id", admin, adopcionH.Eliminar)
		adoptions.GET("/:id/contrato", adopcionH.DescargarContrato)
	}

	// ── Donations ───────────────────────────────────────────────────────────
	// The typed creators and the ledger accept anonymous callers; claims are
	// attached when a token is present so the donor gets credited.
	donations := api.Group("/donations")
	{
		opt := middleware.JWTOptional(cfg.JWTSecret)
		donations.POST("/crear", auth, donacionH.Crear)
		donations.POST("/alimentos", opt, donacionH.Tipificada("Alimentos"))
		donations.POST("/medicinas", opt, donacionH.Tipificada("Medicinas"))
		donations.POST("/otros", opt, donacionH.Tipificada("Otros"))
		donations.POST("/economica", opt, donacionH.Tipificada("Economica"))
		donations.POST("/apadrinamiento", opt, donacionH.Tipificada("Apadrinamiento"))
		donations.POST("/general", opt, donacionH.Tipificada("General"))
		donations.GET("/historial", donacionH.Historial)
	}

	// ── Apadrinamiento ──────────────────────────────────────────────────────
	apadrinamiento := api.Group("/apadrinamiento", auth)
	{
		apadrinamiento.POST("", admin, apadrinamientoH.Crear)
		apadrinamiento.GET("", apadrinamientoH.Listar)
		apadrinamiento.GET("/:id", apadrinamientoH.Obtener)
		apadrinamiento.PUT("/:id", admin, apadrinamientoH.Actualizar)
		apadrinamiento.DELETE("/:id", admin, apadrinamientoH.Eliminar)
	}

	solicitudes := api.Group("/solicitudes-apadrinamiento", auth)
	{
		solicitudes.POST("", apadrinamientoH.CrearSolicitud)
		solicitudes.GET("", admin, apadrinamientoH.ListarSolicitudes)
		solicitudes.POST("/:id/aprobar", admin, apadrinamientoH.AprobarSolicitud)
		solicitudes.POST("/:id/rechazar", admin, apadrinamientoH.RechazarSolicitud)
	}

	// ── Taxonomia ───────────────────────────────────────────────────────────
	especieRaza := api.Group("/especieRaza")
	{
		especieRaza.GET("/especies", especieRazaH.ListarEspecies)
		especieRaza.GET("/razas", especieRazaH.ListarRazas)

		especieRaza.POST("/especies", auth, admin, especieRazaH.CrearEspecie)
		especieRaza.PUT("/especies/:id", auth, admin, especieRazaH.ActualizarEspecie)
		especieRaza.DELETE("/especies/:id", auth, admin, especieRazaH.EliminarEspecie)
		especieRaza.POST("/razas", auth, admin, especieRazaH.CrearRaza)
		especieRaza.PUT("/razas/:id", auth, admin, especieRazaH.ActualizarRaza)
		especieRaza.DELETE("/razas/:id", auth, admin, especieRazaH.EliminarRaza)
	}

	// ── Enfermedades ────────────────────────────────────────────────────────
	enfermedades := api.Group("/enfermedades")
	{
		enfermedades.GET("/tipos", enfermedadH.ListarTipos)
		enfermedades.GET("", enfermedadH.Listar)

		enfermedades.POST("/tipos", auth, admin, enfermedadH.CrearTipo)
		enfermedades.PUT("/tipos/:id", auth, admin, enfermedadH.ActualizarTipo)
		enfermedades.DELETE("/tipos/:id", auth, admin, enfermedadH.EliminarTipo)
		enfermedades.POST("", auth, admin, enfermedadH.Crear)
		enfermedades.PUT("/:id", auth, admin, enfermedadH.Actualizar)
		enfermedades.DELETE("/:id", auth, admin, enfermedadH.Eliminar)
	}

	// ── Reportes ────────────────────────────────────────────────────────────
	reportes := api.Group("/reportes", auth)
	{
		reportes.POST("/casos", reporteCasoH.Crear)
		reportes.GET("/casos", admin, reporteCasoH.Listar)
	}

	reporteAdmin := api.Group("/reporteAdmin", auth, admin)
	{
		reporteAdmin.GET("/donaciones-categoria", reporteAdminH.DonacionesPorCategoria)
		reporteAdmin.GET("/donaciones-mes", reporteAdminH.DonacionesPorMes)
		reporteAdmin.GET("/adopciones-mes", reporteAdminH.AdopcionesPorMes)
		reporteAdmin.GET("/resumen", reporteAdminH.Resumen)
	}

	return r, nil
}
