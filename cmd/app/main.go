package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"travelling/cmd/fx/account_fx"
	"travelling/cmd/fx/category_fx"
	"travelling/cmd/fx/config_fx"
	"travelling/cmd/fx/contract_fx"
	"travelling/cmd/fx/controllers_fx"
	"travelling/cmd/fx/db_fx"
	"travelling/cmd/fx/listing_fx"
	"travelling/cmd/fx/media_fx"
	"travelling/cmd/fx/memcache_fx"
	"travelling/cmd/fx/rating_fx"
	"travelling/cmd/fx/storage_fx"
	"travelling/cmd/fx/travelling_fx"
	"travelling/internal/api/controllers"
	"travelling/internal/infra"
	"travelling/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		db_fx.Module,
		storage_fx.Module,
		memcache_fx.Module,
		media_fx.Module,
		category_fx.Module,
		account_fx.Module,
		listing_fx.Module,
		rating_fx.Module,
		contract_fx.Module,
		travelling_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

// Handlers groups every controller the router needs.
type Handlers struct {
	fx.In

	Account             *controllers.AccountController
	Agency              *controllers.AgencyController
	Business            *controllers.BusinessController
	Tourist             *controllers.TouristController
	Category            *controllers.CategoryController
	Attraction          *controllers.AttractionController
	Establishment       *controllers.EstablishmentController
	AttractionRating    *controllers.AttractionRatingController
	EstablishmentRating *controllers.EstablishmentRatingController
	Contract            *controllers.ContractController
	Travelling          *controllers.TravellingController
	Media               *controllers.MediaController
}

func ProvideRouter(h Handlers, cfg *infra.Config, logger *zap.Logger) *gin.Engine {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, h)

	return r
}

const (
	roleAgency   = "AGENCY"
	roleBusiness = "BUSINESS"
	roleTourist  = "TOURIST"
)

func RegisterRoutes(r *gin.Engine, h Handlers) {
	auth := middleware.JWTAuthMiddleware()
	role := middleware.RoleMiddleware

	r.POST("/login", h.Account.Login)
	r.GET("/me", auth, h.Account.Me)

	userGroup := r.Group("/user")
	userGroup.POST("/admin", h.Account.CreateAdmin)
	userGroup.GET("", auth, role(), h.Account.GetAllUsers)
	userGroup.GET("/userById/:id", auth, role(), h.Account.GetUserByID)
	userGroup.GET("/:email", auth, role(), h.Account.GetUserByEmail)

	touristGroup := r.Group("/tourist")
	touristGroup.POST("", h.Tourist.Create)
	touristGroup.GET("", auth, h.Tourist.GetAll)
	touristGroup.GET("/:id", auth, h.Tourist.GetByID)
	touristGroup.PUT("/:id", auth, role(roleTourist), h.Tourist.Update)
	touristGroup.DELETE("/:id", auth, role(roleTourist), h.Tourist.Delete)

	agencyGroup := r.Group("/agency")
	agencyGroup.POST("", h.Agency.Create)
	agencyGroup.GET("", h.Agency.GetAll)
	agencyGroup.GET("/:id", h.Agency.GetByID)
	agencyGroup.PUT("/:id", auth, role(roleAgency), h.Agency.Update)
	agencyGroup.DELETE("/:id", auth, role(roleAgency), h.Agency.Delete)

	businessGroup := r.Group("/business")
	businessGroup.POST("", h.Business.Create)
	businessGroup.GET("", h.Business.GetAll)
	businessGroup.GET("/:id", h.Business.GetByID)
	businessGroup.PUT("/:id", auth, role(roleBusiness), h.Business.Update)
	businessGroup.DELETE("/:id", auth, role(roleBusiness), h.Business.Delete)

	categoryGroup := r.Group("/category")
	categoryGroup.POST("", auth, role(), h.Category.Create)
	categoryGroup.GET("", h.Category.GetAll)
	categoryGroup.GET("/:id", h.Category.GetByID)
	categoryGroup.PUT("/:id", auth, role(), h.Category.Update)
	categoryGroup.DELETE("/:id", auth, role(), h.Category.Delete)

	attractionGroup := r.Group("/attraction")
	attractionGroup.POST("/:agencyId", auth, role(roleAgency), h.Attraction.Create)
	attractionGroup.GET("", h.Attraction.GetAll)
	attractionGroup.GET("/:id", h.Attraction.GetByID)
	attractionGroup.GET("/attractionByAgency/:agencyId", auth, h.Attraction.GetByAgency)
	attractionGroup.PUT("/:id", auth, role(roleAgency), h.Attraction.Update)
	attractionGroup.DELETE("/:id", auth, role(roleAgency), h.Attraction.Delete)

	establishmentGroup := r.Group("/establishment")
	establishmentGroup.POST("/:businessId", auth, role(roleBusiness), h.Establishment.Create)
	establishmentGroup.GET("", h.Establishment.GetAll)
	establishmentGroup.GET("/:id", h.Establishment.GetByID)
	establishmentGroup.GET("/establishmentByBusiness/:businessId", auth, h.Establishment.GetByBusiness)
	establishmentGroup.PUT("/:id", auth, role(roleBusiness), h.Establishment.Update)
	establishmentGroup.DELETE("/:id", auth, role(roleBusiness), h.Establishment.Delete)

	contractGroup := r.Group("/contract", auth)
	contractGroup.POST("/:attractionId/:agencyId/:touristId", role(roleTourist), h.Contract.Create)
	contractGroup.GET("", role(), h.Contract.GetAll)
	contractGroup.GET("/:id", role(roleTourist, roleAgency), h.Contract.GetByID)
	contractGroup.GET("/contractsByTourist/:touristId", role(roleTourist), h.Contract.GetByTourist)
	contractGroup.GET("/contractsByAgency/:agencyId", role(roleAgency), h.Contract.GetByAgency)
	contractGroup.PATCH("/:id", role(roleAgency), h.Contract.UpdateStatus)
	contractGroup.DELETE("/:id", role(roleTourist, roleAgency), h.Contract.Remove)
	contractGroup.DELETE("/forceRemove/:id", role(roleTourist, roleAgency), h.Contract.ForceRemove)

	travellingGroup := r.Group("/travelling", auth, role(roleTourist))
	travellingGroup.POST("/:touristId", h.Travelling.Create)
	travellingGroup.GET("", h.Travelling.GetAll)
	travellingGroup.GET("/:id", h.Travelling.GetByID)
	travellingGroup.GET("/travellingsByTourist/:touristId", h.Travelling.GetByTourist)
	travellingGroup.PUT("/:id", h.Travelling.Update)
	travellingGroup.DELETE("/:id", h.Travelling.Delete)

	registerRatingRoutes(r.Group("/ratingToAttraction", auth, role(roleTourist)), h.AttractionRating.RatingController)
	registerRatingRoutes(r.Group("/ratingToEstablishment", auth, role(roleTourist)), h.EstablishmentRating.RatingController)

	mediaGroup := r.Group("/media")
	mediaGroup.POST("", h.Media.Upload)
	mediaGroup.GET("/:mediaId", h.Media.SignedURL)
	mediaGroup.GET("/download/:mediaId", h.Media.Download)
	mediaGroup.DELETE("/:mediaId", auth, role(roleAgency, roleBusiness), h.Media.Delete)
}

func registerRatingRoutes(g *gin.RouterGroup, rc *controllers.RatingController) {
	target := ":" + rc.Param()
	g.POST("/:touristId/"+target, rc.Create)
	g.GET("", rc.GetAll)
	g.GET("/:id", rc.GetByID)
	g.GET("/byTarget/"+target, rc.GetByTarget)
	g.PUT("/:touristId/"+target, rc.Update)
	g.DELETE("/:touristId/"+target, rc.Delete)
}
