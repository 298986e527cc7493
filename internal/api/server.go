package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/seelv/dancebook/docs"
	v1 "github.com/seelv/dancebook/internal/api/handler/v1"
	"github.com/seelv/dancebook/internal/api/middleware"
	"github.com/seelv/dancebook/internal/clock"
	"github.com/seelv/dancebook/internal/config"
	"github.com/seelv/dancebook/internal/repository"
	"github.com/seelv/dancebook/internal/repository/dao"
	"github.com/seelv/dancebook/internal/service"
)

const basePath = "/api/v1"

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type Handlers struct {
	Auth          *v1.AuthHandler
	User          *v1.UserHandler
	Catalog       *v1.CatalogHandler
	Pack          *v1.PackHandler
	Booking       *v1.BookingHandler
	Authenticator *middleware.Authenticator
}

type Services struct {
	Auth    *service.AuthService
	User    *service.UserService
	Catalog *service.CatalogService
	Pack    *service.PackService
	Booking *service.BookingService
}

func NewServer(conf *config.AppConfig, db *gorm.DB, rdb *redis.Client, clk clock.Clock) *Server {
	svcs := NewServices(conf, db, rdb, clk)

	return NewServerWithHandlers(conf, Handlers{
		Auth:          v1.NewAuthHandler(svcs.Auth),
		User:          v1.NewUserHandler(svcs.User),
		Catalog:       v1.NewCatalogHandler(svcs.Catalog),
		Pack:          v1.NewPackHandler(svcs.Pack),
		Booking:       v1.NewBookingHandler(svcs.Booking),
		Authenticator: middleware.NewAuthenticator(svcs.Auth),
	})
}

// NewServerWithHandlers mounts already built handlers, which lets tests
// exercise the routing table against mocked services.
func NewServerWithHandlers(conf *config.AppConfig, handlers Handlers) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(handlers)

	return s
}

func NewServices(conf *config.AppConfig, db *gorm.DB, rdb *redis.Client, clk clock.Clock) Services {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(rdb))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	packRepo := repository.NewPackRepository(dao.NewPackDAO(db))
	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(db))

	return Services{
		Auth:    service.NewAuthService(userRepo, sessionRepo, clk, conf.API.JWTSigningKey, conf.API.TokenTTL),
		User:    service.NewUserService(userRepo),
		Catalog: service.NewCatalogService(catalogRepo),
		Pack:    service.NewPackService(packRepo),
		Booking: service.NewBookingService(bookingRepo, packRepo, clk),
	}
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ZapLogger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h Handlers) {
	public := s.Router.Group(basePath)
	{
		public.POST("/users/create", h.Auth.HandleCreateUser)
		public.POST("/users/token", h.Auth.HandleToken)
		public.POST("/users/create_details", h.Auth.HandleCreateUserWithDetails)
	}

	authed := s.Router.Group(basePath, h.Authenticator.VerifyJWT())
	{
		authed.GET("/users/me", h.User.HandleGetMe)
		authed.PATCH("/users/me", h.User.HandleUpdateMe)
		authed.POST("/users/logout", h.Auth.HandleLogout)
		authed.GET("/users/details", h.User.HandleGetDetails)
		authed.POST("/users/details", h.User.HandleAttachDetails)

		authed.GET("/booking", h.Pack.HandleListPacks)
		authed.GET("/packs", h.Pack.HandleListPacks)
		authed.GET("/packs/:packID", h.Pack.HandleGetPack)

		authed.GET("/locations", h.Catalog.HandleListLocations)
		authed.GET("/locations/:locationID", h.Catalog.HandleGetLocation)
		authed.GET("/artists", h.Catalog.HandleListArtists)
		authed.GET("/artists/:artistID", h.Catalog.HandleGetArtist)
		authed.GET("/events", h.Catalog.HandleListEvents)
		authed.GET("/events/:eventID", h.Catalog.HandleGetEvent)
		authed.GET("/discounts", h.Catalog.HandleListDiscounts)

		authed.GET("/bookings", h.Booking.HandleListBookings)
		authed.POST("/bookings", h.Booking.HandleCreateBooking)
		authed.GET("/bookings/:bookingID", h.Booking.HandleGetBooking)
		authed.DELETE("/bookings/:bookingID", h.Booking.HandleDeleteBooking)
		authed.POST("/bookings/:bookingID/pay", h.Booking.HandlePayBooking)
	}

	staff := s.Router.Group(basePath, h.Authenticator.VerifyJWT(), middleware.RequireStaff())
	{
		staff.DELETE("/users/:userID", h.User.HandleDeleteUser)

		staff.POST("/locations", h.Catalog.HandleCreateLocation)
		staff.POST("/artists", h.Catalog.HandleCreateArtist)
		staff.POST("/events", h.Catalog.HandleCreateEvent)
		staff.POST("/events/:eventID/artists/:artistID", h.Catalog.HandleAddEventArtist)
		staff.DELETE("/events/:eventID/artists/:artistID", h.Catalog.HandleRemoveEventArtist)
		staff.POST("/discounts", h.Catalog.HandleCreateDiscount)

		staff.POST("/packs", h.Pack.HandleCreatePack)
		staff.DELETE("/packs/:packID", h.Pack.HandleDeletePack)
		staff.POST("/packs/:packID/events/:eventID", h.Pack.HandleAddPackEvent)
		staff.DELETE("/packs/:packID/events/:eventID", h.Pack.HandleRemovePackEvent)
		staff.POST("/packs/:packID/discounts/:discountID", h.Pack.HandleAddPackDiscount)
		staff.DELETE("/packs/:packID/discounts/:discountID", h.Pack.HandleRemovePackDiscount)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "dancebook API"
	docs.SwaggerInfo.Description = "Booking backend for dance event packs."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
