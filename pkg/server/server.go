package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/server/middleware"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
	gormstore "github.com/rhq-project/rhq-in-go/pkg/server/store/gorm"
)

// ConfigurationManager is the part of configuration.Manager the API uses.
type ConfigurationManager interface {
	LatestConfiguration(subject *model.Subject, resourceID int) (*model.Configuration, error)
	LiveConfiguration(ctx context.Context, subject *model.Subject, resourceID int) (*model.Configuration, error)
	SearchUpdates(ctx context.Context, subject *model.Subject, c *criteria.ResourceConfigurationUpdateCriteria) (*paging.PageList[model.ResourceConfigurationUpdate], error)
	UpdateStructuredConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration) (*model.ResourceConfigurationUpdate, error)
	UpdateStructuredOrRawConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration, fromStructured bool) (*model.ResourceConfigurationUpdate, error)
	TranslateConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration, fromStructured bool) (*model.Configuration, error)
	UpdateGroupConfiguration(ctx context.Context, subject *model.Subject, groupID int, c *model.Configuration, fromStructured bool) (*model.GroupConfigurationUpdate, error)
}

var _ ConfigurationManager = (*configuration.Manager)(nil)

type Server struct {
	Router        *mux.Router
	DB            *gorm.DB
	Config        *config.RhqConfig
	JWTMiddleware *middleware.JWTAuthenticator

	ResourcesStore     store.ResourcesStore
	GroupsStore        store.GroupsStore
	SubjectsStore      store.SubjectsStore
	AuthzStore         store.AuthzStore
	AuthenticateStore  store.AuthenticateStore
	ConfigurationStore store.ConfigurationStore
	AlertsStore        store.AlertsStore
	StorageNodesStore  store.StorageNodesStore
	HealthStore        store.HealthStore

	Configurations ConfigurationManager

	srv *http.Server
}

// NewServer builds a server with gorm backed stores. Configurations is left
// for the caller to set, since the manager needs an agent.
func NewServer(db *gorm.DB, cfg *config.RhqConfig) *Server {
	s := New(cfg)
	s.DB = db
	s.ResourcesStore = gormstore.NewResourcesStore(db)
	s.GroupsStore = gormstore.NewGroupsStore(db)
	s.SubjectsStore = gormstore.NewSubjectsStore(db)
	s.AuthzStore = gormstore.NewAuthzStore(db)
	s.AuthenticateStore = gormstore.NewAuthenticateStore(db)
	s.ConfigurationStore = gormstore.NewConfigurationStore(db)
	s.AlertsStore = gormstore.NewAlertsStore(db)
	s.StorageNodesStore = gormstore.NewStorageNodesStore(db)
	s.HealthStore = gormstore.NewHealthStore(db)
	return s
}

// New builds a server without stores. Tests fill in the stores they need.
func New(cfg *config.RhqConfig) *Server {
	router := mux.NewRouter()
	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, router),
		Addr:         cfg.Address(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:        router,
		Config:        cfg,
		JWTMiddleware: middleware.NewJWTAuthenticator([]byte(cfg.JWTSecret)),
		srv:           srv,
	}
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	logger.Named("server").Info("listening", zap.String("address", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
