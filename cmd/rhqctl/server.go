package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/configmgmt"
	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/db"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
	"github.com/rhq-project/rhq-in-go/pkg/plugincontainer"
	"github.com/rhq-project/rhq-in-go/pkg/plugins/yamlfile"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/endpoints"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// overlordSubjectID is the seeded system subject. It holds every
// permission and owns the server's own inventory scans.
const overlordSubjectID = 1

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the RHQ server",
	Long: `Run the RHQ server.

The server requires a database_url (or DATABASE_URL) and a jwt_secret (or
RHQ_JWT_SECRET). Every committed resource of the yamlfile plugin is started
in the embedded plugin container.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if err := runServer(noMigrate); err != nil {
			fmt.Fprintln(os.Stderr, "Server failed:", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}

func connect(cfg *config.RhqConfig) (*gorm.DB, error) {
	conn, err := db.Connect(db.Config{URL: cfg.DatabaseURL, LogLevel: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return conn, nil
}

func runServer(noMigrate bool) error {
	log := logger.Named("rhqctl")
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := connect(cfg)
	if err != nil {
		return err
	}
	waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = db.WaitFor(waitCtx, conn, time.Second)
	cancel()
	if err != nil {
		return err
	}

	if !noMigrate {
		if err := runMigrations(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	s := server.NewServer(conn, cfg)

	container := plugincontainer.New()
	strategies := configmgmt.NewFactory(container, cfg.FacetTimeout())
	merge := configmgmt.NewMergeService(container, cfg.FacetTimeout())

	var manager *configuration.Manager
	executor := plugincontainer.NewUpdateExecutor(strategies, cfg.UpdateWorkers, func(ctx context.Context, resp model.ConfigurationUpdateResponse) {
		manager.HandleResponse(ctx, resp)
	})
	manager = configuration.NewManager(s.ConfigurationStore, s.AuthzStore, s.GroupsStore,
		plugincontainer.NewAgent(strategies, merge, executor))
	s.Configurations = manager

	resourceIDs, err := registerInventory(ctx, s.ResourcesStore, container)
	if err != nil {
		return err
	}
	log.Info("plugin container started", zap.Int("resources", len(resourceIDs)))

	var background conc.WaitGroup
	if cfg.DriftWatchEnabled {
		watcher, err := plugincontainer.NewDriftWatcher(strategies, func(resourceID int, c *model.Configuration) {
			if _, err := manager.RecordDrift(ctx, resourceID, c); err != nil {
				log.Warn("could not record configuration drift", zap.Int("resource", resourceID), zap.Error(err))
			}
		})
		if err != nil {
			return err
		}
		for _, id := range resourceIDs {
			if err := watcher.Watch(ctx, id); err != nil {
				log.Warn("not watching resource for drift", zap.Int("resource", id), zap.Error(err))
			}
		}
		background.Go(func() { _ = watcher.Run(ctx) })
	}

	background.Go(func() {
		err := config.Watch(ctx, func(next *config.RhqConfig) {
			if next.Address() != cfg.Address() {
				log.Warn("listen address changed, restart the server to apply it", zap.String("address", next.Address()))
			}
		})
		if err != nil {
			log.Debug("not watching configuration file", zap.Error(err))
		}
	})

	endpoints.RegisterAll(s)

	serveErr := make(chan error, 1)
	go func() { serveErr <- s.Start() }()

	select {
	case err = <-serveErr:
		stop()
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err = s.Shutdown(shutdownCtx)
		cancel()
	}

	executor.Shutdown()
	container.Shutdown()
	background.Wait()
	return err
}

// registerInventory starts a yamlfile component for every committed
// resource of the plugin. The resource key is the path of the managed file.
func registerInventory(ctx context.Context, resources store.ResourcesStore, container *plugincontainer.Container) ([]int, error) {
	log := logger.Named("rhqctl")

	c := criteria.NewResourceCriteria()
	c.AddFilterPluginName(yamlfile.PluginName)
	c.AddFilterInventoryStatus(model.InventoryStatusCommitted)
	c.FetchResourceType(true)
	found, err := resources.SearchResources(ctx, c, overlordSubjectID)
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}

	var ids []int
	for _, r := range found.Items {
		if r.ResourceType == nil {
			continue
		}
		ampsVersion, err := resources.AmpsVersion(r.ID)
		if err != nil {
			log.Warn("skipping resource", zap.Int("resource", r.ID), zap.Error(err))
			continue
		}
		rc := pluginapi.ResourceContext{
			ResourceID:          r.ID,
			ResourceKey:         r.ResourceKey,
			ResourceType:        *r.ResourceType,
			PluginConfiguration: model.Properties{yamlfile.PathProperty: r.ResourceKey},
		}
		component, ampsVersion := componentFor(*r.ResourceType, ampsVersion)
		if err := container.Register(ctx, rc, ampsVersion, component); err != nil {
			log.Warn("could not start resource component", zap.Int("resource", r.ID), zap.Error(err))
			continue
		}
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// componentFor picks the component for a resource type along with the AMPS
// version it runs under. Legacy types keep the pre 2.1 facet whatever the
// plugin's own version.
func componentFor(rt model.ResourceType, pluginAmpsVersion string) (pluginapi.ResourceComponent, string) {
	if rt.Name == yamlfile.LegacyResourceType().Name {
		return yamlfile.NewLegacy(), yamlfile.LegacyAmpsVersion
	}
	return yamlfile.New(), pluginAmpsVersion
}
