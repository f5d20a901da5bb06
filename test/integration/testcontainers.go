package integration

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/configmgmt"
	"github.com/rhq-project/rhq-in-go/pkg/configuration"
	"github.com/rhq-project/rhq-in-go/pkg/db"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/pluginapi"
	"github.com/rhq-project/rhq-in-go/pkg/plugincontainer"
	"github.com/rhq-project/rhq-in-go/pkg/plugins/yamlfile"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/endpoints"
)

const (
	jwtSecret  = "integration-test-secret"
	serverPort = 17080
)

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB            *gorm.DB
	Container     testcontainers.Container
	ServerURL     string
	DatabaseURL   string
	HTTPClient    *http.Client
	Cancel        context.CancelFunc
	ServerProcess *exec.Cmd
	InlineServer  *server.Server

	// ManagedFile is the YAML file backing ManagedResourceID.
	ManagedFile       string
	ManagedResourceID int
}

// NewTestContext starts PostgreSQL in a container, migrates it, seeds a
// YAML file resource and starts a server against it.
// Modes:
//   - Binary mode (default): Set RHQ_BINARY to the path of the rhqctl binary
//   - Inline mode: Set RHQ_INLINE=1 to run the server in-process (no binary needed)
func NewTestContext(ctx context.Context) (*TestContext, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}
	migrationsDir := filepath.Join(projectRoot, "db", "migrations")

	inlineMode := os.Getenv("RHQ_INLINE") == "1"
	binaryPath := os.Getenv("RHQ_BINARY")

	if !inlineMode && binaryPath == "" {
		return nil, fmt.Errorf("Either RHQ_BINARY or RHQ_INLINE=1 is required.\n\nBinary mode:\n  go build -o rhqctl ./cmd/rhqctl\n  INTEGRATION_TEST=1 RHQ_BINARY=$(pwd)/rhqctl go test -v ./test/integration/...\n\nInline mode:\n  INTEGRATION_TEST=1 RHQ_INLINE=1 go test -v ./test/integration/...")
	}
	if !inlineMode {
		if _, err := os.Stat(binaryPath); err != nil {
			return nil, fmt.Errorf("RHQ_BINARY path does not exist: %s", binaryPath)
		}
		log.Printf("Using binary: %s", binaryPath)
	} else {
		log.Println("Using inline server mode")
	}

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("rhq_test"),
		tcpostgres.WithUsername("rhq"),
		tcpostgres.WithPassword("rhq"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	if err := runMigrations(connStr, migrationsDir); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	gdb, err := db.Connect(db.Config{URL: connStr})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	managedFile := filepath.Join(os.TempDir(), fmt.Sprintf("rhq-integration-%d.yml", time.Now().UnixNano()))
	resourceID, err := seedManagedResource(gdb, managedFile)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to seed inventory: %w", err)
	}

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", serverPort)

	var serverProcess *exec.Cmd
	var inlineServer *server.Server
	var cancel context.CancelFunc

	if inlineMode {
		inlineServer, cancel, err = startInlineServer(gdb, connStr)
	} else {
		serverProcess, cancel, err = startBinary(binaryPath, connStr)
	}
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to start server: %w", err)
	}

	if err := waitForServer(serverURL, 30*time.Second); err != nil {
		cancel()
		if serverProcess != nil && serverProcess.Process != nil {
			_ = serverProcess.Process.Kill()
		}
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return &TestContext{
		DB:                gdb,
		Container:         pgContainer,
		ServerURL:         serverURL,
		DatabaseURL:       connStr,
		HTTPClient:        &http.Client{Timeout: 10 * time.Second},
		Cancel:            cancel,
		ServerProcess:     serverProcess,
		InlineServer:      inlineServer,
		ManagedFile:       managedFile,
		ManagedResourceID: resourceID,
	}, nil
}

// seedManagedResource commits a "YAML File" resource keyed by path.
func seedManagedResource(gdb *gorm.DB, path string) (int, error) {
	if err := os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o644); err != nil {
		return 0, err
	}

	var rt model.ResourceType
	if err := gdb.Where("plugin = ? AND name = ?", yamlfile.PluginName, yamlfile.ResourceType().Name).First(&rt).Error; err != nil {
		return 0, err
	}
	r := model.Resource{
		ResourceKey:     path,
		Name:            filepath.Base(path),
		InventoryStatus: model.InventoryStatusCommitted,
		ResourceTypeID:  rt.ID,
	}
	if err := gdb.Omit("ResourceType", "ParentResource", "Agent").Create(&r).Error; err != nil {
		return 0, err
	}
	return r.ID, nil
}

// startInlineServer wires the server the way rhqctl server does, in-process.
func startInlineServer(gdb *gorm.DB, dbURL string) (*server.Server, context.CancelFunc, error) {
	ctx, cancel := context.WithCancel(context.Background())

	_ = os.Setenv("DATABASE_URL", dbURL)
	_ = os.Setenv("RHQ_JWT_SECRET", jwtSecret)
	_ = os.Setenv("RHQ_PORT", fmt.Sprint(serverPort))
	if err := config.Reload(); err != nil {
		cancel()
		return nil, nil, err
	}
	cfg := config.Get()

	s := server.NewServer(gdb, cfg)
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

	var resources []model.Resource
	if err := gdb.Preload("ResourceType").
		Joins("JOIN rhq_resource_type t ON t.id = rhq_resource.resource_type_id").
		Where("t.plugin = ?", yamlfile.PluginName).
		Find(&resources).Error; err != nil {
		cancel()
		return nil, nil, err
	}
	for _, r := range resources {
		rc := pluginapi.ResourceContext{
			ResourceID:          r.ID,
			ResourceKey:         r.ResourceKey,
			ResourceType:        *r.ResourceType,
			PluginConfiguration: model.Properties{yamlfile.PathProperty: r.ResourceKey},
		}
		if err := container.Register(ctx, rc, yamlfile.AmpsVersion, yamlfile.New()); err != nil {
			cancel()
			return nil, nil, err
		}
	}

	endpoints.RegisterAll(s)
	go func() {
		_ = s.Start()
	}()

	stop := func() {
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = s.Shutdown(shutdownCtx)
		executor.Shutdown()
		container.Shutdown()
	}
	return s, stop, nil
}

// startBinary starts the rhqctl server binary
func startBinary(binaryPath, dbURL string) (*exec.Cmd, context.CancelFunc, error) {
	ctx, cancel := context.WithCancel(context.Background())

	// Use --no-migrate since we already ran migrations in the test setup
	cmd := exec.CommandContext(ctx, binaryPath, "server", "--no-migrate")
	cmd.Env = append(os.Environ(),
		"DATABASE_URL="+dbURL,
		"RHQ_JWT_SECRET="+jwtSecret,
		"RHQ_BIND_ADDRESS=127.0.0.1",
		fmt.Sprintf("RHQ_PORT=%d", serverPort),
		"RHQ_DRIFT_WATCH_ENABLED=false",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to start binary: %w", err)
	}

	return cmd, cancel, nil
}

// waitForServer polls /health until the server answers or times out
func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server did not become ready within %v", timeout)
}

// Close cleans up all test resources
func (tc *TestContext) Close(ctx context.Context) {
	if tc.Cancel != nil {
		tc.Cancel()
	}
	if tc.ServerProcess != nil && tc.ServerProcess.Process != nil {
		_ = tc.ServerProcess.Process.Kill()
		_ = tc.ServerProcess.Wait()
	}
	if sqlDB, err := tc.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if tc.ManagedFile != "" {
		_ = os.Remove(tc.ManagedFile)
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}

// findProjectRoot locates the project root directory
func findProjectRoot() (string, error) {
	for _, p := range []string{"../..", "..", "."} {
		if _, err := os.Stat(filepath.Join(p, "go.mod")); err == nil {
			return filepath.Abs(p)
		}
	}
	return "", fmt.Errorf("project root not found (looking for go.mod)")
}

func runMigrations(dbURL, migrationsDir string) error {
	m, err := migrate.New("file://"+migrationsDir, dbURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
