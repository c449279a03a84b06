//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"building-management/cmd/bootstrap"
	"building-management/cmd/bootstrap/components"
	"building-management/internal/infra/db"
	"building-management/internal/infra/docstore"
	"building-management/internal/pkg/config"
	"building-management/internal/usecase/commands"
	"building-management/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

const replicaSetName = "rs0"

var (
	mongoContainerOnce sync.Once
	mongoTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// StubGateway stands in for the card processor. Amounts it was asked to
// charge are kept for assertions; a repeated idempotency key replays the
// first intent like the real provider does.
type StubGateway struct {
	mu      sync.Mutex
	charged []int64
	byKey   map[string]string
}

func (g *StubGateway) CreateIntent(_ context.Context, amountCents int64, idempotencyKey string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if secret, ok := g.byKey[idempotencyKey]; ok {
		return secret, nil
	}

	g.charged = append(g.charged, amountCents)
	secret := fmt.Sprintf("pi_e2e_%d_secret_e2e", len(g.charged))
	if idempotencyKey != "" {
		if g.byKey == nil {
			g.byKey = make(map[string]string)
		}
		g.byKey[idempotencyKey] = secret
	}
	return secret, nil
}

func (g *StubGateway) Charged() []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]int64(nil), g.charged...)
}

// ------------------------------------------------------------
// per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, transactions bool) (*docstore.Store, *gin.Engine, config.Config, *StubGateway) {
	mongoInfo := startContainers(t)

	store, dbConfig := prepareDatabase(t, mongoInfo, transactions)

	gateway := &StubGateway{}
	router, cfg, app := buildE2EApp(store, dbConfig, gateway)
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready",
		"mongo_host", mongoInfo.Host,
		"mongo_port", mongoInfo.Port.Port(),
		"database", dbConfig.Name,
		"transactions", dbConfig.Transactions)

	return store, router, cfg, gateway
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startMongoContainerOnce(t)

	mongoInfo, err := getContainerHostPort(mongoTestContainer, "27017/tcp")
	require.NoError(t, err, "failed to read mongo container address")

	return mongoInfo
}

// ------------------------------------------------------------
// database preparation
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, mongoInfo ContainerInfo, transactions bool) (*docstore.Store, config.DBConfig) {
	// one database per test process
	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	dbConfig := config.NewTestConfig().DB
	dbConfig.URI = fmt.Sprintf("mongodb://%s:%s/?directConnection=true", mongoInfo.Host, mongoInfo.Port.Port())
	dbConfig.Name = dbName
	// single-node replica set; suites opt into multi-document transactions
	dbConfig.Transactions = transactions

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var (
		client     *mongo.Client
		cleanup    func()
		connectErr error
	)
	for attempts := range 5 {
		if attempts > 0 {
			time.Sleep(min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second))
			slog.Warn("Retrying database connection", "attempt", attempts+1, "error", connectErr.Error())
		}
		client, cleanup, connectErr = db.Connect(ctx, dbConfig)
		if connectErr == nil {
			break
		}
	}
	require.NoError(t, connectErr, "failed to connect to database")
	require.NotNil(t, client, "database client is nil")

	store := docstore.NewStore(client, dbConfig.Name, dbConfig.OperationTimeout)

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		if err := store.Drop(dropCtx); err != nil {
			slog.Warn("Failed to drop test database", "database", dbName, "error", err.Error())
		}
		cleanup()
	})

	require.NoError(t, store.EnsureIndexes(ctx), "failed to create indexes")
	require.NoError(t, dbtest.SeedReferenceData(store.Database()), "failed to seed reference data")

	return store, dbConfig
}

// ------------------------------------------------------------
// application wiring for e2e tests
// ------------------------------------------------------------
func buildE2EApp(store *docstore.Store, dbConfig config.DBConfig, gateway *StubGateway) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *docstore.Store { return store }),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(dbConfig)
		}),
	)

	testPaymentModule := fx.Module("testpayment",
		fx.Provide(func() commands.PaymentGateway { return gateway }),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		testPaymentModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application did not provide a router")
	}

	return router, cfg, app
}

func createTestConfig(dbConfig config.DBConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	return testConfig
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// start the mongo container once per process
// ------------------------------------------------------------
func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			Tmpfs: map[string]string{
				"/data/db": "rw,size=512m",
			},
			Cmd: []string{
				"mongod",
				"--bind_ip_all",
				"--replSet", replicaSetName,
				"--wiredTigerCacheSizeGB", "0.25",
			},
			WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
			Labels:     map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		mongoTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start mongo container")

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		require.NoError(t, initiateReplicaSet(ctx, mongoTestContainer), "failed to initiate replica set")

		t.Cleanup(func() {
			if mongoTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := mongoTestContainer.Terminate(ctx); err != nil {
					slog.Warn("Failed to terminate mongo container", "error", err.Error())
				}
			}
		})
	})
}

// initiateReplicaSet turns the fresh mongod into a one-member replica set and
// waits until it is writable primary.
func initiateReplicaSet(ctx context.Context, c testcontainers.Container) error {
	initiate := fmt.Sprintf(`rs.initiate({_id: %q, members: [{_id: 0, host: "localhost:27017"}]})`, replicaSetName)
	code, out, err := c.Exec(ctx, []string{"mongosh", "--quiet", "--eval", initiate}, tcexec.Multiplexed())
	if err != nil {
		return err
	}
	if code != 0 {
		msg, _ := io.ReadAll(out)
		return fmt.Errorf("rs.initiate exited with %d: %s", code, msg)
	}

	for attempts := range 60 {
		if attempts > 0 {
			time.Sleep(500 * time.Millisecond)
		}
		code, out, err = c.Exec(ctx, []string{"mongosh", "--quiet", "--eval", "db.hello().isWritablePrimary"}, tcexec.Multiplexed())
		if err != nil || code != 0 {
			continue
		}
		if res, _ := io.ReadAll(out); strings.TrimSpace(string(res)) == "true" {
			return nil
		}
	}
	return errors.New("replica set did not elect a primary")
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Store   *docstore.Store
	DB      *mongo.Database
	Config  config.Config
	Gateway *StubGateway

	// Transactions runs the unit of work inside multi-document
	// transactions. Set before SetupSuite.
	Transactions bool
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	store, router, cfg, gateway := setupE2EEnvironment(t, s.Transactions)
	s.Store = store
	s.DB = store.Database()
	s.Router = router
	s.Config = cfg
	s.Gateway = gateway
	require.NotNil(t, s.DB, "failed to set up database")
	require.NotEmpty(t, s.Config, "failed to load config")
	require.NotNil(t, s.Router, "failed to set up router")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupTest() {
	// Each test method can reset DB state if needed
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}
