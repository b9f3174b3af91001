package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	"rosegold_back_end/internal/config"
)

// Connections holds the backing services that were configured. Any field may
// be nil; callers fall back to in-memory implementations.
type Connections struct {
	Redis   *redis.Client
	Scylla  *gocql.Session
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
}

// Connect opens every configured service. A service that is configured but
// unreachable is an error; an unconfigured one is skipped.
func Connect(ctx context.Context, cfg config.Config) (*Connections, error) {
	conns := &Connections{}

	if cfg.Redis.Enabled() {
		client, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			conns.Close()
			return nil, err
		}
		conns.Redis = client
	} else {
		log.Println("⚠️ REDIS_HOST not set, session tokens stay in memory")
	}

	if cfg.Scylla.Enabled() {
		session, err := connectScylla(cfg.Scylla)
		if err != nil {
			conns.Close()
			return nil, err
		}
		conns.Scylla = session
	} else {
		log.Println("⚠️ ScyllaDB not configured, accounts stay in memory")
	}

	if cfg.Elastic.Enabled() {
		client, err := connectElastic(cfg.Elastic)
		if err != nil {
			conns.Close()
			return nil, err
		}
		conns.Elastic = client
	} else {
		log.Println("⚠️ ELASTIC_URL not set, product search runs in memory")
	}

	if cfg.MinIO.Enabled() {
		client, err := connectMinIO(ctx, cfg.MinIO)
		if err != nil {
			conns.Close()
			return nil, err
		}
		conns.MinIO = client
	} else {
		log.Println("⚠️ MinIO not configured, image references are served as-is")
	}

	return conns, nil
}

func (c *Connections) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️ Closing Redis: %v", err)
		}
	}
	if c.Scylla != nil {
		c.Scylla.Close()
		log.Println("🔌 ScyllaDB session closed")
	}
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host,
		Password:     cfg.Password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Host, err)
	}
	log.Println("✅ Connected to Redis")
	return client, nil
}

func connectScylla(cfg config.ScyllaConfig) (*gocql.Session, error) {
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 4
	cluster.ReconnectInterval = time.Second
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())
	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("scylla session for keyspace %s: %w", cfg.Keyspace, err)
	}
	log.Printf("✅ ScyllaDB session for keyspace '%s'", cfg.Keyspace)
	return session, nil
}

func connectElastic(cfg config.ElasticConfig) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch info: %s", res.Status())
	}

	log.Println("✅ Connected to Elasticsearch")
	return client, nil
}

func connectMinIO(ctx context.Context, cfg config.MinIOConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("minio create bucket %s: %w", cfg.Bucket, err)
		}
		log.Println("🪣 Bucket created:", cfg.Bucket)
	}

	log.Println("✅ Connected to MinIO:", cfg.Endpoint)
	return client, nil
}
