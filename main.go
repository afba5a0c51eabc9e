package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/virtscope/vm-inventory/pkg/common"
	"github.com/virtscope/vm-inventory/pkg/index"
	"github.com/virtscope/vm-inventory/pkg/messaging"
	"github.com/virtscope/vm-inventory/pkg/server"
	"github.com/virtscope/vm-inventory/pkg/storage"
)

var dataPath = flag.String("data", "data", "path for inventory snapshots")
var basePath = flag.String("base-path", "/report", "base path for click-through links")
var publish = flag.Bool("publish", false, "publish the local snapshot to the inventory feed and exit")

var listenAddress = ":8080"
var rabbitUrl = os.Getenv("RABBIT_URL")
var rabbitPrefix = os.Getenv("RABBIT_PREFIX")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")

func init() {
	flag.Parse()
	if addr := os.Getenv("LISTEN_ADDRESS"); addr != "" {
		listenAddress = addr
	}
	if rabbitPrefix == "" {
		rabbitPrefix = "inventory"
	}
}

func main() {
	idx := index.NewIndex()

	disk := storage.NewDiskStorage(*dataPath)
	if *publish {
		publishSnapshot(disk)
		return
	}
	if items, err := disk.LoadSnapshot(); err != nil {
		log.Printf("no local inventory snapshot: %v", err)
	} else {
		log.Printf("loaded %d records from local snapshot", len(items))
		idx.SetItems(items)
	}

	var rdb *storage.RedisStorage
	if redisUrl != "" {
		rdb = storage.NewRedisStorage(redisUrl, redisPassword, 0)
		defer rdb.Close()
		if items, err := rdb.LoadSnapshot(); err != nil {
			log.Printf("no shared inventory snapshot: %v", err)
		} else {
			log.Printf("loaded %d records from redis", len(items))
			idx.SetItems(items)
		}
		rdb.OnChange(idx.SetItems)
	}

	if rabbitUrl != "" {
		conn, err := amqp.Dial(rabbitUrl)
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		defer conn.Close()
		if err := messaging.ListenForInventoryChanges(conn, rabbitPrefix, idx); err != nil {
			log.Fatalf("failed to start inventory feed: %v", err)
		}
	}

	srv := &server.WebServer{Index: idx, BasePath: *basePath}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", srv.Handler())

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	httpServer := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)

	saveSnapshot := func(ctx context.Context) error {
		if idx.Loading() {
			return nil
		}
		return disk.SaveSnapshot(idx.Items())
	}
	common.RunServerWithShutdown(httpServer, "vm inventory browser", timeouts.Shutdown, timeouts.Hook, saveSnapshot)
}

// publishSnapshot pushes the local snapshot onto the inventory feed, for
// seeding other instances.
func publishSnapshot(disk *storage.DiskStorage) {
	if rabbitUrl == "" {
		log.Fatal("RABBIT_URL is required to publish")
	}
	items, err := disk.LoadSnapshot()
	if err != nil {
		log.Fatalf("cannot load snapshot to publish: %v", err)
	}
	conn, err := amqp.Dial(rabbitUrl)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer conn.Close()
	if err := messaging.PublishUpserts(conn, rabbitPrefix, items); err != nil {
		log.Fatalf("failed to publish snapshot: %v", err)
	}
	log.Printf("published %d records to %s", len(items), rabbitPrefix)
}
