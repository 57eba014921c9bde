package main

import (
	"flag"
	"log"
	"net"
	"os"

	"google.golang.org/grpc"

	pb "github.com/mindunbind/mind-unbind/go-engine/gen/scoring"
	"github.com/mindunbind/mind-unbind/go-engine/internal/archive"
	"github.com/mindunbind/mind-unbind/go-engine/internal/service"
)

// #region main
func main() {
	addr := flag.String("addr", envOr("SCORED_ADDR", "localhost:50061"), "listen address")
	dbPath := flag.String("db", envOr("SCORED_DB", ""), "session archive path (empty disables archiving)")
	flag.Parse()

	var store *archive.Store
	if *dbPath != "" {
		var err error
		store, err = archive.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("failed to open archive: %v", err)
		}
		defer store.Close()
	}

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", *addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterScoringServiceServer(grpcServer, service.NewServer(store))

	if store != nil {
		log.Printf("scoring server ready on %s (archive: %s)", *addr, *dbPath)
	} else {
		log.Printf("scoring server ready on %s (archiving disabled)", *addr)
	}
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
