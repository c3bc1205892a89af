package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"path/filepath"
	"time"

	"google.golang.org/grpc"

	"skuld/api/grpcserver"
	pb "skuld/api/pb"

	"skuld/domain/mergebuf"
	"skuld/infra/kafka"
	"skuld/infra/memory"
	"skuld/infra/sequence"
	entrywal "skuld/infra/wal/entry"
	exitwal "skuld/infra/wal/exit"
	"skuld/jobs/broadcaster"
	"skuld/service"
	"skuld/snapshot"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:             cfg.EntryWALDir,
		SegmentSize:     cfg.SegmentSize,
		SegmentDuration: cfg.SegmentDuration.Std(),
	})
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}
	defer entryWAL.Close()

	// ---------------- Exit outbox ----------------

	outbox, err := exitwal.Open(cfg.OutboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer outbox.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Memory ----------------

	pool := memory.NewPool(func() *service.CompletionRecord {
		return &service.CompletionRecord{}
	})
	retired := memory.NewRing(1 << 18)
	staging := memory.NewRing(1 << 16)
	reader := snapshot.NewReader()

	// ---------------- Domain ----------------

	buf := mergebuf.New(mergebuf.Config{
		Capacity:     cfg.Capacity,
		Lanes:        cfg.Lanes,
		AllocWidth:   cfg.AllocWidth,
		MergeWidth:   cfg.MergeWidth,
		ReleaseWidth: cfg.ReleaseWidth,
	})

	// ---------------- Service ----------------

	svc := service.NewCompletionService(
		buf,
		pool,
		retired,
		staging,
		reader,
		seqGen,
		entryWAL,
		outbox,
	)

	// ---------------- Recovery ----------------

	snapshotPath := filepath.Join(cfg.SnapshotDir, "snapshot.bin")
	if err := svc.Recover(snapshotPath, cfg.EntryWALDir); err != nil {
		log.Fatalf("recovery failed: %v", err)
	}

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(cfg.EpochInterval.Std())
		defer ticker.Stop()
		for range ticker.C {
			svc.AdvanceEpoch()
		}
	}()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval.Std())

	bc, err := broadcaster.New(outbox, cfg.KafkaBrokers, cfg.CompletionTopic)
	if err != nil {
		log.Fatalf("broadcaster init failed: %v", err)
	}
	defer bc.Close()
	bc.Start(ctx)

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.FragmentTopic, cfg.FragmentGroup)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx, svc.EnqueueFragment); err != nil && ctx.Err() == nil {
			log.Printf("[kafka] consumer stopped: %v", err)
		}
	}()

	go func() {
		_ = svc.Run(ctx, cfg.EngineTick.Std())
	}()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterCompletionServiceServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	fmt.Printf("🚀 Skuld Engine running on %s\n", cfg.GRPCAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
