package grpcserver

import (
	"context"
	"errors"
	"log"

	pb "skuld/api/pb"
	"skuld/service"
)

// Server adapts CompletionService to gRPC.
type Server struct {
	pb.UnimplementedCompletionServiceServer
	svc *service.CompletionService
}

func NewServer(svc *service.CompletionService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) Submit(
	ctx context.Context,
	req *pb.SubmitRequest,
) (*pb.SubmitResponse, error) {
	seq, slot, err := s.svc.Submit(req.ClientId)
	if errors.Is(err, service.ErrFull) {
		return &pb.SubmitResponse{Status: "full"}, nil
	}
	if err != nil {
		return nil, err
	}

	log.Printf(
		"[gRPC] Submit client=%d seq=%d slot=%d",
		req.ClientId, seq, slot,
	)

	return &pb.SubmitResponse{
		Status: "ok",
		SeqId:  seq,
		Slot:   slot,
	}, nil
}

func (s *Server) Report(
	ctx context.Context,
	req *pb.ReportRequest,
) (*pb.ReportResponse, error) {
	ok, err := s.svc.Report(req.Slot, req.Mask, req.Owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &pb.ReportResponse{Status: "stale"}, nil
	}

	return &pb.ReportResponse{Status: "ok"}, nil
}

func (s *Server) Cancel(
	ctx context.Context,
	req *pb.CancelRequest,
) (*pb.CancelResponse, error) {
	ok, err := s.svc.Cancel(req.Slot, req.Owner)
	if err != nil {
		return nil, err
	}

	log.Printf(
		"[gRPC] Cancel slot=%d owner=%d ok=%v",
		req.Slot, req.Owner, ok,
	)

	if !ok {
		return &pb.CancelResponse{Status: "stale"}, nil
	}

	return &pb.CancelResponse{Status: "ok"}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetRecent(
	ctx context.Context,
	req *pb.RecentRequest,
) (*pb.RecentResponse, error) {
	recs := s.svc.Recent()

	resp := &pb.RecentResponse{
		Completions: make([]*pb.CompletionEntry, 0, len(recs)),
	}

	for _, r := range recs {
		resp.Completions = append(resp.Completions, &pb.CompletionEntry{
			SeqId:      r.Seq,
			Slot:       r.Slot,
			Mask:       r.Mask,
			Cancelled:  r.Cancelled,
			ReleasedAt: r.Released,
		})
	}

	return resp, nil
}
