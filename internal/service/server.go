package service

//go:generate protoc --go_out=../../gen --go_opt=paths=source_relative --go-grpc_out=../../gen --go-grpc_opt=paths=source_relative -I ../../proto scoring.proto

import (
	"context"
	"errors"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/mindunbind/mind-unbind/go-engine/gen/scoring"
	"github.com/mindunbind/mind-unbind/go-engine/internal/archive"
	"github.com/mindunbind/mind-unbind/go-engine/internal/engine"
	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
)

// #region server
// Server hosts independent scoring sessions for game clients. Each session
// owns its own engine; the map is the only shared state, so sessions never
// interfere with one another.
type Server struct {
	pb.UnimplementedScoringServiceServer

	mu       sync.Mutex
	sessions map[string]*session
	store    *archive.Store // optional; nil disables archiving
}

type session struct {
	eng   *engine.Engine
	moves []archive.MoveRecord
}

// NewServer creates a scoring server. store may be nil, in which case
// EndSession archive requests are refused.
func NewServer(store *archive.Store) *Server {
	return &Server{
		sessions: make(map[string]*session),
		store:    store,
	}
}

func (s *Server) get(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "session %s not found", sessionID)
	}
	return sess, nil
}

// #endregion server

// #region start-session
// StartSession creates a fresh engine. Zero-valued fields fall back to the
// shipped defaults, so a client can send an empty request.
func (s *Server) StartSession(_ context.Context, req *pb.StartSessionRequest) (*pb.StartSessionResponse, error) {
	config := engine.DefaultConfig()
	if req.AlphabetSize != 0 {
		config.AlphabetSize = int(req.AlphabetSize)
	}
	if req.MaxOrder != 0 {
		config.MaxOrder = int(req.MaxOrder)
	}
	if req.Smoothing != 0 {
		config.Smoothing = req.Smoothing
	}
	if req.MixRate != 0 {
		config.MixRate = req.MixRate
	}

	eng, err := engine.New(config)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "start session: %v", err)
	}

	s.mu.Lock()
	s.sessions[eng.SessionID()] = &session{eng: eng}
	s.mu.Unlock()

	return &pb.StartSessionResponse{SessionId: eng.SessionID()}, nil
}

// #endregion start-session

// #region predict
// Predict returns the mixture distribution for the upcoming move.
func (s *Server) Predict(_ context.Context, req *pb.PredictRequest) (*pb.PredictResponse, error) {
	sess, err := s.get(req.SessionId)
	if err != nil {
		return nil, err
	}
	pred := sess.eng.Predict()
	return &pb.PredictResponse{
		Probabilities: pred.Dist,
		Weights:       sess.eng.Weights(),
	}, nil
}

// #endregion predict

// #region observe
// Observe reveals the next move and returns its per-move scoring.
func (s *Server) Observe(_ context.Context, req *pb.ObserveRequest) (*pb.ObserveResponse, error) {
	sess, err := s.get(req.SessionId)
	if err != nil {
		return nil, err
	}

	res, err := sess.eng.Observe(move.Move(req.Symbol))
	if err != nil {
		if errors.Is(err, engine.ErrInvalidMove) {
			return nil, status.Errorf(codes.InvalidArgument, "observe: %v", err)
		}
		return nil, status.Errorf(codes.Internal, "observe: %v", err)
	}

	sess.moves = append(sess.moves, archive.MoveRecord{
		Seq:          res.Index,
		Symbol:       res.Move,
		Probability:  res.Probability,
		SurpriseBits: res.SurpriseBits,
		ScoreAfter:   res.Score,
	})

	return &pb.ObserveResponse{
		MoveIndex:    int32(res.Index),
		Probability:  res.Probability,
		SurpriseBits: res.SurpriseBits,
		Score:        res.Score,
	}, nil
}

// #endregion observe

// #region get-score
// GetScore returns the live score, or FailedPrecondition before any move.
func (s *Server) GetScore(_ context.Context, req *pb.GetScoreRequest) (*pb.GetScoreResponse, error) {
	sess, err := s.get(req.SessionId)
	if err != nil {
		return nil, err
	}
	snap, err := sess.eng.Score()
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "score: %v", err)
	}
	return &pb.GetScoreResponse{
		Score:            snap.Score,
		MeanSurpriseBits: snap.MeanSurprise,
		Moves:            int32(snap.Moves),
	}, nil
}

// #endregion get-score

// #region end-session
// EndSession finalizes and discards a session, optionally archiving its
// stream first. An empty session ends with zero moves and no score.
func (s *Server) EndSession(_ context.Context, req *pb.EndSessionRequest) (*pb.EndSessionResponse, error) {
	sess, err := s.get(req.SessionId)
	if err != nil {
		return nil, err
	}

	resp := &pb.EndSessionResponse{Moves: int32(sess.eng.MoveCount())}
	if snap, err := sess.eng.Score(); err == nil {
		resp.FinalScore = snap.Score
	}

	if req.Archive {
		if s.store == nil {
			return nil, status.Error(codes.FailedPrecondition, "no archive configured")
		}
		config := sess.eng.Config()
		rec := archive.SessionRecord{
			SessionID:    req.SessionId,
			CreatedAt:    time.Now().UTC(),
			AlphabetSize: config.AlphabetSize,
			MaxOrder:     config.MaxOrder,
			Smoothing:    config.Smoothing,
			MixRate:      config.MixRate,
			MoveCount:    sess.eng.MoveCount(),
			FinalScore:   resp.FinalScore,
		}
		if err := s.store.RecordSession(rec, sess.moves); err != nil {
			return nil, status.Errorf(codes.Internal, "archive session: %v", err)
		}
	}

	s.mu.Lock()
	delete(s.sessions, req.SessionId)
	s.mu.Unlock()

	return resp, nil
}

// #endregion end-session
