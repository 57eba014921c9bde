package service

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/mindunbind/mind-unbind/go-engine/gen/scoring"
	"github.com/mindunbind/mind-unbind/go-engine/internal/engine"
)

// #region types
// ObserveOutcome holds the per-move scoring returned by an Observe RPC.
type ObserveOutcome struct {
	MoveIndex    int
	Probability  float64
	SurpriseBits float64
	Score        float64
}

// ScoreOutcome holds the response from a GetScore RPC.
type ScoreOutcome struct {
	Score            float64
	MeanSurpriseBits float64
	Moves            int
}

// PredictOutcome holds the response from a Predict RPC.
type PredictOutcome struct {
	Probabilities []float64
	Weights       []float64
}

// #endregion types

// #region client-struct
// ScoringClient wraps the gRPC connection to a scoring server.
type ScoringClient struct {
	conn   *grpc.ClientConn
	client pb.ScoringServiceClient
}

// #endregion client-struct

// #region constructor
// NewScoringClient connects to a scoring server.
func NewScoringClient(addr string) (*ScoringClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &ScoringClient{
		conn:   conn,
		client: pb.NewScoringServiceClient(conn),
	}, nil
}

// NewScoringClientWithService creates a ScoringClient with an injected
// service implementation. Used for testing without a real connection.
func NewScoringClientWithService(svc pb.ScoringServiceClient) *ScoringClient {
	return &ScoringClient{client: svc}
}

// Close shuts down the gRPC connection.
func (c *ScoringClient) Close() error {
	return c.conn.Close()
}

// #endregion constructor

// #region start-session
// StartSession opens a session with the given configuration.
func (c *ScoringClient) StartSession(ctx context.Context, config engine.Config) (string, error) {
	resp, err := c.client.StartSession(ctx, &pb.StartSessionRequest{
		AlphabetSize: int32(config.AlphabetSize),
		MaxOrder:     int32(config.MaxOrder),
		Smoothing:    config.Smoothing,
		MixRate:      config.MixRate,
	})
	if err != nil {
		return "", fmt.Errorf("start session rpc: %w", err)
	}
	return resp.SessionId, nil
}

// #endregion start-session

// #region predict
// Predict fetches the mixture distribution for the upcoming move.
func (c *ScoringClient) Predict(ctx context.Context, sessionID string) (PredictOutcome, error) {
	resp, err := c.client.Predict(ctx, &pb.PredictRequest{SessionId: sessionID})
	if err != nil {
		return PredictOutcome{}, fmt.Errorf("predict rpc: %w", err)
	}
	return PredictOutcome{
		Probabilities: resp.Probabilities,
		Weights:       resp.Weights,
	}, nil
}

// #endregion predict

// #region observe
// Observe submits the next drawn move and returns its scoring.
func (c *ScoringClient) Observe(ctx context.Context, sessionID string, symbol int) (ObserveOutcome, error) {
	resp, err := c.client.Observe(ctx, &pb.ObserveRequest{
		SessionId: sessionID,
		Symbol:    int32(symbol),
	})
	if err != nil {
		return ObserveOutcome{}, fmt.Errorf("observe rpc: %w", err)
	}
	return ObserveOutcome{
		MoveIndex:    int(resp.MoveIndex),
		Probability:  resp.Probability,
		SurpriseBits: resp.SurpriseBits,
		Score:        resp.Score,
	}, nil
}

// #endregion observe

// #region get-score
// GetScore fetches the live score for a session.
func (c *ScoringClient) GetScore(ctx context.Context, sessionID string) (ScoreOutcome, error) {
	resp, err := c.client.GetScore(ctx, &pb.GetScoreRequest{SessionId: sessionID})
	if err != nil {
		return ScoreOutcome{}, fmt.Errorf("get score rpc: %w", err)
	}
	return ScoreOutcome{
		Score:            resp.Score,
		MeanSurpriseBits: resp.MeanSurpriseBits,
		Moves:            int(resp.Moves),
	}, nil
}

// #endregion get-score

// #region end-session
// EndSession finalizes a session, optionally archiving it server-side,
// and returns the final score.
func (c *ScoringClient) EndSession(ctx context.Context, sessionID string, archive bool) (float64, int, error) {
	resp, err := c.client.EndSession(ctx, &pb.EndSessionRequest{
		SessionId: sessionID,
		Archive:   archive,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("end session rpc: %w", err)
	}
	return resp.FinalScore, int(resp.Moves), nil
}

// #endregion end-session
