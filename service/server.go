package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/match"
	"github.com/nelhage/isolation/notation"
)

// Server implements EngineServer with a fresh agent per request.
type Server struct {
	// Defaults fills in depth and heuristic when a request omits them.
	Defaults ai.Config
	// MaxMoveTime caps movetime_ms; zero means no cap.
	MaxMoveTime time.Duration
}

var _ EngineServer = &Server{}

func (s *Server) position(req *structpb.Struct) (*isolation.Position, error) {
	f, ok := req.Fields["position"]
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "missing position")
	}
	p, err := notation.ParsePosition(f.GetStringValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "position: %v", err)
	}
	return p, nil
}

func (s *Server) config(req *structpb.Struct) (ai.Config, error) {
	cfg := s.Defaults
	if f, ok := req.Fields["depth"]; ok {
		cfg.Depth = int(f.GetNumberValue())
	}
	if f, ok := req.Fields["heuristic"]; ok {
		h, err := ai.ParseHeuristic(f.GetStringValue())
		if err != nil {
			return cfg, status.Error(codes.InvalidArgument, err.Error())
		}
		cfg.Heuristic = h
	}
	if cfg.Depth < 0 {
		return cfg, status.Errorf(codes.InvalidArgument, "bad depth: %d", cfg.Depth)
	}
	return cfg, nil
}

func (s *Server) ChooseAction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.position(req)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config(req)
	if err != nil {
		return nil, err
	}
	var limit time.Duration
	if f, ok := req.Fields["movetime_ms"]; ok {
		limit = time.Duration(f.GetNumberValue()) * time.Millisecond
	}
	if s.MaxMoveTime > 0 && (limit == 0 || limit > s.MaxMoveTime) {
		limit = s.MaxMoveTime
	}

	ag := ai.NewAgent(p.ToMove(), cfg)
	a, err := match.Turn(ctx, ag, ai.Adapt(p), limit)
	switch {
	case errors.Is(err, match.ErrNoAction):
		return nil, status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, ai.ErrContractViolation):
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}

	st, c := ag.Stats(), ag.Context()
	log.Info().
		Int("ply", p.PlyCount()).
		Str("action", notation.FormatMove(p.Config(), a)).
		Stringer("value", c.LastValue).
		Msg("[serve] choose-action")

	return structpb.NewStruct(map[string]interface{}{
		"action":  notation.FormatMove(p.Config(), a),
		"value":   c.LastValue.String(),
		"opening": c.Opening,
		"stats": map[string]interface{}{
			"depth":      st.Depth,
			"visited":    float64(st.Visited),
			"evaluated":  float64(st.Evaluated),
			"terminal":   float64(st.Terminal),
			"cutoffs":    float64(st.Cutoffs),
			"elapsed_ms": float64(st.Elapsed) / float64(time.Millisecond),
		},
	})
}

func (s *Server) Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.position(req)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config(req)
	if err != nil {
		return nil, err
	}
	pl := p.ToMove()
	if f, ok := req.Fields["player"]; ok {
		switch name := f.GetStringValue(); name {
		case isolation.Player1.String():
			pl = isolation.Player1
		case isolation.Player2.String():
			pl = isolation.Player2
		default:
			return nil, status.Errorf(codes.InvalidArgument, "unknown player: %q", name)
		}
	}

	st := ai.Adapt(p)
	var v float64
	terminal := st.TerminalTest()
	if terminal {
		v = st.Utility(pl)
	} else {
		v = ai.Evaluate(cfg.Heuristic, st, pl)
	}
	return structpb.NewStruct(map[string]interface{}{
		"value":    ai.Score(v).String(),
		"terminal": terminal,
		"player":   pl.String(),
	})
}

func (s *Server) String() string {
	return fmt.Sprintf("%s(depth=%d heuristic=%s)", ServiceName, s.Defaults.Depth, s.Defaults.Heuristic)
}
