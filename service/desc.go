// Package service exposes the search over gRPC. Requests and responses
// are google.protobuf.Struct values, so the service needs no generated
// code.
package service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "isolation.Engine"

	chooseActionMethod = "/isolation.Engine/ChooseAction"
	evaluateMethod     = "/isolation.Engine/Evaluate"
)

// EngineServer is the server API for the isolation.Engine service.
//
// ChooseAction takes {position, depth, heuristic, movetime_ms} and
// returns {action, value, opening, stats}. Evaluate takes {position,
// heuristic, player} and returns {value, terminal}.
type EngineServer interface {
	ChooseAction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterEngineServer(s grpc.ServiceRegistrar, srv EngineServer) {
	s.RegisterService(&Engine_ServiceDesc, srv)
}

func unaryHandler(method string, call func(EngineServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EngineServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(EngineServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var Engine_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ChooseAction",
			Handler:    unaryHandler(chooseActionMethod, EngineServer.ChooseAction),
		},
		{
			MethodName: "Evaluate",
			Handler:    unaryHandler(evaluateMethod, EngineServer.Evaluate),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "isolation/engine.proto",
}

// EngineClient calls an isolation.Engine service.
type EngineClient struct {
	cc grpc.ClientConnInterface
}

func NewEngineClient(cc grpc.ClientConnInterface) *EngineClient {
	return &EngineClient{cc}
}

func (c *EngineClient) ChooseAction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, chooseActionMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EngineClient) Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, evaluateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
