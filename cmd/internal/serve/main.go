package serve

import (
	"context"
	"flag"
	"fmt"
	"net"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/service"
)

type Command struct {
	port    int
	maxTime time.Duration
	opt     opt.Agent
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve the engine via gRPC" }
func (*Command) Usage() string {
	return `serve [flags]

Serve the isolation.Engine gRPC service (ChooseAction, Evaluate).
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55431, "bind port")
	flags.DurationVar(&c.maxTime, "max-time", opt.Defaults.LimitOr(10*time.Second), "cap on per-request movetime")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Error().Err(err).Msg("failed to listen")
		return subcommands.ExitFailure
	}
	srv := &service.Server{
		Defaults:    c.opt.BuildConfig(nil),
		MaxMoveTime: c.maxTime,
	}
	grpcServer := grpc.NewServer()
	service.RegisterEngineServer(grpcServer, srv)

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	log.Info().Int("port", c.port).Stringer("service", srv).Msg("listening")
	if err := grpcServer.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
