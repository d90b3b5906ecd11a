package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/notation"
)

// Client drives an IEI engine, usually a subprocess.
type Client struct {
	cmd *exec.Cmd

	stdinPipe  io.WriteCloser
	stdoutPipe io.ReadCloser

	mu    sync.Mutex
	read  *bufio.Reader
	write io.Writer

	gameid int
}

// NewClient starts cmdline and performs the iei handshake.
func NewClient(cmdline []string) (*Client, error) {
	if len(cmdline) == 0 {
		return nil, fmt.Errorf("iei: empty command line")
	}
	cmd := exec.Command(cmdline[0], cmdline[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		stdout.Close()
		return nil, fmt.Errorf("start %s: %w", cmdline[0], err)
	}

	cl := &Client{
		cmd:        cmd,
		stdinPipe:  stdin,
		stdoutPipe: stdout,
		read:       bufio.NewReader(stdout),
		write:      stdin,
	}
	if err := cl.handshake(); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

// Connect speaks IEI over an existing reader and writer.
func Connect(r io.Reader, w io.Writer) (*Client, error) {
	cl := &Client{
		read:  bufio.NewReader(r),
		write: w,
	}
	if err := cl.handshake(); err != nil {
		return nil, err
	}
	return cl, nil
}

func (c *Client) handshake() error {
	if _, err := c.sendCommand("iei", "ieiok"); err != nil {
		return fmt.Errorf("iei handshake: %w", err)
	}
	return nil
}

// NewGame starts a game on a board of the given size. Players from
// earlier games stop working.
func (c *Client) NewGame(cfg isolation.Config) (*Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameid++
	p := isolation.New(cfg)
	if _, err := c.sendCommand(fmt.Sprintf("ieinewgame %s", notation.FormatSize(p.Config())), ""); err != nil {
		return nil, err
	}
	if _, err := c.sendCommand("isready", "readyok"); err != nil {
		return nil, err
	}
	return &Player{
		client: c,
		gameid: c.gameid,
	}, nil
}

// Close asks the engine to quit and, for a subprocess, waits for it
// to exit.
func (c *Client) Close() {
	c.sendCommand("quit", "")
	if c.cmd == nil {
		return
	}
	c.stdinPipe.Close()
	c.stdoutPipe.Close()
	c.cmd.Wait()
}

func (c *Client) sendCommand(cmd string, expect string) ([]string, error) {
	if _, err := fmt.Fprintln(c.write, cmd); err != nil {
		return nil, err
	}
	if expect == "" {
		return nil, nil
	}

	// skip info and other chatter until the expected reply
	for {
		line, err := c.read.ReadString('\n')
		if err != nil {
			return nil, err
		}
		if words := strings.Fields(line); len(words) > 0 && words[0] == expect {
			return words, nil
		}
	}
}

// Player is one side of a game played by a Client's engine.
type Player struct {
	client *Client
	gameid int
}

// deadline slack left for the round trip
const slack = 5 * time.Millisecond

func (p *Player) ChooseAction(s ai.State, out ai.Publisher) error {
	return p.ChooseActionContext(context.Background(), s, out)
}

// ChooseActionContext asks the engine for a move, passing the time
// left before ctx's deadline as movetime. If the engine answers
// "bestmove none" nothing is published.
func (p *Player) ChooseActionContext(ctx context.Context, s ai.State, out ai.Publisher) error {
	pos, ok := ai.Unwrap(s)
	if !ok {
		return fmt.Errorf("iei: cannot send %T to an engine", s)
	}
	c := p.client
	c.mu.Lock()
	defer c.mu.Unlock()
	if p.gameid != c.gameid {
		return fmt.Errorf("iei: game %d is over, engine is on game %d", p.gameid, c.gameid)
	}

	if _, err := c.sendCommand("isready", "readyok"); err != nil {
		return err
	}
	if _, err := c.sendCommand("position pos "+notation.FormatPosition(pos), ""); err != nil {
		return fmt.Errorf("send position: %w", err)
	}
	goCmd := "go"
	if deadline, ok := ctx.Deadline(); ok {
		budget := time.Until(deadline) - slack
		if budget < time.Millisecond {
			budget = time.Millisecond
		}
		goCmd = fmt.Sprintf("%s movetime %s", goCmd, formatTime(budget))
	}
	bestmove, err := c.sendCommand(goCmd, "bestmove")
	if err != nil {
		return err
	}
	if len(bestmove) != 2 {
		return fmt.Errorf("bad bestmove: %q", strings.Join(bestmove, " "))
	}
	if bestmove[1] == "none" {
		return nil
	}
	a, err := notation.ParseMove(pos.Config(), bestmove[1])
	if err != nil {
		return fmt.Errorf("unable to parse move %q: %w", bestmove[1], err)
	}
	out.Publish(a)
	return nil
}
