// Package mcp exposes the cipher machine and the settings search as Model
// Context Protocol tools.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bombe/internal/alphabet"
	"bombe/internal/config"
	"bombe/internal/logging"
	"bombe/internal/machine"
	"bombe/internal/scenarios"
	"bombe/internal/search"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	DefaultBreakTimeout = 2 * time.Minute
	DefaultWorkers      = 4
)

// Server wraps the MCP SDK server.
type Server struct {
	MCPServer *sdkmcp.Server
	// Engine is copied for every break call; Workers and MaxTrials act as
	// defaults when the caller leaves them zero.
	Engine search.Engine
}

// NewServer creates an MCP server with the machine and search tools.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	s := &Server{Engine: search.Engine{Workers: DefaultWorkers}}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "bombe", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves the tools over stdin/stdout until ctx is done or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_scenarios",
		Description: "List the embedded sample intercepts with the settings categories each one leaves unknown.",
	}, s.handleListScenarios)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "encode",
		Description: "Encipher or decipher text with a fully specified machine. The operation is its own inverse.",
	}, s.handleEncode)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "break",
		Description: "Recover unknown machine settings from a crib. Takes a scenario name or an inline YAML/JSON task.",
	}, s.handleBreak)
}

// --- Tool input/output types ---

type listScenariosInput struct{}

type scenarioSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Mode        string `json:"mode"`
	Crib        string `json:"crib,omitempty"`
}

type listScenariosOutput struct {
	Scenarios []scenarioSummary `json:"scenarios"`
}

type encodeInput struct {
	Text      string   `json:"text" jsonschema:"letters A-Z to encipher or decipher"`
	Rotors    []string `json:"rotors" jsonschema:"rotor types, leftmost first (e.g. I II III)"`
	Reflector string   `json:"reflector" jsonschema:"reflector type A, B or C"`
	Rings     []int    `json:"ring_settings" jsonschema:"ring settings 1-26, leftmost first"`
	Positions string   `json:"starting_positions" jsonschema:"starting window letters, leftmost first (e.g. AAZ)"`
	Plugs     []string `json:"plugboard,omitempty" jsonschema:"plugboard pairs such as KI"`
}

type encodeOutput struct {
	Output string `json:"output"`
}

type breakInput struct {
	Scenario  string `json:"scenario,omitempty" jsonschema:"embedded scenario name (see list_scenarios)"`
	Task      string `json:"task,omitempty" jsonschema:"inline task in YAML or JSON; null fields are searched"`
	Workers   int    `json:"workers,omitempty" jsonschema:"concurrent testers (default 4)"`
	MaxTrials int64  `json:"max_trials,omitempty" jsonschema:"stop after this many candidates (0 = no limit)"`
	TimeoutMS int    `json:"timeout_ms,omitempty" jsonschema:"max search time in milliseconds (default 120000)"`
}

// --- Tool handlers ---

func (s *Server) handleListScenarios(_ context.Context, _ *sdkmcp.CallToolRequest, _ listScenariosInput) (*sdkmcp.CallToolResult, listScenariosOutput, error) {
	out := listScenariosOutput{Scenarios: []scenarioSummary{}}
	for _, name := range scenarios.List() {
		task, err := scenarios.LoadTask(name)
		if err != nil {
			return nil, listScenariosOutput{}, err
		}
		mode, err := search.SelectMode(task)
		if err != nil {
			return nil, listScenariosOutput{}, fmt.Errorf("scenario %q: %w", name, err)
		}
		out.Scenarios = append(out.Scenarios, scenarioSummary{
			Name:        name,
			Description: task.Description,
			Mode:        string(mode),
			Crib:        task.Crib,
		})
	}
	return nil, out, nil
}

func (s *Server) handleEncode(_ context.Context, _ *sdkmcp.CallToolRequest, input encodeInput) (*sdkmcp.CallToolResult, encodeOutput, error) {
	m, err := machine.Build(machine.Settings{
		Rotors:    machine.ParseRotors(strings.Join(input.Rotors, " ")),
		Positions: strings.ToUpper(input.Positions),
		Rings:     input.Rings,
		Reflector: input.Reflector,
		Plugs:     input.Plugs,
	})
	if err != nil {
		return nil, encodeOutput{}, fmt.Errorf("encode: %w", err)
	}
	text := strings.ToUpper(strings.Join(strings.Fields(input.Text), ""))
	if !alphabet.Valid(text) {
		return nil, encodeOutput{}, fmt.Errorf("encode: text must be letters A-Z, got %q", input.Text)
	}
	out, err := m.Encode(text)
	if err != nil {
		return nil, encodeOutput{}, fmt.Errorf("encode: %w", err)
	}
	return nil, encodeOutput{Output: out}, nil
}

func (s *Server) handleBreak(ctx context.Context, _ *sdkmcp.CallToolRequest, input breakInput) (*sdkmcp.CallToolResult, search.Result, error) {
	logger := logging.New("mcp")

	task, err := loadBreakTask(input)
	if err != nil {
		return nil, search.Result{}, err
	}

	timeout := DefaultBreakTimeout
	if input.TimeoutMS > 0 {
		timeout = time.Duration(input.TimeoutMS) * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	e := s.Engine
	if input.Workers > 0 {
		e.Workers = input.Workers
	}
	if input.MaxTrials > 0 {
		e.MaxTrials = input.MaxTrials
	}
	res, err := e.Run(ctx, task)
	if err != nil {
		return nil, search.Result{}, fmt.Errorf("break: %w", err)
	}
	logger.Info("break finished", "run_id", res.RunID, "outcome", string(res.Outcome), "trials", res.Trials)
	return nil, *res, nil
}

func loadBreakTask(input breakInput) (*config.Task, error) {
	switch {
	case input.Scenario != "" && input.Task != "":
		return nil, fmt.Errorf("break: give either scenario or task, not both")
	case input.Scenario != "":
		return scenarios.LoadTask(input.Scenario)
	case input.Task != "":
		f, err := config.Load([]byte(input.Task), "")
		if err != nil {
			return nil, err
		}
		return config.Normalize(*f)
	}
	return nil, fmt.Errorf("break: scenario or task is required")
}
