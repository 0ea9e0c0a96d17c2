package mcp

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/ordercheck"
	"github.com/aretw0/ordercheck/pkg/adapters/lines"
	"github.com/aretw0/ordercheck/pkg/classifier"
	"github.com/aretw0/ordercheck/pkg/domain"
	"github.com/aretw0/ordercheck/pkg/observability"
	"github.com/aretw0/ordercheck/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// ClassifyWordsArgs are the arguments of the classify_words tool.
type ClassifyWordsArgs struct {
	Words string `mapstructure:"words"`
}

// ClassifyWordArgs are the arguments of the classify_word tool.
type ClassifyWordArgs struct {
	Word string `mapstructure:"word"`
}

// Server exposes the classifier as MCP tools.
type Server struct {
	metrics   *observability.Metrics
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. metrics may be nil.
func NewServer(metrics *observability.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		metrics:   metrics,
		logger:    logger,
		mcpServer: server.NewMCPServer("ordercheck-mcp", ordercheck.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	wordsTool := mcp.NewTool("classify_words",
		mcp.WithDescription("Classify newline-separated words as IN ORDER, REVERSE ORDER or NOT IN ORDER."),
		mcp.WithString("words", mcp.Required(), mcp.Description("Words, one per line")),
	)
	s.mcpServer.AddTool(wordsTool, s.handleClassifyWords)

	wordTool := mcp.NewTool("classify_word",
		mcp.WithDescription("Classify a single word by the code-point order of its characters."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The word to classify")),
		mcp.WithOutputSchema[runner.JSONResult](),
	)
	s.mcpServer.AddTool(wordTool, mcp.NewStructuredToolHandler(s.handleClassifyWord))
}

func (s *Server) handleClassifyWords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args ClassifyWordsArgs
	if err := mapstructure.Decode(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	var out []string
	for res := range runner.Results(lines.Scan(bufio.NewReader(strings.NewReader(args.Words)))) {
		s.observe(res)
		out = append(out, res.String())
	}
	s.logger.Debug("MCP classify_words", "count", len(out))
	return mcp.NewToolResultText(strings.Join(out, "\n")), nil
}

func (s *Server) handleClassifyWord(ctx context.Context, request mcp.CallToolRequest, raw map[string]interface{}) (runner.JSONResult, error) {
	var args ClassifyWordArgs
	if err := mapstructure.Decode(raw, &args); err != nil {
		return runner.JSONResult{}, fmt.Errorf("invalid arguments: %w", err)
	}
	res := classifier.Result(args.Word)
	s.observe(res)
	return runner.NewJSONResult(res), nil
}

func (s *Server) observe(res domain.OrderResult) {
	if s.metrics != nil {
		s.metrics.Observe(res)
	}
}
