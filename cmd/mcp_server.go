package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/josephgoksu/complexity-hook/internal/complexity"
	"github.com/josephgoksu/complexity-hook/internal/logger"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// AnalyzeComplexityParams are the arguments of the analyze_complexity tool.
type AnalyzeComplexityParams struct {
	Prompt string `json:"prompt" jsonschema:"the request text to score"`
}

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server exposing the complexity analyzer",
	Long: `Start a Model Context Protocol (MCP) server so AI tools can ask for a
complexity assessment before deciding how to handle a request.

The server provides the analyze_complexity tool, which takes {"prompt": "..."}
and returns the same JSON assessment the hook prints.

The server runs over stdio until the client disconnects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	// NOTE: MCP uses stdio transport. stdout MUST be pure JSON-RPC.
	// All status/debug output goes to stderr only.
	cfg := loadAppConfig(os.Stderr)
	log := newLogger(cfg, os.Stderr)
	defer func() { _ = log.Close() }()

	server := newMCPServer(complexity.NewDetector(), log)

	fmt.Fprintln(os.Stderr, "complexity-hook MCP server starting...")
	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func newMCPServer(detector *complexity.Detector, log *logger.Logger) *mcpsdk.Server {
	impl := &mcpsdk.Implementation{
		Name:    "complexity-hook",
		Version: version,
	}
	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			if viper.GetBool("verbose") {
				fmt.Fprintf(os.Stderr, "[DEBUG] Client initialized\n")
			}
		},
	}
	server := mcpsdk.NewServer(impl, serverOpts)

	tool := &mcpsdk.Tool{
		Name: "analyze_complexity",
		Description: "Score how complex a user request looks (architecture, planning, comparisons, multi-step work) " +
			"and advise whether to delegate it to a planning/reasoning process. Returns JSON with should_delegate, " +
			"confidence, complexity_score, triggers, indicators_found and reason.",
	}
	mcpsdk.AddTool(server, tool, analyzeComplexityHandler(detector, log))

	return server
}

func analyzeComplexityHandler(detector *complexity.Detector, log *logger.Logger) mcpsdk.ToolHandlerFor[AnalyzeComplexityParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[AnalyzeComplexityParams]) (*mcpsdk.CallToolResultFor[any], error) {
		prompt := params.Arguments.Prompt
		if strings.TrimSpace(prompt) == "" {
			return mcpValidationErrorResponse("prompt", "must be a non-empty string")
		}

		assessment := detector.Analyze(prompt)
		log.Debug("mcp assessment",
			zap.Bool("should_delegate", assessment.ShouldDelegate),
			zap.Int("complexity_score", assessment.ComplexityScore),
		)

		data, err := json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			return mcpErrorResponse(fmt.Errorf("encode assessment: %w", err))
		}

		content := []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}}
		if advisory := assessment.Advisory(); advisory != "" {
			content = append(content, &mcpsdk.TextContent{Text: advisory})
		}
		return &mcpsdk.CallToolResultFor[any]{Content: content}, nil
	}
}

// mcpErrorResponse wraps an error in an MCP tool result with IsError=true.
// Tool errors belong in the result, not the protocol, so the client can see them.
func mcpErrorResponse(err error) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}, nil
}

// mcpValidationErrorResponse wraps a validation error with IsError=true.
func mcpValidationErrorResponse(field, message string) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: fmt.Sprintf("Validation error: %s %s", field, message)}},
		IsError: true,
	}, nil
}
