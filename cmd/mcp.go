package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/JakobSachs/jlisp/lisp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve an MCP tool server on stdio",
	Long: `Serve a Model Context Protocol server on stdin and stdout.  The jlisp_eval
tool evaluates source text in a root scope that persists between calls.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig()
		if err != nil {
			log.Fatal(err)
		}
		evaluator, cleanup, err := newToolEvaluator(config)
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
		if err := server.ServeStdio(newMCPServer(evaluator)); err != nil {
			log.Printf("server error: %v", err)
		}
	},
}

// toolEvaluator evaluates tool requests in one root scope.  A runtime only
// evaluates one expression at a time so requests are serialized.
type toolEvaluator struct {
	mu    sync.Mutex
	rt    *lisp.Runtime
	scope lisp.Scope
	out   bytes.Buffer
}

func newToolEvaluator(config *Config) (*toolEvaluator, func(), error) {
	ev := &toolEvaluator{}
	rt, scope, cleanup, err := newRuntime(config, &ev.out)
	if err != nil {
		return nil, nil, err
	}
	ev.rt = rt
	ev.scope = scope
	return ev, cleanup, nil
}

// eval evaluates every expression in text.  It returns the text printed while
// evaluating followed by the value of the last expression.
func (ev *toolEvaluator) eval(text string) (string, error) {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	ev.out.Reset()
	defer ev.out.Reset()
	n := 0
	v, err := ev.rt.LoadEach("<expr>", strings.NewReader(text), ev.scope, func(*lisp.LVal) {
		n++
	})
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", fmt.Errorf("no expression")
	}
	var result strings.Builder
	result.Write(ev.out.Bytes())
	result.WriteString(v.String())
	return result.String(), nil
}

func (ev *toolEvaluator) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := ev.eval(expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func newMCPServer(ev *toolEvaluator) *server.MCPServer {
	s := server.NewMCPServer(
		"jlisp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)
	s.AddTool(
		mcp.NewTool("jlisp_eval",
			mcp.WithDescription("Evaluate jlisp source text. Definitions persist between calls. Returns printed output followed by the value of the last expression."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Source text to evaluate, e.g. (+ 1 2) or (fun {sq x} {* x x})"),
			),
		),
		ev.handleEval,
	)
	return s
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
