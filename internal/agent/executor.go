package agent

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/festpass/festpass/internal/common"
	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

// Argument keys that carry caller credentials, in lookup order. They are
// consumed by the executor and must never reach the backing API.
var reservedArgKeys = []string{"auth_token", "token"}

// Executor performs tool calls against the backing API over HTTP. Every
// failure mode is folded into the returned result; Execute never panics and
// never returns an error to the caller.
type Executor struct {
	client      *http.Client
	logger      *log.Logger
	timeout     time.Duration
	requireAuth bool
	tokenDigest [sha256.Size]byte
}

// NewExecutor creates an executor using the shared instrumented HTTP client.
// An empty apiToken disables authentication checks.
func NewExecutor(client *http.Client, logger *log.Logger, apiToken string, timeout time.Duration) *Executor {
	e := &Executor{
		client:  client,
		logger:  logger,
		timeout: timeout,
	}
	if apiToken != "" {
		e.requireAuth = true
		e.tokenDigest = sha256.Sum256([]byte(apiToken))
	}
	return e
}

// Execute runs one tool call. Reserved credential keys are stripped from the
// arguments and stand in for the caller credential when none is passed
// explicitly. Path placeholders consume same-named arguments, and leftovers
// are routed to the query string for GET calls or a JSON body otherwise.
func (e *Executor) Execute(ctx context.Context, def domain.ToolDefinition, args map[string]any, authToken string) (result domain.ToolCallResult) {
	ctx, span := telemetry.Start(ctx)
	defer span.End()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("tool %s panicked: %v", def.Name, r)
			result = failureResult(fmt.Sprintf("tool %s failed unexpectedly", def.Name), nil)
		}
		if !result.Success {
			telemetry.RecordErrorAndStatus(span, fmt.Errorf("%s", result.Error))
		} else {
			telemetry.RecordErrorAndStatus(span, nil)
		}
	}()

	if e.requireAuth {
		token := authToken
		if token == "" {
			token = reservedTokenArg(args)
		}
		if !e.tokenMatches(token) {
			return failureResult("authentication failed", common.Ptr(http.StatusUnauthorized))
		}
	}

	remaining := make(map[string]any, len(args))
	for key, value := range args {
		if slices.Contains(reservedArgKeys, key) {
			continue
		}
		remaining[key] = value
	}

	path, err := fillPlaceholders(def.Path, remaining)
	if err != nil {
		return failureResult(err.Error(), nil)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := e.buildRequest(callCtx, def, path, remaining)
	if err != nil {
		return failureResult(fmt.Sprintf("building request for tool %s: %v", def.Name, err), nil)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return failureResult(fmt.Sprintf("calling tool %s: %v", def.Name, err), nil)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failureResult(fmt.Sprintf("reading tool %s response: %v", def.Name, err), nil)
	}

	data := parseBody(body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.ToolCallResult{
			Success:    false,
			Data:       data,
			Error:      fmt.Sprintf("tool %s returned status %d", def.Name, resp.StatusCode),
			StatusCode: common.Ptr(resp.StatusCode),
		}
	}

	return domain.ToolCallResult{
		Success:    true,
		Data:       data,
		StatusCode: common.Ptr(resp.StatusCode),
	}
}

// reservedTokenArg returns the credential supplied through a reserved
// argument key, preferring auth_token over token.
func reservedTokenArg(args map[string]any) string {
	for _, key := range reservedArgKeys {
		if value, ok := args[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// tokenMatches compares digests so the comparison cost does not depend on how
// much of the token matches, nor on its length.
func (e *Executor) tokenMatches(token string) bool {
	digest := sha256.Sum256([]byte(token))
	return subtle.ConstantTimeCompare(digest[:], e.tokenDigest[:]) == 1
}

// fillPlaceholders substitutes {name} segments with same-named arguments,
// removing consumed arguments so they are not duplicated into the query or body.
func fillPlaceholders(path string, args map[string]any) (string, error) {
	var missing string
	filled := pathPlaceholderRe.ReplaceAllStringFunc(path, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := args[name]
		if !ok {
			missing = name
			return match
		}
		delete(args, name)
		return url.PathEscape(fmt.Sprint(value))
	})
	if missing != "" {
		return "", fmt.Errorf("missing required path argument %q", missing)
	}
	return filled, nil
}

func (e *Executor) buildRequest(ctx context.Context, def domain.ToolDefinition, path string, args map[string]any) (*http.Request, error) {
	target := strings.TrimSuffix(def.BaseURL, "/") + path

	if def.Method == http.MethodGet {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		query := req.URL.Query()
		for key, value := range args {
			if value == nil {
				continue
			}
			query.Set(key, fmt.Sprint(value))
		}
		req.URL.RawQuery = query.Encode()
		return req, nil
	}

	payload, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, def.Method, target, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// parseBody decodes a JSON response when possible and falls back to raw text.
func parseBody(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	var data any
	if err := json.Unmarshal(trimmed, &data); err != nil {
		return string(body)
	}
	return data
}

func failureResult(message string, statusCode *int) domain.ToolCallResult {
	return domain.ToolCallResult{
		Success:    false,
		Error:      message,
		StatusCode: statusCode,
	}
}

// InitToolExecutor is responsible for initializing the tool executor dependency.
type InitToolExecutor struct {
	HttpClient  *http.Client  `resolve:""`
	Logger      *log.Logger   `resolve:""`
	APIToken    string        `config:"AGENT_API_TOKEN" default:""`
	CallTimeout time.Duration `config:"AGENT_TOOL_TIMEOUT" default:"10s"`
}

// Initialize registers the ToolExecutor in the dependency container.
func (ite InitToolExecutor) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ToolExecutor](NewExecutor(ite.HttpClient, ite.Logger, ite.APIToken, ite.CallTimeout))
	return ctx, nil
}
