package recipescaler

import (
	"context"
	"net/http"

	"recipescaler/tools"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type SlackClient interface {
	PostMessage(ctx context.Context, channel string, message string) error
	PostScaledRecipe(ctx context.Context, channel string, recipe tools.ScaledRecipe) error
}

type ToolProvider interface {
	GetTools() []tools.Tool
	GetTool(name string) (tools.Tool, error)
}
