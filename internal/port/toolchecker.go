package port

import "context"

type ToolChecker interface {
	CheckDeps(ctx context.Context) error
}
