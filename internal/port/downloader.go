package port

import "context"

type DownloadOptions struct {
	CookiesPath string
}

type Downloader interface {
	Download(ctx context.Context, url, outDir string, opts DownloadOptions) (path string, err error)
}
