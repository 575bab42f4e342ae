package documents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sylvainHellin/Alasco/internal/alasco"
	"github.com/sylvainHellin/Alasco/internal/logger"
)

// Downloader saves document attachments under a local directory using the
// derived file names.
type Downloader struct {
	client      *alasco.Client
	downloadDir string
	log         *logger.Logger
}

func NewDownloader(client *alasco.Client, downloadDir string, appLogger *logger.Logger) (*Downloader, error) {
	const component = "DocumentDownloader"

	if downloadDir == "" {
		downloadDir = filepath.Join("outputs", time.Now().Format("2006-01-02"))
	}

	if _, err := os.Stat(downloadDir); os.IsNotExist(err) {
		if err := os.MkdirAll(downloadDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("creating download directory %s: %v", downloadDir, err)
		}
		appLogger.Info(component, "Download directory created: path=%s", downloadDir)
	} else {
		appLogger.Debug(component, "Download directory already exists: path=%s", downloadDir)
	}

	return &Downloader{client: client, downloadDir: downloadDir, log: appLogger}, nil
}

/*
Download fetches each link and writes its body to the matching name inside
the download directory. The two lists are validated up front, before any
request is issued. A single failed document is logged and skipped so the
rest of the batch still completes; the count of documents actually written
is returned.
*/
func (d *Downloader) Download(ctx context.Context, downloadLinks, names []string) (int, error) {
	const component = "DocumentDownloader"

	if len(downloadLinks) != len(names) {
		return 0, fmt.Errorf("document names and download links must have the same length: got %d names and %d links", len(names), len(downloadLinks))
	}

	saved := 0
	for i, link := range downloadLinks {
		name := names[i]
		d.log.Debug(component, "Downloading document: name=%s", name)

		body, err := d.client.DownloadFile(ctx, link)
		if err != nil {
			d.log.Warn(component, "Failed to download document, skipping: name=%s error=%v", name, err)
			continue
		}

		path := filepath.Join(d.downloadDir, name)
		if err := os.WriteFile(path, body, 0o644); err != nil {
			d.log.Warn(component, "Failed to write document, skipping: path=%s error=%v", path, err)
			continue
		}

		saved++
		d.log.Info(component, "Document saved: path=%s size=%d bytes", path, len(body))
	}

	return saved, nil
}
