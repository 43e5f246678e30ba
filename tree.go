package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Downloader mirrors remote files and directory trees under local paths.
type Downloader struct {
	client   *DufsClient
	transfer Transfer
}

func NewDownloader(client *DufsClient, transfer Transfer) *Downloader {
	return &Downloader{client: client, transfer: transfer}
}

// DownloadFile fetches one remote file unless a local copy with a matching
// size already exists. force bypasses the skip check. The first return is
// true when the file was skipped.
func (d *Downloader) DownloadFile(remotePath, localPath string, size int64, sizeKnown bool, force bool) (bool, error) {
	if !force {
		if !sizeKnown {
			size, sizeKnown = d.client.RemoteSize(remotePath)
		}
		if shouldSkip(localPath, size, sizeKnown) {
			return true, nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return false, &FetchError{Path: remotePath, Err: err}
	}
	if err := d.transfer.Fetch(d.client.FileURL(remotePath), localPath); err != nil {
		return false, &FetchError{Path: remotePath, Err: err}
	}
	return false, nil
}

// DownloadTree recursively mirrors a remote directory under localDir,
// depth-first and sequential. A failed listing abandons that branch only;
// a failed fetch is logged and the walk moves on to the next entry. The
// returned error covers this directory's own listing, nothing below it.
func (d *Downloader) DownloadTree(remotePath, localDir string, force bool) error {
	entries, err := d.client.List(remotePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(localDir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", localDir)
	}

	for _, e := range entries {
		if !safeEntryName(e.Name) {
			continue
		}
		child := childPath(remotePath, e.Name)
		if e.IsDir {
			if err := d.DownloadTree(child, filepath.Join(localDir, e.Name), force); err != nil {
				log.Printf("Skipping branch %s: %v", child, err)
			}
			continue
		}

		local := filepath.Join(localDir, e.Name)
		skipped, err := d.DownloadFile(child, local, e.Size, e.SizeKnown, force)
		switch {
		case err != nil:
			log.Printf("Failed: %s: %v", child, err)
		case skipped:
			log.Printf("Skipped (exists): %s", local)
		default:
			log.Printf("Downloaded: %s", local)
		}
	}
	return nil
}
