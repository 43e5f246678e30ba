package main

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// DufsClient issues listing and size requests against a dufs server.
// File content is not streamed through it; that is the Transfer's job.
type DufsClient struct {
	baseURL string
	http    *http.Client
	creds   *Credentials
}

func NewDufsClient(baseURL string, creds *Credentials) *DufsClient {
	return &DufsClient{
		baseURL: normalizeBaseURL(baseURL),
		http:    &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
	}
}

func (c *DufsClient) BaseURL() string { return c.baseURL }

func normalizeBaseURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}
	return raw
}

// escapePath URL-encodes each segment of a remote path, preserving slashes,
// so names containing characters like # or ? survive the round trip.
func escapePath(p string) string {
	if p == "" {
		return ""
	}
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// FileURL returns the direct byte-stream URL for a remote file path.
func (c *DufsClient) FileURL(remotePath string) string {
	return c.baseURL + "/" + escapePath(strings.Trim(remotePath, "/"))
}

func (c *DufsClient) listingURL(remotePath, query string) string {
	u := c.baseURL + "/"
	if p := strings.Trim(remotePath, "/"); p != "" {
		u += escapePath(p) + "/"
	}
	return u + query
}

// listingDoc matches dufs's ?json response shape. path_type is one of
// Dir, SymlinkDir, File, SymlinkFile.
type listingDoc struct {
	Paths []struct {
		PathType string `json:"path_type"`
		Name     string `json:"name"`
		Href     string `json:"href"`
		Size     *int64 `json:"size"`
	} `json:"paths"`
}

// List fetches the immediate children of a remote directory, in the order
// the server returned them. When the JSON listing is not recognized it
// falls back to the plain ?simple format, which carries no sizes.
func (c *DufsClient) List(remotePath string) ([]RemoteEntry, error) {
	rawURL := c.listingURL(remotePath, "?json")
	body, err := c.get(rawURL, "application/json")
	if err != nil {
		return nil, &RemoteUnavailableError{URL: rawURL, Err: err}
	}
	defer body.Close()

	var doc listingDoc
	if err := json.NewDecoder(body).Decode(&doc); err != nil || doc.Paths == nil {
		return c.listSimple(remotePath)
	}

	entries := make([]RemoteEntry, 0, len(doc.Paths))
	for _, p := range doc.Paths {
		name := p.Name
		if name == "" && p.Href != "" {
			href := strings.TrimSuffix(p.Href, "/")
			if i := strings.LastIndex(href, "/"); i >= 0 {
				href = href[i+1:]
			}
			if unescaped, err := url.PathUnescape(href); err == nil {
				name = unescaped
			} else {
				name = href
			}
		}
		entry := RemoteEntry{
			Name:  name,
			IsDir: strings.HasSuffix(p.PathType, "Dir"),
		}
		if !entry.IsDir && p.Size != nil {
			entry.Size = *p.Size
			entry.SizeKnown = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// listSimple parses the ?simple listing: one name per line, directories
// marked by a trailing slash.
func (c *DufsClient) listSimple(remotePath string) ([]RemoteEntry, error) {
	rawURL := c.listingURL(remotePath, "?simple")
	body, err := c.get(rawURL, "text/plain")
	if err != nil {
		return nil, &RemoteUnavailableError{URL: rawURL, Err: err}
	}
	defer body.Close()

	var entries []RemoteEntry
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, RemoteEntry{
			Name:  strings.TrimSuffix(line, "/"),
			IsDir: strings.HasSuffix(line, "/"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &RemoteUnavailableError{URL: rawURL, Err: err}
	}
	return entries, nil
}

// RemoteSize asks the server for a file's size via a HEAD request. The
// second return is false when the size cannot be determined.
func (c *DufsClient) RemoteSize(remotePath string) (int64, bool) {
	req, err := http.NewRequest(http.MethodHead, c.FileURL(remotePath), nil)
	if err != nil {
		return 0, false
	}
	c.creds.apply(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, false
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.ContentLength < 0 {
		return 0, false
	}
	return resp.ContentLength, true
}

// get issues a GET and returns the (decompressed) response body. Closing
// the returned reader also closes the underlying response body.
func (c *DufsClient) get(rawURL, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Encoding", "zstd, gzip")
	c.creds.apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request")
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Errorf("unexpected status %s", resp.Status)
	}
	body, err := decodeBody(resp)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	return &bodyCloser{Reader: body, underlying: resp.Body}, nil
}

// decodeBody wraps a response body according to its Content-Encoding.
// Transparent decompression is off because Accept-Encoding is set manually.
func decodeBody(resp *http.Response) (io.Reader, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "zstd reader")
		}
		return zr.IOReadCloser(), nil
	case "gzip":
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "gzip reader")
		}
		return gr, nil
	default:
		return resp.Body, nil
	}
}

// bodyCloser closes the decompressor (when there is one) and the response
// body together.
type bodyCloser struct {
	io.Reader
	underlying io.Closer
}

func (b *bodyCloser) Close() error {
	if c, ok := b.Reader.(io.Closer); ok && c != b.underlying {
		c.Close()
	}
	return b.underlying.Close()
}
