package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

type CurlTransferFactory struct{}

func (f *CurlTransferFactory) Available() bool {
	_, err := exec.LookPath("curl")
	return err == nil
}

func (f *CurlTransferFactory) Create(creds *Credentials) Transfer {
	return &CurlTransfer{creds: creds}
}

func (f *CurlTransferFactory) Name() string { return "curl" }

// CurlTransfer shells out to curl with its progress bar on the terminal.
// -f turns HTTP errors into a non-zero exit instead of saving the error page.
type CurlTransfer struct {
	creds *Credentials
}

func (t *CurlTransfer) Fetch(fileURL, localPath string) error {
	args := []string{"-#", "-f", "-L", "-o", localPath}
	cmd := exec.Command("curl", append(args, t.extraArgs(fileURL)...)...)
	if cfg := t.authConfig(); cfg != "" {
		// Credentials are fed through a stdin config so the password
		// never shows up in the process list.
		cmd.Stdin = strings.NewReader(cfg)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "curl")
	}
	return nil
}

// extraArgs finishes the argument list: the config flag when credentials
// are set, then the URL.
func (t *CurlTransfer) extraArgs(fileURL string) []string {
	if t.authConfig() != "" {
		return []string{"--config", "-", fileURL}
	}
	return []string{fileURL}
}

// authConfig renders the credentials in curl's config-file syntax, empty
// when there are none.
func (t *CurlTransfer) authConfig() string {
	if t.creds == nil || t.creds.username == "" {
		return ""
	}
	return fmt.Sprintf("user = %q\n", t.creds.username+":"+string(t.creds.password))
}

func (t *CurlTransfer) Name() string { return "curl" }
