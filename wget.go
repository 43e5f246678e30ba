package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

type WgetTransferFactory struct{}

func (f *WgetTransferFactory) Available() bool {
	_, err := exec.LookPath("wget")
	return err == nil
}

func (f *WgetTransferFactory) Create(creds *Credentials) Transfer {
	return &WgetTransfer{creds: creds}
}

func (f *WgetTransferFactory) Name() string { return "wget" }

// WgetTransfer shells out to wget, whose progress output goes straight to
// the terminal while the transfer runs.
type WgetTransfer struct {
	creds *Credentials
}

func (t *WgetTransfer) Fetch(fileURL, localPath string) error {
	args := []string{"--show-progress", "-O", localPath}
	if t.creds != nil && t.creds.username != "" {
		// Credentials go through a private config file instead of argv,
		// where any local user could read them from the process list.
		cfg, err := writeWgetConfig(t.creds)
		if err != nil {
			return err
		}
		defer os.Remove(cfg)
		args = append(args, "--config", cfg)
	}
	args = append(args, fileURL)

	cmd := exec.Command("wget", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "wget")
	}
	return nil
}

func (t *WgetTransfer) Name() string { return "wget" }

// writeWgetConfig writes the credentials to a wgetrc readable only by the
// current user. The caller removes it once wget exits.
func writeWgetConfig(creds *Credentials) (string, error) {
	f, err := os.CreateTemp("", "dufs-wgetrc-")
	if err != nil {
		return "", errors.Wrap(err, "wget config")
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "user=%s\npassword=%s\n", creds.username, creds.password); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, "wget config")
	}
	return f.Name(), nil
}
