package main

import (
	"bytes"
	"net/http"
	"testing"
)

func TestCredentialsClear(t *testing.T) {
	creds := &Credentials{username: "alice", password: []byte("secret")}
	raw := creds.password
	creds.Clear()
	if creds.password != nil {
		t.Error("Clear did not drop the password slice")
	}
	if !bytes.Equal(raw, make([]byte, len(raw))) {
		t.Error("Clear did not wipe the password bytes")
	}
}

func TestCredentialsApplyNil(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://localhost:6008/", nil)
	if err != nil {
		t.Fatal(err)
	}
	var creds *Credentials
	creds.apply(req) // must not panic
	if _, _, ok := req.BasicAuth(); ok {
		t.Error("nil credentials set an Authorization header")
	}
}
