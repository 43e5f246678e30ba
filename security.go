package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"golang.org/x/term"
)

// Credentials holds the optional basic-auth identity for the server.
type Credentials struct {
	username string
	password []byte
}

// apply sets the Authorization header on a request. Safe on a nil receiver.
func (c *Credentials) apply(req *http.Request) {
	if c == nil || c.username == "" {
		return
	}
	req.SetBasicAuth(c.username, string(c.password))
}

func (c *Credentials) Clear() {
	secureWipe(c.password)
	c.password = nil
}

// secureWipe overwrites sensitive data before it is released.
func secureWipe(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

// askPassword reads a password from the terminal without echoing it.
func askPassword() []byte {
	fmt.Print("Enter password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Error reading password: %v", err)
	}
	fmt.Println()
	return password
}
