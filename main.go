package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const defaultServerURL = "http://localhost:6008"

func main() {
	dirFlag := flag.String("dir", ".", "Download save directory")
	flag.StringVar(dirFlag, "d", ".", "Download save directory (shorthand)")
	userFlag := flag.String("user", "", "Username for basic auth (password is prompted)")
	flag.Parse()

	serverURL := os.Getenv("DUFS_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	if flag.NArg() > 0 {
		serverURL = flag.Arg(0)
	}

	saveDir, err := filepath.Abs(*dirFlag)
	if err != nil {
		log.Fatalf("Invalid save directory: %v", err)
	}
	if err := os.MkdirAll(saveDir, 0755); err != nil {
		log.Fatalf("Cannot create save directory %s: %v", saveDir, err)
	}

	var creds *Credentials
	if *userFlag != "" {
		creds = &Credentials{username: *userFlag, password: askPassword()}
		defer creds.Clear()
	}

	client := NewDufsClient(serverURL, creds)
	downloader := NewDownloader(client, selectTransfer(creds))

	fmt.Println("Dufs download client")
	fmt.Printf("Server: %s\n", client.BaseURL())
	fmt.Printf("Save dir: %s\n", saveDir)

	// Startup probe: a server that cannot list its root is unusable.
	if _, err := client.List(""); err != nil {
		log.Printf("Cannot connect to server %s: %v", client.BaseURL(), err)
		log.Fatal("Check server address, port and network connection")
	}

	nav := NewNavigator(client, downloader, saveDir, os.Stdin, os.Stdout)
	if err := nav.Run(); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}
