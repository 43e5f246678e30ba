package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// NavState is one snapshot of the interactive session: the current remote
// directory and its listing. It is never mutated; every transition builds
// a fresh value, and failed transitions keep the old one.
type NavState struct {
	Path    string
	Entries []RemoteEntry
}

// Navigator drives the interactive session.
type Navigator struct {
	client     *DufsClient
	downloader *Downloader
	saveDir    string
	in         *bufio.Scanner
	out        io.Writer
}

func NewNavigator(client *DufsClient, downloader *Downloader, saveDir string, in io.Reader, out io.Writer) *Navigator {
	return &Navigator{
		client:     client,
		downloader: downloader,
		saveDir:    saveDir,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run loops until the quit command or end of input. The initial listing of
// the root is the only failure that ends the session with an error.
func (n *Navigator) Run() error {
	state, err := n.enter("")
	if err != nil {
		return err
	}
	for {
		n.printListing(state)
		fmt.Fprint(n.out, "> ")
		if !n.in.Scan() {
			fmt.Fprintln(n.out, "\nBye!")
			return n.in.Err()
		}
		input := strings.TrimSpace(n.in.Text())
		if input == "" {
			continue
		}
		next, quit := n.step(state, input)
		if quit {
			fmt.Fprintln(n.out, "Bye!")
			return nil
		}
		state = next
	}
}

// enter lists a remote directory and produces the state for it.
func (n *Navigator) enter(remotePath string) (NavState, error) {
	entries, err := n.client.List(remotePath)
	if err != nil {
		return NavState{}, err
	}
	return NavState{Path: remotePath, Entries: entries}, nil
}

// step applies one command to the current state and returns the next one.
func (n *Navigator) step(state NavState, input string) (next NavState, quit bool) {
	switch strings.ToLower(input) {
	case "q", "quit", "exit":
		return state, true
	case "..", "cd ..":
		if state.Path == "" {
			return state, false
		}
		return n.tryEnter(state, parentPath(state.Path)), false
	}

	// "d" followed by an index forces the download, bypassing the
	// skip-if-exists check.
	force := false
	arg := input
	if len(input) > 1 && (input[0] == 'd' || input[0] == 'D') {
		if rest := strings.TrimSpace(input[1:]); isDigits(rest) {
			force = true
			arg = rest
		}
	}

	if isDigits(arg) {
		idx, err := strconv.Atoi(arg)
		if err != nil || idx < 1 || idx > len(state.Entries) {
			fmt.Fprintln(n.out, "Invalid number")
			return state, false
		}
		return n.act(state, state.Entries[idx-1], force), false
	}

	for _, e := range state.Entries {
		if e.Name == arg {
			return n.act(state, e, force), false
		}
	}
	fmt.Fprintln(n.out, "Not found")
	return state, false
}

// act enters a directory or downloads the selected entry. Listing names
// come from the server, so the same sanitation as the tree walk applies
// before one is joined onto the save directory.
func (n *Navigator) act(state NavState, entry RemoteEntry, force bool) NavState {
	if !safeEntryName(entry.Name) {
		fmt.Fprintf(n.out, "Refusing unsafe entry name: %q\n", entry.Name)
		return state
	}
	target := childPath(state.Path, entry.Name)
	if entry.IsDir {
		if !force {
			return n.tryEnter(state, target)
		}
		if err := n.downloader.DownloadTree(target, filepath.Join(n.saveDir, entry.Name), force); err != nil {
			fmt.Fprintf(n.out, "Download failed: %v\n", err)
		}
		return state
	}

	local := filepath.Join(n.saveDir, entry.Name)
	skipped, err := n.downloader.DownloadFile(target, local, entry.Size, entry.SizeKnown, force)
	switch {
	case err != nil:
		fmt.Fprintf(n.out, "Download failed: %v\n", err)
	case skipped:
		fmt.Fprintf(n.out, "Skipped (exists): %s\n", local)
	default:
		fmt.Fprintf(n.out, "Downloaded: %s\n", local)
	}
	return state
}

// tryEnter re-lists the target directory. On failure the previous state is
// kept and an error is shown, so bad listings never lose the user's place.
func (n *Navigator) tryEnter(state NavState, remotePath string) NavState {
	next, err := n.enter(remotePath)
	if err != nil {
		fmt.Fprintf(n.out, "Failed to list /%s: %v\n", remotePath, err)
		return state
	}
	return next
}

func (n *Navigator) printListing(state NavState) {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(n.out, "\n%s\nCurrent path: /%s\n%s\n", line, state.Path, line)
	if len(state.Entries) == 0 {
		fmt.Fprintln(n.out, "(empty directory)")
	}
	for i, e := range state.Entries {
		kind := "[file]"
		if e.IsDir {
			kind = "[dir] "
		}
		fmt.Fprintf(n.out, "%4d. %s %s\n", i+1, kind, e.Name)
	}
	fmt.Fprintln(n.out, "\nCommands: number = enter dir / download file, d<number> = force download,")
	fmt.Fprintln(n.out, "          name = same as its index, .. = parent directory, q = quit")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
