package main

// RemoteEntry is one child (file or directory) within a remote listing.
// SizeKnown is false for entries coming from the plain-text fallback
// listing, which carries no sizes.
type RemoteEntry struct {
	Name      string
	IsDir     bool
	Size      int64
	SizeKnown bool
}

// Transfer retrieves a single remote file to a local destination path.
type Transfer interface {
	Fetch(fileURL, localPath string) error
	Name() string
}

// TransferFactory probes for and creates a transfer mechanism.
type TransferFactory interface {
	Available() bool
	Create(creds *Credentials) Transfer
	Name() string
}
