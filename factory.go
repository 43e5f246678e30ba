package main

import "log"

var transferFactories = []TransferFactory{
	&WgetTransferFactory{},
	&CurlTransferFactory{},
	&HTTPTransferFactory{},
	// add more
}

// selectTransfer probes the factories once at startup and picks the first
// available mechanism. The built-in HTTP factory is always available, so
// the result is never nil.
func selectTransfer(creds *Credentials) Transfer {
	for _, factory := range transferFactories {
		if factory.Available() {
			log.Printf("Using %s for downloads", factory.Name())
			return factory.Create(creds)
		}
	}
	return (&HTTPTransferFactory{}).Create(creds)
}
