package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"log"
	"os"

	"shader-frame/internal/anim"
	"shader-frame/internal/server"
)

const (
	defaultAddr   = ":2222"
	defaultShader = "sunset"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	addr := flag.String("addr", defaultAddr, "SSH listen address (PORT overrides)")
	httpAddr := flag.String("http", "", "HTTP preview listen address (empty = disabled)")
	hostKeyPath := flag.String("hostkey", "host_key", "SSH host key file, generated if missing")
	startShader := flag.String("shader", defaultShader, "shader new sessions open on")
	flag.Parse()

	// Generate host key if it doesn't exist
	if err := ensureHostKey(*hostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	loop := anim.NewLoop()
	go loop.Run()
	defer loop.Stop()

	if *httpAddr != "" {
		preview := server.NewHTTPServer(*httpAddr)
		go func() {
			if err := preview.Start(); err != nil {
				log.Printf("HTTP preview stopped: %v", err)
			}
		}()
	}

	// Start SSH server (blocks)
	listenAddr := *addr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}
	sshServer, err := server.NewSSHServer(listenAddr, *hostKeyPath, *startShader, loop)
	if err != nil {
		log.Fatalf("SSH server: %v", err)
	}
	log.Printf("Starting shader-frame at %d fps, connect with: ssh -t -p <port> you@localhost", anim.FrameRate)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
