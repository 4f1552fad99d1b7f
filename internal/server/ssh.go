package server

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gliderlabs/ssh"

	"shader-frame/internal/anim"
	"shader-frame/internal/render"
	"shader-frame/internal/shader"
)

// SSHServer wraps the SSH listener and animation loop integration.
type SSHServer struct {
	loop    *anim.Loop
	addr    string
	hostKey string
	start   int // index of the shader new sessions open on
}

// NewSSHServer creates a new SSH server bound to the given address. New
// sessions open on startShader; an unknown name is an error.
func NewSSHServer(addr, hostKey, startShader string, loop *anim.Loop) (*SSHServer, error) {
	start := shader.Index(startShader)
	if start < 0 {
		return nil, fmt.Errorf("%w %q", shader.ErrUnknownShader, startShader)
	}
	return &SSHServer{
		loop:    loop,
		addr:    addr,
		hostKey: hostKey,
		start:   start,
	}, nil
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}

	viewerID, frameCh := s.loop.AddViewer(username)

	log.Printf("Viewer connected: %s (%s)", username, viewerID)
	defer func() {
		s.loop.RemoveViewer(viewerID)
		log.Printf("Viewer disconnected: %s (%s)", username, viewerID)
	}()

	// Terminal dimensions
	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	v := newViewer(shader.All(), s.start, termW, termH)

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	actionCh := make(chan Action, 64)
	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range parseInput(buf[:n]) {
				if action == ActionQuit {
					close(quitCh)
					return
				}
				select {
				case actionCh <- action:
				default:
				}
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
		}
	}()

	// Main render loop: read from frame channel
	for {
		select {
		case <-quitCh:
			return
		case a := <-actionCh:
			v.apply(a)
		case f, ok := <-frameCh:
			if !ok {
				return
			}

			termMu.Lock()
			w, h := termW, termH
			termMu.Unlock()

			output := v.frame(f, w, h)
			if len(output) > 0 {
				io.WriteString(sess, output)
			}
		}
	}
}
