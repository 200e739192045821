// Copyright 2026 dircache authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package mirror

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cicd-cache/dircache/pkg/logging"
)

// stderrTailLimit bounds how much stderr is retained for error messages.
const stderrTailLimit = 8 * 1024

// process manages one mirror subprocess. Stdout and stderr pipes are
// attached before the process starts so that output emitted by
// fast-exiting commands is never lost.
type process struct {
	mu sync.RWMutex

	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr io.ReadCloser

	binary string
	args   []string
	log    *logrus.Entry

	started bool
	exited  bool

	// Retained stderr tail, included in the failure error.
	stderrTail strings.Builder

	streamWG sync.WaitGroup
	waitCh   chan error
	exitCode int
}

// newProcess creates a process for the given binary and arguments. Output
// lines are streamed through log as they arrive.
func newProcess(binary string, args []string, log *logrus.Entry) *process {
	return &process{
		binary: binary,
		args:   args,
		log:    log,
		waitCh: make(chan error, 1),
	}
}

// Start starts the subprocess and begins streaming its output.
func (p *process) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return ErrProcessAlreadyRun
	}

	if _, err := exec.LookPath(p.binary); err != nil {
		return fmt.Errorf("%w: %s", ErrBinaryNotFound, p.binary)
	}

	p.cmd = exec.CommandContext(ctx, p.binary, p.args...)

	var err error
	p.stdout, err = p.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	p.stderr, err = p.cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.binary, err)
	}

	p.started = true

	p.streamWG.Add(2)
	go p.streamOutput(p.stdout, "stdout")
	go p.streamOutput(p.stderr, "stderr")

	go func() {
		// Pipes must be drained before Wait reaps the process.
		p.streamWG.Wait()
		err := p.cmd.Wait()
		p.mu.Lock()
		p.exited = true
		if p.cmd.ProcessState != nil {
			p.exitCode = p.cmd.ProcessState.ExitCode()
		}
		p.mu.Unlock()
		p.waitCh <- err
	}()

	return nil
}

// streamOutput forwards each output line to the logger as it arrives.
// Stdout lines log at info, stderr lines at error.
func (p *process) streamOutput(r io.Reader, stream string) {
	defer p.streamWG.Done()

	entry := p.log.WithFields(logging.StreamFields(p.binary, stream))

	scanner := bufio.NewScanner(r)
	// rsync itemized output lines are short, but allow for long paths.
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if stream == "stderr" {
			p.mu.Lock()
			if p.stderrTail.Len() < stderrTailLimit {
				p.stderrTail.WriteString(line)
				p.stderrTail.WriteByte('\n')
			}
			p.mu.Unlock()
			entry.Error(line)
			continue
		}
		entry.Info(line)
	}
}

// Wait waits for the process to complete. It returns nil on exit code 0
// and the process error otherwise, with the retained stderr tail attached.
func (p *process) Wait(ctx context.Context) error {
	select {
	case err := <-p.waitCh:
		if err == nil {
			return nil
		}
		p.mu.RLock()
		exitCode := p.exitCode
		stderr := strings.TrimSpace(p.stderrTail.String())
		p.mu.RUnlock()

		if ctx.Err() != nil {
			return fmt.Errorf("%s interrupted: %w", p.binary, ctx.Err())
		}
		if stderr != "" {
			return fmt.Errorf("%s failed (exit code %d): %s", p.binary, exitCode, stderr)
		}
		return fmt.Errorf("%s failed (exit code %d): %w", p.binary, exitCode, err)

	case <-ctx.Done():
		return fmt.Errorf("%s interrupted: %w", p.binary, ctx.Err())
	}
}

// ExitCode returns the process exit code.
func (p *process) ExitCode() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exitCode
}
