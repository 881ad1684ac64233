package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/hangulcore/ime/internal/bridge"
	"github.com/hangulcore/ime/internal/ime"
)

const (
	serviceName = "com.github.hangulcore.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from an
// Fcitx5-style frontend. Every method takes the session handle a
// frontend obtained from CreateSession, since this daemon serves more
// than one concurrent composition session rather than one global engine.
type InputEngine struct {
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine.
func NewInputEngine(logger *log.Logger) *InputEngine {
	return &InputEngine{logger: logger}
}

// CreateSession starts a new composition session for the given layout
// ("2bulsik" or "3bulsik") and returns its handle.
func (e *InputEngine) CreateSession(layout string) (uint32, *dbus.Error) {
	l := ime.LayoutBulsik2
	if layout == "3bulsik" {
		l = ime.LayoutBulsik3
	}
	h, err := bridge.Create(l)
	if err != nil {
		return 0, dbus.MakeFailedError(err)
	}
	if e.logger != nil {
		e.logger.Printf("CreateSession layout=%s -> handle=%d", layout, h)
	}
	return uint32(h), nil
}

// DestroySession ends a session and releases its resources.
func (e *InputEngine) DestroySession(handle uint32) *dbus.Error {
	bridge.Destroy(bridge.Handle(handle))
	if e.logger != nil {
		e.logger.Printf("DestroySession handle=%d", handle)
	}
	return nil
}

// ProcessKey2 handles a 2-Bulsik key event.
// Output: handled, commitText (finalized text, if any), preeditText.
func (e *InputEngine) ProcessKey2(handle uint32, ascii byte, shifted bool) (bool, string, string, *dbus.Error) {
	r, ok := bridge.ProcessKey(bridge.Handle(handle), ascii, shifted)
	if !ok {
		return false, "", "", nil
	}
	commit, preedit := actionToText(r.Action, r.PrevCP, r.CurrentCP)
	e.logKey("2bulsik", handle, ascii, r.Action, commit, preedit)
	return r.Action != ime.ActionNoChange, commit, preedit, nil
}

// ProcessKey3 handles a 3-Bulsik key event.
func (e *InputEngine) ProcessKey3(handle uint32, ascii byte) (bool, string, string, *dbus.Error) {
	r, ok := bridge.ProcessKey3(bridge.Handle(handle), ascii)
	if !ok {
		return false, "", "", nil
	}
	var commit, preedit string
	switch r.Action {
	case ime.ActionEmitAndNew:
		commit = runeOrEmpty(r.PrevCP)
		preedit = runeOrEmpty(r.CurrentCP)
	case ime.ActionReplace:
		preedit = runeOrEmpty(r.CurrentCP)
	case ime.ActionLiteral:
		commit = runeOrEmpty(r.PrevCP) + runeOrEmpty(r.LiteralCP)
	}
	e.logKey("3bulsik", handle, ascii, r.Action, commit, preedit)
	return r.Action != ime.ActionNoChange, commit, preedit, nil
}

// Backspace removes one logical composition step.
func (e *InputEngine) Backspace(handle uint32) (string, *dbus.Error) {
	cp, ok := bridge.BackspaceSession(bridge.Handle(handle))
	if !ok {
		return "", nil
	}
	if e.logger != nil {
		e.logger.Printf("handle=%d Backspace -> preedit=%q", handle, runeOrEmpty(cp))
	}
	return runeOrEmpty(cp), nil
}

// Commit flushes a session's in-progress syllable and returns it.
func (e *InputEngine) Commit(handle uint32) (string, *dbus.Error) {
	cp, ok := bridge.CommitSession(bridge.Handle(handle))
	if !ok {
		return "", nil
	}
	if e.logger != nil {
		e.logger.Printf("handle=%d Commit -> %q", handle, runeOrEmpty(cp))
	}
	return runeOrEmpty(cp), nil
}

// Reset clears a session's in-progress syllable without emitting it.
func (e *InputEngine) Reset(handle uint32) *dbus.Error {
	bridge.ResetSession(bridge.Handle(handle))
	if e.logger != nil {
		e.logger.Printf("handle=%d Reset", handle)
	}
	return nil
}

// GetState returns a session's current preedit text.
func (e *InputEngine) GetState(handle uint32) (string, *dbus.Error) {
	cp, ok := bridge.Preedit(bridge.Handle(handle))
	if !ok {
		return "", nil
	}
	return runeOrEmpty(cp), nil
}

func (e *InputEngine) logKey(layout string, handle uint32, ascii byte, action ime.Action, commit, preedit string) {
	if e.logger == nil {
		return
	}
	e.logger.Printf("[%s] handle=%-4d key=%-4q action=%-12v commit=%-8q preedit=%q",
		layout, handle, ascii, action, commit, preedit)
}

func actionToText(action ime.Action, prev, current rune) (commit, preedit string) {
	switch action {
	case ime.ActionEmitAndNew:
		return runeOrEmpty(prev), runeOrEmpty(current)
	case ime.ActionReplace:
		return "", runeOrEmpty(current)
	default:
		return "", ""
	}
}

func runeOrEmpty(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("hangul-ime.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [hangulcore] Logging to hangul-ime.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [hangulcore] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	inputEngine := NewInputEngine(logger)

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("Hangul IME backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:       %s\n", serviceName)
	fmt.Printf("  Object Path:   %s\n", objectPath)
	fmt.Printf("  Input Methods: 2-Bulsik, 3-Bulsik\n")
	fmt.Printf("  Output Format: Unicode\n")
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [hangulcore] Shutting down...")
}
