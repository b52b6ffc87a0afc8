package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

// DocumentState holds the last known content of an open document and the
// findings of its last analysis, kept for code action requests.
type DocumentState struct {
	Content  string
	Findings []fileDiagnostic
}

type LanguageServer struct {
	documents map[string]*DocumentState // URI -> document state
	mu        sync.RWMutex
	writer    io.Writer
}

func NewLanguageServer(writer io.Writer) *LanguageServer {
	if writer == nil {
		writer = os.Stdout
	}
	return &LanguageServer{
		documents: make(map[string]*DocumentState),
		writer:    writer,
	}
}

// Start reads Content-Length framed JSON-RPC messages from stdin until
// EOF.
func (s *LanguageServer) Start() {
	reader := bufio.NewReader(os.Stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.Printf("error reading header: %v", err)
			}
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "Content-Length: ") {
			continue
		}

		contentLength, err := strconv.Atoi(strings.TrimPrefix(line, "Content-Length: "))
		if err != nil {
			log.Printf("error parsing Content-Length: %v", err)
			continue
		}

		// Skip remaining headers up to the blank separator line.
		for {
			headerLine, err := reader.ReadString('\n')
			if err != nil {
				log.Printf("error reading separator: %v", err)
				return
			}
			if strings.TrimRight(headerLine, "\r\n") == "" {
				break
			}
		}

		content := make([]byte, contentLength)
		if _, err := io.ReadFull(reader, content); err != nil {
			log.Printf("error reading content: %v", err)
			break
		}
		if err := s.handleMessage(content); err != nil {
			log.Printf("error handling message: %v", err)
		}
	}
}

type baseMessage struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func (s *LanguageServer) handleMessage(content []byte) error {
	var msg baseMessage
	if err := json.Unmarshal(content, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	switch msg.Method {
	case "initialize":
		return s.sendResult(msg.ID, InitializeResult{
			Capabilities: ServerCapabilities{
				TextDocumentSync:   1, // full document sync
				CodeActionProvider: true,
			},
		})
	case "initialized":
		return nil
	case "shutdown":
		return s.sendResult(msg.ID, nil)
	case "exit":
		os.Exit(0)
		return nil
	case "textDocument/didOpen":
		var params DidOpenTextDocumentParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return err
		}
		return s.handleDidOpen(params)
	case "textDocument/didChange":
		var params DidChangeTextDocumentParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return err
		}
		return s.handleDidChange(params)
	case "textDocument/didClose":
		var params DidCloseTextDocumentParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return err
		}
		return s.handleDidClose(params)
	case "textDocument/codeAction":
		var params CodeActionParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			s.sendError(msg.ID, ErrCodeInvalidParams, err.Error())
			return err
		}
		return s.sendResult(msg.ID, s.codeActions(params))
	default:
		if msg.ID != nil {
			return s.sendError(msg.ID, ErrCodeMethodNotFound, "method not supported: "+msg.Method)
		}
		return nil
	}
}

func (s *LanguageServer) handleDidOpen(params DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.setDocument(uri, params.TextDocument.Text)
	return s.publishDiagnostics(uri)
}

func (s *LanguageServer) handleDidChange(params DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := params.TextDocument.URI
	// Full sync: the last change carries the whole document.
	s.setDocument(uri, params.ContentChanges[len(params.ContentChanges)-1].Text)
	return s.publishDiagnostics(uri)
}

func (s *LanguageServer) handleDidClose(params DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.documents, uri)
	s.mu.Unlock()
	// Clear stale diagnostics for the closed document.
	return s.sendNotification("textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []Diagnostic{},
	})
}

func (s *LanguageServer) setDocument(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[uri] = &DocumentState{Content: content}
}

func (s *LanguageServer) document(uri string) (*DocumentState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[uri]
	return doc, ok
}

func (s *LanguageServer) sendResult(id, result interface{}) error {
	return s.send(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: result})
}

func (s *LanguageServer) sendError(id interface{}, code int, message string) error {
	return s.send(ResponseMessage{Jsonrpc: "2.0", ID: id, Error: &Error{Code: code, Message: message}})
}

func (s *LanguageServer) sendNotification(method string, params interface{}) error {
	return s.send(NotificationMessage{Jsonrpc: "2.0", Method: method, Params: params})
}

func (s *LanguageServer) send(msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n%s", len(data), data)
	return err
}
