package main

import (
	"context"
	"errors"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/sass-format/go-sass/ir"
	"github.com/sass-format/go-sass/parse"
)

type document struct {
	uri  string
	text string
	root *ir.Node
}

type documentStore struct {
	mu   sync.Mutex
	docs map[string]*document
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[doc.uri] = doc
}

func (ds *documentStore) del(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	return s.refresh(ctx, string(params.TextDocument.URI), params.TextDocument.Text)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change carries the whole document
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	return s.refresh(ctx, string(params.TextDocument.URI), text)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.del(string(params.TextDocument.URI))
	return nil
}

// refresh re-parses one document and republishes its diagnostics.
func (s *Server) refresh(ctx context.Context, uri, text string) error {
	doc := &document{uri: uri, text: text}
	root, err := parse.Parse([]byte(text))
	if err == nil {
		doc.root = root
	}
	s.docs.put(doc)
	return s.publishDiagnostics(ctx, uri, err)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string, err error) error {
	diagnostics := []protocol.Diagnostic{}
	var se *ir.SyntaxError
	if errors.As(err, &se) {
		line := uint32(0)
		if se.Line > 0 {
			line = uint32(se.Line - 1)
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   protocol.Position{Line: line + 1, Character: 0},
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  se.Msg,
		})
	} else if err != nil {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  err.Error(),
		})
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics,
		&protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
}
