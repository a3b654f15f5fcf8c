package codebase

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/skel/sketch"
	"github.com/dhamidi/skel/sketch/parser"
)

const lsName = "skel"

type LSPServer struct {
	codebase *Codebase
	watcher  *FileWatcher
	handler  protocol.Handler
	server   *server.Server
	version  string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
		TextDocumentCompletion:     ls.textDocumentCompletion,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(); err != nil {
		log.Errorf("initial scan: %s", err.Error())
	}

	watcher, err := NewFileWatcher(ls.codebase)
	if err != nil {
		log.Errorf("start watcher: %s", err.Error())
		return nil
	}
	ls.watcher = watcher
	ls.watcher.Start()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.codebase.UpdateFile(path, []byte(textChange.Text))
			ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else {
		_ = ls.codebase.ScanFile(path)
	}
	ls.publishDiagnostics(ctx, params.TextDocument.URI, path)
	return nil
}

func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, path string) {
	diagnostics := diagnosticsForFile(ls.codebase.GetFile(path))
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// diagnosticsForFile maps a cached parse result to LSP diagnostics: one
// error for a structural parse failure, and a warning for every declaration
// whose name extraction degraded to the empty string.
func diagnosticsForFile(file *FileInfo) []protocol.Diagnostic {
	if file == nil {
		return nil
	}

	if file.ParseErr != nil {
		line := 0
		var lineErr *parser.LineError
		if errors.As(file.ParseErr, &lineErr) {
			line = lineErr.Line - 1
		}
		severity := protocol.DiagnosticSeverityError
		return []protocol.Diagnostic{{
			Range:    lineRange(file.Content, line),
			Severity: &severity,
			Source:   strPtr(lsName),
			Message:  file.ParseErr.Error(),
		}}
	}

	if file.Model == nil {
		return nil
	}

	var out []protocol.Diagnostic
	severity := protocol.DiagnosticSeverityWarning
	warn := func(name string, line int, kind string) {
		if name != "" {
			return
		}
		out = append(out, protocol.Diagnostic{
			Range:    lineRange(file.Content, line-1),
			Severity: &severity,
			Source:   strPtr(lsName),
			Message:  kind + " declaration has no name",
		})
	}

	for _, ns := range file.Model.Namespaces {
		warn(ns.Name, ns.Line, "namespace")
		for _, c := range ns.Classes {
			warn(c.Name, c.Line, "class")
			warnMembers(warn, c.Properties, c.Methods)
		}
		for _, e := range ns.Enums {
			warn(e.Name, e.Line, "enum")
			warnMembers(warn, e.Properties, nil)
		}
		for _, i := range ns.Interfaces {
			warn(i.Name, i.Line, "interface")
			warnMembers(warn, i.Properties, i.Methods)
		}
	}
	return out
}

func warnMembers(warn func(string, int, string), props []*sketch.Property, methods []*sketch.Method) {
	for _, p := range props {
		warn(p.Name, p.Line, "property")
	}
	for _, m := range methods {
		warn(m.Name, m.Line, "method")
	}
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil || file.Model == nil {
		return nil, nil
	}
	return documentSymbols(file.Model, file.Content), nil
}

func documentSymbols(model *sketch.File, content []byte) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for _, ns := range model.Namespaces {
		symbol := declarationSymbol(ns.Name, "", protocol.SymbolKindNamespace, ns.Line, content)
		for _, c := range ns.Classes {
			child := declarationSymbol(c.Name, c.Description, protocol.SymbolKindClass, c.Line, content)
			child.Children = memberSymbols(c.Properties, c.Methods, protocol.SymbolKindProperty, content)
			symbol.Children = append(symbol.Children, child)
		}
		for _, e := range ns.Enums {
			child := declarationSymbol(e.Name, e.Description, protocol.SymbolKindEnum, e.Line, content)
			child.Children = memberSymbols(e.Properties, nil, protocol.SymbolKindEnumMember, content)
			symbol.Children = append(symbol.Children, child)
		}
		for _, i := range ns.Interfaces {
			child := declarationSymbol(i.Name, i.Description, protocol.SymbolKindInterface, i.Line, content)
			child.Children = memberSymbols(i.Properties, i.Methods, protocol.SymbolKindProperty, content)
			symbol.Children = append(symbol.Children, child)
		}
		out = append(out, symbol)
	}
	return out
}

func memberSymbols(props []*sketch.Property, methods []*sketch.Method, propertyKind protocol.SymbolKind, content []byte) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for _, p := range props {
		out = append(out, declarationSymbol(p.Name, p.String(), propertyKind, p.Line, content))
	}
	for _, m := range methods {
		out = append(out, declarationSymbol(m.Name, m.Signature(), protocol.SymbolKindMethod, m.Line, content))
	}
	return out
}

func declarationSymbol(name, detail string, kind protocol.SymbolKind, line int, content []byte) protocol.DocumentSymbol {
	r := lineRange(content, line-1)
	symbol := protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          r,
		SelectionRange: r,
	}
	if name == "" {
		symbol.Name = "(unnamed)"
	}
	if detail != "" {
		symbol.Detail = &detail
	}
	return symbol
}

// completionKeywords are the notation's fixed prefix and alias tokens.
var completionKeywords = []struct {
	label  string
	detail string
}{
	{"ns", "namespace opener"},
	{"c", "class opener"},
	{"e", "enum opener"},
	{"if", "interface opener"},
	{"i", "public int member"},
	{"s", "public string member"},
	{"f", "public float member"},
	{"b", "public bool member"},
	{"_i", "private int member"},
	{"_s", "private string member"},
	{"_f", "private float member"},
	{"_b", "private bool member"},
	{"l-", "List<X> shorthand"},
	{"ob-", "IObservable<X> shorthand"},
	{"[i]", "int[] shorthand"},
	{"[s]", "string[] shorthand"},
	{"[f]", "float[] shorthand"},
	{"[b]", "bool[] shorthand"},
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	var items []protocol.CompletionItem
	kind := protocol.CompletionItemKindKeyword
	for _, kw := range completionKeywords {
		detail := kw.detail
		items = append(items, protocol.CompletionItem{
			Label:  kw.label,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items, nil
}

func lineRange(content []byte, line int) protocol.Range {
	if line < 0 {
		line = 0
	}
	length := 0
	lines := strings.Split(string(content), "\n")
	if line < len(lines) {
		length = len(lines[line])
	}
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line), Character: 0},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(length)},
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
