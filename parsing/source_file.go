package parsing

import (
	"context"
	"fmt"
	"os"

	"github.com/NickyBoy89/sigfind/symbol"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// SourceFile contains the name, source, and parsed tree of a single Java file
type SourceFile struct {
	Name   string
	Source []byte
	// Root of the parsed tree, set by ParseAST
	Ast *sitter.Node
	// Symbol table of the file, set by ParseSymbols
	Symbols *symbol.FileScope

	tree *sitter.Tree
}

// ReadSourceFile loads a file from disk without parsing it
func ReadSourceFile(path string) (*SourceFile, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &SourceFile{Name: path, Source: source}, nil
}

// ParseAST parses the file's source into a tree-sitter tree
func (file *SourceFile) ParseAST() error {
	return file.ParseASTCtx(context.Background())
}

// ParseASTCtx is ParseAST with a caller-supplied context
func (file *SourceFile) ParseASTCtx(ctx context.Context) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, file.Source)
	if err != nil {
		return fmt.Errorf("parse %s: %w", file.Name, err)
	}
	file.tree = tree
	file.Ast = tree.RootNode()
	return nil
}

// ParseSymbols builds the symbol table for the file. ParseAST must have been
// called first. The result is cached on the file, so every caller sees the same
// *symbol.FileScope for this file.
func (file *SourceFile) ParseSymbols() *symbol.FileScope {
	if file.Symbols != nil {
		return file.Symbols
	}
	file.Symbols = symbol.ParseSymbols(file.Ast, file.Source)
	file.Symbols.Name = file.Name
	return file.Symbols
}

// Close releases the underlying tree-sitter tree
func (file *SourceFile) Close() {
	if file.tree != nil {
		file.tree.Close()
		file.tree = nil
		file.Ast = nil
	}
}
