// Package project moves meshes between memory and .4dp files.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/polytope4d/internal/engine/mesh"
	"github.com/Faultbox/polytope4d/internal/logger"
	"github.com/Faultbox/polytope4d/pkg/formats"
)

// Extension is the file suffix appended on save.
const Extension = ".4dp"

// Open reads and decodes a .4dp file into a single mesh named after the file.
func Open(path string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, err)
	}
	m, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	logger.Info("opened polytope",
		zap.String("path", path),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("edges", len(m.Edges)))
	return m, nil
}

// Decode parses file contents already in memory.
func Decode(path string, data []byte) (*mesh.Mesh, error) {
	p, err := formats.ParseP4D(data)
	if err != nil {
		return nil, classify(path, err)
	}
	m, err := mesh.FromP4D(p, Name(path))
	if err != nil {
		return nil, classify(path, err)
	}
	return m, nil
}

// Name derives a mesh name from a file path.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WithExtension appends .4dp unless path already ends with it.
func WithExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return path
	}
	return path + Extension
}

// Encode flattens meshes into .4dp file contents.
func Encode(meshes ...*mesh.Mesh) ([]byte, error) {
	p, err := mesh.ToP4D(meshes...)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding: %v", ErrUnknown, err)
	}
	return p.Marshal(), nil
}

// WriteFile writes encoded contents to path as is.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing 4DP file: %v", ErrUnknown, err)
	}
	logger.Info("saved polytope", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// Save writes every mesh into one file and returns the final path.
func Save(path string, meshes ...*mesh.Mesh) (string, error) {
	data, err := Encode(meshes...)
	if err != nil {
		return "", err
	}
	path = WithExtension(path)
	if err := WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
