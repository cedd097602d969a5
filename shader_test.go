package tileshade

import (
	"strings"
	"testing"
)

func TestShaderLibrarySource(t *testing.T) {
	lib := NewShaderLibrary()
	src, err := lib.Source(ShaderSunShadow)
	if err != nil {
		t.Fatalf("Source(%q): %v", ShaderSunShadow, err)
	}
	if !strings.Contains(string(src), "func Fragment(") {
		t.Error("shader source should contain a Fragment entry point")
	}
	if !strings.Contains(string(src), "//kage:unit pixels") {
		t.Error("shader source should use pixel units")
	}
}

func TestShaderLibraryUnknownName(t *testing.T) {
	lib := NewShaderLibrary()
	if _, err := lib.Source("nope"); err == nil {
		t.Error("Source should fail for unknown names")
	}
	if _, err := lib.Load("nope"); err == nil {
		t.Error("Load should fail for unknown names")
	}
}

func TestShaderLibraryCompiles(t *testing.T) {
	lib := NewShaderLibrary()
	s, err := lib.Load(ShaderSunShadow)
	if err != nil {
		t.Fatalf("Load(%q): %v", ShaderSunShadow, err)
	}
	if s == nil {
		t.Fatal("Load returned nil shader")
	}
}

func TestShaderLibraryCaches(t *testing.T) {
	lib := NewShaderLibrary()
	a, err := lib.Load(ShaderSunShadow)
	if err != nil {
		t.Fatal(err)
	}
	b, err := lib.Load(ShaderSunShadow)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Load should return the cached shader instance")
	}
}

func TestShaderLibraryZeroValue(t *testing.T) {
	var lib ShaderLibrary
	if _, err := lib.Load(ShaderSunShadow); err != nil {
		t.Errorf("zero-value library should work: %v", err)
	}
}
