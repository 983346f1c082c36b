package main

import (
	"os"
	"path/filepath"
	"testing"

	"chargekit/ocpicheck/pkg/ocpi"
	"chargekit/ocpicheck/samples"
)

func writeSample(t *testing.T, dir string, objectType ocpi.ObjectType) string {
	t.Helper()

	data, err := samples.Read(objectType)
	if err != nil {
		t.Fatalf("samples.Read(%s) returned error: %v", objectType, err)
	}
	path := filepath.Join(dir, string(objectType)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write sample: %v", err)
	}
	return path
}

func resetValidateFlags() {
	validateFlags.file = ""
	validateFlags.dir = ""
	validateFlags.objectType = ""
	validateFlags.format = "text"
}

func TestValidateFilesValidFile(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = writeSample(t, t.TempDir(), ocpi.TypeToken)
	validateFlags.objectType = "token"

	if err := validateFiles(nil, nil); err != nil {
		t.Errorf("validateFiles() with valid file returned error: %v", err)
	}
}

func TestValidateFilesInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"uid": "012345678ABC"}`), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	resetValidateFlags()
	validateFlags.file = path
	validateFlags.objectType = "token"

	if err := validateFiles(nil, nil); err == nil {
		t.Error("validateFiles() with invalid payload should return error")
	}
}

func TestValidateFilesNonexistentFile(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = filepath.Join(t.TempDir(), "missing.json")
	validateFlags.objectType = "token"

	if err := validateFiles(nil, nil); err == nil {
		t.Error("validateFiles() with nonexistent file should return error")
	}
}

func TestValidateFilesNoFileOrDir(t *testing.T) {
	resetValidateFlags()
	validateFlags.objectType = "token"

	if err := validateFiles(nil, nil); err == nil {
		t.Error("validateFiles() without --file or --dir should return error")
	}
}

func TestValidateFilesNoType(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = writeSample(t, t.TempDir(), ocpi.TypeToken)

	if err := validateFiles(nil, nil); err == nil {
		t.Error("validateFiles() without --type should return error")
	}
}

func TestValidateFilesUnknownType(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = writeSample(t, t.TempDir(), ocpi.TypeToken)
	validateFlags.objectType = "charger"

	if err := validateFiles(nil, nil); err == nil {
		t.Error("validateFiles() with unknown type should return error")
	}
}

func TestValidateFilesUnknownFormat(t *testing.T) {
	resetValidateFlags()
	validateFlags.file = writeSample(t, t.TempDir(), ocpi.TypeToken)
	validateFlags.objectType = "token"
	validateFlags.format = "xml"

	if err := validateFiles(nil, nil); err == nil {
		t.Error("validateFiles() with unknown format should return error")
	}
}

func TestValidateFilesDirJSON(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, ocpi.TypeLocation)

	resetValidateFlags()
	validateFlags.dir = dir
	validateFlags.objectType = "location"
	validateFlags.format = "json"

	if err := validateFiles(nil, nil); err != nil {
		t.Errorf("validateFiles() with valid directory returned error: %v", err)
	}
}

func TestValidateFilesEmptyDir(t *testing.T) {
	resetValidateFlags()
	validateFlags.dir = t.TempDir()
	validateFlags.objectType = "token"

	if err := validateFiles(nil, nil); err == nil {
		t.Error("validateFiles() with empty directory should return error")
	}
}

func TestCollectPayloadFiles(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, ocpi.TypeToken)
	writeSample(t, dir, ocpi.TypeSession)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	files, err := collectPayloadFiles("", dir)
	if err != nil {
		t.Fatalf("collectPayloadFiles() returned error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("collectPayloadFiles() returned %d files, want 2 (.json only)", len(files))
	}
}
