package utils

import (
	"strings"
	"testing"
)

func TestValidImageUpload(t *testing.T) {
	ok := [][2]string{
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"icon.PNG", "image/png"},
		{"banner.webp", "image/webp"},
		{"logo.svg", "image/svg+xml"},
	}
	for _, c := range ok {
		if !ValidImageUpload(c[0], c[1]) {
			t.Fatalf("expected %s (%s) to be accepted", c[0], c[1])
		}
	}

	bad := [][2]string{
		{"report.pdf", "application/pdf"},
		{"photo.jpg", "application/octet-stream"}, // extension ok, type not
		{"script.svg.exe", "image/svg+xml"},       // type ok, extension not
		{"noextension", "image/png"},
	}
	for _, c := range bad {
		if ValidImageUpload(c[0], c[1]) {
			t.Fatalf("expected %s (%s) to be rejected", c[0], c[1])
		}
	}
}

func TestValidUploadSize(t *testing.T) {
	if !ValidUploadSize(MaxUploadSize) {
		t.Fatalf("exact limit should pass")
	}
	if ValidUploadSize(MaxUploadSize + 1) {
		t.Fatalf("over the limit should fail")
	}
	if !ValidUploadSize(1) {
		t.Fatalf("small file should pass")
	}
}

func TestNewObjectNameKeepsExtension(t *testing.T) {
	name := NewObjectName("My Photo.JPG")
	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("object name %q should end with .jpg", name)
	}
	if name == NewObjectName("My Photo.JPG") {
		t.Fatalf("object names should not repeat")
	}
}
