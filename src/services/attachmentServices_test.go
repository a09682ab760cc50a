package services_test

import (
	"testing"

	"github.com/ChronoCert/ChronoCert-Backend/src/services"
)

func TestIsAllowedImage(t *testing.T) {
	for _, name := range []string{"photo.jpg", "photo.JPG", "clasp.png"} {
		if !services.IsAllowedImage(name) {
			t.Fatalf("%q should be accepted", name)
		}
	}
	for _, name := range []string{"scan.pdf", "dial.jpeg", "photo.gif", "photo.webp", "photo"} {
		if services.IsAllowedImage(name) {
			t.Fatalf("%q should be rejected", name)
		}
	}
}

func TestValidFieldKey(t *testing.T) {
	if !services.ValidFieldKey("case_images") {
		t.Fatal("case_images carries attachments")
	}
	if !services.ValidFieldKey("value_documents") {
		t.Fatal("value_documents carries attachments")
	}
	if services.ValidFieldKey("case_material") {
		t.Fatal("a choice field must not carry attachments")
	}
	if services.ValidFieldKey("not_a_field") {
		t.Fatal("unknown field accepted")
	}
}
